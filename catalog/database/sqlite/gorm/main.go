// SQLite via GORM: connect to the file from DATABASE_URL, migrate, query.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func main() {
	godotenv.Load()

	dbPath := os.Getenv("DATABASE_URL")
	if dbPath == "" {
		dbPath = "app.db"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	db.AutoMigrate(&User{})

	var users []User
	db.Find(&users)
	log.Printf("✅ SQLite ready, %d user(s) in table.", len(users))
}
