package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID    int64  `bun:"id,pk,autoincrement"`
	Name  string `bun:"name,notnull"`
	Email string `bun:"email,unique"`
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "root:password123@tcp(127.0.0.1:3306)/mydb?parseTime=true"
	}

	sqldb, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	db := bun.NewDB(sqldb, mysqldialect.New())
	defer db.Close()

	ctx := context.Background()

	if _, err := db.NewCreateTable().Model((*User)(nil)).IfNotExists().Exec(ctx); err != nil {
		log.Fatalf("create table: %v", err)
	}

	user := &User{Name: "Alice", Email: "alice@example.com"}
	if _, err := db.NewInsert().Model(user).Exec(ctx); err != nil {
		log.Fatalf("insert user: %v", err)
	}

	var users []User
	if err := db.NewSelect().Model(&users).Scan(ctx); err != nil {
		log.Fatalf("select users: %v", err)
	}

	log.Printf("✅ Connected to MySQL, %d user(s) in table", len(users))
}
