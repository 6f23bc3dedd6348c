package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("DATABASE_URL")
	if path == "" {
		path = "app.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		body TEXT NOT NULL
	)`)
	if err != nil {
		log.Fatalf("create table: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO notes (body) VALUES (?)`, "hello from database/sql"); err != nil {
		log.Fatalf("insert note: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count); err != nil {
		log.Fatalf("count notes: %v", err)
	}

	log.Printf("✅ Connected to SQLite, %d note(s) in table", count)
}
