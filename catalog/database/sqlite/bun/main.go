package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

type Note struct {
	bun.BaseModel `bun:"table:notes"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Body string `bun:"body,notnull"`
}

func main() {
	_ = godotenv.Load()

	path := os.Getenv("DATABASE_URL")
	if path == "" {
		path = "app.db"
	}

	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()

	if _, err := db.NewCreateTable().Model((*Note)(nil)).IfNotExists().Exec(ctx); err != nil {
		log.Fatalf("create table: %v", err)
	}

	note := &Note{Body: "hello from bun"}
	if _, err := db.NewInsert().Model(note).Exec(ctx); err != nil {
		log.Fatalf("insert note: %v", err)
	}

	var notes []Note
	if err := db.NewSelect().Model(&notes).Scan(ctx); err != nil {
		log.Fatalf("select notes: %v", err)
	}

	log.Printf("✅ Connected to SQLite, %d note(s) in table", len(notes))
}
