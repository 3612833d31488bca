package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"finance_tracker/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Lists the SQL migrations under internal/migrations, or applies them
// in lexical order with -apply. Schema management stays outside the
// server process.
func main() {
	apply := flag.Bool("apply", false, "apply migrations instead of listing them")
	dir := flag.String("dir", filepath.Join("internal", "migrations"), "migrations directory")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("connect failed", "error", err)
	}
	defer db.Close()

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Fatal("read migrations dir", "error", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if !*apply {
			fmt.Println(name)
			continue
		}
		sql, err := os.ReadFile(filepath.Join(*dir, name))
		if err != nil {
			logger.Fatal("read migration", "file", name, "error", err)
		}
		if _, err := db.Exec(context.Background(), string(sql)); err != nil {
			logger.Fatal("apply migration", "file", name, "error", err)
		}
		fmt.Printf("applied %s\n", name)
	}
}
