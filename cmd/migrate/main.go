// Command migrate applies the embedded schema migrations.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"bakery/cmd"
	"bakery/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate [up|down]")
	}
	if err := run(os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

func run(arg string) error {
	direction, err := migrations.ParseDirection(arg)
	if err != nil {
		return err
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := configs.NewLogger()

	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	count, err := migrations.Run(ctx, db, direction, logger)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	logger.Info("migrations applied", "count", count, "direction", string(direction))
	return nil
}
