// Package migrations owns the relational schema. Migration files are embedded
// and applied in name order for "up" and in reverse order for "down".
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
)

//go:embed *.sql
var files embed.FS

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down:
		return d, nil
	default:
		return "", fmt.Errorf("direction must be 'up' or 'down', got %q", s)
	}
}

// Files lists the migration file names for direction in execution order.
func Files(direction Direction) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	suffix := fmt.Sprintf(".%s.sql", direction)
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)
	if direction == Down {
		slices.Reverse(names)
	}
	return names, nil
}

// Run executes every migration of direction against db. The DDL is idempotent,
// so running "up" on an existing schema is harmless.
func Run(ctx context.Context, db *sql.DB, direction Direction, logger *slog.Logger) (int, error) {
	names, err := Files(direction)
	if err != nil {
		return 0, err
	}

	for _, name := range names {
		content, readErr := files.ReadFile(name)
		if readErr != nil {
			return 0, fmt.Errorf("read migration %s: %w", name, readErr)
		}

		logger.InfoContext(ctx, "running migration", "file", name)
		if _, err = db.ExecContext(ctx, string(content)); err != nil {
			return 0, fmt.Errorf("execute migration %s: %w", name, err)
		}
	}

	return len(names), nil
}
