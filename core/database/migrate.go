package database

import (
	"context"
	_ "embed"
	"fmt"

	"shoot-calendar-api/core/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables the service reads and writes. Statements are
// idempotent so it runs on every start.
func (d *Database) Migrate(ctx context.Context) error {
	if _, err := d.sqlx.ExecContext(ctx, schema); err != nil {
		logger.Error("Database:Migrate:Error", "error", err)
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	var tables []string
	err := d.sqlx.SelectContext(ctx, &tables, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name IN ('shoots', 'marked_shoots', 'calendar_tokens', 'calendar_documents')
		ORDER BY table_name
	`)
	if err != nil {
		logger.Warn("Database:Migrate:ListTables:Error", "error", err)
		return nil
	}
	logger.Info("Database:Migrate:Success", "tables", tables)
	return nil
}
