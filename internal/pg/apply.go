package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// ApplyDDL executes the generated statements in key order. The DDL is
// idempotent (create ... if not exists), so re-running against an existing
// database is safe; duplicate constraints (42710) are skipped, not fatal.
func ApplyDDL(db *sql.DB, ddl map[string]string) error {
	keys := make([]string, 0, len(ddl))
	for k := range ddl {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, k := range keys {
		sqlText := strings.TrimSpace(ddl[k])
		if sqlText == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, sqlText); err != nil {
			if alreadyExists(err) {
				log.Printf("DDL %s skipped (already exists): %v", k, err)
				continue
			}
			return fmt.Errorf("DDL apply %s failed: %w", k, err)
		}
	}
	return nil
}

func alreadyExists(err error) bool {
	// pgx/stdlib surfaces *pgconn.PgError; 42710 = duplicate_object
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42710" {
		return true
	}
	e := strings.ToLower(err.Error())
	return strings.Contains(e, "already exists") || strings.Contains(e, "duplicate")
}
