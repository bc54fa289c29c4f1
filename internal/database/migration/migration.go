package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// The schema is append-only on purpose: no UPDATE or DELETE path exists for
// either table, and the composite primary key on documents is what arbitrates
// racing registrations.
var steps = []migrationStep{
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  owner         TEXT        NOT NULL,
  document_id   TEXT        NOT NULL,
  document_hash TEXT        NOT NULL DEFAULT '',
  document_type TEXT        NOT NULL DEFAULT '',
  seq           BIGSERIAL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (owner, document_id)
);`,
	},
	{
		Name: "create_index_documents_owner_seq",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_owner_seq ON documents (owner, seq);`,
	},
	{
		Name: "create_table_registry_events",
		SQL: `CREATE TABLE IF NOT EXISTS registry_events (
  id            BIGSERIAL   PRIMARY KEY,
  event_type    TEXT        NOT NULL,
  owner         TEXT        NOT NULL,
  document_id   TEXT        NOT NULL,
  document_hash TEXT        NOT NULL DEFAULT '',
  document_type TEXT        NOT NULL DEFAULT '',
  matched       BOOLEAN     NOT NULL DEFAULT false,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_registry_events_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_registry_events_owner ON registry_events (owner, id);`,
	},
}

// EnsureMigrated checks if the 'documents' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.documents') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check schema: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "db_migration_check",
			"status":    "up_to_date",
			"db_host":   dbHost,
		})
		return nil
	}

	for _, step := range steps {
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}
		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "db_migration_step",
			"step":      step.Name,
			"db_host":   dbHost,
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_check",
		"status":      "migrated",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logJSON(loc *time.Location, fields map[string]any) {
	fields["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if b, err := json.Marshal(fields); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
