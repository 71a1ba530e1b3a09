package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLDLQ persists undeliverable events in a database table.
type SQLDLQ struct {
	DB          *sql.DB
	TablePrefix string
}

func (d *SQLDLQ) table() string {
	p := d.TablePrefix
	if p == "" {
		p = "cms_"
	}
	return p + "event_dlq"
}

// Migrate creates the DLQ table when absent.
func (d *SQLDLQ) Migrate(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        payload TEXT NOT NULL,
        attempts INTEGER NOT NULL,
        last_error TEXT,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    )`, d.table())
	_, err := d.DB.ExecContext(ctx, q)
	return err
}

// Store records an event that exhausted its delivery attempts.
func (d *SQLDLQ) Store(ctx context.Context, e Event, attempts int, lastErr string) error {
	if d == nil || d.DB == nil {
		return nil
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`INSERT INTO %s (id, name, payload, attempts, last_error) VALUES (?, ?, ?, ?, ?)`, d.table())
	_, err = d.DB.ExecContext(ctx, q, e.ID, e.Name, string(payload), attempts, lastErr)
	return err
}
