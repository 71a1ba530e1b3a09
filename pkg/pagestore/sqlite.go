package pagestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/faciam-dev/gcms/pkg/content"
)

// DefaultTablePrefix is applied when no prefix is configured.
const DefaultTablePrefix = "cms_"

// Prefix returns p when non-empty or DefaultTablePrefix otherwise.
func Prefix(p string) string {
	if p == "" {
		return DefaultTablePrefix
	}
	return p
}

// SQLStore persists pages as JSON documents in a SQL table, one row per
// (table, page id). It is used with the sqlite3 driver but only relies on
// portable SQL.
type SQLStore struct {
	DB          *sql.DB
	TablePrefix string
}

func (s *SQLStore) table() string { return Prefix(s.TablePrefix) + "pages" }

// Migrate creates the pages table when absent.
func (s *SQLStore) Migrate(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
        table_id TEXT NOT NULL,
        page_id TEXT NOT NULL,
        data TEXT NOT NULL,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        PRIMARY KEY (table_id, page_id)
    )`, s.table())
	_, err := s.DB.ExecContext(ctx, q)
	return err
}

// List returns every page of the application table in page-id order.
func (s *SQLStore) List(ctx context.Context, tableID string) ([]content.Page, error) {
	q := fmt.Sprintf(`SELECT data FROM %s WHERE table_id=? ORDER BY page_id`, s.table())
	rows, err := s.DB.QueryContext(ctx, q, tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []content.Page
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var p content.Page
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns one page by id.
func (s *SQLStore) Get(ctx context.Context, tableID, pageID string) (content.Page, error) {
	q := fmt.Sprintf(`SELECT data FROM %s WHERE table_id=? AND page_id=?`, s.table())
	var data []byte
	err := s.DB.QueryRowContext(ctx, q, tableID, pageID).Scan(&data)
	if err == sql.ErrNoRows {
		return content.Page{}, ErrNotFound
	}
	if err != nil {
		return content.Page{}, err
	}
	var p content.Page
	if err := json.Unmarshal(data, &p); err != nil {
		return content.Page{}, fmt.Errorf("decode page: %w", err)
	}
	return p, nil
}

// Save upserts the whole page record under its id.
func (s *SQLStore) Save(ctx context.Context, tableID string, p content.Page) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`INSERT INTO %s (table_id, page_id, data, updated_at) VALUES (?, ?, ?, ?)
        ON CONFLICT(table_id, page_id) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`, s.table())
	_, err = s.DB.ExecContext(ctx, q, tableID, p.Page, string(data), p.UpdatedAt)
	return err
}

// Delete removes the page, reporting ErrNotFound when nothing matched.
func (s *SQLStore) Delete(ctx context.Context, tableID, pageID string) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE table_id=? AND page_id=?`, s.table())
	res, err := s.DB.ExecContext(ctx, q, tableID, pageID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPagesByTable returns the number of pages per application table. Used
// by the metrics gauge.
func (s *SQLStore) CountPagesByTable(ctx context.Context) (map[string]int, error) {
	q := fmt.Sprintf(`SELECT table_id, COUNT(*) FROM %s GROUP BY table_id`, s.table())
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}
