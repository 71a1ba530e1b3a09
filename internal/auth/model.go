package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// VisitorGroup grants read-only access to every application table.
const VisitorGroup = "visitor"

// Identity is the profile a session carries once established, mirroring what
// the external identity provider supplies.
type Identity struct {
	Sub        string   `json:"sub"`
	Email      string   `json:"email,omitempty"`
	Name       string   `json:"name,omitempty"`
	GivenName  string   `json:"given_name,omitempty"`
	FamilyName string   `json:"family_name,omitempty"`
	Picture    string   `json:"picture,omitempty"`
	Groups     []string `json:"groups,omitempty"`
}

// HasPermission reports whether the identity may edit the application table:
// a plain membership check of tableID in the identity's groups.
func HasPermission(id *Identity, tableID string) bool {
	if id == nil {
		return false
	}
	for _, g := range id.Groups {
		if g == tableID {
			return true
		}
	}
	return false
}

// IsVisitor reports whether the identity only carries the read-only visitor
// role.
func (id *Identity) IsVisitor() bool {
	if id == nil {
		return false
	}
	for _, g := range id.Groups {
		if g == VisitorGroup {
			return true
		}
	}
	return false
}

// User represents an application user record.
type User struct {
	Sub          string
	Username     string
	PasswordHash string
	Email        string
	Name         string
	Groups       []string
}

// UserRepo provides access to the users table.
type UserRepo struct {
	DB          *sql.DB
	TablePrefix string
}

func (r *UserRepo) table() string {
	p := r.TablePrefix
	if p == "" {
		p = "cms_"
	}
	return p + "users"
}

// Migrate creates the users table when absent.
func (r *UserRepo) Migrate(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
        sub TEXT PRIMARY KEY,
        username TEXT UNIQUE NOT NULL,
        password_hash TEXT NOT NULL,
        email TEXT,
        name TEXT,
        groups TEXT
    )`, r.table())
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// GetByUsername returns a user by name, or nil when absent.
func (r *UserRepo) GetByUsername(ctx context.Context, name string) (*User, error) {
	if r == nil || r.DB == nil {
		return nil, fmt.Errorf("repo not initialized")
	}
	q := fmt.Sprintf(`SELECT sub, username, password_hash, email, name, groups FROM %s WHERE username=?`, r.table())
	row := r.DB.QueryRowContext(ctx, q, name)
	var u User
	var groups sql.NullString
	if err := row.Scan(&u.Sub, &u.Username, &u.PasswordHash, &u.Email, &u.Name, &groups); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if groups.Valid && groups.String != "" {
		if err := json.Unmarshal([]byte(groups.String), &u.Groups); err != nil {
			return nil, fmt.Errorf("decode groups: %w", err)
		}
	}
	return &u, nil
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u User) error {
	groups, err := json.Marshal(u.Groups)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`INSERT INTO %s (sub, username, password_hash, email, name, groups) VALUES (?, ?, ?, ?, ?, ?)`, r.table())
	_, err = r.DB.ExecContext(ctx, q, u.Sub, u.Username, u.PasswordHash, u.Email, u.Name, string(groups))
	return err
}
