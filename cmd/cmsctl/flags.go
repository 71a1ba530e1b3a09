package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/mattn/go-sqlite3"

	"github.com/faciam-dev/gcms/internal/logger"
	"github.com/faciam-dev/gcms/pkg/pagestore"
	"github.com/faciam-dev/gcms/pkg/schema"
)

// DBFlags carries the flags shared by commands that touch the database.
type DBFlags struct {
	DB      string
	Prefix  string
	Table   string
	Schemas string
}

// AddFlags registers the shared database flags on cmd.
func (f *DBFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.DB, "db", "cms.db", "sqlite database path")
	cmd.Flags().StringVar(&f.Prefix, "table-prefix", pagestore.DefaultTablePrefix, "table prefix")
	cmd.Flags().StringVar(&f.Table, "table", "default", "application table id")
	cmd.Flags().StringVar(&f.Schemas, "schemas", "", "extra section schemas YAML")
}

// Open connects to the configured sqlite database.
func (f *DBFlags) Open() (*sql.DB, *pagestore.SQLStore, error) {
	if f.DB == "" {
		return nil, nil, fmt.Errorf("--db is required")
	}
	db, err := sql.Open("sqlite3", f.DB)
	if err != nil {
		return nil, nil, err
	}
	return db, &pagestore.SQLStore{DB: db, TablePrefix: f.Prefix}, nil
}

// Registry loads the section registry: built-ins plus any configured file.
func (f *DBFlags) Registry() (*schema.Registry, error) {
	s := schema.NewStore(f.Schemas, logger.L)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s.Get(), nil
}
