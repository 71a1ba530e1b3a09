package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/faciam-dev/gcms/internal/auth"
	"github.com/faciam-dev/gcms/internal/config"
	"github.com/faciam-dev/gcms/internal/events"
	"github.com/faciam-dev/gcms/internal/logger"
	"github.com/faciam-dev/gcms/internal/server"
	"github.com/faciam-dev/gcms/pkg/cms"
	"github.com/faciam-dev/gcms/pkg/pagestore"
	"github.com/faciam-dev/gcms/pkg/schema"
)

func main() {
	cfg := config.Load()
	addr := flag.String("addr", cfg.Addr, "listen address")
	dbPath := flag.String("db", cfg.DBPath, "sqlite database path")
	tblPrefix := flag.String("table-prefix", cfg.TablePrefix, "table prefix (default cms_)")
	schemaFile := flag.String("schemas", cfg.SchemaFile, "extra section schemas YAML")
	openapi := flag.String("openapi", "", "write OpenAPI JSON and exit")
	flag.Parse()
	cfg.Addr = *addr
	cfg.DBPath = *dbPath
	cfg.TablePrefix = *tblPrefix
	cfg.SchemaFile = *schemaFile

	logger.Set(logger.New(cfg.LogJSON))

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.L.Error("db open", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := &pagestore.SQLStore{DB: db, TablePrefix: cfg.TablePrefix}
	if err := store.Migrate(ctx); err != nil {
		logger.L.Error("migrate pages", "err", err)
		os.Exit(1)
	}
	users := &auth.UserRepo{DB: db, TablePrefix: cfg.TablePrefix}
	if err := users.Migrate(ctx); err != nil {
		logger.L.Error("migrate users", "err", err)
		os.Exit(1)
	}
	dlq := &events.SQLDLQ{DB: db, TablePrefix: cfg.TablePrefix}
	if err := dlq.Migrate(ctx); err != nil {
		logger.L.Error("migrate dlq", "err", err)
		os.Exit(1)
	}

	schemas := schema.NewStore(cfg.SchemaFile, logger.L)
	if err := schemas.Load(); err != nil {
		logger.L.Error("load schemas", "err", err)
		os.Exit(1)
	}
	go schemas.Watch(ctx)

	api := server.New(db, store, schemas, cfg)

	if *openapi != "" {
		data, err := json.MarshalIndent(api.OpenAPI(), "", "  ")
		if err != nil {
			logger.L.Error("marshal openapi", "err", err)
			os.Exit(1)
		}
		p := filepath.Clean(*openapi)
		if err := os.WriteFile(p, data, 0o600); err != nil {
			logger.L.Error("write openapi", "err", err)
			os.Exit(1)
		}
		return
	}

	if cfg.ExportDir != "" {
		startExportJob(ctx, store, cfg.ExportDir)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.Adapter(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			logger.L.Error("shutdown", "err", err)
		}
	}()

	logger.L.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("server error", "err", err)
		os.Exit(1)
	}
}

// startExportJob dumps every table's pages to YAML each night at 03:00 UTC.
func startExportJob(ctx context.Context, store *pagestore.SQLStore, dir string) {
	zl, err := zap.NewProduction()
	if err != nil {
		logger.L.Error("zap logger", "err", err)
		return
	}
	svc := cms.New(cms.ServiceConfig{Store: store, Logger: zl.Sugar()})
	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Cron("0 3 * * *").Do(func() {
		counts, err := store.CountPagesByTable(ctx)
		if err != nil {
			logger.L.Error("list tables", "err", err)
			return
		}
		stamp := time.Now().UTC().Format("20060102")
		for table := range counts {
			data, err := svc.Export(ctx, table)
			if err != nil {
				logger.L.Error("export pages", "table", table, "err", err)
				continue
			}
			name := filepath.Join(dir, table+"-"+stamp+".yaml")
			if err := os.WriteFile(name, data, 0o600); err != nil {
				logger.L.Error("write export", "path", name, "err", err)
			}
		}
	}); err != nil {
		logger.L.Error("schedule export", "err", err)
		return
	}
	s.StartAsync()
}
