package schema

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// File holds section schemas declared in a YAML document:
//
//	sections:
//	  banner:
//	    name: Banner
//	    description: ...
//	    fields:
//	      title: {type: text, label: Title, required: true}
type File struct {
	Sections yaml.Node `yaml:"sections"`
}

// Store serves a registry combining the built-in section schemas with ones
// loaded from a YAML file, hot-reloading on file changes. The served registry
// value is immutable; reloads swap in a fresh one.
type Store struct {
	path   string
	cur    atomic.Value // *Registry
	logger *slog.Logger
}

// NewStore returns a store reading extra schemas from path. An empty path
// serves only the built-in schemas.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.cur.Store(Default())
	return s
}

// Load builds a fresh registry from the built-ins plus the configured file
// and swaps it in. A file that fails to parse leaves the current registry
// serving.
func (s *Store) Load() error {
	reg := Default()
	if s.path == "" {
		s.cur.Store(reg)
		return nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read schemas: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse schemas: %w", err)
	}
	n := 0
	for i := 0; i+1 < len(f.Sections.Content); i += 2 {
		var key string
		if err := f.Sections.Content[i].Decode(&key); err != nil {
			return err
		}
		var sec SectionSchema
		if err := f.Sections.Content[i+1].Decode(&sec); err != nil {
			return fmt.Errorf("section %s: %w", key, err)
		}
		if err := reg.Register(key, sec); err != nil {
			return err
		}
		n++
	}
	s.cur.Store(reg)
	s.logger.Info("section schemas loaded", "path", s.path, "extra", n)
	return nil
}

// Watch reloads the schema file when it changes, until ctx is done.
func (s *Store) Watch(ctx context.Context) {
	if s.path == "" {
		return
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Error("watcher", "err", err)
		return
	}
	defer w.Close()
	_ = w.Add(s.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-w.Events:
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				time.Sleep(200 * time.Millisecond)
				if err := s.Load(); err != nil {
					s.logger.Error("schema reload failed", "err", err)
				}
			}
		case err := <-w.Errors:
			s.logger.Error("watch error", "err", err)
		}
	}
}

// Get returns the currently served registry.
func (s *Store) Get() *Registry {
	return s.cur.Load().(*Registry)
}
