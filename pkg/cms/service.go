// Package cms exposes high level content operations for embedding the
// engine in other programs.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/faciam-dev/gcms/pkg/content"
	"github.com/faciam-dev/gcms/pkg/pagestore"
	"github.com/faciam-dev/gcms/pkg/schema"
)

// Service exposes high level operations over the page store.
type Service interface {
	// ListPages returns every page of the application table.
	ListPages(ctx context.Context, table string) ([]content.Page, error)
	// GetPage returns one page by id.
	GetPage(ctx context.Context, table, page string) (content.Page, error)
	// SavePage validates and persists the page, overwriting any previous record.
	SavePage(ctx context.Context, table string, p content.Page) error
	// DeletePage removes the page.
	DeletePage(ctx context.Context, table, page string) error
	// ValidatePage checks every section of the page against its schema.
	ValidatePage(ctx context.Context, p content.Page) schema.Result
	// Export dumps all pages of the table as YAML.
	Export(ctx context.Context, table string) ([]byte, error)
	// Apply replaces the table's pages with the ones in the YAML document.
	Apply(ctx context.Context, table string, data []byte, opts ApplyOptions) (DiffReport, error)
	// SectionTypes returns the registered section type keys.
	SectionTypes() []string
}

// ServiceConfig configures a Service.
type ServiceConfig struct {
	Store    pagestore.Store
	Registry *schema.Registry
	Logger   *zap.SugaredLogger
}

// ApplyOptions control how Apply treats the incoming document.
type ApplyOptions struct {
	// DryRun skips writing and only computes the diff.
	DryRun bool
	Actor  string
}

// DiffReport summarizes what Apply changed.
type DiffReport struct {
	// Added is the number of newly created pages.
	Added int
	// Updated is the number of modified pages.
	Updated int
	// Deleted is the number of removed pages.
	Deleted int
}

// New returns a Service initialized with the given configuration.
func New(cfg ServiceConfig) Service {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = schema.Default()
	}
	return &service{logger: logger, store: cfg.Store, reg: reg}
}

type service struct {
	logger *zap.SugaredLogger
	store  pagestore.Store
	reg    *schema.Registry
}

func (s *service) lifecycle() *content.Lifecycle {
	return &content.Lifecycle{Registry: s.reg}
}

func (s *service) ListPages(ctx context.Context, table string) ([]content.Page, error) {
	return s.store.List(ctx, table)
}

func (s *service) GetPage(ctx context.Context, table, page string) (content.Page, error) {
	return s.store.Get(ctx, table, page)
}

func (s *service) SavePage(ctx context.Context, table string, p content.Page) error {
	lc := s.lifecycle()
	// Sections of an unregistered type ride along untouched, same as the
	// HTTP save path. ValidatePage is the place to surface them.
	if res := lc.ValidateKnown(&p); !res.Valid {
		return fmt.Errorf("cms: page %q is invalid: %v", p.Page, res.Errors)
	}
	return lc.Save(ctx, s.store, table, &p)
}

func (s *service) DeletePage(ctx context.Context, table, page string) error {
	return s.store.Delete(ctx, table, page)
}

func (s *service) ValidatePage(ctx context.Context, p content.Page) schema.Result {
	return s.lifecycle().Validate(&p)
}

func (s *service) SectionTypes() []string {
	return s.reg.Types()
}

// exportFile is the YAML document shape used by Export and Apply.
type exportFile struct {
	Pages []content.Page `yaml:"pages"`
}

func (s *service) Export(ctx context.Context, table string) ([]byte, error) {
	pages, err := s.store.List(ctx, table)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(exportFile{Pages: pages})
}

// sectionsEqual compares sections by their JSON encoding. Stored pages come
// back JSON-decoded and Apply documents YAML-decoded, so the raw values
// disagree on numeric types even when the content is the same.
func sectionsEqual(a, b []content.Section) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

// Apply makes the table's page set match the document: pages in the
// document are created or overwritten, pages absent from it are removed.
func (s *service) Apply(ctx context.Context, table string, data []byte, opts ApplyOptions) (DiffReport, error) {
	var rep DiffReport
	var doc exportFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return rep, fmt.Errorf("cms: parse document: %w", err)
	}
	lc := s.lifecycle()
	for _, p := range doc.Pages {
		if p.Page == "" {
			return rep, fmt.Errorf("cms: document contains a page without an id")
		}
		if res := lc.ValidateKnown(&p); !res.Valid {
			return rep, fmt.Errorf("cms: page %q is invalid: %v", p.Page, res.Errors)
		}
	}
	existing, err := s.store.List(ctx, table)
	if err != nil {
		return rep, err
	}
	current := make(map[string]content.Page, len(existing))
	for _, p := range existing {
		current[p.Page] = p
	}
	incoming := make(map[string]struct{}, len(doc.Pages))
	for _, p := range doc.Pages {
		incoming[p.Page] = struct{}{}
		old, ok := current[p.Page]
		switch {
		case !ok:
			rep.Added++
		case !sectionsEqual(old.Sections, p.Sections) || old.Title != p.Title || old.Theme != p.Theme:
			rep.Updated++
		default:
			continue
		}
		if opts.DryRun {
			continue
		}
		if err := lc.Save(ctx, s.store, table, &p); err != nil {
			return rep, err
		}
		s.logger.Infow("applied page", "table", table, "page", p.Page, "actor", opts.Actor)
	}
	for id := range current {
		if _, ok := incoming[id]; ok {
			continue
		}
		rep.Deleted++
		if opts.DryRun {
			continue
		}
		if err := s.store.Delete(ctx, table, id); err != nil {
			return rep, err
		}
		s.logger.Infow("deleted page", "table", table, "page", id, "actor", opts.Actor)
	}
	return rep, nil
}
