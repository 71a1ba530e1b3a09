package content

import (
	"context"
	"fmt"
	"time"

	"github.com/faciam-dev/gcms/pkg/schema"
)

// Saver is the slice of the page store the lifecycle needs to commit a page.
type Saver interface {
	Save(ctx context.Context, tableID string, p Page) error
}

// Lifecycle orchestrates adding and removing sections and persisting edited
// pages. It holds no state of its own; pages are edited in memory and
// committed wholesale.
type Lifecycle struct {
	Registry *schema.Registry
}

// AddSection appends a new default-initialized section of the given type.
// An unknown type fails and leaves the page untouched.
func (l *Lifecycle) AddSection(p *Page, typ, title string) error {
	sec, err := NewSection(l.Registry, typ, title)
	if err != nil {
		return err
	}
	p.Sections = append(p.Sections, sec)
	return nil
}

// RemoveSection deletes the section at index, preserving the relative order
// of the remaining sections. Confirmation is the caller's concern.
func (l *Lifecycle) RemoveSection(p *Page, index int) error {
	if index < 0 || index >= len(p.Sections) {
		return fmt.Errorf("content: section index %d out of range (len %d)", index, len(p.Sections))
	}
	p.Sections = append(p.Sections[:index], p.Sections[index+1:]...)
	return nil
}

// EditorFor returns an editor for the section at index. A section whose type
// is no longer registered yields ok=false: callers should render an
// unrecognized-section state that allows removal but not schema-driven
// editing.
func (l *Lifecycle) EditorFor(p *Page, index int) (*Editor, bool, error) {
	if index < 0 || index >= len(p.Sections) {
		return nil, false, fmt.Errorf("content: section index %d out of range (len %d)", index, len(p.Sections))
	}
	sec := p.Sections[index]
	s, ok := l.Registry.Get(sec.Type())
	if !ok {
		return nil, false, nil
	}
	return NewEditor(s, sec), true, nil
}

// Validate runs schema validation over every section of the page, qualifying
// errors with the section index.
func (l *Lifecycle) Validate(p *Page) schema.Result {
	var errs []string
	for i, sec := range p.Sections {
		res := schema.ValidateSection(l.Registry, sec.Type(), sec)
		for _, e := range res.Errors {
			errs = append(errs, fmt.Sprintf("sections[%d]: %s", i, e))
		}
	}
	return schema.Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateKnown validates only sections whose type is still registered.
// Sections of an unregistered type were persisted under an older registry;
// they are kept as-is rather than rejected, so saving a page that carries
// one still works after the registry changed.
func (l *Lifecycle) ValidateKnown(p *Page) schema.Result {
	var errs []string
	for i, sec := range p.Sections {
		if _, ok := l.Registry.Get(sec.Type()); !ok {
			continue
		}
		res := schema.ValidateSection(l.Registry, sec.Type(), sec)
		for _, e := range res.Errors {
			errs = append(errs, fmt.Sprintf("sections[%d]: %s", i, e))
		}
	}
	return schema.Result{Valid: len(errs) == 0, Errors: errs}
}

// Save stamps the page and commits the whole record to the store. There is
// no conflict detection: two editors saving concurrently race and the last
// committed version wins. Store failures are returned to the caller, who
// retries by resubmitting; local edits stay intact.
func (l *Lifecycle) Save(ctx context.Context, store Saver, tableID string, p *Page) error {
	if p.Page == "" {
		return fmt.Errorf("content: page id is required")
	}
	p.UpdatedAt = time.Now().UTC()
	if err := store.Save(ctx, tableID, *p); err != nil {
		return fmt.Errorf("save page %s/%s: %w", tableID, p.Page, err)
	}
	return nil
}
