package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/faciam-dev/gcms/pkg/schema"
)

type fakeSaver struct {
	saved []Page
	err   error
}

func (f *fakeSaver) Save(ctx context.Context, tableID string, p Page) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, p)
	return nil
}

func TestLifecycleAddRemoveSection(t *testing.T) {
	lc := &Lifecycle{Registry: schema.Default()}
	p := &Page{Page: "home", Title: "Home"}
	if err := lc.AddSection(p, "hero", "Welcome"); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if err := lc.AddSection(p, "contact", ""); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if err := lc.AddSection(p, "legacy-widget", ""); err == nil {
		t.Fatal("unknown type must fail")
	}
	if len(p.Sections) != 2 {
		t.Fatalf("sections = %d", len(p.Sections))
	}
	if err := lc.RemoveSection(p, 0); err != nil {
		t.Fatalf("RemoveSection: %v", err)
	}
	if p.Sections[0].Type() != "contact" {
		t.Errorf("remaining section = %q", p.Sections[0].Type())
	}
	if err := lc.RemoveSection(p, 7); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestLifecycleEditorFor(t *testing.T) {
	lc := &Lifecycle{Registry: schema.Default()}
	p := &Page{Page: "home", Sections: []Section{
		{"type": "hero", "title": "Welcome"},
		{"type": "retired-type", "title": "Old"},
	}}
	ed, ok, err := lc.EditorFor(p, 0)
	if err != nil || !ok || ed == nil {
		t.Fatalf("EditorFor(0) = %v, %v, %v", ed, ok, err)
	}
	// Unregistered type: removable but not editable.
	ed, ok, err = lc.EditorFor(p, 1)
	if err != nil {
		t.Fatalf("EditorFor(1): %v", err)
	}
	if ok || ed != nil {
		t.Errorf("expected unrecognized state, got %v, %v", ed, ok)
	}
	if _, _, err := lc.EditorFor(p, 9); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestLifecycleValidatePrefixesIndex(t *testing.T) {
	lc := &Lifecycle{Registry: schema.Default()}
	p := &Page{Page: "home", Sections: []Section{
		{"type": "hero", "title": "Welcome"},
		{"type": "contact", "title": "Book", "email": "nope"},
	}}
	res := lc.Validate(p)
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "sections[1]: ") {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestLifecycleValidateKnownSkipsRetiredTypes(t *testing.T) {
	lc := &Lifecycle{Registry: schema.Default()}
	p := &Page{Page: "home", Sections: []Section{
		{"type": "retired-type", "title": "Old", "legacy": true},
		{"type": "hero", "title": "Welcome"},
	}}
	if res := lc.ValidateKnown(p); !res.Valid {
		t.Errorf("retired section must be skipped, errors = %v", res.Errors)
	}
	// Full Validate still reports it.
	if res := lc.Validate(p); res.Valid {
		t.Error("Validate must flag the unregistered type")
	}

	p.Sections = append(p.Sections, Section{"type": "contact", "title": "Book", "email": "nope"})
	res := lc.ValidateKnown(p)
	if res.Valid || len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "sections[2]: ") {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestLifecycleSave(t *testing.T) {
	lc := &Lifecycle{Registry: schema.Default()}
	saver := &fakeSaver{}
	p := &Page{Page: "home", Title: "Home"}
	if err := lc.Save(context.Background(), saver, "default", p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
	if len(saver.saved) != 1 || saver.saved[0].Page != "home" {
		t.Errorf("saved = %+v", saver.saved)
	}

	if err := lc.Save(context.Background(), saver, "default", &Page{}); err == nil {
		t.Error("missing page id must fail")
	}

	boom := errors.New("disk full")
	saver.err = boom
	if err := lc.Save(context.Background(), saver, "default", p); !errors.Is(err, boom) {
		t.Errorf("store error not surfaced: %v", err)
	}
}
