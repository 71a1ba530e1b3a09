package schema

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreLoadBuiltinOnly(t *testing.T) {
	s := NewStore("", discard())
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := s.Get().Get("hero"); !ok {
		t.Error("built-in hero missing")
	}
}

func TestStoreLoadExtraSchemas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.yaml")
	doc := `sections:
  banner:
    name: Banner
    description: Thin promotional strip
    fields:
      message:
        type: text
        label: Message
        required: true
      link:
        type: url
        label: Link
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path, discard())
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg := s.Get()
	sec, ok := reg.Get("banner")
	if !ok {
		t.Fatal("banner not registered")
	}
	if sec.Name != "Banner" || len(sec.Fields) != 2 {
		t.Errorf("unexpected schema: %+v", sec)
	}
	if sec.Fields[0].Name != "message" {
		t.Errorf("field order lost: %v", sec.Fields[0].Name)
	}
	if _, ok := reg.Get("hero"); !ok {
		t.Error("built-ins must survive a file load")
	}
}

func TestStoreLoadBadFileKeepsCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.yaml")
	if err := os.WriteFile(path, []byte("sections:\n  hero:\n    name: Clash\n    fields:\n      t: {type: text, label: T}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path, discard())
	// "hero" collides with a built-in key, so the load must fail and the
	// initial registry keeps serving.
	if err := s.Load(); err == nil {
		t.Fatal("expected load error")
	}
	if _, ok := s.Get().Get("hero"); !ok {
		t.Error("current registry lost")
	}
}

func TestStoreReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.yaml")
	write := func(doc string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("sections:\n  banner:\n    name: Banner\n    fields:\n      message: {type: text, label: Message}\n")
	s := NewStore(path, discard())
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	write("sections:\n  banner:\n    name: Banner\n    fields:\n      message: {type: text, label: Message}\n  ribbon:\n    name: Ribbon\n    fields:\n      label: {type: text, label: Label}\n")
	if err := s.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := s.Get().Get("ribbon"); !ok {
		t.Error("reload did not pick up new section")
	}
}
