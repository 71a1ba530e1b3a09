package fieldpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func record() map[string]any {
	return map[string]any{
		"title": "Our Services",
		"items": []any{
			map[string]any{"title": "Massage", "price": "$120"},
			map[string]any{"title": "Yoga", "price": "$45"},
		},
		"contact": map[string]any{
			"address": map[string]any{"city": "Ubud"},
		},
	}
}

func TestParse(t *testing.T) {
	segs, err := Parse("items[2].title")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Segment{{Field: "items"}, {Index: 2, IsIndex: true}, {Field: "title"}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, path := range []string{"", "[0]", "items[", "items[x]", "items[-1]", ".title", "title.", "items]0["} {
		if _, err := Parse(path); err == nil {
			t.Errorf("Parse(%q): expected error", path)
		}
	}
}

func TestGet(t *testing.T) {
	r := record()
	v, ok := Get(r, "items[1].title")
	if !ok || v != "Yoga" {
		t.Fatalf("Get items[1].title = %v, %v", v, ok)
	}
	v, ok = Get(r, "contact.address.city")
	if !ok || v != "Ubud" {
		t.Fatalf("Get contact.address.city = %v, %v", v, ok)
	}
	if _, ok := Get(r, "items[5].title"); ok {
		t.Error("out-of-range index should not resolve")
	}
	if _, ok := Get(r, "title.sub"); ok {
		t.Error("field access on a string should not resolve")
	}
	if _, ok := Get(r, "missing"); ok {
		t.Error("absent field should not resolve")
	}
}

func TestSetRoundTrip(t *testing.T) {
	r := record()
	for _, tc := range []struct {
		path  string
		value any
	}{
		{"title", "Updated"},
		{"items[0].price", "$130"},
		{"contact.address.city", "Canggu"},
	} {
		out, err := Set(r, tc.path, tc.value)
		if err != nil {
			t.Fatalf("Set(%s): %v", tc.path, err)
		}
		got, ok := Get(out, tc.path)
		if !ok || got != tc.value {
			t.Errorf("Get(Set(%s)) = %v, want %v", tc.path, got, tc.value)
		}
	}
}

func TestSetDoesNotMutateInput(t *testing.T) {
	r := record()
	out, err := Set(r, "items[0].title", "Facial")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := Get(r, "items[0].title"); v != "Massage" {
		t.Errorf("input record mutated: items[0].title = %v", v)
	}
	if v, _ := Get(out, "items[0].title"); v != "Facial" {
		t.Errorf("output missing update: items[0].title = %v", v)
	}
	// Untouched branches are shared, not copied.
	if v, _ := Get(out, "items[1].title"); v != "Yoga" {
		t.Errorf("sibling item lost: %v", v)
	}
}

func TestSetCreatesMissingMaps(t *testing.T) {
	out, err := Set(map[string]any{}, "contact.address.city", "Ubud")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := Get(out, "contact.address.city"); !ok || v != "Ubud" {
		t.Fatalf("Get = %v, %v", v, ok)
	}
}

func TestSetErrors(t *testing.T) {
	r := record()
	if _, err := Set(r, "items[9].title", "x"); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := Set(r, "title[0]", "x"); err == nil {
		t.Error("expected non-sequence error")
	}
	if _, err := Set(r, "title.sub", "x"); err == nil {
		t.Error("expected non-mapping error")
	}
}
