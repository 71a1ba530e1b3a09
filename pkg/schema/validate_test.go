package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateFieldRequired(t *testing.T) {
	fs := FieldSchema{Kind: KindText, Label: "Section Title", Required: true}
	for _, v := range []any{nil, "", []any{}} {
		errs := ValidateField(fs, v, "title")
		want := []string{"Section Title is required"}
		if diff := cmp.Diff(want, errs); diff != "" {
			t.Errorf("value %#v (-want +got):\n%s", v, diff)
		}
	}
}

func TestValidateFieldOptionalAbsent(t *testing.T) {
	fs := FieldSchema{Kind: KindEmail, Label: "Email Address"}
	for _, v := range []any{nil, ""} {
		if errs := ValidateField(fs, v, "email"); len(errs) != 0 {
			t.Errorf("value %#v: unexpected errors %v", v, errs)
		}
	}
}

func TestValidateFieldFormats(t *testing.T) {
	tests := []struct {
		name  string
		fs    FieldSchema
		value any
		want  []string
	}{
		{
			name:  "bad email",
			fs:    FieldSchema{Kind: KindEmail, Label: "Email Address"},
			value: "not-an-email",
			want:  []string{"Email Address must be a valid email address"},
		},
		{
			name:  "good email",
			fs:    FieldSchema{Kind: KindEmail, Label: "Email Address"},
			value: "contact@business.com",
		},
		{
			name:  "bad phone",
			fs:    FieldSchema{Kind: KindTel, Label: "Phone Number"},
			value: "call me",
			want:  []string{"Phone Number must be a valid phone number"},
		},
		{
			name:  "phone with separators",
			fs:    FieldSchema{Kind: KindTel, Label: "Phone Number"},
			value: "984-789-0731",
		},
		{
			name:  "bad url",
			fs:    FieldSchema{Kind: KindURL, Label: "Image URL"},
			value: "notaurl",
			want:  []string{"Image URL must be a valid URL"},
		},
		{
			name:  "good url",
			fs:    FieldSchema{Kind: KindURL, Label: "Image URL"},
			value: "https://example.com/image.jpg",
		},
		{
			name:  "number below min",
			fs:    FieldSchema{Kind: KindNumber, Label: "Guest Count", Validation: &Validation{Min: fptr(1), Max: fptr(20)}},
			value: 0.5,
			want:  []string{"Guest Count must be at least 1"},
		},
		{
			name:  "number above max",
			fs:    FieldSchema{Kind: KindNumber, Label: "Guest Count", Validation: &Validation{Min: fptr(1), Max: fptr(20)}},
			value: 21,
			want:  []string{"Guest Count must be no more than 20"},
		},
		{
			name:  "pattern mismatch",
			fs:    FieldSchema{Kind: KindText, Label: "Price", Validation: &Validation{Pattern: `^(Free|\$\d+(\.\d{2})?)$`}},
			value: "20 bucks",
			want:  []string{"Price format is invalid"},
		},
		{
			name:  "pattern match",
			fs:    FieldSchema{Kind: KindText, Label: "Price", Validation: &Validation{Pattern: `^(Free|\$\d+(\.\d{2})?)$`}},
			value: "$25.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateField(tt.fs, tt.value, "f")
			if diff := cmp.Diff(tt.want, errs); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateFieldTextLength(t *testing.T) {
	min, max := 3, 5
	fs := FieldSchema{Kind: KindText, Label: "Title", Validation: &Validation{MinLength: &min, MaxLength: &max}}
	if errs := ValidateField(fs, "ab", "t"); len(errs) != 1 || !strings.Contains(errs[0], "at least 3") {
		t.Errorf("short value: %v", errs)
	}
	if errs := ValidateField(fs, "abcdef", "t"); len(errs) != 1 || !strings.Contains(errs[0], "no more than 5") {
		t.Errorf("long value: %v", errs)
	}
	if errs := ValidateField(fs, "abcd", "t"); len(errs) != 0 {
		t.Errorf("valid value: %v", errs)
	}
}

func TestValidateSectionServices(t *testing.T) {
	reg := Default()
	data := map[string]any{
		"title": "Our Packages",
		"items": []any{
			map[string]any{"title": "", "price": "$120"},
			map[string]any{"title": "Yoga", "price": "$45"},
		},
	}
	res := ValidateSection(reg, "services", data)
	if res.Valid {
		t.Fatal("expected invalid")
	}
	want := []string{"Package Title is required"}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}
}

func TestValidateSectionNestedAccumulates(t *testing.T) {
	reg := Default()
	data := map[string]any{
		"title": "Upcoming Events",
		"events": []any{
			map[string]any{
				"title":    "Showcase",
				"date":     "2026-06-01",
				"location": "",
				"price":    "20 bucks",
			},
		},
	}
	res := ValidateSection(reg, "events", data)
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", res.Errors)
	}
}

func TestValidateSectionUnknownType(t *testing.T) {
	reg := Default()
	res := ValidateSection(reg, "testimonial-old", map[string]any{})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	want := []string{"Unknown section type: testimonial-old"}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}
}

func TestValidateSectionValid(t *testing.T) {
	reg := Default()
	data := map[string]any{
		"title": "Ready to Book?",
		"email": "contact@business.com",
		"phone": "+19847890731",
	}
	if res := ValidateSection(reg, "contact", data); !res.Valid {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}
