package schema

import (
	"fmt"
	"regexp"

	"github.com/spf13/cast"
)

// Result aggregates the outcome of validating one section's data.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// isEmpty reports whether a value counts as absent for required checks:
// nil, the empty string or an empty sequence.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}

// ValidateField validates value against fs, returning human-readable messages.
// An empty slice means the value is valid. Errors are data, never panics or
// error returns, so a form can show every violation at once.
//
// A required field that is absent yields exactly one message and no further
// checks run. An optional absent field is always valid. Array and object
// fields recurse, qualifying nested names as name[i] and name.sub so each
// message points at the offending leaf.
func ValidateField(fs FieldSchema, value any, name string) []string {
	var errs []string

	if fs.Required && isEmpty(value) {
		return append(errs, fmt.Sprintf("%s is required", fs.Label))
	}
	if isEmpty(value) {
		return errs
	}

	switch fs.Kind {
	case KindEmail:
		if s, ok := value.(string); ok && !IsEmail(s) {
			errs = append(errs, fmt.Sprintf("%s must be a valid email address", fs.Label))
		}
	case KindTel:
		if s, ok := value.(string); ok && !IsPhone(s) {
			errs = append(errs, fmt.Sprintf("%s must be a valid phone number", fs.Label))
		}
	case KindURL:
		if s, ok := value.(string); ok && !IsURL(s) {
			errs = append(errs, fmt.Sprintf("%s must be a valid URL", fs.Label))
		}
	case KindNumber:
		n, err := cast.ToFloat64E(value)
		if err != nil || fs.Validation == nil {
			break
		}
		if fs.Validation.Min != nil && n < *fs.Validation.Min {
			errs = append(errs, fmt.Sprintf("%s must be at least %v", fs.Label, *fs.Validation.Min))
		}
		if fs.Validation.Max != nil && n > *fs.Validation.Max {
			errs = append(errs, fmt.Sprintf("%s must be no more than %v", fs.Label, *fs.Validation.Max))
		}
	case KindText, KindTextarea:
		s, ok := value.(string)
		if !ok || fs.Validation == nil {
			break
		}
		if fs.Validation.MinLength != nil && len(s) < *fs.Validation.MinLength {
			errs = append(errs, fmt.Sprintf("%s must be at least %d characters", fs.Label, *fs.Validation.MinLength))
		}
		if fs.Validation.MaxLength != nil && len(s) > *fs.Validation.MaxLength {
			errs = append(errs, fmt.Sprintf("%s must be no more than %d characters", fs.Label, *fs.Validation.MaxLength))
		}
		if fs.Validation.Pattern != "" {
			// Patterns are verified to compile at registration time.
			if !regexp.MustCompile(fs.Validation.Pattern).MatchString(s) {
				errs = append(errs, fmt.Sprintf("%s format is invalid", fs.Label))
			}
		}
	case KindArray:
		items, ok := value.([]any)
		if !ok || fs.Item == nil {
			break
		}
		for i, item := range items {
			errs = append(errs, ValidateField(*fs.Item, item, fmt.Sprintf("%s[%d]", name, i))...)
		}
	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			break
		}
		for _, sub := range fs.Fields {
			errs = append(errs, ValidateField(sub.Schema, obj[sub.Name], name+"."+sub.Name)...)
		}
	}
	// Remaining kinds (checkbox, radio, select, file, date, datetime, time,
	// range, color) are constrained by the input control, not the validator.

	return errs
}

// ValidateSection validates data against the schema registered for typ.
// Unknown section types are reported as a single error, not a lookup failure.
func ValidateSection(reg *Registry, typ string, data map[string]any) Result {
	s, ok := reg.Get(typ)
	if !ok {
		return Result{Valid: false, Errors: []string{fmt.Sprintf("Unknown section type: %s", typ)}}
	}
	var errs []string
	for _, f := range s.Fields {
		errs = append(errs, ValidateField(f.Schema, data[f.Name], f.Name)...)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
