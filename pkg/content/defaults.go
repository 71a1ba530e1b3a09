package content

import (
	"fmt"

	"github.com/faciam-dev/gcms/pkg/schema"
)

// FieldDefault returns the initial value for a field: its declared default,
// or an empty sequence, mapping or string by kind.
func FieldDefault(fs schema.FieldSchema) any {
	if fs.Default != nil {
		return fs.Default
	}
	switch fs.Kind {
	case schema.KindArray:
		return []any{}
	case schema.KindObject:
		return map[string]any{}
	default:
		return ""
	}
}

// NewItem constructs a fresh element for an array field. Object items carry
// exactly the sub-field keys declared by the item schema, never a missing
// key, so the derived shape is stable however often items are added.
func NewItem(item schema.FieldSchema) any {
	if item.Kind != schema.KindObject {
		return FieldDefault(item)
	}
	obj := make(map[string]any, len(item.Fields))
	for _, f := range item.Fields {
		obj[f.Name] = FieldDefault(f.Schema)
	}
	return obj
}

// NewSection instantiates default data for a section of the given type:
// the type key, a title and one entry per declared field. Unknown types are
// an error and no section is produced.
func NewSection(reg *schema.Registry, typ, title string) (Section, error) {
	s, ok := reg.Get(typ)
	if !ok {
		return nil, fmt.Errorf("content: unknown section type %q", typ)
	}
	if title == "" {
		title = s.Name
	}
	sec := Section{"type": typ, "title": title}
	for _, f := range s.Fields {
		if f.Name == "type" || f.Name == "title" {
			continue
		}
		sec[f.Name] = FieldDefault(f.Schema)
	}
	return sec, nil
}
