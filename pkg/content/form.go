package content

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"

	"github.com/faciam-dev/gcms/pkg/fieldpath"
	"github.com/faciam-dev/gcms/pkg/schema"
)

// FormField is the renderable representation of one field. Composite fields
// carry their nested fields in Children: one entry per item for arrays, one
// per declared sub-field for objects. A field whose kind is not recognized is
// flagged Unsupported and rendered as a placeholder; sibling fields are
// unaffected.
type FormField struct {
	Name        string       `json:"name"`
	Path        string       `json:"path"`
	Kind        schema.Kind  `json:"kind"`
	Label       string       `json:"label"`
	Placeholder string       `json:"placeholder,omitempty"`
	Help        string       `json:"helpText,omitempty"`
	Required    bool         `json:"required,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Value       any          `json:"value"`
	Unsupported bool         `json:"unsupported,omitempty"`
	CanAdd      bool         `json:"canAdd,omitempty"`
	CanRemove   bool         `json:"canRemove,omitempty"`
	Children    []FormField  `json:"children,omitempty"`
	Validation  *schema.Validation `json:"validation,omitempty"`
}

// Form walks the declared fields in declaration order and produces the form
// model for the editor's current data. Declaration order dictates on-screen
// field order.
func (e *Editor) Form() []FormField {
	out := make([]FormField, 0, len(e.schema.Fields))
	for _, f := range e.schema.Fields {
		v, _ := fieldpath.Get(e.data, f.Name)
		out = append(out, buildField(f.Name, f.Name, f.Schema, v))
	}
	return out
}

func buildField(name, path string, fs schema.FieldSchema, value any) FormField {
	ff := FormField{
		Name:        name,
		Path:        path,
		Kind:        fs.Kind,
		Label:       label(name, fs),
		Placeholder: fs.Placeholder,
		Help:        fs.Help,
		Required:    fs.Required,
		Options:     fs.Options,
		Value:       value,
		Validation:  fs.Validation,
	}
	switch {
	case !fs.Kind.Known():
		ff.Unsupported = true
	case fs.Kind == schema.KindArray && fs.Item != nil:
		ff.CanAdd = true
		items, _ := value.([]any)
		for i, item := range items {
			ipath := fmt.Sprintf("%s[%d]", path, i)
			child := buildField(itemLabel(*fs.Item, fs, i), ipath, *fs.Item, item)
			child.CanRemove = true
			ff.Children = append(ff.Children, child)
		}
	case fs.Kind == schema.KindObject:
		obj, _ := value.(map[string]any)
		for _, sub := range fs.Fields {
			ff.Children = append(ff.Children, buildField(sub.Name, path+"."+sub.Name, sub.Schema, obj[sub.Name]))
		}
	}
	return ff
}

// label prefers the declared label and otherwise derives one from the field
// name, e.g. guestCount becomes "Guest count".
func label(name string, fs schema.FieldSchema) string {
	if fs.Label != "" {
		return fs.Label
	}
	l := strcase.ToDelimited(name, ' ')
	if l == "" {
		return name
	}
	return strings.ToUpper(l[:1]) + l[1:]
}

// itemLabel names one array element, e.g. "Image 2" for the second entry of
// a field labelled "Images".
func itemLabel(item schema.FieldSchema, arr schema.FieldSchema, index int) string {
	l := item.Label
	if l == "" {
		l = inflection.Singular(arr.Label)
	}
	if l == "" {
		l = "Item"
	}
	return fmt.Sprintf("%s %d", l, index+1)
}
