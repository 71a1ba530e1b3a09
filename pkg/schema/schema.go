package schema

import (
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Kind enumerates the supported field types.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindURL      Kind = "url"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindDate     Kind = "date"
	KindDatetime Kind = "datetime"
	KindTime     Kind = "time"
	KindColor    Kind = "color"
	KindRange    Kind = "range"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindFile     Kind = "file"
	KindSelect   Kind = "select"
	KindArray    Kind = "array"
	KindObject   Kind = "object"
)

var kinds = map[Kind]struct{}{
	KindText: {}, KindTextarea: {}, KindNumber: {}, KindURL: {}, KindEmail: {},
	KindTel: {}, KindDate: {}, KindDatetime: {}, KindTime: {}, KindColor: {},
	KindRange: {}, KindCheckbox: {}, KindRadio: {}, KindFile: {}, KindSelect: {},
	KindArray: {}, KindObject: {},
}

// Known reports whether k is one of the supported field kinds.
func (k Kind) Known() bool {
	_, ok := kinds[k]
	return ok
}

// Validation holds optional constraints applied by the validator.
type Validation struct {
	Min       *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	// Accept filters file inputs; enforced by the input control, not the validator.
	Accept string `yaml:"accept,omitempty" json:"accept,omitempty"`
}

// FieldSchema describes one field's shape and constraints. Composite kinds
// nest recursively: an array's Item may itself be an object whose Fields
// contain further arrays, without depth limit.
type FieldSchema struct {
	Kind        Kind         `yaml:"type" json:"type"`
	Label       string       `yaml:"label" json:"label"`
	Placeholder string       `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool         `yaml:"required,omitempty" json:"required,omitempty"`
	Validation  *Validation  `yaml:"validation,omitempty" json:"validation,omitempty"`
	Options     []string     `yaml:"options,omitempty" json:"options,omitempty"`
	Fields      Fields       `yaml:"fields,omitempty" json:"fields,omitempty"`
	Item        *FieldSchema `yaml:"itemSchema,omitempty" json:"itemSchema,omitempty"`
	Default     any          `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Help        string       `yaml:"helpText,omitempty" json:"helpText,omitempty"`
}

// SectionSchema is a named bundle of field schemas describing one section type.
type SectionSchema struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Fields      Fields `yaml:"fields" json:"fields"`
}

// Field pairs a field name with its schema. Declaration order is significant:
// it dictates form field order, so Fields is a slice rather than a map.
type Field struct {
	Name   string
	Schema FieldSchema
}

// Fields is an ordered set of named field schemas.
type Fields []Field

// Get returns the schema declared under name.
func (ff Fields) Get(name string) (FieldSchema, bool) {
	for _, f := range ff {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return FieldSchema{}, false
}

// MarshalJSON renders the fields as a JSON object preserving declaration order.
func (ff Fields) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, f := range ff {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Schema)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// UnmarshalYAML decodes a YAML mapping into Fields keeping the key order of
// the document.
func (ff *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("fields: expected mapping, got %v", node.Kind)
	}
	out := make(Fields, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		var fs FieldSchema
		if err := node.Content[i+1].Decode(&fs); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		out = append(out, Field{Name: name, Schema: fs})
	}
	*ff = out
	return nil
}

// MarshalYAML renders the fields as a YAML mapping preserving order.
func (ff Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range ff {
		var k, v yaml.Node
		if err := k.Encode(f.Name); err != nil {
			return nil, err
		}
		if err := v.Encode(f.Schema); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}

// Check verifies the structural invariants of a field schema: arrays carry an
// item schema, objects carry sub-fields, select/radio carry options and any
// pattern compiles. Nested schemas are checked recursively.
func (fs FieldSchema) Check(name string) error {
	if !fs.Kind.Known() {
		return fmt.Errorf("field %s: unknown type %q", name, fs.Kind)
	}
	switch fs.Kind {
	case KindArray:
		if fs.Item == nil {
			return fmt.Errorf("field %s: array type requires itemSchema", name)
		}
		if err := fs.Item.Check(name + "[]"); err != nil {
			return err
		}
	case KindObject:
		if len(fs.Fields) == 0 {
			return fmt.Errorf("field %s: object type requires fields", name)
		}
	case KindSelect, KindRadio:
		if len(fs.Options) == 0 {
			return fmt.Errorf("field %s: %s type requires options", name, fs.Kind)
		}
	}
	if fs.Validation != nil && fs.Validation.Pattern != "" {
		if _, err := regexp.Compile(fs.Validation.Pattern); err != nil {
			return fmt.Errorf("field %s: invalid pattern: %w", name, err)
		}
	}
	for _, sub := range fs.Fields {
		if err := sub.Schema.Check(name + "." + sub.Name); err != nil {
			return err
		}
	}
	return nil
}

// Check verifies all field invariants of a section schema.
func (s SectionSchema) Check() error {
	for _, f := range s.Fields {
		if err := f.Schema.Check(f.Name); err != nil {
			return err
		}
	}
	return nil
}
