package content

import (
	"fmt"

	"github.com/faciam-dev/gcms/pkg/fieldpath"
	"github.com/faciam-dev/gcms/pkg/schema"
)

// Editor maintains the editable state of one section. All mutations funnel
// through SetField, AddItem and RemoveItem, each of which replaces the held
// data with a copy-on-write derivative; callers holding the previous Data()
// value keep a consistent snapshot.
type Editor struct {
	schema schema.SectionSchema
	data   Section
}

// NewEditor returns an editor over data conforming to s.
func NewEditor(s schema.SectionSchema, data Section) *Editor {
	if data == nil {
		data = Section{}
	}
	return &Editor{schema: s, data: data}
}

// Schema returns the section schema the editor renders.
func (e *Editor) Schema() schema.SectionSchema { return e.schema }

// Data returns the current section data.
func (e *Editor) Data() Section { return e.data }

// Value resolves the current value at path.
func (e *Editor) Value(path string) (any, bool) {
	return fieldpath.Get(e.data, path)
}

// SetField writes value at path. This is the sole mutation path for field
// edits; renderers never write into the data directly.
func (e *Editor) SetField(path string, value any) error {
	next, err := fieldpath.Set(e.data, path, value)
	if err != nil {
		return err
	}
	e.data = next
	return nil
}

// AddItem appends a default-derived item to the array field at path.
func (e *Editor) AddItem(path string) error {
	fs, err := e.fieldSchemaAt(path)
	if err != nil {
		return err
	}
	if fs.Kind != schema.KindArray || fs.Item == nil {
		return fmt.Errorf("content: %s is not an array field", path)
	}
	cur, _ := fieldpath.Get(e.data, path)
	items, _ := cur.([]any)
	next := make([]any, len(items), len(items)+1)
	copy(next, items)
	next = append(next, NewItem(*fs.Item))
	return e.SetField(path, next)
}

// RemoveItem deletes the element at index from the array field at path,
// preserving the order of the remaining items.
func (e *Editor) RemoveItem(path string, index int) error {
	cur, ok := fieldpath.Get(e.data, path)
	if !ok {
		return fmt.Errorf("content: no value at %s", path)
	}
	items, ok := cur.([]any)
	if !ok {
		return fmt.Errorf("content: %s is not a sequence", path)
	}
	if index < 0 || index >= len(items) {
		return fmt.Errorf("content: index %d out of range at %s (len %d)", index, path, len(items))
	}
	next := make([]any, 0, len(items)-1)
	next = append(next, items[:index]...)
	next = append(next, items[index+1:]...)
	return e.SetField(path, next)
}

// fieldSchemaAt resolves the field schema addressed by path, following array
// item schemas through index segments and object sub-fields through name
// segments.
func (e *Editor) fieldSchemaAt(path string) (schema.FieldSchema, error) {
	segs, err := fieldpath.Parse(path)
	if err != nil {
		return schema.FieldSchema{}, err
	}
	fields := e.schema.Fields
	var cur schema.FieldSchema
	for i, seg := range segs {
		if seg.IsIndex {
			if cur.Kind != schema.KindArray || cur.Item == nil {
				return schema.FieldSchema{}, fmt.Errorf("content: %s: index into non-array", path)
			}
			cur = *cur.Item
			fields = cur.Fields
			continue
		}
		if i > 0 && cur.Kind != schema.KindObject {
			return schema.FieldSchema{}, fmt.Errorf("content: %s: %s is not an object field", path, seg.Field)
		}
		fs, ok := fields.Get(seg.Field)
		if !ok {
			return schema.FieldSchema{}, fmt.Errorf("content: %s: no field %q declared", path, seg.Field)
		}
		cur = fs
		fields = fs.Fields
	}
	return cur, nil
}
