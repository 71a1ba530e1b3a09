// Package fieldpath reads and writes locations in nested section data
// addressed by path strings such as "items[2].title". Paths are parsed once
// into typed segments and then interpreted, keeping the copy-on-write logic
// independent of path syntax. The grammar allows arbitrary nesting depth:
// name, name.sub, name[0], name[0].sub[1].leaf and so on.
package fieldpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a parsed path: either a field name or a sequence
// index.
type Segment struct {
	Field string
	Index int
	// IsIndex distinguishes an index segment from a field segment.
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Field
}

// Parse splits a path expression into segments.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, fmt.Errorf("fieldpath: empty path")
	}
	var segs []Segment
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			if i == 0 || i == len(path)-1 {
				return nil, fmt.Errorf("fieldpath: %q: misplaced '.'", path)
			}
			i++
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("fieldpath: %q: unterminated index", path)
			}
			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("fieldpath: %q: bad index %q", path, path[i+1:i+end])
			}
			segs = append(segs, Segment{Index: idx, IsIndex: true})
			i += end + 1
		default:
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				if path[j] == ']' {
					return nil, fmt.Errorf("fieldpath: %q: unexpected ']'", path)
				}
				j++
			}
			segs = append(segs, Segment{Field: path[i:j]})
			i = j
		}
	}
	if len(segs) == 0 || segs[0].IsIndex {
		return nil, fmt.Errorf("fieldpath: %q: path must start with a field name", path)
	}
	return segs, nil
}

// Get resolves path inside record. The second return is false when any
// referenced field is absent, any index is out of range, or an intermediate
// value has the wrong shape. A well-formed path never causes a panic on
// malformed data.
func Get(record map[string]any, path string) (any, bool) {
	segs, err := Parse(path)
	if err != nil {
		return nil, false
	}
	var cur any = record
	for _, seg := range segs {
		if seg.IsIndex {
			arr, ok := cur.([]any)
			if !ok || seg.Index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.Index]
			continue
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg.Field]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set returns a copy of record with the location at path replaced by value.
// Containers along the path are copied so the input record and everything
// reachable from it stay untouched; branches off the path are shared.
// A missing intermediate map is created; writing through an out-of-range
// index or a non-container value is an error.
func Set(record map[string]any, path string, value any) (map[string]any, error) {
	segs, err := Parse(path)
	if err != nil {
		return nil, err
	}
	out, err := set(record, segs, value, path)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func set(cur any, segs []Segment, value any, path string) (any, error) {
	if len(segs) == 0 {
		return value, nil
	}
	seg := segs[0]
	if seg.IsIndex {
		arr, ok := cur.([]any)
		if !ok {
			return nil, fmt.Errorf("fieldpath: %q: %s is not a sequence", path, seg)
		}
		if seg.Index >= len(arr) {
			return nil, fmt.Errorf("fieldpath: %q: index %d out of range (len %d)", path, seg.Index, len(arr))
		}
		cp := make([]any, len(arr))
		copy(cp, arr)
		child, err := set(cp[seg.Index], segs[1:], value, path)
		if err != nil {
			return nil, err
		}
		cp[seg.Index] = child
		return cp, nil
	}
	var m map[string]any
	switch t := cur.(type) {
	case map[string]any:
		m = t
	case nil:
		m = nil
	default:
		return nil, fmt.Errorf("fieldpath: %q: %s is not a mapping", path, seg.Field)
	}
	cp := make(map[string]any, len(m)+1)
	for k, v := range m {
		cp[k] = v
	}
	child, err := set(cp[seg.Field], segs[1:], value, path)
	if err != nil {
		return nil, err
	}
	cp[seg.Field] = child
	return cp, nil
}
