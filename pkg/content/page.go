package content

import "time"

// Section is one typed block of content within a page. Beyond the reserved
// "type" and "title" keys its entries are exactly the fields declared by the
// section's schema at creation time; schema changes are not migrated onto
// already persisted sections.
type Section map[string]any

// Type returns the section-type key, or "" when absent.
func (s Section) Type() string {
	t, _ := s["type"].(string)
	return t
}

// Title returns the section title, or "" when absent.
func (s Section) Title() string {
	t, _ := s["title"].(string)
	return t
}

// Clone returns a shallow copy of the section.
func (s Section) Clone() Section {
	cp := make(Section, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

// Page is the unit of persistence: an ordered list of sections owned by one
// application table. The page id is immutable once created; it is the
// storage key. Saves always overwrite the whole record.
type Page struct {
	Page      string    `json:"page" yaml:"page"`
	Title     string    `json:"title" yaml:"title"`
	Sections  []Section `json:"sections" yaml:"sections"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	Theme     string    `json:"theme,omitempty" yaml:"theme,omitempty"`
}
