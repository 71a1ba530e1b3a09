// Package schema defines the wire representations of the content API.
package schema

import (
	"github.com/faciam-dev/gcms/pkg/content"
)

// PagePayload is the request body for creating or overwriting a page. Saves
// always carry the entire page; there is no partial patch.
type PagePayload struct {
	Page     string            `json:"page"`
	Title    string            `json:"title,omitempty"`
	Sections []content.Section `json:"sections,omitempty"`
	Theme    string            `json:"theme,omitempty"`
}

// SectionTypeInfo summarizes one registered section type.
type SectionTypeInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddSectionPayload requests appending a section of the given type.
type AddSectionPayload struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}
