// Package manifest loads the icons metadata document that maps icon ids
// to asset files.
package manifest

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/icon-asset-check/models"
)

// Manifest is the loaded icons document, keyed by id.
// Order keeps ids in document order so reports are stable.
type Manifest struct {
	Entries map[string]models.ManifestEntry
	Order   []string
	// Skipped counts entries dropped by a lenient load.
	Skipped int
}

// Len returns the number of distinct ids.
func (m *Manifest) Len() int {
	return len(m.Order)
}

// Has reports whether id has an entry.
func (m *Manifest) Has(id string) bool {
	_, ok := m.Entries[id]
	return ok
}

// Get returns the entry for id.
func (m *Manifest) Get(id string) (models.ManifestEntry, bool) {
	e, ok := m.Entries[id]
	return e, ok
}

// All returns the entries in document order.
func (m *Manifest) All() []models.ManifestEntry {
	out := make([]models.ManifestEntry, 0, len(m.Order))
	for _, id := range m.Order {
		out = append(out, m.Entries[id])
	}
	return out
}

// ParseError means the manifest is not valid JSON.
type ParseError struct {
	Source string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("manifest %s: invalid JSON at offset %d: %v", e.Source, e.Offset, e.Err)
	}
	return fmt.Sprintf("manifest %s: invalid JSON: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError means the JSON is well formed but an entry is unusable.
// Index is -1 when the problem is with the document rather than an entry.
type SchemaError struct {
	Source string
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("manifest %s: %s: %s", e.Source, e.Field, e.Reason)
	}
	return fmt.Sprintf("manifest %s: icons[%d].%s: %s", e.Source, e.Index, e.Field, e.Reason)
}

// DuplicateIDError means two entries share an id.
type DuplicateIDError struct {
	Source      string
	ID          string
	FirstIndex  int
	SecondIndex int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("manifest %s: duplicate id %q at icons[%d] and icons[%d]",
		e.Source, e.ID, e.FirstIndex, e.SecondIndex)
}

// IsInvalid reports whether err came from a malformed manifest
// rather than from reading it.
func IsInvalid(err error) bool {
	var (
		pe *ParseError
		se *SchemaError
		de *DuplicateIDError
	)
	return errors.As(err, &pe) || errors.As(err, &se) || errors.As(err, &de)
}
