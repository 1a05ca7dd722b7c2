package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/icon-asset-check/models"
)

// Load decodes a manifest of the form {"icons": [{"id": ..., "assetPath": ...}, ...]}.
// source names the document in errors.
//
// Entries missing id or assetPath are a SchemaError unless opts.Lenient is
// set, in which case they are skipped. A repeated id is a DuplicateIDError
// unless opts.AllowDuplicates is set, in which case the later entry wins.
func Load(r io.Reader, source string, opts models.ManifestOptions) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", source, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		var typ *json.UnmarshalTypeError
		if errors.As(err, &typ) {
			return nil, &SchemaError{Source: source, Index: -1, Field: "document", Reason: "top level must be an object"}
		}
		pe := &ParseError{Source: source, Err: err}
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			pe.Offset = syn.Offset
		}
		return nil, pe
	}

	m := &Manifest{Entries: make(map[string]models.ManifestEntry)}

	rawIcons, ok := doc["icons"]
	if !ok || bytes.Equal(bytes.TrimSpace(rawIcons), []byte("null")) {
		return m, nil
	}

	var icons []json.RawMessage
	if err := json.Unmarshal(rawIcons, &icons); err != nil {
		return nil, &SchemaError{Source: source, Index: -1, Field: "icons", Reason: "must be an array"}
	}

	firstIndex := make(map[string]int, len(icons))
	for i, raw := range icons {
		entry, err := decodeEntry(raw, source, i)
		if err != nil {
			if opts.Lenient {
				m.Skipped++
				continue
			}
			return nil, err
		}

		if first, dup := firstIndex[entry.ID]; dup {
			if !opts.AllowDuplicates {
				return nil, &DuplicateIDError{Source: source, ID: entry.ID, FirstIndex: first, SecondIndex: i}
			}
			m.Entries[entry.ID] = entry
			continue
		}

		firstIndex[entry.ID] = i
		m.Entries[entry.ID] = entry
		m.Order = append(m.Order, entry.ID)
	}

	return m, nil
}

// LoadFile opens path and loads it. The file is closed on every return path.
func LoadFile(path string, opts models.ManifestOptions) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return Load(f, path, opts)
}

func decodeEntry(raw json.RawMessage, source string, index int) (models.ManifestEntry, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.ManifestEntry{}, &SchemaError{Source: source, Index: index, Field: "entry", Reason: "must be an object"}
	}

	id, err := requireString(fields, "id", source, index)
	if err != nil {
		return models.ManifestEntry{}, err
	}
	assetPath, err := requireString(fields, "assetPath", source, index)
	if err != nil {
		return models.ManifestEntry{}, err
	}

	delete(fields, "id")
	delete(fields, "assetPath")
	entry := models.ManifestEntry{ID: id, AssetPath: assetPath}
	if len(fields) > 0 {
		entry.Extra = fields
	}
	return entry, nil
}

func requireString(fields map[string]any, key, source string, index int) (string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", &SchemaError{Source: source, Index: index, Field: key, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Source: source, Index: index, Field: key, Reason: "must be a string"}
	}
	if s == "" {
		return "", &SchemaError{Source: source, Index: index, Field: key, Reason: "must not be empty"}
	}
	return s, nil
}
