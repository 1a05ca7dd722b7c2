// Package validator cross-references catalog icon ids against the
// manifest and checks that every manifest asset exists on disk.
package validator

import (
	"sort"

	"github.com/dtnitsch/icon-asset-check/pkg/manifest"
	"github.com/dtnitsch/icon-asset-check/pkg/storage"
)

// Exit statuses for validate-icons.
const (
	ExitOK            = 0
	ExitFatal         = 1
	ExitMissingAssets = 2
)

// AssetChecker answers whether a project-relative asset path exists.
type AssetChecker interface {
	HasFile(rel string) bool
}

// sizer is implemented by checkers that can report file sizes.
type sizer interface {
	GetFileStats(rel string) (*storage.FileStats, error)
}

// MissingAsset is a manifest entry whose asset file does not exist.
type MissingAsset struct {
	ID        string `json:"id" yaml:"id"`
	AssetPath string `json:"asset_path" yaml:"asset_path"`
}

// PresentAsset is a manifest entry whose asset file exists.
// SizeBytes is -1 when the checker can't report sizes.
type PresentAsset struct {
	ID        string `json:"id" yaml:"id"`
	AssetPath string `json:"asset_path" yaml:"asset_path"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// Result is everything one validation pass found.
type Result struct {
	CatalogIDs         int            `json:"catalog_ids" yaml:"catalog_ids"`
	ManifestEntries    int            `json:"manifest_entries" yaml:"manifest_entries"`
	IDsWithoutManifest []string       `json:"ids_without_manifest" yaml:"ids_without_manifest"`
	MissingAssets      []MissingAsset `json:"missing_assets" yaml:"missing_assets"`
	PresentAssets      []PresentAsset `json:"present_assets,omitempty" yaml:"present_assets,omitempty"`
}

// OK reports whether every manifest asset exists. Ids without a manifest
// entry are advisory and never affect it.
func (r *Result) OK() bool {
	return len(r.MissingAssets) == 0
}

// ExitCode maps the result to the tool's exit status.
func (r *Result) ExitCode() int {
	if r.OK() {
		return ExitOK
	}
	return ExitMissingAssets
}

// Validate compares catalogIDs with m and checks every manifest asset.
// All missing assets are collected; nothing stops at the first one.
func Validate(catalogIDs []string, m *manifest.Manifest, checker AssetChecker) *Result {
	r := &Result{
		ManifestEntries:    m.Len(),
		IDsWithoutManifest: []string{},
		MissingAssets:      []MissingAsset{},
	}

	seen := make(map[string]struct{}, len(catalogIDs))
	for _, id := range catalogIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if !m.Has(id) {
			r.IDsWithoutManifest = append(r.IDsWithoutManifest, id)
		}
	}
	r.CatalogIDs = len(seen)
	sort.Strings(r.IDsWithoutManifest)

	sz, canSize := checker.(sizer)
	for _, entry := range m.All() {
		if !checker.HasFile(entry.AssetPath) {
			r.MissingAssets = append(r.MissingAssets, MissingAsset{ID: entry.ID, AssetPath: entry.AssetPath})
			continue
		}
		present := PresentAsset{ID: entry.ID, AssetPath: entry.AssetPath, SizeBytes: -1}
		if canSize {
			if stats, err := sz.GetFileStats(entry.AssetPath); err == nil {
				present.SizeBytes = stats.SizeBytes
			}
		}
		r.PresentAssets = append(r.PresentAssets, present)
	}

	return r
}
