// Package layout groups catalog definitions by page for display.
package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dtnitsch/icon-asset-check/models"
	"gopkg.in/yaml.v3"
)

// PageGroup is one page and its definitions in file order.
type PageGroup struct {
	Page  int                     `json:"page" yaml:"page"`
	Icons []models.IconDefinition `json:"icons" yaml:"icons"`
}

// Group buckets defs by page. Pages come out in ascending order and each
// page keeps the order its definitions appeared in.
func Group(defs []models.IconDefinition) []PageGroup {
	byPage := make(map[int][]models.IconDefinition)
	for _, d := range defs {
		byPage[d.Page] = append(byPage[d.Page], d)
	}

	pages := make([]int, 0, len(byPage))
	for p := range byPage {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	groups := make([]PageGroup, 0, len(pages))
	for _, p := range pages {
		groups = append(groups, PageGroup{Page: p, Icons: byPage[p]})
	}
	return groups
}

// Render writes groups to w.
func Render(w io.Writer, groups []PageGroup, format models.OutputFormat) error {
	switch format {
	case models.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"pages": groups})
	case models.OutputYAML:
		data, err := yaml.Marshal(map[string]any{"pages": groups})
		if err != nil {
			return fmt.Errorf("failed to marshal layout: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	if _, err := fmt.Fprintln(w, "Icon layout by page"); err != nil {
		return err
	}
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "\n=== Page %d ===\n", g.Page); err != nil {
			return err
		}
		for _, d := range g.Icons {
			if _, err := fmt.Fprintf(w, "- %s | %s | %s\n", d.ID, d.LabelOrEmpty(), d.RouteOrEmpty()); err != nil {
				return err
			}
		}
	}
	return nil
}
