package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtnitsch/icon-asset-check/models"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// RenderOptions tunes the text report.
type RenderOptions struct {
	// ShowPresent lists assets that were found, with their sizes.
	ShowPresent bool
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r *Result, format models.OutputFormat, opts RenderOptions) error {
	switch format {
	case models.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport(r, opts))
	case models.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(jsonReport(r, opts)); err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		return enc.Close()
	default:
		return renderText(w, r, opts)
	}
}

type structuredReport struct {
	OK     bool `json:"ok" yaml:"ok"`
	Result `yaml:",inline"`
}

func jsonReport(r *Result, opts RenderOptions) structuredReport {
	out := *r
	if !opts.ShowPresent {
		out.PresentAssets = nil
	}
	return structuredReport{OK: r.OK(), Result: out}
}

func renderText(w io.Writer, r *Result, opts RenderOptions) error {
	p := &printer{w: w}

	p.printf("Found %d ids in catalog\n", r.CatalogIDs)
	p.printf("Found %d entries in manifest\n", r.ManifestEntries)

	if len(r.IDsWithoutManifest) > 0 {
		p.printf("\nCatalog IDs without manifest entries (these may be built-in icons or not-yet-mapped):\n")
		for _, id := range r.IDsWithoutManifest {
			p.printf(" - %s\n", id)
		}
	} else {
		p.printf("\nAll catalog IDs have manifest entries.\n")
	}

	p.printf("\nChecking manifest asset files...\n")
	for _, m := range r.MissingAssets {
		p.printf(" - Missing asset for manifest id=%s path=%s\n", m.ID, m.AssetPath)
	}
	if opts.ShowPresent {
		for _, a := range r.PresentAssets {
			size := "size unknown"
			if a.SizeBytes >= 0 {
				size = humanize.Bytes(uint64(a.SizeBytes))
			}
			p.printf(" - Found asset for manifest id=%s path=%s (%s)\n", a.ID, a.AssetPath, size)
		}
	}

	if !r.OK() {
		p.printf("\nValidation failed: %d missing asset %s.\n", len(r.MissingAssets), plural(len(r.MissingAssets), "file", "files"))
		return p.err
	}

	p.printf("\nValidation completed. No missing files detected.\n")
	return p.err
}

// printer keeps the first write error so the report code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
