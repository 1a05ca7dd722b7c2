// Package catalog recovers icon definitions from the catalog source file.
//
// It does not parse Dart. Each line is matched against a handful of
// patterns and a small state machine tracks the current page and the
// definition block being read. Blocks that never close, or close without
// an id, are dropped without error.
package catalog

import (
	"fmt"
	"iter"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dtnitsch/icon-asset-check/models"
)

// Built-in patterns matching main_feature_icon_catalog.dart.
const (
	DefaultPageStart       = `MainFeaturePage\(index:\s*(\d+)`
	DefaultDefinitionStart = `MainFeatureIcon\(`
	DefaultID              = `id:\s*'([^']+)'`
	DefaultLabel           = `label:\s*'([^']+)'`
	DefaultRoute           = `routeName:\s*AppRoutes\.([A-Za-z0-9_]+)`
	DefaultBlockClose      = `^\s*\),\s*$`
)

// Extractor holds the compiled line patterns.
type Extractor struct {
	pageStart       *regexp.Regexp
	definitionStart *regexp.Regexp
	id              *regexp.Regexp
	label           *regexp.Regexp
	route           *regexp.Regexp
	blockClose      *regexp.Regexp
}

// Stats counts what the extractor saw besides the definitions it emitted.
// It is filled in as the sequence returned by Extract is consumed.
type Stats struct {
	Emitted int `json:"emitted" yaml:"emitted"`
	// DroppedNoID counts blocks that closed without an id.
	DroppedNoID int `json:"dropped_no_id" yaml:"dropped_no_id"`
	// Abandoned counts blocks replaced by a new block start or cut off by end of input.
	Abandoned int `json:"abandoned" yaml:"abandoned"`
	// BeforePage counts definition starts seen before any page marker.
	BeforePage int `json:"before_page" yaml:"before_page"`
	// PageMarkers counts page-start lines seen, including repeats of one index.
	PageMarkers int `json:"page_markers" yaml:"page_markers"`
	// BadPageMarkers counts page-start lines whose index doesn't fit an int.
	// The current page is left unchanged for them.
	BadPageMarkers int `json:"bad_page_markers" yaml:"bad_page_markers"`
}

// Malformed is the number of blocks that produced no definition.
func (s Stats) Malformed() int {
	return s.DroppedNoID + s.Abandoned
}

// NewExtractor compiles the patterns in cfg, falling back to the
// built-in pattern for every empty field.
func NewExtractor(cfg models.PatternConfig) (*Extractor, error) {
	compile := func(name, override, def string) (*regexp.Regexp, error) {
		expr := def
		if override != "" {
			expr = override
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", name, expr, err)
		}
		return re, nil
	}

	var (
		e   Extractor
		err error
	)
	if e.pageStart, err = compile("page_start", cfg.PageStart, DefaultPageStart); err != nil {
		return nil, err
	}
	if e.pageStart.NumSubexp() < 1 {
		return nil, fmt.Errorf("page_start pattern must capture the page index")
	}
	if e.definitionStart, err = compile("definition_start", cfg.DefinitionStart, DefaultDefinitionStart); err != nil {
		return nil, err
	}
	if e.id, err = compile("id", cfg.ID, DefaultID); err != nil {
		return nil, err
	}
	if e.label, err = compile("label", cfg.Label, DefaultLabel); err != nil {
		return nil, err
	}
	if e.route, err = compile("route", cfg.Route, DefaultRoute); err != nil {
		return nil, err
	}
	if e.blockClose, err = compile("block_close", cfg.BlockClose, DefaultBlockClose); err != nil {
		return nil, err
	}
	for name, re := range map[string]*regexp.Regexp{"id": e.id, "label": e.label, "route": e.route} {
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("%s pattern must have a capture group", name)
		}
	}
	return &e, nil
}

// Default returns an Extractor using the built-in patterns.
func Default() *Extractor {
	e, err := NewExtractor(models.PatternConfig{})
	if err != nil {
		panic(err) // built-in patterns always compile
	}
	return e
}

// Extract walks lines once, in order, yielding each finished definition.
// stats may be nil.
func (e *Extractor) Extract(lines iter.Seq[string], stats *Stats) iter.Seq[models.IconDefinition] {
	if stats == nil {
		stats = &Stats{}
	}
	return func(yield func(models.IconDefinition) bool) {
		var (
			page    *int
			current *models.IconDefinition
		)

		for line := range lines {
			if m := e.pageStart.FindStringSubmatch(line); m != nil {
				stats.PageMarkers++
				if n, err := strconv.Atoi(m[1]); err == nil {
					page = &n
				} else {
					stats.BadPageMarkers++
				}
				continue
			}

			if page == nil {
				if e.definitionStart.MatchString(line) {
					stats.BeforePage++
				}
				continue
			}

			if e.definitionStart.MatchString(line) {
				if current != nil {
					stats.Abandoned++
				}
				current = &models.IconDefinition{Page: *page}
				continue
			}

			if current == nil {
				continue
			}

			if m := e.id.FindStringSubmatch(line); m != nil {
				current.ID = m[1]
			}
			if m := e.label.FindStringSubmatch(line); m != nil {
				label := NormalizeLabel(m[1])
				current.Label = &label
			}
			if m := e.route.FindStringSubmatch(line); m != nil {
				route := m[1]
				current.Route = &route
			}

			if e.blockClose.MatchString(line) {
				def := *current
				current = nil
				if def.ID == "" {
					stats.DroppedNoID++
					continue
				}
				stats.Emitted++
				if !yield(def) {
					return
				}
			}
		}

		if current != nil {
			stats.Abandoned++
		}
	}
}

// ExtractText runs Extract over the lines of text and collects the result.
func (e *Extractor) ExtractText(text string) ([]models.IconDefinition, Stats) {
	var stats Stats
	var defs []models.IconDefinition
	for def := range e.Extract(Lines(text), &stats) {
		defs = append(defs, def)
	}
	return defs, stats
}

// Lines splits text on newlines, dropping a trailing carriage return from each line.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.SplitSeq(text, "\n") {
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// NormalizeLabel replaces each literal backslash-n sequence with a slash,
// so multi-line labels print on one line.
func NormalizeLabel(label string) string {
	return strings.ReplaceAll(label, `\n`, "/")
}

// IDs returns the distinct ids of defs in sorted order.
func IDs(defs []models.IconDefinition) []string {
	seen := make(map[string]struct{}, len(defs))
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		if _, ok := seen[d.ID]; ok {
			continue
		}
		seen[d.ID] = struct{}{}
		ids = append(ids, d.ID)
	}
	sort.Strings(ids)
	return ids
}
