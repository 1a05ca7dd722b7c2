// Package models defines data structures shared by the icon catalog tools.
package models

// IconDefinition is one icon block recovered from the catalog source.
type IconDefinition struct {
	Page  int     `json:"page" yaml:"page"`
	ID    string  `json:"id" yaml:"id"`
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`
	Route *string `json:"route,omitempty" yaml:"route,omitempty"`
}

// LabelOrEmpty returns the label, or "" when the block had none.
func (d IconDefinition) LabelOrEmpty() string {
	if d.Label == nil {
		return ""
	}
	return *d.Label
}

// RouteOrEmpty returns the route name, or "" when the block had none.
func (d IconDefinition) RouteOrEmpty() string {
	if d.Route == nil {
		return ""
	}
	return *d.Route
}

// ManifestEntry is a single record from the icons manifest.
// Extra keeps any fields beyond id and assetPath so reports can echo them.
type ManifestEntry struct {
	ID        string         `json:"id" yaml:"id"`
	AssetPath string         `json:"assetPath" yaml:"assetPath"`
	Extra     map[string]any `json:"-" yaml:"-"`
}
