package layout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dtnitsch/icon-asset-check/models"
	"github.com/dtnitsch/icon-asset-check/pkg/catalog"
)

func strPtr(s string) *string { return &s }

func TestGroup_OrdersPagesAndKeepsFileOrder(t *testing.T) {
	defs := []models.IconDefinition{
		{Page: 2, ID: "c"},
		{Page: 0, ID: "a"},
		{Page: 2, ID: "b"},
		{Page: 10, ID: "z"},
		{Page: 0, ID: "d"},
	}

	groups := Group(defs)

	want := []struct {
		page int
		ids  string
	}{
		{0, "a,d"},
		{2, "c,b"},
		{10, "z"},
	}
	if len(groups) != len(want) {
		t.Fatalf("Group() returned %d pages, want %d", len(groups), len(want))
	}
	for i, w := range want {
		var ids []string
		for _, d := range groups[i].Icons {
			ids = append(ids, d.ID)
		}
		if groups[i].Page != w.page || strings.Join(ids, ",") != w.ids {
			t.Errorf("groups[%d] = page %d %v, want page %d %s", i, groups[i].Page, ids, w.page, w.ids)
		}
	}
}

func TestGroup_Empty(t *testing.T) {
	if groups := Group(nil); len(groups) != 0 {
		t.Errorf("Group(nil) = %v, want empty", groups)
	}
}

func TestRender_Text(t *testing.T) {
	groups := []PageGroup{
		{Page: 0, Icons: []models.IconDefinition{
			{Page: 0, ID: "alpha", Label: strPtr("Home"), Route: strPtr("HomeRoute")},
			{Page: 0, ID: "beta"},
		}},
		{Page: 1, Icons: []models.IconDefinition{
			{Page: 1, ID: "gamma", Label: strPtr("Shopping/List")},
		}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, groups, models.OutputText); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `Icon layout by page

=== Page 0 ===
- alpha | Home | HomeRoute
- beta |  | 

=== Page 1 ===
- gamma | Shopping/List | 
`
	if buf.String() != want {
		t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRender_JSON(t *testing.T) {
	groups := []PageGroup{{Page: 4, Icons: []models.IconDefinition{{Page: 4, ID: "x"}}}}

	var buf bytes.Buffer
	if err := Render(&buf, groups, models.OutputJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var decoded struct {
		Pages []PageGroup `json:"pages"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded.Pages) != 1 || decoded.Pages[0].Icons[0].ID != "x" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRender_YAML(t *testing.T) {
	groups := []PageGroup{{Page: 1, Icons: []models.IconDefinition{{Page: 1, ID: "yicon", Route: strPtr("R")}}}}

	var buf bytes.Buffer
	if err := Render(&buf, groups, models.OutputYAML); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"pages:", "id: yicon", "route: R"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("yaml output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestGroup_ExcludesDefinitionsBeforePage(t *testing.T) {
	text := `MainFeatureIcon(
  id: 'early',
),
MainFeaturePage(index: 1,
MainFeatureIcon(
  id: 'late',
),
`
	defs, _ := catalog.Default().ExtractText(text)
	groups := Group(defs)
	if len(groups) != 1 || len(groups[0].Icons) != 1 || groups[0].Icons[0].ID != "late" {
		t.Errorf("Group() = %+v, want only late on page 1", groups)
	}
}
