package layout

import (
	"github.com/dtnitsch/icon-asset-check/internal/common"
	"github.com/dtnitsch/icon-asset-check/pkg/catalog"
	layoutpkg "github.com/dtnitsch/icon-asset-check/pkg/layout"
	"github.com/urfave/cli/v2"
)

// DumpAction prints the catalog's icon definitions grouped by page.
func DumpAction(c *cli.Context) error {
	env, err := common.Setup(c)
	if err != nil {
		return common.Fatal(common.NewLogger(c), "failed to initialize", err, 1)
	}
	logger := env.Logger

	extractor, err := catalog.NewExtractor(env.Config.Patterns)
	if err != nil {
		return common.Fatal(logger, "invalid catalog patterns", err, 1)
	}

	text, err := env.Store.ReadText(env.Config.CatalogPath)
	if err != nil {
		return common.Fatal(logger, "failed to read catalog", err, 1)
	}

	defs, stats := extractor.ExtractText(text)
	logger.Debug("catalog extracted",
		"definitions", stats.Emitted,
		"page_markers", stats.PageMarkers,
		"malformed", stats.Malformed(),
		"before_page", stats.BeforePage)

	if err := layoutpkg.Render(c.App.Writer, layoutpkg.Group(defs), env.Format); err != nil {
		return common.Fatal(logger, "failed to write report", err, 1)
	}
	return nil
}
