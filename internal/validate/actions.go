package validate

import (
	"github.com/dtnitsch/icon-asset-check/internal/common"
	"github.com/dtnitsch/icon-asset-check/models"
	"github.com/dtnitsch/icon-asset-check/pkg/catalog"
	"github.com/dtnitsch/icon-asset-check/pkg/manifest"
	"github.com/dtnitsch/icon-asset-check/pkg/validator"
	"github.com/urfave/cli/v2"
)

// Flags returns the validate-only flags.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "manifest",
			Usage: "icons manifest, relative to root (default: " + models.DefaultManifestPath + ")",
		},
		&cli.BoolFlag{
			Name:  "lenient",
			Usage: "skip manifest entries missing id or assetPath instead of failing",
		},
		&cli.BoolFlag{
			Name:  "allow-duplicates",
			Usage: "let a later manifest entry replace an earlier one with the same id",
		},
	}
}

// ValidateAction checks catalog ids against the manifest and the manifest
// against the filesystem. It exits 2 when any asset file is missing.
func ValidateAction(c *cli.Context) error {
	env, err := common.Setup(c)
	if err != nil {
		return common.Fatal(common.NewLogger(c), "failed to initialize", err, validator.ExitFatal)
	}
	logger := env.Logger

	extractor, err := catalog.NewExtractor(env.Config.Patterns)
	if err != nil {
		return common.Fatal(logger, "invalid catalog patterns", err, validator.ExitFatal)
	}

	text, err := env.Store.ReadText(env.Config.CatalogPath)
	if err != nil {
		return common.Fatal(logger, "failed to read catalog", err, validator.ExitFatal)
	}
	defs, stats := extractor.ExtractText(text)
	logger.Debug("catalog extracted",
		"definitions", stats.Emitted,
		"page_markers", stats.PageMarkers,
		"dropped_no_id", stats.DroppedNoID,
		"abandoned", stats.Abandoned,
		"before_page", stats.BeforePage)

	// The manifest must load cleanly before anything is compared.
	m, err := manifest.LoadFile(env.Store.Resolve(env.Config.ManifestPath), env.Config.Manifest)
	if err != nil {
		return common.Fatal(logger, "failed to load manifest", err, validator.ExitFatal)
	}
	if m.Skipped > 0 {
		logger.Warn("skipped incomplete manifest entries", "count", m.Skipped)
	}

	result := validator.Validate(catalog.IDs(defs), m, env.Store)
	opts := validator.RenderOptions{ShowPresent: c.Bool("verbose")}
	if err := validator.Render(c.App.Writer, result, env.Format, opts); err != nil {
		return common.Fatal(logger, "failed to write report", err, validator.ExitFatal)
	}

	if !result.OK() {
		logger.Debug("validation failed", "missing_assets", len(result.MissingAssets))
		return cli.Exit("", result.ExitCode())
	}
	return nil
}
