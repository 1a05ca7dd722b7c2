// Package common holds the flag set and startup wiring shared by the icon tools.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/icon-asset-check/models"
	"github.com/dtnitsch/icon-asset-check/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Env is what an action needs after flags, root and config are resolved.
type Env struct {
	Logger *slog.Logger
	Store  *storage.Storage
	Config *models.Config
	Format models.OutputFormat
}

// Flags returns the flags every tool accepts. All are optional; with none
// set the tools read the fixed project-relative locations.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Usage:   "project root (default: two directories above the executable)",
			EnvVars: []string{"ICONCHECK_ROOT"},
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file (default: <root>/" + models.DefaultConfigName + " if present)",
		},
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "catalog source, relative to root (default: " + models.DefaultCatalogPath + ")",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "text",
			Usage: "output format: text, json or yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log extraction diagnostics to stderr",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
}

// NewLogger builds the stderr JSON logger used by the actions.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// Setup resolves the project root, loads config and applies flag overrides.
// Flags beat the config file, which beats the built-in defaults.
func Setup(c *cli.Context) (*Env, error) {
	logger := NewLogger(c)

	format, err := models.ParseOutputFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	root, err := storage.ResolveRoot(c.String("root"))
	if err != nil {
		return nil, err
	}
	store, err := storage.New(root)
	if err != nil {
		return nil, err
	}

	var cfg *models.Config
	if c.IsSet("config") {
		cfg, err = models.LoadConfig(c.String("config"), false)
	} else {
		cfg, err = models.LoadConfig(store.Resolve(models.DefaultConfigName), true)
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("catalog") {
		cfg.CatalogPath = c.String("catalog")
	}
	if c.IsSet("manifest") {
		cfg.ManifestPath = c.String("manifest")
	}
	if c.Bool("lenient") {
		cfg.Manifest.Lenient = true
	}
	if c.Bool("allow-duplicates") {
		cfg.Manifest.AllowDuplicates = true
	}

	logger.Debug("resolved configuration",
		"root", store.Root,
		"catalog", cfg.CatalogPath,
		"manifest", cfg.ManifestPath,
		"format", format.String())

	return &Env{Logger: logger, Store: store, Config: cfg, Format: format}, nil
}

// Fatal logs err and turns it into an exit error with the given code.
func Fatal(logger *slog.Logger, msg string, err error, code int) error {
	logger.Error(msg, "error", err)
	return cli.Exit(fmt.Sprintf("%s: %v", msg, err), code)
}

// NewApp returns a cli.App with the shared flags plus extra.
func NewApp(name, usage, description string, action cli.ActionFunc, extra ...cli.Flag) *cli.App {
	return &cli.App{
		Name:        name,
		Usage:       usage,
		Description: description,
		Flags:       append(Flags(), extra...),
		Action:      action,
		Writer:      os.Stdout,
		ErrWriter:   os.Stderr,
	}
}
