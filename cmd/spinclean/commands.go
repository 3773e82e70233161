package main

import (
	"os"

	"github.com/danmuck/spinclean/internal/app"
	"github.com/danmuck/spinclean/internal/logging"
	"github.com/danmuck/spinclean/internal/manifest"
	"github.com/danmuck/spinclean/internal/terminal"
	"github.com/rs/zerolog"
)

// CLI is the root command line. Clean is the default command.
type CLI struct {
	Manifest string `short:"m" help:"Application manifest path (default: spin-clean.toml in the current directory)."`
	Config   string `short:"c" help:"Optional settings file (TOML)."`
	Verbose  bool   `short:"v" help:"Enable debug logging."`
	NoColor  bool   `name:"no-color" help:"Disable coloured progress output."`

	Clean    CleanCmd    `cmd:"" default:"withargs" help:"Run the clean command of each component."`
	Build    BuildCmd    `cmd:"" help:"Run the build command of each component."`
	Validate ValidateCmd `cmd:"" help:"Check the manifest without running anything."`
	Init     InitCmd     `cmd:"" help:"Write a starter manifest."`

	settings settings
}

// AfterApply resolves the settings file against the flags and sets up logging.
func (c *CLI) AfterApply() error {
	s, err := loadSettings(c.Config)
	if err != nil {
		return err
	}
	if c.Manifest != "" {
		s.ManifestPath = c.Manifest
	}
	if c.NoColor {
		s.NoColor = true
	}
	logging.ConfigureRuntime(func(cfg *logging.Config) {
		if s.LogLevelSet {
			cfg.Level = s.LogLevel
		}
		if c.Verbose {
			cfg.Level = zerolog.DebugLevel
		}
		if s.NoColor {
			cfg.NoColor = true
		}
	})
	c.settings = s
	return nil
}

func (c *CLI) output() *terminal.Printer {
	return terminal.New(os.Stdout, c.settings.NoColor)
}

func (c *CLI) service() *app.Service {
	return app.NewServiceWithConfig(app.ServiceConfig{
		ManifestPath: c.settings.ManifestPath,
		Output:       c.output(),
	})
}

type CleanCmd struct {
	Components []string `arg:"" optional:"" name:"component" help:"Component ids to clean (default: all)."`
}

func (cmd *CleanCmd) Run(root *CLI) error {
	return root.service().Run(manifest.ActionClean, cmd.Components)
}

type BuildCmd struct {
	Components []string `arg:"" optional:"" name:"component" help:"Component ids to build (default: all)."`
}

func (cmd *BuildCmd) Run(root *CLI) error {
	return root.service().Run(manifest.ActionBuild, cmd.Components)
}

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(root *CLI) error {
	m, err := root.service().Validate()
	if err != nil {
		return err
	}
	root.output().Step("Validated", "%d component(s) in %s", len(m.Components), root.settings.ManifestPath)
	return nil
}

type InitCmd struct {
	Force bool `help:"Overwrite an existing manifest."`
}

func (cmd *InitCmd) Run(root *CLI) error {
	if err := manifest.WriteTemplate(root.settings.ManifestPath, cmd.Force); err != nil {
		return err
	}
	root.output().Step("Created", "starter manifest %s", root.settings.ManifestPath)
	return nil
}
