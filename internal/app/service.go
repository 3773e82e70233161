// Package app wires manifest loading, component selection and the runner into
// the flow behind each spinclean command.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danmuck/spinclean/internal/manifest"
	"github.com/danmuck/spinclean/internal/runner"
	"github.com/danmuck/spinclean/internal/selection"
	"github.com/danmuck/spinclean/internal/terminal"
	"github.com/danmuck/spinclean/internal/tools"
	"github.com/rs/zerolog/log"
)

// Output is the progress sink for a run.
type Output interface {
	runner.Reporter
	Info(format string, args ...any)
}

// ServiceConfig configures one spinclean invocation.
type ServiceConfig struct {
	ManifestPath string
	Shell        tools.ShellRunner
	Output       Output
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		ManifestPath: manifest.DefaultFileName,
		Shell:        tools.ExecShell{},
		Output:       terminal.New(os.Stdout, false),
	}
}

// Service runs manifest commands for the application owning ManifestPath.
type Service struct {
	cfg ServiceConfig
}

func NewService() *Service {
	return NewServiceWithConfig(DefaultServiceConfig())
}

func NewServiceWithConfig(cfg ServiceConfig) *Service {
	defaults := DefaultServiceConfig()
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = defaults.ManifestPath
	}
	if cfg.Shell == nil {
		cfg.Shell = defaults.Shell
	}
	if cfg.Output == nil {
		cfg.Output = defaults.Output
	}
	return &Service{cfg: cfg}
}

// Run executes action for the components named by ids, or for every
// component when ids is empty. Having nothing to run is not an error.
func (s *Service) Run(action manifest.Action, ids []string) error {
	path, m, err := s.load()
	if err != nil {
		return err
	}

	selected, err := selection.Select(m.Components, ids)
	if err != nil {
		return err
	}
	if !runner.HasAny(selected, action) {
		s.cfg.Output.Info("None of the components have a %s command.", action)
		return nil
	}

	appDir := filepath.Dir(path)
	log.Debug().
		Str("manifest", path).
		Str("action", string(action)).
		Int("components", len(selected)).
		Msg("running component commands")
	return runner.New(appDir, s.cfg.Shell, s.cfg.Output).RunAll(action, selected)
}

// Validate loads the manifest without running anything.
func (s *Service) Validate() (manifest.Manifest, error) {
	_, m, err := s.load()
	return m, err
}

func (s *Service) load() (string, manifest.Manifest, error) {
	path, err := filepath.Abs(s.cfg.ManifestPath)
	if err != nil {
		return "", manifest.Manifest{}, fmt.Errorf("resolve manifest path %s: %w", s.cfg.ManifestPath, err)
	}
	m, err := manifest.Load(path)
	if err != nil {
		return "", manifest.Manifest{}, err
	}
	return path, m, nil
}
