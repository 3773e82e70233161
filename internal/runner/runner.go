package runner

import (
	"fmt"

	"github.com/danmuck/spinclean/internal/manifest"
	"github.com/danmuck/spinclean/internal/tools"
	"github.com/rs/zerolog/log"
)

// State is the terminal state of one component's command.
type State string

const (
	StateSkipped   State = "skipped"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Reporter receives progress lines.
type Reporter interface {
	Step(verb string, format string, args ...any)
}

// Runner executes component commands one at a time, relative to the
// application directory.
type Runner struct {
	appDir   string
	shell    tools.ShellRunner
	reporter Reporter
}

func New(appDir string, shell tools.ShellRunner, reporter Reporter) *Runner {
	return &Runner{appDir: appDir, shell: shell, reporter: reporter}
}

// HasAny reports whether at least one component defines a command for action.
func HasAny(components []manifest.Component, action manifest.Action) bool {
	for _, c := range components {
		if _, _, ok := c.Command(action); ok {
			return true
		}
	}
	return false
}

// RunAll runs action for each component in order and stops at the first
// failure.
func (r *Runner) RunAll(action manifest.Action, components []manifest.Component) error {
	for _, c := range components {
		if _, err := r.Run(action, c); err != nil {
			return err
		}
	}
	_, gerund := verbs(action)
	r.reporter.Step("Finished", "%s all components", gerund)
	return nil
}

// Run executes action for one component. Components without a command for
// action are skipped.
func (r *Runner) Run(action manifest.Action, c manifest.Component) (State, error) {
	state, err := r.run(action, c)
	log.Debug().
		Err(err).
		Str("component", c.ID).
		Str("action", string(action)).
		Str("state", string(state)).
		Msg("component command finished")
	return state, err
}

func (r *Runner) run(action manifest.Action, c manifest.Component) (State, error) {
	command, workdir, ok := c.Command(action)
	if !ok {
		return StateSkipped, nil
	}

	verb, _ := verbs(action)
	r.reporter.Step(verb, "component %s with `%s`", c.ID, command)

	dir, err := ResolveWorkdir(r.appDir, workdir)
	if err != nil {
		return StateFailed, fmt.Errorf("component %s: %w", c.ID, err)
	}

	status, err := r.shell.RunShell(command, dir)
	if err != nil {
		return StateFailed, &RunError{
			Action:      action,
			ComponentID: c.ID,
			Command:     command,
			Kind:        FailureSpawn,
			Err:         err,
		}
	}
	if !status.Success() {
		kind := FailureExit
		if status.Signaled {
			kind = FailureSignal
		}
		return StateFailed, &RunError{
			Action:      action,
			ComponentID: c.ID,
			Command:     command,
			Kind:        kind,
			Status:      status,
		}
	}
	return StateCompleted, nil
}

func verbs(action manifest.Action) (string, string) {
	switch action {
	case manifest.ActionBuild:
		return "Building", "building"
	case manifest.ActionClean:
		return "Cleaning", "cleaning"
	default:
		return "Running", "running " + string(action) + " for"
	}
}
