package runner

import (
	"errors"
	"fmt"

	"github.com/danmuck/spinclean/internal/manifest"
	"github.com/danmuck/spinclean/internal/tools"
)

var (
	ErrInvalidWorkdir = errors.New("runner: the workdir specified in the application file must be relative")
	ErrSpawn          = errors.New("runner: cannot spawn process")
	ErrExecution      = errors.New("runner: command failed")
)

type FailureKind int

const (
	FailureSpawn FailureKind = iota
	FailureExit
	FailureSignal
)

func (k FailureKind) String() string {
	switch k {
	case FailureSpawn:
		return "spawn"
	case FailureExit:
		return "exit"
	case FailureSignal:
		return "signal"
	default:
		return fmt.Sprintf("failure(%d)", int(k))
	}
}

// RunError reports a command that could not be started or did not exit
// successfully.
type RunError struct {
	Action      manifest.Action
	ComponentID string
	Command     string
	Kind        FailureKind
	Status      tools.ExitStatus
	Err         error
}

func (e *RunError) Error() string {
	if e.Kind == FailureSpawn {
		return fmt.Sprintf("cannot spawn %s process `%s` for component %s: %v", e.Action, e.Command, e.ComponentID, e.Err)
	}
	return fmt.Sprintf("%s command for component %s failed with %s", e.Action, e.ComponentID, e.Status)
}

func (e *RunError) Unwrap() []error {
	if e.Kind == FailureSpawn {
		return []error{ErrSpawn, e.Err}
	}
	return []error{ErrExecution}
}
