package runner

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/danmuck/spinclean/internal/manifest"
	"github.com/danmuck/spinclean/internal/testutil/testlog"
	"github.com/danmuck/spinclean/internal/tools"
	"github.com/stretchr/testify/require"
)

const appDir = "/srv/app"

func TestRunSkipsComponentWithoutCommand(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{}
	reporter := &recordingReporter{}

	state, err := New(appDir, shell, reporter).Run(manifest.ActionClean, manifest.Component{ID: "b"})
	require.NoError(t, err)
	require.Equal(t, StateSkipped, state)
	require.Empty(t, shell.calls)
	require.Empty(t, reporter.lines)
}

func TestRunUsesResolvedWorkdir(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{}
	reporter := &recordingReporter{}
	c := manifest.Component{ID: "api", Clean: &manifest.CleanConfig{Command: "make clean", Workdir: "services/api"}}

	state, err := New(appDir, shell, reporter).Run(manifest.ActionClean, c)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, state)
	require.Equal(t, []shellCall{{Command: "make clean", Dir: filepath.Join(appDir, "services", "api")}}, shell.calls)
	require.Equal(t, []string{"Cleaning component api with `make clean`"}, reporter.lines)
}

func TestRunBuildUsesBuildConfig(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{}
	reporter := &recordingReporter{}
	c := manifest.Component{
		ID:    "web",
		Build: &manifest.BuildConfig{Command: "npm run build", Watch: []string{"src/**"}},
		Clean: &manifest.CleanConfig{Command: "rm -rf dist"},
	}

	_, err := New(appDir, shell, reporter).Run(manifest.ActionBuild, c)
	require.NoError(t, err)
	require.Equal(t, []shellCall{{Command: "npm run build", Dir: appDir}}, shell.calls)
	require.Equal(t, []string{"Building component web with `npm run build`"}, reporter.lines)
}

func TestRunInvalidWorkdirNeverSpawns(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{}
	c := manifest.Component{ID: "a", Clean: &manifest.CleanConfig{Command: "true", Workdir: "/etc"}}

	state, err := New(appDir, shell, &recordingReporter{}).Run(manifest.ActionClean, c)
	require.ErrorIs(t, err, ErrInvalidWorkdir)
	require.Equal(t, StateFailed, state)
	require.Empty(t, shell.calls)
}

func TestRunNonZeroExit(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{statuses: map[string]tools.ExitStatus{"false": {Code: 1}}}
	c := manifest.Component{ID: "a", Clean: &manifest.CleanConfig{Command: "false"}}

	state, err := New(appDir, shell, &recordingReporter{}).Run(manifest.ActionClean, c)
	require.Equal(t, StateFailed, state)
	require.ErrorIs(t, err, ErrExecution)
	require.NotErrorIs(t, err, ErrSpawn)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	require.Equal(t, FailureExit, runErr.Kind)
	require.Equal(t, "a", runErr.ComponentID)
	require.Equal(t, "false", runErr.Command)
	require.Equal(t, 1, runErr.Status.Code)
	require.EqualError(t, err, "clean command for component a failed with exit status 1")
}

func TestRunSignal(t *testing.T) {
	testlog.Start(t)
	status := tools.ExitStatus{Code: -1, Signaled: true, Signal: "killed"}
	shell := &fakeShell{statuses: map[string]tools.ExitStatus{"sleep 100": status}}
	c := manifest.Component{ID: "a", Clean: &manifest.CleanConfig{Command: "sleep 100"}}

	_, err := New(appDir, shell, &recordingReporter{}).Run(manifest.ActionClean, c)
	require.ErrorIs(t, err, ErrExecution)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	require.Equal(t, FailureSignal, runErr.Kind)
	require.Contains(t, err.Error(), "signal: killed")
}

func TestRunSpawnFailure(t *testing.T) {
	testlog.Start(t)
	cause := &exec.Error{Name: "sh", Err: exec.ErrNotFound}
	shell := &fakeShell{spawnErr: map[string]error{"make clean": cause}}
	c := manifest.Component{ID: "api", Clean: &manifest.CleanConfig{Command: "make clean"}}

	state, err := New(appDir, shell, &recordingReporter{}).Run(manifest.ActionClean, c)
	require.Equal(t, StateFailed, state)
	require.ErrorIs(t, err, ErrSpawn)
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.NotErrorIs(t, err, ErrExecution)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	require.Equal(t, FailureSpawn, runErr.Kind)
	require.Contains(t, err.Error(), "cannot spawn clean process `make clean` for component api")
}

func TestRunAllOnlyRunsDefinedCommands(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{}
	reporter := &recordingReporter{}
	components := []manifest.Component{
		{ID: "a", Clean: &manifest.CleanConfig{Command: "true"}},
		{ID: "b"},
	}

	require.NoError(t, New(appDir, shell, reporter).RunAll(manifest.ActionClean, components))
	require.Equal(t, []shellCall{{Command: "true", Dir: appDir}}, shell.calls)
	require.Equal(t, []string{
		"Cleaning component a with `true`",
		"Finished cleaning all components",
	}, reporter.lines)
}

func TestRunAllStopsAtFirstFailure(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{statuses: map[string]tools.ExitStatus{"false": {Code: 1}}}
	reporter := &recordingReporter{}
	components := []manifest.Component{
		{ID: "a", Clean: &manifest.CleanConfig{Command: "false"}},
		{ID: "b", Clean: &manifest.CleanConfig{Command: "echo b"}},
	}

	err := New(appDir, shell, reporter).RunAll(manifest.ActionClean, components)
	require.ErrorIs(t, err, ErrExecution)
	require.Equal(t, []shellCall{{Command: "false", Dir: appDir}}, shell.calls)
	require.Equal(t, []string{"Cleaning component a with `false`"}, reporter.lines)
}

func TestRunAllInvalidWorkdirStopsBatch(t *testing.T) {
	testlog.Start(t)
	shell := &fakeShell{}
	components := []manifest.Component{
		{ID: "a", Clean: &manifest.CleanConfig{Command: "true", Workdir: "/etc"}},
		{ID: "b", Clean: &manifest.CleanConfig{Command: "true"}},
	}

	err := New(appDir, shell, &recordingReporter{}).RunAll(manifest.ActionClean, components)
	require.ErrorIs(t, err, ErrInvalidWorkdir)
	require.Empty(t, shell.calls)
}

func TestHasAny(t *testing.T) {
	components := []manifest.Component{
		{ID: "a", Build: &manifest.BuildConfig{Command: "make"}},
		{ID: "b"},
	}
	require.True(t, HasAny(components, manifest.ActionBuild))
	require.False(t, HasAny(components, manifest.ActionClean))
	require.False(t, HasAny(nil, manifest.ActionClean))
}
