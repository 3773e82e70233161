package tools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"
)

// ExitStatus describes how a started process terminated.
type ExitStatus struct {
	Code     int
	Signaled bool
	Signal   string
}

func (s ExitStatus) Success() bool {
	return !s.Signaled && s.Code == 0
}

func (s ExitStatus) String() string {
	if s.Signaled {
		return "signal: " + s.Signal
	}
	return fmt.Sprintf("exit status %d", s.Code)
}

// ShellRunner runs one shell command line to completion in dir. A non-nil
// error means the process could not be started; otherwise the status is
// always populated.
type ShellRunner interface {
	RunShell(command string, dir string) (ExitStatus, error)
}

// ExecShell executes commands on the local host through the platform shell.
// Nil streams fall back to the parent's stdin, stdout and stderr.
type ExecShell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s ExecShell) RunShell(command string, dir string) (ExitStatus, error) {
	name, args := shellArgs(command)
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return ExitStatus{}, err
	}

	err := cmd.Wait()
	if err == nil {
		return ExitStatus{}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return statusFromState(exitErr.ProcessState), nil
	}
	return ExitStatus{}, fmt.Errorf("wait: %w", err)
}

func shellArgs(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

func statusFromState(state *os.ProcessState) ExitStatus {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitStatus{Code: -1, Signaled: true, Signal: ws.Signal().String()}
	}
	return ExitStatus{Code: state.ExitCode()}
}
