package runner

import (
	"fmt"

	"github.com/danmuck/spinclean/internal/tools"
)

type shellCall struct {
	Command string
	Dir     string
}

// fakeShell records invocations and answers from a script keyed by command.
type fakeShell struct {
	calls    []shellCall
	statuses map[string]tools.ExitStatus
	spawnErr map[string]error
}

func (f *fakeShell) RunShell(command string, dir string) (tools.ExitStatus, error) {
	f.calls = append(f.calls, shellCall{Command: command, Dir: dir})
	if err, ok := f.spawnErr[command]; ok {
		return tools.ExitStatus{}, err
	}
	return f.statuses[command], nil
}

type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Step(verb string, format string, args ...any) {
	r.lines = append(r.lines, verb+" "+fmt.Sprintf(format, args...))
}
