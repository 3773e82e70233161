package runner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveWorkdir returns the directory a command runs in. An empty workdir
// is the application directory itself. Rooted workdirs are rejected rather
// than relativized since their meaning differs between platforms.
func ResolveWorkdir(appDir string, workdir string) (string, error) {
	if workdir == "" {
		return appDir, nil
	}
	if hasRoot(workdir) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWorkdir, workdir)
	}
	return filepath.Join(appDir, workdir), nil
}

func hasRoot(path string) bool {
	if filepath.IsAbs(path) || filepath.VolumeName(path) != "" {
		return true
	}
	return strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`)
}
