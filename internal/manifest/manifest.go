package manifest

// DefaultFileName is the manifest name looked up in the invocation directory.
const DefaultFileName = "spin-clean.toml"

// Action names a per-component command kind.
type Action string

const (
	ActionClean Action = "clean"
	ActionBuild Action = "build"
)

// Manifest is the whole build description of one application.
type Manifest struct {
	Components []Component `toml:"component"`
}

// Component is one named unit of the application.
type Component struct {
	ID    string       `toml:"id"`
	Build *BuildConfig `toml:"build,omitempty"`
	Clean *CleanConfig `toml:"clean,omitempty"`
}

// BuildConfig describes how a component is built. Watch is carried for
// round-tripping only.
type BuildConfig struct {
	Command string   `toml:"command"`
	Workdir string   `toml:"workdir,omitempty"`
	Watch   []string `toml:"watch,omitempty"`
}

// CleanConfig describes how a component's build artifacts are removed.
type CleanConfig struct {
	Command string `toml:"command"`
	Workdir string `toml:"workdir,omitempty"`
}

// Command returns the command line and relative workdir configured for
// action, or ok=false when the component does not define one.
func (c Component) Command(action Action) (command string, workdir string, ok bool) {
	switch action {
	case ActionClean:
		if c.Clean != nil {
			return c.Clean.Command, c.Clean.Workdir, true
		}
	case ActionBuild:
		if c.Build != nil {
			return c.Build.Command, c.Build.Workdir, true
		}
	}
	return "", "", false
}

// IDs lists component ids in manifest order.
func (m Manifest) IDs() []string {
	ids := make([]string, 0, len(m.Components))
	for _, c := range m.Components {
		ids = append(ids, c.ID)
	}
	return ids
}
