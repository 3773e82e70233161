package manifest

import (
	"fmt"
	"os"
)

// Template returns the starter manifest written by `spinclean init`.
func Template() string {
	return starterTemplate
}

// WriteTemplate writes the starter manifest to path. An existing file is kept
// unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("manifest already exists: %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(starterTemplate), 0o644); err != nil {
		return fmt.Errorf("write manifest template: %w", err)
	}
	return nil
}

const starterTemplate = `# Components are built and cleaned in the order listed here.

[[component]]
id = "api"

[component.build]
command = "cargo build --release"
workdir = "api"
watch = ["src/**/*.rs", "Cargo.toml"]

[component.clean]
command = "cargo clean"
workdir = "api"

[[component]]
id = "web"

[component.build]
command = "npm run build"
workdir = "web"

[component.clean]
command = "rm -rf dist"
workdir = "web"
`
