package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

var (
	ErrManifestRead  = errors.New("manifest: cannot read manifest file")
	ErrManifestParse = errors.New("manifest: invalid manifest")
)

var (
	buildFields = []string{"command", "workdir", "watch"}
	cleanFields = []string{"command", "workdir"}
)

// looseManifest mirrors the document shape without a schema so per-component
// keys can be checked before the typed decode.
type looseManifest struct {
	Components []map[string]any `toml:"component"`
}

// Load reads and parses the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w from %s: %w", ErrManifestRead, path, err)
	}
	m, err := Parse(string(data))
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest text. The build and clean blocks are strict: unknown
// keys and a missing command are errors.
func Parse(text string) (Manifest, error) {
	var loose looseManifest
	meta, err := toml.Decode(text, &loose)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	if !meta.IsDefined("component") {
		return Manifest{}, fmt.Errorf("%w: missing field `component`", ErrManifestParse)
	}
	for i, raw := range loose.Components {
		if err := validateComponent(i, raw); err != nil {
			return Manifest{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
		}
	}

	var m Manifest
	meta, err = toml.Decode(text, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	for _, key := range meta.Undecoded() {
		log.Warn().Str("key", key.String()).Msg("manifest: ignoring unknown key")
	}
	return m, nil
}

func validateComponent(index int, raw map[string]any) error {
	value, present := raw["id"]
	if !present {
		return fmt.Errorf("component[%d]: missing field `id`", index)
	}
	id, ok := value.(string)
	if !ok {
		return fmt.Errorf("component[%d]: `id` must be a string", index)
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("component[%d]: `id` must not be empty", index)
	}

	if err := validateBlock(id, "build", raw["build"], buildFields); err != nil {
		return err
	}
	return validateBlock(id, "clean", raw["clean"], cleanFields)
}

func validateBlock(id string, name string, value any, allowed []string) error {
	if value == nil {
		return nil
	}
	table, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("component %q: `%s` must be a table", id, name)
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("component %q: unknown field `%s` in [component.%s], expected one of %s",
				id, key, name, quoteAll(allowed))
		}
	}

	if _, ok := table["command"]; !ok {
		return fmt.Errorf("component %q: missing field `command` in [component.%s]", id, name)
	}
	return nil
}

// Encode writes m as TOML. Optional fields that are unset are omitted, so
// Parse(Encode(m)) yields m.
func Encode(w io.Writer, m Manifest) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	return nil
}

func quoteAll(list []string) string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, "`"+item+"`")
	}
	return strings.Join(out, ", ")
}
