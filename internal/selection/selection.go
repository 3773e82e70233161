// Package selection narrows a manifest's components to the ones requested on
// the command line.
package selection

import (
	"errors"
	"strings"

	"github.com/danmuck/spinclean/internal/manifest"
)

var ErrUnknownComponent = errors.New("selection: unknown component")

// UnknownComponentError lists every requested id the manifest does not know.
type UnknownComponentError struct {
	IDs []string
}

func (e *UnknownComponentError) Error() string {
	return "unknown component(s) " + strings.Join(e.IDs, ", ")
}

func (e *UnknownComponentError) Unwrap() error {
	return ErrUnknownComponent
}

// Select returns the components whose id is in requested, in manifest order.
// An empty request selects everything. Unknown ids are all reported at once.
func Select(all []manifest.Component, requested []string) ([]manifest.Component, error) {
	if len(requested) == 0 {
		return all, nil
	}

	known := make(map[string]struct{}, len(all))
	for _, c := range all {
		known[c.ID] = struct{}{}
	}

	wanted := make(map[string]struct{}, len(requested))
	var unknown []string
	for _, id := range requested {
		if _, dup := wanted[id]; dup {
			continue
		}
		wanted[id] = struct{}{}
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownComponentError{IDs: unknown}
	}

	selected := make([]manifest.Component, 0, len(wanted))
	for _, c := range all {
		if _, ok := wanted[c.ID]; ok {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
