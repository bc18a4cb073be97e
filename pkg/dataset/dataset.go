// Package dataset ships the built-in example graphs used by the CLI
// and the test suite. Each dataset is constructed on demand so callers
// are free to mutate the returned graph.
package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mkowalik/wayfind/pkg/graph"
)

// ErrUnknownDataset indicates a name that no builder is registered for.
var ErrUnknownDataset = errors.New("dataset: unknown dataset")

// A builder constructs a fresh copy of a named dataset.
type builder func() *graph.File

var registry = map[string]builder{
	"poland":    poland,
	"emergency": emergency,
}

// Names returns the registered dataset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds the named dataset. The returned file is a fresh copy on
// every call.
func Load(name string) (*graph.File, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return build(), nil
}
