package scene

import (
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// builders maps scene names to their constructors. The cover scene takes a
// seed; the others ignore it.
var builders = map[string]func(seed int64) *Scene{
	"debug":   func(int64) *Scene { return NewDebugScene() },
	"default": func(int64) *Scene { return NewDefaultScene() },
	"cover":   NewCoverScene,
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene
func ByName(name string, seed int64) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, errors.New("unknown scene").
			WithTag("scene", name).
			WithTag("available", Names())
	}
	return builder(seed), nil
}
