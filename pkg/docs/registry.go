package docs

import (
	"errors"
	"fmt"
	"sync"
)

// ErrImport is returned by Import when no runtime object is registered at
// the requested path.
var ErrImport = errors.New("cannot resolve runtime object")

// registry maps fully-qualified class paths to their live runtime objects.
// Go has no dynamic import, so hosts and documented packages register their
// types up front, typically from an init function.
var registry sync.Map

// Register makes obj importable at path. Registering the same path twice
// replaces the earlier object.
func Register(path string, obj any) {
	registry.Store(path, obj)
}

// Import returns the live object registered at path, or an error wrapping
// ErrImport when none exists.
func Import(path string) (any, error) {
	obj, ok := registry.Load(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrImport, path)
	}
	return obj, nil
}
