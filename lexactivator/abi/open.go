package abi

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
)

// ErrNotEngine is returned by Open when the loaded file exports none of the
// engine's entry points.
var ErrNotEngine = errors.New("abi: library exports no LexActivator symbols")

// Open loads the engine library at path and binds every exported entry
// point. An empty path loads DefaultLibraryName through the platform's
// search order.
func Open(path string) (*Library, error) {
	if path == "" {
		path = DefaultLibraryName()
	}

	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("abi: load %s: %w", path, err)
	}

	l := &Library{path: path}
	symbols := l.symbols()
	for _, s := range symbols {
		addr, err := lookup(handle, s.name)
		if err != nil || addr == 0 {
			l.missing = append(l.missing, s.name)
			continue
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	if len(l.missing) == len(symbols) {
		return nil, fmt.Errorf("%w: %s", ErrNotEngine, path)
	}

	l.bindCallback()
	return l, nil
}

func newCallback(fn func(code int32) uintptr) uintptr {
	return purego.NewCallback(fn)
}
