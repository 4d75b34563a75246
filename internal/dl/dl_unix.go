//go:build !windows

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func fileName(name string) string { return "lib" + name + ".so.1" }

// Open loads the library with dlopen. Symbols are resolved lazily and
// published to subsequently loaded objects, matching how the driver library
// expects to be mapped.
func (System) Open(name string) (Library, error) {
	file := fileName(name)
	h, err := purego.Dlopen(file, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, file, err)
	}
	return &lib{handle: h}, nil
}

type lib struct {
	handle uintptr
}

func (l *lib) Sym(name string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoSymbol, name)
	}
	return addr, nil
}

func (l *lib) Close() error {
	return purego.Dlclose(l.handle)
}
