package dl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func fileName(name string) string { return "nv" + name + ".dll" }

// Open loads the library from the system directory only; driver DLLs must
// not be picked up from the application directory or PATH.
func (System) Open(name string) (Library, error) {
	file := fileName(name)
	h, err := windows.LoadLibraryEx(file, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, file, err)
	}
	return &lib{handle: h}, nil
}

type lib struct {
	handle windows.Handle
}

func (l *lib) Sym(name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoSymbol, name)
	}
	return addr, nil
}

func (l *lib) Close() error {
	return windows.FreeLibrary(l.handle)
}
