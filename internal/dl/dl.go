// Package dl opens shared libraries at runtime and resolves their exported
// symbols. It is the only package that talks to the OS loader; everything
// above it sees the Loader/Library capability pair and stays portable.
package dl

import "errors"

var (
	// ErrNotFound reports that the OS loader could not locate or open the
	// shared library.
	ErrNotFound = errors.New("shared library not found")

	// ErrNoSymbol reports that an open library does not export the requested
	// symbol.
	ErrNoSymbol = errors.New("symbol not found")
)

// Library is an open handle to a shared library.
type Library interface {
	// Sym resolves an exported symbol to its address. It returns an error
	// wrapping ErrNoSymbol if the library does not export the name.
	Sym(name string) (uintptr, error)

	// Close releases the library handle. The handle and any addresses
	// resolved through it must not be used after Close returns.
	Close() error
}

// Loader opens shared libraries by logical name.
type Loader interface {
	Open(name string) (Library, error)
}

// System is the OS loader: dlopen on POSIX systems, LoadLibraryEx on
// Windows.
type System struct{}

// FileName maps a logical library name to the platform file name, e.g.
// "cuda" becomes libcuda.so.1 or nvcuda.dll.
func FileName(name string) string { return fileName(name) }
