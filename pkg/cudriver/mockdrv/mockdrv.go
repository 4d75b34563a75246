package mockdrv

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"

	"github.com/tensorkit/cuda-driver-go/internal/dl"
)

// Library is a fake shared library living inside the test process. Exports
// are Go functions turned into C-callable pointers, so code that resolves
// and calls through them exercises the same binding machinery as a real
// driver library.
type Library struct {
	mu     sync.Mutex
	syms   map[string]uintptr
	closed atomic.Bool
	closes atomic.Int32
}

// New returns an empty library. Symbol lookups fail until Export is called.
func New() *Library {
	return &Library{syms: make(map[string]uintptr)}
}

// Export publishes fn under the given symbol name, replacing any previous
// export. fn must satisfy the purego callback constraints: integer and
// pointer arguments, at most one integer-sized result. The trampoline lives
// for the rest of the process; purego cannot free callbacks.
func (l *Library) Export(symbol string, fn any) {
	addr := purego.NewCallback(fn)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.syms[symbol] = addr
}

// Sym implements dl.Library.
func (l *Library) Sym(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	addr, ok := l.syms[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", dl.ErrNoSymbol, name)
	}
	return addr, nil
}

// Close implements dl.Library. It only records the release.
func (l *Library) Close() error {
	l.closes.Add(1)
	l.closed.Store(true)
	return nil
}

// Closed reports whether Close has been called at least once.
func (l *Library) Closed() bool { return l.closed.Load() }

// Closes returns how many times Close has been called.
func (l *Library) Closes() int { return int(l.closes.Load()) }

// Loader hands out a fixed Library and counts opens. Plug it in with
// cudriver.SetLoader to observe the singleton's open/resolve sequence.
type Loader struct {
	// Lib is returned by every successful Open.
	Lib *Library

	// Err, when set, makes Open fail. Simulates a machine without the
	// driver installed.
	Err error

	opens atomic.Int32
}

// Open implements dl.Loader.
func (ld *Loader) Open(string) (dl.Library, error) {
	ld.opens.Add(1)
	if ld.Err != nil {
		return nil, ld.Err
	}
	return ld.Lib, nil
}

// Opens returns how many times Open has been called.
func (ld *Loader) Opens() int { return int(ld.opens.Load()) }
