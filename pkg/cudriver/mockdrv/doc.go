// Package mockdrv provides an in-process stand-in for the driver shared
// library, for tests and examples that must run on machines without a GPU.
//
// A mock Library exports Go functions as C-callable entry points, so the
// wrapper's resolve-and-bind path runs for real; only the OS loader is
// bypassed. A Loader counts opens and can be forced to fail, which covers
// the "driver not installed" path.
//
// Typical usage:
//
//	lib := mockdrv.New()
//	lib.Export("cuGetErrorName", func(code uint32, out **byte) uint32 {
//	    *out = &name[0]
//	    return 0
//	})
//	ld := &mockdrv.Loader{Lib: lib}
//	cudriver.SetLoader(ld)
//	defer cudriver.SetLoader(nil)
//
// Symbols that are never exported resolve to empty slots, exactly like an
// older driver that lacks a newer entry point.
package mockdrv
