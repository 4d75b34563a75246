// Package cudriver binds the CUDA driver library at runtime, without a
// link-time dependency on libcuda. The hosting process runs fine on machines
// with no driver installed; the library is opened and its entry points are
// resolved only when the first caller asks for the wrapper.
//
// Acquire returns a reference-counted handle to the one process-wide
// instance. The open/resolve sequence runs exactly once no matter how many
// goroutines race on first use, and the library handle is closed when the
// last holder releases it:
//
//	drv, err := cudriver.Acquire()
//	if err != nil {
//	    // libcuda is not installed on this machine
//	}
//	defer drv.Release()
//
//	if res := drv.Init(0); res != cudriver.Success {
//	    // ...
//	}
//
// Every driver entry point is exposed as a typed forwarder that performs a
// single indirect call and returns the native CUresult unmodified. The
// package never interprets, logs, or retries driver status codes; that is
// the caller's business.
//
// Symbol resolution is best effort. Older drivers lack newer entry points;
// the corresponding slot stays empty, construction still succeeds, and the
// forwarder reports ErrorSharedObjectSymbolNotFound when called. Use Has to
// gate calls on entry points the installed driver may not export.
package cudriver
