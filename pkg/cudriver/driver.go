package cudriver

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/tensorkit/cuda-driver-go/internal/dl"
	"github.com/tensorkit/cuda-driver-go/pkg/cudriver/logging"
)

// LibraryName is the logical name of the driver library. The OS loader maps
// it to libcuda.so.1 on POSIX systems and nvcuda.dll on Windows.
const LibraryName = "cuda"

var (
	// ErrNotAvailable reports that the driver library could not be opened.
	// Nothing GPU-related can work in this process.
	ErrNotAvailable = errors.New("cuda driver library is not available")

	// ErrReleased reports a Release on a handle whose reference count
	// already dropped to zero.
	ErrReleased = errors.New("driver handle already released")

	// ErrLoaderInUse reports an attempt to swap the loader while an
	// instance constructed through the current one is still alive.
	ErrLoaderInUse = errors.New("cannot replace loader while a driver instance is live")
)

// Driver wraps the dynamically loaded CUDA driver library. Symbol slots are
// populated once during construction and never change afterwards, so the
// forwarders are safe to call concurrently without locking.
type Driver struct {
	refs atomic.Int64
	lib  dl.Library
	log  logging.Logger

	addrs [entryCount]uintptr

	getErrorName               func(Result, **byte) Result
	getErrorString             func(Result, **byte) Result
	funcSetAttribute           func(Function, FunctionAttribute, int32) Result
	linkComplete               func(LinkState, *unsafe.Pointer, *uintptr) Result
	moduleUnload               func(Module) Result
	linkDestroy                func(LinkState) Result
	moduleLoadData             func(*Module, unsafe.Pointer) Result
	linkCreate                 func(uint32, *JITOption, *unsafe.Pointer, *LinkState) Result
	moduleGetFunction          func(*Function, Module, string) Result
	moduleGetGlobal            func(*DevicePtr, *uintptr, Module, string) Result
	libraryGetKernel           func(*Kernel, Library, string) Result
	libraryLoadData            func(*Library, unsafe.Pointer, *JITOption, *unsafe.Pointer, uint32, *LibraryOption, *unsafe.Pointer, uint32) Result
	libraryGetGlobal           func(*DevicePtr, *uintptr, Library, string) Result
	libraryUnload              func(Library) Result
	kernelSetAttribute         func(FunctionAttribute, int32, Kernel, Device) Result
	ctxGetDevice               func(*Device) Result
	linkAddFile                func(LinkState, JITInputType, string, uint32, *JITOption, *unsafe.Pointer) Result
	linkAddData                func(LinkState, JITInputType, unsafe.Pointer, uintptr, string, uint32, *JITOption, *unsafe.Pointer) Result
	launchCooperativeKernel    func(Function, uint32, uint32, uint32, uint32, uint32, uint32, uint32, Stream, *unsafe.Pointer) Result
	launchKernel               func(Function, uint32, uint32, uint32, uint32, uint32, uint32, uint32, Stream, *unsafe.Pointer, *unsafe.Pointer) Result
	launchKernelEx             func(*LaunchConfig, Function, *unsafe.Pointer, *unsafe.Pointer) Result
	tensorMapEncodeTiled       func(*TensorMap, TensorMapDataType, uint32, unsafe.Pointer, *uint64, *uint64, *uint32, *uint32, TensorMapInterleave, TensorMapSwizzle, TensorMapL2Promotion, TensorMapFloatOOBFill) Result
	memcpyDtoH                 func(unsafe.Pointer, DevicePtr, uintptr) Result
	deviceGetAttribute         func(*int32, DeviceAttribute, Device) Result
	occupancyMaxActiveClusters func(*int32, Function, *LaunchConfig) Result
	cuInit                     func(uint32) Result
	driverGetVersion           func(*int32) Result
	deviceGetCount             func(*int32) Result
	deviceGet                  func(*Device, int32) Result
	deviceGetName              func(*byte, int32, Device) Result
}

var (
	mu       sync.Mutex
	instance atomic.Pointer[Driver]

	loader dl.Loader      = dl.System{}
	logger logging.Logger = logging.New(nil)
)

// SetLoader replaces the loader used to open the driver library. It exists
// for tests and for embedding alternative driver stacks. Passing nil
// restores the OS loader. The swap is refused while an instance constructed
// through the current loader is still alive.
func SetLoader(l dl.Loader) error {
	mu.Lock()
	defer mu.Unlock()
	if instance.Load() != nil {
		return ErrLoaderInUse
	}
	if l == nil {
		l = dl.System{}
	}
	loader = l
	return nil
}

// SetLogger replaces the logger captured by subsequently constructed
// instances. Passing nil restores the slog default.
func SetLogger(l logging.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = logging.New(nil)
	}
	logger = l
}

// Acquire returns a shared handle to the process-wide driver wrapper,
// constructing it on first use. The fast path is a single atomic load plus a
// reference-count retain; the mutex is only taken during the rare
// construction race. Every Acquire must be paired with a Release.
func Acquire() (*Driver, error) {
	if d := instance.Load(); d != nil && d.retain() {
		return d, nil
	}

	mu.Lock()
	defer mu.Unlock()
	if d := instance.Load(); d != nil && d.retain() {
		return d, nil
	}
	d, err := open(loader, logger)
	if err != nil {
		return nil, err
	}
	instance.Store(d)
	return d, nil
}

// MustAcquire is Acquire for callers that cannot proceed without a working
// driver binding; it panics if the library cannot be opened.
func MustAcquire() *Driver {
	d, err := Acquire()
	if err != nil {
		panic(err)
	}
	return d
}

// retain refuses to resurrect an instance whose count already reached zero.
// Such an instance is mid-teardown; the caller must construct a fresh one
// under the lock instead.
func (d *Driver) retain() bool {
	for {
		n := d.refs.Load()
		if n <= 0 {
			return false
		}
		if d.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release drops one reference. The last release unpublishes the instance
// and closes the library handle exactly once; no forwarder may be called on
// d afterwards.
func (d *Driver) Release() error {
	for {
		n := d.refs.Load()
		if n <= 0 {
			return ErrReleased
		}
		if !d.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n > 1 {
			return nil
		}
		break
	}

	mu.Lock()
	instance.CompareAndSwap(d, nil)
	mu.Unlock()
	return d.lib.Close()
}

// Has reports whether the loaded driver exports the given entry point.
func (d *Driver) Has(e Entry) bool {
	return e < entryCount && d.addrs[e] != 0
}

func open(ld dl.Loader, log logging.Logger) (*Driver, error) {
	lib, err := ld.Open(LibraryName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	d := &Driver{lib: lib, log: log}
	d.refs.Store(1)
	d.resolve()
	return d, nil
}

// resolve populates the symbol slots best effort. A missing export leaves
// its slot nil and the failure surfaces at the call site instead of here:
// driver versions differ in which entry points they carry, and most callers
// never touch the newer ones.
func (d *Driver) resolve() {
	for e := Entry(0); e < entryCount; e++ {
		addr, err := d.lib.Sym(e.Symbol())
		if err != nil {
			continue
		}
		d.addrs[e] = addr
	}

	d.bind(EntryGetErrorName, &d.getErrorName)
	d.bind(EntryGetErrorString, &d.getErrorString)
	d.bind(EntryFuncSetAttribute, &d.funcSetAttribute)
	d.bind(EntryLinkComplete, &d.linkComplete)
	d.bind(EntryModuleUnload, &d.moduleUnload)
	d.bind(EntryLinkDestroy, &d.linkDestroy)
	d.bind(EntryModuleLoadData, &d.moduleLoadData)
	d.bind(EntryLinkCreate, &d.linkCreate)
	d.bind(EntryModuleGetFunction, &d.moduleGetFunction)
	d.bind(EntryModuleGetGlobal, &d.moduleGetGlobal)
	d.bind(EntryLibraryGetKernel, &d.libraryGetKernel)
	d.bind(EntryLibraryLoadData, &d.libraryLoadData)
	d.bind(EntryLibraryGetGlobal, &d.libraryGetGlobal)
	d.bind(EntryLibraryUnload, &d.libraryUnload)
	d.bind(EntryKernelSetAttribute, &d.kernelSetAttribute)
	d.bind(EntryCtxGetDevice, &d.ctxGetDevice)
	d.bind(EntryLinkAddFile, &d.linkAddFile)
	d.bind(EntryLinkAddData, &d.linkAddData)
	d.bind(EntryLaunchCooperativeKernel, &d.launchCooperativeKernel)
	d.bind(EntryLaunchKernel, &d.launchKernel)
	d.bind(EntryLaunchKernelEx, &d.launchKernelEx)
	d.bind(EntryTensorMapEncodeTiled, &d.tensorMapEncodeTiled)
	d.bind(EntryMemcpyDtoH, &d.memcpyDtoH)
	d.bind(EntryDeviceGetAttribute, &d.deviceGetAttribute)
	d.bind(EntryOccupancyMaxActiveClusters, &d.occupancyMaxActiveClusters)
	d.bind(EntryInit, &d.cuInit)
	d.bind(EntryDriverGetVersion, &d.driverGetVersion)
	d.bind(EntryDeviceGetCount, &d.deviceGetCount)
	d.bind(EntryDeviceGet, &d.deviceGet)
	d.bind(EntryDeviceGetName, &d.deviceGetName)
}

// bind attaches the resolved address to a typed slot. fptr must be a
// pointer to a function variable whose signature matches the native entry
// point.
func (d *Driver) bind(e Entry, fptr any) {
	if addr := d.addrs[e]; addr != 0 {
		purego.RegisterFunc(fptr, addr)
	}
}
