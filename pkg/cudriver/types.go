package cudriver

import "fmt"

// Result is the native CUresult status code. Forwarders return it verbatim;
// nothing in this package interprets it beyond comparing against Success.
type Result uint32

const (
	Success             Result = 0
	ErrorInvalidValue   Result = 1
	ErrorOutOfMemory    Result = 2
	ErrorNotInitialized Result = 3
	ErrorDeinitialized  Result = 4
	ErrorNoDevice       Result = 100
	ErrorInvalidDevice  Result = 101
	ErrorInvalidImage   Result = 200
	ErrorInvalidContext Result = 201
	ErrorNotFound       Result = 500
	ErrorLaunchFailed   Result = 719
	ErrorNotSupported   Result = 801
	ErrorUnknown        Result = 999

	// ErrorSharedObjectSymbolNotFound is returned by a forwarder whose entry
	// point the loaded driver does not export. The driver uses the same code
	// for its own shared-object lookup failures, which is exactly the
	// condition here.
	ErrorSharedObjectSymbolNotFound Result = 302
)

var resultNames = map[Result]string{
	Success:                         "CUDA_SUCCESS",
	ErrorInvalidValue:               "CUDA_ERROR_INVALID_VALUE",
	ErrorOutOfMemory:                "CUDA_ERROR_OUT_OF_MEMORY",
	ErrorNotInitialized:             "CUDA_ERROR_NOT_INITIALIZED",
	ErrorDeinitialized:              "CUDA_ERROR_DEINITIALIZED",
	ErrorNoDevice:                   "CUDA_ERROR_NO_DEVICE",
	ErrorInvalidDevice:              "CUDA_ERROR_INVALID_DEVICE",
	ErrorInvalidImage:               "CUDA_ERROR_INVALID_IMAGE",
	ErrorInvalidContext:             "CUDA_ERROR_INVALID_CONTEXT",
	ErrorSharedObjectSymbolNotFound: "CUDA_ERROR_SHARED_OBJECT_SYMBOL_NOT_FOUND",
	ErrorNotFound:                   "CUDA_ERROR_NOT_FOUND",
	ErrorLaunchFailed:               "CUDA_ERROR_LAUNCH_FAILED",
	ErrorNotSupported:               "CUDA_ERROR_NOT_SUPPORTED",
	ErrorUnknown:                    "CUDA_ERROR_UNKNOWN",
}

// String renders the codes this package names itself; ask the driver via
// ErrorName for the authoritative rendering of anything else.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("CUresult(%d)", uint32(r))
}

// Opaque driver handles. All of them are plain values on the Go side; the
// driver owns whatever they point at.
type (
	// Device is an ordinal device handle (CUdevice).
	Device int32

	// DevicePtr is a device memory address (CUdeviceptr).
	DevicePtr uint64

	// Module is a loaded module handle (CUmodule).
	Module uintptr

	// Function is a kernel function handle (CUfunction).
	Function uintptr

	// Kernel is a library-scoped kernel handle (CUkernel).
	Kernel uintptr

	// Library is a loaded library handle (CUlibrary).
	Library uintptr

	// LinkState is a pending JIT link session (CUlinkState).
	LinkState uintptr

	// Stream is a stream handle (CUstream); zero means the default stream.
	Stream uintptr
)

// Enumerations passed through to the driver. Values are dictated by the
// native ABI; this package never inspects them.
type (
	FunctionAttribute int32
	DeviceAttribute   int32
	JITOption         uint32
	JITInputType      uint32
	LibraryOption     uint32

	TensorMapDataType     uint32
	TensorMapInterleave   uint32
	TensorMapSwizzle      uint32
	TensorMapL2Promotion  uint32
	TensorMapFloatOOBFill uint32
)

// TensorMap is the 128-byte opaque tensor-map descriptor (CUtensorMap). The
// uint64 backing keeps the required 64-byte alignment-friendly layout.
type TensorMap struct {
	opaque [16]uint64
}
