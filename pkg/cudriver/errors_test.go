package cudriver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensorkit/cuda-driver-go/pkg/cudriver"
	"github.com/tensorkit/cuda-driver-go/pkg/cudriver/mockdrv"
)

// Static NUL-terminated strings handed out by the mock driver, package-level
// so the addresses stay valid for the whole test binary.
var (
	invalidValueName = append([]byte("CUDA_ERROR_INVALID_VALUE"), 0)
	invalidValueDesc = append([]byte("invalid argument"), 0)
)

// newErrorLib builds a mock driver that exports only the two error-query
// entry points, like a deliberately minimal stub build of the library.
func newErrorLib() *mockdrv.Library {
	lib := mockdrv.New()
	lib.Export("cuGetErrorName", func(code uint32, out **byte) uint32 {
		if cudriver.Result(code) != cudriver.ErrorInvalidValue {
			return uint32(cudriver.ErrorInvalidValue)
		}
		*out = &invalidValueName[0]
		return uint32(cudriver.Success)
	})
	lib.Export("cuGetErrorString", func(code uint32, out **byte) uint32 {
		if cudriver.Result(code) != cudriver.ErrorInvalidValue {
			return uint32(cudriver.ErrorInvalidValue)
		}
		*out = &invalidValueDesc[0]
		return uint32(cudriver.Success)
	})
	return lib
}

func TestPartialResolution(t *testing.T) {
	ld := &mockdrv.Loader{Lib: newErrorLib()}
	useLoader(t, ld)

	drv, err := cudriver.Acquire()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, drv.Release()) })

	// Construction succeeded even though almost every symbol is missing.
	require.True(t, drv.Has(cudriver.EntryGetErrorName))
	require.True(t, drv.Has(cudriver.EntryGetErrorString))
	require.False(t, drv.Has(cudriver.EntryLaunchCooperativeKernel))
	require.False(t, drv.Has(cudriver.EntryLaunchKernelEx))

	name, res := drv.ErrorName(cudriver.ErrorInvalidValue)
	require.Equal(t, cudriver.Success, res)
	require.Equal(t, "CUDA_ERROR_INVALID_VALUE", name)

	desc, res := drv.ErrorString(cudriver.ErrorInvalidValue)
	require.Equal(t, cudriver.Success, res)
	require.Equal(t, "invalid argument", desc)

	// A code the mock does not know comes back as the mock's own status.
	_, res = drv.ErrorName(cudriver.ErrorUnknown)
	require.Equal(t, cudriver.ErrorInvalidValue, res)

	// Unresolved entry points answer with a status instead of crashing
	// through a nil slot.
	res = drv.LaunchCooperativeKernel(0, 1, 1, 1, 1, 1, 1, 0, 0, nil)
	require.Equal(t, cudriver.ErrorSharedObjectSymbolNotFound, res)
}
