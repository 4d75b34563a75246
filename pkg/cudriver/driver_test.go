package cudriver_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensorkit/cuda-driver-go/pkg/cudriver"
	"github.com/tensorkit/cuda-driver-go/pkg/cudriver/mockdrv"
)

// useLoader installs a mock loader for the duration of the test. Restoring
// the OS loader afterwards fails if the test leaked a live instance, which
// doubles as a leak check.
func useLoader(t *testing.T, ld *mockdrv.Loader) {
	t.Helper()
	require.NoError(t, cudriver.SetLoader(ld))
	t.Cleanup(func() {
		if err := cudriver.SetLoader(nil); err != nil {
			t.Errorf("restoring loader: %v", err)
		}
	})
}

func TestAcquireConcurrentFirstUse(t *testing.T) {
	ld := &mockdrv.Loader{Lib: mockdrv.New()}
	useLoader(t, ld)

	const n = 16
	var (
		wg      sync.WaitGroup
		drivers [n]*cudriver.Driver
		errs    [n]error
	)
	start := make(chan struct{})
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			drivers[i], errs[i] = cudriver.Acquire()
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Same(t, drivers[0], drivers[i])
	}
	require.Equal(t, 1, ld.Opens())

	for i := 0; i < n; i++ {
		require.NoError(t, drivers[i].Release())
	}
	require.Equal(t, 1, ld.Lib.Closes())
}

func TestReleaseClosesOnceThenReopens(t *testing.T) {
	ld := &mockdrv.Loader{Lib: mockdrv.New()}
	useLoader(t, ld)

	d1, err := cudriver.Acquire()
	require.NoError(t, err)
	d2, err := cudriver.Acquire()
	require.NoError(t, err)
	require.Same(t, d1, d2)
	require.Equal(t, 1, ld.Opens())

	require.NoError(t, d1.Release())
	require.Equal(t, 0, ld.Lib.Closes())
	require.NoError(t, d2.Release())
	require.Equal(t, 1, ld.Lib.Closes())

	// The next acquire builds a fresh instance with a fresh open/resolve.
	d3, err := cudriver.Acquire()
	require.NoError(t, err)
	require.NotSame(t, d1, d3)
	require.Equal(t, 2, ld.Opens())
	require.NoError(t, d3.Release())
	require.Equal(t, 2, ld.Lib.Closes())
}

func TestOverRelease(t *testing.T) {
	ld := &mockdrv.Loader{Lib: mockdrv.New()}
	useLoader(t, ld)

	d, err := cudriver.Acquire()
	require.NoError(t, err)
	require.NoError(t, d.Release())
	require.ErrorIs(t, d.Release(), cudriver.ErrReleased)
	require.Equal(t, 1, ld.Lib.Closes())
}

func TestAcquireFailsWithoutLibrary(t *testing.T) {
	ld := &mockdrv.Loader{Err: errors.New("no such library")}
	useLoader(t, ld)

	d, err := cudriver.Acquire()
	require.Nil(t, d)
	require.ErrorIs(t, err, cudriver.ErrNotAvailable)

	require.Panics(t, func() { cudriver.MustAcquire() })
}

func TestSetLoaderRefusedWhileLive(t *testing.T) {
	ld := &mockdrv.Loader{Lib: mockdrv.New()}
	useLoader(t, ld)

	d, err := cudriver.Acquire()
	require.NoError(t, err)
	require.ErrorIs(t, cudriver.SetLoader(nil), cudriver.ErrLoaderInUse)
	require.NoError(t, d.Release())
}
