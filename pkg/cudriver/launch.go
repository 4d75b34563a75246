package cudriver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"
)

// LaunchAttributeID selects which member of a LaunchAttribute value union is
// meaningful. Values match the native CUlaunchAttributeID enum.
type LaunchAttributeID uint32

const (
	LaunchAttributeIgnore           LaunchAttributeID = 0
	LaunchAttributeClusterDimension LaunchAttributeID = 4
	LaunchAttributePriority         LaunchAttributeID = 8
)

// LaunchAttributeValue mirrors the 64-byte native value union. Accessors
// reinterpret the leading bytes for the members this package knows about.
type LaunchAttributeValue [64]byte

// ClusterDim decodes the cluster-dimension member.
func (v *LaunchAttributeValue) ClusterDim() (x, y, z uint32) {
	dim := *(*[3]uint32)(unsafe.Pointer(v))
	return dim[0], dim[1], dim[2]
}

// SetClusterDim encodes the cluster-dimension member.
func (v *LaunchAttributeValue) SetClusterDim(x, y, z uint32) {
	*(*[3]uint32)(unsafe.Pointer(v)) = [3]uint32{x, y, z}
}

// Priority decodes the priority member.
func (v *LaunchAttributeValue) Priority() int32 {
	return *(*int32)(unsafe.Pointer(v))
}

// SetPriority encodes the priority member.
func (v *LaunchAttributeValue) SetPriority(p int32) {
	*(*int32)(unsafe.Pointer(v)) = p
}

// LaunchAttribute is one per-launch attribute, layout-compatible with the
// native CUlaunchAttribute.
type LaunchAttribute struct {
	ID    LaunchAttributeID
	_     [4]byte
	Value LaunchAttributeValue
}

// LaunchConfig describes how a kernel invocation is scheduled on the
// device. The field layout matches the native CUlaunchConfig so the struct
// can be handed to the driver as-is.
type LaunchConfig struct {
	GridDimX       uint32
	GridDimY       uint32
	GridDimZ       uint32
	BlockDimX      uint32
	BlockDimY      uint32
	BlockDimZ      uint32
	SharedMemBytes uint32
	_              [4]byte
	Stream         Stream
	Attrs          *LaunchAttribute
	NumAttrs       uint32
	_              [4]byte
}

func (c *LaunchConfig) attributes() []LaunchAttribute {
	if c.Attrs == nil || c.NumAttrs == 0 {
		return nil
	}
	return unsafe.Slice(c.Attrs, c.NumAttrs)
}

// String renders the launch configuration for diagnostic output: grid and
// block dimensions, shared memory, stream identity and per-launch
// attributes.
func (c *LaunchConfig) String() string {
	if c == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Grid Dimensions: (%d, %d, %d)\n", c.GridDimX, c.GridDimY, c.GridDimZ)
	fmt.Fprintf(&b, "Block Dimensions: (%d, %d, %d)\n", c.BlockDimX, c.BlockDimY, c.BlockDimZ)
	fmt.Fprintf(&b, "Shared Memory: %d bytes\n", c.SharedMemBytes)
	kind := "Default"
	if c.Stream != 0 {
		kind = "Custom"
	}
	fmt.Fprintf(&b, "Stream: %s (0x%x)\n", kind, uintptr(c.Stream))
	fmt.Fprintf(&b, "Attributes (%d):\n", c.NumAttrs)
	for i, attr := range c.attributes() {
		fmt.Fprintf(&b, "  [%d] ", i)
		switch attr.ID {
		case LaunchAttributeClusterDimension:
			x, y, z := attr.Value.ClusterDim()
			fmt.Fprintf(&b, "Cluster Dimension: (%d, %d, %d)", x, y, z)
		case LaunchAttributePriority:
			fmt.Fprintf(&b, "Priority: %d", attr.Value.Priority())
		default:
			fmt.Fprintf(&b, "Unknown Attribute (ID=%d)", attr.ID)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// LaunchKernel forwards cuLaunchKernel.
func (d *Driver) LaunchKernel(f Function, gridDimX, gridDimY, gridDimZ, blockDimX, blockDimY, blockDimZ, sharedMemBytes uint32, stream Stream, kernelParams, extra *unsafe.Pointer) Result {
	if d.launchKernel == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.launchKernel(f, gridDimX, gridDimY, gridDimZ, blockDimX, blockDimY, blockDimZ, sharedMemBytes, stream, kernelParams, extra)
}

// LaunchCooperativeKernel forwards cuLaunchCooperativeKernel.
func (d *Driver) LaunchCooperativeKernel(f Function, gridDimX, gridDimY, gridDimZ, blockDimX, blockDimY, blockDimZ, sharedMemBytes uint32, stream Stream, kernelParams *unsafe.Pointer) Result {
	if d.launchCooperativeKernel == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.launchCooperativeKernel(f, gridDimX, gridDimY, gridDimZ, blockDimX, blockDimY, blockDimZ, sharedMemBytes, stream, kernelParams)
}

// LaunchKernelEx forwards cuLaunchKernelEx. Exactly one of kernelParams and
// extra must be set; passing both or neither is a caller bug, not a driver
// condition, and panics before the driver is reached. With debug logging
// enabled the launch configuration is rendered beforehand; the rendering has
// no effect on the call.
func (d *Driver) LaunchKernelEx(config *LaunchConfig, f Function, kernelParams, extra *unsafe.Pointer) Result {
	ctx := context.Background()
	if d.log.Enabled(ctx, slog.LevelDebug) {
		d.log.Debug(ctx, "launch config", "config", config.String())
	}
	if (kernelParams != nil) == (extra != nil) {
		panic("cudriver: exactly one of kernelParams and extra must be set")
	}
	if d.launchKernelEx == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.launchKernelEx(config, f, kernelParams, extra)
}

// OccupancyMaxActiveClusters forwards cuOccupancyMaxActiveClusters.
func (d *Driver) OccupancyMaxActiveClusters(maxActiveClusters *int32, f Function, config *LaunchConfig) Result {
	if d.occupancyMaxActiveClusters == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.occupancyMaxActiveClusters(maxActiveClusters, f, config)
}
