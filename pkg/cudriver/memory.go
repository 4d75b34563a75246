package cudriver

import "unsafe"

// MemcpyDtoH forwards cuMemcpyDtoH_v2, copying byteCount bytes from device
// memory into dstHost. The copy is synchronous.
func (d *Driver) MemcpyDtoH(dstHost unsafe.Pointer, srcDevice DevicePtr, byteCount uintptr) Result {
	if d.memcpyDtoH == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.memcpyDtoH(dstHost, srcDevice, byteCount)
}

// TensorMapEncodeTiled forwards cuTensorMapEncodeTiled.
func (d *Driver) TensorMapEncodeTiled(tensorMap *TensorMap, dataType TensorMapDataType, rank uint32, globalAddress unsafe.Pointer, globalDim *uint64, globalStrides *uint64, boxDim *uint32, elementStrides *uint32, interleave TensorMapInterleave, swizzle TensorMapSwizzle, l2Promotion TensorMapL2Promotion, oobFill TensorMapFloatOOBFill) Result {
	if d.tensorMapEncodeTiled == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.tensorMapEncodeTiled(tensorMap, dataType, rank, globalAddress, globalDim, globalStrides, boxDim, elementStrides, interleave, swizzle, l2Promotion, oobFill)
}
