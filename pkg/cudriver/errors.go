package cudriver

import "unsafe"

// GetErrorName forwards cuGetErrorName. pStr receives a pointer to a
// NUL-terminated string owned by the driver.
func (d *Driver) GetErrorName(err Result, pStr **byte) Result {
	if d.getErrorName == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.getErrorName(err, pStr)
}

// GetErrorString forwards cuGetErrorString.
func (d *Driver) GetErrorString(err Result, pStr **byte) Result {
	if d.getErrorString == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.getErrorString(err, pStr)
}

// ErrorName returns the driver's symbolic name for a status code, e.g.
// "CUDA_ERROR_INVALID_VALUE".
func (d *Driver) ErrorName(err Result) (string, Result) {
	var p *byte
	if res := d.GetErrorName(err, &p); res != Success {
		return "", res
	}
	return goString(p), Success
}

// ErrorString returns the driver's description of a status code.
func (d *Driver) ErrorString(err Result) (string, Result) {
	var p *byte
	if res := d.GetErrorString(err, &p); res != Success {
		return "", res
	}
	return goString(p), Success
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
