package cudriver

// Init forwards cuInit. flags must be 0 per the driver contract.
func (d *Driver) Init(flags uint32) Result {
	if d.cuInit == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.cuInit(flags)
}

// DriverGetVersion forwards cuDriverGetVersion.
func (d *Driver) DriverGetVersion(version *int32) Result {
	if d.driverGetVersion == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.driverGetVersion(version)
}

// DeviceGetCount forwards cuDeviceGetCount.
func (d *Driver) DeviceGetCount(count *int32) Result {
	if d.deviceGetCount == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.deviceGetCount(count)
}

// DeviceGet forwards cuDeviceGet.
func (d *Driver) DeviceGet(device *Device, ordinal int32) Result {
	if d.deviceGet == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.deviceGet(device, ordinal)
}

// DeviceGetName forwards cuDeviceGetName. name points at a buffer of at
// least length bytes; the driver writes a NUL-terminated string into it.
func (d *Driver) DeviceGetName(name *byte, length int32, dev Device) Result {
	if d.deviceGetName == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.deviceGetName(name, length, dev)
}

// DeviceName returns the device's name as a Go string.
func (d *Driver) DeviceName(dev Device) (string, Result) {
	buf := make([]byte, 256)
	if res := d.DeviceGetName(&buf[0], int32(len(buf)), dev); res != Success {
		return "", res
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), Success
		}
	}
	return string(buf), Success
}

// CtxGetDevice forwards cuCtxGetDevice.
func (d *Driver) CtxGetDevice(device *Device) Result {
	if d.ctxGetDevice == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.ctxGetDevice(device)
}

// DeviceGetAttribute forwards cuDeviceGetAttribute.
func (d *Driver) DeviceGetAttribute(pi *int32, attrib DeviceAttribute, dev Device) Result {
	if d.deviceGetAttribute == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.deviceGetAttribute(pi, attrib, dev)
}
