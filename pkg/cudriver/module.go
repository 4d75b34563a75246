package cudriver

import "unsafe"

// ModuleLoadData forwards cuModuleLoadData. image points at a cubin, PTX or
// fatbin blob in host memory.
func (d *Driver) ModuleLoadData(module *Module, image unsafe.Pointer) Result {
	if d.moduleLoadData == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.moduleLoadData(module, image)
}

// ModuleUnload forwards cuModuleUnload.
func (d *Driver) ModuleUnload(hmod Module) Result {
	if d.moduleUnload == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.moduleUnload(hmod)
}

// ModuleGetFunction forwards cuModuleGetFunction.
func (d *Driver) ModuleGetFunction(hfunc *Function, hmod Module, name string) Result {
	if d.moduleGetFunction == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.moduleGetFunction(hfunc, hmod, name)
}

// ModuleGetGlobal forwards cuModuleGetGlobal_v2.
func (d *Driver) ModuleGetGlobal(dptr *DevicePtr, bytes *uintptr, hmod Module, name string) Result {
	if d.moduleGetGlobal == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.moduleGetGlobal(dptr, bytes, hmod, name)
}

// LibraryLoadData forwards cuLibraryLoadData.
func (d *Driver) LibraryLoadData(library *Library, code unsafe.Pointer, jitOptions *JITOption, jitOptionValues *unsafe.Pointer, numJitOptions uint32, libraryOptions *LibraryOption, libraryOptionValues *unsafe.Pointer, numLibraryOptions uint32) Result {
	if d.libraryLoadData == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.libraryLoadData(library, code, jitOptions, jitOptionValues, numJitOptions, libraryOptions, libraryOptionValues, numLibraryOptions)
}

// LibraryGetKernel forwards cuLibraryGetKernel.
func (d *Driver) LibraryGetKernel(kernel *Kernel, library Library, name string) Result {
	if d.libraryGetKernel == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.libraryGetKernel(kernel, library, name)
}

// LibraryGetGlobal forwards cuLibraryGetGlobal.
func (d *Driver) LibraryGetGlobal(dptr *DevicePtr, bytes *uintptr, library Library, name string) Result {
	if d.libraryGetGlobal == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.libraryGetGlobal(dptr, bytes, library, name)
}

// LibraryUnload forwards cuLibraryUnload.
func (d *Driver) LibraryUnload(library Library) Result {
	if d.libraryUnload == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.libraryUnload(library)
}

// FuncSetAttribute forwards cuFuncSetAttribute.
func (d *Driver) FuncSetAttribute(hfunc Function, attrib FunctionAttribute, value int32) Result {
	if d.funcSetAttribute == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.funcSetAttribute(hfunc, attrib, value)
}

// KernelSetAttribute forwards cuKernelSetAttribute.
func (d *Driver) KernelSetAttribute(attrib FunctionAttribute, value int32, kernel Kernel, dev Device) Result {
	if d.kernelSetAttribute == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.kernelSetAttribute(attrib, value, kernel, dev)
}
