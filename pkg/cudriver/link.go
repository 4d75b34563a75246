package cudriver

import "unsafe"

// LinkCreate forwards cuLinkCreate_v2, opening a JIT link session.
func (d *Driver) LinkCreate(numOptions uint32, options *JITOption, optionValues *unsafe.Pointer, stateOut *LinkState) Result {
	if d.linkCreate == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.linkCreate(numOptions, options, optionValues, stateOut)
}

// LinkAddData forwards cuLinkAddData_v2.
func (d *Driver) LinkAddData(state LinkState, typ JITInputType, data unsafe.Pointer, size uintptr, name string, numOptions uint32, options *JITOption, optionValues *unsafe.Pointer) Result {
	if d.linkAddData == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.linkAddData(state, typ, data, size, name, numOptions, options, optionValues)
}

// LinkAddFile forwards cuLinkAddFile_v2.
func (d *Driver) LinkAddFile(state LinkState, typ JITInputType, path string, numOptions uint32, options *JITOption, optionValues *unsafe.Pointer) Result {
	if d.linkAddFile == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.linkAddFile(state, typ, path, numOptions, options, optionValues)
}

// LinkComplete forwards cuLinkComplete. cubinOut receives a pointer into
// memory owned by the link state; it is invalidated by LinkDestroy.
func (d *Driver) LinkComplete(state LinkState, cubinOut *unsafe.Pointer, sizeOut *uintptr) Result {
	if d.linkComplete == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.linkComplete(state, cubinOut, sizeOut)
}

// LinkDestroy forwards cuLinkDestroy.
func (d *Driver) LinkDestroy(state LinkState) Result {
	if d.linkDestroy == nil {
		return ErrorSharedObjectSymbolNotFound
	}
	return d.linkDestroy(state)
}
