package cudriver

// Entry identifies one wrapped driver entry point. The set is fixed at
// compile time; every Entry owns one symbol slot in Driver.
type Entry uint8

const (
	EntryGetErrorName Entry = iota
	EntryGetErrorString
	EntryFuncSetAttribute
	EntryLinkComplete
	EntryModuleUnload
	EntryLinkDestroy
	EntryModuleLoadData
	EntryLinkCreate
	EntryModuleGetFunction
	EntryModuleGetGlobal
	EntryLibraryGetKernel
	EntryLibraryLoadData
	EntryLibraryGetGlobal
	EntryLibraryUnload
	EntryKernelSetAttribute
	EntryCtxGetDevice
	EntryLinkAddFile
	EntryLinkAddData
	EntryLaunchCooperativeKernel
	EntryLaunchKernel
	EntryLaunchKernelEx
	EntryTensorMapEncodeTiled
	EntryMemcpyDtoH
	EntryDeviceGetAttribute
	EntryOccupancyMaxActiveClusters
	EntryInit
	EntryDriverGetVersion
	EntryDeviceGetCount
	EntryDeviceGet
	EntryDeviceGetName

	entryCount
)

// entrySymbols holds the exported name of each entry point. Some logical
// names map to a version-suffixed export because the driver revised the ABI
// while keeping the old symbol for binary compatibility.
var entrySymbols = [entryCount]string{
	EntryGetErrorName:               "cuGetErrorName",
	EntryGetErrorString:             "cuGetErrorString",
	EntryFuncSetAttribute:           "cuFuncSetAttribute",
	EntryLinkComplete:               "cuLinkComplete",
	EntryModuleUnload:               "cuModuleUnload",
	EntryLinkDestroy:                "cuLinkDestroy",
	EntryModuleLoadData:             "cuModuleLoadData",
	EntryLinkCreate:                 "cuLinkCreate_v2",
	EntryModuleGetFunction:          "cuModuleGetFunction",
	EntryModuleGetGlobal:            "cuModuleGetGlobal_v2",
	EntryLibraryGetKernel:           "cuLibraryGetKernel",
	EntryLibraryLoadData:            "cuLibraryLoadData",
	EntryLibraryGetGlobal:           "cuLibraryGetGlobal",
	EntryLibraryUnload:              "cuLibraryUnload",
	EntryKernelSetAttribute:         "cuKernelSetAttribute",
	EntryCtxGetDevice:               "cuCtxGetDevice",
	EntryLinkAddFile:                "cuLinkAddFile_v2",
	EntryLinkAddData:                "cuLinkAddData_v2",
	EntryLaunchCooperativeKernel:    "cuLaunchCooperativeKernel",
	EntryLaunchKernel:               "cuLaunchKernel",
	EntryLaunchKernelEx:             "cuLaunchKernelEx",
	EntryTensorMapEncodeTiled:       "cuTensorMapEncodeTiled",
	EntryMemcpyDtoH:                 "cuMemcpyDtoH_v2",
	EntryDeviceGetAttribute:         "cuDeviceGetAttribute",
	EntryOccupancyMaxActiveClusters: "cuOccupancyMaxActiveClusters",
	EntryInit:                       "cuInit",
	EntryDriverGetVersion:           "cuDriverGetVersion",
	EntryDeviceGetCount:             "cuDeviceGetCount",
	EntryDeviceGet:                  "cuDeviceGet",
	EntryDeviceGetName:              "cuDeviceGetName",
}

// Symbol returns the exported name resolved in the driver library.
func (e Entry) Symbol() string {
	if e >= entryCount {
		return ""
	}
	return entrySymbols[e]
}
