package cudriver

// version is populated at build time via
// -ldflags "-X github.com/tensorkit/cuda-driver-go/pkg/cudriver.version=v1.2.3".
var version = "v0.0.0-dev"

// Version returns the wrapper's version string.
func Version() string { return version }
