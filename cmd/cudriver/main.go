// Command cudriver is a smoke tool for the driver binding: it opens the
// library, initializes the driver and reports the version plus the visible
// devices. Useful for checking an installation without building anything
// GPU-specific.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/tensorkit/cuda-driver-go/pkg/cudriver"
)

func main() {
	log.Printf("cuda-driver-go version: %s", cudriver.Version())

	drv, err := cudriver.Acquire()
	if err != nil {
		if errors.Is(err, cudriver.ErrNotAvailable) {
			fmt.Printf("driver unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening driver: %v", err)
	}
	defer func() {
		if rerr := drv.Release(); rerr != nil {
			log.Printf("release error: %v", rerr)
		}
	}()

	if res := drv.Init(0); res != cudriver.Success {
		log.Fatalf("cuInit: %v", res)
	}

	var version int32
	if res := drv.DriverGetVersion(&version); res == cudriver.Success {
		fmt.Printf("driver version: %d.%d\n", version/1000, (version%1000)/10)
	}

	var count int32
	if res := drv.DeviceGetCount(&count); res != cudriver.Success {
		log.Fatalf("cuDeviceGetCount: %v", res)
	}
	fmt.Printf("devices: %d\n", count)

	for i := int32(0); i < count; i++ {
		var dev cudriver.Device
		if res := drv.DeviceGet(&dev, i); res != cudriver.Success {
			log.Printf("cuDeviceGet(%d): %v", i, res)
			continue
		}
		name, res := drv.DeviceName(dev)
		if res != cudriver.Success {
			name = "<unknown>"
		}
		fmt.Printf("device %d: %s\n", i, name)
	}
}
