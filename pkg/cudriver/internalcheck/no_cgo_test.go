package internalcheck

import (
	"strconv"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/tensorkit/cuda-driver-go"

func loadSyntax(t *testing.T, patterns ...string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	return pkgs
}

// The whole point of this module is running on machines without the driver
// installed and without a C toolchain. Nothing under the wrapper may import
// "C"; dynamic loading goes through purego and x/sys only.
func TestNoCgo(t *testing.T) {
	pkgs := loadSyntax(t,
		modulePath+"/pkg/cudriver/...",
		modulePath+"/internal/dl",
	)

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" {
					pos := pkg.Fset.Position(imp.Pos())
					t.Errorf("%s: cgo import; the wrapper must stay cgo-free", pos)
				}
			}
		}
	}
}
