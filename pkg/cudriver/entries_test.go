package cudriver

import (
	"strings"
	"testing"
)

func TestEntrySymbolsComplete(t *testing.T) {
	seen := make(map[string]Entry, entryCount)
	for e := Entry(0); e < entryCount; e++ {
		sym := e.Symbol()
		if sym == "" {
			t.Fatalf("entry %d has no symbol name", e)
		}
		if !strings.HasPrefix(sym, "cu") {
			t.Errorf("entry %d: symbol %q does not look like a driver export", e, sym)
		}
		if prev, dup := seen[sym]; dup {
			t.Errorf("symbol %q mapped by both entry %d and %d", sym, prev, e)
		}
		seen[sym] = e
	}
	if got := Entry(entryCount).Symbol(); got != "" {
		t.Errorf("out-of-range entry resolved to %q", got)
	}
}

func TestVersionedSymbols(t *testing.T) {
	versioned := map[Entry]string{
		EntryLinkCreate:      "cuLinkCreate_v2",
		EntryModuleGetGlobal: "cuModuleGetGlobal_v2",
		EntryLinkAddFile:     "cuLinkAddFile_v2",
		EntryLinkAddData:     "cuLinkAddData_v2",
		EntryMemcpyDtoH:      "cuMemcpyDtoH_v2",
	}
	for e, want := range versioned {
		if got := e.Symbol(); got != want {
			t.Errorf("entry %d: got %q, want versioned export %q", e, got, want)
		}
	}
}

func TestResultString(t *testing.T) {
	if got := Success.String(); got != "CUDA_SUCCESS" {
		t.Errorf("Success.String() = %q", got)
	}
	if got := ErrorSharedObjectSymbolNotFound.String(); got != "CUDA_ERROR_SHARED_OBJECT_SYMBOL_NOT_FOUND" {
		t.Errorf("unexpected rendering %q", got)
	}
	if got := Result(12345).String(); got != "CUresult(12345)" {
		t.Errorf("unknown code rendered as %q", got)
	}
}
