// Package internalcheck holds source-policy tests for the wrapper.
//
// The checks load the wrapper's packages with go/packages and fail when a
// change violates an invariant the code itself cannot express: the module
// must stay cgo-free, and forwarder files must not pick up logging or
// formatting on the hot path. It is not intended for external use.
package internalcheck
