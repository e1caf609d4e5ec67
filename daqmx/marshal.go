package daqmx

import (
	"math"
	"syscall"
	"unsafe"
)

/* Argument marshaling helpers for the native calling interface. All driver
parameters travel as machine words: strings as NUL terminated byte pointers,
doubles as their IEEE-754 bit pattern, output parameters as pointers into
caller owned buffers. */

// converts a Go string into a NUL terminated buffer for the driver. The
// driver treats an empty string like a NULL pointer for optional parameters
// such as custom scale names.
func cstr(s string) uintptr {
	p, err := syscall.BytePtrFromString(s)
	if err != nil {
		// strings with interior NUL bytes cannot reach the driver; pass the
		// empty string instead of panicking inside a declaration shim
		p, _ = syscall.BytePtrFromString("")
	}
	return uintptr(unsafe.Pointer(p))
}

// passes a float64 parameter through the integer register/stack call path
func f64arg(v float64) uintptr {
	return uintptr(math.Float64bits(v))
}

// passes a bool32 parameter the way the driver expects it
func boolArg(v bool) uintptr {
	if v {
		return 1
	}
	return 0
}

// passes a caller owned buffer as driver output/input array parameter
func sliceArg[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}
