package daqmx

import (
	"errors"
	"time"
)

/* Shared loader state. The platform specific files resolve the registered
entry points against the vendor driver and provide the call path; everything
else in the package is plain declaration boilerplate on top of it. */

var (
	// all entry points registered through newProc, resolved by LoadAPI
	apiProcs []*apiProc

	apiLoaded bool          // set by LoadAPI and unset by UnloadAPI
	loadTime  time.Duration // duration of the last successful LoadAPI
)

var (
	ErrAPINotLoaded        = errors.New("daqmx api was not loaded, call LoadAPI first")
	ErrUnsupportedPlatform = errors.New("the nidaqmx driver is only available on windows/amd64")
)

// registers a driver entry point for resolution during LoadAPI
func newProc(name string) *apiProc {
	p := &apiProc{name: name}
	apiProcs = append(apiProcs, p)
	return p
}

// LoadTime returns how long the last successful LoadAPI took. The driver
// resolves several hundred entry points, which is observable on first use.
func LoadTime() time.Duration {
	return loadTime
}
