//go:build !(windows && amd64)

package daqmx

/* The NI-DAQmx driver only ships for windows; other platforms get a compile
only stub so dependent code and the pure helper tests still build. */

// proc handle for a single driver entry point, never resolved on this platform
type apiProc struct {
	name string
}

func (p *apiProc) call(args ...uintptr) (Status, error) {
	return StatusOK, ErrUnsupportedPlatform
}

// Loads the NI-DAQmx driver. Always fails on this platform.
func LoadAPI() error {
	return ErrUnsupportedPlatform
}

// Unloads the NI-DAQmx driver.
func UnloadAPI() error {
	return nil
}

func everyNSamplesEventPtr() uintptr { return 0 }
func doneEventPtr() uintptr          { return 0 }
func signalEventPtr() uintptr        { return 0 }
