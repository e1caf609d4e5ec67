package daqmx

import "unsafe"

/* System wide attributes, error reporting and real time entry points. The
system attributes do not belong to a task or device. */

var (
	pGetSysGlobalChans = newProc("DAQmxGetSysGlobalChans")
	pGetSysScales      = newProc("DAQmxGetSysScales")
	pGetSysTasks       = newProc("DAQmxGetSysTasks")
	pGetSysDevNames    = newProc("DAQmxGetSysDevNames")

	pGetSysNIDAQMajorVersion = newProc("DAQmxGetSysNIDAQMajorVersion")
	pGetSysNIDAQMinorVersion = newProc("DAQmxGetSysNIDAQMinorVersion")

	pGetErrorString       = newProc("DAQmxGetErrorString")
	pGetExtendedErrorInfo = newProc("DAQmxGetExtendedErrorInfo")

	pWaitForNextSampleClock = newProc("DAQmxWaitForNextSampleClock")
	pIsReadOrWriteLate      = newProc("DAQmxIsReadOrWriteLate")
)

// API call to read the comma separated global channel names saved in MAX
func APIGetSysGlobalChans(buffer []byte) (Status, error) {
	return pGetSysGlobalChans.call(sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated custom scale names saved in MAX
func APIGetSysScales(buffer []byte) (Status, error) {
	return pGetSysScales.call(sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated task names saved in MAX
func APIGetSysTasks(buffer []byte) (Status, error) {
	return pGetSysTasks.call(sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated names of all installed devices
func APIGetSysDevNames(buffer []byte) (Status, error) {
	return pGetSysDevNames.call(sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the major version of the installed driver
func APIGetSysNIDAQMajorVersion() (Status, uint32, error) {
	var version uint32
	status, err := pGetSysNIDAQMajorVersion.call(uintptr(unsafe.Pointer(&version)))
	return status, version, err
}

// API call to read the minor version of the installed driver
func APIGetSysNIDAQMinorVersion() (Status, uint32, error) {
	var version uint32
	status, err := pGetSysNIDAQMinorVersion.call(uintptr(unsafe.Pointer(&version)))
	return status, version, err
}

// API call to translate a status code into its error message
func APIGetErrorString(errorCode Status, buffer []byte) (Status, error) {
	return pGetErrorString.call(uintptr(uint32(int32(errorCode))), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to fetch the detailed error description of the last failed call
// made by the calling thread
func APIGetExtendedErrorInfo(buffer []byte) (Status, error) {
	return pGetExtendedErrorInfo.call(sliceArg(buffer), uintptr(len(buffer)))
}

// API call to block a hardware timed single point task until the next sample
// clock edge. Reports via isLate whether the loop missed an edge.
func APIWaitForNextSampleClock(handle TaskHandle, timeout float64) (Status, bool, error) {
	var isLate int32
	status, err := pWaitForNextSampleClock.call(uintptr(handle), f64arg(timeout), uintptr(unsafe.Pointer(&isLate)))
	return status, isLate != 0, err
}

// API call to classify a status code as a missed sample clock error of a
// hardware timed single point loop
func APIIsReadOrWriteLate(errorCode Status) bool {
	status, _ := pIsReadOrWriteLate.call(uintptr(uint32(int32(errorCode))))
	return status != StatusOK
}
