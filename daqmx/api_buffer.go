package daqmx

import "unsafe"

/* Buffer sizing entry points. The driver allocates its transfer buffers
automatically once timing is configured; these calls override that. */

var (
	pCfgInputBuffer  = newProc("DAQmxCfgInputBuffer")
	pCfgOutputBuffer = newProc("DAQmxCfgOutputBuffer")

	pGetBufInputBufSize      = newProc("DAQmxGetBufInputBufSize")
	pSetBufInputBufSize      = newProc("DAQmxSetBufInputBufSize")
	pResetBufInputBufSize    = newProc("DAQmxResetBufInputBufSize")
	pGetBufInputOnbrdBufSize = newProc("DAQmxGetBufInputOnbrdBufSize")

	pGetBufOutputBufSize      = newProc("DAQmxGetBufOutputBufSize")
	pSetBufOutputBufSize      = newProc("DAQmxSetBufOutputBufSize")
	pResetBufOutputBufSize    = newProc("DAQmxResetBufOutputBufSize")
	pGetBufOutputOnbrdBufSize   = newProc("DAQmxGetBufOutputOnbrdBufSize")
	pSetBufOutputOnbrdBufSize   = newProc("DAQmxSetBufOutputOnbrdBufSize")
	pResetBufOutputOnbrdBufSize = newProc("DAQmxResetBufOutputOnbrdBufSize")
)

// API call to override the automatic input buffer allocation
// numSampsPerChan: buffer size in samples per channel, 0 disables buffering
func APICfgInputBuffer(handle TaskHandle, numSampsPerChan uint32) (Status, error) {
	return pCfgInputBuffer.call(uintptr(handle), uintptr(numSampsPerChan))
}

// API call to override the automatic output buffer allocation
func APICfgOutputBuffer(handle TaskHandle, numSampsPerChan uint32) (Status, error) {
	return pCfgOutputBuffer.call(uintptr(handle), uintptr(numSampsPerChan))
}

// API call to read the input buffer size in samples per channel
func APIGetBufInputBufSize(handle TaskHandle) (Status, uint32, error) {
	var size uint32
	status, err := pGetBufInputBufSize.call(uintptr(handle), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to set the input buffer size in samples per channel
func APISetBufInputBufSize(handle TaskHandle, size uint32) (Status, error) {
	return pSetBufInputBufSize.call(uintptr(handle), uintptr(size))
}

// API call to restore the automatic input buffer sizing
func APIResetBufInputBufSize(handle TaskHandle) (Status, error) {
	return pResetBufInputBufSize.call(uintptr(handle))
}

// API call to read the onboard input buffer size in samples per channel
func APIGetBufInputOnbrdBufSize(handle TaskHandle) (Status, uint32, error) {
	var size uint32
	status, err := pGetBufInputOnbrdBufSize.call(uintptr(handle), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to read the output buffer size in samples per channel
func APIGetBufOutputBufSize(handle TaskHandle) (Status, uint32, error) {
	var size uint32
	status, err := pGetBufOutputBufSize.call(uintptr(handle), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to set the output buffer size in samples per channel
func APISetBufOutputBufSize(handle TaskHandle, size uint32) (Status, error) {
	return pSetBufOutputBufSize.call(uintptr(handle), uintptr(size))
}

// API call to restore the automatic output buffer sizing
func APIResetBufOutputBufSize(handle TaskHandle) (Status, error) {
	return pResetBufOutputBufSize.call(uintptr(handle))
}

// API call to read the onboard output buffer size in samples per channel
func APIGetBufOutputOnbrdBufSize(handle TaskHandle) (Status, uint32, error) {
	var size uint32
	status, err := pGetBufOutputOnbrdBufSize.call(uintptr(handle), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to set the onboard output buffer size in samples per channel
func APISetBufOutputOnbrdBufSize(handle TaskHandle, size uint32) (Status, error) {
	return pSetBufOutputOnbrdBufSize.call(uintptr(handle), uintptr(size))
}

// API call to restore the automatic onboard output buffer sizing
func APIResetBufOutputOnbrdBufSize(handle TaskHandle) (Status, error) {
	return pResetBufOutputOnbrdBufSize.call(uintptr(handle))
}
