package daqmx

import "unsafe"

/* Task configuration/control entry points. Near-verbatim re-declarations of
the vendor signatures; output parameters become return values. */

var (
	pLoadTask             = newProc("DAQmxLoadTask")
	pCreateTask           = newProc("DAQmxCreateTask")
	pAddGlobalChansToTask = newProc("DAQmxAddGlobalChansToTask")
	pStartTask            = newProc("DAQmxStartTask")
	pStopTask             = newProc("DAQmxStopTask")
	pClearTask            = newProc("DAQmxClearTask")
	pWaitUntilTaskDone    = newProc("DAQmxWaitUntilTaskDone")
	pIsTaskDone           = newProc("DAQmxIsTaskDone")
	pTaskControl          = newProc("DAQmxTaskControl")
	pGetNthTaskChannel    = newProc("DAQmxGetNthTaskChannel")
	pGetNthTaskDevice     = newProc("DAQmxGetNthTaskDevice")

	pRegisterEveryNSamplesEvent = newProc("DAQmxRegisterEveryNSamplesEvent")
	pRegisterDoneEvent          = newProc("DAQmxRegisterDoneEvent")
	pRegisterSignalEvent        = newProc("DAQmxRegisterSignalEvent")
	pExportSignal               = newProc("DAQmxExportSignal")

	pGetTaskName       = newProc("DAQmxGetTaskName")
	pGetTaskChannels   = newProc("DAQmxGetTaskChannels")
	pGetTaskNumChans   = newProc("DAQmxGetTaskNumChans")
	pGetTaskDevices    = newProc("DAQmxGetTaskDevices")
	pGetTaskNumDevices = newProc("DAQmxGetTaskNumDevices")
	pGetTaskComplete   = newProc("DAQmxGetTaskComplete")
)

// API call to open a task already saved in MAX
func APILoadTask(taskName string) (Status, TaskHandle, error) {
	var handle TaskHandle
	status, err := pLoadTask.call(cstr(taskName), uintptr(unsafe.Pointer(&handle)))
	return status, handle, err
}

// API call to create a new, empty task
func APICreateTask(taskName string) (Status, TaskHandle, error) {
	var handle TaskHandle
	status, err := pCreateTask.call(cstr(taskName), uintptr(unsafe.Pointer(&handle)))
	return status, handle, err
}

// API call to add channels already available in MAX to a task; the channels
// are not created
func APIAddGlobalChansToTask(handle TaskHandle, channelNames string) (Status, error) {
	return pAddGlobalChansToTask.call(uintptr(handle), cstr(channelNames))
}

// API call to transition a task to the running state
func APIStartTask(handle TaskHandle) (Status, error) {
	return pStartTask.call(uintptr(handle))
}

// API call to stop a task and return it to its pre-start state
func APIStopTask(handle TaskHandle) (Status, error) {
	return pStopTask.call(uintptr(handle))
}

// API call to stop a task and release all of its driver resources. The
// handle is invalid afterwards.
func APIClearTask(handle TaskHandle) (Status, error) {
	return pClearTask.call(uintptr(handle))
}

// API call to block until the measurement or generation completes
// timeToWait: maximum wait in seconds, DAQmx_Val_WaitInfinitely to wait forever
func APIWaitUntilTaskDone(handle TaskHandle, timeToWait float64) (Status, error) {
	return pWaitUntilTaskDone.call(uintptr(handle), f64arg(timeToWait))
}

// API call to query whether the measurement or generation completed
func APIIsTaskDone(handle TaskHandle) (Status, bool, error) {
	var done int32
	status, err := pIsTaskDone.call(uintptr(handle), uintptr(unsafe.Pointer(&done)))
	return status, done != 0, err
}

// API call to alter the task state machine explicitly (verify, commit,
// reserve, unreserve, abort)
func APITaskControl(handle TaskHandle, action TaskAction) (Status, error) {
	return pTaskControl.call(uintptr(handle), uintptr(action))
}

// API call to fetch the name of the task channel at the given index
func APIGetNthTaskChannel(handle TaskHandle, index uint32, buffer []byte) (Status, error) {
	return pGetNthTaskChannel.call(uintptr(handle), uintptr(index), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to fetch the name of the task device at the given index
func APIGetNthTaskDevice(handle TaskHandle, index uint32, buffer []byte) (Status, error) {
	return pGetNthTaskDevice.call(uintptr(handle), uintptr(index), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to register/unregister the sample-ready notification. callback is
// a native cdecl function pointer; zero unregisters.
func APIRegisterEveryNSamplesEvent(handle TaskHandle, everyNsamplesEventType EveryNSamplesEventType, nSamples uint32, options uint32, callback uintptr, callbackData uintptr) (Status, error) {
	return pRegisterEveryNSamplesEvent.call(uintptr(handle), uintptr(everyNsamplesEventType), uintptr(nSamples), uintptr(options), callback, callbackData)
}

// API call to register/unregister the task-done notification
func APIRegisterDoneEvent(handle TaskHandle, options uint32, callback uintptr, callbackData uintptr) (Status, error) {
	return pRegisterDoneEvent.call(uintptr(handle), uintptr(options), callback, callbackData)
}

// API call to register/unregister a hardware signal notification
func APIRegisterSignalEvent(handle TaskHandle, signalID Signal, options uint32, callback uintptr, callbackData uintptr) (Status, error) {
	return pRegisterSignalEvent.call(uintptr(handle), uintptr(signalID), uintptr(options), callback, callbackData)
}

// API call to route a hardware signal to an output terminal
func APIExportSignal(handle TaskHandle, signalID Signal, outputTerminal string) (Status, error) {
	return pExportSignal.call(uintptr(handle), uintptr(signalID), cstr(outputTerminal))
}

// API call to read the task name attribute
func APIGetTaskName(handle TaskHandle, buffer []byte) (Status, error) {
	return pGetTaskName.call(uintptr(handle), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated list of task channels
func APIGetTaskChannels(handle TaskHandle, buffer []byte) (Status, error) {
	return pGetTaskChannels.call(uintptr(handle), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the number of channels in the task
func APIGetTaskNumChans(handle TaskHandle) (Status, uint32, error) {
	var n uint32
	status, err := pGetTaskNumChans.call(uintptr(handle), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the comma separated list of task devices
func APIGetTaskDevices(handle TaskHandle, buffer []byte) (Status, error) {
	return pGetTaskDevices.call(uintptr(handle), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the number of devices in the task
func APIGetTaskNumDevices(handle TaskHandle) (Status, uint32, error) {
	var n uint32
	status, err := pGetTaskNumDevices.call(uintptr(handle), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the task complete attribute
func APIGetTaskComplete(handle TaskHandle) (Status, bool, error) {
	var complete int32
	status, err := pGetTaskComplete.call(uintptr(handle), uintptr(unsafe.Pointer(&complete)))
	return status, complete != 0, err
}
