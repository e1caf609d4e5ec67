package daqmx

import "sync"

// Task wraps a driver task handle with a Go level API. All methods forward to
// the corresponding driver entry point; a negative status becomes a DAQError,
// warnings are swallowed like the driver's own examples do.
type Task struct {
	handle TaskHandle
	name   string
}

// Go callback invoked on a driver thread every time the configured amount of
// samples was acquired into or transferred from the buffer
type EveryNSamplesCallback func(task *Task, eventType EveryNSamplesEventType, nSamples uint32)

// Go callback invoked on a driver thread once the task completes
type DoneCallback func(task *Task, status Status)

// Go callback invoked on a driver thread when the registered hardware signal
// occurs
type SignalCallback func(task *Task, signal Signal)

// Registered callbacks per task handle. The driver reports events with the
// raw handle only, so the trampolines resolve the owning Task and its
// callbacks here. Holding the closures in the map also keeps them reachable
// while the driver may still call them.
type taskEvents struct {
	task          *Task
	everyNSamples EveryNSamplesCallback
	done          DoneCallback
	signal        SignalCallback
}

var (
	eventMu  sync.Mutex
	eventReg = map[TaskHandle]*taskEvents{}
)

func registerEvents(handle TaskHandle, update func(*taskEvents)) {
	eventMu.Lock()
	defer eventMu.Unlock()
	ev, ok := eventReg[handle]
	if !ok {
		ev = &taskEvents{}
		eventReg[handle] = ev
	}
	update(ev)
	if ev.everyNSamples == nil && ev.done == nil && ev.signal == nil {
		delete(eventReg, handle)
	}
}

func lookupEveryNSamplesCallback(handle TaskHandle) (*Task, EveryNSamplesCallback) {
	eventMu.Lock()
	defer eventMu.Unlock()
	if ev, ok := eventReg[handle]; ok {
		return ev.task, ev.everyNSamples
	}
	return nil, nil
}

func lookupDoneCallback(handle TaskHandle) (*Task, DoneCallback) {
	eventMu.Lock()
	defer eventMu.Unlock()
	if ev, ok := eventReg[handle]; ok {
		return ev.task, ev.done
	}
	return nil, nil
}

func lookupSignalCallback(handle TaskHandle) (*Task, SignalCallback) {
	eventMu.Lock()
	defer eventMu.Unlock()
	if ev, ok := eventReg[handle]; ok {
		return ev.task, ev.signal
	}
	return nil, nil
}

// collapses the two failure channels of a driver call into one error
func apiErr(status Status, err error) error {
	if err != nil {
		return err
	}
	return status.Err()
}

// CreateTask loads the driver if necessary and creates a new, empty task.
// name may be empty; the driver assigns a unique name then.
func CreateTask(name string) (*Task, error) {
	if err := LoadAPI(); err != nil {
		return nil, err
	}
	status, handle, err := APICreateTask(name)
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return &Task{handle: handle, name: name}, nil
}

// LoadTask loads the driver if necessary and opens a task saved in MAX.
func LoadTask(name string) (*Task, error) {
	if err := LoadAPI(); err != nil {
		return nil, err
	}
	status, handle, err := APILoadTask(name)
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return &Task{handle: handle, name: name}, nil
}

// Handle exposes the raw driver handle for API calls the Task does not wrap.
func (t *Task) Handle() TaskHandle {
	return t.handle
}

// Name returns the task name the task was created or loaded with.
func (t *Task) Name() string {
	return t.name
}

// Start transitions the task to the running state.
func (t *Task) Start() error {
	return apiErr(APIStartTask(t.handle))
}

// Stop stops the task and returns it to its pre-start state.
func (t *Task) Stop() error {
	return apiErr(APIStopTask(t.handle))
}

// Clear stops the task and releases its driver resources. The Task must not
// be used afterwards; any registered event callbacks are dropped.
func (t *Task) Clear() error {
	registerEvents(t.handle, func(ev *taskEvents) {
		ev.task = nil
		ev.everyNSamples = nil
		ev.done = nil
		ev.signal = nil
	})
	return apiErr(APIClearTask(t.handle))
}

// WaitUntilDone blocks until the measurement or generation completes.
// timeout is in seconds, DAQmx_Val_WaitInfinitely waits forever.
func (t *Task) WaitUntilDone(timeout float64) error {
	return apiErr(APIWaitUntilTaskDone(t.handle, timeout))
}

// IsDone reports whether the measurement or generation completed.
func (t *Task) IsDone() (bool, error) {
	status, done, err := APIIsTaskDone(t.handle)
	return done, apiErr(status, err)
}

// Control alters the task state machine explicitly.
func (t *Task) Control(action TaskAction) error {
	return apiErr(APITaskControl(t.handle, action))
}

// AddGlobalChannels adds channels saved in MAX to the task.
func (t *Task) AddGlobalChannels(channelNames string) error {
	return apiErr(APIAddGlobalChansToTask(t.handle, channelNames))
}

// CreateAIVoltageChan adds an analog input voltage channel.
// physicalChannel: e.g. "Dev1/ai0" or a range like "Dev1/ai0:3"
func (t *Task) CreateAIVoltageChan(physicalChannel string, name string, terminalConfig TerminalConfig, minVal float64, maxVal float64) error {
	return apiErr(APICreateAIVoltageChan(t.handle, physicalChannel, name, terminalConfig, minVal, maxVal, DAQmx_Val_Volts, ""))
}

// CreateAICurrentChan adds an analog input current channel using the internal
// shunt resistor.
func (t *Task) CreateAICurrentChan(physicalChannel string, name string, terminalConfig TerminalConfig, minVal float64, maxVal float64) error {
	return apiErr(APICreateAICurrentChan(t.handle, physicalChannel, name, terminalConfig, minVal, maxVal, DAQmx_Val_Amps, DAQmx_Val_Internal, 0, ""))
}

// CreateAOVoltageChan adds an analog output voltage channel.
func (t *Task) CreateAOVoltageChan(physicalChannel string, name string, minVal float64, maxVal float64) error {
	return apiErr(APICreateAOVoltageChan(t.handle, physicalChannel, name, minVal, maxVal, DAQmx_Val_Volts, ""))
}

// CreateDIChan adds a digital input channel per the given line grouping.
func (t *Task) CreateDIChan(lines string, name string, grouping LineGrouping) error {
	return apiErr(APICreateDIChan(t.handle, lines, name, grouping))
}

// CreateDOChan adds a digital output channel per the given line grouping.
func (t *Task) CreateDOChan(lines string, name string, grouping LineGrouping) error {
	return apiErr(APICreateDOChan(t.handle, lines, name, grouping))
}

// CreateCICountEdgesChan adds a counter channel counting input edges.
func (t *Task) CreateCICountEdgesChan(counter string, name string, edge Edge, initialCount uint32, countDirection CountDirection) error {
	return apiErr(APICreateCICountEdgesChan(t.handle, counter, name, edge, initialCount, countDirection))
}

// CfgSampClkTiming configures the sample clock of the task.
// source is empty for the onboard clock.
func (t *Task) CfgSampClkTiming(source string, rate float64, activeEdge Edge, sampleMode SampleMode, sampsPerChan uint64) error {
	return apiErr(APICfgSampClkTiming(t.handle, source, rate, activeEdge, sampleMode, sampsPerChan))
}

// CfgImplicitTiming configures implicit timing, e.g. for counter tasks.
func (t *Task) CfgImplicitTiming(sampleMode SampleMode, sampsPerChan uint64) error {
	return apiErr(APICfgImplicitTiming(t.handle, sampleMode, sampsPerChan))
}

// CfgDigEdgeStartTrig starts the task on a digital edge.
func (t *Task) CfgDigEdgeStartTrig(source string, edge Edge) error {
	return apiErr(APICfgDigEdgeStartTrig(t.handle, source, edge))
}

// CfgAnlgEdgeStartTrig starts the task when an analog signal crosses a level.
func (t *Task) CfgAnlgEdgeStartTrig(source string, slope Slope, level float64) error {
	return apiErr(APICfgAnlgEdgeStartTrig(t.handle, source, slope, level))
}

// DisableStartTrig removes the start trigger so the task starts immediately.
func (t *Task) DisableStartTrig() error {
	return apiErr(APIDisableStartTrig(t.handle))
}

// CfgInputBuffer overrides the automatic input buffer allocation.
func (t *Task) CfgInputBuffer(numSampsPerChan uint32) error {
	return apiErr(APICfgInputBuffer(t.handle, numSampsPerChan))
}

// CfgOutputBuffer overrides the automatic output buffer allocation.
func (t *Task) CfgOutputBuffer(numSampsPerChan uint32) error {
	return apiErr(APICfgOutputBuffer(t.handle, numSampsPerChan))
}

// ReadAnalogF64 reads scaled samples from all task channels into data.
// Returns the number of samples per channel read.
func (t *Task) ReadAnalogF64(numSampsPerChan int32, timeout float64, fillMode FillMode, data []float64) (int32, error) {
	status, read, err := APIReadAnalogF64(t.handle, numSampsPerChan, timeout, fillMode, data)
	return read, apiErr(status, err)
}

// ReadAnalogScalarF64 reads one scaled sample from a single channel task.
func (t *Task) ReadAnalogScalarF64(timeout float64) (float64, error) {
	status, value, err := APIReadAnalogScalarF64(t.handle, timeout)
	return value, apiErr(status, err)
}

// ReadDigitalU32 reads digital port samples from all task channels.
func (t *Task) ReadDigitalU32(numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint32) (int32, error) {
	status, read, err := APIReadDigitalU32(t.handle, numSampsPerChan, timeout, fillMode, data)
	return read, apiErr(status, err)
}

// ReadCounterScalarU32 reads the current raw counter value.
func (t *Task) ReadCounterScalarU32(timeout float64) (uint32, error) {
	status, value, err := APIReadCounterScalarU32(t.handle, timeout)
	return value, apiErr(status, err)
}

// WriteAnalogF64 writes scaled samples to all task channels.
// Returns the number of samples per channel written.
func (t *Task) WriteAnalogF64(numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []float64) (int32, error) {
	status, written, err := APIWriteAnalogF64(t.handle, numSampsPerChan, autoStart, timeout, fillMode, data)
	return written, apiErr(status, err)
}

// WriteAnalogScalarF64 writes one scaled sample to a single channel task.
func (t *Task) WriteAnalogScalarF64(autoStart bool, timeout float64, value float64) error {
	return apiErr(APIWriteAnalogScalarF64(t.handle, autoStart, timeout, value))
}

// WriteDigitalU32 writes digital port samples to all task channels.
func (t *Task) WriteDigitalU32(numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint32) (int32, error) {
	status, written, err := APIWriteDigitalU32(t.handle, numSampsPerChan, autoStart, timeout, fillMode, data)
	return written, apiErr(status, err)
}

// RegisterEveryNSamplesEvent installs cb to run every nSamples samples. A nil
// cb unregisters the event. The callback runs on a driver thread; everything
// it touches must be safe for that.
func (t *Task) RegisterEveryNSamplesEvent(eventType EveryNSamplesEventType, nSamples uint32, cb EveryNSamplesCallback) error {
	callback := uintptr(0)
	if cb != nil {
		callback = everyNSamplesEventPtr()
	}
	status, err := APIRegisterEveryNSamplesEvent(t.handle, eventType, nSamples, 0, callback, 0)
	if err := apiErr(status, err); err != nil {
		return err
	}
	registerEvents(t.handle, func(ev *taskEvents) {
		ev.task = t
		ev.everyNSamples = cb
	})
	return nil
}

// RegisterDoneEvent installs cb to run once the task completes. A nil cb
// unregisters the event.
func (t *Task) RegisterDoneEvent(cb DoneCallback) error {
	callback := uintptr(0)
	if cb != nil {
		callback = doneEventPtr()
	}
	status, err := APIRegisterDoneEvent(t.handle, 0, callback, 0)
	if err := apiErr(status, err); err != nil {
		return err
	}
	registerEvents(t.handle, func(ev *taskEvents) {
		ev.task = t
		ev.done = cb
	})
	return nil
}

// RegisterSignalEvent installs cb to run when the hardware signal occurs. A
// nil cb unregisters the event.
func (t *Task) RegisterSignalEvent(signal Signal, cb SignalCallback) error {
	callback := uintptr(0)
	if cb != nil {
		callback = signalEventPtr()
	}
	status, err := APIRegisterSignalEvent(t.handle, signal, 0, callback, 0)
	if err := apiErr(status, err); err != nil {
		return err
	}
	registerEvents(t.handle, func(ev *taskEvents) {
		ev.task = t
		ev.signal = cb
	})
	return nil
}

// Channels returns the names of all virtual channels in the task.
func (t *Task) Channels() ([]string, error) {
	var buf [LENGTH_CHANNEL_NAMES_BUFFER]byte
	status, err := APIGetTaskChannels(t.handle, buf[:])
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return splitNameList(stringFromBuffer(buf[:])), nil
}

// Devices returns the names of all devices used by the task.
func (t *Task) Devices() ([]string, error) {
	var buf [LENGTH_CHANNEL_NAMES_BUFFER]byte
	status, err := APIGetTaskDevices(t.handle, buf[:])
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return splitNameList(stringFromBuffer(buf[:])), nil
}

// NumChannels returns the number of virtual channels in the task.
func (t *Task) NumChannels() (uint32, error) {
	status, n, err := APIGetTaskNumChans(t.handle)
	return n, apiErr(status, err)
}

// SetAIMax sets the maximum value to measure on the given channels, empty
// for all channels of the task.
func (t *Task) SetAIMax(channel string, value float64) error {
	return apiErr(APISetAIMax(t.handle, channel, value))
}

// SetAIMin sets the minimum value to measure on the given channels.
func (t *Task) SetAIMin(channel string, value float64) error {
	return apiErr(APISetAIMin(t.handle, channel, value))
}

// AIMax reads the coerced maximum value of the given channel.
func (t *Task) AIMax(channel string) (float64, error) {
	status, value, err := APIGetAIMax(t.handle, channel)
	return value, apiErr(status, err)
}

// AIMin reads the coerced minimum value of the given channel.
func (t *Task) AIMin(channel string) (float64, error) {
	status, value, err := APIGetAIMin(t.handle, channel)
	return value, apiErr(status, err)
}
