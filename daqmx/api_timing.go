package daqmx

/* Timing and triggering entry points. Rates are in samples per channel per
second, timeouts and levels are forwarded verbatim to the driver. */

var (
	pCfgSampClkTiming                     = newProc("DAQmxCfgSampClkTiming")
	pCfgHandshakingTiming                 = newProc("DAQmxCfgHandshakingTiming")
	pCfgBurstHandshakingTimingImportClock = newProc("DAQmxCfgBurstHandshakingTimingImportClock")
	pCfgBurstHandshakingTimingExportClock = newProc("DAQmxCfgBurstHandshakingTimingExportClock")
	pCfgChangeDetectionTiming             = newProc("DAQmxCfgChangeDetectionTiming")
	pCfgImplicitTiming                    = newProc("DAQmxCfgImplicitTiming")
	pCfgPipelinedSampClkTiming            = newProc("DAQmxCfgPipelinedSampClkTiming")

	pDisableStartTrig       = newProc("DAQmxDisableStartTrig")
	pCfgDigEdgeStartTrig    = newProc("DAQmxCfgDigEdgeStartTrig")
	pCfgAnlgEdgeStartTrig   = newProc("DAQmxCfgAnlgEdgeStartTrig")
	pCfgAnlgWindowStartTrig = newProc("DAQmxCfgAnlgWindowStartTrig")
	pCfgDigPatternStartTrig = newProc("DAQmxCfgDigPatternStartTrig")

	pDisableRefTrig       = newProc("DAQmxDisableRefTrig")
	pCfgDigEdgeRefTrig    = newProc("DAQmxCfgDigEdgeRefTrig")
	pCfgAnlgEdgeRefTrig   = newProc("DAQmxCfgAnlgEdgeRefTrig")
	pCfgAnlgWindowRefTrig = newProc("DAQmxCfgAnlgWindowRefTrig")
	pCfgDigPatternRefTrig = newProc("DAQmxCfgDigPatternRefTrig")

	pDisableAdvTrig      = newProc("DAQmxDisableAdvTrig")
	pCfgDigEdgeAdvTrig   = newProc("DAQmxCfgDigEdgeAdvTrig")
	pSendSoftwareTrigger = newProc("DAQmxSendSoftwareTrigger")
)

// API call to configure the sample clock
// source: terminal of the clock, empty for the onboard clock
// rate: sampling rate in samples per channel per second
// sampsPerChan: samples per channel to acquire (finite) or buffer sizing hint (continuous)
func APICfgSampClkTiming(handle TaskHandle, source string, rate float64, activeEdge Edge, sampleMode SampleMode, sampsPerChan uint64) (Status, error) {
	return pCfgSampClkTiming.call(uintptr(handle), cstr(source), f64arg(rate), uintptr(activeEdge), uintptr(sampleMode), uintptr(sampsPerChan))
}

// API call to configure handshaking timing for digital transfers
func APICfgHandshakingTiming(handle TaskHandle, sampleMode SampleMode, sampsPerChan uint64) (Status, error) {
	return pCfgHandshakingTiming.call(uintptr(handle), uintptr(sampleMode), uintptr(sampsPerChan))
}

// API call to configure burst handshaking with an imported sample clock
func APICfgBurstHandshakingTimingImportClock(handle TaskHandle, sampleMode SampleMode, sampsPerChan uint64, sampleClkRate float64, sampleClkSrc string, sampleClkActiveEdge Edge, pauseWhen int32, readyEventActiveLevel int32) (Status, error) {
	return pCfgBurstHandshakingTimingImportClock.call(uintptr(handle), uintptr(sampleMode), uintptr(sampsPerChan),
		f64arg(sampleClkRate), cstr(sampleClkSrc), uintptr(sampleClkActiveEdge), uintptr(pauseWhen), uintptr(readyEventActiveLevel))
}

// API call to configure burst handshaking with an exported sample clock
func APICfgBurstHandshakingTimingExportClock(handle TaskHandle, sampleMode SampleMode, sampsPerChan uint64, sampleClkRate float64, sampleClkOutpTerm string, sampleClkPulsePolarity int32, pauseWhen int32, readyEventActiveLevel int32) (Status, error) {
	return pCfgBurstHandshakingTimingExportClock.call(uintptr(handle), uintptr(sampleMode), uintptr(sampsPerChan),
		f64arg(sampleClkRate), cstr(sampleClkOutpTerm), uintptr(sampleClkPulsePolarity), uintptr(pauseWhen), uintptr(readyEventActiveLevel))
}

// API call to sample on rising/falling edges of the given digital lines
func APICfgChangeDetectionTiming(handle TaskHandle, risingEdgeChan string, fallingEdgeChan string, sampleMode SampleMode, sampsPerChan uint64) (Status, error) {
	return pCfgChangeDetectionTiming.call(uintptr(handle), cstr(risingEdgeChan), cstr(fallingEdgeChan), uintptr(sampleMode), uintptr(sampsPerChan))
}

// API call to configure implicit timing, e.g. for counter tasks
func APICfgImplicitTiming(handle TaskHandle, sampleMode SampleMode, sampsPerChan uint64) (Status, error) {
	return pCfgImplicitTiming.call(uintptr(handle), uintptr(sampleMode), uintptr(sampsPerChan))
}

// API call to configure a pipelined sample clock
func APICfgPipelinedSampClkTiming(handle TaskHandle, source string, rate float64, activeEdge Edge, sampleMode SampleMode, sampsPerChan uint64) (Status, error) {
	return pCfgPipelinedSampClkTiming.call(uintptr(handle), cstr(source), f64arg(rate), uintptr(activeEdge), uintptr(sampleMode), uintptr(sampsPerChan))
}

// API call to remove the start trigger so the task starts immediately
func APIDisableStartTrig(handle TaskHandle) (Status, error) {
	return pDisableStartTrig.call(uintptr(handle))
}

// API call to start acquiring/generating on a digital edge
func APICfgDigEdgeStartTrig(handle TaskHandle, triggerSource string, triggerEdge Edge) (Status, error) {
	return pCfgDigEdgeStartTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerEdge))
}

// API call to start acquiring/generating when an analog signal crosses a level
func APICfgAnlgEdgeStartTrig(handle TaskHandle, triggerSource string, triggerSlope Slope, triggerLevel float64) (Status, error) {
	return pCfgAnlgEdgeStartTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerSlope), f64arg(triggerLevel))
}

// API call to start acquiring/generating when an analog signal enters or
// leaves a window
func APICfgAnlgWindowStartTrig(handle TaskHandle, triggerSource string, triggerWhen WindowTriggerCondition, windowTop float64, windowBottom float64) (Status, error) {
	return pCfgAnlgWindowStartTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerWhen), f64arg(windowTop), f64arg(windowBottom))
}

// API call to start acquiring/generating on a digital pattern match
func APICfgDigPatternStartTrig(handle TaskHandle, triggerSource string, triggerPattern string, triggerWhen PatternTriggerCondition) (Status, error) {
	return pCfgDigPatternStartTrig.call(uintptr(handle), cstr(triggerSource), cstr(triggerPattern), uintptr(triggerWhen))
}

// API call to remove the reference trigger
func APIDisableRefTrig(handle TaskHandle) (Status, error) {
	return pDisableRefTrig.call(uintptr(handle))
}

// API call to stop the acquisition on a digital edge after the given amount
// of pretrigger samples
func APICfgDigEdgeRefTrig(handle TaskHandle, triggerSource string, triggerEdge Edge, pretriggerSamples uint32) (Status, error) {
	return pCfgDigEdgeRefTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerEdge), uintptr(pretriggerSamples))
}

// API call to stop the acquisition on an analog level crossing after the
// given amount of pretrigger samples
func APICfgAnlgEdgeRefTrig(handle TaskHandle, triggerSource string, triggerSlope Slope, triggerLevel float64, pretriggerSamples uint32) (Status, error) {
	return pCfgAnlgEdgeRefTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerSlope), f64arg(triggerLevel), uintptr(pretriggerSamples))
}

// API call to stop the acquisition on an analog window condition after the
// given amount of pretrigger samples
func APICfgAnlgWindowRefTrig(handle TaskHandle, triggerSource string, triggerWhen WindowTriggerCondition, windowTop float64, windowBottom float64, pretriggerSamples uint32) (Status, error) {
	return pCfgAnlgWindowRefTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerWhen), f64arg(windowTop), f64arg(windowBottom), uintptr(pretriggerSamples))
}

// API call to stop the acquisition on a digital pattern match after the
// given amount of pretrigger samples
func APICfgDigPatternRefTrig(handle TaskHandle, triggerSource string, triggerPattern string, triggerWhen PatternTriggerCondition, pretriggerSamples uint32) (Status, error) {
	return pCfgDigPatternRefTrig.call(uintptr(handle), cstr(triggerSource), cstr(triggerPattern), uintptr(triggerWhen), uintptr(pretriggerSamples))
}

// API call to remove the advance trigger of switch tasks
func APIDisableAdvTrig(handle TaskHandle) (Status, error) {
	return pDisableAdvTrig.call(uintptr(handle))
}

// API call to advance on a digital edge
func APICfgDigEdgeAdvTrig(handle TaskHandle, triggerSource string, triggerEdge Edge) (Status, error) {
	return pCfgDigEdgeAdvTrig.call(uintptr(handle), cstr(triggerSource), uintptr(triggerEdge))
}

// API call to emit a software trigger
func APISendSoftwareTrigger(handle TaskHandle, triggerID int32) (Status, error) {
	return pSendSoftwareTrigger.call(uintptr(handle), uintptr(triggerID))
}
