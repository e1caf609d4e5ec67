package daqmx

// Opaque handle for a driver managed acquisition/generation session.
// Created by DAQmxCreateTask/DAQmxLoadTask and passed through unchanged to all
// configuration, start/stop, read/write and teardown calls.
type TaskHandle uintptr

// Handle for an open external calibration session
type CalHandle uintptr

// Terminal configuration for analog input channels
type TerminalConfig int32

// Edge selection for clocks and triggers
type Edge int32

// Sample mode for timing configuration
type SampleMode int32

// Interleaving of multi channel buffers
type FillMode int32

// Measurement and generation unit selection
type Units int32

// Task state transition for DAQmxTaskControl
type TaskAction int32

// Condition firing an EveryNSamples event
type EveryNSamplesEventType int32

// Hardware signal selector for signal events and signal export
type Signal int32

// Slope selection for analog triggers
type Slope int32

// Window condition for analog window triggers
type WindowTriggerCondition int32

// Pattern match condition for digital pattern triggers
type PatternTriggerCondition int32

// Line grouping for digital channels
type LineGrouping int32

// Count direction for counter input channels
type CountDirection int32

// Idle output state of counter pulse channels
type Level int32

// Waveform type for function generation channels
type FuncGenType int32

// Constant names follow the NIDAQmx.h value sets so code can be checked
// against the vendor documentation 1:1.
const (
	DAQmx_Val_Cfg_Default TerminalConfig = -1
	DAQmx_Val_RSE         TerminalConfig = 10083
	DAQmx_Val_NRSE        TerminalConfig = 10078
	DAQmx_Val_Diff        TerminalConfig = 10106
	DAQmx_Val_PseudoDiff  TerminalConfig = 12529

	DAQmx_Val_Rising  Edge = 10280
	DAQmx_Val_Falling Edge = 10171

	DAQmx_Val_FiniteSamps        SampleMode = 10178
	DAQmx_Val_ContSamps          SampleMode = 10123
	DAQmx_Val_HWTimedSinglePoint SampleMode = 12522

	DAQmx_Val_GroupByChannel    FillMode = 0
	DAQmx_Val_GroupByScanNumber FillMode = 1

	DAQmx_Val_Volts           Units = 10348
	DAQmx_Val_Amps            Units = 10342
	DAQmx_Val_DegC            Units = 10143
	DAQmx_Val_DegF            Units = 10144
	DAQmx_Val_Kelvins         Units = 10325
	DAQmx_Val_Ohms            Units = 10384
	DAQmx_Val_Hz              Units = 10373
	DAQmx_Val_Seconds         Units = 10364
	DAQmx_Val_Strain          Units = 10299
	DAQmx_Val_G               Units = 10186
	DAQmx_Val_Pascals         Units = 10081
	DAQmx_Val_Meters          Units = 10219
	DAQmx_Val_Inches          Units = 10379
	DAQmx_Val_Degrees         Units = 10146
	DAQmx_Val_Ticks           Units = 10304
	DAQmx_Val_FromCustomScale Units = 10065

	DAQmx_Val_Task_Start     TaskAction = 0
	DAQmx_Val_Task_Stop      TaskAction = 1
	DAQmx_Val_Task_Verify    TaskAction = 2
	DAQmx_Val_Task_Commit    TaskAction = 3
	DAQmx_Val_Task_Reserve   TaskAction = 4
	DAQmx_Val_Task_Unreserve TaskAction = 5
	DAQmx_Val_Task_Abort     TaskAction = 6

	DAQmx_Val_Acquired_Into_Buffer    EveryNSamplesEventType = 1
	DAQmx_Val_Transferred_From_Buffer EveryNSamplesEventType = 2

	DAQmx_Val_SampleClock          Signal = 12487
	DAQmx_Val_SampleCompleteEvent  Signal = 12530
	DAQmx_Val_ChangeDetectionEvent Signal = 12511
	DAQmx_Val_CounterOutputEvent   Signal = 12494

	DAQmx_Val_RisingSlope  Slope = 10280
	DAQmx_Val_FallingSlope Slope = 10171

	DAQmx_Val_EnteringWin WindowTriggerCondition = 10163
	DAQmx_Val_LeavingWin  WindowTriggerCondition = 10208

	DAQmx_Val_PatternMatches      PatternTriggerCondition = 10254
	DAQmx_Val_PatternDoesNotMatch PatternTriggerCondition = 10253

	DAQmx_Val_ChanPerLine     LineGrouping = 0
	DAQmx_Val_ChanForAllLines LineGrouping = 1

	DAQmx_Val_CountUp       CountDirection = 10128
	DAQmx_Val_CountDown     CountDirection = 10124
	DAQmx_Val_ExtControlled CountDirection = 10326

	DAQmx_Val_High Level = 10192
	DAQmx_Val_Low  Level = 10214

	DAQmx_Val_Sine     FuncGenType = 14751
	DAQmx_Val_Triangle FuncGenType = 14752
	DAQmx_Val_Square   FuncGenType = 14753
	DAQmx_Val_Sawtooth FuncGenType = 14754
)

// Excitation source and shunt resistor location
const (
	DAQmx_Val_Internal int32 = 10200
	DAQmx_Val_External int32 = 10167
)

// Wait forever on calls taking a timeout in seconds
const DAQmx_Val_WaitInfinitely float64 = -1.0

// Calibration timestamp split into components the way the driver reports it
type CalDate struct {
	Year   uint32
	Month  uint32
	Day    uint32
	Hour   uint32
	Minute uint32
}

// Fixed output buffer sizes of the driver's string and range queries. The
// driver fills at most this many bytes/values; longer answers are silently
// truncated (inherited from the driver's fixed-size buffer contract).
const (
	LENGTH_DEVICE_NAMES_BUFFER  = 80   // comma separated system device names
	LENGTH_CHANNEL_NAMES_BUFFER = 2048 // comma separated channel/terminal names
	LENGTH_ERROR_BUFFER         = 1024 // resolved error message
	LENGTH_EXT_ERROR_BUFFER     = 2048 // extended error info of the calling thread
	MAX_RANGE_VALUES            = 128  // flat (low, high) voltage range slots
)
