package daqmx

import "unsafe"

/* Buffered, scalar and raw write entry points, mirroring the read set.
autoStart lets the driver start the task implicitly on the first write. */

var (
	pWriteAnalogF64       = newProc("DAQmxWriteAnalogF64")
	pWriteAnalogScalarF64 = newProc("DAQmxWriteAnalogScalarF64")

	pWriteBinaryI16 = newProc("DAQmxWriteBinaryI16")
	pWriteBinaryU16 = newProc("DAQmxWriteBinaryU16")
	pWriteBinaryI32 = newProc("DAQmxWriteBinaryI32")
	pWriteBinaryU32 = newProc("DAQmxWriteBinaryU32")

	pWriteDigitalU8        = newProc("DAQmxWriteDigitalU8")
	pWriteDigitalU16       = newProc("DAQmxWriteDigitalU16")
	pWriteDigitalU32       = newProc("DAQmxWriteDigitalU32")
	pWriteDigitalScalarU32 = newProc("DAQmxWriteDigitalScalarU32")
	pWriteDigitalLines     = newProc("DAQmxWriteDigitalLines")

	pWriteCtrFreq        = newProc("DAQmxWriteCtrFreq")
	pWriteCtrFreqScalar  = newProc("DAQmxWriteCtrFreqScalar")
	pWriteCtrTime        = newProc("DAQmxWriteCtrTime")
	pWriteCtrTimeScalar  = newProc("DAQmxWriteCtrTimeScalar")
	pWriteCtrTicks       = newProc("DAQmxWriteCtrTicks")
	pWriteCtrTicksScalar = newProc("DAQmxWriteCtrTicksScalar")

	pWriteRaw = newProc("DAQmxWriteRaw")
)

// API call to write scaled float64 samples to all task channels
// Returns the number of samples per channel actually written.
func APIWriteAnalogF64(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []float64) (Status, int32, error) {
	var written int32
	status, err := pWriteAnalogF64.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write a single scaled sample to a single channel task
func APIWriteAnalogScalarF64(handle TaskHandle, autoStart bool, timeout float64, value float64) (Status, error) {
	return pWriteAnalogScalarF64.call(uintptr(handle), boolArg(autoStart), f64arg(timeout), f64arg(value), 0)
}

// API call to write unscaled int16 samples to all task channels
func APIWriteBinaryI16(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []int16) (Status, int32, error) {
	var written int32
	status, err := pWriteBinaryI16.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write unscaled uint16 samples to all task channels
func APIWriteBinaryU16(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint16) (Status, int32, error) {
	var written int32
	status, err := pWriteBinaryU16.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write unscaled int32 samples to all task channels
func APIWriteBinaryI32(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []int32) (Status, int32, error) {
	var written int32
	status, err := pWriteBinaryI32.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write unscaled uint32 samples to all task channels
func APIWriteBinaryU32(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint32) (Status, int32, error) {
	var written int32
	status, err := pWriteBinaryU32.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write digital samples as one uint8 per port sample
func APIWriteDigitalU8(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint8) (Status, int32, error) {
	var written int32
	status, err := pWriteDigitalU8.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write digital samples as one uint16 per port sample
func APIWriteDigitalU16(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint16) (Status, int32, error) {
	var written int32
	status, err := pWriteDigitalU16.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write digital samples as one uint32 per port sample
func APIWriteDigitalU32(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint32) (Status, int32, error) {
	var written int32
	status, err := pWriteDigitalU32.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write a single digital port sample
func APIWriteDigitalScalarU32(handle TaskHandle, autoStart bool, timeout float64, value uint32) (Status, error) {
	return pWriteDigitalScalarU32.call(uintptr(handle), boolArg(autoStart), f64arg(timeout), uintptr(value), 0)
}

// API call to write digital samples as one byte per line
func APIWriteDigitalLines(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, data []uint8) (Status, int32, error) {
	var written int32
	status, err := pWriteDigitalLines.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write pulse specifications as frequency/duty cycle pairs
func APIWriteCtrFreq(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, frequency []float64, dutyCycle []float64) (Status, int32, error) {
	var written int32
	status, err := pWriteCtrFreq.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(frequency), sliceArg(dutyCycle), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write a single pulse specification as frequency/duty cycle
func APIWriteCtrFreqScalar(handle TaskHandle, autoStart bool, timeout float64, frequency float64, dutyCycle float64) (Status, error) {
	return pWriteCtrFreqScalar.call(uintptr(handle), boolArg(autoStart), f64arg(timeout), f64arg(frequency), f64arg(dutyCycle), 0)
}

// API call to write pulse specifications as high/low time pairs in seconds
func APIWriteCtrTime(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, highTime []float64, lowTime []float64) (Status, int32, error) {
	var written int32
	status, err := pWriteCtrTime.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(highTime), sliceArg(lowTime), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write a single pulse specification as high/low time in seconds
func APIWriteCtrTimeScalar(handle TaskHandle, autoStart bool, timeout float64, highTime float64, lowTime float64) (Status, error) {
	return pWriteCtrTimeScalar.call(uintptr(handle), boolArg(autoStart), f64arg(timeout), f64arg(highTime), f64arg(lowTime), 0)
}

// API call to write pulse specifications as high/low timebase tick pairs
func APIWriteCtrTicks(handle TaskHandle, numSampsPerChan int32, autoStart bool, timeout float64, fillMode FillMode, highTicks []uint32, lowTicks []uint32) (Status, int32, error) {
	var written int32
	status, err := pWriteCtrTicks.call(uintptr(handle), uintptr(numSampsPerChan), boolArg(autoStart), f64arg(timeout), uintptr(fillMode),
		sliceArg(highTicks), sliceArg(lowTicks), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}

// API call to write a single pulse specification as high/low timebase ticks
func APIWriteCtrTicksScalar(handle TaskHandle, autoStart bool, timeout float64, highTicks uint32, lowTicks uint32) (Status, error) {
	return pWriteCtrTicksScalar.call(uintptr(handle), boolArg(autoStart), f64arg(timeout), uintptr(highTicks), uintptr(lowTicks), 0)
}

// API call to write samples in the device native format
func APIWriteRaw(handle TaskHandle, numSamps int32, autoStart bool, timeout float64, data []byte) (Status, int32, error) {
	var written int32
	status, err := pWriteRaw.call(uintptr(handle), uintptr(numSamps), boolArg(autoStart), f64arg(timeout),
		sliceArg(data), uintptr(unsafe.Pointer(&written)), 0)
	return status, written, err
}
