package daqmx

import "unsafe"

/* Buffered, scalar and raw read entry points, one per transfer data type.
The driver fills the caller owned buffer and reports the samples actually
read; the binding forwards timeouts verbatim and adds no retry logic. */

var (
	pReadAnalogF64       = newProc("DAQmxReadAnalogF64")
	pReadAnalogScalarF64 = newProc("DAQmxReadAnalogScalarF64")

	pReadBinaryI16 = newProc("DAQmxReadBinaryI16")
	pReadBinaryU16 = newProc("DAQmxReadBinaryU16")
	pReadBinaryI32 = newProc("DAQmxReadBinaryI32")
	pReadBinaryU32 = newProc("DAQmxReadBinaryU32")

	pReadDigitalU8        = newProc("DAQmxReadDigitalU8")
	pReadDigitalU16       = newProc("DAQmxReadDigitalU16")
	pReadDigitalU32       = newProc("DAQmxReadDigitalU32")
	pReadDigitalScalarU32 = newProc("DAQmxReadDigitalScalarU32")
	pReadDigitalLines     = newProc("DAQmxReadDigitalLines")

	pReadCounterF64       = newProc("DAQmxReadCounterF64")
	pReadCounterU32       = newProc("DAQmxReadCounterU32")
	pReadCounterScalarF64 = newProc("DAQmxReadCounterScalarF64")
	pReadCounterScalarU32 = newProc("DAQmxReadCounterScalarU32")

	pReadRaw               = newProc("DAQmxReadRaw")
	pGetNthTaskReadChannel = newProc("DAQmxGetNthTaskReadChannel")
)

// API call to read scaled float64 samples from all task channels
// numSampsPerChan: samples per channel to read, -1 to read all available
// Returns the number of samples per channel actually read.
func APIReadAnalogF64(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []float64) (Status, int32, error) {
	var read int32
	status, err := pReadAnalogF64.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read a single scaled sample from a single channel task
func APIReadAnalogScalarF64(handle TaskHandle, timeout float64) (Status, float64, error) {
	var value float64
	status, err := pReadAnalogScalarF64.call(uintptr(handle), f64arg(timeout), uintptr(unsafe.Pointer(&value)), 0)
	return status, value, err
}

// API call to read unscaled int16 samples from all task channels
func APIReadBinaryI16(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []int16) (Status, int32, error) {
	var read int32
	status, err := pReadBinaryI16.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read unscaled uint16 samples from all task channels
func APIReadBinaryU16(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint16) (Status, int32, error) {
	var read int32
	status, err := pReadBinaryU16.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read unscaled int32 samples from all task channels
func APIReadBinaryI32(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []int32) (Status, int32, error) {
	var read int32
	status, err := pReadBinaryI32.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read unscaled uint32 samples from all task channels
func APIReadBinaryU32(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint32) (Status, int32, error) {
	var read int32
	status, err := pReadBinaryU32.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read digital samples as one uint8 per port sample
func APIReadDigitalU8(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint8) (Status, int32, error) {
	var read int32
	status, err := pReadDigitalU8.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read digital samples as one uint16 per port sample
func APIReadDigitalU16(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint16) (Status, int32, error) {
	var read int32
	status, err := pReadDigitalU16.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read digital samples as one uint32 per port sample
func APIReadDigitalU32(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint32) (Status, int32, error) {
	var read int32
	status, err := pReadDigitalU32.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read a single digital port sample
func APIReadDigitalScalarU32(handle TaskHandle, timeout float64) (Status, uint32, error) {
	var value uint32
	status, err := pReadDigitalScalarU32.call(uintptr(handle), f64arg(timeout), uintptr(unsafe.Pointer(&value)), 0)
	return status, value, err
}

// API call to read digital samples as one byte per line
// Returns the samples per channel read and the bytes per sample.
func APIReadDigitalLines(handle TaskHandle, numSampsPerChan int32, timeout float64, fillMode FillMode, data []uint8) (Status, int32, int32, error) {
	var read, bytesPerSamp int32
	status, err := pReadDigitalLines.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout), uintptr(fillMode),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), uintptr(unsafe.Pointer(&bytesPerSamp)), 0)
	return status, read, bytesPerSamp, err
}

// API call to read scaled counter samples
func APIReadCounterF64(handle TaskHandle, numSampsPerChan int32, timeout float64, data []float64) (Status, int32, error) {
	var read int32
	status, err := pReadCounterF64.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read raw counter samples
func APIReadCounterU32(handle TaskHandle, numSampsPerChan int32, timeout float64, data []uint32) (Status, int32, error) {
	var read int32
	status, err := pReadCounterU32.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), 0)
	return status, read, err
}

// API call to read a single scaled counter sample
func APIReadCounterScalarF64(handle TaskHandle, timeout float64) (Status, float64, error) {
	var value float64
	status, err := pReadCounterScalarF64.call(uintptr(handle), f64arg(timeout), uintptr(unsafe.Pointer(&value)), 0)
	return status, value, err
}

// API call to read a single raw counter sample
func APIReadCounterScalarU32(handle TaskHandle, timeout float64) (Status, uint32, error) {
	var value uint32
	status, err := pReadCounterScalarU32.call(uintptr(handle), f64arg(timeout), uintptr(unsafe.Pointer(&value)), 0)
	return status, value, err
}

// API call to read samples in the device native format
// Returns the samples read and the bytes per sample.
func APIReadRaw(handle TaskHandle, numSampsPerChan int32, timeout float64, data []byte) (Status, int32, int32, error) {
	var read, bytesPerSamp int32
	status, err := pReadRaw.call(uintptr(handle), uintptr(numSampsPerChan), f64arg(timeout),
		sliceArg(data), uintptr(len(data)), uintptr(unsafe.Pointer(&read)), uintptr(unsafe.Pointer(&bytesPerSamp)), 0)
	return status, read, bytesPerSamp, err
}

// API call to fetch the name of the virtual channel to read from at the
// given index
func APIGetNthTaskReadChannel(handle TaskHandle, index uint32, buffer []byte) (Status, error) {
	return pGetNthTaskReadChannel.call(uintptr(handle), uintptr(index), sliceArg(buffer), uintptr(len(buffer)))
}
