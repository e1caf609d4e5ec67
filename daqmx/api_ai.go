package daqmx

import "unsafe"

/* Analog input channel attribute entry points. channel selects virtual
channels already in the task, empty for all of them. Reset restores the
driver default. */

var (
	pGetAIMax   = newProc("DAQmxGetAIMax")
	pSetAIMax   = newProc("DAQmxSetAIMax")
	pResetAIMax = newProc("DAQmxResetAIMax")

	pGetAIMin   = newProc("DAQmxGetAIMin")
	pSetAIMin   = newProc("DAQmxSetAIMin")
	pResetAIMin = newProc("DAQmxResetAIMin")

	pGetAICustomScaleName   = newProc("DAQmxGetAICustomScaleName")
	pSetAICustomScaleName   = newProc("DAQmxSetAICustomScaleName")
	pResetAICustomScaleName = newProc("DAQmxResetAICustomScaleName")

	pGetAIMeasType            = newProc("DAQmxGetAIMeasType")
	pGetAIVoltageUnits        = newProc("DAQmxGetAIVoltageUnits")
	pSetAIVoltageUnits        = newProc("DAQmxSetAIVoltageUnits")
	pResetAIVoltageUnits      = newProc("DAQmxResetAIVoltageUnits")
	pGetAIVoltagedBRef        = newProc("DAQmxGetAIVoltagedBRef")
	pSetAIVoltagedBRef        = newProc("DAQmxSetAIVoltagedBRef")
	pResetAIVoltagedBRef      = newProc("DAQmxResetAIVoltagedBRef")
	pGetAIVoltageACRMSUnits   = newProc("DAQmxGetAIVoltageACRMSUnits")
	pSetAIVoltageACRMSUnits   = newProc("DAQmxSetAIVoltageACRMSUnits")
	pResetAIVoltageACRMSUnits = newProc("DAQmxResetAIVoltageACRMSUnits")
)

// API call to read the maximum value the channel is coerced to measure
func APIGetAIMax(handle TaskHandle, channel string) (Status, float64, error) {
	var value float64
	status, err := pGetAIMax.call(uintptr(handle), cstr(channel), uintptr(unsafe.Pointer(&value)))
	return status, value, err
}

// API call to set the maximum value to measure in the channel units
func APISetAIMax(handle TaskHandle, channel string, value float64) (Status, error) {
	return pSetAIMax.call(uintptr(handle), cstr(channel), f64arg(value))
}

// API call to restore the default maximum value of the channel
func APIResetAIMax(handle TaskHandle, channel string) (Status, error) {
	return pResetAIMax.call(uintptr(handle), cstr(channel))
}

// API call to read the minimum value the channel is coerced to measure
func APIGetAIMin(handle TaskHandle, channel string) (Status, float64, error) {
	var value float64
	status, err := pGetAIMin.call(uintptr(handle), cstr(channel), uintptr(unsafe.Pointer(&value)))
	return status, value, err
}

// API call to set the minimum value to measure in the channel units
func APISetAIMin(handle TaskHandle, channel string, value float64) (Status, error) {
	return pSetAIMin.call(uintptr(handle), cstr(channel), f64arg(value))
}

// API call to restore the default minimum value of the channel
func APIResetAIMin(handle TaskHandle, channel string) (Status, error) {
	return pResetAIMin.call(uintptr(handle), cstr(channel))
}

// API call to read the name of the custom scale applied to the channel
func APIGetAICustomScaleName(handle TaskHandle, channel string, buffer []byte) (Status, error) {
	return pGetAICustomScaleName.call(uintptr(handle), cstr(channel), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to apply a custom scale to the channel
func APISetAICustomScaleName(handle TaskHandle, channel string, scaleName string) (Status, error) {
	return pSetAICustomScaleName.call(uintptr(handle), cstr(channel), cstr(scaleName))
}

// API call to remove the custom scale from the channel
func APIResetAICustomScaleName(handle TaskHandle, channel string) (Status, error) {
	return pResetAICustomScaleName.call(uintptr(handle), cstr(channel))
}

// API call to read the measurement type of the channel
func APIGetAIMeasType(handle TaskHandle, channel string) (Status, int32, error) {
	var measType int32
	status, err := pGetAIMeasType.call(uintptr(handle), cstr(channel), uintptr(unsafe.Pointer(&measType)))
	return status, measType, err
}

// API call to read the voltage units of the channel
func APIGetAIVoltageUnits(handle TaskHandle, channel string) (Status, Units, error) {
	var units int32
	status, err := pGetAIVoltageUnits.call(uintptr(handle), cstr(channel), uintptr(unsafe.Pointer(&units)))
	return status, Units(units), err
}

// API call to set the voltage units of the channel
func APISetAIVoltageUnits(handle TaskHandle, channel string, units Units) (Status, error) {
	return pSetAIVoltageUnits.call(uintptr(handle), cstr(channel), uintptr(units))
}

// API call to restore the default voltage units of the channel
func APIResetAIVoltageUnits(handle TaskHandle, channel string) (Status, error) {
	return pResetAIVoltageUnits.call(uintptr(handle), cstr(channel))
}

// API call to read the dB reference level of the channel in volts
func APIGetAIVoltagedBRef(handle TaskHandle, channel string) (Status, float64, error) {
	var ref float64
	status, err := pGetAIVoltagedBRef.call(uintptr(handle), cstr(channel), uintptr(unsafe.Pointer(&ref)))
	return status, ref, err
}

// API call to set the dB reference level of the channel in volts
func APISetAIVoltagedBRef(handle TaskHandle, channel string, ref float64) (Status, error) {
	return pSetAIVoltagedBRef.call(uintptr(handle), cstr(channel), f64arg(ref))
}

// API call to restore the default dB reference level of the channel
func APIResetAIVoltagedBRef(handle TaskHandle, channel string) (Status, error) {
	return pResetAIVoltagedBRef.call(uintptr(handle), cstr(channel))
}

// API call to read the units of AC RMS voltage measurements
func APIGetAIVoltageACRMSUnits(handle TaskHandle, channel string) (Status, Units, error) {
	var units int32
	status, err := pGetAIVoltageACRMSUnits.call(uintptr(handle), cstr(channel), uintptr(unsafe.Pointer(&units)))
	return status, Units(units), err
}

// API call to set the units of AC RMS voltage measurements
func APISetAIVoltageACRMSUnits(handle TaskHandle, channel string, units Units) (Status, error) {
	return pSetAIVoltageACRMSUnits.call(uintptr(handle), cstr(channel), uintptr(units))
}

// API call to restore the default units of AC RMS voltage measurements
func APIResetAIVoltageACRMSUnits(handle TaskHandle, channel string) (Status, error) {
	return pResetAIVoltageACRMSUnits.call(uintptr(handle), cstr(channel))
}
