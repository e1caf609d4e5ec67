package daqmx

import "unsafe"

/* Channel creation entry points, one per sensor type. All of them add
virtual channels to a task; the physical channel string addresses the
hardware line (e.g. "Dev1/ai0" or "Dev1/ai0:3"). */

var (
	pCreateAIVoltageChan           = newProc("DAQmxCreateAIVoltageChan")
	pCreateAICurrentChan           = newProc("DAQmxCreateAICurrentChan")
	pCreateAIVoltageRMSChan        = newProc("DAQmxCreateAIVoltageRMSChan")
	pCreateAICurrentRMSChan        = newProc("DAQmxCreateAICurrentRMSChan")
	pCreateAIThrmcplChan           = newProc("DAQmxCreateAIThrmcplChan")
	pCreateAIRTDChan               = newProc("DAQmxCreateAIRTDChan")
	pCreateAIThrmstrChanIex        = newProc("DAQmxCreateAIThrmstrChanIex")
	pCreateAIThrmstrChanVex        = newProc("DAQmxCreateAIThrmstrChanVex")
	pCreateAIFreqVoltageChan       = newProc("DAQmxCreateAIFreqVoltageChan")
	pCreateAIResistanceChan        = newProc("DAQmxCreateAIResistanceChan")
	pCreateAIStrainGageChan        = newProc("DAQmxCreateAIStrainGageChan")
	pCreateAIVoltageChanWithExcit  = newProc("DAQmxCreateAIVoltageChanWithExcit")
	pCreateAITempBuiltInSensorChan = newProc("DAQmxCreateAITempBuiltInSensorChan")
	pCreateAIAccelChan             = newProc("DAQmxCreateAIAccelChan")
	pCreateAIMicrophoneChan        = newProc("DAQmxCreateAIMicrophoneChan")
	pCreateAIPosLVDTChan           = newProc("DAQmxCreateAIPosLVDTChan")
	pCreateAIPosRVDTChan           = newProc("DAQmxCreateAIPosRVDTChan")

	pCreateAOVoltageChan = newProc("DAQmxCreateAOVoltageChan")
	pCreateAOCurrentChan = newProc("DAQmxCreateAOCurrentChan")
	pCreateAOFuncGenChan = newProc("DAQmxCreateAOFuncGenChan")

	pCreateDIChan = newProc("DAQmxCreateDIChan")
	pCreateDOChan = newProc("DAQmxCreateDOChan")

	pCreateCICountEdgesChan = newProc("DAQmxCreateCICountEdgesChan")
	pCreateCOPulseChanFreq  = newProc("DAQmxCreateCOPulseChanFreq")

	pGetAIChanCalCalDate = newProc("DAQmxGetAIChanCalCalDate")
	pSetAIChanCalCalDate = newProc("DAQmxSetAIChanCalCalDate")
	pGetAIChanCalExpDate = newProc("DAQmxGetAIChanCalExpDate")
	pSetAIChanCalExpDate = newProc("DAQmxSetAIChanCalExpDate")
)

// API call to create an analog input voltage channel
func APICreateAIVoltageChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, minVal float64, maxVal float64, units Units, customScaleName string) (Status, error) {
	return pCreateAIVoltageChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), f64arg(minVal), f64arg(maxVal), uintptr(units), cstr(customScaleName))
}

// API call to create an analog input current channel
func APICreateAICurrentChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, minVal float64, maxVal float64, units Units, shuntResistorLoc int32, extShuntResistorVal float64, customScaleName string) (Status, error) {
	return pCreateAICurrentChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), f64arg(minVal), f64arg(maxVal), uintptr(units),
		uintptr(shuntResistorLoc), f64arg(extShuntResistorVal), cstr(customScaleName))
}

// API call to create an analog input channel measuring RMS voltage
func APICreateAIVoltageRMSChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, minVal float64, maxVal float64, units Units, customScaleName string) (Status, error) {
	return pCreateAIVoltageRMSChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), f64arg(minVal), f64arg(maxVal), uintptr(units), cstr(customScaleName))
}

// API call to create an analog input channel measuring RMS current
func APICreateAICurrentRMSChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, minVal float64, maxVal float64, units Units, shuntResistorLoc int32, extShuntResistorVal float64, customScaleName string) (Status, error) {
	return pCreateAICurrentRMSChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), f64arg(minVal), f64arg(maxVal), uintptr(units),
		uintptr(shuntResistorLoc), f64arg(extShuntResistorVal), cstr(customScaleName))
}

// API call to create a thermocouple channel
func APICreateAIThrmcplChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, thermocoupleType int32, cjcSource int32, cjcVal float64, cjcChannel string) (Status, error) {
	return pCreateAIThrmcplChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units),
		uintptr(thermocoupleType), uintptr(cjcSource), f64arg(cjcVal), cstr(cjcChannel))
}

// API call to create an RTD temperature channel
func APICreateAIRTDChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, rtdType int32, resistanceConfig int32, currentExcitSource int32, currentExcitVal float64, r0 float64) (Status, error) {
	return pCreateAIRTDChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), uintptr(rtdType), uintptr(resistanceConfig),
		uintptr(currentExcitSource), f64arg(currentExcitVal), f64arg(r0))
}

// API call to create a thermistor channel with current excitation
func APICreateAIThrmstrChanIex(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, resistanceConfig int32, currentExcitSource int32, currentExcitVal float64, a float64, b float64, c float64) (Status, error) {
	return pCreateAIThrmstrChanIex.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), uintptr(resistanceConfig),
		uintptr(currentExcitSource), f64arg(currentExcitVal), f64arg(a), f64arg(b), f64arg(c))
}

// API call to create a thermistor channel with voltage excitation
func APICreateAIThrmstrChanVex(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, resistanceConfig int32, voltageExcitSource int32, voltageExcitVal float64, a float64, b float64, c float64, r1 float64) (Status, error) {
	return pCreateAIThrmstrChanVex.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), uintptr(resistanceConfig),
		uintptr(voltageExcitSource), f64arg(voltageExcitVal), f64arg(a), f64arg(b), f64arg(c), f64arg(r1))
}

// API call to create a frequency channel using a voltage threshold
func APICreateAIFreqVoltageChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, thresholdLevel float64, hysteresis float64, customScaleName string) (Status, error) {
	return pCreateAIFreqVoltageChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), f64arg(thresholdLevel), f64arg(hysteresis), cstr(customScaleName))
}

// API call to create a resistance channel
func APICreateAIResistanceChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, resistanceConfig int32, currentExcitSource int32, currentExcitVal float64, customScaleName string) (Status, error) {
	return pCreateAIResistanceChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), uintptr(resistanceConfig),
		uintptr(currentExcitSource), f64arg(currentExcitVal), cstr(customScaleName))
}

// API call to create a strain gage channel
func APICreateAIStrainGageChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, strainConfig int32, voltageExcitSource int32, voltageExcitVal float64, gageFactor float64, initialBridgeVoltage float64, nominalGageResistance float64, poissonRatio float64, leadWireResistance float64, customScaleName string) (Status, error) {
	return pCreateAIStrainGageChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), uintptr(strainConfig),
		uintptr(voltageExcitSource), f64arg(voltageExcitVal), f64arg(gageFactor), f64arg(initialBridgeVoltage),
		f64arg(nominalGageResistance), f64arg(poissonRatio), f64arg(leadWireResistance), cstr(customScaleName))
}

// API call to create a voltage channel with excitation, e.g. for bridge sensors
func APICreateAIVoltageChanWithExcit(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, minVal float64, maxVal float64, units Units, bridgeConfig int32, voltageExcitSource int32, voltageExcitVal float64, useExcitForScaling bool, customScaleName string) (Status, error) {
	var useExcit uintptr
	if useExcitForScaling {
		useExcit = 1
	}
	return pCreateAIVoltageChanWithExcit.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), f64arg(minVal), f64arg(maxVal), uintptr(units), uintptr(bridgeConfig),
		uintptr(voltageExcitSource), f64arg(voltageExcitVal), useExcit, cstr(customScaleName))
}

// API call to create a channel reading the on-board temperature sensor
func APICreateAITempBuiltInSensorChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, units Units) (Status, error) {
	return pCreateAITempBuiltInSensorChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel), uintptr(units))
}

// API call to create an accelerometer channel
func APICreateAIAccelChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, minVal float64, maxVal float64, units Units, sensitivity float64, sensitivityUnits int32, currentExcitSource int32, currentExcitVal float64, customScaleName string) (Status, error) {
	return pCreateAIAccelChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), f64arg(minVal), f64arg(maxVal), uintptr(units), f64arg(sensitivity),
		uintptr(sensitivityUnits), uintptr(currentExcitSource), f64arg(currentExcitVal), cstr(customScaleName))
}

// API call to create a microphone channel
func APICreateAIMicrophoneChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, terminalConfig TerminalConfig, units Units, micSensitivity float64, maxSndPressLevel float64, currentExcitSource int32, currentExcitVal float64, customScaleName string) (Status, error) {
	return pCreateAIMicrophoneChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(terminalConfig), uintptr(units), f64arg(micSensitivity), f64arg(maxSndPressLevel),
		uintptr(currentExcitSource), f64arg(currentExcitVal), cstr(customScaleName))
}

// API call to create an LVDT position channel
func APICreateAIPosLVDTChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, sensitivity float64, sensitivityUnits int32, voltageExcitSource int32, voltageExcitVal float64, voltageExcitFreq float64, acExcitWireMode int32, customScaleName string) (Status, error) {
	return pCreateAIPosLVDTChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), f64arg(sensitivity), uintptr(sensitivityUnits),
		uintptr(voltageExcitSource), f64arg(voltageExcitVal), f64arg(voltageExcitFreq), uintptr(acExcitWireMode), cstr(customScaleName))
}

// API call to create an RVDT position channel
func APICreateAIPosRVDTChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, sensitivity float64, sensitivityUnits int32, voltageExcitSource int32, voltageExcitVal float64, voltageExcitFreq float64, acExcitWireMode int32, customScaleName string) (Status, error) {
	return pCreateAIPosRVDTChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), f64arg(sensitivity), uintptr(sensitivityUnits),
		uintptr(voltageExcitSource), f64arg(voltageExcitVal), f64arg(voltageExcitFreq), uintptr(acExcitWireMode), cstr(customScaleName))
}

// API call to create an analog output voltage channel
func APICreateAOVoltageChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, customScaleName string) (Status, error) {
	return pCreateAOVoltageChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), cstr(customScaleName))
}

// API call to create an analog output current channel
func APICreateAOCurrentChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, minVal float64, maxVal float64, units Units, customScaleName string) (Status, error) {
	return pCreateAOCurrentChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		f64arg(minVal), f64arg(maxVal), uintptr(units), cstr(customScaleName))
}

// API call to create an on-board function generation channel
func APICreateAOFuncGenChan(handle TaskHandle, physicalChannel string, nameToAssignToChannel string, funcType FuncGenType, freq float64, amplitude float64, offset float64) (Status, error) {
	return pCreateAOFuncGenChan.call(uintptr(handle), cstr(physicalChannel), cstr(nameToAssignToChannel),
		uintptr(funcType), f64arg(freq), f64arg(amplitude), f64arg(offset))
}

// API call to create a digital input channel for one or more lines
func APICreateDIChan(handle TaskHandle, lines string, nameToAssignToLines string, lineGrouping LineGrouping) (Status, error) {
	return pCreateDIChan.call(uintptr(handle), cstr(lines), cstr(nameToAssignToLines), uintptr(lineGrouping))
}

// API call to create a digital output channel for one or more lines
func APICreateDOChan(handle TaskHandle, lines string, nameToAssignToLines string, lineGrouping LineGrouping) (Status, error) {
	return pCreateDOChan.call(uintptr(handle), cstr(lines), cstr(nameToAssignToLines), uintptr(lineGrouping))
}

// API call to create a counter input channel counting edges
func APICreateCICountEdgesChan(handle TaskHandle, counter string, nameToAssignToChannel string, edge Edge, initialCount uint32, countDirection CountDirection) (Status, error) {
	return pCreateCICountEdgesChan.call(uintptr(handle), cstr(counter), cstr(nameToAssignToChannel),
		uintptr(edge), uintptr(initialCount), uintptr(countDirection))
}

// API call to create a counter output channel generating pulses defined by
// frequency and duty cycle
func APICreateCOPulseChanFreq(handle TaskHandle, counter string, nameToAssignToChannel string, units Units, idleState Level, initialDelay float64, freq float64, dutyCycle float64) (Status, error) {
	return pCreateCOPulseChanFreq.call(uintptr(handle), cstr(counter), cstr(nameToAssignToChannel),
		uintptr(units), uintptr(idleState), f64arg(initialDelay), f64arg(freq), f64arg(dutyCycle))
}

// API call to read the calibration date of the given channels
func APIGetAIChanCalCalDate(handle TaskHandle, channelNames string) (Status, CalDate, error) {
	var d CalDate
	status, err := pGetAIChanCalCalDate.call(uintptr(handle), cstr(channelNames),
		uintptr(unsafe.Pointer(&d.Year)), uintptr(unsafe.Pointer(&d.Month)), uintptr(unsafe.Pointer(&d.Day)),
		uintptr(unsafe.Pointer(&d.Hour)), uintptr(unsafe.Pointer(&d.Minute)))
	return status, d, err
}

// API call to store the calibration date of the given channels
func APISetAIChanCalCalDate(handle TaskHandle, channelNames string, d CalDate) (Status, error) {
	return pSetAIChanCalCalDate.call(uintptr(handle), cstr(channelNames),
		uintptr(d.Year), uintptr(d.Month), uintptr(d.Day), uintptr(d.Hour), uintptr(d.Minute))
}

// API call to read the calibration expiration date of the given channels
func APIGetAIChanCalExpDate(handle TaskHandle, channelNames string) (Status, CalDate, error) {
	var d CalDate
	status, err := pGetAIChanCalExpDate.call(uintptr(handle), cstr(channelNames),
		uintptr(unsafe.Pointer(&d.Year)), uintptr(unsafe.Pointer(&d.Month)), uintptr(unsafe.Pointer(&d.Day)),
		uintptr(unsafe.Pointer(&d.Hour)), uintptr(unsafe.Pointer(&d.Minute)))
	return status, d, err
}

// API call to store the calibration expiration date of the given channels
func APISetAIChanCalExpDate(handle TaskHandle, channelNames string, d CalDate) (Status, error) {
	return pSetAIChanCalExpDate.call(uintptr(handle), cstr(channelNames),
		uintptr(d.Year), uintptr(d.Month), uintptr(d.Day), uintptr(d.Hour), uintptr(d.Minute))
}
