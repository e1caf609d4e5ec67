package daqmx

import "unsafe"

/* Device control, device attribute and calibration entry points. Attribute
getters come in three shapes: scalar out-parameter, fixed byte buffer for
comma separated name lists, and fixed float64 array for range/value lists. */

var (
	pResetDevice    = newProc("DAQmxResetDevice")
	pSelfTestDevice = newProc("DAQmxSelfTestDevice")

	pGetDevIsSimulated           = newProc("DAQmxGetDevIsSimulated")
	pGetDevProductCategory       = newProc("DAQmxGetDevProductCategory")
	pGetDevProductType           = newProc("DAQmxGetDevProductType")
	pGetDevProductNum            = newProc("DAQmxGetDevProductNum")
	pGetDevSerialNum             = newProc("DAQmxGetDevSerialNum")
	pGetCarrierSerialNum         = newProc("DAQmxGetCarrierSerialNum")
	pGetDevChassisModuleDevNames = newProc("DAQmxGetDevChassisModuleDevNames")
	pGetDevAnlgTrigSupported     = newProc("DAQmxGetDevAnlgTrigSupported")
	pGetDevDigTrigSupported      = newProc("DAQmxGetDevDigTrigSupported")

	pGetDevAIPhysicalChans                 = newProc("DAQmxGetDevAIPhysicalChans")
	pGetDevAIMaxSingleChanRate             = newProc("DAQmxGetDevAIMaxSingleChanRate")
	pGetDevAIMaxMultiChanRate              = newProc("DAQmxGetDevAIMaxMultiChanRate")
	pGetDevAIMinRate                       = newProc("DAQmxGetDevAIMinRate")
	pGetDevAISimultaneousSamplingSupported = newProc("DAQmxGetDevAISimultaneousSamplingSupported")
	pGetDevAITrigUsage                     = newProc("DAQmxGetDevAITrigUsage")
	pGetDevAIVoltageRngs                   = newProc("DAQmxGetDevAIVoltageRngs")
	pGetDevAIVoltageIntExcitDiscreteVals   = newProc("DAQmxGetDevAIVoltageIntExcitDiscreteVals")
	pGetDevAIVoltageIntExcitRangeVals      = newProc("DAQmxGetDevAIVoltageIntExcitRangeVals")
	pGetDevAICurrentRngs                   = newProc("DAQmxGetDevAICurrentRngs")
	pGetDevAICurrentIntExcitDiscreteVals   = newProc("DAQmxGetDevAICurrentIntExcitDiscreteVals")
	pGetDevAIFreqRngs                      = newProc("DAQmxGetDevAIFreqRngs")
	pGetDevAIGains                         = newProc("DAQmxGetDevAIGains")
	pGetDevAICouplings                     = newProc("DAQmxGetDevAICouplings")
	pGetDevAILowpassCutoffFreqDiscreteVals = newProc("DAQmxGetDevAILowpassCutoffFreqDiscreteVals")
	pGetDevAILowpassCutoffFreqRangeVals    = newProc("DAQmxGetDevAILowpassCutoffFreqRangeVals")

	pGetDevAOPhysicalChans    = newProc("DAQmxGetDevAOPhysicalChans")
	pGetDevAOSampClkSupported = newProc("DAQmxGetDevAOSampClkSupported")
	pGetDevAOMaxRate          = newProc("DAQmxGetDevAOMaxRate")
	pGetDevAOMinRate          = newProc("DAQmxGetDevAOMinRate")
	pGetDevAOTrigUsage        = newProc("DAQmxGetDevAOTrigUsage")
	pGetDevAOVoltageRngs      = newProc("DAQmxGetDevAOVoltageRngs")
	pGetDevAOCurrentRngs      = newProc("DAQmxGetDevAOCurrentRngs")
	pGetDevAOGains            = newProc("DAQmxGetDevAOGains")

	pGetDevDILines     = newProc("DAQmxGetDevDILines")
	pGetDevDIPorts     = newProc("DAQmxGetDevDIPorts")
	pGetDevDIMaxRate   = newProc("DAQmxGetDevDIMaxRate")
	pGetDevDITrigUsage = newProc("DAQmxGetDevDITrigUsage")
	pGetDevDOLines     = newProc("DAQmxGetDevDOLines")
	pGetDevDOPorts     = newProc("DAQmxGetDevDOPorts")
	pGetDevDOMaxRate   = newProc("DAQmxGetDevDOMaxRate")
	pGetDevDOTrigUsage = newProc("DAQmxGetDevDOTrigUsage")

	pGetDevCIPhysicalChans    = newProc("DAQmxGetDevCIPhysicalChans")
	pGetDevCITrigUsage        = newProc("DAQmxGetDevCITrigUsage")
	pGetDevCISampClkSupported = newProc("DAQmxGetDevCISampClkSupported")
	pGetDevCIMaxSize          = newProc("DAQmxGetDevCIMaxSize")
	pGetDevCIMaxTimebase      = newProc("DAQmxGetDevCIMaxTimebase")
	pGetDevCOPhysicalChans    = newProc("DAQmxGetDevCOPhysicalChans")
	pGetDevCOTrigUsage        = newProc("DAQmxGetDevCOTrigUsage")
	pGetDevCOMaxSize          = newProc("DAQmxGetDevCOMaxSize")
	pGetDevCOMaxTimebase      = newProc("DAQmxGetDevCOMaxTimebase")

	pGetDevNumDMAChans              = newProc("DAQmxGetDevNumDMAChans")
	pGetDevBusType                  = newProc("DAQmxGetDevBusType")
	pGetDevPCIBusNum                = newProc("DAQmxGetDevPCIBusNum")
	pGetDevPCIDevNum                = newProc("DAQmxGetDevPCIDevNum")
	pGetDevPXIChassisNum            = newProc("DAQmxGetDevPXIChassisNum")
	pGetDevPXISlotNum               = newProc("DAQmxGetDevPXISlotNum")
	pGetDevCompactDAQChassisDevName = newProc("DAQmxGetDevCompactDAQChassisDevName")
	pGetDevCompactDAQSlotNum        = newProc("DAQmxGetDevCompactDAQSlotNum")
	pGetDevTCPIPHostname            = newProc("DAQmxGetDevTCPIPHostname")
	pGetDevTCPIPEthernetIP          = newProc("DAQmxGetDevTCPIPEthernetIP")
	pGetDevTCPIPWirelessIP          = newProc("DAQmxGetDevTCPIPWirelessIP")
	pGetDevTerminals                = newProc("DAQmxGetDevTerminals")

	pSelfCal                       = newProc("DAQmxSelfCal")
	pDeviceSupportsCal             = newProc("DAQmxDeviceSupportsCal")
	pRestoreLastExtCalConst        = newProc("DAQmxRestoreLastExtCalConst")
	pGetSelfCalLastDateAndTime     = newProc("DAQmxGetSelfCalLastDateAndTime")
	pGetExtCalLastDateAndTime      = newProc("DAQmxGetExtCalLastDateAndTime")
	pPerformBridgeOffsetNullingCal = newProc("DAQmxPerformBridgeOffsetNullingCal")
	pGetSelfCalSupported           = newProc("DAQmxGetSelfCalSupported")
	pGetSelfCalLastTemp            = newProc("DAQmxGetSelfCalLastTemp")
	pGetExtCalRecommendedInterval  = newProc("DAQmxGetExtCalRecommendedInterval")
	pGetExtCalLastTemp             = newProc("DAQmxGetExtCalLastTemp")
	pGetCalUserDefinedInfo         = newProc("DAQmxGetCalUserDefinedInfo")
	pSetCalUserDefinedInfo         = newProc("DAQmxSetCalUserDefinedInfo")
	pGetCalUserDefinedInfoMaxSize  = newProc("DAQmxGetCalUserDefinedInfoMaxSize")
	pGetCalDevTemp                 = newProc("DAQmxGetCalDevTemp")
)

// API call to abort all tasks of the device and return it to its default state
func APIResetDevice(deviceName string) (Status, error) {
	return pResetDevice.call(cstr(deviceName))
}

// API call to run the device self test
func APISelfTestDevice(deviceName string) (Status, error) {
	return pSelfTestDevice.call(cstr(deviceName))
}

// API call to query whether the device is simulated in MAX
func APIGetDevIsSimulated(deviceName string) (Status, bool, error) {
	var simulated int32
	status, err := pGetDevIsSimulated.call(cstr(deviceName), uintptr(unsafe.Pointer(&simulated)))
	return status, simulated != 0, err
}

// API call to read the product category identifier
func APIGetDevProductCategory(deviceName string) (Status, int32, error) {
	var category int32
	status, err := pGetDevProductCategory.call(cstr(deviceName), uintptr(unsafe.Pointer(&category)))
	return status, category, err
}

// API call to read the product type string, e.g. "USB-6001"
func APIGetDevProductType(deviceName string, buffer []byte) (Status, error) {
	return pGetDevProductType.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the numeric product identifier
func APIGetDevProductNum(deviceName string) (Status, uint32, error) {
	var num uint32
	status, err := pGetDevProductNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&num)))
	return status, num, err
}

// API call to read the device serial number; zero for simulated devices
func APIGetDevSerialNum(deviceName string) (Status, uint32, error) {
	var num uint32
	status, err := pGetDevSerialNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&num)))
	return status, num, err
}

// API call to read the carrier serial number of SCXI/SCC carriers
func APIGetCarrierSerialNum(deviceName string) (Status, uint32, error) {
	var num uint32
	status, err := pGetCarrierSerialNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&num)))
	return status, num, err
}

// API call to read the module names plugged into a chassis device
func APIGetDevChassisModuleDevNames(deviceName string, buffer []byte) (Status, error) {
	return pGetDevChassisModuleDevNames.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to query analog triggering support
func APIGetDevAnlgTrigSupported(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pGetDevAnlgTrigSupported.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to query digital triggering support
func APIGetDevDigTrigSupported(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pGetDevDigTrigSupported.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to read the comma separated analog input physical channel names
func APIGetDevAIPhysicalChans(deviceName string, buffer []byte) (Status, error) {
	return pGetDevAIPhysicalChans.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the maximum analog input rate for a single channel task
func APIGetDevAIMaxSingleChanRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevAIMaxSingleChanRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to read the maximum aggregate analog input rate
func APIGetDevAIMaxMultiChanRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevAIMaxMultiChanRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to read the minimum analog input rate
func APIGetDevAIMinRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevAIMinRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to query simultaneous sampling support of the analog input subsystem
func APIGetDevAISimultaneousSamplingSupported(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pGetDevAISimultaneousSamplingSupported.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to read the trigger usage bitfield of the analog input subsystem
func APIGetDevAITrigUsage(deviceName string) (Status, int32, error) {
	var usage int32
	status, err := pGetDevAITrigUsage.call(cstr(deviceName), uintptr(unsafe.Pointer(&usage)))
	return status, usage, err
}

// API call to read the supported analog input voltage ranges as a flat
// (low, high) pair array
func APIGetDevAIVoltageRngs(deviceName string, values []float64) (Status, error) {
	return pGetDevAIVoltageRngs.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the selectable internal voltage excitation values
func APIGetDevAIVoltageIntExcitDiscreteVals(deviceName string, values []float64) (Status, error) {
	return pGetDevAIVoltageIntExcitDiscreteVals.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the internal voltage excitation ranges
func APIGetDevAIVoltageIntExcitRangeVals(deviceName string, values []float64) (Status, error) {
	return pGetDevAIVoltageIntExcitRangeVals.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the supported analog input current ranges
func APIGetDevAICurrentRngs(deviceName string, values []float64) (Status, error) {
	return pGetDevAICurrentRngs.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the selectable internal current excitation values
func APIGetDevAICurrentIntExcitDiscreteVals(deviceName string, values []float64) (Status, error) {
	return pGetDevAICurrentIntExcitDiscreteVals.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the supported frequency input ranges
func APIGetDevAIFreqRngs(deviceName string, values []float64) (Status, error) {
	return pGetDevAIFreqRngs.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the supported analog input gains
func APIGetDevAIGains(deviceName string, values []float64) (Status, error) {
	return pGetDevAIGains.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the supported coupling mode bitfield
func APIGetDevAICouplings(deviceName string) (Status, int32, error) {
	var couplings int32
	status, err := pGetDevAICouplings.call(cstr(deviceName), uintptr(unsafe.Pointer(&couplings)))
	return status, couplings, err
}

// API call to read the selectable lowpass cutoff frequencies
func APIGetDevAILowpassCutoffFreqDiscreteVals(deviceName string, values []float64) (Status, error) {
	return pGetDevAILowpassCutoffFreqDiscreteVals.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the lowpass cutoff frequency ranges
func APIGetDevAILowpassCutoffFreqRangeVals(deviceName string, values []float64) (Status, error) {
	return pGetDevAILowpassCutoffFreqRangeVals.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the comma separated analog output physical channel names
func APIGetDevAOPhysicalChans(deviceName string, buffer []byte) (Status, error) {
	return pGetDevAOPhysicalChans.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to query sample clocked analog output support
func APIGetDevAOSampClkSupported(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pGetDevAOSampClkSupported.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to read the maximum analog output rate
func APIGetDevAOMaxRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevAOMaxRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to read the minimum analog output rate
func APIGetDevAOMinRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevAOMinRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to read the trigger usage bitfield of the analog output subsystem
func APIGetDevAOTrigUsage(deviceName string) (Status, int32, error) {
	var usage int32
	status, err := pGetDevAOTrigUsage.call(cstr(deviceName), uintptr(unsafe.Pointer(&usage)))
	return status, usage, err
}

// API call to read the supported analog output voltage ranges
func APIGetDevAOVoltageRngs(deviceName string, values []float64) (Status, error) {
	return pGetDevAOVoltageRngs.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the supported analog output current ranges
func APIGetDevAOCurrentRngs(deviceName string, values []float64) (Status, error) {
	return pGetDevAOCurrentRngs.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the supported analog output gains
func APIGetDevAOGains(deviceName string, values []float64) (Status, error) {
	return pGetDevAOGains.call(cstr(deviceName), sliceArg(values), uintptr(len(values)))
}

// API call to read the comma separated digital input line names
func APIGetDevDILines(deviceName string, buffer []byte) (Status, error) {
	return pGetDevDILines.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated digital input port names
func APIGetDevDIPorts(deviceName string, buffer []byte) (Status, error) {
	return pGetDevDIPorts.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the maximum digital input rate
func APIGetDevDIMaxRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevDIMaxRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to read the trigger usage bitfield of the digital input subsystem
func APIGetDevDITrigUsage(deviceName string) (Status, int32, error) {
	var usage int32
	status, err := pGetDevDITrigUsage.call(cstr(deviceName), uintptr(unsafe.Pointer(&usage)))
	return status, usage, err
}

// API call to read the comma separated digital output line names
func APIGetDevDOLines(deviceName string, buffer []byte) (Status, error) {
	return pGetDevDOLines.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated digital output port names
func APIGetDevDOPorts(deviceName string, buffer []byte) (Status, error) {
	return pGetDevDOPorts.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the maximum digital output rate
func APIGetDevDOMaxRate(deviceName string) (Status, float64, error) {
	var rate float64
	status, err := pGetDevDOMaxRate.call(cstr(deviceName), uintptr(unsafe.Pointer(&rate)))
	return status, rate, err
}

// API call to read the trigger usage bitfield of the digital output subsystem
func APIGetDevDOTrigUsage(deviceName string) (Status, int32, error) {
	var usage int32
	status, err := pGetDevDOTrigUsage.call(cstr(deviceName), uintptr(unsafe.Pointer(&usage)))
	return status, usage, err
}

// API call to read the comma separated counter input channel names
func APIGetDevCIPhysicalChans(deviceName string, buffer []byte) (Status, error) {
	return pGetDevCIPhysicalChans.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the trigger usage bitfield of the counter input subsystem
func APIGetDevCITrigUsage(deviceName string) (Status, int32, error) {
	var usage int32
	status, err := pGetDevCITrigUsage.call(cstr(deviceName), uintptr(unsafe.Pointer(&usage)))
	return status, usage, err
}

// API call to query sample clocked counter input support
func APIGetDevCISampClkSupported(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pGetDevCISampClkSupported.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to read the counter input register width in bits
func APIGetDevCIMaxSize(deviceName string) (Status, uint32, error) {
	var size uint32
	status, err := pGetDevCIMaxSize.call(cstr(deviceName), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to read the maximum counter input timebase in Hz
func APIGetDevCIMaxTimebase(deviceName string) (Status, float64, error) {
	var timebase float64
	status, err := pGetDevCIMaxTimebase.call(cstr(deviceName), uintptr(unsafe.Pointer(&timebase)))
	return status, timebase, err
}

// API call to read the comma separated counter output channel names
func APIGetDevCOPhysicalChans(deviceName string, buffer []byte) (Status, error) {
	return pGetDevCOPhysicalChans.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the trigger usage bitfield of the counter output subsystem
func APIGetDevCOTrigUsage(deviceName string) (Status, int32, error) {
	var usage int32
	status, err := pGetDevCOTrigUsage.call(cstr(deviceName), uintptr(unsafe.Pointer(&usage)))
	return status, usage, err
}

// API call to read the counter output register width in bits
func APIGetDevCOMaxSize(deviceName string) (Status, uint32, error) {
	var size uint32
	status, err := pGetDevCOMaxSize.call(cstr(deviceName), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to read the maximum counter output timebase in Hz
func APIGetDevCOMaxTimebase(deviceName string) (Status, float64, error) {
	var timebase float64
	status, err := pGetDevCOMaxTimebase.call(cstr(deviceName), uintptr(unsafe.Pointer(&timebase)))
	return status, timebase, err
}

// API call to read the number of DMA channels of the device
func APIGetDevNumDMAChans(deviceName string) (Status, uint32, error) {
	var n uint32
	status, err := pGetDevNumDMAChans.call(cstr(deviceName), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the bus type identifier of the device
func APIGetDevBusType(deviceName string) (Status, int32, error) {
	var busType int32
	status, err := pGetDevBusType.call(cstr(deviceName), uintptr(unsafe.Pointer(&busType)))
	return status, busType, err
}

// API call to read the PCI bus number
func APIGetDevPCIBusNum(deviceName string) (Status, uint32, error) {
	var n uint32
	status, err := pGetDevPCIBusNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the PCI device number
func APIGetDevPCIDevNum(deviceName string) (Status, uint32, error) {
	var n uint32
	status, err := pGetDevPCIDevNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the PXI chassis number
func APIGetDevPXIChassisNum(deviceName string) (Status, uint32, error) {
	var n uint32
	status, err := pGetDevPXIChassisNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the PXI slot number
func APIGetDevPXISlotNum(deviceName string) (Status, uint32, error) {
	var n uint32
	status, err := pGetDevPXISlotNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the name of the CompactDAQ chassis the module sits in
func APIGetDevCompactDAQChassisDevName(deviceName string, buffer []byte) (Status, error) {
	return pGetDevCompactDAQChassisDevName.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the CompactDAQ slot number
func APIGetDevCompactDAQSlotNum(deviceName string) (Status, uint32, error) {
	var n uint32
	status, err := pGetDevCompactDAQSlotNum.call(cstr(deviceName), uintptr(unsafe.Pointer(&n)))
	return status, n, err
}

// API call to read the hostname of a networked device
func APIGetDevTCPIPHostname(deviceName string, buffer []byte) (Status, error) {
	return pGetDevTCPIPHostname.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the wired IP address of a networked device
func APIGetDevTCPIPEthernetIP(deviceName string, buffer []byte) (Status, error) {
	return pGetDevTCPIPEthernetIP.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the wireless IP address of a networked device
func APIGetDevTCPIPWirelessIP(deviceName string, buffer []byte) (Status, error) {
	return pGetDevTCPIPWirelessIP.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to read the comma separated terminal names of the device
func APIGetDevTerminals(deviceName string, buffer []byte) (Status, error) {
	return pGetDevTerminals.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to run a device self calibration. Takes up to several minutes on
// some hardware.
func APISelfCal(deviceName string) (Status, error) {
	return pSelfCal.call(cstr(deviceName))
}

// API call to query whether the device supports calibration
func APIDeviceSupportsCal(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pDeviceSupportsCal.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to roll back to the constants of the last external calibration
func APIRestoreLastExtCalConst(deviceName string) (Status, error) {
	return pRestoreLastExtCalConst.call(cstr(deviceName))
}

// API call to read the date of the last self calibration
func APIGetSelfCalLastDateAndTime(deviceName string) (Status, CalDate, error) {
	var d CalDate
	status, err := pGetSelfCalLastDateAndTime.call(cstr(deviceName),
		uintptr(unsafe.Pointer(&d.Year)), uintptr(unsafe.Pointer(&d.Month)), uintptr(unsafe.Pointer(&d.Day)),
		uintptr(unsafe.Pointer(&d.Hour)), uintptr(unsafe.Pointer(&d.Minute)))
	return status, d, err
}

// API call to read the date of the last external calibration
func APIGetExtCalLastDateAndTime(deviceName string) (Status, CalDate, error) {
	var d CalDate
	status, err := pGetExtCalLastDateAndTime.call(cstr(deviceName),
		uintptr(unsafe.Pointer(&d.Year)), uintptr(unsafe.Pointer(&d.Month)), uintptr(unsafe.Pointer(&d.Day)),
		uintptr(unsafe.Pointer(&d.Hour)), uintptr(unsafe.Pointer(&d.Minute)))
	return status, d, err
}

// API call to null the bridge offset of all bridge channels in the task
func APIPerformBridgeOffsetNullingCal(handle TaskHandle, channel string) (Status, error) {
	return pPerformBridgeOffsetNullingCal.call(uintptr(handle), cstr(channel))
}

// API call to query self calibration support
func APIGetSelfCalSupported(deviceName string) (Status, bool, error) {
	var supported int32
	status, err := pGetSelfCalSupported.call(cstr(deviceName), uintptr(unsafe.Pointer(&supported)))
	return status, supported != 0, err
}

// API call to read the temperature of the last self calibration in deg C
func APIGetSelfCalLastTemp(deviceName string) (Status, float64, error) {
	var temp float64
	status, err := pGetSelfCalLastTemp.call(cstr(deviceName), uintptr(unsafe.Pointer(&temp)))
	return status, temp, err
}

// API call to read the recommended external calibration interval in months
func APIGetExtCalRecommendedInterval(deviceName string) (Status, uint32, error) {
	var months uint32
	status, err := pGetExtCalRecommendedInterval.call(cstr(deviceName), uintptr(unsafe.Pointer(&months)))
	return status, months, err
}

// API call to read the temperature of the last external calibration in deg C
func APIGetExtCalLastTemp(deviceName string) (Status, float64, error) {
	var temp float64
	status, err := pGetExtCalLastTemp.call(cstr(deviceName), uintptr(unsafe.Pointer(&temp)))
	return status, temp, err
}

// API call to read the user defined calibration info string
func APIGetCalUserDefinedInfo(deviceName string, buffer []byte) (Status, error) {
	return pGetCalUserDefinedInfo.call(cstr(deviceName), sliceArg(buffer), uintptr(len(buffer)))
}

// API call to store a user defined calibration info string in the EEPROM
func APISetCalUserDefinedInfo(deviceName string, info string) (Status, error) {
	return pSetCalUserDefinedInfo.call(cstr(deviceName), cstr(info))
}

// API call to read the maximum length of the user defined calibration info
func APIGetCalUserDefinedInfoMaxSize(deviceName string) (Status, uint32, error) {
	var size uint32
	status, err := pGetCalUserDefinedInfoMaxSize.call(cstr(deviceName), uintptr(unsafe.Pointer(&size)))
	return status, size, err
}

// API call to read the current device temperature in deg C
func APIGetCalDevTemp(deviceName string) (Status, float64, error) {
	var temp float64
	status, err := pGetCalDevTemp.call(cstr(deviceName), uintptr(unsafe.Pointer(&temp)))
	return status, temp, err
}
