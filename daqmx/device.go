package daqmx

// Device addresses one installed DAQ device by its MAX name, e.g. "Dev1".
// The methods wrap the device attribute queries; names longer than the fixed
// driver buffers come back truncated.
type Device struct {
	Name string
}

// GetDeviceNames returns the names of all devices installed in the system.
func GetDeviceNames() ([]string, error) {
	if err := LoadAPI(); err != nil {
		return nil, err
	}
	var buf [LENGTH_DEVICE_NAMES_BUFFER]byte
	status, err := APIGetSysDevNames(buf[:])
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return splitNameList(stringFromBuffer(buf[:])), nil
}

// GetDevices returns a Device for every installed device.
func GetDevices() ([]Device, error) {
	names, err := GetDeviceNames()
	if err != nil {
		return nil, err
	}
	devices := make([]Device, len(names))
	for i, name := range names {
		devices[i] = Device{Name: name}
	}
	return devices, nil
}

// runs a comma separated name list query into a fixed buffer and splits it
func (d Device) nameList(query func(string, []byte) (Status, error)) ([]string, error) {
	var buf [LENGTH_CHANNEL_NAMES_BUFFER]byte
	status, err := query(d.Name, buf[:])
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return splitNameList(stringFromBuffer(buf[:])), nil
}

// runs a range query into a fixed value buffer and extracts the pairs
func (d Device) rangeList(query func(string, []float64) (Status, error)) ([]Range, error) {
	var values [MAX_RANGE_VALUES]float64
	status, err := query(d.Name, values[:])
	if err := apiErr(status, err); err != nil {
		return nil, err
	}
	return rangePairs(values[:]), nil
}

// AIPhysicalChans returns the analog input channel names of the device.
func (d Device) AIPhysicalChans() ([]string, error) {
	return d.nameList(APIGetDevAIPhysicalChans)
}

// AOPhysicalChans returns the analog output channel names of the device.
func (d Device) AOPhysicalChans() ([]string, error) {
	return d.nameList(APIGetDevAOPhysicalChans)
}

// DILines returns the digital input line names of the device.
func (d Device) DILines() ([]string, error) {
	return d.nameList(APIGetDevDILines)
}

// DOLines returns the digital output line names of the device.
func (d Device) DOLines() ([]string, error) {
	return d.nameList(APIGetDevDOLines)
}

// CIPhysicalChans returns the counter input channel names of the device.
func (d Device) CIPhysicalChans() ([]string, error) {
	return d.nameList(APIGetDevCIPhysicalChans)
}

// COPhysicalChans returns the counter output channel names of the device.
func (d Device) COPhysicalChans() ([]string, error) {
	return d.nameList(APIGetDevCOPhysicalChans)
}

// Terminals returns the terminal names of the device.
func (d Device) Terminals() ([]string, error) {
	return d.nameList(APIGetDevTerminals)
}

// AIVoltageRanges returns the supported analog input voltage ranges.
func (d Device) AIVoltageRanges() ([]Range, error) {
	return d.rangeList(APIGetDevAIVoltageRngs)
}

// AOVoltageRanges returns the supported analog output voltage ranges.
func (d Device) AOVoltageRanges() ([]Range, error) {
	return d.rangeList(APIGetDevAOVoltageRngs)
}

// AICurrentRanges returns the supported analog input current ranges.
func (d Device) AICurrentRanges() ([]Range, error) {
	return d.rangeList(APIGetDevAICurrentRngs)
}

// NumAIChans returns the number of analog input channels of the device.
func (d Device) NumAIChans() (int, error) {
	names, err := d.AIPhysicalChans()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// NumAOChans returns the number of analog output channels of the device.
func (d Device) NumAOChans() (int, error) {
	names, err := d.AOPhysicalChans()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// SerialNum returns the device serial number, zero for simulated devices.
func (d Device) SerialNum() (uint32, error) {
	status, num, err := APIGetDevSerialNum(d.Name)
	return num, apiErr(status, err)
}

// IsSimulated reports whether the device is simulated in MAX.
func (d Device) IsSimulated() (bool, error) {
	status, simulated, err := APIGetDevIsSimulated(d.Name)
	return simulated, apiErr(status, err)
}

// ProductType returns the product type string of the device, e.g. "USB-6001".
func (d Device) ProductType() (string, error) {
	var buf [LENGTH_CHANNEL_NAMES_BUFFER]byte
	status, err := APIGetDevProductType(d.Name, buf[:])
	if err := apiErr(status, err); err != nil {
		return "", err
	}
	return stringFromBuffer(buf[:]), nil
}

// AIMaxSingleChanRate returns the maximum single channel analog input rate.
func (d Device) AIMaxSingleChanRate() (float64, error) {
	status, rate, err := APIGetDevAIMaxSingleChanRate(d.Name)
	return rate, apiErr(status, err)
}

// AIMaxMultiChanRate returns the maximum aggregate analog input rate.
func (d Device) AIMaxMultiChanRate() (float64, error) {
	status, rate, err := APIGetDevAIMaxMultiChanRate(d.Name)
	return rate, apiErr(status, err)
}

// AOMaxRate returns the maximum analog output rate.
func (d Device) AOMaxRate() (float64, error) {
	status, rate, err := APIGetDevAOMaxRate(d.Name)
	return rate, apiErr(status, err)
}

// Reset aborts all tasks of the device and returns it to its default state.
func (d Device) Reset() error {
	return apiErr(APIResetDevice(d.Name))
}

// SelfTest runs the device self test.
func (d Device) SelfTest() error {
	return apiErr(APISelfTestDevice(d.Name))
}

// SelfCal runs a device self calibration. Takes up to several minutes on
// some hardware.
func (d Device) SelfCal() error {
	return apiErr(APISelfCal(d.Name))
}

// SysNIDAQVersion returns the major and minor version of the installed
// driver.
func SysNIDAQVersion() (uint32, uint32, error) {
	if err := LoadAPI(); err != nil {
		return 0, 0, err
	}
	status, major, err := APIGetSysNIDAQMajorVersion()
	if err := apiErr(status, err); err != nil {
		return 0, 0, err
	}
	status, minor, err := APIGetSysNIDAQMinorVersion()
	if err := apiErr(status, err); err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

// ErrorString returns the driver message for a status code.
func ErrorString(status Status) string {
	return lookupErrorString(status)
}
