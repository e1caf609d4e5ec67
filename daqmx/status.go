package daqmx

import "fmt"

// Status is the vendor defined return code of every driver entry point.
// Zero is success, negative values are errors, positive values are warnings.
type Status int32

const StatusOK Status = 0

// Reports whether the status is a driver error (negative code)
func (s Status) IsError() bool {
	return s < 0
}

// Reports whether the status is a driver warning (positive code)
func (s Status) IsWarning() bool {
	return s > 0
}

// Err resolves a failing status into a DAQError carrying the driver supplied
// message. Returns nil for success and for warnings.
func (s Status) Err() error {
	if !s.IsError() {
		return nil
	}
	return &DAQError{Code: s, Message: lookupErrorString(s)}
}

// DAQError wraps a vendor error code together with the message resolved
// through DAQmxGetErrorString. The binding performs no classification beyond
// forwarding the code.
type DAQError struct {
	Code    Status
	Message string
}

func (e *DAQError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("daqmx: error %d", e.Code)
	}
	return fmt.Sprintf("daqmx: error %d: %s", e.Code, e.Message)
}

// resolves the driver message for a status code, falling back to the extended
// error info of the calling thread when the lookup itself fails
func lookupErrorString(s Status) string {
	var buf [LENGTH_ERROR_BUFFER]byte
	status, err := APIGetErrorString(s, buf[:])
	if err == nil && status == StatusOK {
		return stringFromBuffer(buf[:])
	}

	var ext [LENGTH_EXT_ERROR_BUFFER]byte
	status, err = APIGetExtendedErrorInfo(ext[:])
	if err == nil && status == StatusOK {
		return stringFromBuffer(ext[:])
	}
	return ""
}
