package daqmx

import (
	"errors"
	"testing"
)

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		isError bool
		isWarn  bool
	}{
		{"success", StatusOK, false, false},
		{"error", -200088, true, false},
		{"warning", 200010, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsError(); got != tt.isError {
				t.Errorf("IsError() = %v, want %v", got, tt.isError)
			}
			if got := tt.status.IsWarning(); got != tt.isWarn {
				t.Errorf("IsWarning() = %v, want %v", got, tt.isWarn)
			}
		})
	}
}

func TestStatusErrNilForSuccessAndWarning(t *testing.T) {
	if err := StatusOK.Err(); err != nil {
		t.Errorf("Err() on success = %v, want nil", err)
	}
	if err := Status(200010).Err(); err != nil {
		t.Errorf("Err() on warning = %v, want nil", err)
	}
}

func TestStatusErrCarriesCode(t *testing.T) {
	err := Status(-200088).Err()
	if err == nil {
		t.Fatal("Err() on error status = nil")
	}
	var daqErr *DAQError
	if !errors.As(err, &daqErr) {
		t.Fatalf("Err() = %T, want *DAQError", err)
	}
	if daqErr.Code != -200088 {
		t.Errorf("Code = %d, want -200088", daqErr.Code)
	}
}

func TestDAQErrorMessage(t *testing.T) {
	err := &DAQError{Code: -200088, Message: "Task specified is invalid or does not exist."}
	want := "daqmx: error -200088: Task specified is invalid or does not exist."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDAQErrorWithoutMessage(t *testing.T) {
	// the message lookup needs a loaded driver; the code alone must suffice
	err := &DAQError{Code: -200088}
	want := "daqmx: error -200088"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
