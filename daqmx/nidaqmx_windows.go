//go:build windows && amd64

package daqmx

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

/* Windows implementation of the driver call path. The NI-DAQmx driver
(nicaiu.dll) exports a cdecl C interface; on amd64 there is a single calling
convention, so every parameter travels as one machine word through
Proc.Call. */

const apiFileName = "nicaiu.dll"

// procedure handle for the NI-DAQmx driver
var apiHandle *windows.DLL

// proc handle for a single driver entry point, resolved by LoadAPI
type apiProc struct {
	name string
	proc *windows.Proc
}

// invokes the entry point and splits the result into the vendor status code
// and a normalized syscall error
func (p *apiProc) call(args ...uintptr) (Status, error) {
	if p.proc == nil {
		return StatusOK, ErrAPINotLoaded
	}
	r, _, errno := p.proc.Call(args...)
	return Status(int32(uint32(r))), syscallErr(errno)
}

// Loads the NI-DAQmx driver (nicaiu.dll) and resolves all registered entry
// points. Safe to call repeatedly, only the first call does work.
func LoadAPI() error {
	if apiLoaded {
		return nil
	}

	loadStart := time.Now()
	dll, err := windows.LoadDLL(apiFileName)
	if err != nil {
		return fmt.Errorf("national instruments driver %v is not available: %w", apiFileName, err)
	}

	var missing []string
	for _, p := range apiProcs {
		p.proc, err = dll.FindProc(p.name)
		if err != nil {
			missing = append(missing, p.name)
		}
	}
	if len(missing) > 0 {
		for _, p := range apiProcs {
			p.proc = nil
		}
		dll.Release()
		return fmt.Errorf("could not load pointers to daqmx functions: %v", strings.Join(missing, ", "))
	}

	apiHandle = dll
	apiLoaded = true
	loadTime = time.Since(loadStart)
	return nil
}

// Unloads the NI-DAQmx driver. Outstanding task handles are invalid
// afterwards.
func UnloadAPI() error {
	for _, p := range apiProcs {
		p.proc = nil
	}
	apiLoaded = false

	if apiHandle == nil {
		return nil
	}
	err := apiHandle.Release()
	apiHandle = nil
	return err
}

// The driver invokes event callbacks through cdecl function pointers on a
// driver managed thread. One trampoline per event kind is created up front
// and dispatches into the Go callback registry by task handle; the registry
// keeps the Go closures reachable for the lifetime of the registration.
var (
	everyNSamplesThunk = windows.NewCallbackCDecl(everyNSamplesEvent)
	doneThunk          = windows.NewCallbackCDecl(doneEvent)
	signalThunk        = windows.NewCallbackCDecl(signalEvent)
)

func everyNSamplesEventPtr() uintptr { return everyNSamplesThunk }
func doneEventPtr() uintptr          { return doneThunk }
func signalEventPtr() uintptr        { return signalThunk }

func everyNSamplesEvent(taskHandle, everyNsamplesEventType, nSamples, callbackData uintptr) uintptr {
	task, cb := lookupEveryNSamplesCallback(TaskHandle(taskHandle))
	if cb != nil {
		cb(task, EveryNSamplesEventType(int32(everyNsamplesEventType)), uint32(nSamples))
	}
	return 0
}

func doneEvent(taskHandle, status, callbackData uintptr) uintptr {
	task, cb := lookupDoneCallback(TaskHandle(taskHandle))
	if cb != nil {
		cb(task, Status(int32(uint32(status))))
	}
	return 0
}

func signalEvent(taskHandle, signalID, callbackData uintptr) uintptr {
	task, cb := lookupSignalCallback(TaskHandle(taskHandle))
	if cb != nil {
		cb(task, Signal(int32(signalID)))
	}
	return 0
}

// helper function to handle the syscall return value
func syscallErr(err error) error {
	if err == nil {
		return nil
	}
	errno, ok := err.(syscall.Errno)
	if !ok {
		return err
	}
	if errno == 0 {
		return nil
	}

	// set by the driver's fixed-size string queries, not a call failure
	if errno == syscall.ERROR_INSUFFICIENT_BUFFER {
		return nil
	}

	return errors.New(errno.Error())
}
