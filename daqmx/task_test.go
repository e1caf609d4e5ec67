package daqmx

import "testing"

func TestEventRegistryLookup(t *testing.T) {
	task := &Task{handle: 0x1001}

	called := false
	registerEvents(task.handle, func(ev *taskEvents) {
		ev.task = task
		ev.everyNSamples = func(tsk *Task, eventType EveryNSamplesEventType, nSamples uint32) {
			called = true
		}
	})
	defer registerEvents(task.handle, func(ev *taskEvents) { *ev = taskEvents{} })

	got, cb := lookupEveryNSamplesCallback(task.handle)
	if got != task {
		t.Errorf("lookup returned task %v, want %v", got, task)
	}
	if cb == nil {
		t.Fatal("lookup returned nil callback")
	}
	cb(got, DAQmx_Val_Acquired_Into_Buffer, 100)
	if !called {
		t.Error("callback was not invoked")
	}
}

func TestEventRegistryUnknownHandle(t *testing.T) {
	if task, cb := lookupEveryNSamplesCallback(0xdead); task != nil || cb != nil {
		t.Error("lookup of unknown handle must return nil")
	}
	if task, cb := lookupDoneCallback(0xdead); task != nil || cb != nil {
		t.Error("lookup of unknown handle must return nil")
	}
	if task, cb := lookupSignalCallback(0xdead); task != nil || cb != nil {
		t.Error("lookup of unknown handle must return nil")
	}
}

func TestEventRegistryIndependentKinds(t *testing.T) {
	task := &Task{handle: 0x1002}

	registerEvents(task.handle, func(ev *taskEvents) {
		ev.task = task
		ev.done = func(tsk *Task, status Status) {}
	})
	defer registerEvents(task.handle, func(ev *taskEvents) { *ev = taskEvents{} })

	if _, cb := lookupDoneCallback(task.handle); cb == nil {
		t.Error("done callback missing after registration")
	}
	if _, cb := lookupEveryNSamplesCallback(task.handle); cb != nil {
		t.Error("every n samples callback present without registration")
	}
	if _, cb := lookupSignalCallback(task.handle); cb != nil {
		t.Error("signal callback present without registration")
	}
}

func TestEventRegistryUnregister(t *testing.T) {
	task := &Task{handle: 0x1003}

	registerEvents(task.handle, func(ev *taskEvents) {
		ev.task = task
		ev.signal = func(tsk *Task, signal Signal) {}
	})
	registerEvents(task.handle, func(ev *taskEvents) {
		ev.signal = nil
	})

	if _, cb := lookupSignalCallback(task.handle); cb != nil {
		t.Error("signal callback present after unregistration")
	}
	eventMu.Lock()
	_, ok := eventReg[task.handle]
	eventMu.Unlock()
	if ok {
		t.Error("empty registry entry was not removed")
	}
}

func TestClearDropsEventRegistrations(t *testing.T) {
	task := &Task{handle: 0x1004}
	registerEvents(task.handle, func(ev *taskEvents) {
		ev.task = task
		ev.everyNSamples = func(tsk *Task, eventType EveryNSamplesEventType, nSamples uint32) {}
		ev.done = func(tsk *Task, status Status) {}
	})

	// the driver call fails without loaded hardware, the local registrations
	// must go away regardless
	task.Clear()

	if _, cb := lookupEveryNSamplesCallback(task.handle); cb != nil {
		t.Error("every n samples callback present after Clear")
	}
	if _, cb := lookupDoneCallback(task.handle); cb != nil {
		t.Error("done callback present after Clear")
	}
}

func TestApiErrPrefersCallError(t *testing.T) {
	if err := apiErr(StatusOK, ErrAPINotLoaded); err != ErrAPINotLoaded {
		t.Errorf("got %v, want %v", err, ErrAPINotLoaded)
	}
	if err := apiErr(Status(-200088), nil); err == nil {
		t.Error("error status must produce an error")
	}
	if err := apiErr(StatusOK, nil); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}
