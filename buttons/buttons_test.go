package buttons

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestNewRequiresPin(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("New(nil, nil) should fail")
	}
}

func TestPollTransition(t *testing.T) {
	pin := &gpiotest.Pin{N: "A", L: gpio.High}
	b, err := New(pin, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if b.IsPressed() {
		t.Error("button should start released")
	}

	// Released, no change.
	if tr := b.PollTransition(); tr.WasPressed || tr.IsPressed {
		t.Errorf("PollTransition() = %+v, want released->released", tr)
	}

	// The pin is active low.
	pin.L = gpio.Low
	if tr := b.PollTransition(); tr.WasPressed || !tr.IsPressed {
		t.Errorf("PollTransition() = %+v, want released->pressed", tr)
	}
	if !b.IsPressed() {
		t.Error("IsPressed() = false after a pressed poll")
	}

	// Held down.
	if tr := b.PollTransition(); !tr.WasPressed || !tr.IsPressed {
		t.Errorf("PollTransition() = %+v, want pressed->pressed", tr)
	}

	pin.L = gpio.High
	if tr := b.PollTransition(); !tr.WasPressed || tr.IsPressed {
		t.Errorf("PollTransition() = %+v, want pressed->released", tr)
	}
}

func TestPollEvent(t *testing.T) {
	pin := &gpiotest.Pin{N: "A", L: gpio.High}
	b, err := New(pin, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, ok := b.PollEvent(); ok {
		t.Error("unexpected event while released")
	}

	pin.L = gpio.Low
	if ev, ok := b.PollEvent(); !ok || ev != Press {
		t.Errorf("PollEvent() = %v, %v, want Press", ev, ok)
	}
	if _, ok := b.PollEvent(); ok {
		t.Error("unexpected event while held")
	}

	pin.L = gpio.High
	if ev, ok := b.PollEvent(); !ok || ev != Release {
		t.Errorf("PollEvent() = %v, %v, want Release", ev, ok)
	}
}

func TestFirstPollSynthesisesPress(t *testing.T) {
	// If the switch is already closed at construction time, the first
	// poll reports Press: the button behaves as if it had been
	// released beforehand.
	pin := &gpiotest.Pin{N: "A", L: gpio.Low}
	b, err := New(pin, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if ev, ok := b.PollEvent(); !ok || ev != Press {
		t.Errorf("first PollEvent() = %v, %v, want Press", ev, ok)
	}
}

func TestButtonWithCountingDebouncer(t *testing.T) {
	pin := &gpiotest.Pin{N: "A", L: gpio.Low}
	b, err := New(pin, &Opts{Debouncer: &CountingDebouncer{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// The debounced state lags the raw state by the counter
	// threshold.
	for i := 1; i <= 8; i++ {
		if ev, ok := b.PollEvent(); ok {
			t.Fatalf("unexpected event %v on sample %d", ev, i)
		}
	}
	if ev, ok := b.PollEvent(); !ok || ev != Press {
		t.Errorf("PollEvent() on sample 9 = %v, %v, want Press", ev, ok)
	}
}

func TestEventFromTransition(t *testing.T) {
	tests := []struct {
		name      string
		tr        Transition
		wantEvent TransitionEvent
		wantOK    bool
	}{
		{"press", Transition{WasPressed: false, IsPressed: true}, Press, true},
		{"release", Transition{WasPressed: true, IsPressed: false}, Release, true},
		{"still released", Transition{}, 0, false},
		{"still pressed", Transition{WasPressed: true, IsPressed: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := EventFromTransition(tt.tr)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && ev != tt.wantEvent {
				t.Errorf("event = %v, want %v", ev, tt.wantEvent)
			}
		})
	}
}
