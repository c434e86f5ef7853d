package schedule

import (
	"testing"
	"time"
)

func TestTickerFires(t *testing.T) {
	tk := NewTicker()
	if tk.C() != nil {
		t.Fatal("stopped ticker should expose a nil channel")
	}

	tk.Start(5 * time.Millisecond)
	defer tk.Stop()

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("ticker did not fire")
	}
}

func TestTickerRestartReplacesTimer(t *testing.T) {
	tk := NewTicker()
	tk.Start(time.Hour)
	first := tk.C()

	tk.Start(5 * time.Millisecond)
	defer tk.Stop()
	if tk.C() == first {
		t.Fatal("Start did not replace the ticker")
	}
	if tk.Interval() != 5*time.Millisecond {
		t.Errorf("Interval() = %v", tk.Interval())
	}

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("replacement ticker did not fire")
	}
}

func TestTickerStop(t *testing.T) {
	tk := NewTicker()
	tk.Start(time.Millisecond)
	tk.Stop()
	if tk.C() != nil || tk.Interval() != 0 {
		t.Error("Stop left the ticker armed")
	}
}

func TestPollerDue(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	p := NewPoller(func() time.Time { return now })

	if p.Due(now.Add(time.Hour)) {
		t.Fatal("unstarted poller reported due")
	}

	p.Start(100 * time.Millisecond)
	if p.Due(base.Add(99 * time.Millisecond)) {
		t.Error("due before interval elapsed")
	}
	if !p.Due(base.Add(100 * time.Millisecond)) {
		t.Error("not due after interval")
	}
	// Fixed delay: the next tick counts from the previous one.
	if p.Due(base.Add(150 * time.Millisecond)) {
		t.Error("due again too early")
	}
	if !p.Due(base.Add(230 * time.Millisecond)) {
		t.Error("not due after second interval")
	}

	now = base.Add(time.Second)
	p.Start(50 * time.Millisecond)
	if p.Due(now.Add(40 * time.Millisecond)) {
		t.Error("restart did not re-arm from now")
	}
	if !p.Due(now.Add(50 * time.Millisecond)) {
		t.Error("not due after restarted interval")
	}

	p.Stop()
	if p.Due(now.Add(time.Hour)) {
		t.Error("stopped poller reported due")
	}
}
