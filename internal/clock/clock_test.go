package clock

import (
	"testing"
	"time"
)

func TestManualFiresOnlyWhenDue(t *testing.T) {
	m := NewManual()
	fired := 0
	m.AfterFunc(time.Second, func() { fired++ })

	m.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired before due: %d", fired)
	}

	m.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 fire, got %d", fired)
	}

	m.Advance(time.Hour)
	if fired != 1 {
		t.Errorf("one-shot action fired again: %d", fired)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop() on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	m.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestManualStopAfterFire(t *testing.T) {
	m := NewManual()
	timer := m.AfterFunc(10*time.Millisecond, func() {})
	m.Advance(10 * time.Millisecond)

	if timer.Stop() {
		t.Error("Stop() after fire should return false")
	}
}

func TestManualOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(time.Second)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("fire order = %v, expected [a b c]", order)
	}
	if m.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, expected 1s", m.Elapsed())
	}
}

func TestManualNestedSchedule(t *testing.T) {
	m := NewManual()
	fired := 0
	m.AfterFunc(100*time.Millisecond, func() {
		fired++
		m.AfterFunc(100*time.Millisecond, func() { fired++ })
	})

	m.Advance(150 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 fire, got %d", fired)
	}
	m.Advance(50 * time.Millisecond)
	if fired != 2 {
		t.Errorf("nested action should fire at 200ms, fired=%d", fired)
	}
}

func TestRealAfterFunc(t *testing.T) {
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Real timer never fired")
	}
}

func TestRealStop(t *testing.T) {
	timer := Real{}.AfterFunc(time.Hour, func() {})
	if !timer.Stop() {
		t.Error("Stop() on pending real timer should return true")
	}
}
