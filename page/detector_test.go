package page

import (
	"testing"
	"time"
)

func TestDetectorAcquisitionFailure(t *testing.T) {
	d := NewDetector(time.Hour, nil)
	defer d.Stop()

	d.Fail()
	if d.Mode() != ModeFallback {
		t.Errorf("Expected fallback after failure, got %v", d.Mode())
	}
}

func TestDetectorSceneReadyBeforeDeadline(t *testing.T) {
	d := NewDetector(time.Hour, nil)
	defer d.Stop()

	if !d.SceneReady() {
		t.Fatal("Expected scene to be accepted while probing")
	}
	if d.Mode() != ModeLive {
		t.Errorf("Expected live mode after accepted build, got %v", d.Mode())
	}
}

func TestDetectorDeadlineForcesFallback(t *testing.T) {
	done := make(chan Mode, 2)
	d := NewDetector(10*time.Millisecond, func(m Mode) { done <- m })
	defer d.Stop()

	select {
	case m := <-done:
		if m != ModeFallback {
			t.Errorf("Expected fallback transition, got %v", m)
		}
	case <-time.After(time.Second):
		t.Fatal("Deadline never fired")
	}
	if d.Mode() != ModeFallback {
		t.Errorf("Expected fallback after deadline, got %v", d.Mode())
	}
}

func TestDetectorLateSuccessIgnored(t *testing.T) {
	d := NewDetector(time.Hour, nil)
	defer d.Stop()

	d.Fail()
	if d.SceneReady() {
		t.Error("Expected late build success to be discarded after fallback")
	}
	if d.Mode() != ModeFallback {
		t.Errorf("Fallback must be terminal, got %v", d.Mode())
	}
}

// The deadline is deliberately not cancelled by a successful mount: a live
// scene is still demoted when the window closes
func TestDetectorDeadlineDemotesLiveScene(t *testing.T) {
	done := make(chan Mode, 2)
	d := NewDetector(100*time.Millisecond, func(m Mode) { done <- m })
	defer d.Stop()

	if !d.SceneReady() {
		t.Fatal("Expected scene accepted")
	}
	if d.Mode() != ModeLive {
		t.Fatalf("Expected live before deadline, got %v", d.Mode())
	}

	deadline := time.After(time.Second)
	for {
		select {
		case m := <-done:
			if m == ModeFallback {
				if d.Mode() != ModeFallback {
					t.Errorf("Expected fallback after deadline, got %v", d.Mode())
				}
				return
			}
		case <-deadline:
			t.Fatal("Deadline never demoted the live scene")
		}
	}
}

func TestDetectorStopCancelsDeadline(t *testing.T) {
	d := NewDetector(100*time.Millisecond, nil)
	if !d.SceneReady() {
		t.Fatal("Expected scene accepted")
	}
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	if d.Mode() != ModeLive {
		t.Errorf("Stopped detector must not fire its deadline, got %v", d.Mode())
	}
}

func TestDetectorTransitionsMonotone(t *testing.T) {
	d := NewDetector(time.Hour, nil)
	defer d.Stop()

	if d.Mode() != ModeProbing {
		t.Fatalf("Expected initial probing, got %v", d.Mode())
	}
	d.SceneReady()
	d.Fail()
	d.Fail() // idempotent
	if d.Mode() != ModeFallback {
		t.Errorf("Expected terminal fallback, got %v", d.Mode())
	}
	if d.SceneReady() {
		t.Error("No transition may leave fallback")
	}
}
