package audio

import (
	"testing"
)

// TestManagerGracefulDegradation verifies every effect is safe to
// trigger without initialization
func TestManagerGracefulDegradation(t *testing.T) {
	m := NewManager(true)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	m.PlaySpinTick()
	m.PlayFanfare()
	m.PlayFlap()
	m.PlayScore()
	m.PlayCrash()
	m.PlayLaunch()
	m.Cleanup()
}

// TestManagerDisabledNeverInitializes verifies a muted manager stays
// silent and error-free
func TestManagerDisabledNeverInitializes(t *testing.T) {
	m := NewManager(false)
	if err := m.Initialize(); err != nil {
		t.Errorf("disabled manager should not touch the speaker, got: %v", err)
	}
	if m.initialized {
		t.Error("disabled manager must not mark itself initialized")
	}
	m.PlayFanfare()
	m.Cleanup()
}

// TestManagerInitialization verifies init and cleanup when a speaker
// is present. Failure is expected on machines without audio devices.
func TestManagerInitialization(t *testing.T) {
	m := NewManager(true)

	err := m.Initialize()
	if err != nil {
		t.Logf("speaker init failed (expected without an audio device): %v", err)
		return
	}

	if err := m.Initialize(); err != nil {
		t.Errorf("second initialize should be a no-op, got: %v", err)
	}
	m.Cleanup()
}

// TestManagerOperationsAfterCleanup verifies post-cleanup calls are
// no-ops
func TestManagerOperationsAfterCleanup(t *testing.T) {
	m := NewManager(true)
	if err := m.Initialize(); err != nil {
		t.Logf("speaker init failed (expected without an audio device): %v", err)
	}
	m.Cleanup()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked after cleanup: %v", r)
		}
	}()
	m.PlaySpinTick()
	m.PlayCrash()
}

// TestTunableRanges verifies the sound constants stay in sane ranges
func TestTunableRanges(t *testing.T) {
	amplitudes := []struct {
		name  string
		value float64
	}{
		{"tickAmplitude", tickAmplitude},
		{"flapAmplitude", flapAmplitude},
		{"scoreAmplitude", scoreAmplitude},
		{"crashNoiseAmplitude", crashNoiseAmplitude},
		{"crashRumbleAmplitude", crashRumbleAmplitude},
		{"fanfareAmplitude", fanfareAmplitude},
		{"launchAmplitude", launchAmplitude},
	}
	for _, amp := range amplitudes {
		if amp.value <= 0 || amp.value > 1.0 {
			t.Errorf("%s should be in (0, 1], got %f", amp.name, amp.value)
		}
	}

	frequencies := []struct {
		name  string
		value float64
	}{
		{"tickFrequencyHz", tickFrequencyHz},
		{"flapSweepTopHz", flapSweepTopHz},
		{"flapSweepFloorHz", flapSweepFloorHz},
		{"scoreNoteLowHz", scoreNoteLowHz},
		{"scoreNoteHighHz", scoreNoteHighHz},
		{"crashRumbleHz", crashRumbleHz},
		{"launchSweepLowHz", launchSweepLowHz},
		{"launchSweepHighHz", launchSweepHighHz},
	}
	for _, freq := range frequencies {
		if freq.value < 20 || freq.value > 5000 {
			t.Errorf("%s should be audible (20-5000 Hz), got %f", freq.name, freq.value)
		}
	}

	for i, f := range fanfareNotes {
		if f < 200 || f > 2000 {
			t.Errorf("fanfare note %d out of range: %f", i, f)
		}
	}
}
