// Package audio plays procedural sound effects for both widgets. The
// speaker may be unavailable (CI, headless boxes, muted kiosks); every
// entry point degrades to silence instead of failing.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Manager owns the mixer and the initialized/enabled guards. All
// methods are safe before Initialize and after Cleanup.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	lastTick    time.Time
}

// NewManager creates a manager. A disabled manager never touches the
// speaker.
func NewManager(enabled bool) *Manager {
	return &Manager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize opens the speaker and starts the mixer. Disabled or
// already-initialized managers return nil immediately.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDurationMs*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything. Safe without Initialize.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// play queues a bounded one-shot on the mixer
func (m *Manager) play(d time.Duration, s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}

// PlaySpinTick clicks as a wedge boundary passes the pointer,
// rate-limited so dense crossings stay a clatter instead of a roar
func (m *Manager) PlaySpinTick() {
	m.mu.Lock()
	if !m.initialized || time.Since(m.lastTick) < tickMinIntervalMs*time.Millisecond {
		m.mu.Unlock()
		return
	}
	m.lastTick = time.Now()
	m.mu.Unlock()

	m.play(tickDurationMs*time.Millisecond, NewTickGenerator())
}

// PlayFanfare celebrates a settled winner
func (m *Manager) PlayFanfare() {
	m.play(fanfareDurationMs*time.Millisecond, NewFanfareGenerator())
}

// PlayFlap is the wing whoosh
func (m *Manager) PlayFlap() {
	m.play(flapDurationMs*time.Millisecond, NewFlapGenerator())
}

// PlayScore dings when a pipe is cleared
func (m *Manager) PlayScore() {
	m.play(scoreDurationMs*time.Millisecond, NewScoreGenerator())
}

// PlayCrash marks the end of a run
func (m *Manager) PlayCrash() {
	m.play(crashDurationMs*time.Millisecond, NewCrashGenerator())
}

// PlayLaunch accompanies the heart launch animation
func (m *Manager) PlayLaunch() {
	m.play(launchDurationMs*time.Millisecond, NewLaunchGenerator())
}
