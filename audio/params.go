package audio

import "github.com/gopxl/beep"

const (
	sampleRate              = beep.SampleRate(48000)
	speakerBufferDurationMs = 100
)

// One-shot durations
const (
	tickDurationMs    = 30
	flapDurationMs    = 90
	scoreDurationMs   = 260
	crashDurationMs   = 350
	fanfareDurationMs = 740
	launchDurationMs  = 650
)

// tickMinIntervalMs rate-limits the wheel click; a fast wheel crosses
// several boundaries per frame and stacking a streamer per crossing
// turns the click into noise
const tickMinIntervalMs = 35

// Frequencies in Hz
const (
	tickFrequencyHz   = 1480.0
	flapSweepTopHz    = 420.0
	flapSweepFloorHz  = 150.0
	scoreNoteLowHz    = 987.77  // B5
	scoreNoteHighHz   = 1318.51 // E6
	crashRumbleHz     = 80.0
	launchSweepLowHz  = 200.0
	launchSweepHighHz = 900.0
)

// Amplitudes, pre-mix
const (
	tickAmplitude        = 0.18
	flapAmplitude        = 0.22
	scoreAmplitude       = 0.2
	crashNoiseAmplitude  = 0.25
	crashRumbleAmplitude = 0.3
	fanfareAmplitude     = 0.22
	launchAmplitude      = 0.2
)

// fanfareNotes is the winner arpeggio, C5 E5 G5 C6
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}
