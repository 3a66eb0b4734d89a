package audio

import (
	"math"
	"time"
)

// Generators produce samples procedurally; nothing is loaded from
// disk. Each implements beep.Streamer and runs forever, with the
// manager bounding playback via beep.Take.

// TickGenerator is the short wheel click, a high sine with a fast
// exponential decay
type TickGenerator struct {
	pos int
}

func NewTickGenerator() *TickGenerator {
	return &TickGenerator{}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		sample := tickAmplitude * math.Exp(-t*120) * math.Sin(2*math.Pi*tickFrequencyHz*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error { return nil }

// FlapGenerator is a wing whoosh: filtered noise over a falling sweep
type FlapGenerator struct {
	pos  int
	seed int64
	prev float64
}

func NewFlapGenerator() *FlapGenerator {
	return &FlapGenerator{seed: 0x5f3759df}
}

func (g *FlapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(flapDurationMs) / 1000
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		prog := math.Min(t/dur, 1)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		// one-pole low pass keeps the noise breathy instead of hissy
		g.prev += 0.12 * (noise - g.prev)

		freq := flapSweepTopHz - (flapSweepTopHz-flapSweepFloorHz)*prog
		body := math.Sin(2 * math.Pi * freq * t)

		envelope := math.Exp(-t * 28)
		sample := flapAmplitude * envelope * (0.6*g.prev + 0.4*body)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FlapGenerator) Err() error { return nil }

// ScoreGenerator is the two-tone coin ding
type ScoreGenerator struct {
	pos int
}

func NewScoreGenerator() *ScoreGenerator {
	return &ScoreGenerator{}
}

func (g *ScoreGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	split := sampleRate.N(60 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		freq := scoreNoteLowHz
		if g.pos >= split {
			freq = scoreNoteHighHz
		}
		envelope := math.Exp(-t * 14)
		sample := scoreAmplitude * envelope * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ScoreGenerator) Err() error { return nil }

// CrashGenerator is the impact: crackling noise over a low rumble
type CrashGenerator struct {
	pos  int
	seed int64
}

func NewCrashGenerator() *CrashGenerator {
	return &CrashGenerator{seed: time.Now().UnixNano()}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := crashRumbleAmplitude * math.Sin(2*math.Pi*crashRumbleHz*t)
		sample := envelope * (crashNoiseAmplitude*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error { return nil }

// FanfareGenerator plays the winner arpeggio, one soft-attack note at
// a time
type FanfareGenerator struct {
	pos int
}

func NewFanfareGenerator() *FanfareGenerator {
	return &FanfareGenerator{}
}

func (g *FanfareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteSamples := sampleRate.N(fanfareDurationMs * time.Millisecond / time.Duration(len(fanfareNotes)))
	for i := range samples {
		note := g.pos / noteSamples
		if note >= len(fanfareNotes) {
			note = len(fanfareNotes) - 1
		}
		notePos := g.pos % noteSamples
		nt := float64(notePos) / float64(sampleRate)

		attack := math.Min(nt/0.015, 1)
		decay := math.Exp(-nt * 6)
		freq := fanfareNotes[note]

		sample := fanfareAmplitude * attack * decay *
			(math.Sin(2*math.Pi*freq*nt) + 0.3*math.Sin(4*math.Pi*freq*nt))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FanfareGenerator) Err() error { return nil }

// LaunchGenerator is the rising sweep behind the heart launch
// animation
type LaunchGenerator struct {
	pos int
}

func NewLaunchGenerator() *LaunchGenerator {
	return &LaunchGenerator{}
}

func (g *LaunchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(launchDurationMs) / 1000
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		prog := math.Min(t/dur, 1)

		freq := launchSweepLowHz + (launchSweepHighHz-launchSweepLowHz)*prog*prog
		envelope := math.Sin(math.Pi * prog)
		vibrato := 1 + 0.01*math.Sin(2*math.Pi*30*t)

		sample := launchAmplitude * envelope * math.Sin(2*math.Pi*freq*vibrato*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaunchGenerator) Err() error { return nil }
