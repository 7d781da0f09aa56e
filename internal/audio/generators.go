package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const twoPi = 2 * math.Pi

// HumGenerator produces the endless engine-idle loop: a low fundamental with
// two harmonics, wobbling slightly in pitch like an engine hunting at idle.
// It never drains; the mixer keeps it until its Ctrl is detached.
type HumGenerator struct {
	sr    beep.SampleRate
	pos   int
	cycle int
	phase float64
}

// NewHumGenerator creates the engine hum loop generator.
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{
		sr:    sr,
		cycle: sr.N(time.Millisecond * 1800),
	}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cyclePos := float64(g.pos%g.cycle) / float64(g.cycle)

		// Rev wobble between 52 and 68 Hz
		freq := 60 + 8*math.Sin(twoPi*cyclePos)

		// Integrate phase so the pitch slide stays click-free
		g.phase += twoPi * freq / float64(g.sr)
		if g.phase >= twoPi {
			g.phase -= twoPi
		}

		sample := 0.10*math.Sin(g.phase) + 0.05*math.Sin(2*g.phase) + 0.025*math.Sin(3*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one frequency to another over a fixed duration,
// with a sine-bow amplitude envelope. Used for the intro swoosh and the
// ignition rev-up.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	dur      float64
	phase    float64
	pos      int
}

// NewSweepGenerator creates a frequency sweep generator.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, dur time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:   sr,
		from: from,
		to:   to,
		dur:  dur.Seconds(),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		k := t / g.dur
		if k > 1 {
			k = 1
		}

		freq := g.from + (g.to-g.from)*k
		g.phase += twoPi * freq / float64(g.sr)
		if g.phase >= twoPi {
			g.phase -= twoPi
		}

		// Swells in and out across the sweep
		envelope := math.Sin(math.Pi * k)
		sample := envelope * (0.20*math.Sin(g.phase) + 0.08*math.Sin(2*g.phase) + 0.04*math.Sin(3*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ToneGenerator produces a single pitch with a fast attack and exponential
// decay. Covers the countdown beeps, the GO note, and the shield thud.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a decaying tone generator.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.01, 1.0)
		envelope := attack * math.Exp(-t*6)

		sample := envelope * (0.25*math.Sin(twoPi*g.freq*t) + 0.08*math.Sin(twoPi*2*g.freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ChordGenerator plays several pitches at once with a slow ring-out.
type ChordGenerator struct {
	sr    beep.SampleRate
	freqs []float64
	pos   int
}

// NewChordGenerator creates a chord generator over the given frequencies.
func NewChordGenerator(sr beep.SampleRate, freqs ...float64) *ChordGenerator {
	return &ChordGenerator{
		sr:    sr,
		freqs: freqs,
	}
}

func (g *ChordGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.02, 1.0)
		envelope := attack * math.Exp(-t*3)

		var sum float64
		for _, f := range g.freqs {
			sum += 0.12 * math.Sin(twoPi*f*t)
		}
		sample := envelope * sum

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChordGenerator) Err() error {
	return nil
}

// ArpeggioGenerator steps through notes one after another, each with its own
// pluck envelope. After the last note it emits silence until cut off.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	notes []float64
	noteN int
	pos   int
}

// NewArpeggioGenerator creates a note-run generator; noteDur is the length
// of each step.
func NewArpeggioGenerator(sr beep.SampleRate, noteDur time.Duration, notes ...float64) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:    sr,
		notes: notes,
		noteN: sr.N(noteDur),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.noteN

		var sample float64
		if idx < len(g.notes) {
			local := g.pos % g.noteN
			t := float64(local) / float64(g.sr)

			attack := math.Min(t/0.005, 1.0)
			envelope := attack * math.Exp(-t*12)
			sample = 0.22 * envelope * math.Sin(twoPi*g.notes[idx]*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// CrashGenerator produces the collision sound: a sharp noise impact over a
// low rumble, dying out quickly.
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrashGenerator creates a crash sound generator.
func NewCrashGenerator(sr beep.SampleRate) *CrashGenerator {
	return &CrashGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		impact := 0.5 * math.Exp(-t*40) * noise
		rumble := 0.30 * envelope * math.Sin(twoPi*70*t)
		body := 0.25 * envelope * noise

		sample := impact + rumble + body

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
