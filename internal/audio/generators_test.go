package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls n samples from a streamer and returns the peak amplitude,
// failing the test on clipping or an early stop.
func drain(t *testing.T, s beep.Streamer, n int) float64 {
	t.Helper()

	var peak float64
	buf := make([][2]float64, 512)
	for n > 0 {
		want := len(buf)
		if n < want {
			want = n
		}
		got, ok := s.Stream(buf[:want])
		if !ok {
			t.Fatal("generator drained early")
		}
		for i := 0; i < got; i++ {
			for ch := 0; ch < 2; ch++ {
				v := math.Abs(buf[i][ch])
				if v > 1.0 {
					t.Fatalf("sample clipped: %f", buf[i][ch])
				}
				if v > peak {
					peak = v
				}
			}
		}
		n -= got
	}
	if err := s.Err(); err != nil {
		t.Fatalf("generator error: %v", err)
	}
	return peak
}

func TestHumGeneratorLoops(t *testing.T) {
	g := NewHumGenerator(sampleRate)
	// Stream well past one cycle; the loop must keep producing audible output.
	peak := drain(t, g, sampleRate.N(time.Second*4))
	if peak < 0.05 {
		t.Errorf("hum nearly silent, peak %f", peak)
	}
}

func TestSweepGenerator(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 180, 720, time.Millisecond*500)
	peak := drain(t, g, sampleRate.N(time.Millisecond*500))
	if peak < 0.1 {
		t.Errorf("sweep nearly silent, peak %f", peak)
	}
}

func TestToneGeneratorDecays(t *testing.T) {
	g := NewToneGenerator(sampleRate, 880)

	early := drain(t, g, sampleRate.N(time.Millisecond*100))
	drain(t, g, sampleRate.N(time.Millisecond*400)) // let the envelope fall
	late := drain(t, g, sampleRate.N(time.Millisecond*200))

	if early < 0.05 {
		t.Errorf("tone attack nearly silent, peak %f", early)
	}
	// Half a second into an exp(-6t) decay the tone is a tenth of its attack.
	if late > early/2 {
		t.Errorf("tone did not decay: early %f, late %f", early, late)
	}
}

func TestChordGenerator(t *testing.T) {
	g := NewChordGenerator(sampleRate, 220.00, 277.18, 329.63)
	peak := drain(t, g, sampleRate.N(time.Millisecond*300))
	if peak < 0.1 {
		t.Errorf("chord nearly silent, peak %f", peak)
	}
}

func TestArpeggioGeneratorGoesSilent(t *testing.T) {
	g := NewArpeggioGenerator(sampleRate, time.Millisecond*100, 523.25, 659.25)

	notes := drain(t, g, sampleRate.N(time.Millisecond*200))
	if notes < 0.05 {
		t.Errorf("arpeggio nearly silent, peak %f", notes)
	}

	// Past the last note only silence remains, but the stream stays open so
	// beep.Take controls the cutoff.
	tail := drain(t, g, sampleRate.N(time.Millisecond*200))
	if tail != 0 {
		t.Errorf("arpeggio tail not silent, peak %f", tail)
	}
}

func TestCrashGenerator(t *testing.T) {
	g := NewCrashGenerator(sampleRate)

	impact := drain(t, g, sampleRate.N(time.Millisecond*100))
	tail := drain(t, g, sampleRate.N(time.Second))

	if impact < 0.1 {
		t.Errorf("crash impact nearly silent, peak %f", impact)
	}
	if tail > impact {
		t.Errorf("crash grew louder over time: impact %f, tail %f", impact, tail)
	}
}

func TestGeneratorsReportNoError(t *testing.T) {
	gens := []beep.Streamer{
		NewHumGenerator(sampleRate),
		NewSweepGenerator(sampleRate, 100, 200, time.Millisecond*100),
		NewToneGenerator(sampleRate, 440),
		NewChordGenerator(sampleRate, 440, 550),
		NewArpeggioGenerator(sampleRate, time.Millisecond*50, 440),
		NewCrashGenerator(sampleRate),
	}
	for i, g := range gens {
		if err := g.Err(); err != nil {
			t.Errorf("generator %d reported error: %v", i, err)
		}
	}
}
