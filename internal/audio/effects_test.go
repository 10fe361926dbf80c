package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s until it ends or max samples were produced.
func drain(s beep.Streamer, max int) (int, [][2]float64) {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < max {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return len(out), out
}

func TestOscillatorBounded(t *testing.T) {
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
		{"noise", WaveNoise},
	}
	for _, tc := range waves {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tc.wave, testRate)
			n, samples := drain(osc, 1<<20)
			if expected := testRate.N(50 * time.Millisecond); n != expected {
				t.Errorf("samples = %d, expected %d", n, expected)
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v out of range", i, s)
				}
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	_, samples := drain(NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate), 1<<20)
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d = %v, expected +-1", i, s[0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	n, samples := drain(env, 1<<20)

	if expected := testRate.N(d); n != expected {
		t.Fatalf("samples = %d, expected %d", n, expected)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at attack start", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %v, expected 1", mid)
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %v, expected the release tail", last)
	}
}

func TestPhraseLength(t *testing.T) {
	n, _ := drain(NewPhrase(BackgroundNotes, 0, testRate), 1<<20)
	if expected := testRate.N(eighth + quarter); n != expected {
		t.Errorf("samples = %d, expected %d", n, expected)
	}
}

func TestFootstepsLoop(t *testing.T) {
	s := NewPhrase(FootstepNotes, footstepPeriod, testRate)
	limit := testRate.N(2 * time.Second)
	n, samples := drain(s, limit)
	if n < limit {
		t.Fatalf("footsteps ended after %d samples", n)
	}

	// Nothing sounds between the second step and the next period.
	gap := testRate.N(eighth + eighth)
	period := testRate.N(footstepPeriod)
	for i := period + gap; i < 2*period; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d = %v in the gap, expected silence", i, samples[i][0])
		}
	}

	// Each period repeats the first.
	for i := 0; i < period; i++ {
		if samples[i][0] != samples[i+period][0] {
			t.Fatalf("sample %d differs across periods", i)
		}
	}
}

func TestPhraseLevel(t *testing.T) {
	_, samples := drain(NewPhrase(JumpCueNotes, 0, testRate), 1<<20)
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 0.3 {
		t.Errorf("peak = %v, expected within (0, 0.3]", peak)
	}
}

func TestSoundsEnd(t *testing.T) {
	sounds := []struct {
		name string
		s    beep.Streamer
	}{
		{"jump", JumpSound(testRate, 1)},
		{"crash", CrashSound(testRate, 1)},
		{"achievement", AchievementSound(testRate, 1)},
		{"jump cue", JumpCue(testRate, 1)},
	}
	limit := testRate.N(time.Second)
	for _, tc := range sounds {
		t.Run(tc.name, func(t *testing.T) {
			if n, _ := drain(tc.s, limit); n >= limit {
				t.Errorf("%s did not end within a second", tc.name)
			}
		})
	}
}
