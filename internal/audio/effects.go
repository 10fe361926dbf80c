package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType is an oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// sample returns the wave value at phase p in [0, 1).
func (w WaveType) sample(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator generates duration worth of a wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := o.wave.sample(o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.position++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	if e.attackSamples > 0 && e.position < e.attackSamples {
		return float64(e.position) / float64(e.attackSamples)
	}
	if e.releaseSamples > 0 && e.position >= e.totalSamples-e.releaseSamples {
		return math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Note is one chorused triangle tone inside a phrase. Offsets are from the
// start of the phrase.
type Note struct {
	Freq     float64
	Start    time.Duration
	Duration time.Duration
	Volume   float64 // level the note fades out from
}

const (
	noteGain    = 0.1
	noteRelease = 50 * time.Millisecond
)

// phrase renders notes once, or repeatedly every period when period > 0.
type phrase struct {
	notes  []Note
	rate   beep.SampleRate
	length int
	period int
	pos    int
}

// NewPhrase renders notes as one streamer. A positive period loops the
// phrase forever.
func NewPhrase(notes []Note, period time.Duration, rate beep.SampleRate) beep.Streamer {
	p := &phrase{notes: notes, rate: rate, period: rate.N(period)}
	for _, n := range notes {
		if end := rate.N(n.Start + n.Duration); end > p.length {
			p.length = end
		}
	}
	return p
}

func (p *phrase) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		at := p.pos
		if p.period > 0 {
			at %= p.period
		} else if at >= p.length {
			return i, i > 0
		}
		v := p.at(at)
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
	}
	return len(samples), true
}

func (p *phrase) at(pos int) float64 {
	sum := 0.0
	for _, n := range p.notes {
		start := p.rate.N(n.Start)
		end := start + p.rate.N(n.Duration)
		if pos < start || pos >= end {
			continue
		}
		t := p.rate.D(pos - start).Seconds()

		// Two detuned voices give the chorus.
		v := (WaveTriangle.sample(frac((n.Freq+1)*t)) + WaveTriangle.sample(frac((n.Freq-2)*t))) / 2

		gain := noteGain
		if release := p.rate.N(noteRelease); end-pos <= release {
			gain = n.Volume * float64(end-pos) / float64(release)
		}
		sum += v * gain
	}
	return sum
}

func (p *phrase) Err() error { return nil }

func frac(x float64) float64 { return x - math.Floor(x) }

const (
	footstepPeriod = 280 * time.Millisecond
	eighth         = 116 * time.Millisecond
	quarter        = 232 * time.Millisecond
)

// JumpSound is a short rising square blip.
func JumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 90 * time.Millisecond
	low := NewEnvelope(NewOscillator(440, d/2, WaveSquare, rate), d/2, 5*time.Millisecond, 10*time.Millisecond, rate)
	high := NewEnvelope(NewOscillator(660, d/2, WaveSquare, rate), d/2, 5*time.Millisecond, 30*time.Millisecond, rate)
	return newVolume(beep.Seq(low, high), 0.2*vol)
}

// CrashSound is a noise burst over a low thud.
func CrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 300 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate)
	thud := NewEnvelope(NewOscillator(80, d, WaveSine, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.4), newVolume(thud, 0.6)), 0.3*vol)
}

// AchievementSound is a two-note chime.
func AchievementSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, 80*time.Millisecond, WaveSquare, rate), 80*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, 200*time.Millisecond, WaveSquare, rate), 200*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.15*vol)
}

// BackgroundNotes open a run in audio cue mode.
var BackgroundNotes = []Note{
	{Freq: 493.883, Duration: eighth, Volume: 0.01},
	{Freq: 659.255, Start: eighth, Duration: quarter, Volume: 0.01},
}

// FootstepNotes repeat every footstepPeriod while the actor runs.
var FootstepNotes = []Note{
	{Freq: 73.42, Duration: 50 * time.Millisecond, Volume: 0.16},
	{Freq: 69.3, Start: eighth, Duration: eighth, Volume: 0.16},
}

// LiftNotes play when the footsteps stop for a jump.
var LiftNotes = []Note{
	{Freq: 103.83, Duration: quarter, Volume: 0.02},
	{Freq: 116.54, Start: eighth, Duration: quarter, Volume: 0.02},
}

// JumpCueNotes warn that an obstacle is close.
var JumpCueNotes = []Note{
	{Freq: 659.25, Duration: eighth, Volume: 0.3},
	{Freq: 880, Start: eighth, Duration: quarter, Volume: 0.3},
}

// jumpCuePan places the jump cue to the left.
const jumpCuePan = -0.6

// JumpCue renders JumpCueNotes panned to the left.
func JumpCue(rate beep.SampleRate, vol float64) beep.Streamer {
	return &effects.Pan{Streamer: newVolume(NewPhrase(JumpCueNotes, 0, rate), vol), Pan: jumpCuePan}
}
