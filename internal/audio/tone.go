// Package audio synthesizes skybird's sound cues.
// Every cue is a short tone with an exponential fade, rendered on the fly as
// a beep stream. Nothing is loaded from disk.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Voice describes how a single note sounds.
type Voice struct {
	Wave     WaveType
	Duration time.Duration
	Volume   float64 // Peak gain, faded to fadeFloor over Duration
}

// Cue voices
var (
	jumpVoice     = Voice{Wave: WaveSquare, Duration: 100 * time.Millisecond, Volume: 0.05}
	longJumpVoice = Voice{Wave: WaveSaw, Duration: 300 * time.Millisecond, Volume: 0.03}
	musicVoice    = Voice{Wave: WaveTriangle, Duration: 500 * time.Millisecond, Volume: 0.02}
	gameOverVoice = Voice{Wave: WaveSine, Duration: 800 * time.Millisecond, Volume: 0.08}
)

// Note frequencies in Hz
const (
	jumpFreq     = 440
	longJumpFreq = 523
)

var (
	// C4 to C5 major scale
	musicNotes = []float64{262, 294, 330, 349, 392, 440, 494, 523}
	// The same scale, descending
	gameOverNotes = []float64{523, 494, 440, 392, 349, 330, 294, 262}
)

// fadeFloor is the gain every tone decays to at its end.
const fadeFloor = 0.01

// tone is an oscillator with an exponential decay envelope.
type tone struct {
	freq     float64
	wave     WaveType
	phase    float64
	position int
	total    int
	start    float64
	ratio    float64 // fadeFloor / start
	rate     beep.SampleRate
}

// NewTone creates a finite stream playing freq with the given voice.
func NewTone(freq float64, v Voice, rate beep.SampleRate) beep.Streamer {
	start := math.Max(v.Volume, fadeFloor)
	return &tone{
		freq:  freq,
		wave:  v.Wave,
		total: rate.N(v.Duration),
		start: start,
		ratio: fadeFloor / start,
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := t.gain() * waveAt(t.wave, t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain follows start * ratio^(position/total), reaching fadeFloor at the end.
func (t *tone) gain() float64 {
	if t.total == 0 {
		return 0
	}
	return t.start * math.Pow(t.ratio, float64(t.position)/float64(t.total))
}

// waveAt samples one period of the wave at phase in [0, 1).
func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Melody mixes notes so that note i starts i*interval after the first.
// Notes may overlap when the voice outlasts the interval.
func Melody(notes []float64, interval time.Duration, v Voice, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for i, freq := range notes {
		delay := rate.N(time.Duration(i) * interval)
		parts = append(parts, beep.Seq(beep.Silence(delay), NewTone(freq, v, rate)))
	}
	return beep.Mix(parts...)
}

// newVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume is made silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
