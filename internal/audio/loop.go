package audio

import (
	"context"
	"time"

	"github.com/gopxl/beep"
)

// Loop repeats a note sequence at a fixed cadence until it is cancelled or
// its Alive predicate turns false.
type Loop struct {
	Notes    []float64
	Interval time.Duration
	Voice    Voice
	Play     func(beep.Streamer)
	Alive    func() bool // Checked before every note; nil means always alive
}

// Run plays the first note immediately and one more per interval.
// It blocks until ctx is done or Alive reports false.
func (l *Loop) Run(ctx context.Context) {
	if len(l.Notes) == 0 || l.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for i := 0; ; i = (i + 1) % len(l.Notes) {
		if ctx.Err() != nil || (l.Alive != nil && !l.Alive()) {
			return
		}
		l.Play(NewTone(l.Notes[i], l.Voice, sampleRate))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
