package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skybird/internal/config"
)

// jumpDebounce is the minimum gap between two jump cues.
const jumpDebounce = 50 * time.Millisecond

// SoundManager plays the game's cues. Until Initialize succeeds (or when a
// player is injected with NewWithPlayer) every method is a no-op, so callers
// never need to check whether audio is available.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	play        func(beep.Streamer)
	volume      float64
	initialized bool
	device      bool // Speaker opened by Initialize

	lastJump  time.Time
	holdSince time.Time

	stopMusic context.CancelFunc
	musicDone chan struct{}
}

// NewSoundManager creates a silent manager; call Initialize to open the speaker.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{cfg: cfg, volume: 1}
}

// NewWithPlayer creates a manager that hands every stream to play instead of
// the speaker.
func NewWithPlayer(cfg config.AudioConfig, play func(beep.Streamer)) *SoundManager {
	return &SoundManager{
		cfg:         cfg,
		play:        play,
		volume:      1,
		initialized: true,
	}
}

// Initialize sets up the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	sm.play = func(s beep.Streamer) { speaker.Play(s) }
	sm.initialized = true
	sm.device = true
	return nil
}

// Enabled reports whether cues are audible.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume sets the master volume in [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// emit plays s at the master volume. Callers hold mu.
func (sm *SoundManager) emit(s beep.Streamer) {
	if !sm.initialized || sm.play == nil {
		return
	}
	sm.play(newVolume(s, sm.volume))
}

// Jump plays the jump cue and starts timing a hold.
// Cues closer than 50ms to the previous one are dropped.
func (sm *SoundManager) Jump(now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.holdSince = now
	if !sm.lastJump.IsZero() && now.Sub(sm.lastJump) < jumpDebounce {
		return
	}
	sm.lastJump = now
	sm.emit(NewTone(jumpFreq, jumpVoice, sampleRate))
}

// Holding is called every frame while the jump input stays down.
// It repeats the long-jump cue once per LongJumpRepeat.
func (sm *SoundManager) Holding(now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.holdSince.IsZero() || now.Sub(sm.holdSince) <= sm.cfg.LongJumpRepeat {
		return
	}
	if now.Sub(sm.lastJump) < jumpDebounce {
		return
	}
	sm.holdSince = now
	sm.emit(NewTone(longJumpFreq, longJumpVoice, sampleRate))
}

// Release ends a hold. Holds longer than LongJumpAfter end with a long-jump cue.
func (sm *SoundManager) Release(now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.holdSince.IsZero() {
		return
	}
	held := now.Sub(sm.holdSince)
	sm.holdSince = time.Time{}

	if held > sm.cfg.LongJumpAfter {
		sm.emit(NewTone(longJumpFreq, longJumpVoice, sampleRate))
	}
}

// GameOver plays the descending game over melody.
func (sm *SoundManager) GameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.holdSince = time.Time{}
	sm.emit(Melody(gameOverNotes, sm.cfg.GameOverInterval, gameOverVoice, sampleRate))
}

// StartMusic starts the background melody loop. It keeps playing until
// StopMusic is called or alive reports false. Starting twice is a no-op.
func (sm *SoundManager) StartMusic(alive func() bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.stopMusic != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sm.stopMusic = cancel
	sm.musicDone = done

	loop := &Loop{
		Notes:    musicNotes,
		Interval: sm.cfg.NoteInterval,
		Voice:    musicVoice,
		Play: func(s beep.Streamer) {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			sm.emit(s)
		},
		Alive: alive,
	}

	go func() {
		defer close(done)
		loop.Run(ctx)
	}()
}

// StopMusic cancels the background melody and waits for the loop to exit.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	cancel, done := sm.stopMusic, sm.musicDone
	sm.stopMusic, sm.musicDone = nil, nil
	sm.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.StopMusic()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.device {
		speaker.Clear()
	}
	sm.initialized = false
}
