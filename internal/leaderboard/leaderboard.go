// Package leaderboard keeps the bounded, persisted list of the best named scores.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultKey is the storage key the board is persisted under.
	DefaultKey = "birdGameHighScores"

	// DefaultLimit is the maximum number of entries kept.
	DefaultLimit = 7

	// DateLayout is the calendar date format stored with each entry.
	DateLayout = "2006-01-02"
)

// Entry is one named score on the board.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// ValidationError reports a submission rejected before it reached the board.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("leaderboard: invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a submission validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Board is the in-memory leaderboard backed by a KV store.
// It is safe for concurrent use; SSH sessions share one board.
type Board struct {
	mu      sync.Mutex
	kv      KV
	key     string
	limit   int
	now     func() time.Time
	logger  *log.Logger
	entries []Entry
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for load warnings.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithLimit sets the maximum number of entries kept.
func WithLimit(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.limit = n
		}
	}
}

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(b *Board) {
		if key != "" {
			b.key = key
		}
	}
}

// WithClock overrides the time source used to date new entries.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// Open loads the board from kv. A missing key yields an empty board.
// Read and parse failures are logged and also yield an empty board.
func Open(kv KV, opts ...Option) *Board {
	b := &Board{
		kv:     kv,
		key:    DefaultKey,
		limit:  DefaultLimit,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}

	entries, err := b.load()
	if err != nil {
		b.logger.Warn("could not load leaderboard, starting empty", "key", b.key, "error", err)
		entries = nil
	}
	b.entries = entries
	return b
}

func (b *Board) load() ([]Entry, error) {
	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot parse %s: %w", b.key, err)
	}

	sortEntries(entries)
	if len(entries) > b.limit {
		entries = entries[:b.limit]
	}
	return entries, nil
}

// Entries returns a copy of the board, highest score first.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// Limit returns the maximum number of entries kept.
func (b *Board) Limit() int {
	return b.limit
}

// Qualifies reports whether a score would enter the board.
func (b *Board) Qualifies(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) < b.limit {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Submit records a named score dated today and persists the new board.
// The name is trimmed; an empty name is rejected with a *ValidationError and
// the board is left unchanged. If persisting fails the board is also unchanged.
func (b *Board) Submit(name string, score int) ([]Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next := make([]Entry, len(b.entries), len(b.entries)+1)
	copy(next, b.entries)
	next = append(next, Entry{
		Name:  name,
		Score: score,
		Date:  b.now().Format(DateLayout),
	})
	sortEntries(next)
	if len(next) > b.limit {
		next = next[:b.limit]
	}

	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot encode board: %w", err)
	}
	if err := b.kv.Set(b.key, string(data)); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot save board: %w", err)
	}

	b.entries = next
	return slices.Clone(next), nil
}

// sortEntries orders by score descending. Equal scores keep insertion order.
func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
}

// Medal returns the medal shown next to a zero-based board position, or "".
func Medal(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return ""
	}
}
