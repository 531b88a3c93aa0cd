package leaderboard

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// KV is the string key-value store the board persists to.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is a process-local KV.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// gdataObject groups every skybird key in the gdata save directory.
const gdataObject = "skybird"

// GdataKV stores values as gdata object properties in the user's data directory.
type GdataKV struct {
	m *gdata.Manager
}

// OpenGdata opens the per-user gdata store for appName.
func OpenGdata(appName string) (*GdataKV, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot open data directory: %w", err)
	}
	return NewGdataKV(m), nil
}

// NewGdataKV wraps an already opened manager.
func NewGdataKV(m *gdata.Manager) *GdataKV {
	return &GdataKV{m: m}
}

func (g *GdataKV) Get(key string) (string, bool, error) {
	if !g.m.ObjectPropExists(gdataObject, key) {
		return "", false, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return "", false, fmt.Errorf("leaderboard: cannot load %s: %w", key, err)
	}
	return string(data), true, nil
}

func (g *GdataKV) Set(key, value string) error {
	if err := g.m.SaveObjectProp(gdataObject, key, []byte(value)); err != nil {
		return fmt.Errorf("leaderboard: cannot save %s: %w", key, err)
	}
	return nil
}

var (
	_ KV = (*MemoryKV)(nil)
	_ KV = (*GdataKV)(nil)
)
