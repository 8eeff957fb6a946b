package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable view of the currently announced catalog.
type Snapshot struct {
	// Catalog holds the raw JSON value of the announced dynamicCatalog.
	Catalog []byte

	// AnnouncementID uniquely identifies the Put that produced this snapshot.
	AnnouncementID string

	// ReceivedAt records when the announcement was stored.
	ReceivedAt time.Time
}

// Store holds the most recent catalog announcement.
type Store interface {
	// Put replaces the stored catalog and returns the resulting snapshot.
	Put(raw []byte) Snapshot

	// Get returns the current snapshot, or ok=false when no catalog
	// has been announced yet.
	Get() (Snapshot, bool)
}

// Memory is the in-process Store used by the server. State lasts for
// the lifetime of the process and is shared by all requests.
type Memory struct {
	mu      sync.RWMutex
	current Snapshot
	loaded  bool
}

// Compile-time interface check
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Put stores a copy of raw as the current catalog, replacing any
// previous announcement.
func (m *Memory) Put(raw []byte) Snapshot {
	snap := Snapshot{
		Catalog:        append([]byte(nil), raw...),
		AnnouncementID: uuid.New().String(),
		ReceivedAt:     time.Now(),
	}

	m.mu.Lock()
	m.current = snap
	m.loaded = true
	m.mu.Unlock()

	return snap
}

// Get returns the current catalog snapshot. The returned bytes are a
// copy; callers may retain or mutate them freely.
func (m *Memory) Get() (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.loaded {
		return Snapshot{}, false
	}

	snap := m.current
	snap.Catalog = append([]byte(nil), m.current.Catalog...)
	return snap, true
}
