package upload

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTokenNotFound is returned when a staging token does not exist.
	ErrTokenNotFound = errors.New("staging token not found")

	// ErrAttachmentExpired is returned when a staged entry outlived the TTL.
	ErrAttachmentExpired = errors.New("staged attachment expired")
)

// DefaultTTL is how long a staged upload survives without being consumed.
const DefaultTTL = time.Hour

// Entry is one staged upload awaiting attachment to a node.
type Entry struct {
	Filename string
	FileType string
	MimeType string
	FileData []byte
	FileSize int64
	UserID   string
	StagedAt time.Time
}

// Staging is the process-wide token → entry map for uploaded files that have
// not yet been bound to a node. Entries are purged on consumption and evicted
// after the TTL.
type Staging struct {
	mu      sync.Mutex
	entries map[string]Entry
	ttl     time.Duration
	stopCh  chan struct{}
	once    sync.Once
}

// NewStaging creates a staging area. A non-positive ttl falls back to
// DefaultTTL.
func NewStaging(ttl time.Duration) *Staging {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Staging{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}
}

// Put stages an entry and returns its opaque token.
func (s *Staging) Put(entry Entry) string {
	token := uuid.New().String()
	entry.StagedAt = time.Now()

	s.mu.Lock()
	s.entries[token] = entry
	s.mu.Unlock()

	return token
}

// Take removes and returns the entry for token. Expired entries are removed
// and reported as ErrAttachmentExpired.
func (s *Staging) Take(token string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return Entry{}, ErrTokenNotFound
	}
	delete(s.entries, token)

	if time.Since(entry.StagedAt) > s.ttl {
		return Entry{}, ErrAttachmentExpired
	}
	return entry, nil
}

// Len returns the number of staged entries.
func (s *Staging) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor launches a background sweep that evicts expired entries.
// Safe to call once; Stop terminates the sweep.
func (s *Staging) StartJanitor(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the janitor goroutine.
func (s *Staging) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *Staging) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.entries {
		if now.Sub(entry.StagedAt) > s.ttl {
			delete(s.entries, token)
		}
	}
}
