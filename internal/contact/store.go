package contact

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// SampleSize is the number of contacts Generate appends.
const SampleSize = 10

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind int

const (
	ChangeGenerated ChangeKind = iota // Sample contacts appended.
	ChangeAdded                       // One contact appended.
	ChangeRemoved                     // One contact removed.
)

// String returns the log-friendly name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeGenerated:
		return "generated"
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change describes one store mutation. Index is the first affected
// position, Count the number of affected contacts.
type Change struct {
	Kind  ChangeKind
	Index int
	Count int
}

// Observer is notified synchronously after every store mutation.
type Observer func(Change)

// Store is the authoritative ordered list of contacts.
// It is not safe for concurrent use; confine access to a single goroutine
// (the Bubble Tea update loop).
type Store struct {
	contacts  []Contact
	pools     Pools
	rng       *rand.Rand
	logger    *slog.Logger
	observers []*subscription
}

type subscription struct {
	fn Observer
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithRand sets the random source used by Generate.
func WithRand(r *rand.Rand) StoreOption {
	return func(s *Store) {
		s.rng = r
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates an empty Store that samples from pools.
func NewStore(pools Pools, opts ...StoreOption) *Store {
	s := &Store{pools: pools}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// NewSeededRand returns a deterministic random source for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate appends SampleSize contacts drawn from the pools. Existing
// contacts are kept. Observers are notified once, after all appends.
func (s *Store) Generate() {
	start := len(s.contacts)
	for range SampleSize {
		s.contacts = append(s.contacts, s.pools.sample(s.rng))
	}
	s.logger.Debug("contacts generated", "count", SampleSize, "total", len(s.contacts))
	s.notify(Change{Kind: ChangeGenerated, Index: start, Count: SampleSize})
}

// Add appends c to the end of the list. Callers are responsible for
// field validation (see Draft.Complete).
func (s *Store) Add(c Contact) {
	s.contacts = append(s.contacts, c)
	s.logger.Debug("contact added", "id", c.ID, "name", c.FullName, "total", len(s.contacts))
	s.notify(Change{Kind: ChangeAdded, Index: len(s.contacts) - 1, Count: 1})
}

// Remove deletes the contact at position i; later contacts shift down by one.
// It panics if i is out of range: callers must only pass positions taken
// from the current list.
func (s *Store) Remove(i int) {
	if i < 0 || i >= len(s.contacts) {
		panic(fmt.Sprintf("contact: remove index %d out of range [0,%d)", i, len(s.contacts)))
	}
	removed := s.contacts[i]
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	s.logger.Debug("contact removed", "index", i, "id", removed.ID, "total", len(s.contacts))
	s.notify(Change{Kind: ChangeRemoved, Index: i, Count: 1})
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// At returns the contact at position i. It panics if i is out of range.
func (s *Store) At(i int) Contact {
	return s.contacts[i]
}

// Contacts returns a copy of the list in display order.
func (s *Store) Contacts() []Contact {
	return append([]Contact(nil), s.contacts...)
}

// Index returns the position of the contact with the given ID, or -1.
func (s *Store) Index(id uuid.UUID) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers fn for change notifications. The returned cancel
// func unregisters it and may be called more than once.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	sub := &subscription{fn: fn}
	s.observers = append(s.observers, sub)
	return func() {
		for i, o := range s.observers {
			if o == sub {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	for _, o := range s.observers {
		o.fn(c)
	}
}
