package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/countryfinder/internal/directory"
	"github.com/muurk/countryfinder/internal/logging"
)

// Fetcher retrieves the full country list. *directory.Client implements it.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]directory.Country, error)
}

// Snapshot is a consistent copy of the store state handed to the
// presentation layer. It is the only data the presentation may read.
type Snapshot struct {
	Visible    []directory.Country
	Status     Status
	SelectedID string
	Query      string
	FullLen    int
}

// EmptyState reports why Visible is empty, or EmptyNone if it is not.
func (s Snapshot) EmptyState() EmptyState {
	return classifyEmpty(s.Status, s.FullLen, len(s.Visible))
}

// IsSelected reports whether id is the current selection.
func (s Snapshot) IsSelected(id string) bool {
	return id != "" && id == s.SelectedID
}

// Store holds the fetched country list, the filtered view of it, the query,
// the selection and the fetch status.
//
// All mutations happen under one mutex, so the store behaves as a single
// logical execution context. The network call runs in its own goroutine
// without holding the lock, so SetQuery and Select are never blocked by a
// refresh in flight.
type Store struct {
	fetcher Fetcher

	mu         sync.Mutex
	full       []directory.Country
	visible    []directory.Country
	query      string
	selectedID string
	status     Status

	// requested is the sequence number of the newest Refresh; applied is the
	// newest one whose result reached the state. Only a completion for
	// requested is ever applied.
	requested uint64
	applied   uint64

	// base is cancelled by Close to abandon fetches in flight
	base       context.Context
	cancelBase context.CancelFunc

	listeners    map[int]func(Snapshot)
	nextListener int
}

// New creates a store in the Loading state with empty lists. The caller is
// expected to call Refresh straight away.
func New(fetcher Fetcher) *Store {
	base, cancel := context.WithCancel(context.Background())
	return &Store{
		fetcher:    fetcher,
		full:       []directory.Country{},
		visible:    []directory.Country{},
		status:     Loading,
		base:       base,
		cancelBase: cancel,
		listeners:  make(map[int]func(Snapshot)),
	}
}

// Refresh sets the status to Loading and starts fetching the list in the
// background. It returns immediately; the returned channel is closed once the
// result has been applied to the store or discarded as stale.
//
// On success the full list is replaced and the visible list is recomputed for
// the current query. On failure the status becomes Failed and both lists keep
// their previous contents. Errors never leave the store.
func (s *Store) Refresh(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	s.requested++
	seq := s.requested
	prev := s.status
	s.status = Loading
	base := s.base
	s.mu.Unlock()

	logging.LogStatusChange(prev.String(), Loading.String(), seq)
	s.notify()

	done := make(chan struct{})
	go func() {
		defer close(done)

		fetchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(base, cancel)
		defer stop()

		countries, err := s.fetcher.FetchAll(fetchCtx)
		s.complete(seq, countries, err)
	}()

	return done
}

// complete applies the result of refresh seq if it is still the newest one
// requested. Results of superseded refreshes are dropped.
func (s *Store) complete(seq uint64, countries []directory.Country, err error) {
	s.mu.Lock()
	if seq != s.requested || seq <= s.applied {
		s.mu.Unlock()
		logging.Debug("Discarding stale fetch result", zap.Uint64("seq", seq))
		return
	}
	s.applied = seq

	prev := s.status
	if err != nil {
		s.status = Failed
	} else {
		s.full = append([]directory.Country{}, countries...)
		s.visible = Filter(s.full, s.query)
		s.status = Ready
	}
	next := s.status
	s.mu.Unlock()

	if err != nil {
		logging.Debug("Refresh failed", zap.Uint64("seq", seq), zap.Error(err))
	}
	logging.LogStatusChange(prev.String(), next.String(), seq)
	s.notify()
}

// SetQuery replaces the query and recomputes the visible list. It applies
// immediately against whatever full list currently exists.
func (s *Store) SetQuery(text string) {
	s.mu.Lock()
	s.query = text
	s.visible = Filter(s.full, text)
	s.mu.Unlock()

	s.notify()
}

// Close abandons fetches in flight and returns the store to Idle. The lists,
// query and selection are kept, and the store may be refreshed again.
func (s *Store) Close() {
	s.mu.Lock()
	s.cancelBase()
	s.base, s.cancelBase = context.WithCancel(context.Background())
	s.applied = s.requested
	prev := s.status
	s.status = Idle
	s.mu.Unlock()

	logging.LogStatusChange(prev.String(), Idle.String(), 0)
	s.notify()
}

// Snapshot returns a consistent copy of the state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Visible:    append([]directory.Country{}, s.visible...),
		Status:     s.status,
		SelectedID: s.selectedID,
		Query:      s.query,
		FullLen:    len(s.full),
	}
}

// Visible returns a copy of the filtered list.
func (s *Store) Visible() []directory.Country {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]directory.Country{}, s.visible...)
}

// Status returns the current fetch status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Query returns the current query.
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// FullLen returns the size of the authoritative list.
func (s *Store) FullLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.full)
}

// EmptyState reports why the visible list is empty, or EmptyNone.
func (s *Store) EmptyState() EmptyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return classifyEmpty(s.status, len(s.full), len(s.visible))
}

// Subscribe registers fn to be called with a fresh snapshot after every state
// change. Callbacks run on the goroutine that made the change, outside the
// store lock. The returned function removes the listener.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	if len(s.listeners) == 0 {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
