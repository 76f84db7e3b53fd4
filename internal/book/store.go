package book

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"
)

const maxIDAttempts = 8

var errIDExhausted = errors.New("could not generate a unique book id")

// Store is the in-memory book catalog. The zero value is not usable; build
// one with NewStore. A single lock covers each operation.
type Store struct {
	mu    sync.RWMutex
	books map[string]*Book
	order []string

	newID IDGenerator
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default NanoID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty catalog.
func NewStore(opts ...Option) *Store {
	s := &Store{
		books: make(map[string]*Book),
		newID: NanoID,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates in, stores a new book and returns its id.
func (s *Store) Add(in Input) (string, error) {
	if err := Validate(in); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return "", err
	}

	now := s.now()
	b := &Book{ID: id, InsertedAt: now, UpdatedAt: now}
	b.apply(in)

	s.books[id] = b
	s.order = append(s.order, id)
	return id, nil
}

// uniqueID must be called with mu held.
func (s *Store) uniqueID() (string, error) {
	for range maxIDAttempts {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate book id: %w", err)
		}
		if _, taken := s.books[id]; !taken && id != "" {
			return id, nil
		}
	}
	return "", errIDExhausted
}

// Query returns the projections of all books matching f, in insertion order.
// The sequence is evaluated on each range over a snapshot taken when the
// range starts, so it can be reused and the loop body may call back into
// the store.
func (s *Store) Query(f Filter) iter.Seq[Summary] {
	return func(yield func(Summary) bool) {
		for _, b := range s.snapshot() {
			if !f.match(&b) {
				continue
			}
			if !yield(b.summary()) {
				return
			}
		}
	}
}

func (s *Store) snapshot() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.books[id])
	}
	return out
}

// Get returns a copy of the book with the given id.
func (s *Store) Get(id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return *b, nil
}

// Update replaces the mutable attributes of an existing book. Input is
// validated before the id is looked up.
func (s *Store) Update(id string, in Input) (Book, error) {
	if err := Validate(in); err != nil {
		return Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}

	b.apply(in)
	if now := s.now(); now.After(b.UpdatedAt) {
		b.UpdatedAt = now
	}
	return *b, nil
}

// Delete removes the book with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// Len reports the number of stored books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
