package stat

import "sync"

// Holder is anything that owns an attribute Vector.
//
// Callers never mutate individual fields; they read the whole vector, compute,
// and write the whole vector back.
type Holder interface {
	// Stats returns a snapshot of the current vector. It has no side effects.
	Stats() Vector
	// SetStats replaces the stored vector. Any vector is accepted.
	SetStats(Vector)
}

// Updater is a Holder that can perform a read-modify-write as one unit.
type Updater interface {
	Holder
	// Update replaces the stored vector with fn(current) and returns the result.
	//
	// Precondition: fn must not call back into the holder.
	Update(fn func(Vector) Vector) Vector
}

// Modify applies fn to h's current vector and stores the result.
//
// When h implements Updater the read-modify-write is atomic with respect to
// other Updater calls on h; otherwise h is assumed to have a single owner.
//
// Precondition: h and fn must be non-nil.
// Postcondition: h.Stats() == fn(previous) and the new vector is returned.
func Modify(h Holder, fn func(Vector) Vector) Vector {
	if u, ok := h.(Updater); ok {
		return u.Update(fn)
	}
	next := fn(h.Stats())
	h.SetStats(next)
	return next
}

// Store is a Holder guarded by a mutex, safe for use by concurrent actors.
type Store struct {
	mu sync.Mutex
	v  Vector
}

// NewStore returns a Store seeded with initial.
//
// Postcondition: Stats() == initial.
func NewStore(initial Vector) *Store {
	return &Store{v: initial}
}

// Stats returns the current vector.
func (s *Store) Stats() Vector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

// SetStats replaces the current vector.
func (s *Store) SetStats(v Vector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

// Update replaces the current vector with fn(current) under the store lock.
func (s *Store) Update(fn func(Vector) Vector) Vector {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = fn(s.v)
	return s.v
}
