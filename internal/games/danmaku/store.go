package danmaku

// Entity identifies a simulated object. Identifiers are never reused within a World.
type Entity uint32

// Store holds one attribute kind for a sparse set of entities.
// Values live in a dense slice for iteration; index maps an entity to its slot.
// A Store is owned by a single World and is not safe for concurrent use.
type Store[T any] struct {
	index    map[Entity]int
	entities []Entity
	values   []T
}

// NewStore creates an empty attribute table.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[Entity]int),
		entities: make([]Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Set inserts or replaces the value attached to e.
func (s *Store[T]) Set(e Entity, v T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

// Get returns the value attached to e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// Ptr returns a pointer to e's value for in-place mutation, or nil.
// The pointer is invalidated by the next Set or Remove on this store.
func (s *Store[T]) Ptr(e Entity) *T {
	i, ok := s.index[e]
	if !ok {
		return nil
	}
	return &s.values[i]
}

// Has reports whether e has a value in this store.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove detaches e, moving the last slot into the hole.
func (s *Store[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// Entities returns a copy of the entities present, safe to hold across removals.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of entities in the store.
func (s *Store[T]) Len() int {
	return len(s.entities)
}
