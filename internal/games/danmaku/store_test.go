package danmaku

import (
	"slices"
	"testing"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	for e := Entity(1); e <= 4; e++ {
		s.Set(e, int(e)*10)
	}

	s.Set(2, 99)
	if v, ok := s.Get(2); !ok || v != 99 {
		t.Errorf("Get(2) = %d, %v; expected 99, true", v, ok)
	}

	s.Remove(1)
	if s.Has(1) {
		t.Error("Has(1) = true after Remove")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}

	// The swapped-in entity must still resolve to its own value.
	if v, ok := s.Get(4); !ok || v != 40 {
		t.Errorf("Get(4) = %d, %v after swap-remove; expected 40, true", v, ok)
	}

	// Removing a missing entity is a no-op.
	s.Remove(1)
	if s.Len() != 3 {
		t.Errorf("Len() = %d after removing a missing entity", s.Len())
	}

	got := s.Entities()
	slices.Sort(got)
	if !slices.Equal(got, []Entity{2, 3, 4}) {
		t.Errorf("Entities() = %v", got)
	}
}

func TestStorePtrMutatesInPlace(t *testing.T) {
	s := NewStore[Combat]()
	s.Set(7, Combat{HP: 3})

	s.Ptr(7).HP--
	if c, _ := s.Get(7); c.HP != 2 {
		t.Errorf("HP = %d after Ptr mutation, expected 2", c.HP)
	}
	if s.Ptr(8) != nil {
		t.Error("Ptr of a missing entity should be nil")
	}
}

func TestStoreEntitiesIsACopy(t *testing.T) {
	s := NewStore[bool]()
	s.Set(1, true)
	s.Set(2, true)

	list := s.Entities()
	for _, e := range list {
		s.Remove(e)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after removing while iterating a copy", s.Len())
	}
}
