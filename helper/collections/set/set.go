package set

import (
	"iter"
	"slices"
)

// Set keeps insertion order next to a membership index.
type Set[T comparable] struct {
	index map[T]struct{}
	array []T
}

func New[T comparable](elem ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(elem)), array: make([]T, 0, len(elem))}
	s.Add(elem...)
	return s
}

func (s *Set[T]) Add(elem ...T) {
	for _, e := range elem {
		if _, ok := s.index[e]; !ok {
			s.index[e] = struct{}{}
			s.array = append(s.array, e)
		}
	}
}

func (s *Set[T]) Remove(e T) {
	if _, ok := s.index[e]; !ok {
		return
	}
	delete(s.index, e)
	if i := slices.Index(s.array, e); i >= 0 {
		s.array = slices.Delete(s.array, i, i+1)
	}
}

func (s *Set[T]) Contains(e T) bool {
	_, ok := s.index[e]
	return ok
}

// Values returns a copy in insertion order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.array)
}

func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.array)
}
