// Package stack implements a generic LIFO stack backed by a slice.
package stack

// Stack is a last-in-first-out sequence. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New creates a stack with room for capacity items before it grows.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds an item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	last := len(s.items) - 1
	item = s.items[last]
	var zero T
	s.items[last] = zero // drop the reference so it can be GC'ed
	s.items = s.items[:last]
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Drain pops items one by one and passes each to f until f returns false
// or the stack is empty. The item f rejected is already popped.
// returns the number of popped items
func (s *Stack[T]) Drain(f func(item T) bool) int {
	popped := 0
	for {
		item, ok := s.Pop()
		if !ok {
			return popped
		}
		popped++
		if !f(item) {
			return popped
		}
	}
}
