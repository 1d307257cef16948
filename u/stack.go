package u

import "github.com/edwingeng/deque"

// Stack is a LIFO buffer. It is not safe for concurrent use; each pipeline
// invocation makes its own.
type Stack[T any] struct {
	d deque.Deque
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		d: deque.NewDeque(),
	}
}

// Push puts v on top.
func (s *Stack[T]) Push(v T) {
	s.d.PushBack(v)
}

// Pop removes and returns the top item. ok is false if the stack was empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.d.Empty() {
		return v, false
	}
	return s.d.PopBack().(T), true
}

// Top returns the top item without removing it.
func (s *Stack[T]) Top() (v T, ok bool) {
	if s.d.Empty() {
		return v, false
	}
	return s.d.Back().(T), true
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return s.d.Len()
}

// Empty returns true IFF there is nothing on the stack.
func (s *Stack[T]) Empty() bool {
	return s.d.Empty()
}
