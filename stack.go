package polycalc

import "github.com/jonathanmweiss/go-polycalc/poly"

type stackElem struct {
	p    poly.Poly
	next *stackElem
}

// Stack is a LIFO of polynomials backed by a singly linked list.
// The zero value is an empty stack.
type Stack struct {
	head *stackElem
	size int
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Len() int {
	return s.size
}

func (s *Stack) Push(p poly.Poly) {
	s.head = &stackElem{p: p, next: s.head}
	s.size++
}

// Pop removes the top polynomial. It panics on an empty stack.
func (s *Stack) Pop() poly.Poly {
	if s.head == nil {
		panic("pop from empty stack")
	}

	p := s.head.p
	s.head = s.head.next
	s.size--

	return p
}

func (s *Stack) Top() poly.Poly {
	if s.head == nil {
		panic("top of empty stack")
	}

	return s.head.p
}

// Second is the polynomial just below the top.
func (s *Stack) Second() poly.Poly {
	if s.size < 2 {
		panic("stack has fewer than two polynomials")
	}

	return s.head.next.p
}

// Items returns the polynomials from the top down.
func (s *Stack) Items() []poly.Poly {
	items := make([]poly.Poly, 0, s.size)
	for e := s.head; e != nil; e = e.next {
		items = append(items, e.p)
	}

	return items
}
