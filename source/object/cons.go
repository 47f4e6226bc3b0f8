package object

import "iter"

// ConsList is a persistent singly-linked list. Prepending shares the tail, so a list can be held
// in any number of places without copying. The zero value is the empty list.
type ConsList struct {
	head *cell
}

type cell struct {
	value  Expression
	next   *cell
	length int
}

func (l ConsList) Cons(e Expression) ConsList {
	return ConsList{head: &cell{value: e, next: l.head, length: l.Len() + 1}}
}

func (l ConsList) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.length
}

func (l ConsList) IsEmpty() bool {
	return l.head == nil
}

func (l ConsList) Head() (Expression, bool) {
	if l.head == nil {
		return nil, false
	}
	return l.head.value, true
}

// Tail of the empty list is the empty list, with ok false.
func (l ConsList) Tail() (ConsList, bool) {
	if l.head == nil {
		return l, false
	}
	return ConsList{head: l.head.next}, true
}

func (l ConsList) Nth(n int) (Expression, bool) {
	if n < 0 {
		return nil, false
	}
	c := l.head
	for ; c != nil && n > 0; n-- {
		c = c.next
	}
	if c == nil {
		return nil, false
	}
	return c.value, true
}

func (l ConsList) All() iter.Seq2[int, Expression] {
	return func(yield func(int, Expression) bool) {
		i := 0
		for c := l.head; c != nil; c = c.next {
			if !yield(i, c.value) {
				return
			}
			i++
		}
	}
}

func (l ConsList) Slice() []Expression {
	result := make([]Expression, 0, l.Len())
	for c := l.head; c != nil; c = c.next {
		result = append(result, c.value)
	}
	return result
}

// Append copies the receiver's cells and shares the whole of other.
func (l ConsList) Append(other ConsList) ConsList {
	if l.head == nil {
		return other
	}
	items := l.Slice()
	result := other
	for i := len(items) - 1; i >= 0; i-- {
		result = result.Cons(items[i])
	}
	return result
}

func (l ConsList) Map(f func(Expression) Expression) ConsList {
	items := l.Slice()
	for i, e := range items {
		items[i] = f(e)
	}
	return FromSlice(items)
}

func FromSlice(items []Expression) ConsList {
	result := ConsList{}
	for i := len(items) - 1; i >= 0; i-- {
		result = result.Cons(items[i])
	}
	return result
}
