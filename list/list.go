// Package list implements a sentinel-headed singly linked list.
//
// The list keeps no tail pointer, so AddLast and GetLast walk the whole
// chain. A List is not safe for concurrent use; see Locked.
package list

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmpty is returned when the first or last element of an empty list is requested.
var ErrEmpty = errors.New("list is empty")

type node[T any] struct {
	item T
	next *node[T]
}

// List is a singly linked sequence of T. The zero value is an empty list.
type List[T any] struct {
	sentinel node[T] // never holds a value, sentinel.next is the first element
	size     int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWith returns a list holding exactly x.
func NewWith[T any](x T) *List[T] {
	l := &List[T]{}
	l.sentinel.next = &node[T]{item: x}
	l.size = 1
	return l
}

// AddFirst inserts x in front of the current first element.
func (l *List[T]) AddFirst(x T) {
	l.sentinel.next = &node[T]{item: x, next: l.sentinel.next}
	l.size += 1
}

// AddLast appends x after the current last element. O(n).
func (l *List[T]) AddLast(x T) {
	l.last().next = &node[T]{item: x}
	l.size += 1
}

func (l *List[T]) GetFirst() (T, error) {
	if l.sentinel.next == nil {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "GetFirst")
	}
	return l.sentinel.next.item, nil
}

// GetLast walks to the terminal node and returns its value.
func (l *List[T]) GetLast() (T, error) {
	if l.sentinel.next == nil {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "GetLast")
	}
	return l.last().item, nil
}

// Size returns the cached element count.
func (l *List[T]) Size() int {
	return l.size
}

// SizeRecursive counts the elements by walking the chain. It always agrees with Size.
func (l *List[T]) SizeRecursive() int {
	return count(l.sentinel.next)
}

func count[T any](p *node[T]) int {
	if p == nil {
		return 0
	}
	return 1 + count(p.next)
}

// last returns the terminal node, or the sentinel when the list is empty.
func (l *List[T]) last() *node[T] {
	current := &l.sentinel
	for current.next != nil {
		current = current.next
	}
	return current
}

// String renders the elements in order, e.g. "[1 3 7]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for current := l.sentinel.next; current != nil; current = current.next {
		if current != l.sentinel.next {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, current.item)
	}
	b.WriteByte(']')
	return b.String()
}
