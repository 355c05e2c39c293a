package collections

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

type LinkedList[V any] interface {
	Append(v V)
	Get(index int) (V, error)
	Exists(v V) bool
	IndexOf(v V) int
	RemoveByValue(v V) (int, bool)
	PopAt(index int) (V, error)
	Size() int
	All() iter.Seq2[int, V]
	Clear()
}

type node[V any] struct {
	value V
	next  *node[V]
}

func (n *node[V]) isEnd() bool {
	return n.next == nil
}

type linkedList[V any] struct {
	head  *node[V]
	size  int
	equal EqualFunc[V]
}

func NewLinkedList[V any](equal EqualFunc[V]) LinkedList[V] {
	return newLinkedList(equal)
}

func newLinkedList[V any](equal EqualFunc[V]) *linkedList[V] {
	return &linkedList[V]{
		equal: equal,
	}
}

func (l *linkedList[V]) Append(v V) {
	next := &node[V]{value: Clone(v)}
	l.size++
	if l.head == nil {
		l.head = next
		return
	}
	current := l.head
	for !current.isEnd() {
		current = current.next
	}
	current.next = next
}

func (l *linkedList[V]) checkIndex(index int) error {
	if index < 0 || index >= l.size || l.head == nil {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.size)
	}
	return nil
}

func (l *linkedList[V]) nodeAt(index int) *node[V] {
	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

func (l *linkedList[V]) Get(index int) (v V, err error) {
	if err = l.checkIndex(index); err != nil {
		return v, err
	}
	return Clone(l.nodeAt(index).value), nil
}

func (l *linkedList[V]) Exists(v V) bool {
	return l.IndexOf(v) >= 0
}

func (l *linkedList[V]) IndexOf(v V) int {
	index := 0
	for current := l.head; current != nil; current = current.next {
		if l.equal(current.value, v) {
			return index
		}
		index++
	}
	return -1
}

// RemoveByValue removes the first element equal to v and reports its former position.
func (l *linkedList[V]) RemoveByValue(v V) (int, bool) {
	index := l.IndexOf(v)
	if index < 0 {
		return -1, false
	}
	_, _ = l.PopAt(index)
	return index, true
}

func (l *linkedList[V]) PopAt(index int) (v V, err error) {
	if err = l.checkIndex(index); err != nil {
		return v, err
	}
	var previous *node[V]
	current := l.head
	for i := 0; i < index; i++ {
		previous = current
		current = current.next
	}
	l.size--
	switch {
	case current == l.head:
		l.head = current.next
	case current.isEnd():
		previous.next = nil
	default:
		previous.next = current.next
	}
	current.next = nil
	return current.value, nil
}

func (l *linkedList[V]) Size() int {
	return l.size
}

func (l *linkedList[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		index := 0
		for current := l.head; current != nil; current = current.next {
			if !yield(index, Clone(current.value)) {
				return
			}
			index++
		}
	}
}

// rewrite replaces every stored value in place, front to back.
func (l *linkedList[V]) rewrite(f func(V) V) {
	for current := l.head; current != nil; current = current.next {
		current.value = f(current.value)
	}
}

func (l *linkedList[V]) Clear() {
	current := l.head
	for current != nil {
		next := current.next
		current.next = nil
		current = next
	}
	l.head = nil
	l.size = 0
}

func (l *linkedList[V]) String() string {
	ss := make([]string, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		ss = append(ss, fmt.Sprint(current.value))
	}
	return "[" + strings.Join(ss, " -> ") + "]"
}
