// Package owned implements a singly-linked list whose nodes are linked by
// exclusive forward pointers only, with rebuild-on-mutate value semantics.
//
// Every mutating method takes the list by value and returns the new list;
// callers must rebind the result:
//
//	l := owned.New[int](list.Options{})
//	l, _ = l.Insert(0, 1)
//	l, _ = l.Insert(1, 2)
//	l, err := l.Remove(5) // err wraps list.ErrOutOfRange, l unchanged
//
// A mutation copies the values of the nodes in front of the target into a
// fresh prefix chain and reattaches the untouched remainder. Nodes are never
// written after they become reachable, so the receiver stays a valid,
// unchanged list that shares its suffix with the result.
package owned

import (
	"strings"

	"github.com/IvanBrykalov/slist/list"
)

// List is an immutable singly-linked list value. The zero value is an empty
// list with default options.
type List[T any] struct {
	head *node[T]
	size int
	opt  *list.Options
}

// New returns an empty list configured by opt.
func New[T any](opt list.Options) List[T] {
	opt = opt.WithDefaults()
	return List[T]{opt: &opt}
}

// Len returns the number of elements.
func (l List[T]) Len() int { return l.size }

// Get returns the value at index (0 <= index < Len()).
func (l List[T]) Get(index int) (T, error) {
	if err := list.CheckIndex("get", index, l.size); err != nil {
		var zero T
		return zero, err
	}
	n := l.head.get(index)
	l.options().Metrics.Walk(index)
	return n.val, nil
}

// Insert returns a list with v placed at index (0 <= index <= Len()).
// Inserting at Len() appends.
func (l List[T]) Insert(index int, v T) (List[T], error) {
	m := l.options().Metrics
	if err := list.CheckInsert("insert", index, l.size); err != nil {
		list.Observe(m, err)
		return l, err
	}
	if index == 0 {
		return l.commit(&node[T]{val: v, next: l.head}, l.size+1, 0, m.Insert), nil
	}

	// Copy the index nodes in front of the insertion point, then hang the
	// new node and the untouched remainder off the copy.
	prefix, last, rest := copyPrefix(l.head, index)
	last.next = &node[T]{val: v, next: rest}
	return l.commit(prefix, l.size+1, index, m.Insert), nil
}

// Push returns a list with v appended.
func (l List[T]) Push(v T) List[T] {
	out, _ := l.Insert(l.size, v)
	return out
}

// Remove returns a list without the element at index.
//
// The bound check accepts index == Len(); such a call finds no target while
// walking and is rejected the same way, leaving the list untouched.
// Removing index 0 from an empty list reports list.ErrEmpty.
func (l List[T]) Remove(index int) (List[T], error) {
	m := l.options().Metrics
	if index < 0 || index > l.size {
		err := &list.IndexError{Op: "remove", Index: index, Size: l.size}
		list.Observe(m, err)
		return l, err
	}
	if l.head == nil {
		list.Observe(m, list.ErrEmpty)
		return l, list.ErrEmpty
	}
	if index == 0 {
		return l.commit(l.head.next, l.size-1, 0, m.Remove), nil
	}

	// Verify the target exists before building anything.
	target := l.head.get(index)
	if target == nil {
		err := &list.IndexError{Op: "remove", Index: index, Size: l.size}
		list.Observe(m, err)
		return l, err
	}
	prefix, last, _ := copyPrefix(l.head, index)
	last.next = target.next
	return l.commit(prefix, l.size-1, index, m.Remove), nil
}

// Update returns a list whose element at index (0 <= index < Len()) is v.
func (l List[T]) Update(index int, v T) (List[T], error) {
	m := l.options().Metrics
	if err := list.CheckIndex("update", index, l.size); err != nil {
		list.Observe(m, err)
		return l, err
	}

	// The target itself is part of the rebuilt prefix: it is copied with
	// the new value and linked to the untouched successor.
	prefix, last, rest := copyPrefix(l.head, index+1)
	last.val = v
	last.next = rest
	return l.commit(prefix, l.size, index, m.Update), nil
}

// Show writes the chain to the configured output and returns an equivalent
// list. An empty list reports list.ErrEmpty.
func (l List[T]) Show() (List[T], error) {
	opt := l.options()
	if l.head == nil {
		list.Observe(opt.Metrics, list.ErrEmpty)
		return l, list.ErrEmpty
	}
	var b strings.Builder
	steps := 0
	for n := l.head; n != nil; n = n.next {
		list.AppendValue(&b, n.val, n.next == nil)
		steps++
	}
	opt.Metrics.Walk(steps)
	if err := list.Flush(opt.Output, &b); err != nil {
		list.Observe(opt.Metrics, err)
		return l, err
	}
	return l, nil
}

// String renders the chain the way Show prints it, without the newline.
func (l List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		list.AppendValue(&b, n.val, n.next == nil)
	}
	return b.String()
}

// commit builds the result value and reports the mutation.
func (l List[T]) commit(head *node[T], size, steps int, signal func()) List[T] {
	opt := l.options()
	signal()
	opt.Metrics.Walk(steps)
	opt.Metrics.Size(size)
	return List[T]{head: head, size: size, opt: opt}
}

// defaultOptions backs zero-value lists.
var defaultOptions = list.Options{}.WithDefaults()

func (l List[T]) options() *list.Options {
	if l.opt == nil {
		return &defaultOptions
	}
	return l.opt
}
