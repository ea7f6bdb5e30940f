// Package cursor implements a singly-linked list mutated in place.
//
// Each node is owned by exactly one link (the list head or its predecessor's
// next field). Mutations walk a cursor, a pointer to the link that will be
// rewritten, and splice there, so the prefix in front of the splice point is
// never rebuilt.
package cursor

import (
	"strings"

	"github.com/IvanBrykalov/slist/list"
)

type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly-linked list. The zero value is an empty list with default
// options. A List must not be copied after first use.
type List[T any] struct {
	head *node[T]
	len  int
	opt  list.Options
	init bool
}

// New returns an empty list configured by opt.
func New[T any](opt list.Options) *List[T] {
	return &List[T]{opt: opt.WithDefaults(), init: true}
}

// Size returns the number of elements in O(1).
func (l *List[T]) Size() int { return l.len }

// Empty reports whether the list has no elements in O(1).
func (l *List[T]) Empty() bool { return l.head == nil }

// PushBack appends v after the last node. O(n).
func (l *List[T]) PushBack(v T) {
	link, steps := l.tailLink()
	*link = &node[T]{val: v}
	l.len++
	l.committed(l.metrics().Insert, steps)
}

// PushSlice appends every value of vs in order.
func (l *List[T]) PushSlice(vs []T) {
	for _, v := range vs {
		l.PushBack(v)
	}
}

// PopBack detaches the last node and returns its value.
// An empty list returns the zero value and false.
func (l *List[T]) PopBack() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	// Stop on the link that owns the last node.
	link, steps := &l.head, 0
	for (*link).next != nil {
		link = &(*link).next
		steps++
	}
	last := *link
	*link = nil
	l.len--
	l.committed(l.metrics().Remove, steps)
	return last.val, true
}

// Insert places v at index. It returns false, leaving the list untouched,
// unless 0 <= index <= Size(). Inserting at Size() appends.
func (l *List[T]) Insert(index int, v T) bool {
	if err := list.CheckInsert("insert", index, l.len); err != nil {
		list.Observe(l.metrics(), err)
		return false
	}
	link := l.linkAt(index)
	// The new node takes ownership of the old occupant before it is
	// published through the link.
	*link = &node[T]{val: v, next: *link}
	l.len++
	l.committed(l.metrics().Insert, index)
	return true
}

// Remove unlinks the node at index. It returns false, leaving the list
// untouched, unless 0 <= index < Size().
func (l *List[T]) Remove(index int) bool {
	if err := list.CheckIndex("remove", index, l.len); err != nil {
		list.Observe(l.metrics(), err)
		return false
	}
	link := l.linkAt(index)
	target := *link
	// Detach the target's successor first, then hand it to the link that
	// owned the target.
	next := target.next
	target.next = nil
	*link = next
	l.len--
	l.committed(l.metrics().Remove, index)
	return true
}

// Update overwrites the value at index (0 <= index < Size()).
func (l *List[T]) Update(index int, v T) error {
	if err := list.CheckIndex("update", index, l.len); err != nil {
		list.Observe(l.metrics(), err)
		return err
	}
	(*l.linkAt(index)).val = v
	l.committed(l.metrics().Update, index)
	return nil
}

// Get returns the value at index (0 <= index < Size()).
func (l *List[T]) Get(index int) (T, error) {
	if err := list.CheckIndex("get", index, l.len); err != nil {
		var zero T
		return zero, err
	}
	l.metrics().Walk(index)
	return (*l.linkAt(index)).val, nil
}

// Show writes the chain to the configured output.
// An empty list reports list.ErrEmpty.
func (l *List[T]) Show() error {
	opt := l.options()
	if l.head == nil {
		list.Observe(opt.Metrics, list.ErrEmpty)
		return list.ErrEmpty
	}
	var b strings.Builder
	l.render(&b)
	opt.Metrics.Walk(l.len)
	err := list.Flush(opt.Output, &b)
	list.Observe(opt.Metrics, err)
	return err
}

// String renders the chain the way Show prints it, without the newline.
func (l *List[T]) String() string {
	var b strings.Builder
	l.render(&b)
	return b.String()
}

func (l *List[T]) render(b *strings.Builder) {
	for n := l.head; n != nil; n = n.next {
		list.AppendValue(b, n.val, n.next == nil)
	}
}

// linkAt returns the link that owns the node at index, or the terminal link
// when index == l.len. The caller has validated index.
func (l *List[T]) linkAt(index int) **node[T] {
	link := &l.head
	for i := 0; i < index; i++ {
		link = &(*link).next
	}
	return link
}

// tailLink returns the terminal link and the number of links followed.
func (l *List[T]) tailLink() (**node[T], int) {
	link, steps := &l.head, 0
	for *link != nil {
		link = &(*link).next
		steps++
	}
	return link, steps
}

func (l *List[T]) committed(signal func(), steps int) {
	m := l.metrics()
	signal()
	m.Walk(steps)
	m.Size(l.len)
}

func (l *List[T]) options() list.Options {
	if !l.init {
		l.opt = l.opt.WithDefaults()
		l.init = true
	}
	return l.opt
}

func (l *List[T]) metrics() list.Metrics { return l.options().Metrics }
