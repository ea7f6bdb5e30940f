// Package shared implements a singly-linked list whose nodes are reached
// through shared handles.
//
// Several handles may refer to the same node at once (the list's own links,
// handles returned by At, views held by callers). Node contents are guarded
// by a single-threaded borrow cell: any number of read views, or exactly one
// write view. Every list operation takes a read view of each node it passes
// and releases it before the next step; the node whose link is rewritten is
// taken under a write view. A conflict is reported as list.ErrAliasing
// before anything is changed.
package shared

import (
	"strings"

	"github.com/IvanBrykalov/slist/list"
)

// List is a singly-linked list of shared nodes. The zero value is an empty
// list with default options. A List must not be copied after first use.
type List[T any] struct {
	root *node[T]
	size int
	opt  list.Options
	init bool
}

// New returns an empty list configured by opt.
func New[T any](opt list.Options) *List[T] {
	return &List[T]{opt: opt.WithDefaults(), init: true}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.root == nil }

// Insert places v at begin (0 <= begin <= Len()).
func (l *List[T]) Insert(begin int, v T) error {
	m := l.metrics()
	if err := list.CheckInsert("insert", begin, l.size); err != nil {
		list.Observe(m, err)
		return err
	}
	n := &node[T]{val: v}
	if begin == 0 {
		n.next = l.root
		l.root = n
		l.committed(m.Insert, 0, 1)
		return nil
	}

	prev, err := l.walk(begin - 1)
	if err != nil {
		list.Observe(m, err)
		return err
	}
	w, err := prev.BorrowMut()
	if err != nil {
		list.Observe(m, err)
		return err
	}
	n.next = w.n.next
	w.n.next = n
	w.Release()
	l.committed(m.Insert, begin-1, 1)
	return nil
}

// Remove unlinks the node at index (0 <= index < Len()). Handles to the
// removed node stay valid and still see its old successor.
func (l *List[T]) Remove(index int) error {
	m := l.metrics()
	if err := list.CheckIndex("remove", index, l.size); err != nil {
		list.Observe(m, err)
		return err
	}
	if l.root == nil {
		list.Observe(m, list.ErrEmpty)
		return list.ErrEmpty
	}
	if index == 0 {
		next, err := l.front().Next()
		if err != nil {
			list.Observe(m, err)
			return err
		}
		l.root = next.n
		l.committed(m.Remove, 0, -1)
		return nil
	}

	prev, err := l.walk(index - 1)
	if err != nil {
		list.Observe(m, err)
		return err
	}
	w, err := prev.BorrowMut()
	if err != nil {
		list.Observe(m, err)
		return err
	}
	// The target's successor may be nil when the target is the tail.
	after, err := (Handle[T]{n: w.n.next}).Next()
	if err != nil {
		w.Release()
		list.Observe(m, err)
		return err
	}
	w.n.next = after.n
	w.Release()
	l.committed(m.Remove, index-1, -1)
	return nil
}

// Update overwrites the value at index (0 <= index < Len()).
func (l *List[T]) Update(index int, v T) error {
	m := l.metrics()
	if err := list.CheckIndex("update", index, l.size); err != nil {
		list.Observe(m, err)
		return err
	}
	h, err := l.walk(index)
	if err == nil {
		err = h.Set(v)
	}
	if err != nil {
		list.Observe(m, err)
		return err
	}
	l.committed(m.Update, index, 0)
	return nil
}

// At returns a shared handle to the node at index (0 <= index < Len()).
func (l *List[T]) At(index int) (Handle[T], error) {
	if err := list.CheckIndex("at", index, l.size); err != nil {
		return Handle[T]{}, err
	}
	h, err := l.walk(index)
	if err != nil {
		return Handle[T]{}, err
	}
	l.metrics().Walk(index)
	return h, nil
}

// Get returns the value at index (0 <= index < Len()).
func (l *List[T]) Get(index int) (T, error) {
	h, err := l.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return h.Value()
}

// Show writes the chain to the configured output, reading each node under a
// read view. An empty list reports list.ErrEmpty.
func (l *List[T]) Show() error {
	opt := l.options()
	var b strings.Builder
	err := l.render(&b)
	if err == nil {
		opt.Metrics.Walk(l.size)
		err = list.Flush(opt.Output, &b)
	}
	list.Observe(opt.Metrics, err)
	return err
}

// String renders the chain the way Show prints it, without the newline.
// Nodes held under a write view are rendered as "?".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.root; n != nil; n = n.next {
		if n.cell.state == writing {
			list.AppendValue(&b, "?", n.next == nil)
			continue
		}
		list.AppendValue(&b, n.val, n.next == nil)
	}
	return b.String()
}

func (l *List[T]) render(b *strings.Builder) error {
	if l.root == nil {
		return list.ErrEmpty
	}
	for h := l.front(); h.Valid(); {
		r, err := h.Borrow()
		if err != nil {
			return err
		}
		next := r.n.next
		list.AppendValue(b, r.Value(), next == nil)
		r.Release()
		h = Handle[T]{n: next}
	}
	return nil
}

func (l *List[T]) front() Handle[T] { return Handle[T]{n: l.root} }

// walk follows steps links from the root, reading each link under a short
// read view. The caller has validated steps against l.size.
func (l *List[T]) walk(steps int) (Handle[T], error) {
	h := l.front()
	for i := 0; i < steps; i++ {
		next, err := h.Next()
		if err != nil {
			return Handle[T]{}, err
		}
		h = next
	}
	return h, nil
}

func (l *List[T]) committed(signal func(), steps, delta int) {
	m := l.metrics()
	signal()
	m.Walk(steps)
	l.size += delta
	m.Size(l.size)
}

func (l *List[T]) options() list.Options {
	if !l.init {
		l.opt = l.opt.WithDefaults()
		l.init = true
	}
	return l.opt
}

func (l *List[T]) metrics() list.Metrics { return l.options().Metrics }
