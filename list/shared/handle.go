package shared

import "github.com/IvanBrykalov/slist/list"

type node[T any] struct {
	cell cell
	val  T
	next *node[T]
}

// Handle is a shared reference to a node. Copying a Handle yields another
// reference to the same node. A node removed from its list stays readable
// through any Handle that still refers to it; the garbage collector reclaims
// it once the last reference is gone.
//
// The zero Handle refers to no node (the terminal marker); accessing it
// reports list.ErrEmpty.
type Handle[T any] struct {
	n *node[T]
}

// Valid reports whether h refers to a node.
func (h Handle[T]) Valid() bool { return h.n != nil }

// Value reads the node's value under a short read view.
func (h Handle[T]) Value() (T, error) {
	r, err := h.Borrow()
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Release()
	return r.Value(), nil
}

// Set overwrites the node's value under a short write view.
func (h Handle[T]) Set(v T) error {
	w, err := h.BorrowMut()
	if err != nil {
		return err
	}
	w.Set(v)
	w.Release()
	return nil
}

// Next returns a handle to the node's successor. The zero Handle is
// returned at the end of the chain.
func (h Handle[T]) Next() (Handle[T], error) {
	if h.n == nil {
		return Handle[T]{}, list.ErrEmpty
	}
	if err := h.n.cell.acquire(); err != nil {
		return Handle[T]{}, err
	}
	next := h.n.next
	h.n.cell.release()
	return Handle[T]{n: next}, nil
}

// Borrow acquires a read view. Any number of read views may coexist; a read
// view blocks write views (and so every list operation that rewrites this
// node) until it is released. It reports list.ErrAliasing if a write view
// is held.
func (h Handle[T]) Borrow() (*Ref[T], error) {
	if h.n == nil {
		return nil, list.ErrEmpty
	}
	if err := h.n.cell.acquire(); err != nil {
		return nil, err
	}
	return &Ref[T]{n: h.n}, nil
}

// BorrowMut acquires the exclusive write view. It reports list.ErrAliasing
// if any other view is held.
func (h Handle[T]) BorrowMut() (*RefMut[T], error) {
	if h.n == nil {
		return nil, list.ErrEmpty
	}
	if err := h.n.cell.acquireMut(); err != nil {
		return nil, err
	}
	return &RefMut[T]{n: h.n}, nil
}

// Ref is a read view of a node.
type Ref[T any] struct {
	n *node[T]
}

// Value returns the node's value.
func (r *Ref[T]) Value() T { return r.n.val }

// Release drops the view. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.n != nil {
		r.n.cell.release()
		r.n = nil
	}
}

// RefMut is the write view of a node.
type RefMut[T any] struct {
	n *node[T]
}

// Value returns the node's value.
func (r *RefMut[T]) Value() T { return r.n.val }

// Set overwrites the node's value.
func (r *RefMut[T]) Set(v T) { r.n.val = v }

// Release drops the view. Releasing twice is a no-op.
func (r *RefMut[T]) Release() {
	if r.n != nil {
		r.n.cell.release()
		r.n = nil
	}
}
