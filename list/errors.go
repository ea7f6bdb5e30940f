package list

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfRange is returned (wrapped in *IndexError) when an index is
	// outside the range accepted by the operation.
	ErrOutOfRange = errors.New("list: index out of range")
	// ErrEmpty is returned when an operation needs at least one node.
	ErrEmpty = errors.New("list: empty list")
	// ErrAliasing is returned by the shared variant when a node is already
	// held under a conflicting view.
	ErrAliasing = errors.New("list: conflicting access to node")
)

// IndexError describes a rejected index.
type IndexError struct {
	Op    string // operation name, e.g. "insert"
	Index int
	Size  int // list length at the time of the call
}

func (e *IndexError) Error() string {
	return "list: " + e.Op + ": index " + strconv.Itoa(e.Index) +
		" out of range for length " + strconv.Itoa(e.Size)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// CheckInsert validates a position for insertion: 0 <= index <= size.
func CheckInsert(op string, index, size int) error {
	if index < 0 || index > size {
		return &IndexError{Op: op, Index: index, Size: size}
	}
	return nil
}

// CheckIndex validates a position that must name an existing node:
// 0 <= index < size.
func CheckIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Op: op, Index: index, Size: size}
	}
	return nil
}

// Reason classifies why an operation was rejected.
type Reason int

const (
	// RejectBounds: index outside the accepted range.
	RejectBounds Reason = iota
	// RejectEmpty: operation needs a non-empty chain.
	RejectEmpty
	// RejectAliasing: node already held under a conflicting view.
	RejectAliasing
	// RejectOther: write failures from Show and anything unclassified.
	RejectOther
)

// String returns a stable label for r.
func (r Reason) String() string {
	switch r {
	case RejectBounds:
		return "bounds"
	case RejectEmpty:
		return "empty"
	case RejectAliasing:
		return "aliasing"
	default:
		return "other"
	}
}

// ReasonOf maps an error returned by a list operation to its Reason.
func ReasonOf(err error) Reason {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return RejectBounds
	case errors.Is(err, ErrEmpty):
		return RejectEmpty
	case errors.Is(err, ErrAliasing):
		return RejectAliasing
	default:
		return RejectOther
	}
}
