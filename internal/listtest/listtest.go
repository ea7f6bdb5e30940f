// Package listtest provides a slice-backed reference model and workload
// generators used to drive every list variant through the same operation
// sequences (fuzz tests, cmd/bench).
package listtest

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/IvanBrykalov/slist/list"
)

// Kind is the type of a workload step.
type Kind uint8

const (
	Insert Kind = iota
	Remove
	Update
	Show
	kinds
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Update:
		return "update"
	case Show:
		return "show"
	default:
		return "unknown"
	}
}

// Op is one workload step. Index may be out of range on purpose.
type Op struct {
	Kind  Kind
	Index int
	Value int
}

// Decode turns arbitrary bytes into ops, three bytes per op. Indexes are
// kept small so that in-range and out-of-range positions both show up.
func Decode(data []byte) []Op {
	ops := make([]Op, 0, len(data)/3)
	for len(data) >= 3 {
		ops = append(ops, Op{
			Kind:  Kind(data[0]) % kinds,
			Index: int(data[1] % 32),
			Value: int(int8(data[2])),
		})
		data = data[3:]
	}
	return ops
}

// Generate returns n random ops. Indexes are drawn from [0, maxLen+1] so a
// share of them falls past the end of the list.
func Generate(r *rand.Rand, n, maxLen int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{
			Kind:  Kind(r.Intn(int(kinds))),
			Index: r.Intn(maxLen + 2),
			Value: r.Intn(1000),
		}
	}
	return ops
}

// Model is the reference list. Its methods apply the same acceptance rules
// as the real variants and report whether the op was accepted.
type Model struct {
	vals []int
}

// Insert accepts 0 <= i <= Len().
func (m *Model) Insert(i, v int) bool {
	if list.CheckInsert("insert", i, len(m.vals)) != nil {
		return false
	}
	m.vals = slices.Insert(m.vals, i, v)
	return true
}

// Remove accepts 0 <= i < Len().
func (m *Model) Remove(i int) bool {
	if list.CheckIndex("remove", i, len(m.vals)) != nil {
		return false
	}
	m.vals = slices.Delete(m.vals, i, i+1)
	return true
}

// Update accepts 0 <= i < Len().
func (m *Model) Update(i, v int) bool {
	if list.CheckIndex("update", i, len(m.vals)) != nil {
		return false
	}
	m.vals[i] = v
	return true
}

// Len returns the number of values.
func (m *Model) Len() int { return len(m.vals) }

// Values returns a copy of the current sequence.
func (m *Model) Values() []int { return slices.Clone(m.vals) }

// String renders the sequence like a list's Show, without the newline.
func (m *Model) String() string {
	var b strings.Builder
	for i, v := range m.vals {
		list.AppendValue(&b, v, i == len(m.vals)-1)
	}
	return b.String()
}

// Line is the exact text Show prints for the sequence.
func (m *Model) Line() string { return m.String() + "\n" }
