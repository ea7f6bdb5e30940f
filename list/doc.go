// Package list holds the contracts shared by the three singly-linked list
// variants of this module: options, errors, metrics hooks and the text
// rendering used by Show.
//
// Variants
//
//   - owned: exclusive forward links only. Every mutation takes the list by
//     value and returns a new list value (rebuild-on-mutate). Old values are
//     never touched, so they stay valid snapshots that share their suffix
//     with newer versions.
//
//   - cursor: exclusive forward links mutated in place. A cursor (a pointer to
//     the link being rewritten) walks the chain and splices without
//     rebuilding the prefix.
//
//   - shared: nodes reached through shared handles. Node contents sit behind a
//     single-threaded borrow cell; conflicting read/write views are rejected
//     with ErrAliasing instead of corrupting the chain.
//
// Errors
//
// Bounds failures are reported as *IndexError, which unwraps to
// ErrOutOfRange. Two thresholds exist: inserting accepts index == Len()
// (append), while update/remove require index < Len(). Empty-structure access
// reports ErrEmpty. No operation leaves a partially rewritten chain behind.
//
// Basic usage
//
//	l := cursor.New[int](list.Options{})
//	l.Insert(0, 10)
//	l.Insert(1, 11)
//	_ = l.Update(1, 12)
//	_ = l.Show() // " 10 -> 12 \n"
//
//	o := owned.New[int](list.Options{})
//	o, _ = o.Insert(0, 1)
//	o, _ = o.Insert(1, 2)
//
// Exporting metrics
//
//	m := prom.New(nil, "slist", "demo", nil) // implements Metrics
//	l := shared.New[int](list.Options{Metrics: m})
//
// None of the list types is safe for concurrent use.
package list
