package owned

import (
	"bytes"
	"errors"
	"testing"

	"github.com/IvanBrykalov/slist/list"
)

func assertList(t *testing.T, l List[int], v ...int) {
	t.Helper()

	if n := l.Len(); n != len(v) {
		t.Fatalf("list length mismatch, expected %d but found %d", len(v), n)
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if i >= len(v) {
			t.Fatalf("list contains too many nodes, expected %d", len(v))
		}
		if n.val != v[i] {
			t.Fatalf("list element at index %d mismatch, expected %d but found %d", i, v[i], n.val)
		}
		i++
	}
	if i != len(v) {
		t.Fatalf("chain has %d nodes but Len() is %d", i, len(v))
	}
}

func mustInsert(t *testing.T, l List[int], index, v int) List[int] {
	t.Helper()
	out, err := l.Insert(index, v)
	if err != nil {
		t.Fatalf("Insert(%d, %d): %v", index, v, err)
	}
	return out
}

// The reference scenario: build [1,2,3], remove the middle, update the tail.
func TestOwned_Scenario(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	l := New[int](list.Options{Output: &out})
	l = mustInsert(t, l, 0, 1)
	l = mustInsert(t, l, 1, 2)
	l = mustInsert(t, l, 2, 3)
	assertList(t, l, 1, 2, 3)

	l, err := l.Remove(1)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 3)

	if l, err = l.Update(1, 10); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 10)

	if l, err = l.Show(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), " 1 -> 10 \n"; got != want {
		t.Fatalf("Show printed %q, want %q", got, want)
	}
	assertList(t, l, 1, 10)
}

// The zero value is an empty, usable list.
func TestOwned_ZeroValue(t *testing.T) {
	t.Parallel()

	var l List[string]
	l, err := l.Insert(0, "a")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := l.Get(0); err != nil || v != "a" {
		t.Fatalf("Get(0) = %q, %v", v, err)
	}
}

// Inserting at the front and in the middle shifts later elements.
func TestOwned_InsertShifts(t *testing.T) {
	t.Parallel()

	l := New[int](list.Options{})
	for i := 0; i < 4; i++ {
		l = l.Push(i)
	}
	l = mustInsert(t, l, 0, 10)
	assertList(t, l, 10, 0, 1, 2, 3)
	l = mustInsert(t, l, 3, 20)
	assertList(t, l, 10, 0, 1, 20, 2, 3)
	l = mustInsert(t, l, l.Len(), 30)
	assertList(t, l, 10, 0, 1, 20, 2, 3, 30)
}

// insert(size+1) is rejected without touching the list.
func TestOwned_InsertBounds(t *testing.T) {
	t.Parallel()

	l := New[int](list.Options{}).Push(1).Push(2)
	for _, idx := range []int{3, 10, -1} {
		got, err := l.Insert(idx, 9)
		if !errors.Is(err, list.ErrOutOfRange) {
			t.Fatalf("Insert(%d) err = %v, want ErrOutOfRange", idx, err)
		}
		assertList(t, got, 1, 2)
	}
}

// remove(size) passes the guard but finds no target; the list is unchanged.
func TestOwned_RemoveAtSize(t *testing.T) {
	t.Parallel()

	l := New[int](list.Options{}).Push(1).Push(2).Push(3)
	got, err := l.Remove(3)
	var ie *list.IndexError
	if !errors.As(err, &ie) || ie.Index != 3 || ie.Size != 3 {
		t.Fatalf("Remove(3) err = %v, want *IndexError{3,3}", err)
	}
	assertList(t, got, 1, 2, 3)

	if _, err := l.Remove(4); !errors.Is(err, list.ErrOutOfRange) {
		t.Fatalf("Remove(4) err = %v", err)
	}

	got, err = l.Remove(2)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, got, 1, 2)
}

// Removing from an empty list is EmptyStructureAccess.
func TestOwned_RemoveEmpty(t *testing.T) {
	t.Parallel()

	var l List[int]
	if _, err := l.Remove(0); !errors.Is(err, list.ErrEmpty) {
		t.Fatalf("Remove(0) on empty = %v, want ErrEmpty", err)
	}
	if _, err := l.Remove(1); !errors.Is(err, list.ErrOutOfRange) {
		t.Fatalf("Remove(1) on empty = %v, want ErrOutOfRange", err)
	}
}

// update(size) fails; update(size-1) changes only the last element.
func TestOwned_UpdateBounds(t *testing.T) {
	t.Parallel()

	l := New[int](list.Options{}).Push(1).Push(2).Push(3)
	got, err := l.Update(3, 9)
	if !errors.Is(err, list.ErrOutOfRange) {
		t.Fatalf("Update(3) err = %v", err)
	}
	assertList(t, got, 1, 2, 3)

	got, err = l.Update(2, 9)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, got, 1, 2, 9)

	got, err = l.Update(0, 7)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, got, 7, 2, 3)
}

// Older list values are snapshots: later mutations never show through.
func TestOwned_ValueSemantics(t *testing.T) {
	t.Parallel()

	v1 := New[int](list.Options{}).Push(1).Push(2).Push(3)
	v2, _ := v1.Update(0, 100)
	v3, _ := v2.Remove(2)
	v4, _ := v3.Insert(1, 50)

	assertList(t, v1, 1, 2, 3)
	assertList(t, v2, 100, 2, 3)
	assertList(t, v3, 100, 2)
	assertList(t, v4, 100, 50, 2)

	// Insert reattaches the untouched remainder instead of copying it.
	v5, _ := v1.Insert(1, 9)
	if v5.head.next.next != v1.head.next {
		t.Fatal("suffix after the insertion point must be shared")
	}
}

// Show on an empty list is rejected and does not print.
func TestOwned_ShowEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	l := New[int](list.Options{Output: &out})
	if _, err := l.Show(); !errors.Is(err, list.ErrEmpty) {
		t.Fatalf("Show on empty = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("Show printed %q on empty list", out.String())
	}
}

// Show is idempotent.
func TestOwned_ShowIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	l := New[int](list.Options{Output: &out}).Push(4).Push(5)
	l, _ = l.Show()
	l, _ = l.Show()
	if got, want := out.String(), " 4 -> 5 \n 4 -> 5 \n"; got != want {
		t.Fatalf("Show output %q, want %q", got, want)
	}
	assertList(t, l, 4, 5)
}

// Metrics observe successful mutations and rejections.
func TestOwned_Metrics(t *testing.T) {
	t.Parallel()

	st := &list.Stats{}
	l := New[int](list.Options{Metrics: st})
	l = mustInsert(t, l, 0, 1)
	l = mustInsert(t, l, 1, 2)
	l, _ = l.Update(1, 3)
	l, _ = l.Remove(0)
	_, _ = l.Insert(5, 0)
	_, _ = l.Update(1, 0)

	s := st.Snapshot()
	if s.Inserts != 2 || s.Updates != 1 || s.Removes != 1 {
		t.Fatalf("unexpected counters %+v", s)
	}
	if s.Rejected[list.RejectBounds] != 2 {
		t.Fatalf("bounds rejections = %d, want 2", s.Rejected[list.RejectBounds])
	}
	if s.LastSize != 1 {
		t.Fatalf("LastSize = %d, want 1", s.LastSize)
	}
}

// Round-trip: insert at i then remove i restores the sequence and leaves
// the source list untouched.
func TestOwned_InsertRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	base := New[int](list.Options{})
	for _, v := range []int{5, 6, 7, 8} {
		base = base.Push(v)
	}
	for i := 0; i <= base.Len(); i++ {
		grown := mustInsert(t, base, i, -1)
		if got, _ := grown.Get(i); got != -1 {
			t.Fatalf("Get(%d) after Insert = %d, want -1", i, got)
		}
		back, err := grown.Remove(i)
		if err != nil {
			t.Fatalf("Remove(%d): %v", i, err)
		}
		assertList(t, back, 5, 6, 7, 8)
		assertList(t, base, 5, 6, 7, 8)
	}
}

func BenchmarkOwned_InsertMiddle(b *testing.B) {
	l := New[int](list.Options{})
	for i := 0; i < 256; i++ {
		l = l.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, _ := l.Insert(128, i)
		_ = out
	}
}
