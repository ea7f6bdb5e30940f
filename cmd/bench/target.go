package main

import (
	"github.com/IvanBrykalov/slist/internal/listtest"
	"github.com/IvanBrykalov/slist/list"
	"github.com/IvanBrykalov/slist/list/cursor"
	"github.com/IvanBrykalov/slist/list/owned"
	"github.com/IvanBrykalov/slist/list/shared"
)

// target adapts one list variant to the workload. apply reports whether the
// op was accepted.
type target interface {
	apply(op listtest.Op) bool
	String() string
}

var variants = map[string]func(list.Options) target{
	"owned":  func(o list.Options) target { return &ownedTarget{l: owned.New[int](o)} },
	"cursor": func(o list.Options) target { return cursorTarget{l: cursor.New[int](o)} },
	"shared": func(o list.Options) target { return sharedTarget{l: shared.New[int](o)} },
}

type ownedTarget struct{ l owned.List[int] }

func (t *ownedTarget) apply(op listtest.Op) bool {
	var err error
	switch op.Kind {
	case listtest.Insert:
		t.l, err = t.l.Insert(op.Index, op.Value)
	case listtest.Remove:
		t.l, err = t.l.Remove(op.Index)
	case listtest.Update:
		t.l, err = t.l.Update(op.Index, op.Value)
	case listtest.Show:
		t.l, err = t.l.Show()
	}
	return err == nil
}

func (t *ownedTarget) String() string { return t.l.String() }

type cursorTarget struct{ l *cursor.List[int] }

func (t cursorTarget) apply(op listtest.Op) bool {
	switch op.Kind {
	case listtest.Insert:
		return t.l.Insert(op.Index, op.Value)
	case listtest.Remove:
		return t.l.Remove(op.Index)
	case listtest.Update:
		return t.l.Update(op.Index, op.Value) == nil
	default:
		return t.l.Show() == nil
	}
}

func (t cursorTarget) String() string { return t.l.String() }

type sharedTarget struct{ l *shared.List[int] }

func (t sharedTarget) apply(op listtest.Op) bool {
	switch op.Kind {
	case listtest.Insert:
		return t.l.Insert(op.Index, op.Value) == nil
	case listtest.Remove:
		return t.l.Remove(op.Index) == nil
	case listtest.Update:
		return t.l.Update(op.Index, op.Value) == nil
	default:
		return t.l.Show() == nil
	}
}

func (t sharedTarget) String() string { return t.l.String() }
