package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/IvanBrykalov/slist/internal/listtest"
	"github.com/IvanBrykalov/slist/list"
)

// Every variant agrees with the model op by op, and its final String is
// what -show prints. Show ops write only to the configured Output.
func TestTargets_MatchModel(t *testing.T) {
	t.Parallel()

	for name, mk := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			tg := mk(list.Options{Output: &out})
			m := &listtest.Model{}
			shows := 0
			r := rand.New(rand.NewSource(42))
			for i, op := range listtest.Generate(r, 2000, 12) {
				ok := tg.apply(op)
				if want := applyModel(m, op); ok != want {
					t.Fatalf("op %d %v(%d) = %v, model %v", i, op.Kind, op.Index, ok, want)
				}
				if op.Kind == listtest.Show && ok {
					shows++
				}
			}
			if got, want := tg.String(), m.String(); got != want {
				t.Fatalf("final list %q, model %q", got, want)
			}
			if n := bytes.Count(out.Bytes(), []byte("\n")); n != shows {
				t.Fatalf("Output got %d lines for %d accepted Show ops", n, shows)
			}
		})
	}
}
