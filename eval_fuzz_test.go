//go:build go1.18
// +build go1.18

package exact_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/exact"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-2(3+(4)5)!")
	f.Add("2^-(1+1)")
	f.Add("1,5×2÷3−4")
	f.Add("((1)")
	f.Add("5!%.")
	f.Fuzz(func(t *testing.T, s string) {
		opts := []exact.Option{exact.Steps(1000), exact.MaxDigits(1000)}
		a, aerr := exact.Evaluate(s, opts...)
		b, berr := exact.Evaluate(s, opts...)
		if (aerr == nil) != (berr == nil) {
			t.Fatalf("%q: nondeterministic errors %v and %v", s, aerr, berr)
		}
		if aerr != nil {
			var e *exact.Error
			if !errors.As(aerr, &e) {
				t.Fatalf("%q: error %#v is not an *Error", s, aerr)
			}
			if e.Index > len([]rune(s)) {
				t.Errorf("%q: error index %d past end", s, e.Index)
			}
			return
		}
		if a.Cmp(b) != 0 {
			t.Errorf("%q: nondeterministic results %v and %v", s, a, b)
		}
		if a.Denom().Sign() <= 0 {
			t.Errorf("%q: non-positive denominator in %v", s, a)
		}
		exact.Display(a, false)
		exact.Display(a, true)
	})
}
