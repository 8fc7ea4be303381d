package exact_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/zephyrtronium/exact"
)

// pow2 returns 2^n/1 or 1/2^n.
func pow2(n uint, inv bool) exact.Rational {
	p := new(big.Int).Lsh(big.NewInt(1), n)
	var r exact.Rational
	var err error
	if inv {
		r, err = exact.FromBig(big.NewInt(1), p)
	} else {
		r, err = exact.FromBig(p, big.NewInt(1))
	}
	if err != nil {
		panic(err)
	}
	return r
}

func TestDecimal(t *testing.T) {
	tenthirty, _ := exact.FromBig(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil), big.NewInt(3))
	cases := []struct {
		name   string
		x      exact.Rational
		places int
		want   string
	}{
		{"third", New(1, 3), 2, "0.33"},
		{"two-thirds", New(2, 3), 2, "0.67"},
		{"half-up", New(1, 8), 2, "0.13"},
		{"half-up-neg", New(-1, 8), 2, "-0.13"},
		{"whole-up", New(5, 2), 0, "3"},
		{"whole-up-neg", New(-5, 2), 0, "-3"},
		{"trailing", New(1, 4), 15, "0.25"},
		{"integer", New(100, 1), 2, "100"},
		{"unreduced", New(300, 3), 2, "100"},
		{"neg-zero", New(-1, 1000), 2, "0"},
		{"zero", exact.Rational{}, 5, "0"},
		{"negative-places", New(7, 2), -1, "4"},
		{"huge", tenthirty, 2, strings.Repeat("3", 30) + ".33"},
		{"display", New(1, 3), exact.DisplayPlaces, "0.333333333333333"},
		{"display-up", New(2, 3), exact.DisplayPlaces, "0.666666666666667"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.x.Decimal(c.places); got != c.want {
				t.Errorf("(%v).Decimal(%d): want %q, got %q", c.x, c.places, c.want, got)
			}
		})
	}
}

func TestFloat64(t *testing.T) {
	cases := []struct {
		name string
		x    exact.Rational
		want float64
		ok   bool
	}{
		{"half", New(1, 2), 0.5, true},
		{"neg", New(-3, 4), -0.75, true},
		{"max", pow2(53, false), 9007199254740992, true},
		{"max-neg", pow2(53, false).Neg(), -9007199254740992, true},
		{"over", pow2(53, false).Add(New(1, 1)), 0, false},
		{"over-den", pow2(54, true), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := c.x.Float64()
			if !c.ok {
				if !errors.Is(err, exact.ErrPrecisionLimitExceeded) {
					t.Errorf("want PrecisionLimitExceeded, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if f != c.want {
				t.Errorf("want %g, got %g", c.want, f)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		name    string
		x       exact.Rational
		exact   string
		rounded string
	}{
		{"third", New(1, 3), "1/3", "0.333333333333333"},
		{"neg-third", New(-1, 3), "-1/3", "-0.333333333333333"},
		{"two-thirds", New(2, 3), "2/3", "0.666666666666667"},
		{"eighth", New(1, 8), "0.125", "0.125"},
		{"short", New(3, 20), "0.15", "0.15"},
		{"mixed", New(23, 2), "11.5", "11.5"},
		{"unreduced", New(4, 8), "0.5", "0.5"},
		{"integer", New(27, 27), "1", "1"},
		{"large", pow2(60, false), "1152921504606846976", "1152921504606846976"},
		{"tiny", pow2(60, true), "1/1152921504606846976", "1/1152921504606846976"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := exact.Display(c.x, false); got != c.exact {
				t.Errorf("exact display: want %q, got %q", c.exact, got)
			}
			if got := exact.Display(c.x, true); got != c.rounded {
				t.Errorf("rounded display: want %q, got %q", c.rounded, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		x    exact.Rational
		want string
	}{
		{New(6, 12), "1/2"},
		{New(-6, 4), "-3/2"},
		{New(10, 5), "2"},
		{New(0, 9), "0"},
		{exact.Rational{}, "0"},
	}
	for _, c := range cases {
		if got := c.x.String(); got != c.want {
			t.Errorf("%v/%v: want %q, got %q", c.x.Num(), c.x.Denom(), c.want, got)
		}
	}
}
