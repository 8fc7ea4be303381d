package exact

import (
	"context"
	"math"
	"math/big"
	"time"

	"github.com/zephyrtronium/bigfloat"
)

// guard bounds the work done by factorials and powers during one evaluation.
// It is polled once per loop iteration; it cannot interrupt a single big
// multiplication.
type guard struct {
	ctx      context.Context
	now      func() time.Time
	deadline time.Time
	steps    int64
	limit    int64
	digits   int
}

func newguard(ctx context.Context, c config) *guard {
	if ctx == nil {
		ctx = context.Background()
	}
	g := guard{
		ctx:    ctx,
		now:    c.now,
		limit:  c.steps,
		digits: c.digits,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if c.timeout > 0 {
		g.deadline = g.now().Add(c.timeout)
	}
	return &g
}

// tick records one loop iteration. The returned error has no position.
func (g *guard) tick() error {
	g.steps++
	if g.limit > 0 && g.steps > g.limit {
		return &Error{Kind: ComputationTimeout, Index: -1}
	}
	if err := g.ctx.Err(); err != nil {
		return &Error{Kind: ComputationTimeout, Index: -1, Err: err}
	}
	if !g.deadline.IsZero() && g.now().After(g.deadline) {
		return &Error{Kind: ComputationTimeout, Index: -1}
	}
	return nil
}

// checkpow checks the predicted size of x^n against the digit limit.
func (g *guard) checkpow(x Rational, n *big.Int) error {
	if g.digits <= 0 {
		return nil
	}
	num, den := x.parts()
	m := new(big.Int).Abs(num)
	if m.Cmp(den) < 0 {
		m = den
	}
	e, _ := new(big.Float).SetInt(n).Float64()
	return g.fits(math.Abs(e) * log10(m))
}

// checkfact checks the predicted size of n! against the digit limit.
func (g *guard) checkfact(n *big.Int) error {
	if g.digits <= 0 {
		return nil
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	lg, _ := math.Lgamma(f + 1)
	return g.fits(lg / math.Ln10)
}

func (g *guard) fits(digits float64) error {
	if math.IsNaN(digits) || digits > float64(g.digits) {
		return &Error{Kind: ResultTooLarge, Index: -1}
	}
	return nil
}

// log10 approximates the base-10 logarithm of a positive integer.
func log10(x *big.Int) float64 {
	const prec = 64
	r := new(big.Float).SetPrec(prec).SetInt(x)
	bigfloat.Log(r, r)
	ten := new(big.Float).SetPrec(prec).SetInt64(10)
	bigfloat.Log(ten, ten)
	r.Quo(r, ten)
	f, _ := r.Float64()
	return f
}
