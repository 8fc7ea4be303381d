package exact

import (
	"context"
	"math/big"
)

// Rational is an exact fraction with an arbitrary-precision numerator and a
// positive arbitrary-precision denominator. The sign is carried entirely by
// the numerator.
//
// Rationals are not reduced to lowest terms after each operation, since that
// would cost a GCD on every intermediate step; use Shorten when the reduced
// form is wanted. Equal values may therefore have different numerators and
// denominators. Use Cmp to compare values.
//
// Rational has value semantics: no method modifies its receiver or its
// arguments. The zero value is 0/1.
type Rational struct {
	num *big.Int
	den *big.Int
}

var (
	bigzero = big.NewInt(0)
	bigone  = big.NewInt(1)
	bigten  = big.NewInt(10)
	bighund = big.NewInt(100)
)

// NewRational creates the rational num/den. Panics if den is zero.
func NewRational(num, den int64) Rational {
	r, err := FromBig(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return r
}

// FromBig creates the rational num/den from copies of num and den. The result
// is unreduced. If den is zero, the error is DivisionByZero.
func FromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, &Error{Kind: DivisionByZero, Index: -1}
	}
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Rational{num: n, den: d}, nil
}

// FromRat creates a Rational equal to r.
func FromRat(r *big.Rat) Rational {
	return Rational{num: new(big.Int).Set(r.Num()), den: new(big.Int).Set(r.Denom())}
}

// parts returns the numerator and denominator of x. The results must not be
// modified.
func (x Rational) parts() (num, den *big.Int) {
	num, den = x.num, x.den
	if num == nil {
		num = bigzero
	}
	if den == nil {
		den = bigone
	}
	return num, den
}

// Num returns a copy of the numerator of x.
func (x Rational) Num() *big.Int {
	num, _ := x.parts()
	return new(big.Int).Set(num)
}

// Denom returns a copy of the denominator of x. It is always positive.
func (x Rational) Denom() *big.Int {
	_, den := x.parts()
	return new(big.Int).Set(den)
}

// Sign returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Rational) Sign() int {
	num, _ := x.parts()
	return num.Sign()
}

// IsInt returns whether x represents an integer, i.e. whether the numerator
// is a multiple of the denominator.
func (x Rational) IsInt() bool {
	num, den := x.parts()
	if den.Cmp(bigone) == 0 {
		return true
	}
	return new(big.Int).Rem(num, den).Sign() == 0
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x Rational) Cmp(y Rational) int {
	xn, xd := x.parts()
	yn, yd := y.parts()
	l := new(big.Int).Mul(xn, yd)
	r := new(big.Int).Mul(yn, xd)
	return l.Cmp(r)
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	num, den := x.parts()
	return Rational{num: new(big.Int).Neg(num), den: den}
}

// Add returns x+y over the common denominator x.den*y.den.
func (x Rational) Add(y Rational) Rational {
	xn, xd := x.parts()
	yn, yd := y.parts()
	num := new(big.Int).Mul(xn, yd)
	num.Add(num, new(big.Int).Mul(xd, yn))
	return Rational{num: num, den: new(big.Int).Mul(xd, yd)}
}

// Sub returns x-y over the common denominator x.den*y.den.
func (x Rational) Sub(y Rational) Rational {
	xn, xd := x.parts()
	yn, yd := y.parts()
	num := new(big.Int).Mul(xn, yd)
	num.Sub(num, new(big.Int).Mul(xd, yn))
	return Rational{num: num, den: new(big.Int).Mul(xd, yd)}
}

// Mul returns x*y.
func (x Rational) Mul(y Rational) Rational {
	xn, xd := x.parts()
	yn, yd := y.parts()
	return Rational{num: new(big.Int).Mul(xn, yn), den: new(big.Int).Mul(xd, yd)}
}

// Inv returns 1/x. If x is zero, the error is DivisionByZero.
func (x Rational) Inv() (Rational, error) {
	num, den := x.parts()
	if num.Sign() == 0 {
		return Rational{}, &Error{Kind: DivisionByZero, Index: -1}
	}
	n, d := new(big.Int).Set(den), new(big.Int).Set(num)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Rational{num: n, den: d}, nil
}

// Quo returns x/y. If y is zero, the error is DivisionByZero.
func (x Rational) Quo(y Rational) (Rational, error) {
	r, err := y.Inv()
	if err != nil {
		return Rational{}, err
	}
	return x.Mul(r), nil
}

// Percent returns x/100.
func (x Rational) Percent() Rational {
	num, den := x.parts()
	return Rational{num: num, den: new(big.Int).Mul(den, bighund)}
}

// Pow returns x^y. y must be an integer; otherwise the error is
// FractionalExponentUnsupported. The power is computed by repeated
// multiplication under the limits given by opts, and then inverted if y is
// negative.
func (x Rational) Pow(y Rational, opts ...Option) (Rational, error) {
	return x.pow(y, newguard(context.Background(), newconfig(opts)))
}

func (x Rational) pow(y Rational, g *guard) (Rational, error) {
	if !y.IsInt() {
		return Rational{}, &Error{Kind: FractionalExponentUnsupported, Index: -1}
	}
	yn, yd := y.parts()
	n := new(big.Int).Quo(yn, yd)
	inv := n.Sign() < 0
	n.Abs(n)
	xn, xd := x.parts()
	var r Rational
	switch {
	case n.Sign() == 0:
		r = NewRational(1, 1)
	case xn.Sign() == 0:
		r = Rational{}
	case new(big.Int).Abs(xn).Cmp(xd) == 0:
		// ±1 to any power needs no loop.
		r = NewRational(int64(xn.Sign()), 1)
		if n.Bit(0) == 0 {
			r = NewRational(1, 1)
		}
	default:
		if err := g.checkpow(x, n); err != nil {
			return Rational{}, err
		}
		num, den := big.NewInt(1), big.NewInt(1)
		for i := new(big.Int); i.Cmp(n) < 0; i.Add(i, bigone) {
			if err := g.tick(); err != nil {
				return Rational{}, err
			}
			num.Mul(num, xn)
			den.Mul(den, xd)
		}
		r = Rational{num: num, den: den}
	}
	if inv {
		return r.Inv()
	}
	return r, nil
}

// Factorial returns x!. x must be a non-negative integer; otherwise the error
// is FactorialOfNonInteger. The product is computed under the limits given by
// opts.
func (x Rational) Factorial(opts ...Option) (Rational, error) {
	return x.factorial(newguard(context.Background(), newconfig(opts)))
}

func (x Rational) factorial(g *guard) (Rational, error) {
	if x.Sign() < 0 || !x.IsInt() {
		return Rational{}, &Error{Kind: FactorialOfNonInteger, Index: -1}
	}
	xn, xd := x.parts()
	n := new(big.Int).Quo(xn, xd)
	if err := g.checkfact(n); err != nil {
		return Rational{}, err
	}
	r := big.NewInt(1)
	for i := big.NewInt(2); i.Cmp(n) <= 0; i.Add(i, bigone) {
		if err := g.tick(); err != nil {
			return Rational{}, err
		}
		r.Mul(r, i)
	}
	return Rational{num: r, den: big.NewInt(1)}, nil
}

// Shorten returns x in lowest terms.
func (x Rational) Shorten() Rational {
	num, den := x.parts()
	if num.Sign() == 0 {
		return Rational{num: big.NewInt(0), den: big.NewInt(1)}
	}
	d := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	return Rational{num: new(big.Int).Quo(num, d), den: new(big.Int).Quo(den, d)}
}

// digit returns x with a decimal digit appended. If frac is true, the digit
// is appended after the decimal separator.
func (x Rational) digit(d rune, frac bool) Rational {
	num, den := x.parts()
	n := new(big.Int).Mul(num, bigten)
	n.Add(n, big.NewInt(int64(d-'0')))
	if frac {
		den = new(big.Int).Mul(den, bigten)
	}
	return Rational{num: n, den: den}
}

// Rat returns x as a new big.Rat.
func (x Rational) Rat() *big.Rat {
	num, den := x.parts()
	return new(big.Rat).SetFrac(num, den)
}
