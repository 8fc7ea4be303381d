package exact

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DisplayPlaces is the number of digits after the decimal point that Display
// rounds to.
const DisplayPlaces = 15

// maxExact is the largest magnitude for which every integer is exactly
// representable as a float64.
var maxExact = new(big.Int).Lsh(big.NewInt(1), 53)

// Float64 returns the float64 closest to x. If the numerator or denominator
// of x exceeds 2^53 in magnitude, the error is PrecisionLimitExceeded with no
// position; the exact value is still available from String.
func (x Rational) Float64() (float64, error) {
	num, den := x.parts()
	if new(big.Int).Abs(num).Cmp(maxExact) > 0 || den.Cmp(maxExact) > 0 {
		return 0, &Error{Kind: PrecisionLimitExceeded, Index: -1}
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f, nil
}

// String returns x in lowest terms as "n/d", or as "n" if x is an integer.
func (x Rational) String() string {
	s := x.Shorten()
	if s.den.Cmp(bigone) == 0 {
		return s.num.String()
	}
	return s.num.String() + "/" + s.den.String()
}

// Decimal returns x as a decimal number rounded to the given number of digits
// after the decimal point, with ties rounded away from zero. Trailing zeros
// after the decimal point are removed, as is the point itself if nothing
// follows it. A result that rounds to zero is "0" regardless of the sign of x.
func (x Rational) Decimal(places int) string {
	if places < 0 {
		places = 0
	}
	num, den := x.parts()
	whole := new(big.Int).Quo(new(big.Int).Abs(num), den)
	prec := uint32(len(whole.String()) + places + 2)

	// Truncating the quotient to more digits than needed and then rounding
	// once gives the same result as rounding the exact value.
	ctx := apd.BaseContext.WithPrecision(prec)
	ctx.Rounding = apd.RoundDown
	n := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(num), 0)
	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(den), 0)
	var q apd.Decimal
	if _, err := ctx.Quo(&q, n, d); err != nil {
		panic("exact: decimal quotient: " + err.Error())
	}
	ctx.Rounding = apd.RoundHalfUp
	if _, err := ctx.Quantize(&q, &q, -int32(places)); err != nil {
		panic("exact: decimal rounding: " + err.Error())
	}
	q.Reduce(&q)
	if q.IsZero() {
		q.Negative = false
	}
	return q.Text('f')
}

// Display formats x the way a calculator display would. If x cannot be
// converted to a float64 without loss, the result is the exact fraction. If
// rounded is true, the result is otherwise x rounded to DisplayPlaces digits
// after the decimal point. If rounded is false, the rounded decimal is used
// only when it has at most three digits after the point, and the exact
// fraction is used otherwise, so that 1/3 shows as "1/3" but 1/8 as "0.125".
func Display(x Rational, rounded bool) string {
	s := x.Shorten()
	if _, err := s.Float64(); err != nil {
		return s.String()
	}
	dec := s.Decimal(DisplayPlaces)
	if rounded {
		return dec
	}
	if k := strings.IndexByte(dec, '.'); k >= 0 && len(dec)-k-1 > 3 {
		return s.String()
	}
	return dec
}
