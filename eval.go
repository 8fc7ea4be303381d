package exact

import (
	"context"
	"strings"
)

// Evaluate evaluates an expression to an exact, unreduced rational. If the
// expression is invalid or a computation fails, the error is an *Error whose
// Index locates the problem in expr, counted in runes.
//
// Factorials and powers share a wall-clock budget of DefaultTimeout unless
// opts say otherwise.
func Evaluate(expr string, opts ...Option) (Rational, error) {
	return EvaluateContext(context.Background(), expr, opts...)
}

// EvaluateContext is like Evaluate, but additionally stops factorials and
// powers with ComputationTimeout once ctx is done. The returned error then
// unwraps to ctx.Err(). Cancellation is only noticed between multiplication
// steps.
func EvaluateContext(ctx context.Context, expr string, opts ...Option) (Rational, error) {
	n, err := build(ctx, expr, opts)
	if err != nil {
		return Rational{}, err
	}
	return n.val, nil
}

// Grouping evaluates an expression and returns a rendering of how it was
// grouped, with alternating round and square brackets marking parenthesized
// groups and implicit multiplications made explicit. For example, the
// grouping of "-2(3+(4)5)!" is "-2 * (3 + [4] * 5)!".
func Grouping(expr string, opts ...Option) (string, error) {
	n, err := build(context.Background(), expr, opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	n.fmtkids(&b, false)
	return b.String(), nil
}

func build(ctx context.Context, expr string, opts []Option) (*node, error) {
	b := builder{
		src: []rune(expr),
		g:   newguard(ctx, newconfig(opts)),
	}
	n, _, err := b.group(0, -1, 0)
	return n, err
}
