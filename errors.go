package exact

import (
	"strconv"
)

// Kind classifies an evaluation error.
type Kind int8

// Syntax errors. These always carry the index of the offending character.
const (
	UnexpectedCharacter Kind = iota
	UnexpectedOperator
	TooManyDecimalPoints
	NumberCannotBeginWithDecimal
	UnclosedParenthesis
	TooManyClosingParentheses
	EmptyParentheses
	TrailingOperatorAtGroupEnd
	UnexpectedEndOfExpression
	EmptyExpression
)

// Semantic errors. During evaluation they carry the index of the operator
// that failed; from Rational methods the index is -1.
const (
	FactorialOfNonInteger Kind = iota + EmptyExpression + 1
	FractionalExponentUnsupported
	DivisionByZero
)

// Resource errors.
const (
	// ComputationTimeout means a factorial or power ran out of time or steps,
	// or the evaluation context was canceled.
	ComputationTimeout Kind = iota + DivisionByZero + 1
	// ResultTooLarge means a factorial or power was predicted to exceed the
	// digit limit set with MaxDigits.
	ResultTooLarge
	// PrecisionLimitExceeded comes only from Rational.Float64. The exact value
	// is known but cannot be shown faithfully as a float64.
	PrecisionLimitExceeded
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

var kindmsg = [...]string{
	UnexpectedCharacter:           "unexpected character",
	UnexpectedOperator:            "unexpected operator",
	TooManyDecimalPoints:          "number has too many decimal separators",
	NumberCannotBeginWithDecimal:  "number cannot begin with a decimal separator",
	UnclosedParenthesis:           "not all parentheses were closed",
	TooManyClosingParentheses:     "more parentheses closed than opened",
	EmptyParentheses:              "parentheses cannot be empty",
	TrailingOperatorAtGroupEnd:    "operator at end of group",
	UnexpectedEndOfExpression:     "operator at end of expression",
	EmptyExpression:               "no expression",
	FactorialOfNonInteger:         "factorial is only defined for non-negative integers",
	FractionalExponentUnsupported: "exponent must be an integer",
	DivisionByZero:                "division by zero",
	ComputationTimeout:            "computation took too long",
	ResultTooLarge:                "result would be too large",
	PrecisionLimitExceeded:        "value exceeds display precision",
}

// Error is an error from evaluating an expression. It implements InputError.
type Error struct {
	// Kind is the class of the error.
	Kind Kind
	// Index is the zero-based rune offset into the expression at which the
	// error was detected, or -1 if no single position applies.
	Index int
	// Text is the offending character or operator, if any.
	Text string
	// Err is the underlying cause, e.g. the error of a canceled context.
	Err error
}

func (err *Error) Error() string {
	msg := kindmsg[err.Kind]
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return errpos(err.Index, msg)
}

func (err *Error) Pos() int {
	return err.Index
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is an *Error of the same kind. This makes the
// Err* sentinels usable with errors.Is regardless of position.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrUnexpectedCharacter           = &Error{Kind: UnexpectedCharacter, Index: -1}
	ErrUnexpectedOperator            = &Error{Kind: UnexpectedOperator, Index: -1}
	ErrTooManyDecimalPoints          = &Error{Kind: TooManyDecimalPoints, Index: -1}
	ErrNumberCannotBeginWithDecimal  = &Error{Kind: NumberCannotBeginWithDecimal, Index: -1}
	ErrUnclosedParenthesis           = &Error{Kind: UnclosedParenthesis, Index: -1}
	ErrTooManyClosingParentheses     = &Error{Kind: TooManyClosingParentheses, Index: -1}
	ErrEmptyParentheses              = &Error{Kind: EmptyParentheses, Index: -1}
	ErrTrailingOperatorAtGroupEnd    = &Error{Kind: TrailingOperatorAtGroupEnd, Index: -1}
	ErrUnexpectedEndOfExpression     = &Error{Kind: UnexpectedEndOfExpression, Index: -1}
	ErrEmptyExpression               = &Error{Kind: EmptyExpression, Index: -1}
	ErrFactorialOfNonInteger         = &Error{Kind: FactorialOfNonInteger, Index: -1}
	ErrFractionalExponentUnsupported = &Error{Kind: FractionalExponentUnsupported, Index: -1}
	ErrDivisionByZero                = &Error{Kind: DivisionByZero, Index: -1}
	ErrComputationTimeout            = &Error{Kind: ComputationTimeout, Index: -1}
	ErrResultTooLarge                = &Error{Kind: ResultTooLarge, Index: -1}
	ErrPrecisionLimitExceeded        = &Error{Kind: PrecisionLimitExceeded, Index: -1}
)

// errat creates an error of the given kind at a position.
func errat(kind Kind, pos int, text string) *Error {
	return &Error{Kind: kind, Index: pos, Text: text}
}

// at returns a copy of err positioned at pos, unless err already has a
// position or is not an *Error.
func at(err error, pos int) error {
	e, ok := err.(*Error)
	if !ok || e.Index >= 0 {
		return err
	}
	r := *e
	r.Index = pos
	return &r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos < 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from evaluating an expression implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based rune offset of the error in the expression,
	// or -1 if the error is not tied to a single position.
	Pos() int
}

var _ InputError = (*Error)(nil)
