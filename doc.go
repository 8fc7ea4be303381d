// Package exact implements a calculator that evaluates arithmetic expressions
// to exact rational numbers.
//
// The syntax is what a person would type into a pocket calculator: "1+2*3",
// "2(3+4)", "-(-5)", "5!", "50%", "2^-2". Numbers may use either '.' or ','
// as the decimal separator. A number directly followed by a parenthesized
// group, or a group followed by a number, is an implicit multiplication.
// Factorial and percent apply to the term immediately before them, so "-5!"
// is "-(5!)". Exponentiation binds tighter than multiplication and division,
// which bind tighter than addition and subtraction; operators of the same
// tier associate to the left, so "2^3^2" is 64.
//
// Results are never rounded. A Rational can be shown exactly with its String
// method or rounded with Decimal; Float64 reports PrecisionLimitExceeded when
// the exact value cannot be represented faithfully as a float64.
//
// Factorials and powers are computed by repeated multiplication under a time
// budget, so pathological inputs like "99999999!" fail with
// ComputationTimeout instead of hanging. See Timeout, Steps, and MaxDigits.
package exact
