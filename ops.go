package exact

// Op is an infix operator joining a value to its right-hand neighbor.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -trimprefix=Op

// Operators contains the runes which are understood as infix operators.
const Operators = "+-*/^×÷−"

// infix gets the operator for a rune. The result is OpNone if r is not an
// infix operator.
func infix(r rune) Op {
	switch r {
	case '+':
		return OpAdd
	case '-', '−':
		return OpSub
	case '*', '×':
		return OpMul
	case '/', '÷':
		return OpDiv
	case '^':
		return OpPow
	default:
		return OpNone
	}
}

// sym returns the ASCII symbol for op.
func (op Op) sym() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return ""
	}
}

// tier is a set of operators contracted in the same resolver pass.
type tier []Op

func (t tier) has(op Op) bool {
	for _, o := range t {
		if o == op {
			return true
		}
	}
	return false
}

var (
	powtier = tier{OpPow}
	multier = tier{OpMul, OpDiv}
	addtier = tier{OpAdd, OpSub}
	// tiers is the order in which the resolver contracts operators.
	tiers = []tier{powtier, multier, addtier}
)
