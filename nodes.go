package exact

import (
	"strings"
)

// node is a term or a parenthesized group in the group tree of an
// expression. Every node holds its resolved value; a group's value is
// resolved as soon as its closing parenthesis is read.
type node struct {
	kind nodeKind

	// val is the value of the node with postfix operators and sign applied.
	val Rational
	// op is the operator joining the node to its right sibling.
	op Op
	// pos is the position of the first digit of a term or the open
	// parenthesis of a group, and oppos is the position of op.
	pos, oppos int

	// text is the literal digits of a term.
	text []rune
	// post is the postfix operators applied to the node, in order.
	post []rune
	// neg is whether a sign chain negated the node.
	neg bool

	kids []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeTerm  // number literal
	nodeGroup // parenthesized sequence; kids are its terms
)

// String renders the subtree with alternating round and square brackets
// marking groups.
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	if n.neg {
		b.WriteByte('-')
	}
	switch n.kind {
	case nodeTerm:
		b.WriteString(string(n.text))
	case nodeGroup:
		var l, r byte = '(', ')'
		if square {
			l, r = '[', ']'
		}
		b.WriteByte(l)
		n.fmtkids(b, !square)
		b.WriteByte(r)
	default:
		panic("exact: invalid node kind after writing " + b.String())
	}
	b.WriteString(string(n.post))
}

func (n *node) fmtkids(b *strings.Builder, square bool) {
	for i, k := range n.kids {
		k.fmt(b, square)
		if i < len(n.kids)-1 {
			b.WriteByte(' ')
			b.WriteString(k.op.sym())
			b.WriteByte(' ')
		}
	}
}
