package exact

import (
	"unicode"
)

// builder walks an expression once, recursing on each open parenthesis, and
// builds its group tree. Groups are resolved as soon as they close.
type builder struct {
	src []rune
	g   *guard
}

// level is the state of the walk within one group.
type level struct {
	kids []*node
	// cur is the term being built.
	cur *node
	// negcur is a pending sign for cur, and negnext is a pending sign for the
	// term after cur, collected after cur's operator.
	negcur, negnext bool
	// started means cur exists. closed means no more digits may be appended
	// to cur. pending means cur has an infix operator and the next term must
	// start a new sibling.
	started, closed, pending bool
	decimal                  bool
}

// flush moves cur into the sibling list and starts over with no term.
func (l *level) flush() {
	if l.negcur {
		l.cur.val = l.cur.val.Neg()
		l.cur.neg = true
	}
	l.kids = append(l.kids, l.cur)
	l.cur = nil
	l.started, l.closed, l.pending, l.decimal = false, false, false, false
	l.negcur, l.negnext = l.negnext, false
}

// implicit joins cur to a following term at pos by multiplication.
func (l *level) implicit(pos int) {
	l.cur.op = OpMul
	l.cur.oppos = pos
	l.flush()
}

// group walks src from start at the given depth. open is the position of the
// group's open parenthesis, or -1 at depth 0. The results are the resolved
// group and the position of its close parenthesis, or len(src) at depth 0.
func (b *builder) group(start, open, depth int) (*node, int, error) {
	var l level
	for i := start; i < len(b.src); i++ {
		c := b.src[i]
		switch {
		case unicode.IsSpace(c):
			// do nothing
		case '0' <= c && c <= '9':
			if l.pending {
				l.flush()
			}
			if l.started && !l.closed {
				l.cur.val = l.cur.val.digit(c, l.decimal)
				l.cur.text = append(l.cur.text, c)
				continue
			}
			if l.started {
				// 2(3)4 -> 2 * (3) * 4
				l.implicit(i)
			}
			l.cur = &node{kind: nodeTerm, val: Rational{}.digit(c, false), pos: i, text: []rune{c}}
			l.started = true
		case c == '.' || c == ',':
			if !l.started || l.closed {
				return nil, 0, errat(NumberCannotBeginWithDecimal, i, string(c))
			}
			if l.decimal {
				return nil, 0, errat(TooManyDecimalPoints, i, string(c))
			}
			l.decimal = true
			l.cur.text = append(l.cur.text, c)
		case c == '(':
			if l.started {
				if l.pending {
					l.flush()
				} else {
					l.implicit(i)
				}
			}
			n, end, err := b.group(i+1, i, depth+1)
			if err != nil {
				return nil, 0, err
			}
			l.cur = n
			l.started, l.closed = true, true
			i = end
		case c == ')':
			if l.pending {
				return nil, 0, errat(TrailingOperatorAtGroupEnd, i, string(c))
			}
			if depth == 0 {
				return nil, 0, errat(TooManyClosingParentheses, i, string(c))
			}
			if !l.started && len(l.kids) == 0 {
				return nil, 0, errat(EmptyParentheses, i, string(c))
			}
			n, err := b.finish(&l, open, i)
			return n, i, err
		case infix(c) != OpNone:
			op := infix(c)
			if l.started && !l.pending {
				l.cur.op = op
				l.cur.oppos = i
				l.closed, l.pending = true, true
				continue
			}
			// Only signs are allowed where a term must start. After an infix
			// operator, only - is; 1++2 is a doubled operator.
			switch {
			case op == OpSub && !l.started:
				l.negcur = !l.negcur
			case op == OpSub:
				l.negnext = !l.negnext
			case op == OpAdd && !l.started:
				// do nothing
			default:
				return nil, 0, errat(UnexpectedOperator, i, string(c))
			}
		case c == '!' || c == '%':
			if !l.started || l.pending {
				return nil, 0, errat(UnexpectedOperator, i, string(c))
			}
			if c == '!' {
				v, err := l.cur.val.factorial(b.g)
				if err != nil {
					return nil, 0, at(err, i)
				}
				l.cur.val = v
			} else {
				l.cur.val = l.cur.val.Percent()
			}
			l.cur.post = append(l.cur.post, c)
			l.closed = true
		default:
			return nil, 0, errat(UnexpectedCharacter, i, string(c))
		}
	}
	end := len(b.src)
	if depth > 0 {
		return nil, 0, errat(UnclosedParenthesis, end, "")
	}
	if l.pending {
		return nil, 0, errat(UnexpectedEndOfExpression, end, "")
	}
	n, err := b.finish(&l, open, end)
	return n, end, err
}

// finish completes the group being walked by l and resolves its value.
func (b *builder) finish(l *level, open, end int) (*node, error) {
	if l.started {
		l.flush()
	}
	n := &node{kind: nodeGroup, pos: open, kids: l.kids}
	switch len(l.kids) {
	case 0:
		return nil, errat(EmptyExpression, end, "")
	case 1:
		n.val = l.kids[0].val
	default:
		v, err := resolve(l.kids, b.g)
		if err != nil {
			return nil, err
		}
		n.val = v
	}
	return n, nil
}
