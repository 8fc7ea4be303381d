package exact

// term is a sibling awaiting contraction.
type term struct {
	val Rational
	// op joins the term to its right neighbor, and pos is the position of op.
	op  Op
	pos int
}

// resolve contracts the values of a sequence of siblings to a single value.
// Exponents are contracted first, then multiplications and divisions, then
// additions and subtractions, each tier left to right. The last sibling must
// have no operator.
func resolve(kids []*node, g *guard) (Rational, error) {
	terms := make([]term, len(kids))
	for i, k := range kids {
		terms[i] = term{val: k.val, op: k.op, pos: k.oppos}
	}
	for _, t := range tiers {
		var err error
		terms, err = contract(terms, t, g)
		if err != nil {
			return Rational{}, err
		}
	}
	if len(terms) != 1 {
		panic("exact: uncontracted terms after resolving (missing operator?)")
	}
	return terms[0].val, nil
}

// contract merges each adjacent pair whose left operator is in t. The merged
// term takes the operator of its right element.
func contract(terms []term, t tier, g *guard) ([]term, error) {
	r := make([]term, 0, len(terms))
	acc := terms[0]
	for _, next := range terms[1:] {
		if !t.has(acc.op) {
			r = append(r, acc)
			acc = next
			continue
		}
		v, err := apply(acc, next, g)
		if err != nil {
			return nil, err
		}
		acc = term{val: v, op: next.op, pos: next.pos}
	}
	return append(r, acc), nil
}

// apply computes l op r using the operator of l.
func apply(l, r term, g *guard) (Rational, error) {
	var (
		v   Rational
		err error
	)
	switch l.op {
	case OpAdd:
		v = l.val.Add(r.val)
	case OpSub:
		v = l.val.Sub(r.val)
	case OpMul:
		v = l.val.Mul(r.val)
	case OpDiv:
		v, err = l.val.Quo(r.val)
	case OpPow:
		v, err = l.val.pow(r.val, g)
	default:
		panic("exact: apply with operator " + l.op.String())
	}
	if err != nil {
		return Rational{}, at(err, l.pos)
	}
	return v, nil
}
