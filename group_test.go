package exact

import (
	"context"
	"testing"
)

func walk(t *testing.T, src string) *node {
	t.Helper()
	b := builder{src: []rune(src), g: newguard(context.Background(), defaults())}
	n, end, err := b.group(0, -1, 0)
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	if end != len(b.src) {
		t.Fatalf("%q: ended at %d, not %d", src, end, len(b.src))
	}
	return n
}

func TestGroupPositions(t *testing.T) {
	type want struct {
		kind  nodeKind
		pos   int
		op    Op
		oppos int
	}
	cases := []struct {
		src  string
		kids []want
	}{
		{"12+(3)", []want{
			{nodeTerm, 0, OpAdd, 2},
			{nodeGroup, 3, OpNone, 0},
		}},
		{"2(3)", []want{
			{nodeTerm, 0, OpMul, 1},
			{nodeGroup, 1, OpNone, 0},
		}},
		{"(3)4", []want{
			{nodeGroup, 0, OpMul, 3},
			{nodeTerm, 3, OpNone, 0},
		}},
		{" 1 ^ -2", []want{
			{nodeTerm, 1, OpPow, 3},
			{nodeTerm, 6, OpNone, 0},
		}},
		{"5!3", []want{
			{nodeTerm, 0, OpMul, 2},
			{nodeTerm, 2, OpNone, 0},
		}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n := walk(t, c.src)
			if n.kind != nodeGroup || n.pos != -1 {
				t.Errorf("root is %v at %d", n.kind, n.pos)
			}
			if len(n.kids) != len(c.kids) {
				t.Fatalf("want %d kids, got %d: %v", len(c.kids), len(n.kids), n)
			}
			for i, k := range n.kids {
				got := want{k.kind, k.pos, k.op, k.oppos}
				if got != c.kids[i] {
					t.Errorf("kid %d: want %+v, got %+v", i, c.kids[i], got)
				}
			}
		})
	}
}

func TestGroupSigns(t *testing.T) {
	cases := []struct {
		src string
		neg []bool
	}{
		{"-1", []bool{true}},
		{"--1", []bool{false}},
		{"1--2", []bool{false, true}},
		{"-1*-2", []bool{true, true}},
		{"2^-(1)", []bool{false, true}},
		{"-(1)2", []bool{true, false}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n := walk(t, c.src)
			if len(n.kids) != len(c.neg) {
				t.Fatalf("want %d kids, got %d: %v", len(c.neg), len(n.kids), n)
			}
			for i, k := range n.kids {
				if k.neg != c.neg[i] {
					t.Errorf("kid %d: want neg %t, got %t", i, c.neg[i], k.neg)
				}
				if (k.val.Sign() < 0) != c.neg[i] {
					t.Errorf("kid %d: value %v does not match sign", i, k.val)
				}
			}
		})
	}
}

func TestGroupResolvesEarly(t *testing.T) {
	n := walk(t, "1+(2*(3+4))")
	g := n.kids[1]
	if g.kind != nodeGroup || g.val.Cmp(NewRational(14, 1)) != 0 {
		t.Errorf("outer group is %v with value %v", g, g.val)
	}
	in := g.kids[1]
	if in.kind != nodeGroup || in.pos != 5 || in.val.Cmp(NewRational(7, 1)) != 0 {
		t.Errorf("inner group is %v at %d with value %v", in, in.pos, in.val)
	}
	if n.val.Cmp(NewRational(15, 1)) != 0 {
		t.Errorf("want 15, got %v", n.val)
	}
}

func TestNodeString(t *testing.T) {
	n := walk(t, "-(1+(2))3!%")
	if got, want := n.String(), "(-[1 + (2)] * 3!%)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	defer func() {
		if recover() == nil {
			t.Error("no panic formatting invalid node")
		}
	}()
	_ = (&node{}).String()
}
