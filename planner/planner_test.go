package planner

import (
	"testing"

	"github.com/coregx/hematch/ast"
	"github.com/coregx/hematch/predicate"
)

func TestPlanLiteralProducesOnePathPerStart(t *testing.T) {
	// /a/ against length-3 content: candidate starts 0,1,2 each produce one
	// path ending one byte later.
	paths := Plan(ast.Literal('a'), 3, false, false, DefaultConfig())
	if len(paths) != 3 {
		t.Fatalf("Plan() returned %d paths, want 3", len(paths))
	}
	for i, p := range paths {
		if p.Start != i || p.Cursor != i+1 {
			t.Errorf("paths[%d] = {Start:%d Cursor:%d}, want {Start:%d Cursor:%d}", i, p.Start, p.Cursor, i, i+1)
		}
		if len(p.Predicates) != 1 || p.Predicates[0].Op != predicate.OpEq {
			t.Errorf("paths[%d].Predicates = %v, want single OpEq", i, p.Predicates)
		}
	}
}

func TestPlanAnchoredStartOnlyStartsAtZero(t *testing.T) {
	paths := Plan(ast.Literal('a'), 3, true, false, DefaultConfig())
	if len(paths) != 1 {
		t.Fatalf("Plan() returned %d paths, want 1", len(paths))
	}
	if paths[0].Start != 0 {
		t.Errorf("paths[0].Start = %d, want 0", paths[0].Start)
	}
}

func TestPlanAnchoredEndPrunesShortPaths(t *testing.T) {
	// /a$/ against length 3: only the path starting at 2 ends exactly at 3.
	paths := Plan(ast.Literal('a'), 3, false, true, DefaultConfig())
	if len(paths) != 1 {
		t.Fatalf("Plan() returned %d paths, want 1", len(paths))
	}
	if paths[0].Cursor != 3 {
		t.Errorf("paths[0].Cursor = %d, want 3", paths[0].Cursor)
	}
}

func TestPlanEmptyWhenPatternCannotFit(t *testing.T) {
	// /ab/ against length-1 content can never match.
	paths := Plan(ast.Concat(ast.Literal('a'), ast.Literal('b')), 1, false, false, DefaultConfig())
	if len(paths) != 0 {
		t.Fatalf("Plan() returned %d paths, want 0", len(paths))
	}
	if paths == nil {
		t.Error("Plan() returned nil, want non-nil empty slice")
	}
}

func TestPlanAltUnionsBothBranches(t *testing.T) {
	// /a|bb/ against length-2 anchored-both content.
	n := ast.Alt(ast.Literal('a'), ast.Concat(ast.Literal('b'), ast.Literal('b')))
	paths := Plan(n, 2, true, true, DefaultConfig())
	if len(paths) != 1 {
		t.Fatalf("Plan() returned %d paths, want 1 ('a' cannot reach cursor 2 from start 0 anchored-end)", len(paths))
	}
	if len(paths[0].Predicates) != 2 {
		t.Errorf("paths[0].Predicates has %d entries, want 2 (the 'bb' branch)", len(paths[0].Predicates))
	}
}

func TestPlanRepeatBoundsUnbounded(t *testing.T) {
	// /a*/ against length 3, anchored both ends: the only way to cover all 3
	// positions is exactly 3 repetitions.
	n := ast.Repeat(ast.Literal('a'), 0, ast.Unbounded)
	paths := Plan(n, 3, true, true, DefaultConfig())
	found := false
	for _, p := range paths {
		if len(p.Predicates) == 3 {
			found = true
		}
	}
	if !found {
		t.Error("Plan() never produced the 3-repetition path covering all of a length-3 anchored match")
	}
}

func TestPlanNotWrappingLiteralNegatesEquality(t *testing.T) {
	n := ast.Not(ast.Literal('a'))
	paths := Plan(n, 1, true, true, DefaultConfig())
	if len(paths) != 1 {
		t.Fatalf("Plan() returned %d paths, want 1", len(paths))
	}
	pred := paths[0].Predicates[0]
	if pred.Op != predicate.OpNot || pred.Inner.Op != predicate.OpEq || pred.Inner.Const != 'a' {
		t.Errorf("Not(Literal('a')) predicate = %+v, want Not(Eq(_, 'a'))", pred)
	}
}

func TestPlanNotWrappingRangeCollapsesToAnd(t *testing.T) {
	n := ast.Not(ast.Range('a', 'z'))
	paths := Plan(n, 1, true, true, DefaultConfig())
	if len(paths) != 1 {
		t.Fatalf("Plan() returned %d paths, want 1", len(paths))
	}
	inner := paths[0].Predicates[0].Inner
	if inner.Op != predicate.OpAnd || len(inner.Children) != 2 {
		t.Errorf("Not(Range) inner predicate = %+v, want And(Ge, Le)", inner)
	}
}
