// Package predicate defines the atomic predicates and paths that the path
// planner enumerates in plaintext before any FHE primitive is invoked
// (system data model §3.3). A Predicate is a pure value; it carries no
// ciphertext and is safe to use as a map key for the circuit builder's
// memoization cache (system §3.4).
package predicate

import "fmt"

// Op discriminates predicate kinds.
type Op uint8

const (
	// OpTrue / OpFalse are trivial constants.
	OpTrue Op = iota
	OpFalse
	// OpEq: content byte at Index equals Const.
	OpEq
	// OpGe: content byte at Index >= Const.
	OpGe
	// OpLe: content byte at Index <= Const.
	OpLe
	// OpOneOf: content byte at Index is a member of Set. Lowered by the
	// circuit builder to an OR-fold over Eq predicates (system §4.4).
	OpOneOf
	// OpNot: logical negation of Inner. Inner must itself be a
	// single-byte predicate (Eq/Ge/Le/OneOf/OpAnd-of-Ge-Le).
	OpNot
	// OpAnd: conjunction of Children. Used only to collapse a Range's two
	// atomic predicates (Ge, Le) into one value when Range sits directly
	// under Not — Range itself, unwrapped, is planned as two separate path
	// predicates (system §4.3), not as an OpAnd.
	OpAnd
)

func (o Op) String() string {
	switch o {
	case OpTrue:
		return "True"
	case OpFalse:
		return "False"
	case OpEq:
		return "Eq"
	case OpGe:
		return "Ge"
	case OpLe:
		return "Le"
	case OpOneOf:
		return "OneOf"
	case OpNot:
		return "Not"
	case OpAnd:
		return "And"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Predicate is an atomic predicate over one content position. It is not
// comparable (Set and Children are slices), so the memoization cache is
// keyed by Key (see AsKey) rather than by Predicate itself.
type Predicate struct {
	Op    Op
	Index int
	Const byte
	Inner    *Predicate  // for OpNot
	Set      []byte      // for OpOneOf, sorted ascending, deduplicated
	Children []Predicate // for OpAnd
}

// Key is the comparable memoization key for a Predicate: (kind, index,
// constant), per §4.4's memoization-key rule. Compound predicates
// (OneOf, Not) are not memoized at their own level — only their lowered
// atomic leaves are — so Key is only meaningful for Eq/Ge/Le/True/False.
type Key struct {
	Op    Op
	Index int
	Const byte
}

// AsKey returns p's memoization key. Valid only for Eq/Ge/Le/True/False.
func (p Predicate) AsKey() Key {
	return Key{Op: p.Op, Index: p.Index, Const: p.Const}
}

// Eq constructs an OpEq predicate.
func Eq(index int, b byte) Predicate { return Predicate{Op: OpEq, Index: index, Const: b} }

// Ge constructs an OpGe predicate.
func Ge(index int, b byte) Predicate { return Predicate{Op: OpGe, Index: index, Const: b} }

// Le constructs an OpLe predicate.
func Le(index int, b byte) Predicate { return Predicate{Op: OpLe, Index: index, Const: b} }

// True constructs the trivially-true predicate.
func True() Predicate { return Predicate{Op: OpTrue} }

// False constructs the trivially-false predicate.
func False() Predicate { return Predicate{Op: OpFalse} }

// OneOf constructs an OpOneOf predicate over a sorted, de-duplicated copy
// of set.
func OneOf(index int, set []byte) Predicate {
	dedup := make(map[byte]struct{}, len(set))
	for _, b := range set {
		dedup[b] = struct{}{}
	}
	sorted := make([]byte, 0, len(dedup))
	for b := range dedup {
		sorted = append(sorted, b)
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return Predicate{Op: OpOneOf, Index: index, Set: sorted}
}

// Not constructs an OpNot predicate wrapping inner.
func Not(inner Predicate) Predicate { return Predicate{Op: OpNot, Inner: &inner} }

// And constructs an OpAnd predicate conjoining children. Only used to
// collapse a Range into a single value for Not-wrapping; see OpAnd's doc.
func And(children ...Predicate) Predicate { return Predicate{Op: OpAnd, Children: children} }

// Path is a plaintext conjunction of atomic predicates, plus the cursor
// position the path leaves the content buffer at. Paths are pure plaintext
// values: created by the planner, consumed by the circuit builder,
// discarded (system §3.3).
type Path struct {
	Predicates []Predicate
	// Start is the candidate starting index this path was derived from;
	// carried for memo locality only, not correctness (system §4.3).
	Start int
	// Cursor is the final plaintext cursor position after this path's
	// predicates are satisfied.
	Cursor int
}

// WithPredicate returns a copy of p with pred appended.
func (p Path) WithPredicate(pred Predicate) Path {
	preds := make([]Predicate, len(p.Predicates), len(p.Predicates)+1)
	copy(preds, p.Predicates)
	preds = append(preds, pred)
	p.Predicates = preds
	return p
}
