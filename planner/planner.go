// Package planner implements the symbolic path planner described in the
// system's component design §4.3: it walks a normalized AST with a
// plaintext cursor, never touching a ciphertext, and produces the set of
// plaintext-enumerated derivations ("paths") the circuit builder will later
// lower to FHE primitives. Pruning dead paths here — wrong length, a
// violated anchor, a child that cannot fit — is the optimization that keeps
// everything downstream tractable.
package planner

import (
	"github.com/coregx/hematch/ast"
	"github.com/coregx/hematch/predicate"
)

// Config controls planner behavior for the supplemental, non-excluded
// refinements named in the system design notes.
type Config struct {
	// MaxRepeatCap bounds an unbounded Repeat's upper end when the content
	// length L would otherwise be used (system §9: "assumed: L as a
	// natural cap"). Zero means "use L".
	MaxRepeatCap int

	// GroupCommonPrefixes names the optional prefix-sharing refinement
	// mentioned in §9. Plan and EstimateCost accept it but do not read it:
	// the paths and estimates are the same whether it is set or not.
	GroupCommonPrefixes bool
}

// DefaultConfig returns the baseline planner configuration: no repeat cap
// override (L is used), no prefix grouping.
func DefaultConfig() Config {
	return Config{}
}

// Plan enumerates every feasible path for root against content length l,
// honoring the anchor flags lifted out by ast.LiftAnchors. It returns an
// empty, non-nil slice if the pattern provably cannot match content of
// this length — never a path with a cursor exceeding l.
func Plan(root *ast.Node, l int, anchoredStart, anchoredEnd bool, cfg Config) []predicate.Path {
	if cfg.MaxRepeatCap <= 0 {
		cfg.MaxRepeatCap = l
	}

	starts := []int{0}
	if !anchoredStart {
		starts = make([]int, l+1)
		for i := range starts {
			starts[i] = i
		}
	}

	var all []predicate.Path
	for _, s := range starts {
		in := []predicate.Path{{Start: s, Cursor: s}}
		out := walk(root, in, l, cfg)
		for _, p := range out {
			if anchoredEnd && p.Cursor != l {
				continue
			}
			all = append(all, p)
		}
	}
	if all == nil {
		all = []predicate.Path{}
	}
	return all
}

// walk advances every path in "in" across node n, dropping any path that
// becomes infeasible. Each returned path's Cursor reflects having consumed
// n starting at its own pre-walk cursor.
func walk(n *ast.Node, in []predicate.Path, l int, cfg Config) []predicate.Path {
	switch n.Kind {
	case ast.KindLiteral:
		return mapSingleByte(in, l, func(p predicate.Path) predicate.Path {
			return p.WithPredicate(predicate.Eq(p.Cursor, n.Byte))
		})

	case ast.KindAnyByte:
		return mapSingleByte(in, l, func(p predicate.Path) predicate.Path {
			return p.WithPredicate(predicate.True())
		})

	case ast.KindOneOf:
		set := setSlice(n.Set)
		return mapSingleByte(in, l, func(p predicate.Path) predicate.Path {
			return p.WithPredicate(predicate.OneOf(p.Cursor, set))
		})

	case ast.KindRange:
		return mapSingleByte(in, l, func(p predicate.Path) predicate.Path {
			q := p.WithPredicate(predicate.Ge(p.Cursor, n.Lo))
			q = q.WithPredicate(predicate.Le(p.Cursor, n.Hi))
			q.Cursor = p.Cursor + 1
			return q
		})

	case ast.KindNot:
		pred := negatedSingleBytePredicate(n.Child)
		return mapSingleByte(in, l, func(p predicate.Path) predicate.Path {
			q := pred
			q.Children = append([]predicate.Predicate(nil), pred.Children...)
			q.Index = p.Cursor
			setIndex(&q, p.Cursor)
			return p.WithPredicate(predicate.Not(q))
		})

	case ast.KindConcat:
		cur := in
		for _, child := range n.Children {
			cur = walk(child, cur, l, cfg)
			if len(cur) == 0 {
				return cur
			}
		}
		return cur

	case ast.KindAlt:
		left := walk(n.Left, cloneAll(in), l, cfg)
		right := walk(n.Right, cloneAll(in), l, cfg)
		return append(left, right...)

	case ast.KindOptional:
		skip := cloneAll(in)
		take := walk(n.Child, cloneAll(in), l, cfg)
		return append(skip, take...)

	case ast.KindRepeat:
		return walkRepeat(n, in, l, cfg)

	case ast.KindAnchorStart:
		var out []predicate.Path
		for _, p := range in {
			if p.Cursor == 0 {
				out = append(out, p)
			}
		}
		return out

	case ast.KindAnchorEnd:
		var out []predicate.Path
		for _, p := range in {
			if p.Cursor == l {
				out = append(out, p)
			}
		}
		return out

	default:
		return nil
	}
}

// mapSingleByte applies f to every path whose cursor has room for one more
// byte (cursor < l); paths at or past l are dead and dropped. If f leaves
// the cursor unchanged, mapSingleByte advances it by one.
func mapSingleByte(in []predicate.Path, l int, f func(predicate.Path) predicate.Path) []predicate.Path {
	out := make([]predicate.Path, 0, len(in))
	for _, p := range in {
		if p.Cursor >= l {
			continue // dead: no room for one more byte
		}
		q := f(p)
		if q.Cursor == p.Cursor {
			q.Cursor = p.Cursor + 1
		}
		out = append(out, q)
	}
	return out
}

// walkRepeat unions, over k in [min, cap], the path set that matches k
// consecutive copies of n.Child. cap is min(n.Max, l-i bounded by
// cfg.MaxRepeatCap when n.Max is Unbounded), per §4.3's repeat rule.
func walkRepeat(n *ast.Node, in []predicate.Path, l int, cfg Config) []predicate.Path {
	minConsume := minConsumption(n.Child)
	if minConsume < 1 {
		minConsume = 1
	}

	var out []predicate.Path
	for _, p := range in {
		room := l - p.Cursor
		upper := n.Max
		if upper == ast.Unbounded {
			cap := cfg.MaxRepeatCap
			if cap <= 0 {
				cap = l
			}
			upper = cap / minConsume
		}
		if room/minConsume < upper {
			upper = room / minConsume
		}
		if upper < n.Min {
			continue // cannot even reach the minimum: dead
		}

		frontier := []predicate.Path{p}
		for k := 0; k <= upper; k++ {
			if k >= n.Min {
				out = append(out, cloneAll(frontier)...)
			}
			if k == upper {
				break
			}
			frontier = walk(n.Child, frontier, l, cfg)
			if len(frontier) == 0 {
				break
			}
		}
	}
	return out
}

// minConsumption conservatively estimates the minimum number of content
// bytes n can consume; used only to bound Repeat's unbounded upper end
// (system §4.3: "conservative 1 is sound but coarser").
func minConsumption(n *ast.Node) int {
	switch n.Kind {
	case ast.KindAnchorStart, ast.KindAnchorEnd, ast.KindOptional:
		return 0
	case ast.KindRepeat:
		return n.Min * minConsumption(n.Child)
	case ast.KindConcat:
		sum := 0
		for _, c := range n.Children {
			sum += minConsumption(c)
		}
		return sum
	case ast.KindAlt:
		l, r := minConsumption(n.Left), minConsumption(n.Right)
		if l < r {
			return l
		}
		return r
	default:
		return 1
	}
}

// negatedSingleBytePredicate builds the single predicate value representing
// a match of n at an as-yet-unset index, for Not to wrap (system §4.3: "Not(N)
// at i: recurse to produce the single predicate"). n is guaranteed by the
// normalizer to consume exactly one byte.
func negatedSingleBytePredicate(n *ast.Node) predicate.Predicate {
	switch n.Kind {
	case ast.KindAnyByte:
		return predicate.True()
	case ast.KindLiteral:
		return predicate.Eq(0, n.Byte)
	case ast.KindOneOf:
		return predicate.OneOf(0, setSlice(n.Set))
	case ast.KindRange:
		return predicate.And(predicate.Ge(0, n.Lo), predicate.Le(0, n.Hi))
	default:
		// Unreachable: ast.Normalize rejects any other child of Not.
		return predicate.False()
	}
}

// setIndex rewrites the position embedded in a (possibly compound)
// predicate template produced by negatedSingleBytePredicate, now that the
// actual cursor position is known.
func setIndex(p *predicate.Predicate, idx int) {
	p.Index = idx
	for i := range p.Children {
		setIndex(&p.Children[i], idx)
	}
}

func setSlice(set map[byte]struct{}) []byte {
	out := make([]byte, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	return out
}

func cloneAll(in []predicate.Path) []predicate.Path {
	out := make([]predicate.Path, len(in))
	copy(out, in)
	return out
}
