package planner

import "github.com/coregx/hematch/ast"

// EstimateCost computes a fast upper bound on the number of paths Plan
// would produce for root against content length l, without doing any of
// Plan's actual pruning walk. It exists so a caller can reject a
// pathological pattern — the "worst-case exponential... bounded by length
// constraints" case named in the planner's own design notes — before
// paying for the full plan, let alone FHE evaluation.
func EstimateCost(root *ast.Node, l int, cfg Config) int {
	if cfg.MaxRepeatCap <= 0 {
		cfg.MaxRepeatCap = l
	}
	starts := l + 1
	return starts * estimateNode(root, l, cfg)
}

func estimateNode(n *ast.Node, l int, cfg Config) int {
	switch n.Kind {
	case ast.KindConcat:
		prod := 1
		for _, c := range n.Children {
			prod *= estimateNode(c, l, cfg)
		}
		return prod

	case ast.KindAlt:
		return estimateNode(n.Left, l, cfg) + estimateNode(n.Right, l, cfg)

	case ast.KindOptional:
		return 1 + estimateNode(n.Child, l, cfg)

	case ast.KindRepeat:
		minConsume := minConsumption(n.Child)
		if minConsume < 1 {
			minConsume = 1
		}
		upper := n.Max
		if upper == ast.Unbounded {
			upper = cfg.MaxRepeatCap / minConsume
		}
		// k copies of the child can be taken in up to per^k ways.
		per := estimateNode(n.Child, l, cfg)
		count, ways := 0, 1
		for k := 0; k <= upper; k++ {
			if k >= n.Min {
				count += ways
			}
			ways *= per
		}
		if count < 1 {
			count = 1
		}
		return count

	case ast.KindAnchorStart, ast.KindAnchorEnd:
		return 1

	default: // Literal, AnyByte, OneOf, Range, Not: exactly one byte, one way
		return 1
	}
}
