package ast

import "github.com/coregx/hematch/hmerr"

// Options controls normalization behavior.
type Options struct {
	// CaseInsensitive mirrors the regex grammar's trailing `i` modifier
	// (system external interfaces §6.1). Every Literal letter becomes a
	// case-closed OneOf, and OneOf/Range are likewise case-closed.
	CaseInsensitive bool
}

// Normalize rewrites root into the canonical node set: case-insensitivity
// is applied when requested, a Not whose child does not consume exactly one
// byte is rejected, and Repeat bounds are checked. Quantifier sugar arrives
// already as Repeat/Optional nodes from the parser and is copied as is;
// anchors are lifted separately by LiftAnchors.
//
// Normalize is pure, total, and idempotent: calling it twice on its own
// output is a no-op. It performs no I/O and issues no FHE calls.
func Normalize(root *Node, opts Options) (*Node, error) {
	n, err := normalizeNode(root, opts)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func normalizeNode(n *Node, opts Options) (*Node, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case KindLiteral:
		if opts.CaseInsensitive && isLetter(n.Byte) {
			return OneOf(lower(n.Byte), upper(n.Byte)), nil
		}
		return Literal(n.Byte), nil

	case KindAnyByte, KindAnchorStart, KindAnchorEnd:
		return &Node{Kind: n.Kind}, nil

	case KindOneOf:
		set := n.Set
		if opts.CaseInsensitive {
			set = closeCase(n.Set)
		}
		out := &Node{Kind: KindOneOf, Set: set}
		return out, nil

	case KindRange:
		if !opts.CaseInsensitive {
			return Range(n.Lo, n.Hi), nil
		}
		// A case-closed range becomes a OneOf over the closure: ranges that
		// straddle letters and punctuation (e.g. [A-z]) would otherwise
		// silently widen under naive lo/hi case folding.
		set := map[byte]struct{}{}
		for b := int(n.Lo); b <= int(n.Hi); b++ {
			set[byte(b)] = struct{}{}
		}
		return &Node{Kind: KindOneOf, Set: closeCase(set)}, nil

	case KindNot:
		child, err := normalizeNode(n.Child, opts)
		if err != nil {
			return nil, err
		}
		if !ConsumesOneByte(child) {
			return nil, hmerr.NewUnsupported("Not must wrap a single-byte construct (Literal, OneOf, Range, AnyByte)")
		}
		return Not(child), nil

	case KindConcat:
		children := make([]*Node, 0, len(n.Children))
		for _, c := range n.Children {
			nc, err := normalizeNode(c, opts)
			if err != nil {
				return nil, err
			}
			children = append(children, nc)
		}
		return Concat(children...), nil

	case KindAlt:
		l, err := normalizeNode(n.Left, opts)
		if err != nil {
			return nil, err
		}
		r, err := normalizeNode(n.Right, opts)
		if err != nil {
			return nil, err
		}
		return Alt(l, r), nil

	case KindOptional:
		c, err := normalizeNode(n.Child, opts)
		if err != nil {
			return nil, err
		}
		return Optional(c), nil

	case KindRepeat:
		c, err := normalizeNode(n.Child, opts)
		if err != nil {
			return nil, err
		}
		if n.Min > n.Max && n.Max != Unbounded {
			return nil, hmerr.NewUnsupported("Repeat.min must be <= Repeat.max")
		}
		return Repeat(c, n.Min, n.Max), nil

	default:
		return nil, hmerr.NewUnsupported("unknown AST node kind in normalizer")
	}
}

// LiftAnchors extracts a leading `^` / trailing `$` from the outermost
// Concat of root into separate flags, per §4.2 ("lift leading ^ / trailing $
// out of the root Concat into anchor records"). It must run after Normalize
// and assumes anchors, if present, appear only at the outermost level.
func LiftAnchors(root *Node) (body *Node, anchoredStart, anchoredEnd bool) {
	children := []*Node{root}
	if root.Kind == KindConcat {
		children = root.Children
	}

	start, end := false, false
	filtered := children[:0:0]
	for i, c := range children {
		if c.Kind == KindAnchorStart && i == 0 {
			start = true
			continue
		}
		if c.Kind == KindAnchorEnd && i == len(children)-1 {
			end = true
			continue
		}
		filtered = append(filtered, c)
	}

	switch len(filtered) {
	case 0:
		return Concat(), start, end
	case 1:
		return filtered[0], start, end
	default:
		return Concat(filtered...), start, end
	}
}

func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func closeCase(set map[byte]struct{}) map[byte]struct{} {
	out := make(map[byte]struct{}, len(set)*2)
	for b := range set {
		out[b] = struct{}{}
		if isLetter(b) {
			out[lower(b)] = struct{}{}
			out[upper(b)] = struct{}{}
		}
	}
	return out
}
