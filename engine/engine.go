// Package engine provides the facade the rest of the system calls through:
// HasMatch (system §4.5), plus the library surface named in §6.2
// (EncryptASCII/Decrypt are thin wrappers over whichever Backend is wired
// in; key generation belongs to the backend itself — see fhe/plaintext and
// fhe/lattigo's GenKeys/NewBackend).
//
// HasMatch glues the normalizer (package ast), the path planner (package
// planner), and the memoizing circuit builder (package fhe) together: it
// is the only place that knows about all three.
package engine

import (
	"github.com/coregx/hematch/ast"
	"github.com/coregx/hematch/fhe"
	"github.com/coregx/hematch/parser"
	"github.com/coregx/hematch/planner"
	"github.com/coregx/hematch/predicate"
)

// Config controls HasMatch's use of the normalizer and planner. See
// SPEC_FULL.md's Configuration section for why these two knobs exist.
type Config struct {
	// MaxRepeatCap overrides the content-length cap otherwise used for an
	// unbounded Repeat (planner.Config.MaxRepeatCap). Zero means "use the
	// content length", matching §9's documented assumption.
	MaxRepeatCap int

	// GroupCommonPrefixes is passed through to planner.Config; the planner
	// does not read it, so it has no effect on the plan.
	GroupCommonPrefixes bool
}

// DefaultConfig returns the baseline engine configuration.
func DefaultConfig() Config {
	return Config{}
}

// HasMatch evaluates pattern against content (one ciphertext per ASCII
// byte) using sk, returning a single ciphertext whose plaintext is 1 if
// the pattern matches somewhere in content and 0 otherwise (system §1).
//
// Errors are pattern-parse or normalization errors (hmerr.ErrPatternSyntax,
// hmerr.ErrUnsupportedConstruct); once given a well-formed pattern,
// evaluation itself is infallible (system §7).
func HasMatch(sk fhe.ServerKey, content fhe.Content, pattern string) (fhe.CT, error) {
	return HasMatchWithConfig(sk, content, pattern, DefaultConfig())
}

// HasMatchWithConfig is HasMatch with explicit Config.
func HasMatchWithConfig(sk fhe.ServerKey, content fhe.Content, pattern string, cfg Config) (fhe.CT, error) {
	plan, err := Check(pattern, len(content), cfg)
	if err != nil {
		return nil, err
	}

	builder := fhe.NewBuilder(sk)
	return builder.BuildPaths(content, plan.Paths), nil
}

// Plan is the result of parsing, normalizing, and path-planning a pattern
// against a concrete content length, without touching any ciphertext. It
// is exposed so callers can inspect cost before paying for FHE evaluation
// (SPEC_FULL.md's supplemental "pattern-only validation" feature).
type Plan struct {
	Paths []predicate.Path
}

// Len reports the number of feasible paths the planner found. A pattern
// with Len() == 0 provably cannot match content of the length Check was
// called with.
func (p Plan) Len() int { return len(p.Paths) }

// EstimateCost parses and normalizes pattern, then reports planner.EstimateCost's
// upper bound on the number of paths a full Check would produce against
// content of length l — cheap enough to call before committing to a full
// plan, let alone encryption (SPEC_FULL.md's path-count estimation
// feature).
func EstimateCost(pattern string, l int, cfg Config) (int, error) {
	parsed, err := parser.Parse(pattern)
	if err != nil {
		return 0, err
	}
	normalized, err := ast.Normalize(parsed.Root, ast.Options{CaseInsensitive: parsed.CaseInsensitive})
	if err != nil {
		return 0, err
	}
	body, _, _ := ast.LiftAnchors(normalized)
	return planner.EstimateCost(body, l, planner.Config{
		MaxRepeatCap:        cfg.MaxRepeatCap,
		GroupCommonPrefixes: cfg.GroupCommonPrefixes,
	}), nil
}

// Check parses and normalizes pattern, then plans it against a content
// length of l without requiring any ciphertext content to exist yet. It
// surfaces PatternSyntax and UnsupportedConstruct errors early, and lets
// callers inspect Plan.Len() before committing to encryption — the
// supplemental "pattern-only validation" feature (SPEC_FULL.md).
func Check(pattern string, l int, cfg Config) (Plan, error) {
	parsed, err := parser.Parse(pattern)
	if err != nil {
		return Plan{}, err
	}

	normalized, err := ast.Normalize(parsed.Root, ast.Options{CaseInsensitive: parsed.CaseInsensitive})
	if err != nil {
		return Plan{}, err
	}

	body, anchoredStart, anchoredEnd := ast.LiftAnchors(normalized)

	paths := planner.Plan(body, l, anchoredStart, anchoredEnd, planner.Config{
		MaxRepeatCap:        cfg.MaxRepeatCap,
		GroupCommonPrefixes: cfg.GroupCommonPrefixes,
	})

	return Plan{Paths: paths}, nil
}
