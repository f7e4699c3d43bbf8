package fhe

import "github.com/coregx/hematch/predicate"

// Cache memoizes atomic predicates to ciphertexts for the lifetime of a
// single match call, guaranteeing each predicate is lowered to an FHE
// primitive at most once (system §3.4, §4.4, invariant 5). It is not
// safe for concurrent writers: it is a plain map with no locking.
type Cache struct {
	m map[predicate.Key]CT
}

// NewCache returns an empty memoization cache.
func NewCache() *Cache {
	return &Cache{m: make(map[predicate.Key]CT)}
}

// Get returns the cached ciphertext for key and true, or a zero CT and
// false if key hasn't been lowered yet.
func (c *Cache) Get(key predicate.Key) (CT, bool) {
	ct, ok := c.m[key]
	return ct, ok
}

// Put records ct as the lowering of key. Callers must not overwrite an
// existing entry: the cache is write-once per key.
func (c *Cache) Put(key predicate.Key, ct CT) {
	c.m[key] = ct
}

// Builder lowers plaintext paths (system §3.3) into a single ciphertext
// circuit, memoizing every atomic predicate it touches (system §4.4).
type Builder struct {
	sk    ServerKey
	cache *Cache
}

// NewBuilder constructs a Builder evaluating against sk, with a fresh
// memoization cache scoped to this Builder's lifetime.
func NewBuilder(sk ServerKey) *Builder {
	return &Builder{sk: sk, cache: NewCache()}
}

// BuildPaths lowers a full path list against content, combining: an
// AND-fold per path, an OR-fold across paths. An empty path list lowers to
// EncryptBit(0) (system §4.4 "Empty path list lowers to encrypt_bit(sk, 0)").
func (b *Builder) BuildPaths(content Content, paths []predicate.Path) CT {
	if len(paths) == 0 {
		return b.sk.EncryptBit(0)
	}

	lowered := make([]CT, len(paths))
	for i, p := range paths {
		lowered[i] = b.buildPath(content, p)
	}
	return balancedFold(lowered, b.sk.EncryptBit(0), b.sk.Or)
}

// buildPath lowers one path to an AND-fold of its predicates' lowerings. A
// path with no predicates (e.g. a bare anchor or empty-match Optional)
// lowers to EncryptBit(1).
func (b *Builder) buildPath(content Content, p predicate.Path) CT {
	if len(p.Predicates) == 0 {
		return b.sk.EncryptBit(1)
	}
	lowered := make([]CT, len(p.Predicates))
	for i, pred := range p.Predicates {
		lowered[i] = b.lower(content, pred)
	}
	return balancedFold(lowered, b.sk.EncryptBit(1), b.sk.And)
}

// lower lowers a single predicate (possibly compound: OneOf, Not, And) to
// a ciphertext, consulting and populating the memoization cache at every
// atomic leaf it reaches.
func (b *Builder) lower(content Content, p predicate.Predicate) CT {
	switch p.Op {
	case predicate.OpTrue:
		return b.memoAtomic(p.AsKey(), func() CT { return b.sk.EncryptBit(1) })

	case predicate.OpFalse:
		return b.memoAtomic(p.AsKey(), func() CT { return b.sk.EncryptBit(0) })

	case predicate.OpEq:
		return b.memoAtomic(p.AsKey(), func() CT { return b.sk.Eq(content[p.Index], p.Const) })

	case predicate.OpGe:
		return b.memoAtomic(p.AsKey(), func() CT { return b.sk.Ge(content[p.Index], p.Const) })

	case predicate.OpLe:
		return b.memoAtomic(p.AsKey(), func() CT { return b.sk.Le(content[p.Index], p.Const) })

	case predicate.OpOneOf:
		// OneOf(S) → OR-fold over { lower(Eq(i,b)) : b in S }; the inner
		// Eq's are themselves memoized individually (system §4.4).
		return b.lowerOneOf(content, p)

	case predicate.OpAnd:
		lowered := make([]CT, len(p.Children))
		for i, c := range p.Children {
			lowered[i] = b.lower(content, c)
		}
		return balancedFold(lowered, b.sk.EncryptBit(1), b.sk.And)

	case predicate.OpNot:
		return b.sk.Not(b.lower(content, *p.Inner))

	default:
		panic("fhe: unknown predicate op in circuit builder")
	}
}

func (b *Builder) lowerOneOf(content Content, p predicate.Predicate) CT {
	eqs := make([]CT, len(p.Set))
	for i, byt := range p.Set {
		idx, k := p.Index, byt
		key := predicate.Eq(idx, k).AsKey()
		eqs[i] = b.memoAtomic(key, func() CT { return b.sk.Eq(content[idx], k) })
	}
	return balancedFold(eqs, b.sk.EncryptBit(0), b.sk.Or)
}

// memoAtomic looks up key in the cache, computing and storing it via
// compute on a miss. This is the single chokepoint guaranteeing invariant
// 5: at most one FHE call per unique (kind, index, const) key.
func (b *Builder) memoAtomic(key predicate.Key, compute func() CT) CT {
	if ct, ok := b.cache.Get(key); ok {
		return ct
	}
	ct := compute()
	b.cache.Put(key, ct)
	return ct
}

// balancedFold folds xs with op in a tree (log-depth) shape rather than
// left-linear, per §4.4's folding discipline: this keeps multiplicative
// circuit depth modest, which matters because FHE noise grows with depth
// in many schemes. Operand order is the order of first occurrence. zero is
// op's identity, returned directly for an empty xs rather than recursing
// into an empty split (a OneOf with an empty Set is unreachable from a
// well-formed pattern, but this keeps the fold itself total).
func balancedFold(xs []CT, zero CT, op func(a, b CT) CT) CT {
	if len(xs) == 0 {
		return zero
	}
	if len(xs) == 1 {
		return xs[0]
	}
	mid := len(xs) / 2
	left := balancedFold(xs[:mid], zero, op)
	right := balancedFold(xs[mid:], zero, op)
	return op(left, right)
}
