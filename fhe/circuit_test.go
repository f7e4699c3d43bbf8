package fhe

import (
	"testing"

	"github.com/coregx/hematch/fhe/plaintext"
	"github.com/coregx/hematch/predicate"
)

func pt(v uint8) CT { return plaintext.Encrypt(v) }

func dec(ct CT) uint8 { return plaintext.Decrypt(ct) }

func TestBuildPathsEmptyPathListIsFalse(t *testing.T) {
	b := NewBuilder(plaintext.ServerKey{})
	content := plaintext.EncryptContent("x")
	got := b.BuildPaths(content, nil)
	if dec(got) != 0 {
		t.Errorf("BuildPaths(nil) decrypted = %d, want 0", dec(got))
	}
}

func TestBuildPathEmptyPredicatesIsTrue(t *testing.T) {
	b := NewBuilder(plaintext.ServerKey{})
	content := plaintext.EncryptContent("x")
	got := b.buildPath(content, predicate.Path{})
	if dec(got) != 1 {
		t.Errorf("buildPath(no predicates) decrypted = %d, want 1", dec(got))
	}
}

func TestBuildPathsAndsWithinPathOrsAcrossPaths(t *testing.T) {
	content := plaintext.EncryptContent("ab")
	paths := []predicate.Path{
		{Predicates: []predicate.Predicate{predicate.Eq(0, 'a'), predicate.Eq(1, 'z')}}, // false
		{Predicates: []predicate.Predicate{predicate.Eq(0, 'a'), predicate.Eq(1, 'b')}}, // true
	}
	b := NewBuilder(plaintext.ServerKey{})
	got := b.BuildPaths(content, paths)
	if dec(got) != 1 {
		t.Errorf("BuildPaths() decrypted = %d, want 1", dec(got))
	}
}

func TestLowerOneOfIsOrOfMembers(t *testing.T) {
	content := plaintext.EncryptContent("b")
	p := predicate.OneOf(0, []byte{'a', 'b', 'c'})
	b := NewBuilder(plaintext.ServerKey{})
	got := b.lower(content, p)
	if dec(got) != 1 {
		t.Errorf("lower(OneOf) decrypted = %d, want 1", dec(got))
	}
}

func TestLowerNotNegates(t *testing.T) {
	content := plaintext.EncryptContent("a")
	p := predicate.Not(predicate.Eq(0, 'a'))
	b := NewBuilder(plaintext.ServerKey{})
	got := b.lower(content, p)
	if dec(got) != 0 {
		t.Errorf("lower(Not(Eq true))) decrypted = %d, want 0", dec(got))
	}
}

func TestMemoAtomicCallsComputeOnlyOnce(t *testing.T) {
	b := NewBuilder(plaintext.ServerKey{})
	key := predicate.Eq(0, 'a').AsKey()

	calls := 0
	compute := func() CT {
		calls++
		return pt(1)
	}

	first := b.memoAtomic(key, compute)
	second := b.memoAtomic(key, compute)

	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
	if dec(first) != dec(second) {
		t.Error("memoAtomic returned different values for the same key")
	}
}

func TestBuildPathsSharesRepeatedPredicateAcrossPaths(t *testing.T) {
	// Both paths reference Eq(0,'a'); the builder must lower it once.
	content := plaintext.EncryptContent("a")
	shared := predicate.Eq(0, 'a')
	paths := []predicate.Path{
		{Predicates: []predicate.Predicate{shared}},
		{Predicates: []predicate.Predicate{shared}},
	}
	b := NewBuilder(plaintext.ServerKey{})
	b.BuildPaths(content, paths)
	if len(b.cache.m) != 1 {
		t.Errorf("cache has %d entries, want 1 (shared predicate lowered once)", len(b.cache.m))
	}
}

func TestBalancedFoldSingleElement(t *testing.T) {
	got := balancedFold([]CT{pt(7)}, pt(0), plaintext.ServerKey{}.And)
	if dec(got) != 7 {
		t.Errorf("balancedFold(single) = %d, want 7 (identity, op never called)", dec(got))
	}
}

func TestBalancedFoldEmptyReturnsZero(t *testing.T) {
	got := balancedFold(nil, pt(0), plaintext.ServerKey{}.Or)
	if dec(got) != 0 {
		t.Errorf("balancedFold(empty) = %d, want 0 (the supplied zero)", dec(got))
	}
}
