package lattigo

import (
	"github.com/tuneinsight/lattigo/v5/core/rgsw"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// newRGSWCiphertext allocates a zero RGSW ciphertext at the ring's full
// level, the shape core/rgsw's encryptor expects as its destination.
func newRGSWCiphertext(params Params) *rgsw.Ciphertext {
	return rgsw.NewCiphertext(params.RLWE(), params.RLWE().MaxLevelQ(), params.RLWE().MaxLevelP(), 0)
}

// selector returns b's RGSW form, deriving one via refreshSelector if b
// doesn't already carry it (see ciphertext.go's doc on refreshSelector).
func (sk ServerKey) selector(b bitCT) *rgsw.Ciphertext {
	if b.sel != nil {
		return b.sel
	}
	return sk.refreshSelector(b.val)
}

// and computes the single non-linear gate this backend has: the RGSW
// external product, op1(selector) x op0(value) -> RLWE (system §4.1's
// `and`). The selector operand may come from either argument; a and b are
// symmetric so x's selector is tried first and y otherwise, favoring
// whichever side already has one to avoid an unnecessary refresh.
func (sk ServerKey) and(x, y bitCT) bitCT {
	var value *rlwe.Ciphertext
	var sel *rgsw.Ciphertext
	if x.sel != nil {
		sel, value = x.sel, y.val
	} else {
		sel, value = sk.selector(y), x.val
	}
	out := rlwe.NewCiphertext(sk.params.RLWE(), 1, sk.params.RLWE().MaxLevelQ())
	sk.rgswEval.ExternalProduct(value, sel, out)
	return bitCT{val: out}
}

// or computes a OR b = NOT(NOT a AND NOT b), De Morgan's law over the and
// and negate primitives (system §4.1's `or`).
func (sk ServerKey) or(x, y bitCT) bitCT {
	nx := bitCT{val: negate(sk.params, x.val)}
	ny := bitCT{val: negate(sk.params, y.val)}
	n := sk.and(nx, ny)
	return bitCT{val: negate(sk.params, n.val)}
}

// not computes NOT a, a linear operation that needs no key material and
// keeps no selector form (system §4.1's `not`).
func (sk ServerKey) not(x bitCT) bitCT {
	return bitCT{val: negate(sk.params, x.val)}
}

// eqBit reports whether content bit x equals the public bit k: XNOR
// against a known constant is identity (k=1) or negation (k=0), so this
// needs no multiplicative gate and preserves x's selector form when k=1.
func eqBit(params Params, x bitCT, k uint8) bitCT {
	if k != 0 {
		return x
	}
	return bitCT{val: negate(params, x.val)}
}

// gtBit reports whether content bit x is strictly greater than the public
// bit k. Since both are single bits, x > k is possible only when k = 0 and
// x = 1, i.e. gtBit(x, k) = x when k = 0, else the constant false.
func gtBit(sk ServerKey, x bitCT, k uint8) bitCT {
	if k == 0 {
		return x
	}
	return oneBitFalse(sk)
}

func oneBitFalse(sk ServerKey) bitCT {
	return bitCT{val: trivialRLWE(sk.params, 0)}
}

func oneBitTrue(sk ServerKey) bitCT {
	return bitCT{val: trivialRLWE(sk.params, 1)}
}
