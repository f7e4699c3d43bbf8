package lattigo

import (
	"github.com/coregx/hematch/fhe"
)

var _ fhe.ServerKey = ServerKey{}

// bitsOf splits a public byte into its eight bits, MSB first, matching the
// ordering CT.bits uses for content bytes.
func bitsOf(k byte) [8]uint8 {
	var out [8]uint8
	for i := 0; i < 8; i++ {
		out[i] = (uint8(k) >> uint(7-i)) & 1
	}
	return out
}

// EncryptBit encrypts a public 0/1 bit under the server's public key
// (system §4.1's `encrypt_bit`): the result carries both representations
// since the public-key RGSW encryptor needs no secret.
func (sk ServerKey) EncryptBit(bit uint8) fhe.CT {
	val := trivialRLWE(sk.params, bit&1)
	ptSel := newRGSWCiphertext(sk.params)
	pt := encodeBitPlaintext(sk.params, bit&1)
	if err := sk.rgswEnc.Encrypt(pt, ptSel); err != nil {
		panic(err)
	}
	return oneBit(bitCT{val: val, sel: ptSel})
}

// Eq composes byte equality content == k from eight bitwise eqBit results
// AND-folded together (system §4.1's `eq`).
func (sk ServerKey) Eq(x fhe.CT, k byte) fhe.CT {
	xb := x.(CT).bits
	kb := bitsOf(k)
	bits := make([]bitCT, 8)
	for i := 0; i < 8; i++ {
		bits[i] = eqBit(sk.params, xb[i], kb[i])
	}
	return oneBit(sk.andFold(bits))
}

// Ge composes byte comparison content >= k using a standard bitwise
// digit comparator (system §4.1's `ge`): content >= k iff content == k, or
// some bit position has content strictly greater while every more
// significant bit is still equal.
func (sk ServerKey) Ge(x fhe.CT, k byte) fhe.CT {
	return oneBit(sk.compare(x.(CT).bits, bitsOf(k), true))
}

// Le composes byte comparison content <= k, the mirror of Ge with the
// comparator's sense flipped (system §4.1's `le`).
func (sk ServerKey) Le(x fhe.CT, k byte) fhe.CT {
	return oneBit(sk.compare(x.(CT).bits, bitsOf(k), false))
}

// compare builds content >= k (ge=true) or content <= k (ge=false) from
// MSB-first bits. For each position i, a term fires when every bit before
// i is equal and position i strictly favors the requested direction;
// since k's bits are public, "strictly favors" collapses to a single
// content bit (x_i for ge, NOT x_i for le) rather than a two-bit compare.
// The terms, together with the all-bits-equal case, OR-fold into the
// result. Depth grows with the byte width (8 sequential prefix ANDs),
// acceptable for single-byte comparisons.
func (sk ServerKey) compare(x []bitCT, k [8]uint8, ge bool) bitCT {
	eqs := make([]bitCT, 8)
	for i := 0; i < 8; i++ {
		eqs[i] = eqBit(sk.params, x[i], k[i])
	}

	terms := make([]bitCT, 0, 8)
	prefixEqual := oneBitTrue(sk)
	for i := 0; i < 8; i++ {
		var favors bitCT
		if ge {
			favors = gtBit(sk, x[i], k[i])
		} else {
			favors = gtBit(sk, sk.not(x[i]), flip(k[i]))
		}
		terms = append(terms, sk.and(prefixEqual, favors))
		if i < 7 {
			prefixEqual = sk.and(prefixEqual, eqs[i])
		}
	}
	terms = append(terms, sk.andFold(eqs))
	return sk.orFold(terms)
}

func flip(b uint8) uint8 {
	if b == 0 {
		return 1
	}
	return 0
}

// andFold AND-folds bits into a single bitCT using a balanced tree, to
// bound the number of sequential selector refreshes (system §8 invariant
// on circuit depth applies equally to this backend's internal gates).
func (sk ServerKey) andFold(bits []bitCT) bitCT {
	if len(bits) == 1 {
		return bits[0]
	}
	mid := len(bits) / 2
	left := sk.andFold(bits[:mid])
	right := sk.andFold(bits[mid:])
	return sk.and(left, right)
}

func (sk ServerKey) orFold(bits []bitCT) bitCT {
	if len(bits) == 0 {
		return oneBitFalse(sk)
	}
	if len(bits) == 1 {
		return bits[0]
	}
	mid := len(bits) / 2
	left := sk.orFold(bits[:mid])
	right := sk.orFold(bits[mid:])
	return sk.or(left, right)
}

// And is the RGSW-external-product gate exposed directly to the engine's
// circuit builder (system §4.1's `and`), operating on whole-bit CTs.
func (sk ServerKey) And(x, y fhe.CT) fhe.CT {
	return oneBit(sk.and(x.(CT).bits[0], y.(CT).bits[0]))
}

// Or is the De-Morgan OR gate exposed to the engine (system §4.1's `or`).
func (sk ServerKey) Or(x, y fhe.CT) fhe.CT {
	return oneBit(sk.or(x.(CT).bits[0], y.(CT).bits[0]))
}

// Not is the linear negation gate exposed to the engine (system §4.1's
// `not`).
func (sk ServerKey) Not(x fhe.CT) fhe.CT {
	return oneBit(sk.not(x.(CT).bits[0]))
}
