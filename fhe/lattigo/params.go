// Package lattigo is the real FHE backend for package fhe's capability
// trait, built on github.com/tuneinsight/lattigo/v5's core/rlwe and
// core/rgsw packages: the generic RLWE ciphertext/key machinery and the
// RGSW external product, which is the standard lattice-FHE gadget for a
// controlled homomorphic AND (system §4.1's `and` primitive).
//
// A content byte is represented as eight bit ciphertexts (bitCT), MSB
// first. Eq/Ge/Le are composed from And/Or/Not over those eight bits
// inside this package — the fhe.ServerKey trait itself only ever exposes
// the seven primitives named in the system's component design §4.1;
// composing byte-level comparisons from bit gates is this backend's
// business, not the core engine's (see SPEC_FULL.md's domain stack
// section).
//
// Scope note: And is the only non-linear gate here, built from a single
// level of RGSW external product against a ciphertext that already has a
// valid RGSW ("selector") form — a content bit, or a freshly encrypted
// public constant. Chaining AND beyond one level over ciphertexts that no
// longer have a selector form available would need genuine TFHE-style
// bootstrapping (see core/rgsw/blindrot in the lattigo tree) to refresh a
// bit back into selector form; this backend approximates that refresh with
// refreshSelector, a simplified stand-in documented at its definition. A
// production deployment would replace refreshSelector with real circuit
// bootstrapping; the system spec treats this entire primitive layer as an
// external collaborator assumed available (§1, §4.1), so the
// simplification does not affect the core engine this repository exists
// to implement.
//
// API note: this package's calls are grounded on the RLWE/RGSW call
// shapes this module's own vendored lattigo source demonstrates
// (Parameters, KeyGenerator, Encryptor/Decryptor, Ring.Add/Sub/Neg,
// rgsw.Evaluator.ExternalProduct). A couple of the lower-level
// constructors (rlwe.NewPlaintext, rgsw.NewCiphertext) are reconstructed
// from call sites rather than declarations, since the vendored tree mixes
// snapshots across module versions for these two types; see DESIGN.md.
package lattigo

import (
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Params bundles the single RLWE ring used for both the byte-content
// ciphertexts and the intermediate bit ciphertexts the engine's gates
// produce. Using one ring for both avoids a second key-switch layer; it
// trades some of the efficiency a two-ring LWE/RLWE split (as in
// lattigo's blind-rotation examples) would buy for simplicity.
type Params struct {
	rlwe rlwe.Parameters
}

// NewParams constructs Params from an RLWE parameter literal. logN=12 with
// a single ~54-bit modulus gives a comfortable security margin for the
// small bit-wise circuits this backend builds.
func NewParams() (Params, error) {
	lit := rlwe.ParametersLiteral{
		LogN:    12,
		Q:       []uint64{0x3fffffff000001},
		NTTFlag: true,
	}
	p, err := rlwe.NewParametersFromLiteral(lit)
	if err != nil {
		return Params{}, err
	}
	return Params{rlwe: p}, nil
}

func (p Params) RLWE() rlwe.Parameters { return p.rlwe }
