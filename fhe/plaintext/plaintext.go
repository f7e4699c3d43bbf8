// Package plaintext is the in-the-clear reference backend for package fhe's
// capability trait. It does no cryptography: CT wraps a plain byte or bit.
// It exists so the engine's invariants (system §8) can be tested directly
// against a real regex reference without the cost, or the indirection, of
// an actual FHE scheme (system design notes §9: "Expose this as an
// interface / trait / structural capability record ... so tests can
// substitute a plaintext mock that returns u8").
package plaintext

import "github.com/coregx/hematch/fhe"

// CT is a plaintext stand-in ciphertext: just the byte or bit it "encrypts".
type CT struct {
	v uint8
}

func (CT) IsCT() {}

// Encrypt wraps a plaintext byte as a CT, standing in for the FHE
// collaborator's byte encryption.
func Encrypt(b byte) CT { return CT{v: b} }

// Decrypt unwraps a CT back to its plaintext value, standing in for
// ClientKey.Decrypt.
func Decrypt(ct fhe.CT) uint8 { return ct.(CT).v }

// ServerKey implements fhe.ServerKey by evaluating every primitive
// directly on the wrapped plaintext value: no noise, no security, exact
// semantics. Safe for concurrent read-only use (there's no key material).
type ServerKey struct{}

var _ fhe.ServerKey = ServerKey{}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (ServerKey) EncryptBit(bit uint8) fhe.CT { return CT{v: bit & 1} }

func (ServerKey) Eq(x fhe.CT, k byte) fhe.CT { return CT{v: b2u(x.(CT).v == uint8(k))} }
func (ServerKey) Ge(x fhe.CT, k byte) fhe.CT { return CT{v: b2u(x.(CT).v >= uint8(k))} }
func (ServerKey) Le(x fhe.CT, k byte) fhe.CT { return CT{v: b2u(x.(CT).v <= uint8(k))} }

func (ServerKey) And(x, y fhe.CT) fhe.CT {
	return CT{v: b2u(x.(CT).v != 0 && y.(CT).v != 0)}
}

func (ServerKey) Or(x, y fhe.CT) fhe.CT {
	return CT{v: b2u(x.(CT).v != 0 || y.(CT).v != 0)}
}

func (ServerKey) Not(x fhe.CT) fhe.CT { return CT{v: b2u(x.(CT).v == 0)} }

// EncryptContent encrypts an ASCII string into a fhe.Content of this
// backend's CTs, one per byte, for use directly against engine.HasMatch in
// tests.
func EncryptContent(s string) fhe.Content {
	out := make(fhe.Content, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Encrypt(s[i])
	}
	return out
}

// Backend adapts ServerKey to engine.Backend, for tests and examples that
// want to exercise the full §6.2 library surface against the plaintext
// reference rather than calling EncryptContent/Decrypt directly.
type Backend struct{}

func (Backend) EncryptByte(b byte) fhe.CT   { return Encrypt(b) }
func (Backend) ServerKey() fhe.ServerKey    { return ServerKey{} }
func (Backend) DecryptBit(ct fhe.CT) uint8  { return Decrypt(ct) }
