package engine

import (
	"github.com/coregx/hematch/fhe"
	"github.com/coregx/hematch/hmerr"
)

// Backend is what a concrete FHE scheme must supply to plug into the §6.2
// library surface: byte encryption for building fhe.Content, a ServerKey
// for evaluation, and bit decryption for reading the result. Both
// fhe/plaintext and fhe/lattigo provide one.
type Backend interface {
	// EncryptByte encrypts a single ASCII byte under this backend's key
	// material.
	EncryptByte(b byte) fhe.CT
	// ServerKey returns the public evaluation key for this backend.
	ServerKey() fhe.ServerKey
	// DecryptBit decrypts a result ciphertext produced by HasMatch back to
	// a plaintext 0/1 bit. Only the client-key holder can call this in a
	// real backend; the plaintext mock has no secret to hide.
	DecryptBit(ct fhe.CT) uint8
}

// EncryptASCII encrypts s into an fhe.Content using backend, failing with
// hmerr.ErrNonASCIIContent if s contains any byte outside 7-bit ASCII
// (system §6.2, §7).
func EncryptASCII(backend Backend, s string) (fhe.Content, error) {
	out := make(fhe.Content, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, hmerr.NewNonASCII(i, s[i])
		}
		out[i] = backend.EncryptByte(s[i])
	}
	return out, nil
}

// Decrypt decrypts the result of HasMatch to a plaintext 0/1 bit using
// backend's client-side key material (system §6.2's ClientKey::decrypt).
func Decrypt(backend Backend, ct fhe.CT) uint8 {
	return backend.DecryptBit(ct)
}
