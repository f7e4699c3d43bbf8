package lattigo

import "github.com/coregx/hematch/fhe"

// EncryptByte encrypts a single ASCII byte into a CT of eight bitCTs
// (MSB first), each carrying both the RLWE value form and, since this is
// secret-key encryption, a full RGSW selector form too (system §6.2's
// ClientKey::encrypt).
func (ck ClientKey) EncryptByte(b byte) fhe.CT {
	kb := bitsOf(b)
	bits := make([]bitCT, 8)
	for i := 0; i < 8; i++ {
		pt := encodeBitPlaintext(ck.params, kb[i])

		val := ck.rlweEnc.EncryptZeroNew(ck.params.RLWE().MaxLevel())
		ck.params.RLWE().RingQ().Add(&val.Value[0], &pt.Value[0], &val.Value[0])

		sel := newRGSWCiphertext(ck.params)
		if err := ck.rgswEnc.Encrypt(pt, sel); err != nil {
			panic(err)
		}

		bits[i] = bitCT{val: val, sel: sel}
	}
	return CT{bits: bits}
}

// DecryptBit decrypts the single-bit result of HasMatch back to a
// plaintext 0/1 using the client's secret key (system §6.2's
// ClientKey::decrypt). Only a ClientKey holder can call this.
func (ck ClientKey) DecryptBit(ct fhe.CT) uint8 {
	bits := ct.(CT).bits
	pt := ck.dec.DecryptNew(bits[0].val)
	ringQ := ck.params.RLWE().RingQ()
	ringQ.INTT(&pt.Value[0], &pt.Value[0])
	coeffs := pt.Value[0].Coeffs[0]
	half := ck.params.RLWE().Q()[0] / 2
	if coeffs[0] > half/2 && coeffs[0] < half+half/2 {
		return 1
	}
	return 0
}

// Backend adapts a freshly generated (ClientKey, ServerKey) pair to
// engine.Backend, the plug point the matching engine uses to stay
// polymorphic over its FHE collaborator (system §6.2, §9).
type Backend struct {
	Client ClientKey
	Server ServerKey
}

// NewBackend generates a fresh key pair and wraps it as an engine.Backend.
func NewBackend() (Backend, error) {
	ck, sk, err := GenKeys()
	if err != nil {
		return Backend{}, err
	}
	return Backend{Client: ck, Server: sk}, nil
}

func (b Backend) EncryptByte(x byte) fhe.CT  { return b.Client.EncryptByte(x) }
func (b Backend) ServerKey() fhe.ServerKey   { return b.Server }
func (b Backend) DecryptBit(ct fhe.CT) uint8 { return b.Client.DecryptBit(ct) }
