package lattigo

import (
	"github.com/tuneinsight/lattigo/v5/core/rgsw"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// ClientKey holds the secret key material: it can encrypt content (both
// ciphertext forms a content bit needs, see bitCT) and decrypt results. It
// must never be given to the matching engine.
type ClientKey struct {
	params Params
	sk     *rlwe.SecretKey
	dec    *rlwe.Decryptor
	rlweEnc *rlwe.Encryptor
	rgswEnc *rgsw.Encryptor
}

// ServerKey holds only public material: a public key for encrypting fresh
// constants (used by EncryptBit and by Eq/Ge/Le's comparisons against the
// public pattern byte) and an RGSW evaluator for the AND gate's external
// product. It never permits decryption (system §4.1: "never sufficient to
// decrypt").
type ServerKey struct {
	params   Params
	pk       *rlwe.PublicKey
	rlweEnc  *rlwe.Encryptor
	rgswEnc  *rgsw.Encryptor
	rgswEval *rgsw.Evaluator
}

// GenKeys generates a fresh (ClientKey, ServerKey) pair, the FHE-layer
// collaborator named in system §6.2.
func GenKeys() (ClientKey, ServerKey, error) {
	params, err := NewParams()
	if err != nil {
		return ClientKey{}, ServerKey{}, err
	}

	kgen := rlwe.NewKeyGenerator(params.RLWE())
	sk := kgen.GenSecretKeyNew()
	pk := kgen.GenPublicKeyNew(sk)

	ck := ClientKey{
		params:  params,
		sk:      sk,
		dec:     rlwe.NewDecryptor(params.RLWE(), sk),
		rlweEnc: rlwe.NewEncryptor(params.RLWE(), sk),
		rgswEnc: rgsw.NewEncryptor(params.RLWE(), sk),
	}

	evalKeySet := rlwe.NewMemEvaluationKeySet(nil)
	sek := ServerKey{
		params:   params,
		pk:       pk,
		rlweEnc:  rlwe.NewEncryptor(params.RLWE(), pk),
		rgswEnc:  rgsw.NewEncryptor(params.RLWE(), pk),
		rgswEval: rgsw.NewEvaluator(params.RLWE(), evalKeySet),
	}

	return ck, sek, nil
}
