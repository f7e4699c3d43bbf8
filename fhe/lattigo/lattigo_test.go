package lattigo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coregx/hematch/fhe"
)

func TestGenKeysConstructsKeyPair(t *testing.T) {
	ck, sk, err := GenKeys()
	require.NoError(t, err)
	require.NotNil(t, ck.sk, "ClientKey missing secret-key material")
	require.NotNil(t, ck.dec)
	require.NotNil(t, sk.pk, "ServerKey missing public material")
	require.NotNil(t, sk.rgswEval)
}

func TestEncryptDecryptByteRoundTrip(t *testing.T) {
	ck, _, err := GenKeys()
	require.NoError(t, err)

	for _, b := range []byte{0x00, 'a', 'Z', 0x7f} {
		ct := ck.EncryptByte(b)
		bits := ct.(CT).bits
		for i := 0; i < 8; i++ {
			want := (b >> uint(7-i)) & 1
			got := ck.DecryptBit(oneBit(bits[i]))
			require.Equalf(t, want, got, "byte %#x bit %d", b, i)
		}
	}
}

func TestServerKeyEqAgainstPublicByte(t *testing.T) {
	ck, sk, err := GenKeys()
	require.NoError(t, err)
	ct := ck.EncryptByte('m')

	require.Equal(t, uint8(1), ck.DecryptBit(sk.Eq(ct, 'm')))
	require.Equal(t, uint8(0), ck.DecryptBit(sk.Eq(ct, 'n')))
}

func TestNewBackendWiresClientAndServer(t *testing.T) {
	backend, err := NewBackend()
	require.NoError(t, err)

	ct := backend.EncryptByte('x')
	var sk fhe.ServerKey = backend.ServerKey()
	bit := backend.DecryptBit(sk.Eq(ct, 'x'))
	require.Equal(t, uint8(1), bit, "backend did not round-trip a self-equality check to 1")
}
