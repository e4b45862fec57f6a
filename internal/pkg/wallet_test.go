package pkg

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWallet(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name string
		addr string
		want error
	}{
		{"empty", "", ErrWalletEmpty},
		{"system program", "11111111111111111111111111111111", nil},
		{"generated key", base58.Encode(pub), nil},
		{"too short", "abc", ErrWalletMalformed},
		{"bad alphabet", "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl", ErrWalletMalformed},
		{"wrong length", base58.Encode([]byte("sixteen-byte-key")) + "1111111111", ErrWalletMalformed},
		{"evm address", "0x52908400098527886E0F7030069857D2E4169EE7", ErrWalletMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateWallet(tt.addr), tt.want)
		})
	}
}

func TestVerifyWalletSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	addr := base58.Encode(pub)
	msg := ChallengeMessage("Tech Club", addr, "abc123")
	sig := base58.Encode(ed25519.Sign(priv, []byte(msg)))

	assert.NoError(t, VerifyWalletSignature(addr, msg, sig))
	assert.ErrorIs(t, VerifyWalletSignature(addr, msg+"x", sig), ErrSignatureVerify)
	assert.ErrorIs(t, VerifyWalletSignature(addr, msg, "not-base58-0OIl"), ErrSignatureFormat)

	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	assert.ErrorIs(t, VerifyWalletSignature(base58.Encode(otherPub), msg, sig), ErrSignatureVerify)
}
