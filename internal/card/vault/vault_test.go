package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newVault(t *testing.T) *Vault {
	v, err := New("0123456789abcdef-test-key")
	require.NoError(t, err)
	return v.WithCost(bcrypt.MinCost)
}

func TestNew_ShortKey(t *testing.T) {
	_, err := New("short")
	assert.ErrorIs(t, err, ErrShortKey)
}

func TestSealOpen(t *testing.T) {
	v := newVault(t)

	a, err := v.Seal("4111111111111111")
	require.NoError(t, err)
	b, err := v.Seal("4111111111111111")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "nonce must differ per seal")

	plain, err := v.Open(a)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", plain)

	_, err = v.Open("bm90LWEtY2lwaGVydGV4dA==")
	assert.ErrorIs(t, err, ErrCiphertext)
}

func TestIndex(t *testing.T) {
	v := newVault(t)
	other, err := New("another-secret-key-0000")
	require.NoError(t, err)

	assert.Equal(t, v.Index("4111111111111111"), v.Index("4111111111111111"))
	assert.NotEqual(t, v.Index("4111111111111111"), v.Index("4111111111111129"))
	assert.NotEqual(t, v.Index("4111111111111111"), other.Index("4111111111111111"))
}

func TestCVV(t *testing.T) {
	v := newVault(t)
	hash, err := v.HashCVV("123")
	require.NoError(t, err)

	assert.True(t, v.CheckCVV(hash, "123"))
	assert.False(t, v.CheckCVV(hash, "124"))
}
