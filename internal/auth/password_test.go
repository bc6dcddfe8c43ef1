package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Deterministic(t *testing.T) {
	t.Parallel()

	h := SHA256Hasher{}
	first, err := h.Hash("p1")
	require.NoError(t, err)
	second, err := h.Hash("p1")
	require.NoError(t, err)
	require.Equal(t, first, second)

	// sha256("p1"), hex encoded
	require.Equal(t, "f64551fcd6f07823cb87971cfb91446425da18286b3ab1ef935e0cbd7a69f68a", first)
}

func TestSHA256Hasher_Compare(t *testing.T) {
	t.Parallel()

	h := SHA256Hasher{}
	digest, err := h.Hash("secret")
	require.NoError(t, err)

	require.NoError(t, h.Compare(digest, "secret"))
	require.ErrorIs(t, h.Compare(digest, "wrong"), ErrPasswordMismatch)
	require.ErrorIs(t, h.Compare("", "secret"), ErrPasswordMismatch)
}

func TestBcryptHasher_Compare(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: 4}
	first, err := h.Hash("secret")
	require.NoError(t, err)
	second, err := h.Hash("secret")
	require.NoError(t, err)

	// per-hash salt makes digests differ
	require.NotEqual(t, first, second)

	require.NoError(t, h.Compare(first, "secret"))
	require.NoError(t, h.Compare(second, "secret"))
	require.ErrorIs(t, h.Compare(first, "wrong"), ErrPasswordMismatch)
}

func TestNewHasher_SchemeSelection(t *testing.T) {
	t.Parallel()

	require.IsType(t, SHA256Hasher{}, NewHasher("sha256", 12))
	require.IsType(t, SHA256Hasher{}, NewHasher("", 12))
	require.IsType(t, SHA256Hasher{}, NewHasher("unknown", 12))
	require.IsType(t, BcryptHasher{}, NewHasher("bcrypt", 12))
}
