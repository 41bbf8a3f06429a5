package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssuer(t *testing.T) {
	_, err := NewIssuer("")
	assert.Error(t, err)

	_, err = NewIssuer("secret")
	assert.NoError(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	t.Run("Round Trip", func(t *testing.T) {
		tok, err := issuer.Issue(42, PurposeCancel, time.Hour)
		require.NoError(t, err)

		id, err := issuer.Verify(tok, PurposeCancel)
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("Expired Beyond Leeway", func(t *testing.T) {
		tok, err := issuer.Issue(42, PurposeCancel, -10*time.Minute)
		require.NoError(t, err)

		_, err = issuer.Verify(tok, PurposeCancel)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("Recently Expired Within Leeway", func(t *testing.T) {
		tok, err := issuer.Issue(42, PurposeCancel, -30*time.Second)
		require.NoError(t, err)

		_, err = issuer.Verify(tok, PurposeCancel)
		assert.NoError(t, err)
	})

	t.Run("Wrong Purpose", func(t *testing.T) {
		tok, err := issuer.Issue(42, "other", time.Hour)
		require.NoError(t, err)

		_, err = issuer.Verify(tok, PurposeCancel)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		other, err := NewIssuer("another-secret")
		require.NoError(t, err)

		tok, err := other.Issue(42, PurposeCancel, time.Hour)
		require.NoError(t, err)

		_, err = issuer.Verify(tok, PurposeCancel)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token", PurposeCancel)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
