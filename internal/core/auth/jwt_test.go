package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"violethacks/internal/core/auth"
)

func TestIssueParseRoundtrip(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "violethacks", TTL: time.Hour}

	tok, err := j.Issue("u_123", "SUPPORTER")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u_123", claims.UID)
	assert.Equal(t, "SUPPORTER", claims.Role)
}

func TestParseWrongSecret(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "violethacks", TTL: time.Hour}
	tok, err := j.Issue("u_123", "MEMBER")
	require.NoError(t, err)

	other := &auth.JWTer{Secret: []byte("another"), Issuer: "violethacks", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "violethacks", TTL: time.Hour}
	tok, err := j.Issue("u_123", "MEMBER")
	require.NoError(t, err)

	other := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "elsewhere", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}
