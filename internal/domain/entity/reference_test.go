package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalReference_RoundTrip(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	ref := NewExternalReference(now, "ana@test.com")
	assert.Equal(t, "1712345678901-ana@test.com", ref)

	ts, email, err := ParseExternalReference(ref)
	require.NoError(t, err)
	assert.Equal(t, now, ts)
	assert.Equal(t, "ana@test.com", email)
}

func TestParseExternalReference_EmailWithHyphen(t *testing.T) {
	ref := NewExternalReference(time.UnixMilli(1712345678901), "maria-jose@mi-dominio.com")

	_, email, err := ParseExternalReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "maria-jose@mi-dominio.com", email)
}

func TestParseExternalReference_Malformed(t *testing.T) {
	cases := []string{
		"",
		"1712345678901",
		"1712345678901-",
		"not-a-timestamp@x",
		"1712345678901-sin-arroba",
	}

	for _, ref := range cases {
		t.Run(ref, func(t *testing.T) {
			_, _, err := ParseExternalReference(ref)
			assert.ErrorIs(t, err, ErrMalformedReference)
		})
	}
}
