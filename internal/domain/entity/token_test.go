package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenType_TTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, TokenTypeVerification.TTL())
	assert.Equal(t, time.Hour, TokenTypeReset.TTL())
	assert.Equal(t, 7*24*time.Hour, TokenTypeDownload.TTL())
	assert.Equal(t, time.Duration(0), TokenType("BOGUS").TTL())
}

func TestTokenType_Valid(t *testing.T) {
	assert.True(t, TokenTypeVerification.Valid())
	assert.True(t, TokenTypeReset.Valid())
	assert.True(t, TokenTypeDownload.Valid())
	assert.False(t, TokenType("").Valid())
	assert.False(t, TokenType("BOGUS").Valid())
}

func TestToken_Expired(t *testing.T) {
	now := time.Now()
	token := &Token{ExpiresAt: now}

	assert.False(t, token.Expired(now.Add(-time.Nanosecond)))
	// Exactly at the expiry instant the token is already dead.
	assert.True(t, token.Expired(now))
	assert.True(t, token.Expired(now.Add(time.Nanosecond)))
}
