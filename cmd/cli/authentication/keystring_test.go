package authentication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestCredentials_RoundTrip(t *testing.T) {
	keyring.MockInit()

	creds := &StoredCredentials{
		Token:     "jwt",
		UserID:    "user-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, StoreCredentials(creds))

	got, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, DeleteCredentials())
	_, err = LoadCredentials()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoadCredentials_Expired(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, StoreCredentials(&StoredCredentials{
		Token:     "jwt",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}))

	_, err := LoadCredentials()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestDeleteCredentials_NothingStored(t *testing.T) {
	keyring.MockInit()
	assert.NoError(t, DeleteCredentials())
}

func TestExpired(t *testing.T) {
	now := time.Unix(1_000, 0)
	assert.False(t, (&StoredCredentials{}).Expired(now))
	assert.False(t, (&StoredCredentials{ExpiresAt: 1_001}).Expired(now))
	assert.True(t, (&StoredCredentials{ExpiresAt: 1_000}).Expired(now))
}
