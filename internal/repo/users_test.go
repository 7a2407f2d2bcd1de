package repo

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-pos/internal/db"
)

func TestEmailExists(t *testing.T) {
	ctx := context.Background()
	r := &Users{Store: newStore(t), Log: zerolog.Nop()}

	assert.False(t, r.EmailExists(ctx, "a@x.com"))
	require.True(t, r.InsertUser(ctx, "a@x.com", "secret"))
	assert.True(t, r.EmailExists(ctx, "a@x.com"))
	assert.False(t, r.EmailExists(ctx, "A@x.com"), "email match is case-sensitive")
}

func TestCredentialsMatch(t *testing.T) {
	ctx := context.Background()
	r := &Users{Store: newStore(t), Log: zerolog.Nop()}

	require.True(t, r.InsertUser(ctx, "a@x.com", "secret"))

	assert.True(t, r.CredentialsMatch(ctx, "a@x.com", "secret"))
	assert.False(t, r.CredentialsMatch(ctx, "a@x.com", "Secret"))
	assert.False(t, r.CredentialsMatch(ctx, "a@x.com", "secret "))
	assert.False(t, r.CredentialsMatch(ctx, "b@x.com", "secret"))
}

func TestDuplicateEmailsPermitted(t *testing.T) {
	ctx := context.Background()
	r := &Users{Store: newStore(t), Log: zerolog.Nop()}

	require.True(t, r.InsertUser(ctx, "a@x.com", "one"))
	require.True(t, r.InsertUser(ctx, "a@x.com", "two"))

	assert.True(t, r.CredentialsMatch(ctx, "a@x.com", "one"))
	assert.True(t, r.CredentialsMatch(ctx, "a@x.com", "two"))
}

func TestUserQueriesFalseOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	r := &Users{Store: &db.Store{Path: t.TempDir()}, Log: zerolog.Nop()}

	assert.False(t, r.InsertUser(ctx, "a@x.com", "pw"))
	assert.False(t, r.EmailExists(ctx, "a@x.com"))
	assert.False(t, r.CredentialsMatch(ctx, "a@x.com", "pw"))
}
