package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_DeleteMany_RemovesAllNames(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupDB(t))

	require.NoError(t, store.Set(ctx, TokenKey, "tok"))
	require.NoError(t, store.Set(ctx, AccountEmailKey, "a@b.c"))

	require.NoError(t, store.DeleteMany(ctx, TokenKey, AccountEmailKey))

	for _, name := range []string{TokenKey, AccountEmailKey} {
		got, err := store.Get(ctx, name)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestStore_DeleteMany_MissingNamesAreFine(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupDB(t))

	require.NoError(t, store.DeleteMany(ctx, TokenKey, AccountEmailKey))
}

func TestStore_ImplementsRepository(t *testing.T) {
	var _ Repository = (*Store)(nil)
}
