// Package metadata persists small named client-side values, most
// importantly the session token, in the local SQLite database.
package metadata

import (
	"context"
)

// Names of the values the client persists. TokenKey survives restarts until
// explicit logout or a 401.
const (
	TokenKey        = "token"
	AccountEmailKey = "account_email"
)

// Repository is a name→value store. Get returns ("", nil) when the name is
// absent; an absent token is a normal unauthenticated state, not an error.
type Repository interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name string, value string) error
	Delete(ctx context.Context, name string) error
	DeleteMany(ctx context.Context, names ...string) error
	Clear(ctx context.Context) error
}
