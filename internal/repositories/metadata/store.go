package metadata

import (
	"context"
	"database/sql"

	"github.com/donapoint/donapoint/internal/dbx"
)

// Store is the Repository used by the session manager. It wraps a *sql.DB
// so multi-name writes and deletes can run in a single transaction.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(tx dbx.DBTX) *SQLiteRepository {
	return NewSQLiteRepository(tx)
}

func (s *Store) Get(ctx context.Context, name string) (string, error) {
	return s.repo(s.db).Get(ctx, name)
}

func (s *Store) Set(ctx context.Context, name string, value string) error {
	return s.repo(s.db).Set(ctx, name, value)
}

func (s *Store) Delete(ctx context.Context, name string) error {
	return s.repo(s.db).Delete(ctx, name)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

// DeleteMany removes the named values in one transaction. The session
// manager uses it so the token and its account hint never outlive each
// other in storage.
func (s *Store) DeleteMany(ctx context.Context, names ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for _, name := range names {
			if err := repo.Delete(ctx, name); err != nil {
				return err
			}
		}
		return nil
	})
}
