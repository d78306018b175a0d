package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vidhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vidhub/internal/common"
	"github.com/dmitrijs2005/vidhub/internal/dbx"
)

// CredentialStore keeps the bearer credential in the local metadata table
// under common.TokenStorageKey. It satisfies client.TokenSource.
type CredentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Token returns the stored credential, or "" when logged out.
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save replaces the credential and the id of its owner in one transaction.
func (s *CredentialStore) Save(ctx context.Context, token, userID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		if userID == "" {
			return repo.Delete(ctx, common.UserIDStorageKey)
		}
		return repo.Set(ctx, common.UserIDStorageKey, []byte(userID))
	})
}

// Clear removes the credential and its owner id.
func (s *CredentialStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.TokenStorageKey, common.UserIDStorageKey)
	})
}
