package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/siteadmin/internal/cryptox"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/accounts"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/content"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/records"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *records.MemoryRepository
	content  *content.StoreRepository
	accounts *accounts.StoreRepository
	scheme   cryptox.PasswordScheme
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := records.NewMemoryRepository()
	scheme := cryptox.Argon2idScheme{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
	return &fixture{
		store:    store,
		content:  content.NewRepository(store),
		accounts: accounts.NewRepository(store, scheme),
		scheme:   scheme,
	}
}

func (f *fixture) raw(t *testing.T, key string) []byte {
	t.Helper()
	data, err := f.store.Get(context.Background(), key)
	require.NoError(t, err)
	return data
}

func nop() logging.Logger { return logging.Nop() }
