package database

import (
	"testing"

	"jobportal/config"

	"github.com/stretchr/testify/require"
)

// SetupTestDB points the global DB at a fresh in-memory sqlite database with
// the schema synchronised from the entities. The previous DB is restored
// when the test ends.
func SetupTestDB(t testing.TB) *Database {
	t.Helper()

	prev := DB
	DB = Database{}

	conf := config.DatabaseConfiguration{
		Type:        config.SQLite,
		Name:        ":memory:",
		Synchronize: true,
	}
	require.NoError(t, DB.Init(NewDataSource(conf)))

	t.Cleanup(func() {
		DB.Close()
		DB = prev
	})

	return &DB
}
