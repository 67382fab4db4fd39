package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := Open(":memory:", zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigrates(t *testing.T) {
	db := openTestDB(t)

	for _, model := range []interface{}{
		&Profile{}, &ProfileServerName{}, &ProfileCertificate{},
		&TrustGroup{}, &Credential{}, &User{},
	} {
		require.True(t, db.DB.HasTable(model))
	}
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(t.TempDir()+"/missing/dir/data.db", nil)
	require.Error(t, err)
}
