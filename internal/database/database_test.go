package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The sqlite path needs the modernc driver registered under the name
// "sqlite"; a missing registration only shows up at Open time.
func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
}

func TestConnect_SQLiteFile(t *testing.T) {
	db, err := Connect(t.TempDir() + "/app.db")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
}
