package db_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/common/db"
)

func TestMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_indexes.sql": {Data: []byte("SELECT 1;")},
		"migrations/0001_init.sql":    {Data: []byte("SELECT 1;")},
		"migrations/README.md":        {Data: []byte("notes")},
		"migrations/old/0000.sql":     {Data: []byte("SELECT 1;")},
	}

	files, err := db.MigrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_indexes.sql"}, files)
}

func TestPending(t *testing.T) {
	files := []string{"0001_init.sql", "0002_indexes.sql", "0003_more.sql"}

	assert.Equal(t, files, db.Pending(files, nil))
	assert.Equal(t, []string{"0003_more.sql"},
		db.Pending(files, map[string]bool{"0001_init.sql": true, "0002_indexes.sql": true}))
	assert.Empty(t, db.Pending(files, map[string]bool{
		"0001_init.sql": true, "0002_indexes.sql": true, "0003_more.sql": true,
	}))
}
