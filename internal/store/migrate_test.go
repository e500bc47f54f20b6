package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions(t *testing.T) {
	t.Parallel()

	versions, err := migrationVersions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.IsIncreasing(t, versions)
	assert.Equal(t, "001_initial_schema.sql", versions[0])
}
