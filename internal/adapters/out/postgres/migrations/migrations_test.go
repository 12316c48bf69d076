package migrations_test

import (
	"testing"

	"bakery/internal/adapters/out/postgres/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	up, err := migrations.ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, migrations.Up, up)

	down, err := migrations.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, migrations.Down, down)

	_, err = migrations.ParseDirection("sideways")
	require.Error(t, err)
}

func TestFiles(t *testing.T) {
	up, err := migrations.Files(migrations.Up)
	require.NoError(t, err)
	require.NotEmpty(t, up)
	assert.Equal(t, "0001_init.up.sql", up[0])
	assert.IsIncreasing(t, up)

	down, err := migrations.Files(migrations.Down)
	require.NoError(t, err)
	assert.Len(t, down, len(up))
	for _, name := range down {
		assert.Contains(t, name, ".down.sql")
	}
}
