package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// TestReadDefaultConfig tests the default configuration values.
func TestReadDefaultConfig(t *testing.T) {
	var c *Config
	require.NotPanics(t, func() { c = ReadDefaultConfig() })
	require.NotNil(t, c)
	require.NotNil(t, c.Join)

	assert.False(t, c.Join.UseTableAlias)
	assert.True(t, c.Join.LeftJoin)
	assert.Equal(t, "desc", c.Join.SingletonOrderDirection)
	assert.Equal(t, "deleted_at", c.Join.SoftDeleteColumn)
	assert.Equal(t, "snake", c.Join.NamingConvention)
	assert.NoError(t, c.Validate())
}

// TestReadConfigFile tests reading the configuration file.
func TestReadConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "neuron-join-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.yaml")
		content := []byte("join:\n  use_table_alias: true\n  singleton_order_column: created_at\n  singleton_order_direction: asc\n")
		require.NoError(t, ioutil.WriteFile(path, content, 0644))

		c, err := ReadConfigFile(path)
		require.NoError(t, err)

		assert.True(t, c.Join.UseTableAlias)
		assert.True(t, c.Join.LeftJoin)
		assert.Equal(t, "created_at", c.Join.SingletonOrderColumn)
		assert.Equal(t, "asc", c.Join.SingletonOrderDirection)
		assert.Equal(t, "deleted_at", c.Join.SoftDeleteColumn)
	})

	t.Run("Named", func(t *testing.T) {
		path := filepath.Join(dir, "joins.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("join:\n  left_join: false\n"), 0644))

		c, err := ReadNamedConfig("joins", dir)
		require.NoError(t, err)
		assert.False(t, c.Join.LeftJoin)
	})

	t.Run("InvalidDirection", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("join:\n  singleton_order_direction: sideways\n"), 0644))

		_, err := ReadConfigFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
	})

	t.Run("NotExists", func(t *testing.T) {
		_, err := ReadConfigFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadFailed))
	})
}

// TestJoinValidate tests the join configuration validation.
func TestJoinValidate(t *testing.T) {
	j := DefaultJoin()
	require.NoError(t, j.Validate())

	j.NamingConvention = "screaming"
	err := j.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
	assert.Contains(t, err.Error(), "NamingConvention")
}
