package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	v, err := c.FormatVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.False(t, c.FileMode())
	assert.False(t, c.Bare())
}

func TestSaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, Default().Save(fs, "config"))

	data, err := afero.ReadFile(fs, "config")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[core]")
	assert.Contains(t, string(data), "repositoryformatversion")

	c, err := Load(fs, "config")
	require.NoError(t, err)

	v, err := c.FormatVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	bare, ok := c.Get(SectionCore, KeyBare)
	require.True(t, ok)
	assert.Equal(t, "false", bare)
}

func TestLoadGitStyle(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := "[core]\n\tRepositoryFormatVersion = 1\n\tfilemode = true\n\tbare = true\n"
	require.NoError(t, afero.WriteFile(fs, "config", []byte(src), 0644))

	c, err := Load(fs, "config")
	require.NoError(t, err)

	v, err := c.FormatVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, c.FileMode())
	assert.True(t, c.Bare())
}

func TestFormatVersionMissing(t *testing.T) {
	_, err := New().FormatVersion()
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestFormatVersionNotANumber(t *testing.T) {
	c := New()
	c.Set(SectionCore, KeyFormatVersion, "zero")
	_, err := c.FormatVersion()
	require.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "config")
	require.Error(t, err)
}

func TestGetMissing(t *testing.T) {
	_, ok := Default().Get("user", "name")
	assert.False(t, ok)
	_, ok = Default().Get(SectionCore, "autocrlf")
	assert.False(t, ok)
}
