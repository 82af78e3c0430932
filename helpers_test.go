package wyag

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const helloID = "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"

// setupRepo initializes a repository in a fresh temporary directory on the OS
// filesystem.
func setupRepo(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	repo, err := Initialize(filepath.Join(t.TempDir(), "repo"), opts...)
	require.NoError(t, err)
	return repo
}

// setupMemRepo initializes a repository on an in-memory filesystem.
func setupMemRepo(t *testing.T) (*Repository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	repo, err := Initialize("/work/repo", WithFs(fs))
	require.NoError(t, err)
	return repo, fs
}
