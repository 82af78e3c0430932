package wyag

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Locate finds the repository enclosing startPath by walking up parent
// directories until one contains a metadata root.
//
// When the filesystem root is reached without a match, Locate returns
// ErrNoRepositoryFound if required is set, and (nil, nil) otherwise.
func Locate(startPath string, required bool, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)

	path, err := canonicalPath(o.Fs, startPath)
	if err != nil {
		return nil, err
	}

	for {
		o.Logger.Debug("looking for repository", zap.String("path", path))

		ok, err := afero.DirExists(o.Fs, filepath.Join(path, MetadataDir))
		if err != nil {
			return nil, err
		}
		if ok {
			return open(path, false, o)
		}

		parent := filepath.Dir(path)
		if parent == path {
			if required {
				return nil, fmt.Errorf("%w: %s", ErrNoRepositoryFound, startPath)
			}
			return nil, nil
		}
		path = parent
	}
}

// canonicalPath returns an absolute path. Symlinks are resolved when fs is the
// OS filesystem, the only one that has them.
func canonicalPath(fs afero.Fs, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, ok := fs.(*afero.OsFs); !ok {
		return abs, nil
	}
	return resolveSymlinks(abs)
}

// resolveSymlinks resolves the longest existing prefix of abs and appends the
// missing components unchanged.
func resolveSymlinks(abs string) (string, error) {
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}
	dir, err := resolveSymlinks(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
