package wyag

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bivsbon/wyag/internal/compression"
	"github.com/bivsbon/wyag/internal/config"
	"github.com/bivsbon/wyag/internal/store"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// MetadataDir is the name of the metadata root inside a worktree.
const MetadataDir = ".git"

// Names of entries under the metadata root.
const (
	ConfigFile      = "config"
	DescriptionFile = "description"
	HEADFile        = "HEAD"
	BranchesDir     = "branches"
	ObjectsDir      = "objects"
	RefsTagsDir     = "refs/tags"
	RefsHeadsDir    = "refs/heads"
)

// SupportedFormatVersion is the only core.repositoryformatversion accepted by Open.
const SupportedFormatVersion = 0

// Config is the repository configuration.
// Re-exported from internal/config for convenience.
type Config = config.Config

// Repository is a handle on a worktree and its metadata root. It holds no
// state beyond what was read from disk when it was opened.
type Repository struct {
	worktree string
	gitdir   string
	conf     *Config

	fs       afero.Fs
	log      *zap.Logger
	objects  store.Store
	resolver Resolver
}

// Open opens the repository whose worktree is path. The metadata root and the
// config file must exist and the config must declare a supported format
// version.
func Open(path string, opts ...Option) (*Repository, error) {
	return open(path, false, buildOptions(opts))
}

// open builds a Repository and loads its config. With force set, a missing
// metadata root or config is tolerated and the format version is not checked.
func open(path string, force bool, o *Options) (*Repository, error) {
	r, err := newRepository(path, o)
	if err != nil {
		return nil, err
	}

	if !force {
		ok, err := afero.DirExists(r.fs, r.gitdir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, r.worktree)
		}
	}

	cf := r.Path(ConfigFile)
	exists, err := afero.Exists(r.fs, cf)
	if err != nil {
		return nil, err
	}
	switch {
	case exists:
		if r.conf, err = config.Load(r.fs, cf); err != nil {
			return nil, err
		}
	case !force:
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, cf)
	}

	if !force {
		version, err := r.conf.FormatVersion()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormatVersion, err)
		}
		if version != SupportedFormatVersion {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormatVersion, version)
		}
	}

	r.log.Debug("repository opened", zap.Bool("force", force))
	return r, nil
}

// newRepository builds a handle without touching the filesystem. Its config
// is empty until loaded or written.
func newRepository(path string, o *Options) (*Repository, error) {
	worktree, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	compressor, err := compression.NewCompressor(o.CompressionLevel)
	if err != nil {
		return nil, err
	}

	r := &Repository{
		worktree: worktree,
		gitdir:   filepath.Join(worktree, MetadataDir),
		fs:       o.Fs,
		log:      o.Logger.With(zap.String("worktree", worktree)),
		resolver: o.Resolver,
	}
	r.objects = store.NewLooseStore(r.fs, r.Path(ObjectsDir), compressor, r.log)
	r.conf = config.New()
	return r, nil
}

// Worktree returns the absolute path of the user-visible root.
func (r *Repository) Worktree() string { return r.worktree }

// GitDir returns the absolute path of the metadata root.
func (r *Repository) GitDir() string { return r.gitdir }

// Config returns the configuration read when the repository was opened.
func (r *Repository) Config() *Config { return r.conf }

// Path joins parts under the metadata root.
func (r *Repository) Path(parts ...string) string {
	return filepath.Join(append([]string{r.gitdir}, parts...)...)
}

// Dir returns the directory parts under the metadata root, creating it and its
// parents if absent.
func (r *Repository) Dir(parts ...string) (string, error) {
	path := r.Path(parts...)
	info, err := r.fs.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrNotADirectory, path)
		}
		return path, nil
	case os.IsNotExist(err):
		if err := r.fs.MkdirAll(path, 0755); err != nil {
			return "", err
		}
		return path, nil
	default:
		return "", err
	}
}
