package wyag

import (
	"fmt"
	"os"

	"github.com/bivsbon/wyag/internal/config"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Initialize creates a new repository at path, creating the worktree if needed.
// It refuses to initialize over a non-empty metadata root.
func Initialize(path string, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)
	// The existing config, if any, is never read: the target checks come
	// first and a fresh config replaces it.
	r, err := newRepository(path, o)
	if err != nil {
		return nil, err
	}

	if err := r.checkInitTarget(); err != nil {
		return nil, err
	}

	for _, dir := range []string{BranchesDir, ObjectsDir, RefsTagsDir, RefsHeadsDir} {
		if _, err := r.Dir(dir); err != nil {
			return nil, err
		}
	}

	if err := afero.WriteFile(r.fs, r.Path(DescriptionFile), []byte(o.Description), 0644); err != nil {
		return nil, err
	}

	head := fmt.Sprintf("ref: refs/heads/%s\n", o.DefaultBranch)
	if err := afero.WriteFile(r.fs, r.Path(HEADFile), []byte(head), 0644); err != nil {
		return nil, err
	}

	conf := config.Default()
	if err := conf.Save(r.fs, r.Path(ConfigFile)); err != nil {
		return nil, err
	}
	r.conf = conf

	r.log.Info("initialized repository", zap.String("gitdir", r.gitdir))
	return r, nil
}

func (r *Repository) checkInitTarget() error {
	info, err := r.fs.Stat(r.worktree)
	if os.IsNotExist(err) {
		return r.fs.MkdirAll(r.worktree, 0755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, r.worktree)
	}

	info, err = r.fs.Stat(r.gitdir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, r.gitdir)
	}

	empty, err := afero.IsEmpty(r.fs, r.gitdir)
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, r.gitdir)
	}
	return nil
}
