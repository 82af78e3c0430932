package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bivsbon/wyag/internal/compression"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LooseStore implements Store with one compressed file per object.
type LooseStore struct {
	fs         afero.Fs
	dir        string
	compressor *compression.Compressor
	log        *zap.Logger
}

// NewLooseStore returns a pool rooted at dir. The directory is not created;
// shard directories are created on demand by Put.
func NewLooseStore(fs afero.Fs, dir string, compressor *compression.Compressor, log *zap.Logger) *LooseStore {
	if compressor == nil {
		compressor = compression.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LooseStore{
		fs:         fs,
		dir:        dir,
		compressor: compressor,
		log:        log,
	}
}

// Get reads and inflates an object.
func (s *LooseStore) Get(id string) ([]byte, bool, error) {
	path := s.Path(id)
	compressed, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	frame, err := s.compressor.Decompress(compressed)
	if err != nil {
		return nil, false, fmt.Errorf("decompress object %s: %w", id, err)
	}
	return frame, true, nil
}

// Put stores an object. The existence check and the write are separate steps:
// concurrent writers of the same id may both write, which is harmless because
// the content under an id is always identical.
func (s *LooseStore) Put(id string, frame []byte) (bool, error) {
	path := s.Path(id)
	_, err := s.fs.Stat(path)
	if err == nil {
		s.log.Debug("object already present", zap.String("id", id))
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	compressed, err := s.compressor.Compress(frame)
	if err != nil {
		return false, fmt.Errorf("compress object %s: %w", id, err)
	}

	if err := afero.WriteFile(s.fs, path, compressed, 0444); err != nil {
		return false, err
	}

	s.log.Debug("object written", zap.String("id", id), zap.Int("size", len(compressed)))
	return true, nil
}

// Has checks if an object exists.
func (s *LooseStore) Has(id string) (bool, error) {
	_, err := s.fs.Stat(s.Path(id))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Path returns the filesystem path for an object id.
// Git-style sharding: objects/ab/cd123...
func (s *LooseStore) Path(id string) string {
	if len(id) < 3 {
		return filepath.Join(s.dir, id)
	}
	return filepath.Join(s.dir, id[:2], id[2:])
}
