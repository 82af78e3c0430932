package wyag

import (
	"errors"

	"github.com/bivsbon/wyag/internal/codec"
)

var (
	ErrNotARepository           = errors.New("wyag: not a repository")
	ErrMissingConfig            = errors.New("wyag: config file missing")
	ErrUnsupportedFormatVersion = errors.New("wyag: unsupported repositoryformatversion")
	ErrAlreadyInitialized       = errors.New("wyag: repository already initialized")
	ErrNotADirectory            = errors.New("wyag: not a directory")
	ErrNoRepositoryFound        = errors.New("wyag: no repository found")
	ErrNotFound                 = errors.New("wyag: object not found")
	ErrNilRepository            = errors.New("wyag: nil repository")

	ErrMalformedObject   = codec.ErrMalformedObject
	ErrUnknownObjectKind = codec.ErrUnknownObjectKind
)
