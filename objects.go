package wyag

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bivsbon/wyag/internal/codec"
	"go.uber.org/zap"
)

// IDLength is the length of an object identifier in hex characters.
const IDLength = sha1.Size * 2

// HashObject computes the identifier of payload and, when repo is not nil,
// stores it as an object of the given kind. With a nil repo no I/O happens.
func HashObject(repo *Repository, kind Kind, payload []byte) (string, error) {
	obj, err := NewObject(kind, payload)
	if err != nil {
		return "", err
	}
	return WriteObject(repo, obj)
}

// WriteObject stores obj in repo and returns its identifier. Writing an
// identifier that is already stored is a no-op. With a nil repo the identifier
// is computed and nothing is written.
//
// The identifier is the SHA-1 of the payload alone, not of the framed object,
// so the same bytes get the same identifier whatever their kind. Canonical git
// hashes the whole frame; identifiers here are not interchangeable with git's.
func WriteObject(repo *Repository, obj Object) (string, error) {
	payload := obj.Serialize()
	frame := codec.Encode(obj.Kind(), payload)

	sum := sha1.Sum(payload)
	id := hex.EncodeToString(sum[:])

	if repo == nil {
		return id, nil
	}

	if _, err := repo.objects.Put(id, frame); err != nil {
		return "", fmt.Errorf("write object %s: %w", id, err)
	}
	return id, nil
}

// ReadObject returns the object stored under id, or (nil, nil) if there is
// none. Decoding failures of a stored object are returned as errors. Unlike
// WriteObject, a repository is required.
func ReadObject(repo *Repository, id string) (Object, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	id, ok := normalizeID(id)
	if !ok {
		repo.log.Debug("not an object identifier", zap.String("id", id))
		return nil, nil
	}

	frame, ok, err := repo.objects.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	kind, payload, err := codec.Decode(frame)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", id, err)
	}
	return NewObject(kind, payload)
}

// HasObject reports whether an object is stored under id.
func HasObject(repo *Repository, id string) (bool, error) {
	if repo == nil {
		return false, ErrNilRepository
	}
	id, ok := normalizeID(id)
	if !ok {
		return false, nil
	}
	return repo.objects.Has(id)
}

// CatFile resolves name and returns the payload of the object it designates.
// kind is only a hint for the resolver.
func CatFile(repo *Repository, name string, kind Kind) ([]byte, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	id, err := FindObject(repo, name, kind, true)
	if err != nil {
		return nil, err
	}
	obj, err := ReadObject(repo, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return obj.Serialize(), nil
}

// normalizeID lowercases id and reports whether it is a full hex identifier.
// Anything else cannot name a stored object.
func normalizeID(id string) (string, bool) {
	if len(id) != IDLength {
		return id, false
	}
	id = strings.ToLower(id)
	if _, err := hex.DecodeString(id); err != nil {
		return id, false
	}
	return id, true
}
