// Package codec implements the object frame format.
//
// A frame is the uncompressed on-disk representation of an object:
//
//	<kind> SP <decimal payload length> NUL <payload>
//
// The length field is only a consistency guard against truncated or corrupted
// frames; it is not a checksum.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformedObject   = errors.New("wyag: malformed object")
	ErrUnknownObjectKind = errors.New("wyag: unknown object kind")
)

// Kind is the type tag of a stored object.
type Kind string

const (
	KindCommit Kind = "commit"
	KindTree   Kind = "tree"
	KindTag    Kind = "tag"
	KindBlob   Kind = "blob"
)

// Kinds lists every recognized kind.
var Kinds = []Kind{KindCommit, KindTree, KindTag, KindBlob}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCommit, KindTree, KindTag, KindBlob:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind validates a kind tag.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownObjectKind, s)
	}
	return k, nil
}

// Encode builds the frame for payload tagged with kind.
func Encode(kind Kind, payload []byte) []byte {
	size := strconv.Itoa(len(payload))
	frame := make([]byte, 0, len(kind)+1+len(size)+1+len(payload))
	frame = append(frame, string(kind)...)
	frame = append(frame, ' ')
	frame = append(frame, size...)
	frame = append(frame, 0)
	return append(frame, payload...)
}

// Decode splits a frame into its kind and payload. The returned payload aliases
// frame.
func Decode(frame []byte) (Kind, []byte, error) {
	sp := bytes.IndexByte(frame, ' ')
	if sp < 0 {
		return "", nil, fmt.Errorf("%w: missing kind separator", ErrMalformedObject)
	}
	nul := bytes.IndexByte(frame[sp+1:], 0)
	if nul < 0 {
		return "", nil, fmt.Errorf("%w: missing length terminator", ErrMalformedObject)
	}
	nul += sp + 1

	size, err := strconv.ParseUint(string(frame[sp+1:nul]), 10, 64)
	if err != nil {
		return "", nil, fmt.Errorf("%w: bad length %q", ErrMalformedObject, frame[sp+1:nul])
	}
	payload := frame[nul+1:]
	if size != uint64(len(payload)) {
		return "", nil, fmt.Errorf("%w: declared length %d, actual %d", ErrMalformedObject, size, len(payload))
	}

	kind := Kind(frame[:sp])
	if !kind.Valid() {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownObjectKind, frame[:sp])
	}
	return kind, payload, nil
}
