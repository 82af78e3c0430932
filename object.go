package wyag

import (
	"fmt"

	"github.com/bivsbon/wyag/internal/codec"
)

// Kind is the type tag of a stored object.
// Re-exported from internal/codec for convenience.
type Kind = codec.Kind

const (
	KindCommit = codec.KindCommit
	KindTree   = codec.KindTree
	KindTag    = codec.KindTag
	KindBlob   = codec.KindBlob
)

// ParseKind validates a kind name such as "blob".
func ParseKind(s string) (Kind, error) { return codec.ParseKind(s) }

// Object is a stored object. The set of implementations is closed: *Blob,
// *Commit, *Tree and *Tag.
type Object interface {
	Kind() Kind
	// Serialize returns the payload written after the frame header.
	Serialize() []byte
	// Deserialize replaces the object's content with payload.
	Deserialize(payload []byte)

	object()
}

// NewObject returns an object of the given kind holding payload.
func NewObject(kind Kind, payload []byte) (Object, error) {
	var obj Object
	switch kind {
	case KindCommit:
		obj = &Commit{}
	case KindTree:
		obj = &Tree{}
	case KindTag:
		obj = &Tag{}
	case KindBlob:
		obj = &Blob{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectKind, kind)
	}
	obj.Deserialize(payload)
	return obj, nil
}

// Blob holds opaque application bytes.
type Blob struct {
	Data []byte
}

func NewBlob(data []byte) *Blob { return &Blob{Data: data} }

func (b *Blob) Kind() Kind                 { return KindBlob }
func (b *Blob) Serialize() []byte          { return b.Data }
func (b *Blob) Deserialize(payload []byte) { b.Data = payload }
func (*Blob) object()                      {}

// Commit carries its payload verbatim; commit fields are not parsed.
type Commit struct {
	Raw []byte
}

func (c *Commit) Kind() Kind                 { return KindCommit }
func (c *Commit) Serialize() []byte          { return c.Raw }
func (c *Commit) Deserialize(payload []byte) { c.Raw = payload }
func (*Commit) object()                      {}

// Tree carries its payload verbatim; tree entries are not parsed.
type Tree struct {
	Raw []byte
}

func (t *Tree) Kind() Kind                 { return KindTree }
func (t *Tree) Serialize() []byte          { return t.Raw }
func (t *Tree) Deserialize(payload []byte) { t.Raw = payload }
func (*Tree) object()                      {}

// Tag carries its payload verbatim.
type Tag struct {
	Raw []byte
}

func (t *Tag) Kind() Kind                 { return KindTag }
func (t *Tag) Serialize() []byte          { return t.Raw }
func (t *Tag) Deserialize(payload []byte) { t.Raw = payload }
func (*Tag) object()                      {}
