package wyag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObject(t *testing.T) {
	tests := []struct {
		kind Kind
		want Object
	}{
		{KindBlob, &Blob{Data: []byte("p")}},
		{KindCommit, &Commit{Raw: []byte("p")}},
		{KindTree, &Tree{Raw: []byte("p")}},
		{KindTag, &Tag{Raw: []byte("p")}},
	}
	for _, tc := range tests {
		obj, err := NewObject(tc.kind, []byte("p"))
		require.NoError(t, err)
		assert.Equal(t, tc.want, obj)
		assert.Equal(t, tc.kind, obj.Kind())
		assert.Equal(t, "p", string(obj.Serialize()))
	}

	_, err := NewObject("branch", nil)
	require.ErrorIs(t, err, ErrUnknownObjectKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("tree")
	require.NoError(t, err)
	assert.Equal(t, KindTree, k)

	_, err = ParseKind("Tree")
	require.ErrorIs(t, err, ErrUnknownObjectKind)
}

func TestWriteObjectBlob(t *testing.T) {
	id, err := WriteObject(nil, NewBlob([]byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, helloID, id)
}
