package nodeid_test

import (
	"testing"

	"github.com/katalvlaran/mlc/nodeid"
	"github.com/stretchr/testify/require"
)

func TestTranslator_RegisterAndLookup(t *testing.T) {
	tr := nodeid.New()
	require.NoError(t, tr.Register("depot", 0))
	require.NoError(t, tr.Register("shop-a", 1))

	id, ok := tr.ToID("depot")
	require.True(t, ok)
	require.Equal(t, 0, id)

	name, err := tr.ToName(1)
	require.NoError(t, err)
	require.Equal(t, "shop-a", name)

	require.Equal(t, 2, tr.Len())
}

func TestTranslator_RegisterIdempotent(t *testing.T) {
	tr := nodeid.New()
	require.NoError(t, tr.Register("depot", 0))
	require.NoError(t, tr.Register("depot", 0), "re-registering the same pair should be a no-op")
}

func TestTranslator_RegisterDuplicateNameDifferentID(t *testing.T) {
	tr := nodeid.New()
	_ = tr.Register("depot", 0)
	err := tr.Register("depot", 1)
	require.ErrorIs(t, err, nodeid.ErrDuplicateName)
}

func TestTranslator_ToNameUnset(t *testing.T) {
	tr := nodeid.New()
	_, err := tr.ToName(42)
	require.ErrorIs(t, err, nodeid.ErrTranslatorNotSet)
}
