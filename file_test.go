package nbt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "level.nbt")
	root := kitchenSink()

	require.NoError(t, WriteFile(path, root))
	got, err := ReadFile(path)
	require.NoError(t, err)
	require.True(t, Equal(root, got))
}

func TestFileTextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.snbt")
	root := NewCompound("")
	root.Put(NewString("name", "Steve"))
	root.Put(NewShort("health", 20))

	require.NoError(t, StringifyFile(path, root, Pretty()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\n\tname: \"Steve\",\n\thealth: 20s\n}", string(data))

	got, err := ParseFile(path)
	require.NoError(t, err)
	require.True(t, Equal(root, got))
}

func TestFileRootMustBeCompound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "root.snbt")
	require.NoError(t, os.WriteFile(path, []byte("[1,2,3]"), 0o644))

	_, err := ParseFile(path)
	var rte *RootTypeError
	require.ErrorAs(t, err, &rte)
	require.Equal(t, TypeList, rte.Type)
}

func TestFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.nbt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
