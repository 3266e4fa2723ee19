package vfs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDir(t *testing.T, parent *Entry, name string) *Entry {
	t.Helper()
	d, err := parent.CreateDirectory(name)
	require.NoError(t, err)
	return d
}

func mustFile(t *testing.T, parent *Entry, name string) {
	t.Helper()
	_, err := parent.CreateFile(name)
	require.NoError(t, err)
}

func TestListFlat(t *testing.T) {
	root := NewRoot()
	mustFile(t, root, "b")
	mustDir(t, root, "a")
	mustFile(t, root, "c")

	// Insertion order, files and directories interleaved.
	require.Equal(t, []string{"b", "a", "c"}, List(root))
}

func TestListEmptyDirectory(t *testing.T) {
	root := NewRoot()
	require.Empty(t, List(root))
}

func TestListRecursiveFilesBeforeDirectories(t *testing.T) {
	root := NewRoot()
	// Directory created before the files; listing must still put the
	// files first.
	sub := mustDir(t, root, "sub")
	mustFile(t, root, "f1")
	mustFile(t, root, "f2")
	mustFile(t, sub, "nested")

	require.Equal(t, []string{
		"/root",
		"f1",
		"f2",
		"/root/sub",
		"nested",
	}, ListRecursive(root))
}

func TestListRecursiveDepthFirstInsertionOrder(t *testing.T) {
	root := NewRoot()
	b := mustDir(t, root, "b")
	a := mustDir(t, root, "a")
	mustDir(t, b, "inner")
	mustFile(t, a, "af")

	// Subdirectories in insertion order (b before a), each fully
	// descended before the next.
	require.Equal(t, []string{
		"/root",
		"/root/b",
		"/root/b/inner",
		"/root/a",
		"af",
	}, ListRecursive(root))
}

func TestListRecursiveLabelStartsAtGivenDirectory(t *testing.T) {
	root := NewRoot()
	sub1 := mustDir(t, root, "sub1")
	sub2 := mustDir(t, sub1, "sub2")
	mustFile(t, sub2, "deep")

	// A listing rooted at sub1 does not include the path used to reach it.
	require.Equal(t, []string{
		"/sub1",
		"/sub1/sub2",
		"deep",
	}, ListRecursive(sub1))
}
