package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/vfs"
)

// buildSample creates:
//
//	root/
//	  readme        (file)
//	  sub1/
//	    nested      (file)
//	    sub2/
//	  sub3/
func buildSample(t *testing.T) *vfs.Entry {
	t.Helper()
	root := vfs.NewRoot()
	_, err := root.CreateFile("readme")
	require.NoError(t, err)
	sub1, err := root.CreateDirectory("sub1")
	require.NoError(t, err)
	_, err = sub1.CreateFile("nested")
	require.NoError(t, err)
	_, err = sub1.CreateDirectory("sub2")
	require.NoError(t, err)
	_, err = root.CreateDirectory("sub3")
	require.NoError(t, err)
	return root
}

func TestWriteBytes(t *testing.T) {
	root := vfs.NewRoot()
	_, err := root.CreateFile("f1")
	require.NoError(t, err)
	sub, err := root.CreateDirectory("a")
	require.NoError(t, err)
	_, err = sub.CreateFile("inner")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, root))

	want := `{"root":{"dirs":["a"],"files":["f1"]},` +
		`"root/a":{"dirs":[],"files":["inner"]}}`
	require.Equal(t, want, buf.String())
}

func TestWriteEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vfs.NewRoot()))
	require.Equal(t, `{"root":{"dirs":[],"files":[]}}`, buf.String())
}

func TestRoundTrip(t *testing.T) {
	root := buildSample(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, root))

	loaded, err := Read(&buf)
	require.NoError(t, err)

	// Identical recursive listing means identical structure and order.
	require.Equal(t, vfs.ListRecursive(root), vfs.ListRecursive(loaded))
}

func TestReadMissingRoot(t *testing.T) {
	_, err := Read(strings.NewReader(`{"other":{"dirs":[],"files":[]}}`))
	require.ErrorIs(t, err, ErrMissingRoot)
}

func TestReadMissingChildRecord(t *testing.T) {
	in := `{"root":{"dirs":["ghost"],"files":[]}}`
	_, err := Read(strings.NewReader(in))
	require.ErrorIs(t, err, ErrMissingRecord)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: `garbage`},
		{name: "top level not object", in: `[1,2,3]`},
		{name: "record wrong shape", in: `{"root":"nope"}`},
		{name: "dirs wrong type", in: `{"root":{"dirs":"x","files":[]}}`},
		{name: "truncated", in: `{"root":{"dirs":[`},
		{name: "empty input", in: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			require.Error(t, err)
		})
	}
}

func TestReadDuplicateDeclaredName(t *testing.T) {
	// A record declaring the same name twice is a structural problem: the
	// second creation collides and the whole load is abandoned.
	in := `{"root":{"dirs":[],"files":["f","f"]}}`
	_, err := Read(strings.NewReader(in))
	require.ErrorIs(t, err, vfs.ErrFileExists)
}

func TestReadIgnoresUnreferencedRecords(t *testing.T) {
	in := `{"root":{"dirs":[],"files":["f"]},` +
		`"root/orphan":{"dirs":[],"files":["lost"]}}`
	root, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"f"}, root.ChildNames())
}

func TestReadTrustsDeclaredListsOnly(t *testing.T) {
	// A record exists for root/hidden but root does not declare it, so it
	// must not be reachable.
	in := `{"root":{"dirs":["a"],"files":[]},` +
		`"root/a":{"dirs":[],"files":[]},` +
		`"root/hidden":{"dirs":[],"files":[]}}`
	root, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, root.ChildNames())
}
