package snapshot

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/vfs"
	"github.com/rbourbonnavarro/Salesforce-Hiring/pkg/vfsh"
)

// zstdMagic is the frame header every zstd stream starts with. Load sniffs
// it so compressed and plain snapshots are both accepted regardless of the
// current compress setting.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Store reads and writes the snapshot file at a fixed path.
type Store struct {
	path     string
	compress bool
	logger   vfsh.Logger
}

// NewStore creates a Store for path. If compress is true, Save writes a
// zstd-compressed snapshot.
func NewStore(path string, compress bool, logger vfsh.Logger) *Store {
	return &Store{path: path, compress: compress, logger: logger}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Load reconstructs the tree from the snapshot file. Any failure — missing
// file, unreadable bytes, structural problem — is returned to the caller,
// which starts with an empty root instead; partial loads never happen.
func (s *Store) Load() (*vfs.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if magic, err := br.Peek(len(zstdMagic)); err == nil && bytes.Equal(magic, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		root, err := Read(dec)
		if err != nil {
			return nil, err
		}
		s.logger.Verbose("loaded compressed snapshot from %s", s.path)
		return root, nil
	}

	root, err := Read(br)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("loaded snapshot from %s", s.path)
	return root, nil
}

// Save writes the tree atomically: the snapshot is streamed to a temp file
// in the target directory and renamed over the destination, so a crash
// mid-save never corrupts an existing snapshot.
func (s *Store) Save(root *vfs.Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".vfsh-snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := s.writeTo(tmp, root); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return err
	}
	s.logger.Verbose("saved snapshot to %s (compress=%v)", s.path, s.compress)
	return nil
}

func (s *Store) writeTo(w io.Writer, root *vfs.Entry) error {
	if !s.compress {
		return Write(w, root)
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := Write(enc, root); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
