package snapshot

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/vfs"
)

// RootKey is the key of the root directory's record.
const RootKey = vfs.RootName

var (
	// ErrMissingRoot indicates the snapshot has no record under RootKey.
	ErrMissingRoot = errors.New("snapshot missing root record")

	// ErrMissingRecord indicates a directory's dirs list references a child
	// with no record of its own.
	ErrMissingRecord = errors.New("snapshot references missing directory record")
)

// record is one directory's persisted shape. Field order is significant for
// the emitted bytes: dirs before files.
type record struct {
	Dirs  []string `json:"dirs"`
	Files []string `json:"files"`
}

// Write streams the tree rooted at root to w as a single JSON object, one
// directory record at a time in depth-first order. The object is emitted
// incrementally rather than built in memory first.
func Write(w io.Writer, root *vfs.Entry) error {
	bw := bufio.NewWriter(w)
	if err := bw.WriteByte('{'); err != nil {
		return err
	}
	tw := &treeWriter{bw: bw}
	if err := tw.writeDir(RootKey, root); err != nil {
		return err
	}
	if err := bw.WriteByte('}'); err != nil {
		return err
	}
	return bw.Flush()
}

type treeWriter struct {
	bw      *bufio.Writer
	written int
}

func (tw *treeWriter) writeDir(key string, dir *vfs.Entry) error {
	rec := record{Dirs: dir.DirNames(), Files: dir.FileNames()}
	keyBytes, err := json.Marshal(key)
	if err != nil {
		return err
	}
	recBytes, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if tw.written > 0 {
		if err := tw.bw.WriteByte(','); err != nil {
			return err
		}
	}
	tw.written++

	if _, err := tw.bw.Write(keyBytes); err != nil {
		return err
	}
	if err := tw.bw.WriteByte(':'); err != nil {
		return err
	}
	if _, err := tw.bw.Write(recBytes); err != nil {
		return err
	}

	for _, sub := range dir.Dirs() {
		if err := tw.writeDir(key+vfs.PathSeparator+sub.Name(), sub); err != nil {
			return err
		}
	}
	return nil
}

// Read reconstructs a tree from the flat keyed collection produced by
// Write. It starts at RootKey and follows only the declared dirs/files
// lists; records not reachable from the root are silently ignored. Any
// structural problem returns an error and no tree.
func Read(r io.Reader) (*vfs.Entry, error) {
	var records map[string]record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	rootRec, ok := records[RootKey]
	if !ok {
		return nil, ErrMissingRoot
	}

	root := vfs.NewRoot()
	if err := attach(root, RootKey, rootRec, records); err != nil {
		return nil, err
	}
	return root, nil
}

func attach(dir *vfs.Entry, key string, rec record, records map[string]record) error {
	// Files first, then subdirectories: the format groups by kind, so the
	// relative order within each kind is what survives a round trip.
	for _, name := range rec.Files {
		if _, err := dir.CreateFile(name); err != nil {
			return fmt.Errorf("file %q under %q: %w", name, key, err)
		}
	}
	for _, name := range rec.Dirs {
		childKey := key + vfs.PathSeparator + name
		childRec, ok := records[childKey]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingRecord, childKey)
		}
		child, err := dir.CreateDirectory(name)
		if err != nil {
			return fmt.Errorf("directory %q under %q: %w", name, key, err)
		}
		if err := attach(child, childKey, childRec, records); err != nil {
			return err
		}
	}
	return nil
}
