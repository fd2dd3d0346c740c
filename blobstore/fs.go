package blobstore

import (
	"context"
	"io/fs"
	"sort"
	"strings"
)

// FSStore serves blobs from an fs.FS, such as an embed.FS.
// Blobs are read fully on Open.
type FSStore struct {
	fsys  fs.FS
	label string
}

// NewFSStore creates a store over fsys. label names the file system in ID.
func NewFSStore(fsys fs.FS, label string) *FSStore {
	return &FSStore{fsys: fsys, label: label}
}

// ID returns "fs://" followed by the label.
func (s *FSStore) ID() string {
	return "fs://" + s.label
}

// Open opens a blob for reading.
func (s *FSStore) Open(_ context.Context, name string) (Blob, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: data}, nil
}

// List returns all regular files whose path starts with prefix.
func (s *FSStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasPrefix(path, prefix) {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
