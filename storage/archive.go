// Package storage provides read access to ZIP archives holding database
// dumps and published lemma pages.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// Archive is an opened ZIP file.
type Archive struct {
	path    string
	file    afero.File
	reader  *zip.Reader
	members map[string]*zip.File
}

// OpenArchive opens the ZIP file at path on fsys.
func OpenArchive(fsys afero.Fs, path string) (*Archive, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, fmt.Errorf("archive %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat archive %s: %w", path, err)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("archive %s: %w: %v", path, ErrInvalidArchive, err)
	}

	members := make(map[string]*zip.File, len(zr.File))
	for _, zf := range zr.File {
		members[zf.Name] = zf
	}

	return &Archive{path: path, file: f, reader: zr, members: members}, nil
}

// Path returns the path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.file.Close()
}

// Members returns the names of all members matching a doublestar pattern,
// in archive order. An empty pattern matches every member.
func (a *Archive) Members(pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid member pattern %q", pattern)
	}
	var names []string
	for _, zf := range a.reader.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		if pattern == "" {
			names = append(names, zf.Name)
			continue
		}
		if ok, _ := doublestar.Match(pattern, zf.Name); ok {
			names = append(names, zf.Name)
		}
	}
	return names, nil
}

// Open opens the named member for reading.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	zf, ok := a.members[name]
	if !ok {
		return nil, fmt.Errorf("member %s of %s: %w", name, a.path, ErrNotFound)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("open member %s: %w", name, err)
	}
	return rc, nil
}

// ReadFile reads the whole named member.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read member %s: %w", name, err)
	}
	return data, nil
}
