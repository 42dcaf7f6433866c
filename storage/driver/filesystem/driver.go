// Package filesystem implements driver.StorageDriver against the local
// disk. It is adapted from the teacher's filesystem storage driver:
// content is written to a uuid-suffixed temp file and atomically renamed
// into place, and reads/deletes operate directly against os.
package filesystem

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"time"

	"github.com/google/uuid"

	storagedriver "github.com/lineality/padnetotp/storage/driver"
)

// Driver is a driver.StorageDriver implementation backed by a local
// filesystem. All paths passed to its methods are treated as subpaths of
// RootDirectory.
type Driver struct {
	rootDirectory string
}

// New constructs a Driver rooted at rootDirectory. The directory is not
// required to exist yet; it is created on first write.
func New(rootDirectory string) *Driver {
	return &Driver{rootDirectory: rootDirectory}
}

var _ storagedriver.StorageDriver = (*Driver)(nil)

// GetContent retrieves the content stored at subPath as a []byte.
func (d *Driver) GetContent(ctx context.Context, subPath string) ([]byte, error) {
	rc, err := d.Reader(ctx, subPath, 0)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// PutContent stores content at subPath, writing to a temporary file
// first and renaming it into place so a reader never observes a
// partially written file.
func (d *Driver) PutContent(ctx context.Context, subPath string, content []byte) error {
	fullPath := d.fullPath(subPath)
	parentDir := path.Dir(fullPath)
	if err := os.MkdirAll(parentDir, 0o777); err != nil {
		return err
	}

	tempPath := fmt.Sprintf("%s.%s.tmp", fullPath, uuid.NewString())
	fp, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(fp)
	if _, err := bw.Write(content); err != nil {
		fp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		fp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := fp.Sync(); err != nil {
		fp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := fp.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, fullPath); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

// Reader returns an io.ReadCloser for the content stored at subPath,
// starting at offset.
func (d *Driver) Reader(ctx context.Context, subPath string, offset int64) (io.ReadCloser, error) {
	file, err := os.OpenFile(d.fullPath(subPath), os.O_RDONLY, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storagedriver.PathNotFoundError{Path: subPath}
		}
		return nil, err
	}

	if fi, err := file.Stat(); err == nil && offset > fi.Size() {
		file.Close()
		return nil, storagedriver.InvalidOffsetError{Path: subPath, Offset: offset}
	}

	seekPos, err := file.Seek(offset, io.SeekStart)
	if err != nil {
		file.Close()
		return nil, err
	} else if seekPos < offset {
		file.Close()
		return nil, storagedriver.InvalidOffsetError{Path: subPath, Offset: offset}
	}
	return file, nil
}

// Stat returns whether subPath exists and its size.
func (d *Driver) Stat(ctx context.Context, subPath string) (storagedriver.FileInfo, error) {
	fi, err := os.Stat(d.fullPath(subPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storagedriver.PathNotFoundError{Path: subPath}
		}
		return nil, err
	}
	return fileInfo{path: subPath, FileInfo: fi}, nil
}

// List returns the direct descendants of subPath, sorted lexically so
// callers get deterministic traversal order.
func (d *Driver) List(ctx context.Context, subPath string) ([]string, error) {
	fullPath := d.fullPath(subPath)
	dir, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storagedriver.PathNotFoundError{Path: subPath}
		}
		return nil, err
	}
	defer dir.Close()

	names, err := dir.Readdirnames(0)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	entries := make([]string, 0, len(names))
	for _, name := range names {
		entries = append(entries, path.Join(subPath, name))
	}
	return entries, nil
}

// Delete removes the content stored at subPath.
func (d *Driver) Delete(ctx context.Context, subPath string) error {
	fullPath := d.fullPath(subPath)
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return storagedriver.PathNotFoundError{Path: subPath}
		}
		return err
	}
	return os.Remove(fullPath)
}

func (d *Driver) fullPath(subPath string) string {
	return path.Join(d.rootDirectory, subPath)
}

type fileInfo struct {
	os.FileInfo
	path string
}

func (fi fileInfo) Path() string { return fi.path }

func (fi fileInfo) Size() int64 {
	if fi.IsDir() {
		return 0
	}
	return fi.FileInfo.Size()
}

func (fi fileInfo) ModTime() time.Time { return fi.FileInfo.ModTime() }
