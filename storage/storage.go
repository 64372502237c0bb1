// Package storage keeps uploaded blobs on a publicly served disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrInvalidPath = errors.New("storage: path escapes root")

type Storage interface {
	// Store writes the upload under namespace and returns its relative path,
	// e.g. "berita/3f1c...e2.png".
	Store(namespace string, file *multipart.FileHeader) (string, error)
	Delete(relPath string) error
	Exists(relPath string) bool
	Root() string
}

// FileInfo is what the content sniffer learned about an upload.
type FileInfo struct {
	MIME      string
	Extension string
	Size      int64
}

// Inspect detects the real content type of the upload from its bytes.
func Inspect(file *multipart.FileHeader) (FileInfo, error) {
	f, err := file.Open()
	if err != nil {
		return FileInfo{}, err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		MIME:      mtype.String(),
		Extension: mtype.Extension(),
		Size:      file.Size,
	}, nil
}

type PublicDisk struct {
	root string
}

func NewPublicDisk(root string) (*PublicDisk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &PublicDisk{root: root}, nil
}

func (d *PublicDisk) Root() string {
	return d.root
}

func (d *PublicDisk) Store(namespace string, file *multipart.FileHeader) (string, error) {
	info, err := Inspect(file)
	if err != nil {
		return "", err
	}

	dir, err := d.resolve(namespace)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + info.Extension
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	return path.Join(namespace, name), nil
}

// Delete removes the blob. A blob that is already gone is not an error.
func (d *PublicDisk) Delete(relPath string) error {
	full, err := d.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (d *PublicDisk) Exists(relPath string) bool {
	full, err := d.resolve(relPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

func (d *PublicDisk) resolve(relPath string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(relPath))
	if clean == "/" || strings.Contains(relPath, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(d.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}
