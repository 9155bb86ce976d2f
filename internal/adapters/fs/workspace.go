// Package fs implements file system access for the generator.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local file system.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// ReadSketch returns the content of sketch.yaml in root.
func (w *Workspace) ReadSketch(root string) ([]byte, error) {
	path := domain.SketchPath(root)

	data, err := os.ReadFile(path) //nolint:gosec // Path is the project root chosen by the user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrSketchNotFound, "file does not exist"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSketchReadFailed, err), "read failed"), "path", path)
	}
	return data, nil
}

// ReadDescription returns the content of an existing build description.
func (w *Workspace) ReadDescription(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is chosen by the user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDescriptionNotFound, "file does not exist"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build description"), "path", path)
	}
	return data, nil
}

// WriteDescription writes data to path by writing to a temp file in the same
// directory and renaming it, so readers never observe a partial file.
func (w *Workspace) WriteDescription(path string, data []byte) error {
	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrOutputWriteFailed, err), "write failed"), "path", path)
	}
	return nil
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".arduino2nix-*.nix")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
