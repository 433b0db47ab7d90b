package rendering

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// CollisionPolicy decides what happens when the document name is already taken.
type CollisionPolicy string

const (
	// CollisionSuffix keeps the existing file and saves as "name (2).docx", "name (3).docx", ...
	CollisionSuffix CollisionPolicy = "suffix"
	// CollisionOverwrite replaces the existing file.
	CollisionOverwrite CollisionPolicy = "overwrite"
)

const maxSuffix = 1000

// commit writes data to a staging file in dir and then moves it to its final
// name. Only the final move makes the document visible under its name; on any
// error the staging file is removed and nothing new appears at the final path.
func commit(dir, filename string, data []byte, policy CollisionPolicy) (string, error) {
	tmp, err := os.CreateTemp(dir, ".signoff-*.docx.tmp")
	if err != nil {
		return "", &RenderError{Message: fmt.Sprintf("output directory %s is not writable", dir), Cause: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", &RenderError{Message: "failed to write staging file", Cause: err}
	}
	if err := tmp.Chmod(0644); err != nil {
		return "", &RenderError{Message: "failed to set document permissions", Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		return "", &RenderError{Message: "failed to flush staging file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &RenderError{Message: "failed to close staging file", Cause: err}
	}

	var final string
	switch policy {
	case CollisionOverwrite:
		final = filepath.Join(dir, filename)
		if err := os.Rename(tmpName, final); err != nil {
			return "", &RenderError{Message: fmt.Sprintf("failed to move document to %s", final), Cause: err}
		}
		committed = true
	default:
		final, err = linkUnique(tmpName, dir, filename)
		if err != nil {
			return "", err
		}
		// The document is visible under its final name; the staging name goes.
		committed = true
		_ = os.Remove(tmpName)
	}

	_ = syncDir(dir)
	return final, nil
}

// linkUnique exposes the staging file under the first free candidate name.
// A hard link fails instead of replacing an existing file, so a document
// saved by someone else is never clobbered.
func linkUnique(staging, dir, filename string) (string, error) {
	for n := 1; n <= maxSuffix; n++ {
		final := filepath.Join(dir, candidateName(filename, n))
		err := os.Link(staging, final)
		if err == nil {
			return final, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if _, statErr := os.Lstat(final); statErr == nil {
			continue
		}
		if !linkUnsupported(err) {
			return "", &RenderError{Message: fmt.Sprintf("failed to save document as %s", final), Cause: err}
		}
		// Filesystems without hard links: rename onto the free name instead.
		if err := os.Rename(staging, final); err != nil {
			return "", &RenderError{Message: fmt.Sprintf("failed to move document to %s", final), Cause: err}
		}
		return final, nil
	}
	return "", &RenderError{Message: fmt.Sprintf("no free file name for %s after %d attempts", filename, maxSuffix)}
}

// linkUnsupported reports whether a link error means the filesystem cannot
// hard link at all, as opposed to a problem with the name or the file.
func linkUnsupported(err error) bool {
	return errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.EXDEV) ||
		errors.Is(err, syscall.ENOTSUP) ||
		errors.Is(err, syscall.ENOSYS)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
