package backup

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// copyPath copies src (a file, or a directory tree) into destDir,
// preserving the base name. Existing files inside the destination are
// overwritten.
func copyPath(src, destDir string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	dest := filepath.Join(destDir, filepath.Base(src))
	if info.IsDir() {
		return copyDir(src, dest)
	}
	return copyFile(src, dest, info.Mode())
}

// copyDir recursively copies the directory tree rooted at src to dest.
func copyDir(src, dest string) error {
	return filepath.WalkDir(
		src,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(src, path)
			if err != nil {
				return err
			}
			target := filepath.Join(dest, rel)

			info, err := d.Info()
			if err != nil {
				return err
			}

			if d.IsDir() {
				return os.MkdirAll(target, info.Mode().Perm())
			}
			return copyFile(path, target, info.Mode())
		},
	)
}

// copyFile copies a single file, truncating any existing file at dest.
func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return out.Close()
}
