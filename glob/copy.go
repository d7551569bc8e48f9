package glob

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyError wraps a failure to copy one file with the path it failed on.
type CopyError struct {
	Path string // Relative path of the file that failed
	Err  error  // Underlying error
}

func (e *CopyError) Error() string {
	return "copy " + e.Path + ": " + e.Err.Error()
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Copy copies every regular file under srcRoot matching at least one include
// pattern and no exclude pattern to the same relative path under destRoot.
// It returns the number of files copied; zero is a valid result meaning no
// file matched. On error, files already copied remain in place and the
// returned count reflects them.
func Copy(srcRoot, include, exclude, destRoot string) (int, error) {
	includes := Split(include)
	excludes := Split(exclude)

	count := 0
	err := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		ok, err := Match(includes, rel)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if len(excludes) > 0 {
			excluded, err := Match(excludes, rel)
			if err != nil {
				return err
			}
			if excluded {
				return nil
			}
		}

		if err := copyFile(path, filepath.Join(destRoot, filepath.FromSlash(rel))); err != nil {
			return &CopyError{Path: rel, Err: err}
		}
		count++
		return nil
	})

	return count, err
}

// copyFile copies src to dst, creating parent directories and preserving the
// source file's permission bits.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
