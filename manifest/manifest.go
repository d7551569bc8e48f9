// Package manifest records and verifies checksums of archived artifacts.
//
// After a successful archive pass, a manifest.yaml is written alongside the
// artifacts with a BLAKE2b-256 digest per file. Verify recomputes the
// digests and reports the first file that went missing or changed.
package manifest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest file written into the artifacts directory.
const FileName = "manifest.yaml"

// Manifest errors.
var (
	// ErrNotFound indicates the directory has no manifest.
	ErrNotFound = errors.New("manifest not found")

	// ErrMismatch indicates a file's content no longer matches its
	// recorded digest.
	ErrMismatch = errors.New("artifact digest mismatch")

	// ErrMissingFile indicates a recorded file is gone.
	ErrMissingFile = errors.New("artifact missing")
)

// Manifest maps archived files to their content digests.
type Manifest struct {
	GeneratedAt time.Time         `yaml:"generated_at"`
	Algorithm   string            `yaml:"algorithm"`
	Files       map[string]string `yaml:"files"` // slash-separated relative path -> hex digest
}

// Write computes digests for every file under dir (excluding the manifest
// itself) and writes the manifest into dir. It returns the manifest.
func Write(dir string) (*Manifest, error) {
	m := &Manifest{
		GeneratedAt: time.Now().UTC(),
		Algorithm:   "blake2b-256",
		Files:       map[string]string{},
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == FileName {
			return nil
		}

		digest, err := hashFile(path)
		if err != nil {
			return fmt.Errorf("hash %s: %w", rel, err)
		}
		m.Files[rel] = digest
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return nil, err
	}
	return m, nil
}

// Read loads the manifest from dir.
func Read(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Verify recomputes the digest of every file recorded in dir's manifest and
// returns an error naming the first missing or altered file.
func Verify(dir string) error {
	m, err := Read(dir)
	if err != nil {
		return err
	}

	for rel, want := range m.Files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		got, err := hashFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%s: %w", rel, ErrMissingFile)
			}
			return fmt.Errorf("hash %s: %w", rel, err)
		}
		if got != want {
			return fmt.Errorf("%s: %w", rel, ErrMismatch)
		}
	}
	return nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
