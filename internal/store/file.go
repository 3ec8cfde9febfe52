package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// envelope is the on-disk document for one key.
type envelope struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// File persists each key as a small JSON document in a directory. A
// corrupt document is removed and reported as a miss so a bad write can
// never wedge the session.
type File struct {
	dir string
	log zerolog.Logger
}

// NewFile returns a file-backed store rooted at dir. The directory is
// created lazily on the first Set.
func NewFile(dir string, log zerolog.Logger) *File {
	return &File{dir: dir, log: log}
}

// Get reads the document for key. Missing or unreadable documents are
// misses, never errors.
func (f *File) Get(key string) (string, bool) {
	path := f.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		f.log.Warn().Err(err).Str("path", path).Msg("removing corrupt store document")
		os.Remove(path)
		return "", false
	}
	return env.Value, true
}

// Set writes the document for key atomically enough for a single-owner
// session: marshal, then replace the file in one WriteFile call.
func (f *File) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", f.dir, err)
	}
	data, err := json.MarshalIndent(envelope{Value: value, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := os.WriteFile(f.path(key), data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// path maps a logical key to a filename, replacing anything that is not
// a portable filename rune.
func (f *File) path(key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, key)
	return filepath.Join(f.dir, name+".json")
}
