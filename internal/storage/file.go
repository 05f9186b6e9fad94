// Package storage persists the user registry as a single JSON document in a
// local file. Loading and saving always cover the whole document; there is
// no partial read or in-place patching.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/akarin/userbook/internal/model/user"
)

// ErrMalformed reports a data file whose contents do not parse as a
// registry document. A corrupt file is surfaced, never silently treated as
// empty, since that would amount to data loss.
var ErrMalformed = errors.New("malformed data file")

// Load reads the registry document at path. A missing file or one with
// empty contents yields a fresh empty registry.
func Load(path string) (*user.Data, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return user.NewData(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(contents) == 0 {
		return user.NewData(), nil
	}

	data := user.NewData()
	if err := json.Unmarshal(contents, data); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrMalformed, err)
	}
	return data, nil
}

// Save writes the whole registry document to path, replacing any previous
// contents. The document lands in a uniquely named sibling file first and
// is renamed over the target, so a reader never observes a partial write.
func Save(path string, data *user.Data) error {
	contents, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, contents, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
