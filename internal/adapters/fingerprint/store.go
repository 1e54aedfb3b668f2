// Package fingerprint persists tool-configuration records between runs.
package fingerprint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ly1hex/elua/internal/core/domain"
	"go.trai.ch/zerr"
)

const digestPrefix = "xxh64:"

// Store implements ports.FingerprintStore using one flat text file per
// component class under the build directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Serialize renders a record as key=value lines with stable key order.
func Serialize(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(fields[k])
		b.WriteString("\n")
	}
	return b.String()
}

// digest hashes the case-folded payload so the stored digest stays valid
// across case-insensitive comparison.
func digest(payload string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.ToLower(payload)))
}

// CompareAndStore compares the current record to the persisted one and
// writes the current serialization back. It returns true iff a previous
// record existed and differed. A record whose digest line does not match its
// payload is treated as differing.
func (s *Store) CompareAndStore(dir, class string, fields map[string]string) (bool, error) {
	path := domain.FingerprintFileName(dir, class)
	payload := Serialize(fields)

	existed := false
	changed := false

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the build directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return false, zerr.With(zerr.Wrap(err, "failed to read fingerprint record"), "class", class)
	default:
		existed = true
		oldDigest, oldPayload, ok := strings.Cut(string(data), "\n")
		if !ok || oldDigest != digestPrefix+digest(oldPayload) {
			// Truncated or hand-edited record: force the rebuild path.
			changed = true
		} else {
			changed = !strings.EqualFold(oldPayload, payload)
		}
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, "failed to create fingerprint directory")
	}
	content := digestPrefix + digest(payload) + "\n" + payload
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write fingerprint record"), "class", class)
	}

	return existed && changed, nil
}

// Remove deletes the persisted record for the class. A missing record is
// not an error.
func (s *Store) Remove(dir, class string) error {
	err := os.Remove(domain.FingerprintFileName(dir, class))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove fingerprint record"), "class", class)
	}
	return nil
}
