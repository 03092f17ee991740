package counterstore

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

// File persists the counter as decimal text in a single file. A missing
// file means no prior state.
type File struct {
	path string
}

// NewFile returns a store backed by the file at path.
func NewFile(path string) *File { return &File{path: path} }

// Load reads the persisted counter value.
func (s *File) Load() (ulid.Uint128, bool, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return ulid.Uint128{}, false, nil
	}
	if err != nil {
		return ulid.Uint128{}, false, fmt.Errorf("counterstore: read %s: %w", s.path, err)
	}
	text := strings.TrimSpace(string(b))
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return ulid.Uint128{}, false, fmt.Errorf("counterstore: %s holds non-numeric state %q", s.path, text)
	}
	v, ok := ulid.U128FromBig(n)
	if !ok {
		return ulid.Uint128{}, false, fmt.Errorf("counterstore: %s value exceeds 128 bits", s.path)
	}
	return v, true, nil
}

// Store overwrites the persisted counter value.
func (s *File) Store(v ulid.Uint128) error {
	if err := os.WriteFile(s.path, []byte(v.String()), 0o644); err != nil {
		return fmt.Errorf("counterstore: write %s: %w", s.path, err)
	}
	return nil
}
