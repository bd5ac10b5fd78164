// Package storage reads and writes the outline document file. Persistence is
// a blocking full-document overwrite; there is no partial-write recovery.
package storage

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Load reads the whole document as text. A missing file is treated as an
// empty document and created on the spot so later persists cannot fail on a
// missing parent; created reports whether that happened.
func Load(path string) (text string, created bool, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), false, nil
	}
	if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("read document: %w", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return "", false, fmt.Errorf("create document: %w", err)
	}
	log.Info().Str("path", path).Msg("created new document file")
	return "", true, nil
}

// Persist overwrites the document file with the given text.
func Persist(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}
	return nil
}
