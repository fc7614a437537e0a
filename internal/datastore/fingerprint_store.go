package datastore

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FingerprintStore reads and writes the single fingerprint kept per target.
type FingerprintStore struct {
	logger zerolog.Logger
}

// NewFingerprintStore creates a new FingerprintStore
func NewFingerprintStore(logger zerolog.Logger) *FingerprintStore {
	return &FingerprintStore{
		logger: logger.With().Str("component", "FingerprintStore").Logger(),
	}
}

// Load returns the stored fingerprint trimmed of surrounding whitespace.
// found is false when the file does not exist.
func (s *FingerprintStore) Load(path string) (fingerprint string, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", path).Msg("No previous hash found")
		return "", false, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Failed to read hash file")
		return "", false, WrapPathError(err, "reading hash file", path)
	}

	fingerprint = strings.TrimSpace(string(data))
	s.logger.Debug().Str("path", path).Str("hash", fingerprint).Msg("Loaded previous hash")
	return fingerprint, true, nil
}

// Save overwrites the fingerprint file. The write is not atomic: a crash
// mid-write can leave a truncated value, which the next cycle reports as a change.
func (s *FingerprintStore) Save(path, fingerprint string) error {
	if err := os.WriteFile(path, []byte(fingerprint), 0644); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Failed to save hash file")
		return WrapPathError(err, "writing hash file", path)
	}
	s.logger.Debug().Str("path", path).Str("hash", fingerprint).Msg("Saved new hash")
	return nil
}
