package datastore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/rs/zerolog"
)

// SnapshotTimestampLayout is appended to the snapshot prefix, second resolution
const SnapshotTimestampLayout = common.LayoutCompactStamp

// maxSnapshotSuffix bounds the disambiguation search for same-second events
const maxSnapshotSuffix = 1000

// SnapshotStore writes one new file per observed content version and never
// overwrites an existing snapshot.
type SnapshotStore struct {
	logger zerolog.Logger
	now    func() time.Time
	create func(path string) (io.WriteCloser, error)
}

// NewSnapshotStore creates a new SnapshotStore
func NewSnapshotStore(logger zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{
		logger: logger.With().Str("component", "SnapshotStore").Logger(),
		now:    time.Now,
		create: createExclusive,
	}
}

// WithClock replaces the time source, for tests
func (s *SnapshotStore) WithClock(now func() time.Time) *SnapshotStore {
	s.now = now
	return s
}

// Save writes content to pathPrefix + timestamp. If that file already exists
// (two events within one second) "_1", "_2", ... is appended until a free
// name is found. Returns the path written.
func (s *SnapshotStore) Save(pathPrefix, content string) (string, error) {
	base := pathPrefix + s.now().Format(SnapshotTimestampLayout)

	for i := 0; i < maxSnapshotSuffix; i++ {
		path := base
		if i > 0 {
			path = fmt.Sprintf("%s_%d", base, i)
		}

		err := s.writeExclusive(path, content)
		if errors.Is(err, fs.ErrExist) {
			s.logger.Debug().Str("path", path).Msg("Snapshot name taken, trying next suffix")
			continue
		}
		if err != nil {
			s.logger.Error().Err(err).Str("path", path).Msg("Failed to save contents")
			return "", WrapPathError(err, "writing snapshot", path)
		}

		s.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Saved new contents")
		return path, nil
	}

	return "", WrapPathError(fs.ErrExist, "no free snapshot name", base)
}

// writeExclusive creates path and writes content. A partially written file
// is removed so that it never stands in for a complete snapshot.
func (s *SnapshotStore) writeExclusive(path, content string) error {
	file, err := s.create(path)
	if err != nil {
		return err
	}

	_, err = io.WriteString(file, content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(path); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			s.logger.Error().Err(removeErr).Str("path", path).Msg("Failed to remove partial snapshot")
		}
	}
	return err
}

func createExclusive(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}
