package datastore

import (
	"os"
	"path/filepath"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
)

// FilePathGenerator derives every per-target storage path from the target's
// short name. Two targets sharing a short name share their files.
type FilePathGenerator struct {
	logger            zerolog.Logger
	basePath          string
	fingerprintPrefix string
	snapshotPrefix    string
}

// NewFilePathGenerator creates a new file path generator
func NewFilePathGenerator(basePath string, storageCfg config.StorageConfig, logger zerolog.Logger) *FilePathGenerator {
	fingerprintPrefix := storageCfg.FingerprintFilePrefix
	if fingerprintPrefix == "" {
		fingerprintPrefix = config.DefaultFingerprintFilePrefix
	}
	snapshotPrefix := storageCfg.SnapshotFilePrefix
	if snapshotPrefix == "" {
		snapshotPrefix = config.DefaultSnapshotFilePrefix
	}

	return &FilePathGenerator{
		logger:            logger.With().Str("component", "FilePathGenerator").Logger(),
		basePath:          basePath,
		fingerprintPrefix: fingerprintPrefix,
		snapshotPrefix:    snapshotPrefix,
	}
}

// FingerprintPath returns the path of the target's fingerprint file, hash_<short_name>
func (fpg *FilePathGenerator) FingerprintPath(target config.Target) string {
	return filepath.Join(fpg.basePath, fpg.fingerprintPrefix+target.ShortName)
}

// SnapshotPrefix returns the prefix snapshot timestamps are appended to, contents_<short_name>
func (fpg *FilePathGenerator) SnapshotPrefix(target config.Target) string {
	return filepath.Join(fpg.basePath, fpg.snapshotPrefix+target.ShortName)
}

// EnsureBaseDir creates the storage directory if it doesn't exist
func (fpg *FilePathGenerator) EnsureBaseDir() error {
	if err := os.MkdirAll(fpg.basePath, 0755); err != nil {
		fpg.logger.Error().Err(err).Str("directory", fpg.basePath).Msg("Failed to create storage directory")
		return common.WrapError(err, "failed to create directory: "+fpg.basePath)
	}
	return nil
}
