package config

// StorageConfig defines where fingerprint and snapshot files live
type StorageConfig struct {
	DataDir               string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`
	FingerprintFilePrefix string `json:"fingerprint_file_prefix,omitempty" yaml:"fingerprint_file_prefix,omitempty"`
	SnapshotFilePrefix    string `json:"snapshot_file_prefix,omitempty" yaml:"snapshot_file_prefix,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		FingerprintFilePrefix: DefaultFingerprintFilePrefix,
		SnapshotFilePrefix:    DefaultSnapshotFilePrefix,
	}
}
