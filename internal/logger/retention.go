package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
)

var logFilePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(config.DefaultLogFilePrefix) + `(\d{4}-\d{2}-\d{2}-\d{4})\.log$`)

// PruneOldLogs deletes run log files in dir whose embedded date lies more
// than retentionDays days before now's date. Files with other names are left
// alone. Errors are logged and never returned; the deleted paths are.
func PruneOldLogs(dir string, now time.Time, retentionDays int, logger zerolog.Logger) []string {
	log := logger.With().Str("component", "LogRetention").Logger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("Error while deleting old log files")
		return nil
	}

	if retentionDays <= 0 {
		log.Warn().Int("retention_days", retentionDays).Int("default", config.DefaultLogRetentionDays).Msg("Invalid log retention, using default")
		retentionDays = config.DefaultLogRetentionDays
	}
	cutoff := common.DaysAgo(now, retentionDays)
	var deleted []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := logFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		fileTime, err := time.ParseInLocation(config.DefaultLogTimestampLayout, match[1], now.Location())
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Error parsing log file date")
			continue
		}

		if !common.StartOfDay(fileTime).Before(cutoff) {
			log.Debug().Str("path", path).Msg("File is not old enough")
			continue
		}

		if err := os.Remove(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Error deleting old log file")
			continue
		}
		log.Info().Str("path", path).Msg("Deleted old log file")
		deleted = append(deleted, path)
	}

	return deleted
}
