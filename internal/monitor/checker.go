package monitor

import (
	"context"
	"time"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/aleister1102/pagewatch/internal/datastore"
	"github.com/aleister1102/pagewatch/internal/notifier"
	"github.com/rs/zerolog"
)

// Outcome classifies one target check.
type Outcome string

const (
	OutcomeFirstSeen   Outcome = "first_seen"
	OutcomeChanged     Outcome = "changed"
	OutcomeUnchanged   Outcome = "unchanged"
	OutcomeFetchFailed Outcome = "fetch_failed"
	OutcomeStoreFailed Outcome = "store_failed"
)

// CheckResult represents the result of checking one target
type CheckResult struct {
	Target         config.Target
	Outcome        Outcome
	OldFingerprint string
	NewFingerprint string
	SnapshotPath   string
	Error          error
	CheckedAt      time.Time
	Duration       time.Duration
}

// ContentFetcher is what the Checker needs from a Fetcher.
type ContentFetcher interface {
	FetchContent(ctx context.Context, target config.Target, elementID string) (string, error)
}

// Checker runs the fetch, fingerprint, compare and persist sequence for one target.
type Checker struct {
	logger        zerolog.Logger
	fetcher       ContentFetcher
	processor     *Processor
	fingerprints  *datastore.FingerprintStore
	snapshots     *datastore.SnapshotStore
	paths         *datastore.FilePathGenerator
	notifications *notifier.NotificationHelper
	elementID     string
	now           func() time.Time
}

// NewChecker creates a new Checker
func NewChecker(
	logger zerolog.Logger,
	fetcher ContentFetcher,
	processor *Processor,
	fingerprints *datastore.FingerprintStore,
	snapshots *datastore.SnapshotStore,
	paths *datastore.FilePathGenerator,
	notifications *notifier.NotificationHelper,
	elementID string,
) *Checker {
	return &Checker{
		logger:        logger.With().Str("component", "Checker").Logger(),
		fetcher:       fetcher,
		processor:     processor,
		fingerprints:  fingerprints,
		snapshots:     snapshots,
		paths:         paths,
		notifications: notifications,
		elementID:     elementID,
		now:           time.Now,
	}
}

// Check fetches the target once and compares its fingerprint with the stored one.
// It never returns an error; failures are reported through the result's Outcome.
func (c *Checker) Check(ctx context.Context, target config.Target) CheckResult {
	start := c.now()
	result := CheckResult{
		Target:    target,
		CheckedAt: start,
	}

	logger := c.logger.With().Str("target", target.Name).Str("short_name", target.ShortName).Logger()

	content, err := c.fetcher.FetchContent(ctx, target, c.elementID)
	if err != nil {
		logger.Error().Err(err).Str("url", target.URL).Msg("Could not retrieve content, skipping check")
		c.notifications.SendConnectFailed(target.Name)
		result.Outcome = OutcomeFetchFailed
		result.Error = err
		return c.finish(result)
	}

	current := c.processor.Fingerprint(content)
	result.NewFingerprint = current

	hashPath := c.paths.FingerprintPath(target)
	previous, found, err := c.fingerprints.Load(hashPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load previous hash, will retry next cycle")
		result.Outcome = OutcomeStoreFailed
		result.Error = err
		return c.finish(result)
	}
	result.OldFingerprint = previous

	switch {
	case !found:
		c.notifications.SendFirstObservation(target.Name)
		result.Outcome = OutcomeFirstSeen
		result.SnapshotPath, result.Error = c.persist(hashPath, target, current, content)
		if result.Error == nil {
			logger.Info().Msg("No previous hash, hash and contents stored")
		}
	case previous != current:
		c.notifications.SendChangeDetected(target.Name)
		result.Outcome = OutcomeChanged
		result.SnapshotPath, result.Error = c.persist(hashPath, target, current, content)
		if result.Error == nil {
			logger.Info().Str("old_hash", previous).Str("new_hash", current).Msg("Change detected, hash updated")
		}
	default:
		logger.Debug().Msg("No change detected")
		result.Outcome = OutcomeUnchanged
	}

	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Failed to store state, will retry next cycle")
		result.Outcome = OutcomeStoreFailed
	}
	return c.finish(result)
}

// persist writes the fingerprint and a new snapshot. Both writes are
// attempted even when the first fails.
func (c *Checker) persist(hashPath string, target config.Target, fingerprint, content string) (string, error) {
	var errs []error
	if err := c.fingerprints.Save(hashPath, fingerprint); err != nil {
		errs = append(errs, err)
	}
	snapshotPath, err := c.snapshots.Save(c.paths.SnapshotPrefix(target), content)
	if err != nil {
		errs = append(errs, err)
	}
	return snapshotPath, common.CombineErrors(errs)
}

func (c *Checker) finish(result CheckResult) CheckResult {
	result.Duration = c.now().Sub(result.CheckedAt)
	return result
}
