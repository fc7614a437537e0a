package monitor

import (
	"crypto/sha256"
	"fmt"

	"github.com/rs/zerolog"
)

// Processor turns extracted content into a fingerprint.
type Processor struct {
	logger zerolog.Logger
}

// NewProcessor creates a new Processor.
func NewProcessor(logger zerolog.Logger) *Processor {
	return &Processor{
		logger: logger.With().Str("component", "Processor").Logger(),
	}
}

// Fingerprint returns the lowercase hex SHA-256 digest of content's UTF-8 bytes.
func (p *Processor) Fingerprint(content string) string {
	hash := Fingerprint(content)
	p.logger.Debug().Str("hash", hash).Msg("Generated hash")
	return hash
}

// Fingerprint is the stateless form of Processor.Fingerprint.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", sum)
}
