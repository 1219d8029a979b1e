package pipeline

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/rs/zerolog/log"
)

// NewRunID creates a cryptographically random run ID with the given prefix.
// The prefix should include a trailing dash, e.g. "deck-". Run IDs keep
// per-run artifact files from colliding across invocations that share a
// cache directory.
func NewRunID(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		log.Fatal().Err(err).Msgf("Failed to generate random %s run ID", prefix)
	}
	return prefix + hex.EncodeToString(b)
}
