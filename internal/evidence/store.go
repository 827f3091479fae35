// Package evidence is the content-addressed store for MRV packages
// (measurement JSON plus imagery). The core never interprets payloads; it
// only stores and echoes locators, so this package lives entirely outside
// the ledger invariants and is swappable.
package evidence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	dErrors "bluecarbon/pkg/domain-errors"
)

const locatorPrefix = "sha256:"

// Store persists immutable payloads addressed by their content hash.
type Store interface {
	// Put stores data and returns its locator. Storing the same bytes
	// twice returns the same locator.
	Put(ctx context.Context, data []byte) (string, error)

	// Get returns the payload for a locator.
	Get(ctx context.Context, locator string) ([]byte, error)
}

// Locator derives the content address for a payload.
func Locator(data []byte) string {
	sum := sha256.Sum256(data)
	return locatorPrefix + hex.EncodeToString(sum[:])
}

// ParseLocator validates a locator and returns its hex digest.
func ParseLocator(locator string) (string, error) {
	digest, ok := strings.CutPrefix(locator, locatorPrefix)
	if !ok || len(digest) != sha256.Size*2 {
		return "", dErrors.New(dErrors.CodeInvalidInput, "malformed content locator")
	}
	if _, err := hex.DecodeString(digest); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "malformed content locator")
	}
	return digest, nil
}
