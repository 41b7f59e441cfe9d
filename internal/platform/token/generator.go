// Package token generates opaque session tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy per token. 32 bytes encode to 64 hex
// characters and give 256 bits, enough to make collisions negligible.
const tokenBytes = 32

// Generator issues opaque random session tokens.
// The zero value is ready to use.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Issue returns a new cryptographically random hex token.
// It never derives the token from guessable inputs such as timestamps
// or sequence numbers.
func (g *Generator) Issue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
