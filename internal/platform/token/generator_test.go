package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Issue(t *testing.T) {
	g := NewGenerator()

	t.Run("returns a 64-character hex string", func(t *testing.T) {
		tok, err := g.Issue()

		require.NoError(t, err, "issue failed")
		assert.Len(t, tok, 64, "token length does not match")

		_, err = hex.DecodeString(tok)
		assert.NoError(t, err, "token is not valid hex")
	})

	t.Run("tokens are unique across calls", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			tok, err := g.Issue()
			require.NoError(t, err, "issue failed")

			_, dup := seen[tok]
			require.False(t, dup, "duplicate token issued")
			seen[tok] = struct{}{}
		}
	})
}
