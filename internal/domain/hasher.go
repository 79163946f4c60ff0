package domain

import (
	"crypto/sha256"
	"fmt"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// Digest returns the SHA-256 hex digest of the exact concatenation of lines.
func Digest(lines []string) string {
	h := sha256.New()
	for _, line := range lines {
		_, _ = h.Write([]byte(line))
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}

// KeyOf returns the grouping key of a block: declared name plus content digest.
func KeyOf(block m.Block) m.GroupKey {
	return m.GroupKey{Name: block.Name, Digest: Digest(block.Lines)}
}
