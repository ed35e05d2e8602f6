package txid

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Format", func(t *testing.T) {
		id := NewAt("txn", now)
		assert.Regexp(t, regexp.MustCompile(`^TXN-20250314-[0-9a-z]{6}$`), id)
	})

	t.Run("Prefix is upper-cased", func(t *testing.T) {
		id := NewAt("rfd", now)
		assert.Regexp(t, regexp.MustCompile(`^RFD-`), id)
	})

	t.Run("IDs differ across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewAt("txn", now)
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}
