package txid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomLength = 6
)

// New generates a human-readable transaction ID of the form
// PREFIX-YYYYMMDD-XXXXXX with 6 random base-36 characters. Uniqueness is
// probabilistic: these IDs are display identifiers, not primary keys, so a
// collision is cosmetic.
func New(prefix string) string {
	return NewAt(prefix, time.Now())
}

// NewAt generates an ID for a given moment; split out for tests
func NewAt(prefix string, now time.Time) string {
	buf := make([]byte, randomLength)
	// rand.Read on crypto/rand never fails on supported platforms
	_, _ = rand.Read(buf)

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(alphabet[int(b)%len(alphabet)])
	}

	return fmt.Sprintf("%s-%s-%s", strings.ToUpper(prefix), now.Format("20060102"), sb.String())
}
