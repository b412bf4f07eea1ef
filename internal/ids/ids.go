package ids

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New generates a record ID with a resource-type prefix.
// Format: "prefix-<unix millis>-<9 base36 chars>" (e.g. "rev-1735689600000-k3f9x2a1b").
// The timestamp plus random suffix makes collisions unlikely without a
// central counter.
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), randSuffix(9))
}

func randSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// fallback (should be rare)
			b.WriteByte(alphabet[time.Now().Nanosecond()%len(alphabet)])
			continue
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String()
}
