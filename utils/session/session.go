package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ID derives the per-day session identifier for a client: a one-way hash of
// IP, user agent and the UTC calendar date. The same client maps to the same
// identifier for the whole day without the raw IP or UA ever being stored.
// Distinct clients sharing IP+UA on the same day collide; that is accepted.
func ID(ip, userAgent string, date time.Time) string {
	day := date.UTC().Format("2006-01-02")
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%s", ip, userAgent, day)))
	return hex.EncodeToString(sum[:])
}

// HashIP one-way hashes an IP address for storage. Raw addresses are never
// persisted.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
