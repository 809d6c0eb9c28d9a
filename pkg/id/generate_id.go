package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRequestID returns a correlation id of the form "req-" followed by
// 24 lowercase hex characters. It is stamped on requests that arrive
// without an Ax-Request-Id header and echoed into every audit entry.
func NewRequestID() string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return "req-" + hex.EncodeToString(b)
}
