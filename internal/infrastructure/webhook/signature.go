// Package webhook verifies signed webhook deliveries of the form
// "t=<unix seconds>,v1=<hex hmac-sha256 of "t.payload">".
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// DefaultTolerance is the accepted clock skew between signer and receiver.
const DefaultTolerance = 5 * time.Minute

// Signature errors.
var (
	ErrMissingSignature = errors.New("webhook signature header missing or malformed")
	ErrInvalidSignature = errors.New("webhook signature does not match")
	ErrStaleSignature   = errors.New("webhook timestamp outside tolerance")
)

// Sign returns a header value for payload signed at ts.
func Sign(secret string, payload []byte, ts time.Time) string {
	unix := strconv.FormatInt(ts.Unix(), 10)
	return "t=" + unix + ",v1=" + compute(secret, unix, payload)
}

// Verify checks header against payload. Any v1 entry may match, which allows
// secret rotation on the sender side.
func Verify(secret string, payload []byte, header string, now time.Time, tolerance time.Duration) error {
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return ErrMissingSignature
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMissingSignature
	}
	if tolerance > 0 {
		skew := now.Sub(time.Unix(unix, 0))
		if skew < 0 {
			skew = -skew
		}
		if skew > tolerance {
			return ErrStaleSignature
		}
	}

	expected := compute(secret, timestamp, payload)
	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func compute(secret, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
