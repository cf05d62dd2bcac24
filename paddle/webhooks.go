package paddle

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the HTTP header Paddle signs webhook deliveries with.
const SignatureHeader = "Paddle-Signature"

// DefaultMaximumVariance is the default allowed skew between a webhook's
// signed timestamp and the verification time. Paddle's published guidance
// is 5 seconds; larger values widen the replay window.
const DefaultMaximumVariance = 5 * time.Second

// maxWebhookBodySize caps how much of a webhook request body is read (1 MiB).
const maxWebhookBodySize = 1 << 20

var (
	// ErrMalformedSignature indicates the Paddle-Signature header is absent or
	// does not match the "ts=<unix>;h1=<hex>" grammar.
	ErrMalformedSignature = errors.New("malformed Paddle-Signature header")

	// ErrSignatureMismatch indicates the computed HMAC does not match the
	// header digest. Treat as a security event.
	ErrSignatureMismatch = errors.New("webhook signature mismatch")

	// ErrTimestampOutOfRange indicates the digest was valid but the signed
	// timestamp falls outside the allowed variance window, a possible replay.
	ErrTimestampOutOfRange = errors.New("webhook timestamp outside allowed variance")

	// ErrEventDecode indicates the body passed signature verification but does
	// not decode as an event. The request is genuine; the payload is broken.
	ErrEventDecode = errors.New("verified webhook body is not a valid event")
)

// Signature is a parsed Paddle-Signature header.
type Signature struct {
	// Timestamp is the signing time claimed by the header.
	Timestamp time.Time

	digest []byte
}

// ParseSignature parses a Paddle-Signature header value of the form
//
//	ts=1671552777;h1=eb4d0dc8853be92b7f063b9f3ba5233eb920a09459b6e6b2c26705b4364db151
//
// Both parts must be present and the digest must be valid lowercase hex of
// HMAC-SHA256 output length; anything else is ErrMalformedSignature.
func ParseSignature(header string) (*Signature, error) {
	if header == "" {
		return nil, fmt.Errorf("%w: empty value", ErrMalformedSignature)
	}

	parts := strings.Split(header, ";")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected 2 parts, got %d", ErrMalformedSignature, len(parts))
	}

	var ts *time.Time
	var digest []byte

	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: part %q is not key=value", ErrMalformedSignature, part)
		}

		switch key {
		case "ts":
			unix, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid timestamp %q", ErrMalformedSignature, value)
			}
			t := time.Unix(unix, 0).UTC()
			ts = &t
		case "h1":
			var err error
			digest, err = hex.DecodeString(value)
			if err != nil {
				return nil, fmt.Errorf("%w: digest is not valid hex", ErrMalformedSignature)
			}
			if len(digest) != sha256.Size {
				return nil, fmt.Errorf("%w: digest is %d bytes, want %d", ErrMalformedSignature, len(digest), sha256.Size)
			}
		}
	}

	if ts == nil || digest == nil {
		return nil, fmt.Errorf("%w: missing ts or h1 part", ErrMalformedSignature)
	}

	return &Signature{Timestamp: *ts, digest: digest}, nil
}

// VerifyAt checks the signature against the raw request body as of the given
// time. The signed message is the decimal timestamp, a colon, then the exact
// body bytes; pass the body unmodified, since any re-encoding produces a
// different digest.
//
// The digest comparison is constant time. A maxVariance <= 0 disables the
// freshness check.
func (s *Signature) VerifyAt(body []byte, secret string, maxVariance time.Duration, now time.Time) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(s.Timestamp.Unix(), 10)))
	mac.Write([]byte{':'})
	mac.Write(body)

	if !hmac.Equal(mac.Sum(nil), s.digest) {
		return ErrSignatureMismatch
	}

	if maxVariance > 0 {
		skew := now.Sub(s.Timestamp)
		if skew < 0 {
			skew = -skew
		}
		if skew > maxVariance {
			return fmt.Errorf("%w: signed %s from now, limit %s", ErrTimestampOutOfRange, skew, maxVariance)
		}
	}

	return nil
}

// Verify is VerifyAt against the current wall clock.
func (s *Signature) Verify(body []byte, secret string, maxVariance time.Duration) error {
	return s.VerifyAt(body, secret, maxVariance, time.Now())
}

// Unmarshal validates the integrity of a Paddle webhook delivery and returns
// the decoded event.
//
//   - body is the raw request body. Don't transform or reformat it before
//     verification.
//   - secret is the notification destination's secret key from the Paddle
//     dashboard.
//   - header is the Paddle-Signature request header value.
//   - maxVariance bounds the allowed timestamp skew; DefaultMaximumVariance
//     is 5 seconds, and values <= 0 disable the check.
func Unmarshal(body []byte, secret, header string, maxVariance time.Duration) (*Event, error) {
	sig, err := ParseSignature(header)
	if err != nil {
		return nil, err
	}

	if err := sig.Verify(body, secret, maxVariance); err != nil {
		return nil, err
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventDecode, err)
	}

	return &event, nil
}

// ParseWebhook reads and verifies an incoming HTTP request from a Paddle
// webhook, using DefaultMaximumVariance for the freshness window.
// Ensure your HTTP handler does NOT consume r.Body before calling this.
func ParseWebhook(r *http.Request, secret string) (*Event, error) {
	if r.Method != http.MethodPost {
		return nil, errors.New("webhook must be a POST request")
	}

	header := r.Header.Get(SignatureHeader)
	if header == "" {
		return nil, fmt.Errorf("%w: missing %s header", ErrMalformedSignature, SignatureHeader)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook body: %w", err)
	}

	return Unmarshal(body, secret, header, DefaultMaximumVariance)
}
