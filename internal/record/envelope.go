package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope wraps a record payload with its write timestamp and
// time-to-live. TTLSeconds == 0 means the record never expires.
// Timestamps are Unix seconds.
type Envelope struct {
	Version    int             `json:"v"`
	WrittenAt  int64           `json:"written_at"`
	TTLSeconds int64           `json:"ttl_seconds,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// Wrap marshals payload into an Envelope written at now with the given
// ttl. A ttl <= 0 stores as "never expires". Durations are truncated to
// whole seconds.
func Wrap(payload any, ttl time.Duration, now time.Time) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("record: wrap: %w", err)
	}
	env := Envelope{
		WrittenAt: now.Unix(),
		Payload:   raw,
	}
	if ttl > 0 {
		env.TTLSeconds = int64(ttl / time.Second)
	}
	return env, nil
}

// Stale reports whether the envelope has outlived its TTL at the given
// instant. An envelope with no TTL is never stale. Age exactly equal to
// the TTL is still fresh; staleness begins strictly after it.
//
// The caller injects now so the policy stays deterministic and testable
// without a live clock.
func (e Envelope) Stale(now time.Time) bool {
	if e.TTLSeconds <= 0 {
		return false
	}
	return now.Unix()-e.WrittenAt > e.TTLSeconds
}

// Unwrap unmarshals the wrapped payload into out.
func (e Envelope) Unwrap(out any) error {
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return fmt.Errorf("%w: payload: %v", ErrMalformed, err)
	}
	return nil
}
