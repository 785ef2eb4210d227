package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random unique identifier for a new record.
// Collision probability is treated as negligible; no uniqueness check
// against the store is performed.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current instant in UTC. All temporal fields are set
// exactly once, at creation, from this clock.
func Now() time.Time {
	return time.Now().UTC()
}

// EncodeTime renders t as canonical RFC 3339 UTC text, the only temporal
// format ever written to the store.
func EncodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// DecodeTime converts a stored temporal value back to a structured
// time.Time. It accepts RFC 3339 text or an already-structured value
// (idempotent, no re-parsing). Anything else is ErrMalformedTimestamp.
func DecodeTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case Timestamp:
		return time.Time(t), nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, t)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported value %T", ErrMalformedTimestamp, v)
	}
}

// Timestamp is a temporal field that round-trips through the store as
// RFC 3339 text while staying a structured value in memory.
type Timestamp time.Time

// Time returns the structured form.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeTime(time.Time(t)))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTimestamp, data)
	}
	parsed, err := DecodeTime(raw)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}
