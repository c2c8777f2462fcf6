package wire

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the primary timestamp format on the wire: UTC with
// microsecond precision and a numeric or Z offset.
const TimestampLayout = "2006-01-02T15:04:05.000000Z0700"

// Timestamp is a time.Time that marshals in the API's fixed layout.
//
// Decoding tries the fixed layout first and falls back to plain RFC 3339.
// The fallback exists because not all server environments agree on the
// fractional-seconds part; treat it as a known wire-format ambiguity, not a
// supported second format.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}
