package wire

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Marshal(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 8, 29, 10, 30, 0, 123456000, time.UTC))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29T10:30:00.123456Z"`, string(b))
}

func TestTimestamp_Unmarshal(t *testing.T) {
	t.Run("fixed microsecond layout", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2026-08-29T10:30:00.123456Z"`), &ts))
		assert.Equal(t, 123456000, ts.Nanosecond())
	})

	t.Run("numeric offset", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2026-08-29T10:30:00.000000+0200"`), &ts))
		assert.Equal(t, time.Date(2026, 8, 29, 8, 30, 0, 0, time.UTC), ts.UTC())
	})

	t.Run("falls back to RFC 3339", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2026-08-29T10:30:00Z"`), &ts))
		assert.Equal(t, time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC), ts.UTC())
	})

	t.Run("rejects non-timestamps", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	})
}

func TestTimestamp_RoundTrip(t *testing.T) {
	in := NewTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 678901000, time.UTC))

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Timestamp
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, in.Equal(out.Time))
}
