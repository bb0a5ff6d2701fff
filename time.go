package initdata

import (
	"fmt"
	"strconv"
	"time"
)

// UnixTime represents a timestamp transferred as unix seconds, the way
// Telegram encodes auth_date in init data.
type UnixTime struct {
	time.Time
}

// NewUnixTime creates a UnixTime from time.Time
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: t}
}

// MarshalJSON implements json.Marshaler interface
func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}

	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (t *UnixTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) == 0 || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	if s[0] == '"' && s[len(s)-1] == '"' && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	unix, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid time format: expected unix timestamp, got %s", s)
	}
	if unix < 0 || unix > 253402300799 {
		return fmt.Errorf("invalid unix timestamp: %d", unix)
	}

	t.Time = time.Unix(unix, 0).UTC()
	return nil
}
