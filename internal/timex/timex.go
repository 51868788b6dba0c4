// Package timex holds small time types that serialize the way the rest of
// the project stores them: durations as "5s" strings in config files and
// instants as Unix epoch milliseconds in persisted records.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Duration wraps time.Duration so JSON can carry either a string such as
// "3s" or an integer number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// Millis is an instant expressed as milliseconds since the Unix epoch.
// It encodes to and from a plain JSON number.
type Millis int64

// FromTime truncates t to millisecond precision.
func FromTime(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// Time returns the instant in UTC.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}

func (m Millis) IsZero() bool {
	return m == 0
}

func (m Millis) String() string {
	return m.Time().Format(time.RFC3339)
}
