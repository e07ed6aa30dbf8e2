package sqlite

import (
	"fmt"
	"time"
)

// ParseTime reads timestamps written by the strftime column defaults.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
