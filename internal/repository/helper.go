package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored timestamp in "2006-01-02 15:04:05", "2006-01-02"
// or RFC3339 form. SQLite stores whatever text the writer supplied, so reads
// tolerate all three.
func ParseTime(str string) (time.Time, error) {
	layouts := []string{"2006-01-02 15:04:05", "2006-01-02", time.RFC3339}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %s", str)
}
