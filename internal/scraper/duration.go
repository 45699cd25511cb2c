package scraper

import (
	"fmt"
	"strings"
	"time"
)

// Duration label layouts
const (
	minuteSecondLayout     = "4:05"
	hourMinuteSecondLayout = "15:04:05"
)

// labelEpoch is the zero instant time.Parse uses for layouts without a date
var labelEpoch = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDuration converts a duration badge such as "02:15" or "1:02:03" into
// seconds. Whitespace inside the label is ignored.
func ParseDuration(label string) (int, error) {
	s := strings.Join(strings.Fields(label), "")
	if s == "" {
		return 0, fmt.Errorf("empty duration label")
	}

	layout := minuteSecondLayout
	if strings.Count(s, ":") == 2 {
		layout = hourMinuteSecondLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration label %q: %w", label, err)
	}
	return int(t.Sub(labelEpoch) / time.Second), nil
}
