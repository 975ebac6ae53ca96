package statement

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order. Day-first layouts come before
// month-first because the supported statements are European.
var dateLayouts = []string{
	"2 January 2006",
	"2006-1-2",
	"2006/1/2",
	"2-1-2006",
	"2/1/2006",
}

// ParseDate parses a statement date in any of the supported layouts:
// "30 September 2025", ISO yyyy-mm-dd, and EU dd/mm/yyyy with - or /
// separators.
func ParseDate(val string) (time.Time, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", val)
}
