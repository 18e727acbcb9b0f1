package domain

import (
	"fmt"
	"time"
)

// Date layouts accepted from the interactive surfaces.
var orderDateLayouts = []string{
	"02-01-2006", // DD-MM-YYYY
	"2006-01-02", // YYYY-MM-DD
}

// ParseOrderDate parses a date string in either DD-MM-YYYY or YYYY-MM-DD
// form. An empty string returns the zero time, which NewOrder turns into
// the creation time.
func ParseOrderDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected DD-MM-YYYY or YYYY-MM-DD)", s)
}
