package view

import "time"

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
}

// FormatDate renders an ISO date the way en-US long dates read, e.g.
// "Sunday, August 9, 2026". Unparseable input is returned as is.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Monday, January 2, 2006")
		}
	}
	return s
}

// FormatSubmitted renders a submission timestamp as M/D/YYYY.
func FormatSubmitted(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("1/2/2006")
}
