package dto

import "time"

// DateFormat is the wire format for date-only fields.
const DateFormat = "2006-01-02"

// ParseDate parses an optional yyyy-mm-dd string into a *time.Time.
// Empty input yields nil. Format errors are the caller's to surface; request
// fields carry a `datetime` binding so gin rejects malformed values earlier.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional date back to yyyy-mm-dd, empty when nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateFormat)
}
