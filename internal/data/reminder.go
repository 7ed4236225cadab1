package data

import (
	"fmt"
	"strings"
	"time"
)

// ReminderLayout is the accepted reminder format (yyyy-MM-dd HH:mm).
const ReminderLayout = "2006-01-02 15:04"

// ParseReminder parses text as a local reminder timestamp. Blank text means
// "no reminder" and yields nil without error. Both create and edit go through
// here so a malformed value is always a recoverable ErrInvalidDateFormat.
func ParseReminder(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(ReminderLayout, text, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q does not match yyyy-MM-dd HH:mm", ErrInvalidDateFormat, text)
	}
	return &t, nil
}

// FormatReminder renders t in ReminderLayout, or "" for nil.
func FormatReminder(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ReminderLayout)
}
