package dto

import (
	"fmt"
	"time"

	"github.com/gwssd/medical_bills_app/internal/apperrors"
)

// dateLayouts are the accepted wire formats for dates, most specific first.
// The frontend sends either full timestamps (with or without zone) or plain
// calendar dates from date inputs.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or timestamp string.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
}

// FormatDate renders a timestamp in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// FormatDatePtr renders an optional timestamp, nil staying nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
