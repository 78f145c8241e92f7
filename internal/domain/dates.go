package domain

import "time"

// DateLayouts are the accepted calendar date formats for optional date fields.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidateDate accepts an empty string or a date in one of DateLayouts.
func ValidateDate(field, s string) error {
	if s == "" {
		return nil
	}
	for _, layout := range DateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return NewValidation("Invalid %s: expected YYYY-MM-DD", field)
}
