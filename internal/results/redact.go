// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

import "strings"

// Mask placeholders. The shape of the data stays visible; only content is
// obscured. This is display policy, not a security boundary — the API
// response already carries the unmasked values.
const (
	maskedSupplier = "******"
	maskedCountry  = "**"
)

// Redactor applies the visibility policy for the current session.
type Redactor struct {
	Authenticated bool
}

// SupplierName returns the supplier name, or a fixed-width placeholder for
// unauthenticated sessions. Absent values render as "-" either way.
func (rd Redactor) SupplierName(name string) string {
	if name == "" {
		return "-"
	}
	if !rd.Authenticated {
		return maskedSupplier
	}
	return name
}

// Country returns the country, masked for unauthenticated sessions.
func (rd Redactor) Country(country string) string {
	if country == "" {
		return "-"
	}
	if !rd.Authenticated {
		return maskedCountry
	}
	return country
}

// ProcessedAt returns the upload timestamp with digits replaced by '*' for
// unauthenticated sessions. Only the date portion is shown.
func (rd Redactor) ProcessedAt(ts string) string {
	if ts == "" {
		return "-"
	}
	date := ts
	if len(date) > 10 {
		date = date[:10]
	}
	if rd.Authenticated {
		return date
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '*'
		}
		return r
	}, date)
}
