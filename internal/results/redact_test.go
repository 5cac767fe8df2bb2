// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

import "testing"

func TestRedactorUnauthenticated(t *testing.T) {
	rd := Redactor{Authenticated: false}

	if got := rd.SupplierName("Acme Components"); got != "******" {
		t.Errorf("SupplierName = %q", got)
	}
	if got := rd.Country("US"); got != "**" {
		t.Errorf("Country = %q", got)
	}
	if got := rd.ProcessedAt("2026-03-14T09:30:00Z"); got != "****-**-**" {
		t.Errorf("ProcessedAt = %q", got)
	}
}

func TestRedactorAuthenticated(t *testing.T) {
	rd := Redactor{Authenticated: true}

	if got := rd.SupplierName("Acme Components"); got != "Acme Components" {
		t.Errorf("SupplierName = %q", got)
	}
	if got := rd.Country("US"); got != "US" {
		t.Errorf("Country = %q", got)
	}
	if got := rd.ProcessedAt("2026-03-14T09:30:00Z"); got != "2026-03-14" {
		t.Errorf("ProcessedAt = %q", got)
	}
}

func TestRedactorAbsentValues(t *testing.T) {
	// Absent values render as "-" regardless of session state; the mask
	// applies only to present content.
	for _, authed := range []bool{true, false} {
		rd := Redactor{Authenticated: authed}
		if got := rd.SupplierName(""); got != "-" {
			t.Errorf("authed=%v SupplierName(\"\") = %q", authed, got)
		}
		if got := rd.Country(""); got != "-" {
			t.Errorf("authed=%v Country(\"\") = %q", authed, got)
		}
		if got := rd.ProcessedAt(""); got != "-" {
			t.Errorf("authed=%v ProcessedAt(\"\") = %q", authed, got)
		}
	}
}
