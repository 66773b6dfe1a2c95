// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"errors"
	"testing"
)

func list(v ...string) []string { return v }

func TestDefaultPersonRule(t *testing.T) {
	tests := []struct {
		name   string
		params PersonParams
		ok     bool
	}{
		{"empty", PersonParams{}, false},
		{"pdl id", PersonParams{PDLID: list("qEnOZ5Oh0poWnQ1luFBfVw_0000")}, true},
		{"lid", PersonParams{LID: list("12345")}, true},
		{"profile", PersonParams{Profile: list("linkedin.com/in/seanthorne")}, true},
		{"email", PersonParams{Email: list("sean@peopledatalabs.com")}, true},
		{"phone", PersonParams{Phone: list("+1 555 0100")}, true},
		{"email hash", PersonParams{EmailHash: list("e206e6cd7fa5f9499fd6d2d943dcf7d9")}, true},
		{"full name only", PersonParams{Name: list("sean thorne")}, false},
		{"first name only with company", PersonParams{FirstName: list("sean"), Company: list("pdl")}, false},
		{"first and last with locality", PersonParams{FirstName: list("sean"), LastName: list("thorne"), Locality: "san francisco"}, true},
		{"name with region", PersonParams{Name: list("sean thorne"), Region: "california"}, true},
		{"name with company", PersonParams{Name: list("sean thorne"), Company: list("pdl")}, true},
		{"name with school only", PersonParams{Name: list("sean thorne"), School: list("university of oregon")}, false},
		{"locality without name", PersonParams{Locality: "san francisco", Company: list("pdl")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultPersonRule(&tt.params)
			if (err == nil) != tt.ok {
				t.Errorf("DefaultPersonRule() error = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error %v does not match ErrValidation", err)
			}
		})
	}
}

// The rule shipped by earlier clients accepts anything without a lid and
// treats absent school, location or postal_code as supporting a name. Whether
// that was intended is unresolved, so both behaviors are pinned here and the
// default rule is the one applied unless a caller opts in.
func TestLegacyPersonRule_OpenQuestion(t *testing.T) {
	tests := []struct {
		name      string
		params    PersonParams
		legacyOK  bool
		defaultOK bool
	}{
		{
			name:      "nothing at all",
			params:    PersonParams{},
			legacyOK:  true,
			defaultOK: false,
		},
		{
			name:      "name only",
			params:    PersonParams{Name: list("sean thorne")},
			legacyOK:  true,
			defaultOK: false,
		},
		{
			name:      "lid with name and no other signal",
			params:    PersonParams{LID: list("1"), Name: list("sean thorne")},
			legacyOK:  true,
			defaultOK: true,
		},
		{
			name: "lid with name and every inverted field present",
			params: PersonParams{
				LID: list("1"), Name: list("sean thorne"),
				School: list("uo"), Location: list("sf"), PostalCode: list("94105"),
			},
			legacyOK:  false,
			defaultOK: true,
		},
		{
			name:      "lid alone",
			params:    PersonParams{LID: list("1")},
			legacyOK:  false,
			defaultOK: true,
		},
		{
			name:      "email",
			params:    PersonParams{Email: list("a@b.com")},
			legacyOK:  true,
			defaultOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := LegacyPersonRule(&tt.params); (err == nil) != tt.legacyOK {
				t.Errorf("LegacyPersonRule() error = %v, want ok=%v", err, tt.legacyOK)
			}
			if err := DefaultPersonRule(&tt.params); (err == nil) != tt.defaultOK {
				t.Errorf("DefaultPersonRule() error = %v, want ok=%v", err, tt.defaultOK)
			}
		})
	}
}

func TestApplyPersonRule(t *testing.T) {
	plain := errors.New("no good")
	ve := applyPersonRule(opPersonEnrich, func(*PersonParams) error { return plain }, &PersonParams{})
	if ve == nil {
		t.Fatal("expected a validation error")
	}
	if ve.Op != opPersonEnrich || !errors.Is(ve, plain) || !errors.Is(ve, ErrValidation) {
		t.Errorf("applyPersonRule() = %#v", ve)
	}

	if ve := applyPersonRule(opPersonEnrich, nil, &PersonParams{Email: list("a@b.com")}); ve != nil {
		t.Errorf("nil rule should fall back to the default, got %v", ve)
	}
}
