// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

// Package models contains the response types returned by the People Data Labs
// API. They are deserialization targets only: every field the service may
// omit is optional, and no type carries behavior beyond small accessors.
package models

// Metadata is caller-supplied data attached to one bulk request item and
// echoed back on the matching response item.
type Metadata map[string]string

// ErrorInfo is the error object the service embeds in failed responses and
// in per-item failures of bulk responses.
type ErrorInfo struct {
	Type    StringList `json:"type,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorResponse is the body of a non-200 response.
type ErrorResponse struct {
	Status int        `json:"status,omitempty"`
	Error  *ErrorInfo `json:"error,omitempty"`
}

// Location is the structured location shape shared by schools, companies and
// IP lookups.
type Location struct {
	Name          string `json:"name,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	Metro         string `json:"metro,omitempty"`
	Country       string `json:"country,omitempty"`
	Continent     string `json:"continent,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	AddressLine2  string `json:"address_line_2,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Geo           string `json:"geo,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}
