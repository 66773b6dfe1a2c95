// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

// CleanLocationResponse is returned by location clean.
type CleanLocationResponse struct {
	Status    int    `json:"status"`
	Name      string `json:"name,omitempty"`
	Locality  string `json:"locality,omitempty"`
	Region    string `json:"region,omitempty"`
	Metro     string `json:"metro,omitempty"`
	Subregion string `json:"subregion,omitempty"`
	Country   string `json:"country,omitempty"`
	Continent string `json:"continent,omitempty"`
	Type      string `json:"type,omitempty"`
	Geo       string `json:"geo,omitempty"`
}
