// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

// Company is a company record.
type Company struct {
	ID               string    `json:"id,omitempty"`
	Name             string    `json:"name,omitempty"`
	DisplayName      string    `json:"display_name,omitempty"`
	AlternativeNames []string  `json:"alternative_names,omitempty"`
	Size             string    `json:"size,omitempty"`
	EmployeeCount    int       `json:"employee_count,omitempty"`
	Founded          int       `json:"founded,omitempty"`
	Industry         string    `json:"industry,omitempty"`
	Type             string    `json:"type,omitempty"`
	Website          string    `json:"website,omitempty"`
	Ticker           string    `json:"ticker,omitempty"`
	LinkedinURL      string    `json:"linkedin_url,omitempty"`
	LinkedinID       string    `json:"linkedin_id,omitempty"`
	FacebookURL      string    `json:"facebook_url,omitempty"`
	TwitterURL       string    `json:"twitter_url,omitempty"`
	Summary          string    `json:"summary,omitempty"`
	Headline         string    `json:"headline,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	Location         *Location `json:"location,omitempty"`
}

// EnrichCompanyResponse is returned by company enrich. The company fields are
// top-level siblings of status and likelihood.
type EnrichCompanyResponse struct {
	Status     int `json:"status"`
	Likelihood int `json:"likelihood,omitempty"`
	Company
}

// BulkEnrichCompanyResponse is one item of a company bulk enrich response.
type BulkEnrichCompanyResponse struct {
	Status     int        `json:"status"`
	Likelihood int        `json:"likelihood,omitempty"`
	Error      *ErrorInfo `json:"error,omitempty"`
	Metadata   Metadata   `json:"metadata,omitempty"`
	Company
}

// CleanCompanyResponse is returned by company clean.
type CleanCompanyResponse struct {
	Status     int  `json:"status"`
	FuzzyMatch bool `json:"fuzzy_match"`
	Company
}

// SearchCompanyResponse is returned by company search.
type SearchCompanyResponse struct {
	Status      int        `json:"status"`
	Data        []Company  `json:"data"`
	Total       int        `json:"total"`
	ScrollToken string     `json:"scroll_token,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"`
}
