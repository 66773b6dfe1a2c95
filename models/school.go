// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

// School is a school record.
type School struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Type        string    `json:"type,omitempty"`
	Website     string    `json:"website,omitempty"`
	Domain      string    `json:"domain,omitempty"`
	LinkedinURL string    `json:"linkedin_url,omitempty"`
	LinkedinID  string    `json:"linkedin_id,omitempty"`
	FacebookURL string    `json:"facebook_url,omitempty"`
	TwitterURL  string    `json:"twitter_url,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

// CleanSchoolResponse is returned by school clean.
type CleanSchoolResponse struct {
	Status int `json:"status"`
	School
}
