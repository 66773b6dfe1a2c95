// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

// IPResponse is returned by IP enrich.
type IPResponse struct {
	Status int      `json:"status"`
	Data   IPResult `json:"data"`
}

// IPResult groups what the service knows about an address. Company and Person
// are only present when the address resolves to them.
type IPResult struct {
	IP      IPInfo     `json:"ip"`
	Company *IPCompany `json:"company,omitempty"`
	Person  *IPPerson  `json:"person,omitempty"`
}

type IPInfo struct {
	Address  string      `json:"address"`
	Metadata *IPMetadata `json:"metadata,omitempty"`
	Location *Location   `json:"location,omitempty"`
}

// IPMetadata flags the nature of the address.
type IPMetadata struct {
	Version int  `json:"version"`
	Mobile  bool `json:"mobile"`
	Hosting bool `json:"hosting"`
	Proxy   bool `json:"proxy"`
	Tor     bool `json:"tor"`
	VPN     bool `json:"vpn"`
	Relay   bool `json:"relay"`
	Service bool `json:"service"`
}

type IPCompany struct {
	Confidence      string    `json:"confidence,omitempty"`
	ID              string    `json:"id,omitempty"`
	Domain          string    `json:"domain,omitempty"`
	Name            string    `json:"name,omitempty"`
	Location        *Location `json:"location,omitempty"`
	Size            string    `json:"size,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	InferredRevenue string    `json:"inferred_revenue,omitempty"`
	EmployeeCount   int       `json:"employee_count,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
}

type IPPerson struct {
	Confidence      string   `json:"confidence,omitempty"`
	JobTitleSubRole string   `json:"job_title_sub_role,omitempty"`
	JobTitleRole    string   `json:"job_title_role,omitempty"`
	JobTitleLevels  []string `json:"job_title_levels,omitempty"`
}
