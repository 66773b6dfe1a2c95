// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

// Person is a person record.
type Person struct {
	ID                string       `json:"id,omitempty"`
	FullName          string       `json:"full_name,omitempty"`
	FirstName         string       `json:"first_name,omitempty"`
	MiddleName        string       `json:"middle_name,omitempty"`
	LastName          string       `json:"last_name,omitempty"`
	Sex               string       `json:"sex,omitempty"`
	BirthYear         int          `json:"birth_year,omitempty"`
	BirthDate         string       `json:"birth_date,omitempty"`
	LinkedinURL       string       `json:"linkedin_url,omitempty"`
	LinkedinUsername  string       `json:"linkedin_username,omitempty"`
	LinkedinID        string       `json:"linkedin_id,omitempty"`
	WorkEmail         string       `json:"work_email,omitempty"`
	PersonalEmails    []string     `json:"personal_emails,omitempty"`
	RecommendedEmail  string       `json:"recommended_personal_email,omitempty"`
	MobilePhone       string       `json:"mobile_phone,omitempty"`
	PhoneNumbers      []string     `json:"phone_numbers,omitempty"`
	Industry          string       `json:"industry,omitempty"`
	JobTitle          string       `json:"job_title,omitempty"`
	JobTitleRole      string       `json:"job_title_role,omitempty"`
	JobTitleLevels    []string     `json:"job_title_levels,omitempty"`
	JobCompanyID      string       `json:"job_company_id,omitempty"`
	JobCompanyName    string       `json:"job_company_name,omitempty"`
	JobCompanyWebsite string       `json:"job_company_website,omitempty"`
	LocationName      string       `json:"location_name,omitempty"`
	LocationLocality  string       `json:"location_locality,omitempty"`
	LocationRegion    string       `json:"location_region,omitempty"`
	LocationCountry   string       `json:"location_country,omitempty"`
	LocationPostal    string       `json:"location_postal_code,omitempty"`
	Skills            []string     `json:"skills,omitempty"`
	Interests         []string     `json:"interests,omitempty"`
	Emails            []Email      `json:"emails,omitempty"`
	Profiles          []Profile    `json:"profiles,omitempty"`
	Experience        []Experience `json:"experience,omitempty"`
	Education         []Education  `json:"education,omitempty"`
}

type Email struct {
	Address string `json:"address,omitempty"`
	Type    string `json:"type,omitempty"`
}

type Profile struct {
	Network  string `json:"network,omitempty"`
	ID       string `json:"id,omitempty"`
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
}

// Experience is one position in a person's work history.
type Experience struct {
	Company   *ExperienceCompany `json:"company,omitempty"`
	Title     *ExperienceTitle   `json:"title,omitempty"`
	StartDate string             `json:"start_date,omitempty"`
	EndDate   string             `json:"end_date,omitempty"`
	IsPrimary bool               `json:"is_primary,omitempty"`
}

type ExperienceCompany struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Website  string    `json:"website,omitempty"`
	Industry string    `json:"industry,omitempty"`
	Location *Location `json:"location,omitempty"`
}

type ExperienceTitle struct {
	Name   string   `json:"name,omitempty"`
	Role   string   `json:"role,omitempty"`
	Levels []string `json:"levels,omitempty"`
}

// Education is one entry in a person's education history.
type Education struct {
	School    *School  `json:"school,omitempty"`
	Degrees   []string `json:"degrees,omitempty"`
	Majors    []string `json:"majors,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

// EnrichPersonResponse is returned by person enrich.
type EnrichPersonResponse struct {
	Status     int      `json:"status"`
	Likelihood int      `json:"likelihood,omitempty"`
	Data       Person   `json:"data"`
	Matched    []string `json:"matched,omitempty"`
}

// BulkEnrichPersonResponse is one item of a person bulk enrich response.
// Items that did not match carry an Error and a non-200 Status.
type BulkEnrichPersonResponse struct {
	Status     int        `json:"status"`
	Likelihood int        `json:"likelihood,omitempty"`
	Data       *Person    `json:"data,omitempty"`
	Error      *ErrorInfo `json:"error,omitempty"`
	Metadata   Metadata   `json:"metadata,omitempty"`
}

// IdentifyPersonResponse is returned by person identify.
type IdentifyPersonResponse struct {
	Status  int           `json:"status"`
	Matches []PersonMatch `json:"matches"`
}

// PersonMatch is one ranked identify candidate.
type PersonMatch struct {
	Data       Person   `json:"data"`
	MatchScore int      `json:"match_score"`
	MatchedOn  []string `json:"matched_on,omitempty"`
}

// RetrievePersonResponse is returned by person retrieve.
type RetrievePersonResponse struct {
	Status int    `json:"status"`
	Data   Person `json:"data"`
	Billed bool   `json:"billed"`
}

// BulkRetrievePersonResponse is one item of a person bulk retrieve response.
type BulkRetrievePersonResponse struct {
	Status   int        `json:"status"`
	Data     *Person    `json:"data,omitempty"`
	Billed   bool       `json:"billed"`
	Error    *ErrorInfo `json:"error,omitempty"`
	Metadata Metadata   `json:"metadata,omitempty"`
}

// SearchPersonResponse is returned by person search.
type SearchPersonResponse struct {
	Status      int        `json:"status"`
	Data        []Person   `json:"data"`
	Total       int        `json:"total"`
	ScrollToken string     `json:"scroll_token,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"`
}
