// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

// JobTitleResponse is returned by job title enrich.
type JobTitleResponse struct {
	Status int            `json:"status"`
	Data   JobTitleResult `json:"data"`
}

type JobTitleResult struct {
	CleanedJobTitle  string   `json:"cleaned_job_title"`
	SimilarJobTitles []string `json:"similar_job_titles,omitempty"`
	RelevantSkills   []string `json:"relevant_skills,omitempty"`
}

// SkillResponse is returned by skill enrich.
type SkillResponse struct {
	Status int         `json:"status"`
	Data   SkillResult `json:"data"`
}

type SkillResult struct {
	CleanedSkill      string   `json:"cleaned_skill"`
	SimilarSkills     []string `json:"similar_skills,omitempty"`
	RelevantJobTitles []string `json:"relevant_job_titles,omitempty"`
}

// AutocompleteResponse is returned by autocomplete.
type AutocompleteResponse struct {
	Status int                  `json:"status"`
	Data   []AutocompleteResult `json:"data,omitempty"`
	Fields []string             `json:"fields,omitempty"`
}

type AutocompleteResult struct {
	Name  string            `json:"name,omitempty"`
	Count int               `json:"count,omitempty"`
	Meta  *AutocompleteMeta `json:"meta,omitempty"`
}

type AutocompleteMeta struct {
	ID           string `json:"id,omitempty"`
	Website      string `json:"website,omitempty"`
	LocationName string `json:"location_name,omitempty"`
}
