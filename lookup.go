// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"context"

	"github.com/tomtom215/peopledatalabs/models"
)

// IPService calls the IP enrich endpoint.
type IPService struct {
	client *Client
}

// Get describes an IP address.
func (s *IPService) Get(ctx context.Context, params *IPParams) (*models.IPResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathIP, errNilParams(opIP))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathIP, err)
	}
	return get[models.IPResponse](ctx, s.client, opIP, pathIP, params.fields())
}

// JobTitleService calls the job title enrich endpoint.
type JobTitleService struct {
	client *Client
}

// Get normalizes a job title and lists related titles and skills.
func (s *JobTitleService) Get(ctx context.Context, params *JobTitleParams) (*models.JobTitleResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathJobTitle, errNilParams(opJobTitle))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathJobTitle, err)
	}
	return get[models.JobTitleResponse](ctx, s.client, opJobTitle, pathJobTitle, params.fields())
}

// SkillService calls the skill enrich endpoint.
type SkillService struct {
	client *Client
}

// Get normalizes a skill and lists related skills and job titles.
func (s *SkillService) Get(ctx context.Context, params *SkillParams) (*models.SkillResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathSkill, errNilParams(opSkill))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathSkill, err)
	}
	return get[models.SkillResponse](ctx, s.client, opSkill, pathSkill, params.fields())
}

// LocationService calls the location clean endpoint.
type LocationService struct {
	client *Client
}

// Clean normalizes a free-text location.
func (s *LocationService) Clean(ctx context.Context, params *CleanLocationParams) (*models.CleanLocationResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathLocationClean, errNilParams(opLocationClean))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathLocationClean, err)
	}
	return get[models.CleanLocationResponse](ctx, s.client, opLocationClean, pathLocationClean, params.fields())
}

// SchoolService calls the school clean endpoint.
type SchoolService struct {
	client *Client
}

// Clean normalizes a school name, website or profile.
func (s *SchoolService) Clean(ctx context.Context, params *CleanSchoolParams) (*models.CleanSchoolResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathSchoolClean, errNilParams(opSchoolClean))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathSchoolClean, err)
	}
	return get[models.CleanSchoolResponse](ctx, s.client, opSchoolClean, pathSchoolClean, params.fields())
}

// AutocompleteService calls the autocomplete endpoint.
type AutocompleteService struct {
	client *Client
}

// Get suggests values for a search field.
func (s *AutocompleteService) Get(ctx context.Context, params *AutocompleteParams) (*models.AutocompleteResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathAutocomplete, errNilParams(opAutocomplete))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathAutocomplete, err)
	}
	return get[models.AutocompleteResponse](ctx, s.client, opAutocomplete, pathAutocomplete, params.fields())
}

func errNilParams(op string) error {
	return &ValidationError{Op: op, Reason: "params are required"}
}
