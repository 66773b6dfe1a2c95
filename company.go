// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"context"

	"github.com/tomtom215/peopledatalabs/models"
)

// CompanyService calls the company endpoints.
type CompanyService struct {
	client *Client
}

// Enrich resolves one company.
func (s *CompanyService) Enrich(ctx context.Context, params *EnrichCompanyParams) (*models.EnrichCompanyResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathCompanyEnrich, errNilParams(opCompanyEnrich))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathCompanyEnrich, err)
	}
	return get[models.EnrichCompanyResponse](ctx, s.client, opCompanyEnrich, pathCompanyEnrich, params.fields())
}

// BulkEnrich resolves up to 100 companies in one request. Results are in
// request order and carry the metadata supplied with each request.
func (s *CompanyService) BulkEnrich(ctx context.Context, params *BulkEnrichCompanyParams) ([]models.BulkEnrichCompanyResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathCompanyBulkEnrich, errNilParams(opCompanyBulkEnrich))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathCompanyBulkEnrich, err)
	}
	payload, corr := params.payload()
	return postBulk(ctx, s.client, opCompanyBulkEnrich, pathCompanyBulkEnrich, payload, corr,
		func(r *models.BulkEnrichCompanyResponse) *models.Metadata { return &r.Metadata })
}

// Search runs an Elasticsearch or SQL query over company records.
func (s *CompanyService) Search(ctx context.Context, params *SearchParams) (*models.SearchCompanyResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathCompanySearch, errNilParams(opCompanySearch))
	}
	if err := params.validate(opCompanySearch); err != nil {
		return nil, s.client.reject(ctx, pathCompanySearch, err)
	}
	return get[models.SearchCompanyResponse](ctx, s.client, opCompanySearch, pathCompanySearch, params.fields())
}

// Clean normalizes a company name, website or profile.
func (s *CompanyService) Clean(ctx context.Context, params *CleanCompanyParams) (*models.CleanCompanyResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathCompanyClean, errNilParams(opCompanyClean))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathCompanyClean, err)
	}
	return get[models.CleanCompanyResponse](ctx, s.client, opCompanyClean, pathCompanyClean, params.fields())
}
