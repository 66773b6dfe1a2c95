// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"context"

	"github.com/tomtom215/peopledatalabs/models"
)

// PersonService calls the person endpoints.
type PersonService struct {
	client *Client
}

// Enrich resolves one person.
func (s *PersonService) Enrich(ctx context.Context, params *EnrichPersonParams) (*models.EnrichPersonResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathPersonEnrich, errNilParams(opPersonEnrich))
	}
	if err := params.validate(s.client.personRule); err != nil {
		return nil, s.client.reject(ctx, pathPersonEnrich, err)
	}
	return get[models.EnrichPersonResponse](ctx, s.client, opPersonEnrich, pathPersonEnrich, params.fields())
}

// BulkEnrich resolves up to 100 people in one request. Results are in request
// order and carry the metadata supplied with each request. Items the service
// could not match are reported through their Status and Error, not as an error.
func (s *PersonService) BulkEnrich(ctx context.Context, params *BulkEnrichPersonParams) ([]models.BulkEnrichPersonResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathPersonBulkEnrich, errNilParams(opPersonBulkEnrich))
	}
	if err := params.validate(s.client.personRule); err != nil {
		return nil, s.client.reject(ctx, pathPersonBulkEnrich, err)
	}
	payload, corr := params.payload()
	return postBulk(ctx, s.client, opPersonBulkEnrich, pathPersonBulkEnrich, payload, corr,
		func(r *models.BulkEnrichPersonResponse) *models.Metadata { return &r.Metadata })
}

// Identify returns ranked candidate matches.
func (s *PersonService) Identify(ctx context.Context, params *IdentifyPersonParams) (*models.IdentifyPersonResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathPersonIdentify, errNilParams(opPersonIdentify))
	}
	if err := params.validate(s.client.personRule); err != nil {
		return nil, s.client.reject(ctx, pathPersonIdentify, err)
	}
	return get[models.IdentifyPersonResponse](ctx, s.client, opPersonIdentify, pathPersonIdentify, params.fields())
}

// Search runs an Elasticsearch or SQL query over person records.
func (s *PersonService) Search(ctx context.Context, params *SearchParams) (*models.SearchPersonResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathPersonSearch, errNilParams(opPersonSearch))
	}
	if err := params.validate(opPersonSearch); err != nil {
		return nil, s.client.reject(ctx, pathPersonSearch, err)
	}
	return get[models.SearchPersonResponse](ctx, s.client, opPersonSearch, pathPersonSearch, params.fields())
}

// Retrieve fetches one person by PDL id.
func (s *PersonService) Retrieve(ctx context.Context, params *RetrievePersonParams) (*models.RetrievePersonResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, endpointPersonRetrieve, errNilParams(opPersonRetrieve))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, endpointPersonRetrieve, err)
	}
	return getPath[models.RetrievePersonResponse](ctx, s.client, opPersonRetrieve, endpointPersonRetrieve, params.path(), params.fields())
}

// BulkRetrieve fetches up to 100 people by PDL id. Results are in request
// order and carry the metadata supplied with each request.
func (s *PersonService) BulkRetrieve(ctx context.Context, params *BulkRetrievePersonParams) ([]models.BulkRetrievePersonResponse, error) {
	if params == nil {
		return nil, s.client.reject(ctx, pathPersonBulkRetrieve, errNilParams(opPersonBulkRetrieve))
	}
	if err := params.Validate(); err != nil {
		return nil, s.client.reject(ctx, pathPersonBulkRetrieve, err)
	}
	payload, corr := params.payload()
	return postBulk(ctx, s.client, opPersonBulkRetrieve, pathPersonBulkRetrieve, payload, corr,
		func(r *models.BulkRetrievePersonResponse) *models.Metadata { return &r.Metadata })
}
