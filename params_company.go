// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import "github.com/tomtom215/peopledatalabs/models"

// CompanyParams identifies a company.
type CompanyParams struct {
	PDLID         string
	Name          string
	Website       string
	Profile       string
	Ticker        string
	Location      []string
	Locality      string
	Region        string
	Country       string
	StreetAddress string
	PostalCode    string
}

func (p *CompanyParams) appendTo(f *fieldSet) {
	f.addString("pdl_id", p.PDLID)
	f.addString("name", p.Name)
	f.addString("website", p.Website)
	f.addString("profile", p.Profile)
	f.addString("ticker", p.Ticker)
	f.addList("location", p.Location)
	f.addString("locality", p.Locality)
	f.addString("region", p.Region)
	f.addString("country", p.Country)
	f.addString("street_address", p.StreetAddress)
	f.addString("postal_code", p.PostalCode)
}

func (p *CompanyParams) fields() *fieldSet {
	f := newFieldSet()
	p.appendTo(f)
	return f
}

func (p *CompanyParams) validate(op string) error {
	return required(op, "pdl_id, name, ticker, website or profile",
		p.PDLID, p.Name, p.Ticker, p.Website, p.Profile)
}

// EnrichCompanyParams is a company enrich request.
type EnrichCompanyParams struct {
	Base       *BaseParams
	Company    CompanyParams
	Additional *AdditionalParams
}

func (p *EnrichCompanyParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	p.Company.appendTo(f)
	p.Additional.appendTo(f)
	return f
}

// Validate reports whether at least one of pdl_id, name, ticker, website or profile is set.
func (p *EnrichCompanyParams) Validate() error {
	if err := checkTags(opCompanyEnrich, p); err != nil {
		return err
	}
	return p.Company.validate(opCompanyEnrich)
}

// BulkEnrichSingleCompanyParams is one item of a company bulk enrich request.
type BulkEnrichSingleCompanyParams struct {
	Params   CompanyParams
	Metadata models.Metadata
}

// BulkEnrichCompanyParams is a company bulk enrich request of 1 to 100 items.
type BulkEnrichCompanyParams struct {
	Base       *BaseParams
	Requests   []BulkEnrichSingleCompanyParams `param:"requests" validate:"min=1,max=100"`
	Additional *AdditionalParams
}

// Validate checks the envelope bounds and every item with the enrich rule.
func (p *BulkEnrichCompanyParams) Validate() error {
	if err := checkTags(opCompanyBulkEnrich, p); err != nil {
		return err
	}
	for i := range p.Requests {
		if err := p.Requests[i].Params.validate(opCompanyBulkEnrich); err != nil {
			ve := err.(*ValidationError)
			ve.Field = bulkField(i, ve.Field)
			return ve
		}
	}
	return nil
}

// CleanCompanyParams is a company clean request.
type CleanCompanyParams struct {
	Base    *BaseParams
	Name    string
	Website string
	Profile string
}

func (p *CleanCompanyParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("name", p.Name)
	f.addString("website", p.Website)
	f.addString("profile", p.Profile)
	return f
}

// Validate reports whether at least one of name, website or profile is set.
func (p *CleanCompanyParams) Validate() error {
	if err := checkTags(opCompanyClean, p); err != nil {
		return err
	}
	return required(opCompanyClean, "name, website or profile", p.Name, p.Website, p.Profile)
}
