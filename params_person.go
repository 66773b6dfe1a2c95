// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"net/url"

	"github.com/tomtom215/peopledatalabs/models"
)

// PersonParams identifies a person. Multi-valued fields are sent as one
// comma-joined value that the service reads as alternatives.
type PersonParams struct {
	PDLID         []string
	Name          []string
	FirstName     []string
	LastName      []string
	MiddleName    []string
	Location      []string
	StreetAddress string
	Locality      string
	Region        string
	Country       string
	PostalCode    []string
	Company       []string
	School        []string
	Phone         []string
	Email         []string
	EmailHash     []string
	Profile       []string
	LID           []string
	BirthDate     []string
}

func (p *PersonParams) appendTo(f *fieldSet) {
	f.addList("pdl_id", p.PDLID)
	f.addList("name", p.Name)
	f.addList("first_name", p.FirstName)
	f.addList("last_name", p.LastName)
	f.addList("middle_name", p.MiddleName)
	f.addList("location", p.Location)
	f.addString("street_address", p.StreetAddress)
	f.addString("locality", p.Locality)
	f.addString("region", p.Region)
	f.addString("country", p.Country)
	f.addList("postal_code", p.PostalCode)
	f.addList("company", p.Company)
	f.addList("school", p.School)
	f.addList("phone", p.Phone)
	f.addList("email", p.Email)
	f.addList("email_hash", p.EmailHash)
	f.addList("profile", p.Profile)
	f.addList("lid", p.LID)
	f.addList("birth_date", p.BirthDate)
}

func (p *PersonParams) fields() *fieldSet {
	f := newFieldSet()
	p.appendTo(f)
	return f
}

// EnrichPersonParams is a person enrich request.
type EnrichPersonParams struct {
	Base       *BaseParams
	Person     PersonParams
	Additional *AdditionalParams
}

func (p *EnrichPersonParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	p.Person.appendTo(f)
	p.Additional.appendTo(f)
	return f
}

// Validate checks p with DefaultPersonRule.
func (p *EnrichPersonParams) Validate() error {
	return p.validate(DefaultPersonRule)
}

func (p *EnrichPersonParams) validate(rule PersonRule) error {
	if err := checkTags(opPersonEnrich, p); err != nil {
		return err
	}
	if ve := applyPersonRule(opPersonEnrich, rule, &p.Person); ve != nil {
		return ve
	}
	return nil
}

// IdentifyPersonParams is a person identify request.
type IdentifyPersonParams struct {
	Base       *BaseParams
	Person     PersonParams
	Additional *AdditionalParams
}

func (p *IdentifyPersonParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	p.Person.appendTo(f)
	p.Additional.appendTo(f)
	return f
}

// Validate checks p with DefaultPersonRule.
func (p *IdentifyPersonParams) Validate() error {
	return p.validate(DefaultPersonRule)
}

func (p *IdentifyPersonParams) validate(rule PersonRule) error {
	if err := checkTags(opPersonIdentify, p); err != nil {
		return err
	}
	if ve := applyPersonRule(opPersonIdentify, rule, &p.Person); ve != nil {
		return ve
	}
	return nil
}

// BulkEnrichSinglePersonParams is one item of a bulk enrich request.
type BulkEnrichSinglePersonParams struct {
	Params   PersonParams
	Metadata models.Metadata
}

// BulkEnrichPersonParams is a person bulk enrich request of 1 to 100 items.
type BulkEnrichPersonParams struct {
	Base     *BaseParams
	Requests []BulkEnrichSinglePersonParams `param:"requests" validate:"min=1,max=100"`
	// Requires is a condition every match must satisfy, applied to all items.
	Requires   string
	Additional *AdditionalParams
}

// Validate checks the envelope bounds and every item with DefaultPersonRule.
func (p *BulkEnrichPersonParams) Validate() error {
	return p.validate(DefaultPersonRule)
}

func (p *BulkEnrichPersonParams) validate(rule PersonRule) error {
	if err := checkTags(opPersonBulkEnrich, p); err != nil {
		return err
	}
	for i := range p.Requests {
		if ve := applyPersonRule(opPersonBulkEnrich, rule, &p.Requests[i].Params); ve != nil {
			ve.Field = bulkField(i, ve.Field)
			return ve
		}
	}
	return nil
}

// RetrievePersonParams fetches one record by its PDL id.
type RetrievePersonParams struct {
	Base       *BaseParams
	PersonID   string
	Additional *AdditionalParams
}

func (p *RetrievePersonParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	p.Additional.appendTo(f)
	return f
}

// path escapes the id so it cannot change the request path.
func (p *RetrievePersonParams) path() string {
	return pathPersonRetrieve + url.PathEscape(p.PersonID)
}

// Validate reports whether PersonID is set.
func (p *RetrievePersonParams) Validate() error {
	if err := checkTags(opPersonRetrieve, p); err != nil {
		return err
	}
	if p.PersonID == "" {
		return &ValidationError{Op: opPersonRetrieve, Field: "id", Reason: "person id is required"}
	}
	return nil
}

// BulkRetrieveSinglePersonParams is one item of a bulk retrieve request.
type BulkRetrieveSinglePersonParams struct {
	ID       string `param:"id" validate:"required"`
	Metadata models.Metadata
}

// BulkRetrievePersonParams is a person bulk retrieve request of 1 to 100 ids.
type BulkRetrievePersonParams struct {
	Base       *BaseParams
	Requests   []BulkRetrieveSinglePersonParams `param:"requests" validate:"min=1,max=100,dive"`
	Additional *AdditionalParams
}

// Validate checks the envelope bounds and that every id is set.
func (p *BulkRetrievePersonParams) Validate() error {
	return checkTags(opPersonBulkRetrieve, p)
}
