// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"reflect"

	"github.com/goccy/go-json"

	"github.com/tomtom215/peopledatalabs/internal/validation"
)

// BaseParams shapes the output of any request.
type BaseParams struct {
	// Pretty asks for indented JSON.
	Pretty *bool
	// Size is the number of records to return, 1 to 1000. Zero leaves it to the service.
	Size int `param:"size" validate:"omitempty,min=1,max=1000"`
}

func (p *BaseParams) appendTo(f *fieldSet) {
	if p == nil {
		return
	}
	f.addBool("pretty", p.Pretty)
	f.addInt("size", p.Size)
}

// AdditionalParams controls match quality and response shape.
type AdditionalParams struct {
	// MinLikelihood is the minimum likelihood, 1 to 10, a match needs to return a 200.
	MinLikelihood int `param:"min_likelihood" validate:"omitempty,min=1,max=10"`
	// Required lists fields a record must have, e.g. "emails AND profiles".
	Required         string
	Titlecase        *bool
	DataInclude      string
	IncludeIfMatched *bool
}

func (p *AdditionalParams) appendTo(f *fieldSet) {
	if p == nil {
		return
	}
	f.addInt("min_likelihood", p.MinLikelihood)
	f.addString("required", p.Required)
	f.addBool("titlecase", p.Titlecase)
	f.addString("data_include", p.DataInclude)
	f.addBool("include_if_matched", p.IncludeIfMatched)
}

// SearchBaseParams holds a search query. Exactly one of Query and SQL must be set.
type SearchBaseParams struct {
	// Query is an Elasticsearch query. Any value that encodes to a JSON object works:
	// a map, a struct or a json.RawMessage.
	Query any
	// SQL is a query of the form SELECT * FROM person WHERE ...
	SQL         string
	From        int
	ScrollToken string
	Dataset     string
	Titlecase   *bool
}

func (p *SearchBaseParams) hasQuery() bool {
	if p.Query == nil {
		return false
	}
	if raw, ok := p.Query.(json.RawMessage); ok {
		return len(raw) > 0
	}
	v := reflect.ValueOf(p.Query)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return !v.IsNil()
	}
	return true
}

func (p *SearchBaseParams) appendTo(f *fieldSet) {
	if p.hasQuery() {
		f.addAny("query", p.Query)
	}
	f.addString("sql", p.SQL)
	f.addInt("from", p.From)
	f.addString("scroll_token", p.ScrollToken)
	f.addString("dataset", p.Dataset)
	f.addBool("titlecase", p.Titlecase)
}

// SearchParams is a person or company search.
type SearchParams struct {
	Base       *BaseParams
	Search     SearchBaseParams
	Additional *AdditionalParams
}

func (p *SearchParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	p.Search.appendTo(f)
	p.Additional.appendTo(f)
	return f
}

// Validate reports whether exactly one of Query and SQL is set.
func (p *SearchParams) Validate() error {
	return p.validate(opSearch)
}

func (p *SearchParams) validate(op string) error {
	if err := checkTags(op, p); err != nil {
		return err
	}
	hasQuery, hasSQL := p.Search.hasQuery(), p.Search.SQL != ""
	switch {
	case hasQuery && hasSQL:
		return &ValidationError{Op: op, Field: "query", Reason: "query and sql are mutually exclusive"}
	case !hasQuery && !hasSQL:
		return &ValidationError{Op: op, Field: "query", Reason: "one of query or sql is required"}
	}
	return nil
}

// checkTags runs the struct-tag bounds on p and converts the first failure.
func checkTags(op string, p any) error {
	verr := validation.ValidateStruct(p)
	if verr == nil {
		return nil
	}
	ve := &ValidationError{Op: op, Reason: verr.Error(), Err: verr}
	if first := verr.First(); first != nil {
		ve.Field = first.Field()
		ve.Reason = first.Error()
	}
	return ve
}

// required returns a ValidationError when none of values is non-empty.
func required(op, fields string, values ...string) error {
	for _, v := range values {
		if v != "" {
			return nil
		}
	}
	return &ValidationError{Op: op, Field: fields, Reason: "at least one of " + fields + " is required"}
}
