// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"errors"
	"fmt"
)

// PersonRule decides whether person parameters identify someone well enough
// to be worth sending. It is used by enrich, identify and every item of bulk
// enrich. A non-nil error rejects the request; returning a *ValidationError
// lets the rule name the offending field.
type PersonRule func(p *PersonParams) error

var errWeakPersonIdentity = errors.New(
	"requires pdl_id, lid, profile, email, phone or email_hash, or a name together with locality, region or company")

// DefaultPersonRule accepts a strong identifier (pdl_id, lid, profile, email,
// phone or email_hash), or a name (first and last, or full) backed by a
// present locality, region or company.
func DefaultPersonRule(p *PersonParams) error {
	if len(p.PDLID) > 0 || len(p.LID) > 0 || len(p.Profile) > 0 ||
		len(p.Email) > 0 || len(p.Phone) > 0 || len(p.EmailHash) > 0 {
		return nil
	}

	hasName := (len(p.FirstName) > 0 && len(p.LastName) > 0) || len(p.Name) > 0
	if !hasName {
		return &ValidationError{Field: "name", Reason: errWeakPersonIdentity.Error(), Err: errWeakPersonIdentity}
	}

	if p.Locality != "" || p.Region != "" || len(p.Company) > 0 {
		return nil
	}
	return &ValidationError{Field: "name", Reason: errWeakPersonIdentity.Error(), Err: errWeakPersonIdentity}
}

// LegacyPersonRule reproduces the rule of earlier clients for callers that
// depend on it. It accepts any request without a lid, and treats an absent
// school, location or postal_code as supporting a name match.
//
// TODO: drop once the service confirms which direction the school, location
// and postal_code checks were meant to take.
func LegacyPersonRule(p *PersonParams) error {
	if len(p.Profile) > 0 || len(p.Email) > 0 || len(p.Phone) > 0 || len(p.EmailHash) > 0 {
		return nil
	}
	if len(p.LID) == 0 {
		return nil
	}
	if (len(p.FirstName) > 0 && len(p.LastName) > 0) || len(p.Name) > 0 {
		if p.Locality != "" || p.Region != "" || len(p.Company) > 0 ||
			len(p.School) == 0 || len(p.Location) == 0 || len(p.PostalCode) == 0 {
			return nil
		}
	}
	return &ValidationError{Field: "lid", Reason: "lid alone does not identify a person"}
}

// applyPersonRule runs rule and normalizes its error into a *ValidationError for op.
func applyPersonRule(op string, rule PersonRule, p *PersonParams) *ValidationError {
	if rule == nil {
		rule = DefaultPersonRule
	}
	err := rule(p)
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		out := *ve
		out.Op = op
		return &out
	}
	return &ValidationError{Op: op, Reason: err.Error(), Err: err}
}

// bulkField prefixes field with the position of the failing bulk item.
func bulkField(i int, field string) string {
	if field == "" {
		return fmt.Sprintf("requests[%d]", i)
	}
	return fmt.Sprintf("requests[%d].%s", i, field)
}
