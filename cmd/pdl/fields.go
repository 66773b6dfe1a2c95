// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	pdl "github.com/tomtom215/peopledatalabs"
	"github.com/tomtom215/peopledatalabs/models"
)

// field binds one wire parameter name to a field of a parameter struct.
// Exactly one of list and str is set.
type field struct {
	name string
	list *[]string
	str  *string
}

func personFields(p *pdl.PersonParams) []field {
	return []field{
		{name: "pdl_id", list: &p.PDLID},
		{name: "name", list: &p.Name},
		{name: "first_name", list: &p.FirstName},
		{name: "last_name", list: &p.LastName},
		{name: "middle_name", list: &p.MiddleName},
		{name: "location", list: &p.Location},
		{name: "street_address", str: &p.StreetAddress},
		{name: "locality", str: &p.Locality},
		{name: "region", str: &p.Region},
		{name: "country", str: &p.Country},
		{name: "postal_code", list: &p.PostalCode},
		{name: "company", list: &p.Company},
		{name: "school", list: &p.School},
		{name: "phone", list: &p.Phone},
		{name: "email", list: &p.Email},
		{name: "email_hash", list: &p.EmailHash},
		{name: "profile", list: &p.Profile},
		{name: "lid", list: &p.LID},
		{name: "birth_date", list: &p.BirthDate},
	}
}

func companyFields(p *pdl.CompanyParams) []field {
	return []field{
		{name: "pdl_id", str: &p.PDLID},
		{name: "name", str: &p.Name},
		{name: "website", str: &p.Website},
		{name: "profile", str: &p.Profile},
		{name: "ticker", str: &p.Ticker},
		{name: "location", list: &p.Location},
		{name: "locality", str: &p.Locality},
		{name: "region", str: &p.Region},
		{name: "country", str: &p.Country},
		{name: "street_address", str: &p.StreetAddress},
		{name: "postal_code", str: &p.PostalCode},
	}
}

func flagName(wire string) string {
	return strings.ReplaceAll(wire, "_", "-")
}

// bindFields registers one flag per field. List flags may be repeated and are
// not split on commas, so "New York, NY" stays one value.
func bindFields(cmd *cobra.Command, fields []field) {
	for _, f := range fields {
		if f.list != nil {
			cmd.Flags().StringArrayVar(f.list, flagName(f.name), nil, f.name+" (repeatable)")
		} else {
			cmd.Flags().StringVar(f.str, flagName(f.name), "", f.name)
		}
	}
}

// setField assigns a decoded JSON value, a string or an array of strings, by wire name.
func setField(fields []field, name string, v any) error {
	for _, f := range fields {
		if f.name != name {
			continue
		}
		switch val := v.(type) {
		case string:
			if f.list != nil {
				*f.list = []string{val}
			} else {
				*f.str = val
			}
			return nil
		case []any:
			if f.list == nil {
				return fmt.Errorf("%s takes a single value", name)
			}
			out := make([]string, 0, len(val))
			for _, item := range val {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("%s: values must be strings", name)
				}
				out = append(out, s)
			}
			*f.list = out
			return nil
		default:
			return fmt.Errorf("%s: unsupported value %v", name, v)
		}
	}
	return fmt.Errorf("unknown parameter %q", name)
}

// bulkItem is one entry of a bulk input file.
type bulkItem struct {
	Params   map[string]any  `json:"params"`
	Metadata models.Metadata `json:"metadata,omitempty"`
}

// readBulk decodes a JSON array of bulk items from path, or stdin when path is "-".
func readBulk(stdin io.Reader, path string) ([]bulkItem, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open bulk file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	var items []bulkItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode bulk file: %w", err)
	}
	return items, nil
}

// applyParams sets every key of params in sorted order so errors are stable.
func applyParams(fields []field, params map[string]any) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := setField(fields, k, params[k]); err != nil {
			return err
		}
	}
	return nil
}

func bulkPersonRequests(items []bulkItem) ([]pdl.BulkEnrichSinglePersonParams, error) {
	out := make([]pdl.BulkEnrichSinglePersonParams, len(items))
	for i, item := range items {
		if err := applyParams(personFields(&out[i].Params), item.Params); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i].Metadata = item.Metadata
	}
	return out, nil
}

func bulkCompanyRequests(items []bulkItem) ([]pdl.BulkEnrichSingleCompanyParams, error) {
	out := make([]pdl.BulkEnrichSingleCompanyParams, len(items))
	for i, item := range items {
		if err := applyParams(companyFields(&out[i].Params), item.Params); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i].Metadata = item.Metadata
	}
	return out, nil
}

// additionalFlags holds the flags shared by the enrich style commands.
type additionalFlags struct {
	minLikelihood int
	required      string
	dataInclude   string
}

func (f *additionalFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.minLikelihood, "min-likelihood", 0, "minimum match likelihood (1-10)")
	cmd.Flags().StringVar(&f.required, "required", "", "fields a match must have, e.g. \"emails AND profiles\"")
	cmd.Flags().StringVar(&f.dataInclude, "data-include", "", "comma-separated fields to return")
	cmd.Flags().Bool("titlecase", false, "titlecase the response")
	cmd.Flags().Bool("include-if-matched", false, "report which inputs matched")
}

func (f *additionalFlags) params(cmd *cobra.Command) *pdl.AdditionalParams {
	return &pdl.AdditionalParams{
		MinLikelihood:    f.minLikelihood,
		Required:         f.required,
		DataInclude:      f.dataInclude,
		Titlecase:        optBool(cmd, "titlecase"),
		IncludeIfMatched: optBool(cmd, "include-if-matched"),
	}
}

// searchFlags holds the flags of the search commands.
type searchFlags struct {
	query       string
	sql         string
	from        int
	scrollToken string
	dataset     string
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.query, "query", "", "Elasticsearch query as JSON")
	cmd.Flags().StringVar(&f.sql, "sql", "", "SQL query")
	cmd.Flags().IntVar(&f.from, "from", 0, "offset of the first record")
	cmd.Flags().StringVar(&f.scrollToken, "scroll-token", "", "scroll token from a previous page")
	cmd.Flags().StringVar(&f.dataset, "dataset", "", "dataset to search")
	cmd.Flags().Bool("titlecase", false, "titlecase the response")
}

func (f *searchFlags) params(a *app, cmd *cobra.Command) (*pdl.SearchParams, error) {
	p := &pdl.SearchParams{
		Base: a.base(cmd),
		Search: pdl.SearchBaseParams{
			SQL:         f.sql,
			From:        f.from,
			ScrollToken: f.scrollToken,
			Dataset:     f.dataset,
			Titlecase:   optBool(cmd, "titlecase"),
		},
	}
	if f.query != "" {
		if !json.Valid([]byte(f.query)) {
			return nil, fmt.Errorf("--query is not valid JSON")
		}
		p.Search.Query = json.RawMessage(f.query)
	}
	return p, nil
}
