// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

// API paths, relative to base URL and version.
const (
	pathAutocomplete       = "/autocomplete"
	pathCompanyEnrich      = "/company/enrich"
	pathCompanyBulkEnrich  = "/company/enrich/bulk"
	pathCompanySearch      = "/company/search"
	pathCompanyClean       = "/company/clean"
	pathIP                 = "/ip/enrich"
	pathJobTitle           = "/job_title/enrich"
	pathLocationClean      = "/location/clean"
	pathPersonEnrich       = "/person/enrich"
	pathPersonBulkEnrich   = "/person/bulk"
	pathPersonIdentify     = "/person/identify"
	pathPersonSearch       = "/person/search"
	pathPersonRetrieve     = "/person/retrieve/"
	pathPersonBulkRetrieve = "/person/retrieve/bulk"
	pathSchoolClean        = "/school/clean"
	pathSkill              = "/skill/enrich"
	endpointPersonRetrieve = pathPersonRetrieve + "{id}"
)

// Operation names used in errors, logs and metrics.
const (
	opAutocomplete       = "autocomplete"
	opCompanyEnrich      = "company.enrich"
	opCompanyBulkEnrich  = "company.bulk_enrich"
	opCompanySearch      = "company.search"
	opCompanyClean       = "company.clean"
	opIP                 = "ip.enrich"
	opJobTitle           = "job_title.enrich"
	opLocationClean      = "location.clean"
	opPersonEnrich       = "person.enrich"
	opPersonBulkEnrich   = "person.bulk_enrich"
	opPersonIdentify     = "person.identify"
	opPersonSearch       = "person.search"
	opPersonRetrieve     = "person.retrieve"
	opPersonBulkRetrieve = "person.bulk_retrieve"
	opSchoolClean        = "school.clean"
	opSkill              = "skill.enrich"
	opSearch             = "search"
)
