// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

// SchoolParams identifies a school.
type SchoolParams struct {
	Name    string
	Website string
	Profile string
}

// CleanSchoolParams is a school clean request.
type CleanSchoolParams struct {
	Base       *BaseParams
	School     SchoolParams
	Additional *AdditionalParams
}

func (p *CleanSchoolParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("name", p.School.Name)
	f.addString("website", p.School.Website)
	f.addString("profile", p.School.Profile)
	p.Additional.appendTo(f)
	return f
}

// Validate reports whether at least one of name, website or profile is set.
func (p *CleanSchoolParams) Validate() error {
	if err := checkTags(opSchoolClean, p); err != nil {
		return err
	}
	return required(opSchoolClean, "name, website or profile", p.School.Name, p.School.Website, p.School.Profile)
}

// LocationParams holds a free-text location.
type LocationParams struct {
	Location string
}

// CleanLocationParams is a location clean request.
type CleanLocationParams struct {
	Base       *BaseParams
	Location   LocationParams
	Additional *AdditionalParams
}

func (p *CleanLocationParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("location", p.Location.Location)
	p.Additional.appendTo(f)
	return f
}

func (p *CleanLocationParams) Validate() error {
	if err := checkTags(opLocationClean, p); err != nil {
		return err
	}
	return required(opLocationClean, "location", p.Location.Location)
}

// IPBaseParams selects an address and what to return about it.
type IPBaseParams struct {
	IP                string `param:"ip" validate:"omitempty,ip"`
	ReturnIPLocation  *bool
	ReturnIPMetadata  *bool
	ReturnPerson      *bool
	ReturnIfUnmatched *bool
}

// IPParams is an IP enrich request.
type IPParams struct {
	Base *BaseParams
	IP   IPBaseParams
}

func (p *IPParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("ip", p.IP.IP)
	f.addBool("return_ip_location", p.IP.ReturnIPLocation)
	f.addBool("return_ip_metadata", p.IP.ReturnIPMetadata)
	f.addBool("return_person", p.IP.ReturnPerson)
	f.addBool("return_if_unmatched", p.IP.ReturnIfUnmatched)
	return f
}

// Validate reports whether IP is set to an IPv4 or IPv6 address.
func (p *IPParams) Validate() error {
	if err := required(opIP, "ip", p.IP.IP); err != nil {
		return err
	}
	return checkTags(opIP, p)
}

// JobTitleBaseParams holds the job title to look up.
type JobTitleBaseParams struct {
	JobTitle  string
	Titlecase *bool
}

// JobTitleParams is a job title enrich request.
type JobTitleParams struct {
	Base     *BaseParams
	JobTitle JobTitleBaseParams
}

func (p *JobTitleParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("job_title", p.JobTitle.JobTitle)
	f.addBool("titlecase", p.JobTitle.Titlecase)
	return f
}

func (p *JobTitleParams) Validate() error {
	if err := checkTags(opJobTitle, p); err != nil {
		return err
	}
	return required(opJobTitle, "job_title", p.JobTitle.JobTitle)
}

// SkillBaseParams holds the skill to look up.
type SkillBaseParams struct {
	Skill     string
	Titlecase *bool
}

// SkillParams is a skill enrich request.
type SkillParams struct {
	Base  *BaseParams
	Skill SkillBaseParams
}

func (p *SkillParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("skill", p.Skill.Skill)
	f.addBool("titlecase", p.Skill.Titlecase)
	return f
}

func (p *SkillParams) Validate() error {
	if err := checkTags(opSkill, p); err != nil {
		return err
	}
	return required(opSkill, "skill", p.Skill.Skill)
}

// AutocompleteBaseParams selects the field to complete and the text typed so far.
type AutocompleteBaseParams struct {
	Field     string
	Text      string
	Titlecase *bool
	Beta      *bool
}

// AutocompleteParams is an autocomplete request.
type AutocompleteParams struct {
	Base         *BaseParams
	Autocomplete AutocompleteBaseParams
}

func (p *AutocompleteParams) fields() *fieldSet {
	f := newFieldSet()
	p.Base.appendTo(f)
	f.addString("field", p.Autocomplete.Field)
	f.addString("text", p.Autocomplete.Text)
	f.addBool("titlecase", p.Autocomplete.Titlecase)
	f.addBool("beta", p.Autocomplete.Beta)
	return f
}

func (p *AutocompleteParams) Validate() error {
	if err := checkTags(opAutocomplete, p); err != nil {
		return err
	}
	return required(opAutocomplete, "field", p.Autocomplete.Field)
}
