// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package main

import (
	"context"

	"github.com/spf13/cobra"

	pdl "github.com/tomtom215/peopledatalabs"
	"github.com/tomtom215/peopledatalabs/models"
)

func (a *app) ipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip <address>",
		Short: "Describe an IP address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &pdl.IPParams{
				Base: a.base(cmd),
				IP: pdl.IPBaseParams{
					IP:                args[0],
					ReturnIPLocation:  optBool(cmd, "return-ip-location"),
					ReturnIPMetadata:  optBool(cmd, "return-ip-metadata"),
					ReturnPerson:      optBool(cmd, "return-person"),
					ReturnIfUnmatched: optBool(cmd, "return-if-unmatched"),
				},
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.IPResponse, error) {
				return c.IP.Get(ctx, params)
			})
		},
	}
	cmd.Flags().Bool("return-ip-location", false, "include the IP location")
	cmd.Flags().Bool("return-ip-metadata", false, "include IP metadata")
	cmd.Flags().Bool("return-person", false, "include the likely person")
	cmd.Flags().Bool("return-if-unmatched", false, "return a 200 even without a company match")
	return cmd
}

func (a *app) jobTitleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job-title <title>",
		Short: "Normalize a job title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &pdl.JobTitleParams{
				Base:     a.base(cmd),
				JobTitle: pdl.JobTitleBaseParams{JobTitle: args[0], Titlecase: optBool(cmd, "titlecase")},
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.JobTitleResponse, error) {
				return c.JobTitle.Get(ctx, params)
			})
		},
	}
	cmd.Flags().Bool("titlecase", false, "titlecase the response")
	return cmd
}

func (a *app) skillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill <skill>",
		Short: "Normalize a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &pdl.SkillParams{
				Base:  a.base(cmd),
				Skill: pdl.SkillBaseParams{Skill: args[0], Titlecase: optBool(cmd, "titlecase")},
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.SkillResponse, error) {
				return c.Skill.Get(ctx, params)
			})
		},
	}
	cmd.Flags().Bool("titlecase", false, "titlecase the response")
	return cmd
}

func (a *app) locationCmd() *cobra.Command {
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "location <text>",
		Short: "Normalize a free-text location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &pdl.CleanLocationParams{
				Base:       a.base(cmd),
				Location:   pdl.LocationParams{Location: args[0]},
				Additional: extra.params(cmd),
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.CleanLocationResponse, error) {
				return c.Location.Clean(ctx, params)
			})
		},
	}
	extra.bind(cmd)
	return cmd
}

func (a *app) schoolCmd() *cobra.Command {
	var school pdl.SchoolParams
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "school",
		Short: "Normalize a school name, website or profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &pdl.CleanSchoolParams{Base: a.base(cmd), School: school, Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.CleanSchoolResponse, error) {
				return c.School.Clean(ctx, params)
			})
		},
	}
	cmd.Flags().StringVar(&school.Name, "name", "", "school name")
	cmd.Flags().StringVar(&school.Website, "website", "", "school website")
	cmd.Flags().StringVar(&school.Profile, "profile", "", "school social profile")
	extra.bind(cmd)
	return cmd
}

func (a *app) autocompleteCmd() *cobra.Command {
	var field, text string
	cmd := &cobra.Command{
		Use:   "autocomplete",
		Short: "Suggest values for a search field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &pdl.AutocompleteParams{
				Base: a.base(cmd),
				Autocomplete: pdl.AutocompleteBaseParams{
					Field:     field,
					Text:      text,
					Titlecase: optBool(cmd, "titlecase"),
					Beta:      optBool(cmd, "beta"),
				},
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.AutocompleteResponse, error) {
				return c.Autocomplete.Get(ctx, params)
			})
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "field to complete, e.g. company, skill, title")
	cmd.Flags().StringVar(&text, "text", "", "text to complete")
	cmd.Flags().Bool("titlecase", false, "titlecase the response")
	cmd.Flags().Bool("beta", false, "use the beta index")
	return cmd
}
