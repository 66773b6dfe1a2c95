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

func (a *app) companyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Company endpoints",
	}
	cmd.AddCommand(
		a.companyEnrichCmd(),
		a.companySearchCmd(),
		a.companyCleanCmd(),
		a.companyBulkEnrichCmd(),
	)
	return cmd
}

func (a *app) companyEnrichCmd() *cobra.Command {
	var company pdl.CompanyParams
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Resolve one company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &pdl.EnrichCompanyParams{Base: a.base(cmd), Company: company, Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.EnrichCompanyResponse, error) {
				return c.Company.Enrich(ctx, params)
			})
		},
	}
	bindFields(cmd, companyFields(&company))
	extra.bind(cmd)
	return cmd
}

func (a *app) companySearchCmd() *cobra.Command {
	var search searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search company records with --query or --sql",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := search.params(a, cmd)
			if err != nil {
				return err
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.SearchCompanyResponse, error) {
				return c.Company.Search(ctx, params)
			})
		},
	}
	search.bind(cmd)
	return cmd
}

func (a *app) companyCleanCmd() *cobra.Command {
	var name, website, profile string
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Normalize a company name, website or profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &pdl.CleanCompanyParams{Base: a.base(cmd), Name: name, Website: website, Profile: profile}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.CleanCompanyResponse, error) {
				return c.Company.Clean(ctx, params)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "company name")
	cmd.Flags().StringVar(&website, "website", "", "company website")
	cmd.Flags().StringVar(&profile, "profile", "", "company social profile")
	return cmd
}

func (a *app) companyBulkEnrichCmd() *cobra.Command {
	var (
		file  string
		extra additionalFlags
	)
	cmd := &cobra.Command{
		Use:   "bulk-enrich",
		Short: "Resolve up to 100 companies from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := readBulk(a.stdin, file)
			if err != nil {
				return err
			}
			requests, err := bulkCompanyRequests(items)
			if err != nil {
				return err
			}
			params := &pdl.BulkEnrichCompanyParams{Base: a.base(cmd), Requests: requests, Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) ([]models.BulkEnrichCompanyResponse, error) {
				return c.Company.BulkEnrich(ctx, params)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON input file, - for stdin")
	extra.bind(cmd)
	return cmd
}
