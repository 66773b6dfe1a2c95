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

func (a *app) personCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Person endpoints",
	}
	cmd.AddCommand(
		a.personEnrichCmd(),
		a.personIdentifyCmd(),
		a.personSearchCmd(),
		a.personRetrieveCmd(),
		a.personBulkRetrieveCmd(),
		a.personBulkEnrichCmd(),
	)
	return cmd
}

func (a *app) personEnrichCmd() *cobra.Command {
	var person pdl.PersonParams
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Resolve one person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &pdl.EnrichPersonParams{Base: a.base(cmd), Person: person, Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.EnrichPersonResponse, error) {
				return c.Person.Enrich(ctx, params)
			})
		},
	}
	bindFields(cmd, personFields(&person))
	extra.bind(cmd)
	return cmd
}

func (a *app) personIdentifyCmd() *cobra.Command {
	var person pdl.PersonParams
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "identify",
		Short: "List ranked candidate matches for a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &pdl.IdentifyPersonParams{Base: a.base(cmd), Person: person, Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.IdentifyPersonResponse, error) {
				return c.Person.Identify(ctx, params)
			})
		},
	}
	bindFields(cmd, personFields(&person))
	extra.bind(cmd)
	return cmd
}

func (a *app) personSearchCmd() *cobra.Command {
	var search searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search person records with --query or --sql",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := search.params(a, cmd)
			if err != nil {
				return err
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.SearchPersonResponse, error) {
				return c.Person.Search(ctx, params)
			})
		},
	}
	search.bind(cmd)
	return cmd
}

func (a *app) personRetrieveCmd() *cobra.Command {
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "retrieve <pdl-id>",
		Short: "Fetch one person by PDL id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &pdl.RetrievePersonParams{Base: a.base(cmd), PersonID: args[0], Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) (*models.RetrievePersonResponse, error) {
				return c.Person.Retrieve(ctx, params)
			})
		},
	}
	extra.bind(cmd)
	return cmd
}

func (a *app) personBulkRetrieveCmd() *cobra.Command {
	var extra additionalFlags
	cmd := &cobra.Command{
		Use:   "bulk-retrieve <pdl-id>...",
		Short: "Fetch up to 100 people by PDL id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests := make([]pdl.BulkRetrieveSinglePersonParams, len(args))
			for i, id := range args {
				requests[i].ID = id
			}
			params := &pdl.BulkRetrievePersonParams{Base: a.base(cmd), Requests: requests, Additional: extra.params(cmd)}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) ([]models.BulkRetrievePersonResponse, error) {
				return c.Person.BulkRetrieve(ctx, params)
			})
		},
	}
	extra.bind(cmd)
	return cmd
}

func (a *app) personBulkEnrichCmd() *cobra.Command {
	var (
		file     string
		requires string
		extra    additionalFlags
	)
	cmd := &cobra.Command{
		Use:   "bulk-enrich",
		Short: "Resolve up to 100 people from a JSON file",
		Long: `Resolve up to 100 people in one request. The input is a JSON array of
{"params": {...}, "metadata": {...}} objects, where params uses the API
parameter names, e.g. {"params": {"email": ["a@example.com"]}}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := readBulk(a.stdin, file)
			if err != nil {
				return err
			}
			requests, err := bulkPersonRequests(items)
			if err != nil {
				return err
			}
			params := &pdl.BulkEnrichPersonParams{
				Base:       a.base(cmd),
				Requests:   requests,
				Requires:   requires,
				Additional: extra.params(cmd),
			}
			return run(a, cmd, func(ctx context.Context, c *pdl.PDL) ([]models.BulkEnrichPersonResponse, error) {
				return c.Person.BulkEnrich(ctx, params)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON input file, - for stdin")
	cmd.Flags().StringVar(&requires, "requires", "", "condition every match must satisfy")
	extra.bind(cmd)
	return cmd
}
