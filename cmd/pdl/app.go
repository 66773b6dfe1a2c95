// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	pdl "github.com/tomtom215/peopledatalabs"
)

// connectFunc builds the API facade. Tests replace it to point at a fake server.
type connectFunc func(opts ...pdl.Option) (*pdl.PDL, error)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	connect connectFunc

	// global flags
	sandbox bool
	timeout time.Duration
	pretty  bool
	size    int
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		connect: pdl.NewFromEnv,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pdl",
		Short:         "Command line client for the People Data Labs API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.BoolVar(&a.sandbox, "sandbox", false, "use the sandbox API")
	pf.DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default from config)")
	pf.BoolVar(&a.pretty, "pretty", false, "ask the API for indented JSON")
	pf.IntVar(&a.size, "size", 0, "number of records to return (1-1000)")

	root.AddCommand(
		a.personCmd(),
		a.companyCmd(),
		a.ipCmd(),
		a.jobTitleCmd(),
		a.skillCmd(),
		a.locationCmd(),
		a.schoolCmd(),
		a.autocompleteCmd(),
	)
	return root
}

// client connects with the global flags applied over the loaded config.
func (a *app) client() (*pdl.PDL, error) {
	var opts []pdl.Option
	if a.sandbox {
		opts = append(opts, pdl.WithSandbox())
	}
	if a.timeout > 0 {
		opts = append(opts, pdl.WithTimeout(a.timeout))
	}
	return a.connect(opts...)
}

func (a *app) base(cmd *cobra.Command) *pdl.BaseParams {
	b := &pdl.BaseParams{Size: a.size}
	if cmd.Flags().Changed("pretty") {
		b.Pretty = pdl.Bool(a.pretty)
	}
	return b
}

// run connects, calls fn and prints its result.
func run[T any](a *app, cmd *cobra.Command, fn func(ctx context.Context, c *pdl.PDL) (T, error)) error {
	c, err := a.client()
	if err != nil {
		return err
	}
	out, err := fn(cmd.Context(), c)
	if err != nil {
		return err
	}
	return a.print(out)
}

func (a *app) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", data)
	return err
}

// optBool returns nil unless the flag was given on the command line.
func optBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return pdl.Bool(v)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, pdl.ErrValidation):
		return "validation"
	case errors.Is(err, pdl.ErrSerialization):
		return "serialization"
	case errors.Is(err, pdl.ErrNetwork):
		return "network"
	case errors.Is(err, pdl.ErrHTTP):
		return "http"
	case errors.Is(err, pdl.ErrDeserialization):
		return "deserialization"
	default:
		return "usage"
	}
}
