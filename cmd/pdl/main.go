// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

// Package main is the pdl command line client.
//
// pdl loads its configuration the same way as peopledatalabs.NewFromEnv
// (defaults, then an optional YAML file, then environment variables), calls one
// endpoint and prints the JSON response on stdout.
//
// # Configuration
//
//   - PDL_API_KEY: API key (required)
//   - PDL_SANDBOX: use the sandbox API
//   - PDL_TIMEOUT: per-request timeout, e.g. 10s
//   - PDL_CONFIG_PATH: YAML config file
//   - LOG_LEVEL, LOG_FORMAT: logging, written to stderr
//
// # Examples
//
//	pdl person enrich --profile linkedin.com/in/seanthorne
//	pdl person search --sql "SELECT * FROM person WHERE job_company_name='people data labs'" --size 10
//	pdl person bulk-enrich --file people.json
//	pdl company clean --website peopledatalabs.com
//	pdl location "New York, NY"
//	pdl ip 72.212.42.169 --return-person
//
// On failure pdl prints the error kind and message on stderr and exits with
// status 1.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pdl: %s error: %v\n", errorKind(err), err)
		os.Exit(1)
	}
}
