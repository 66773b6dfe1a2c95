// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

/*
Package peopledatalabs is a client for the People Data Labs REST API.

One operation exists per endpoint. Each validates its parameters locally,
encodes them as a flat query string (GET) or JSON body (POST), sends one
request and decodes the response:

	pdl := peopledatalabs.New(apiKey, peopledatalabs.WithSandbox())

	resp, err := pdl.Location.Clean(ctx, &peopledatalabs.CleanLocationParams{
	    Location: peopledatalabs.LocationParams{Location: "New York, NY"},
	})

Multi-valued person fields such as Email or Name are sent as one comma-joined
value that the service reads as alternatives.

# Errors

Every failure is one of five kinds, matched with errors.Is:

  - ErrValidation: rejected locally, nothing was sent (*ValidationError)
  - ErrSerialization: parameters could not be encoded (*SerializationError)
  - ErrNetwork: transport failure, timeout or open breaker (*NetworkError)
  - ErrHTTP: non-200 status (*HTTPError); 404 also matches ErrNotFound
  - ErrDeserialization: a 200 body of the wrong shape (*DeserializationError)

Nothing is retried.

# Configuration

NewFromEnv reads PDL_API_KEY, PDL_SANDBOX, PDL_TIMEOUT and related variables,
optionally layered over a YAML file. See internal/config for the full list.
*/
package peopledatalabs
