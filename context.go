// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/peopledatalabs/internal/logging"
)

// ContextWithRequestID returns a copy of ctx carrying id. Calls made with the
// returned context send id as X-Request-Id and tag their log lines with it.
// Without one, each call generates its own id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return logging.ContextWithRequestID(ctx, id)
}

// RequestIDFromContext returns the id set by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}

// ContextWithLogger returns a copy of ctx carrying l. Calls made with the
// returned context log through l instead of the client's logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, l)
}
