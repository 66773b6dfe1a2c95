// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/peopledatalabs/internal/metrics"
	"github.com/tomtom215/peopledatalabs/models"
)

// correlationKey is the metadata key the client adds to every bulk item so
// responses can be paired with their requests. It is removed before results
// are returned.
const correlationKey = "_pdl_correlation_id"

// bulkEnrichItem is the wire form of one enrich item.
type bulkEnrichItem struct {
	Params   *fieldSet       `json:"params"`
	Metadata models.Metadata `json:"metadata,omitempty"`
}

// bulkRetrieveItem is the wire form of one retrieve item.
type bulkRetrieveItem struct {
	ID       string          `json:"id"`
	Metadata models.Metadata `json:"metadata,omitempty"`
}

// correlation tracks the ids assigned to the items of one bulk request.
type correlation struct {
	ids      []string
	original []models.Metadata
}

func newCorrelation(n int) *correlation {
	return &correlation{ids: make([]string, 0, n), original: make([]models.Metadata, 0, n)}
}

// tag returns a copy of md carrying a fresh correlation id.
func (c *correlation) tag(md models.Metadata) models.Metadata {
	id := uuid.NewString()
	c.ids = append(c.ids, id)
	c.original = append(c.original, md)

	tagged := make(models.Metadata, len(md)+1)
	for k, v := range md {
		tagged[k] = v
	}
	tagged[correlationKey] = id
	return tagged
}

// pair orders items to match the requests. Items are placed by their
// correlation id; items without one fill the remaining slots in the order
// received. Each item's metadata is replaced by a copy of the caller's.
func pair[T any](c *correlation, items []T, metadata func(*T) *models.Metadata) ([]T, error) {
	if len(items) != len(c.ids) {
		return nil, fmt.Errorf("got %d response items for %d requests", len(items), len(c.ids))
	}

	index := make(map[string]int, len(c.ids))
	for i, id := range c.ids {
		index[id] = i
	}

	out := make([]T, len(items))
	filled := make([]bool, len(items))
	var unmatched []T
	for _, item := range items {
		md := *metadata(&item)
		if i, ok := index[md[correlationKey]]; ok && !filled[i] {
			out[i] = item
			filled[i] = true
			continue
		}
		unmatched = append(unmatched, item)
	}

	next := 0
	for i := range out {
		if !filled[i] {
			out[i] = unmatched[next]
			next++
		}
		*metadata(&out[i]) = cloneMetadata(c.original[i])
	}
	return out, nil
}

func cloneMetadata(md models.Metadata) models.Metadata {
	if len(md) == 0 {
		return nil
	}
	out := make(models.Metadata, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}

func (p *BulkEnrichPersonParams) payload() (*fieldSet, *correlation) {
	corr := newCorrelation(len(p.Requests))
	items := make([]bulkEnrichItem, len(p.Requests))
	for i := range p.Requests {
		items[i] = bulkEnrichItem{
			Params:   p.Requests[i].Params.fields(),
			Metadata: corr.tag(p.Requests[i].Metadata),
		}
	}

	f := newFieldSet()
	f.set("requests", items)
	f.addString("requires", p.Requires)
	p.Base.appendTo(f)
	p.Additional.appendTo(f)
	return f, corr
}

func (p *BulkRetrievePersonParams) payload() (*fieldSet, *correlation) {
	corr := newCorrelation(len(p.Requests))
	items := make([]bulkRetrieveItem, len(p.Requests))
	for i := range p.Requests {
		items[i] = bulkRetrieveItem{
			ID:       p.Requests[i].ID,
			Metadata: corr.tag(p.Requests[i].Metadata),
		}
	}

	f := newFieldSet()
	f.set("requests", items)
	p.Base.appendTo(f)
	p.Additional.appendTo(f)
	return f, corr
}

func (p *BulkEnrichCompanyParams) payload() (*fieldSet, *correlation) {
	corr := newCorrelation(len(p.Requests))
	items := make([]bulkEnrichItem, len(p.Requests))
	for i := range p.Requests {
		items[i] = bulkEnrichItem{
			Params:   p.Requests[i].Params.fields(),
			Metadata: corr.tag(p.Requests[i].Metadata),
		}
	}

	f := newFieldSet()
	f.set("requests", items)
	p.Base.appendTo(f)
	p.Additional.appendTo(f)
	return f, corr
}

// postBulk sends a bulk payload and pairs the response items with the requests.
func postBulk[T any](ctx context.Context, c *Client, op, path string, payload *fieldSet, corr *correlation, metadata func(*T) *models.Metadata) ([]T, error) {
	metrics.RecordBulkItems(path, len(corr.ids))

	items, err := post[[]T](ctx, c, op, path, payload)
	if err != nil {
		return nil, err
	}
	out, err := pair(corr, *items, metadata)
	if err != nil {
		return nil, c.fail(ctx, path, &DeserializationError{Op: op, Err: err})
	}
	return out, nil
}
