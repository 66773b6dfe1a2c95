// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/peopledatalabs/internal/fakepdl"
	"github.com/tomtom215/peopledatalabs/models"
)

type wireBulkRequest struct {
	Requests []struct {
		Params   map[string]any    `json:"params"`
		ID       string            `json:"id"`
		Metadata map[string]string `json:"metadata"`
	} `json:"requests"`
}

// reverseEcho answers a bulk request with one item per request in reverse
// order, echoing each metadata and putting the first param value in full_name.
func reverseEcho(t *testing.T) fakepdl.HandlerFunc {
	return func(req fakepdl.Request) (int, any) {
		var in wireBulkRequest
		if err := json.Unmarshal(req.Body, &in); err != nil {
			t.Errorf("decode bulk body: %v", err)
			return http.StatusBadRequest, nil
		}
		out := make([]map[string]any, 0, len(in.Requests))
		for i := len(in.Requests) - 1; i >= 0; i-- {
			r := in.Requests[i]
			name := r.ID
			for _, v := range r.Params {
				name, _ = v.(string)
			}
			out = append(out, map[string]any{
				"status":   200,
				"data":     map[string]string{"full_name": name},
				"metadata": r.Metadata,
			})
		}
		return http.StatusOK, out
	}
}

func TestPersonBulkEnrich_OrderAndMetadata(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.HandleFunc(http.MethodPost, "/person/bulk", reverseEcho(t))

	params := &BulkEnrichPersonParams{Requests: []BulkEnrichSinglePersonParams{
		{Params: PersonParams{Email: []string{"first@example.com"}}, Metadata: models.Metadata{"row": "1"}},
		{Params: PersonParams{Email: []string{"second@example.com"}}},
		{Params: PersonParams{Email: []string{"third@example.com"}}, Metadata: models.Metadata{"row": "3", "src": "crm"}},
	}}

	resp, err := pdl.Person.BulkEnrich(context.Background(), params)
	if err != nil {
		t.Fatalf("BulkEnrich() error = %v", err)
	}

	gotNames := make([]string, len(resp))
	gotMeta := make([]models.Metadata, len(resp))
	for i, r := range resp {
		gotNames[i] = r.Data.FullName
		gotMeta[i] = r.Metadata
	}
	wantNames := []string{"first@example.com", "second@example.com", "third@example.com"}
	if diff := cmp.Diff(wantNames, gotNames); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	wantMeta := []models.Metadata{{"row": "1"}, nil, {"row": "3", "src": "crm"}}
	if diff := cmp.Diff(wantMeta, gotMeta); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}

	// The caller's metadata is not modified.
	if _, ok := params.Requests[0].Metadata[correlationKey]; ok {
		t.Error("correlation key leaked into caller metadata")
	}
	if params.Requests[1].Metadata != nil {
		t.Errorf("caller metadata = %v, want nil", params.Requests[1].Metadata)
	}
}

func TestPersonBulkEnrich_Body(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.HandleFunc(http.MethodPost, "/person/bulk", reverseEcho(t))

	_, err := pdl.Person.BulkEnrich(context.Background(), &BulkEnrichPersonParams{
		Base:     &BaseParams{Pretty: Bool(true)},
		Requires: "emails AND profiles",
		Requests: []BulkEnrichSinglePersonParams{
			{Params: PersonParams{Profile: []string{"linkedin.com/in/a", "twitter.com/a"}}},
		},
	})
	if err != nil {
		t.Fatalf("BulkEnrich() error = %v", err)
	}

	req, _ := srv.LastRequest()
	if req.Method != http.MethodPost || req.Path != "/v5/person/bulk" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := string(req.Body)
	if !strings.HasPrefix(body, `{"requests":[{"params":{"profile":"linkedin.com/in/a, twitter.com/a"},"metadata":{"`+correlationKey+`":"`) {
		t.Errorf("body = %s", body)
	}
	requestsAt, requiresAt, prettyAt := strings.Index(body, `"requests"`), strings.Index(body, `"requires":"emails AND profiles"`), strings.Index(body, `"pretty":true`)
	if requestsAt < 0 || requiresAt < requestsAt || prettyAt < requiresAt {
		t.Errorf("unexpected field order in %s", body)
	}
	if req.RawQuery != "" {
		t.Errorf("bulk request carries query %q", req.RawQuery)
	}
}

func TestPersonBulkRetrieve(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.HandleFunc(http.MethodPost, "/person/retrieve/bulk", reverseEcho(t))

	resp, err := pdl.Person.BulkRetrieve(context.Background(), &BulkRetrievePersonParams{
		Requests: []BulkRetrieveSinglePersonParams{
			{ID: "id-a", Metadata: models.Metadata{"n": "a"}},
			{ID: "id-b"},
		},
	})
	if err != nil {
		t.Fatalf("BulkRetrieve() error = %v", err)
	}
	if len(resp) != 2 || resp[0].Data.FullName != "id-a" || resp[1].Data.FullName != "id-b" {
		t.Fatalf("BulkRetrieve() = %+v", resp)
	}
	if diff := cmp.Diff(models.Metadata{"n": "a"}, resp[0].Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
	if resp[1].Metadata != nil {
		t.Errorf("metadata = %v, want nil", resp[1].Metadata)
	}
}

func TestCompanyBulkEnrich(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.HandleFunc(http.MethodPost, "/company/enrich/bulk", func(req fakepdl.Request) (int, any) {
		var in wireBulkRequest
		if err := json.Unmarshal(req.Body, &in); err != nil {
			return http.StatusBadRequest, nil
		}
		out := make([]map[string]any, 0, len(in.Requests))
		for i := len(in.Requests) - 1; i >= 0; i-- {
			r := in.Requests[i]
			out = append(out, map[string]any{"status": 200, "name": r.Params["name"], "metadata": r.Metadata})
		}
		return http.StatusOK, out
	})

	resp, err := pdl.Company.BulkEnrich(context.Background(), &BulkEnrichCompanyParams{
		Requests: []BulkEnrichSingleCompanyParams{
			{Params: CompanyParams{Name: "walmart"}},
			{Params: CompanyParams{Name: "google"}},
		},
	})
	if err != nil {
		t.Fatalf("BulkEnrich() error = %v", err)
	}
	if len(resp) != 2 || resp[0].Name != "walmart" || resp[1].Name != "google" {
		t.Errorf("BulkEnrich() = %+v", resp)
	}
}

func TestBulk_UnmatchedItemIsNotAnError(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.HandleFunc(http.MethodPost, "/person/bulk", func(req fakepdl.Request) (int, any) {
		var in wireBulkRequest
		_ = json.Unmarshal(req.Body, &in)
		return http.StatusOK, []map[string]any{
			{"status": 200, "data": map[string]string{"full_name": "found"}, "metadata": in.Requests[0].Metadata},
			{"status": 404, "error": map[string]string{"type": "not_found", "message": "No records"}, "metadata": in.Requests[1].Metadata},
		}
	})

	resp, err := pdl.Person.BulkEnrich(context.Background(), &BulkEnrichPersonParams{Requests: enrichRequests(2)})
	if err != nil {
		t.Fatalf("BulkEnrich() error = %v", err)
	}
	if resp[1].Status != 404 || resp[1].Error == nil || resp[1].Data != nil {
		t.Errorf("second item = %+v", resp[1])
	}
}

func TestBulk_CountMismatch(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.Handle(http.MethodPost, "/person/bulk", http.StatusOK, `[{"status":200}]`)

	_, err := pdl.Person.BulkEnrich(context.Background(), &BulkEnrichPersonParams{Requests: enrichRequests(2)})
	if !errors.Is(err, ErrDeserialization) {
		t.Errorf("error = %v, want ErrDeserialization", err)
	}
}

func TestBulk_InvalidRequestSendsNothing(t *testing.T) {
	pdl, srv := newTestPDL(t)
	srv.HandleFunc(http.MethodPost, "/person/bulk", reverseEcho(t))

	_, err := pdl.Person.BulkEnrich(context.Background(), &BulkEnrichPersonParams{Requests: enrichRequests(101)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if srv.Calls() != 0 {
		t.Errorf("server saw %d calls, want 0", srv.Calls())
	}
}

func TestPair_PositionFallback(t *testing.T) {
	corr := newCorrelation(3)
	corr.tag(models.Metadata{"k": "a"})
	corr.tag(nil)
	bID := corr.ids[1]
	corr.tag(models.Metadata{"k": "c"})

	// Only the middle item kept its correlation id; the others are placed by position.
	items := []models.BulkRetrievePersonResponse{
		{Status: 1},
		{Status: 2, Metadata: models.Metadata{correlationKey: bID}},
		{Status: 3},
	}
	swapped := []models.BulkRetrievePersonResponse{items[1], items[0], items[2]}

	out, err := pair(corr, swapped, func(r *models.BulkRetrievePersonResponse) *models.Metadata { return &r.Metadata })
	if err != nil {
		t.Fatalf("pair() error = %v", err)
	}

	want := []models.BulkRetrievePersonResponse{
		{Status: 1, Metadata: models.Metadata{"k": "a"}},
		{Status: 2},
		{Status: 3, Metadata: models.Metadata{"k": "c"}},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("pair() mismatch (-want +got):\n%s", diff)
	}
}

func TestPair_CountMismatch(t *testing.T) {
	corr := newCorrelation(2)
	corr.tag(nil)
	corr.tag(nil)

	_, err := pair(corr, []models.BulkRetrievePersonResponse{{}}, func(r *models.BulkRetrievePersonResponse) *models.Metadata { return &r.Metadata })
	if err == nil {
		t.Error("pair() = nil error, want count mismatch")
	}
}

func TestCorrelation_TagDoesNotMutate(t *testing.T) {
	md := models.Metadata{"a": "1"}
	corr := newCorrelation(1)
	tagged := corr.tag(md)

	if len(md) != 1 {
		t.Errorf("caller metadata modified: %v", md)
	}
	if tagged[correlationKey] != corr.ids[0] || tagged["a"] != "1" {
		t.Errorf("tagged = %v", tagged)
	}
}
