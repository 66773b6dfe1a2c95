// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package main

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	pdl "github.com/tomtom215/peopledatalabs"
	"github.com/tomtom215/peopledatalabs/internal/fakepdl"
)

type result struct {
	stdout string
	err    error
}

// execute runs the CLI against srv with args and stdin.
func execute(t *testing.T, srv *fakepdl.Server, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(strings.NewReader(stdin), &out, &errOut)
	a.connect = func(opts ...pdl.Option) (*pdl.PDL, error) {
		base := []pdl.Option{pdl.WithBaseURL(srv.URL), pdl.WithLogger(zerolog.Nop())}
		return pdl.New("test-key", append(base, opts...)...), nil
	}
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.Execute()
	return result{stdout: out.String(), err: err}
}

func newServer(t *testing.T) *fakepdl.Server {
	t.Helper()
	srv := fakepdl.New()
	t.Cleanup(srv.Close)
	return srv
}

func TestLocationCommand(t *testing.T) {
	srv := newServer(t)
	srv.Handle(http.MethodGet, "/location/clean", http.StatusOK, `{"status":200,"name":"new york, new york, united states"}`)

	res := execute(t, srv, "", "location", "New York, NY")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if got["name"] != "new york, new york, united states" {
		t.Errorf("stdout = %s", res.stdout)
	}
	req, _ := srv.LastRequest()
	if req.RawQuery != "location=New+York%2C+NY" {
		t.Errorf("RawQuery = %q", req.RawQuery)
	}
}

func TestPersonEnrichCommand_Flags(t *testing.T) {
	srv := newServer(t)
	srv.Handle(http.MethodGet, "/person/enrich", http.StatusOK, `{"status":200,"likelihood":9,"data":{"full_name":"sean thorne"}}`)

	res := execute(t, srv, "", "person", "enrich",
		"--email", "a@example.com", "--email", "b@example.com",
		"--location", "San Francisco, CA",
		"--pretty", "--min-likelihood", "5", "--titlecase")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}

	req, _ := srv.LastRequest()
	want := map[string]string{
		"email":          "a@example.com, b@example.com",
		"location":       "San Francisco, CA",
		"pretty":         "true",
		"min_likelihood": "5",
		"titlecase":      "true",
	}
	got := make(map[string]string, len(req.Query))
	for k := range req.Query {
		got[k] = req.Query.Get(k)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestPersonEnrichCommand_ValidationError(t *testing.T) {
	srv := newServer(t)

	res := execute(t, srv, "", "person", "enrich", "--name", "sean thorne")
	if !errors.Is(res.err, pdl.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", res.err)
	}
	if errorKind(res.err) != "validation" {
		t.Errorf("errorKind() = %q", errorKind(res.err))
	}
	if srv.Calls() != 0 {
		t.Errorf("server saw %d calls, want 0", srv.Calls())
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}

func TestHTTPErrorKind(t *testing.T) {
	srv := newServer(t)
	srv.Handle(http.MethodGet, "/person/retrieve/{id}", http.StatusNotFound,
		`{"status":404,"error":{"type":"not_found","message":"No records"}}`)

	res := execute(t, srv, "", "person", "retrieve", "abc")
	if errorKind(res.err) != "http" || pdl.StatusCode(res.err) != 404 {
		t.Errorf("error = %v, want http 404", res.err)
	}
}

func TestPersonBulkEnrichCommand_Stdin(t *testing.T) {
	srv := newServer(t)
	srv.HandleFunc(http.MethodPost, "/person/bulk", func(req fakepdl.Request) (int, any) {
		var in struct {
			Requests []struct {
				Params   map[string]string `json:"params"`
				Metadata map[string]string `json:"metadata"`
			} `json:"requests"`
			Requires string `json:"requires"`
		}
		if err := json.Unmarshal(req.Body, &in); err != nil {
			return http.StatusBadRequest, nil
		}
		out := make([]map[string]any, len(in.Requests))
		for i, r := range in.Requests {
			out[i] = map[string]any{
				"status":   200,
				"data":     map[string]string{"full_name": r.Params["email"] + "|" + in.Requires},
				"metadata": r.Metadata,
			}
		}
		return http.StatusOK, out
	})

	input := `[
		{"params": {"email": ["a@example.com"]}, "metadata": {"row": "1"}},
		{"params": {"email": "b@example.com", "locality": "austin"}}
	]`
	res := execute(t, srv, input, "person", "bulk-enrich", "--requires", "emails")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}

	type person struct {
		FullName string `json:"full_name"`
	}
	var got []struct {
		Data     person            `json:"data"`
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(got) != 2 || got[0].Data.FullName != "a@example.com|emails" || got[1].Data.FullName != "b@example.com|emails" {
		t.Errorf("stdout = %s", res.stdout)
	}
	if diff := cmp.Diff(map[string]string{"row": "1"}, got[0].Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
	if got[1].Metadata != nil {
		t.Errorf("metadata = %v, want none", got[1].Metadata)
	}
}

func TestCompanyBulkEnrichCommand_File(t *testing.T) {
	srv := newServer(t)
	srv.Handle(http.MethodPost, "/company/enrich/bulk", http.StatusOK, `[{"status":200,"name":"walmart"}]`)

	path := filepath.Join(t.TempDir(), "companies.json")
	if err := os.WriteFile(path, []byte(`[{"params":{"name":"walmart"}}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	res := execute(t, srv, "", "company", "bulk-enrich", "--file", path)
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}
	if !strings.Contains(res.stdout, `"walmart"`) {
		t.Errorf("stdout = %s", res.stdout)
	}
}

func TestBulkInputErrors(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not json", `{`, "decode bulk file"},
		{"unknown parameter", `[{"params":{"nickname":"x"}}]`, `unknown parameter "nickname"`},
		{"number value", `[{"params":{"email":5}}]`, "unsupported value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, srv, tt.input, "person", "bulk-enrich")
			if res.err == nil || !strings.Contains(res.err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", res.err, tt.want)
			}
			if errorKind(res.err) != "usage" {
				t.Errorf("errorKind() = %q, want usage", errorKind(res.err))
			}
		})
	}
	if srv.Calls() != 0 {
		t.Errorf("server saw %d calls, want 0", srv.Calls())
	}
}

func TestSearchCommand(t *testing.T) {
	srv := newServer(t)
	srv.Handle(http.MethodGet, "/company/search", http.StatusOK, `{"status":200,"data":[],"total":0}`)

	res := execute(t, srv, "", "company", "search", "--query", `{"term":{"industry":"retail"}}`, "--size", "5")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}
	req, _ := srv.LastRequest()
	if req.Query.Get("query") != `{"term":{"industry":"retail"}}` || req.Query.Get("size") != "5" {
		t.Errorf("query = %v", req.Query)
	}

	res = execute(t, srv, "", "company", "search", "--query", `{bad`)
	if res.err == nil || errorKind(res.err) != "usage" {
		t.Errorf("error = %v, want usage error", res.err)
	}
}

func TestIPCommand_OptionalBools(t *testing.T) {
	srv := newServer(t)
	srv.Handle(http.MethodGet, "/ip/enrich", http.StatusOK, `{"status":200,"data":{"ip":{"address":"1.1.1.1"}}}`)

	res := execute(t, srv, "", "ip", "1.1.1.1", "--return-person", "--return-ip-location=false")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}
	req, _ := srv.LastRequest()
	if req.RawQuery != "ip=1.1.1.1&return_ip_location=false&return_person=true" {
		t.Errorf("RawQuery = %q", req.RawQuery)
	}
}

func TestGlobalFlags(t *testing.T) {
	var got *pdl.Client
	stop := errors.New("stop")
	a := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	a.connect = func(opts ...pdl.Option) (*pdl.PDL, error) {
		got = pdl.NewClient("k", opts...)
		return nil, stop
	}
	root := a.rootCmd()
	root.SetArgs([]string{"skill", "c++", "--sandbox", "--timeout", "3s"})

	if err := root.Execute(); !errors.Is(err, stop) {
		t.Fatalf("Execute() error = %v, want stop", err)
	}
	if got.BaseURL() != pdl.SandboxBaseURL {
		t.Errorf("BaseURL() = %q, want sandbox", got.BaseURL())
	}
	if got.Timeout() != 3*time.Second {
		t.Errorf("Timeout() = %v, want 3s", got.Timeout())
	}
}

func TestSetField(t *testing.T) {
	var p pdl.CompanyParams
	fields := companyFields(&p)

	if err := setField(fields, "location", []any{"austin", "texas"}); err != nil {
		t.Fatalf("setField(location) error = %v", err)
	}
	if err := setField(fields, "name", "google"); err != nil {
		t.Fatalf("setField(name) error = %v", err)
	}
	if err := setField(fields, "name", []any{"a", "b"}); err == nil {
		t.Error("setField(name, list) = nil, want error")
	}
	if err := setField(fields, "location", []any{"a", 1.0}); err == nil {
		t.Error("setField(location, mixed) = nil, want error")
	}

	want := pdl.CompanyParams{Name: "google", Location: []string{"austin", "texas"}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}
