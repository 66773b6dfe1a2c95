// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringList
	}{
		{"single string", `"invalid_request_error"`, StringList{"invalid_request_error"}},
		{"array", `["a","b"]`, StringList{"a", "b"}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StringList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringList_Invalid(t *testing.T) {
	var got StringList
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Error("expected error decoding an object")
	}
}

func TestEnrichCompanyResponse_FlatFields(t *testing.T) {
	body := `{"status":200,"likelihood":9,"name":"google","website":"google.com","employee_count":100,
		"location":{"name":"mountain view, california, united states","country":"united states"}}`

	var got EnrichCompanyResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := EnrichCompanyResponse{
		Status:     200,
		Likelihood: 9,
		Company: Company{
			Name:          "google",
			Website:       "google.com",
			EmployeeCount: 100,
			Location: &Location{
				Name:    "mountain view, california, united states",
				Country: "united states",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EnrichCompanyResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestIPResponse_Nested(t *testing.T) {
	body := `{"status":200,"data":{"ip":{"address":"72.212.42.169",
		"metadata":{"version":4,"vpn":true},
		"location":{"name":"phoenix, arizona, united states"}},
		"company":{"name":"people data labs","tags":["data"]}}}`

	var got IPResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Data.IP.Address != "72.212.42.169" {
		t.Errorf("Address = %q", got.Data.IP.Address)
	}
	if got.Data.IP.Metadata == nil || !got.Data.IP.Metadata.VPN || got.Data.IP.Metadata.Version != 4 {
		t.Errorf("Metadata = %+v", got.Data.IP.Metadata)
	}
	if got.Data.Company == nil || got.Data.Company.Name != "people data labs" {
		t.Errorf("Company = %+v", got.Data.Company)
	}
	if got.Data.Person != nil {
		t.Errorf("Person should be nil, got %+v", got.Data.Person)
	}
}

func TestSearchPersonResponse_Error(t *testing.T) {
	body := `{"status":400,"error":{"type":["invalid_request_error"],"message":"bad query"}}`

	var got SearchPersonResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Error == nil || got.Error.Message != "bad query" {
		t.Fatalf("Error = %+v", got.Error)
	}
	if diff := cmp.Diff(StringList{"invalid_request_error"}, got.Error.Type); diff != "" {
		t.Errorf("Type mismatch (-want +got):\n%s", diff)
	}
}
