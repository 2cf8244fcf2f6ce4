package validate

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/MalithGihan/chart-service/pkg/types"
)

func TestChart(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string // substring; empty means valid
	}{
		{"valid", `{"data":[5,7,3,8],"categories":["Health","Career","Finance","Fun"],"title":"Wheel"}`, ""},
		{"zero values", `{"data":[0,0],"categories":["a","b"],"title":""}`, ""},
		{"missing data", `{"categories":["a"],"title":"t"}`, "'data'"},
		{"missing categories", `{"data":[1],"title":"t"}`, "categories"},
		{"missing title", `{"data":[1],"categories":["a"]}`, "'title'"},
		{"length mismatch", `{"data":[1,2],"categories":["a"],"title":"t"}`, "2 values but categories has 1"},
		{"empty", `{"data":[],"categories":["a"],"title":"t"}`, "/data"},
		{"negative", `{"data":[1,-2],"categories":["a","b"],"title":"t"}`, "/data/1"},
		{"string value", `{"data":[1,"x"],"categories":["a","b"],"title":"t"}`, "/data/1"},
		{"not an object", `[1,2,3]`, "invalid data format"},
		{"broken json", `{"data":`, "invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Chart([]byte(tt.body))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !IsInput(err) {
				t.Fatalf("expected InputError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestChartDecodes(t *testing.T) {
	got, err := Chart([]byte(`{"data":[5,7.5],"categories":["Health","Fun"],"title":"Wheel","extra":true}`))
	if err != nil {
		t.Fatal(err)
	}
	want := types.ChartRequest{Data: []float64{5, 7.5}, Categories: []string{"Health", "Fun"}, Title: "Wheel"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chart() = %s, want %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestDiagram(t *testing.T) {
	const four = `["Love","World Needs","Good At","Paid For"]`
	const overlap = `["Passion","Mission","Profession","Vocation"]`
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"labels":` + four + `,"overlap":` + overlap + `,"title":"IKIGAI"}`, ""},
		{"missing labels", `{"overlap":` + overlap + `,"title":"IKIGAI"}`, "labels"},
		{"missing overlap", `{"labels":` + four + `,"title":"IKIGAI"}`, "overlap"},
		{"missing title", `{"labels":` + four + `,"overlap":` + overlap + `}`, "title"},
		{"three labels", `{"labels":["a","b","c"],"overlap":` + overlap + `,"title":"x"}`, "/labels"},
		{"five overlaps", `{"labels":` + four + `,"overlap":["a","b","c","d","e"],"title":"x"}`, "/overlap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Diagram([]byte(tt.body))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if req.Title != "IKIGAI" || len(req.Labels) != 4 || len(req.Overlap) != 4 {
					t.Fatalf("bad decode: %s", spew.Sdump(req))
				}
				return
			}
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Fatalf("expected InputError, got %v", err)
			}
			if !strings.Contains(ie.Msg, tt.wantErr) {
				t.Fatalf("error %q does not mention %q", ie.Msg, tt.wantErr)
			}
		})
	}
}
