package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-01-01", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-1-1", true},
		{"01/02/2024", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.String() != tt.input {
				t.Errorf("Expected round trip %q, got %q", tt.input, d.String())
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d, _ := ParseDate("2024-03-15")

	b, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{d})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"date":"2024-03-15"}` {
		t.Errorf("Unexpected JSON: %s", b)
	}

	var decoded struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-12-31"}`), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Date.String() != "2024-12-31" {
		t.Errorf("Expected 2024-12-31, got %s", decoded.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":"31-12-2024"}`), &decoded); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{"postgres time", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), "2024-05-06", false},
		{"sqlite text", "2024-05-06", "2024-05-06", false},
		{"sqlite timestamp text", "2024-05-06 00:00:00+00:00", "2024-05-06", false},
		{"bytes", []byte("2024-05-06"), "2024-05-06", false},
		{"null", nil, "", true},
		{"int", int64(20240506), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error scanning %v", tt.src)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, d)
			}
		})
	}
}

func TestDate_Value(t *testing.T) {
	d, _ := ParseDate("2024-07-04")
	v, err := d.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "2024-07-04" {
		t.Errorf("Expected driver value 2024-07-04, got %v", v)
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 23:30 UTC on Jan 1 is already Jan 2 in UTC+9
	ts := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC).In(loc)

	if got := DateOf(ts).String(); got != "2024-01-02" {
		t.Errorf("Expected local calendar date 2024-01-02, got %s", got)
	}
}
