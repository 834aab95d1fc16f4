package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/quirk/pkg/state"
)

func sampleEvents() []*state.Event {
	return []*state.Event{
		{
			Timestamp:  state.Timestamp{Time: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
			CategoryID: "coffee",
			Phrase:     "Caffeine dragon feeds!",
		},
		{
			Timestamp:  state.Timestamp{Time: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)},
			CategoryID: "sass",
			Phrase:     `He said, "hi"`,
		},
	}
}

func TestJSON(t *testing.T) {
	var buf strings.Builder
	if err := JSON(&buf, sampleEvents()); err != nil {
		t.Fatalf("JSON() = %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("JSON output missing trailing newline")
	}

	var decoded []*state.Event
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(decoded) != 2 || decoded[0].CategoryID != "coffee" {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(out, `"categoryId": "coffee"`) {
		t.Errorf("output uses wrong field names:\n%s", out)
	}
}

func TestJSONEmpty(t *testing.T) {
	var buf strings.Builder
	if err := JSON(&buf, []*state.Event{}); err != nil {
		t.Fatalf("JSON() = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("JSON(empty) = %q, want []", got)
	}
}

func TestCSV(t *testing.T) {
	names := map[string]string{
		"coffee": "Coffee Consumed",
		"sass":   "Sass, Remarks",
	}
	var buf strings.Builder
	err := CSV(&buf, sampleEvents(), func(id string) string { return names[id] })
	if err != nil {
		t.Fatalf("CSV() = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "timestamp,categoryId,categoryName,phrase" {
		t.Errorf("header = %q", lines[0])
	}
	if want := "2026-03-14T09:30:00Z,coffee,Coffee Consumed,Caffeine dragon feeds!"; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
	// Embedded commas and quotes are quoted, quotes doubling per RFC4180.
	if want := `2026-03-14T10:00:00Z,sass,"Sass, Remarks","He said, ""hi"""`; lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestCSVEmbeddedNewline(t *testing.T) {
	events := []*state.Event{{
		Timestamp:  state.Timestamp{Time: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		CategoryID: "sass",
		Phrase:     "ok",
	}}
	var buf strings.Builder
	err := CSV(&buf, events, func(id string) string { return "Line one\nline two" })
	if err != nil {
		t.Fatalf("CSV() = %v", err)
	}

	// A newline inside a field survives quoting and parses back intact.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if got, want := records[1][2], "Line one\nline two"; got != want {
		t.Errorf("categoryName = %q, want %q", got, want)
	}
}

func TestCSVEmpty(t *testing.T) {
	var buf strings.Builder
	err := CSV(&buf, nil, func(id string) string { return id })
	if err != nil {
		t.Fatalf("CSV() = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "timestamp,categoryId,categoryName,phrase" {
		t.Errorf("CSV(empty) = %q, want header only", got)
	}
}
