// Package export serializes the event log for external consumption:
// events verbatim as JSON, or CSV with RFC4180 quoting.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/quirk/pkg/state"
)

// JSON writes the events as an indented JSON array, field for field the
// same shape they are persisted in.
func JSON(w io.Writer, events []*state.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal events: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

// CSV writes the events with a timestamp,categoryId,categoryName,phrase
// header. displayName resolves a category id to its current display name.
// Embedded commas, quotes, and newlines are quoted per RFC4180.
func CSV(w io.Writer, events []*state.Event, displayName func(categoryID string) string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "categoryId", "categoryName", "phrase"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, e := range events {
		record := []string{e.Timestamp.String(), e.CategoryID, displayName(e.CategoryID), e.Phrase}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
