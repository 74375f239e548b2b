package writer

import (
	"encoding/json"
	"fmt"
	"os"

	"zoteroconv/internal/domain"
	"zoteroconv/internal/ports"
)

// JSONFile writes the record sequence as an indented JSON array,
// overwriting any existing file at the destination path.
type JSONFile struct {
	path string
}

var _ ports.Writer = (*JSONFile)(nil)

// NewJSONFile binds the destination path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Write serializes all records at once; an empty sequence still produces a
// valid empty array.
func (w *JSONFile) Write(records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	payload = append(payload, '\n')

	if err := os.WriteFile(w.path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}

	return nil
}
