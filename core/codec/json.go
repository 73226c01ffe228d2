package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/core.io-data-manager/core/model"
)

// parseJSON decodes a single JSON object or an array of objects into
// records. Key order from the document is preserved.
func parseJSON(content []byte, _ Options) ([]*model.Record, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []*model.Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON array: %w", err)
		}
		return records, nil
	}

	rec := model.NewRecord()
	if err := json.Unmarshal(trimmed, rec); err != nil {
		return nil, fmt.Errorf("failed to parse JSON object: %w", err)
	}
	return []*model.Record{rec}, nil
}

// exportJSON serializes records as an indented JSON array.
func exportJSON(records []*model.Record, _ Options) ([]byte, error) {
	if records == nil {
		records = []*model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize records: %w", err)
	}
	return data, nil
}
