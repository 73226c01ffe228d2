package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/goliatone/core.io-data-manager/core/model"
	"github.com/goliatone/core.io-data-manager/core/utils"
)

// parseDelimited returns a Parser for comma or tab separated content.
// The first row is the header and defines field names; every cell is
// whitespace-trimmed. Values stay strings, the store layer casts them
// against the schema.
func parseDelimited(comma rune) Parser {
	return func(content []byte, _ Options) ([]*model.Record, error) {
		reader := csv.NewReader(bytes.NewReader(content))
		reader.Comma = comma
		reader.TrimLeadingSpace = true
		// Rows narrower than the header are padded with empty cells.
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to parse delimited content: %w", err)
		}
		if len(rows) == 0 {
			return nil, nil
		}

		header := make([]string, len(rows[0]))
		for i, cell := range rows[0] {
			header[i] = strings.TrimSpace(cell)
		}

		records := make([]*model.Record, 0, len(rows)-1)
		for _, row := range rows[1:] {
			rec := model.NewRecord()
			for i, field := range header {
				if field == "" {
					continue
				}
				var value string
				if i < len(row) {
					value = strings.TrimSpace(row[i])
				}
				rec.Set(field, value)
			}
			records = append(records, rec)
		}
		return records, nil
	}
}

// exportDelimited returns an Exporter writing a header row derived from the
// first record's field order, then one row per record. Missing fields render
// as empty cells; nil values render empty rather than "<nil>".
func exportDelimited(comma rune) Exporter {
	return func(records []*model.Record, _ Options) ([]byte, error) {
		var buf bytes.Buffer
		writer := csv.NewWriter(&buf)
		writer.Comma = comma

		if len(records) == 0 {
			writer.Flush()
			return buf.Bytes(), writer.Error()
		}

		header := records[0].Fields()
		if err := writer.Write(header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}

		for _, rec := range records {
			row := make([]string, len(header))
			for i, field := range header {
				if v, ok := rec.Get(field); ok && v != nil {
					row[i] = utils.ToString(v)
				}
			}
			if err := writer.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
