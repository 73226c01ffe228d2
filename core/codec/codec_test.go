package codec

import (
	"errors"
	"testing"

	"github.com/goliatone/core.io-data-manager/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownFormat(t *testing.T) {
	r := NewRegistry()

	_, err := r.Parse("xml", []byte("<x/>"), nil)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "xml", unsupported.Format)
	assert.Equal(t, "parse", unsupported.Direction)

	_, err = r.Export("yaml", nil, nil)
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "export", unsupported.Direction)
}

func TestRegistry_CustomFormat(t *testing.T) {
	r := NewRegistry()
	r.RegisterParser("lines", func(content []byte, _ Options) ([]*model.Record, error) {
		rec := model.NewRecord()
		rec.Set("raw", string(content))
		return []*model.Record{rec}, nil
	})

	records, err := r.Parse("lines", []byte("hello"), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	raw, _ := records[0].Get("raw")
	assert.Equal(t, "hello", raw)
}

func TestCSV_Parse(t *testing.T) {
	r := NewRegistry()
	content := []byte("id, name ,email\n1, Alice ,alice@example.com\n2,Bob,\n")

	records, err := r.Parse("csv", content, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Header cells and values are whitespace-trimmed
	assert.Equal(t, []string{"id", "name", "email"}, records[0].Fields())
	name, _ := records[0].Get("name")
	assert.Equal(t, "Alice", name)

	email, _ := records[1].Get("email")
	assert.Equal(t, "", email)
}

func TestCSV_ParseEmpty(t *testing.T) {
	r := NewRegistry()
	records, err := r.Parse("csv", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTSV_Parse(t *testing.T) {
	r := NewRegistry()
	content := []byte("id\tname\n1\tAlice\n")

	records, err := r.Parse("tsv", content, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	id, _ := records[0].Get("id")
	assert.Equal(t, "1", id)
}

func TestCSV_RoundTrip(t *testing.T) {
	r := NewRegistry()
	content := []byte("id,name\n1,Alice\n2,Bob\n")

	records, err := r.Parse("csv", content, nil)
	require.NoError(t, err)

	out, err := r.Export("csv", records, nil)
	require.NoError(t, err)
	assert.Equal(t, string(content), string(out))
}

func TestCSV_ExportNilValues(t *testing.T) {
	r := NewRegistry()
	rec := model.NewRecord()
	rec.Set("id", 1)
	rec.Set("name", nil)

	out, err := r.Export("csv", []*model.Record{rec}, nil)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,\n", string(out))
}

func TestJSON_ParseArray(t *testing.T) {
	r := NewRegistry()
	content := []byte(`[{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}]`)

	records, err := r.Parse("json", content, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "name"}, records[0].Fields())
}

func TestJSON_ParseSingleObject(t *testing.T) {
	r := NewRegistry()
	records, err := r.Parse("json", []byte(`{"id": 1}`), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestJSON_ParseInvalid(t *testing.T) {
	r := NewRegistry()
	_, err := r.Parse("json", []byte(`{"id": `), nil)
	assert.Error(t, err)

	var unsupported *UnsupportedFormatError
	assert.False(t, errors.As(err, &unsupported))
}

func TestJSON_ExportEmpty(t *testing.T) {
	r := NewRegistry()
	out, err := r.Export("json", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}
