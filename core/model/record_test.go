package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_OrderPreserved(t *testing.T) {
	r := NewRecord()
	r.Set("zeta", 1)
	r.Set("alpha", 2)
	r.Set("mid", 3)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Fields())

	// Updating an existing field keeps its position
	r.Set("alpha", 99)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Fields())

	v, ok := r.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestRecord_Delete(t *testing.T) {
	r := NewRecord()
	r.Set("a", 1)
	r.Set("b", 2)
	r.Set("c", 3)

	r.Delete("b")
	assert.Equal(t, []string{"a", "c"}, r.Fields())
	assert.False(t, r.Has("b"))

	// Deleting a missing field is a no-op
	r.Delete("missing")
	assert.Equal(t, 2, r.Len())
}

func TestRecord_NilValueIsPresent(t *testing.T) {
	r := NewRecord()
	r.Set("maybe", nil)

	assert.True(t, r.Has("maybe"))
	v, ok := r.Get("maybe")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	r := NewRecord()
	r.Set("id", 1)
	r.Set("name", "Alice")
	r.Set("active", true)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	// Key order must survive serialization
	assert.JSONEq(t, `{"id":1,"name":"Alice","active":true}`, string(data))
	assert.Equal(t, `{"id":1,"name":"Alice","active":true}`, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"id", "name", "active"}, back.Fields())

	name, _ := back.Get("name")
	assert.Equal(t, "Alice", name)

	// Numbers decode as float64, matching what the store drivers hand back
	id, _ := back.Get("id")
	assert.Equal(t, float64(1), id)
}

func TestRecordFromMap_DeterministicOrder(t *testing.T) {
	r := RecordFromMap(map[string]any{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, r.Fields())
}

func TestRecord_Clone(t *testing.T) {
	r := NewRecord()
	r.Set("id", 1)
	c := r.Clone()
	c.Set("id", 2)
	c.Set("extra", true)

	v, _ := r.Get("id")
	assert.Equal(t, 1, v)
	assert.False(t, r.Has("extra"))
}
