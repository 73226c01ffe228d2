package sync

import (
	"testing"

	"github.com/goliatone/core.io-data-manager/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userSchema() *model.Schema {
	return model.NewSchema().
		AddField("id", model.FieldDef{Type: model.FieldInteger, Unique: true}).
		AddField("uuid", model.FieldDef{Type: model.FieldText, Unique: true}).
		AddField("name", model.FieldDef{Type: model.FieldText})
}

func TestBuildCriteria_SingleFieldCollapses(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("id", 7)

	criteria, err := BuildCriteria(userSchema(), rec, []string{"id", "uuid"})
	require.NoError(t, err)

	// One usable field yields a plain equality, not a one-element OR
	assert.Equal(t, model.KindEquality, criteria.Kind)
	require.Len(t, criteria.Clauses, 1)
	assert.Equal(t, "id", criteria.Clauses[0].Field)
	assert.Equal(t, 7, criteria.Clauses[0].Value)
}

func TestBuildCriteria_Disjunction(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("id", 7)
	rec.Set("uuid", "abc-123")

	criteria, err := BuildCriteria(userSchema(), rec, []string{"id", "uuid"})
	require.NoError(t, err)

	assert.Equal(t, model.KindDisjunction, criteria.Kind)
	require.Len(t, criteria.Clauses, 2)
	assert.Equal(t, "uuid", criteria.Clauses[1].Field)
}

func TestBuildCriteria_EmptyValuesFiltered(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("id", 7)
	rec.Set("uuid", "")

	criteria, err := BuildCriteria(userSchema(), rec, []string{"id", "uuid"})
	require.NoError(t, err)

	assert.Equal(t, model.KindEquality, criteria.Kind)
	assert.Equal(t, "id", criteria.Clauses[0].Field)
}

func TestBuildCriteria_AllFiltered(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("uuid", nil)
	rec.Set("name", "Alice")

	criteria, err := BuildCriteria(userSchema(), rec, []string{"id", "uuid"})
	require.NoError(t, err)
	assert.True(t, criteria.IsEmpty())
}

func TestBuildCriteria_CastsTextAndWritesBack(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("uuid", 42)

	criteria, err := BuildCriteria(userSchema(), rec, []string{"uuid"})
	require.NoError(t, err)

	// The coerced value lands both in the criteria and in the record
	assert.Equal(t, "42", criteria.Clauses[0].Value)
	v, _ := rec.Get("uuid")
	assert.Equal(t, "42", v)
}

func TestBuildCriteria_NilNeverCoerced(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("uuid", nil)

	criteria, err := BuildCriteria(userSchema(), rec, []string{"uuid"})
	require.NoError(t, err)
	assert.True(t, criteria.IsEmpty())

	v, _ := rec.Get("uuid")
	assert.Nil(t, v)
}

func TestBuildCriteria_NoIdentityFields(t *testing.T) {
	rec := model.NewRecord()
	_, err := BuildCriteria(userSchema(), rec, nil)

	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestBuildCriteria_UnknownField(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("id", 1)

	_, err := BuildCriteria(userSchema(), rec, []string{"id", "nope"})
	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, configErr.Error(), "nope")
}
