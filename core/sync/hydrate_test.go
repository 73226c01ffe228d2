package sync

import (
	"testing"

	"github.com/goliatone/core.io-data-manager/core/model"

	"github.com/stretchr/testify/assert"
)

func TestHydrate_FillsMissingDefaults(t *testing.T) {
	schema := model.NewSchema().
		AddField("id", model.FieldDef{Type: model.FieldInteger}).
		AddField("status", model.FieldDef{Type: model.FieldText, DefaultsTo: "active"}).
		AddField("score", model.FieldDef{Type: model.FieldInteger, DefaultsTo: 0})

	rec := model.NewRecord()
	rec.Set("id", 1)

	Hydrate(schema, rec)

	status, _ := rec.Get("status")
	assert.Equal(t, "active", status)

	score, _ := rec.Get("score")
	assert.Equal(t, 0, score)

	// Hydrated fields append after the record's own fields
	assert.Equal(t, []string{"id", "status", "score"}, rec.Fields())
}

func TestHydrate_ProducerInvokedPerRecord(t *testing.T) {
	calls := 0
	schema := model.NewSchema().
		AddField("seq", model.FieldDef{Type: model.FieldInteger, DefaultFunc: func() any {
			calls++
			return calls
		}})

	first := model.NewRecord()
	second := model.NewRecord()
	Hydrate(schema, first)
	Hydrate(schema, second)

	v1, _ := first.Get("seq")
	v2, _ := second.Get("seq")
	assert.Equal(t, 1, v1)
	assert.Equal(t, 2, v2)
}

func TestHydrate_ExplicitValuesKept(t *testing.T) {
	schema := model.NewSchema().
		AddField("status", model.FieldDef{Type: model.FieldText, DefaultsTo: "active"}).
		AddField("kind", model.FieldDef{Type: model.FieldText, DefaultFunc: func() any { return "generated" }})

	rec := model.NewRecord()
	rec.Set("status", "disabled")
	rec.Set("kind", "explicit")

	before := rec.Clone()
	Hydrate(schema, rec)

	// Hydrating a fully populated record changes nothing
	assert.Equal(t, before.Fields(), rec.Fields())
	status, _ := rec.Get("status")
	kind, _ := rec.Get("kind")
	assert.Equal(t, "disabled", status)
	assert.Equal(t, "explicit", kind)
}

func TestHydrate_ExplicitNilKept(t *testing.T) {
	schema := model.NewSchema().
		AddField("status", model.FieldDef{Type: model.FieldText, DefaultsTo: "active"})

	rec := model.NewRecord()
	rec.Set("status", nil)

	Hydrate(schema, rec)
	v, _ := rec.Get("status")
	assert.Nil(t, v)
}
