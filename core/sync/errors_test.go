package sync

import (
	"errors"
	"testing"

	"github.com/goliatone/core.io-data-manager/core/model"

	"github.com/stretchr/testify/assert"
)

func TestNewImportError_IDsUniqueWithinMillisecond(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		e := newImportError("people", OpUpdateOrCreate, model.All(), model.NewRecord(), errors.New("boom"))
		assert.Regexp(t, `^error_people_[0-9a-z]+_[0-9a-z]+$`, e.ID)
		_, dup := seen[e.ID]
		assert.False(t, dup, "duplicate error ID %s", e.ID)
		seen[e.ID] = struct{}{}
	}
}

func TestImportError_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	e := newImportError("people", OpCreate, model.Where("id", 1), model.NewRecord(), cause)

	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "create", e.Strategy)
	assert.Equal(t, "people", e.Identity)
}
