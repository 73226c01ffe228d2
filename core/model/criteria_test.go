package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyOf_Collapse(t *testing.T) {
	tests := []struct {
		name    string
		clauses []Clause
		want    CriteriaKind
	}{
		{"no clauses", nil, KindEmpty},
		{"one clause", []Clause{{Field: "id", Value: 1}}, KindEquality},
		{"two clauses", []Clause{{Field: "id", Value: 1}, {Field: "uuid", Value: "x"}}, KindDisjunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AnyOf(tt.clauses...)
			assert.Equal(t, tt.want, c.Kind)
			assert.Len(t, c.Clauses, len(tt.clauses))
		})
	}
}

func TestCriteria_String(t *testing.T) {
	assert.Equal(t, "<any>", All().String())
	assert.Equal(t, "id = 1", Where("id", 1).String())
	assert.Equal(t, "id = 1 OR uuid = x",
		AnyOf(Clause{Field: "id", Value: 1}, Clause{Field: "uuid", Value: "x"}).String())
}
