package model

import (
	"fmt"
	"strings"
)

// CriteriaKind discriminates the shape of a lookup expression.
type CriteriaKind int

const (
	// KindEmpty matches everything; produced when no identity field had a
	// usable value, or for match-all exports.
	KindEmpty CriteriaKind = iota

	// KindEquality is a single field = value expression.
	KindEquality

	// KindDisjunction is an OR over two or more field = value clauses.
	KindDisjunction
)

// Clause is one field-equality term.
type Clause struct {
	Field string
	Value any
}

// Criteria is a lookup expression: empty, a single equality, or a
// disjunction of equalities. The single-equality case is deliberately not
// wrapped in a one-element disjunction so stores can take the fast path.
type Criteria struct {
	Kind    CriteriaKind
	Clauses []Clause
}

// All returns the match-everything criteria.
func All() Criteria {
	return Criteria{Kind: KindEmpty}
}

// Where returns a single-equality criteria.
func Where(field string, value any) Criteria {
	return Criteria{Kind: KindEquality, Clauses: []Clause{{Field: field, Value: value}}}
}

// AnyOf builds criteria from equality clauses, collapsing to the cheapest
// shape: zero clauses yield empty criteria, one clause a plain equality,
// more a disjunction.
func AnyOf(clauses ...Clause) Criteria {
	switch len(clauses) {
	case 0:
		return Criteria{Kind: KindEmpty}
	case 1:
		return Criteria{Kind: KindEquality, Clauses: clauses}
	default:
		return Criteria{Kind: KindDisjunction, Clauses: clauses}
	}
}

// IsEmpty reports whether the criteria match everything.
func (c Criteria) IsEmpty() bool {
	return c.Kind == KindEmpty || len(c.Clauses) == 0
}

// String renders the criteria for logs and error messages.
func (c Criteria) String() string {
	if c.IsEmpty() {
		return "<any>"
	}
	parts := make([]string, len(c.Clauses))
	for i, cl := range c.Clauses {
		parts[i] = fmt.Sprintf("%s = %v", cl.Field, cl.Value)
	}
	return strings.Join(parts, " OR ")
}
