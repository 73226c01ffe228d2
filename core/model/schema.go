package model

// FieldType is the storage type declared for a schema field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldString   FieldType = "string"
	FieldInteger  FieldType = "integer"
	FieldFloat    FieldType = "float"
	FieldBoolean  FieldType = "boolean"
	FieldDatetime FieldType = "datetime"
	FieldJSON     FieldType = "json"
)

// IsTextual reports whether values of this type are stored as strings and
// should be coerced during criteria construction.
func (t FieldType) IsTextual() bool {
	return t == FieldText || t == FieldString
}

// FieldDef describes a single schema field.
type FieldDef struct {
	// Type is the declared storage type.
	Type FieldType

	// Unique marks the field as uniquely identifying a row. Unique fields
	// participate in identity resolution.
	Unique bool

	// DefaultsTo is the literal default value applied during hydration when
	// the record carries no value for this field. Ignored when DefaultFunc
	// is set.
	DefaultsTo any

	// DefaultFunc produces the default value at hydration time. Used for
	// per-record defaults like generated identifiers or timestamps.
	DefaultFunc func() any
}

// HasDefault reports whether the field declares any default.
func (d FieldDef) HasDefault() bool {
	return d.DefaultFunc != nil || d.DefaultsTo != nil
}

// Schema is the per-entity field catalog. Field order is declaration order,
// which keeps identity resolution deterministic.
type Schema struct {
	fields []string
	defs   map[string]FieldDef
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{defs: make(map[string]FieldDef)}
}

// AddField declares a field. Re-declaring a field updates its definition
// without changing its position.
func (s *Schema) AddField(name string, def FieldDef) *Schema {
	if s.defs == nil {
		s.defs = make(map[string]FieldDef)
	}
	if _, exists := s.defs[name]; !exists {
		s.fields = append(s.fields, name)
	}
	s.defs[name] = def
	return s
}

// Field returns the definition for a field and whether it exists.
func (s *Schema) Field(name string) (FieldDef, bool) {
	d, ok := s.defs[name]
	return d, ok
}

// Has reports whether the schema declares the field.
func (s *Schema) Has(name string) bool {
	_, ok := s.defs[name]
	return ok
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}
