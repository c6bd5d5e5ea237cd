package style

// InitialValueMap implements InitialValues (cascade.go): a document's
// initial-values table (spec §3.2 item c), mapping style property to a
// value that step 4 of the cascade (spec §3.4) falls back to before the
// property's own table Default. Grounded on the teacher's
// InitializeDefaultPropertyValues, adapted from a fixed CSS-property set
// built at startup into a small mutable map a Document owns and a reader
// can populate from document-level style attributes.
type InitialValueMap struct {
	values map[Name]Value
}

// NewInitialValueMap returns an empty initial-values table; every lookup
// falls through to the property's table default until Set is called.
func NewInitialValueMap() *InitialValueMap {
	return &InitialValueMap{values: make(map[Name]Value)}
}

// Set records the document initial value for p.
func (m *InitialValueMap) Set(p Name, v Value) {
	m.values[p] = v
}

// InitialValue implements InitialValues.
func (m *InitialValueMap) InitialValue(p Name) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[p]
	return v, ok
}
