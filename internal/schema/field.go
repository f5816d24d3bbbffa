package schema

// Type is the kind a raw sheet value is coerced into.
type Type string

const (
	TypeString     Type = "STRING"
	TypeInteger    Type = "INTEGER"
	TypeFloat      Type = "FLOAT"
	TypeBoolean    Type = "BOOLEAN"
	TypeSSML       Type = "SSML"
	TypeStringList Type = "STRING_LIST"
	TypeURL        Type = "URL"
	TypeURLList    Type = "URL_LIST"
	TypeImage      Type = "IMAGE"
	TypeGoogleFont Type = "GOOGLE_FONT"
	TypeColorHex   Type = "COLOR_HEX"
	TypeDate       Type = "DATE"
)

// Field describes one key of a record.
type Field struct {
	Name     string // key in the raw record
	Alias    string // key in the validated record, Name when empty
	Type     Type
	Default  any  // substituted for an empty value, nil when there is none
	Optional bool // empty values are dropped instead of failing
}

func (f Field) outputKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Schema is the field schema of a collection.
type Schema struct {
	Collection string
	Fields     []Field
}

// Field returns the field with the given name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Keys returns the raw key of every field in declaration order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		keys = append(keys, f.Name)
	}
	return keys
}

// Defaults returns a record holding the default of every field that has one.
func (s Schema) Defaults() Record {
	rec := make(Record, len(s.Fields))
	for _, f := range s.Fields {
		if f.Default == nil {
			continue
		}
		if list, ok := f.Default.([]string); ok {
			f.Default = append([]string(nil), list...)
		}
		rec[f.Name] = f.Default
	}
	return rec
}

// Record is a single row or a flattened settings tab.
type Record map[string]any
