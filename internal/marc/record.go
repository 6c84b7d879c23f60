package marc

import "strings"

// LocalTag is the tag of local data fields. The effective tag of a local field
// is stored in the first three characters of its $0 subfield.
const LocalTag = "LOK"

// Subfield is a single coded component of a field.
type Subfield struct {
	Code rune
	Data string
}

// Field is one occurrence of a data field.
type Field struct {
	Tag       string
	Ind1      rune
	Ind2      rune
	Subfields []Subfield
}

// Record is a bibliographic record. ID is the control number.
type Record struct {
	ID     string
	Fields []Field
}

// Subfield returns the first subfield with the given code.
func (f Field) Subfield(code rune) (Subfield, bool) {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf, true
		}
	}

	return Subfield{}, false
}

// SubfieldData returns the data of the first subfield with the given code,
// or an empty string.
func (f Field) SubfieldData(code rune) string {
	sf, ok := f.Subfield(code)
	if !ok {
		return ""
	}

	return sf.Data
}

// SubfieldsByCode returns all subfields with the given code in field order.
func (f Field) SubfieldsByCode(code rune) []Subfield {
	var result []Subfield

	for _, sf := range f.Subfields {
		if sf.Code == code {
			result = append(result, sf)
		}
	}

	return result
}

// IsLocal reports whether the field is a local data field.
func (f Field) IsLocal() bool {
	return f.Tag == LocalTag
}

// HasLocalTag reports whether f is a local data field whose first $0 subfield
// starts with target.
func (f Field) HasLocalTag(target string) bool {
	if !f.IsLocal() {
		return false
	}

	sf, ok := f.Subfield('0')

	return ok && strings.HasPrefix(sf.Data, target)
}

// FieldsByTag returns all occurrences of tag in record order.
func (r *Record) FieldsByTag(tag string) []Field {
	if r == nil {
		return nil
	}

	var result []Field

	for _, f := range r.Fields {
		if f.Tag == tag {
			result = append(result, f)
		}
	}

	return result
}

// ControlNumber returns the record identity used for cache keys.
func (r *Record) ControlNumber() string {
	if r == nil {
		return ""
	}

	return r.ID
}
