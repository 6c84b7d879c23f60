package marc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// yamlRecord is the fixture representation of a Record.
type yamlRecord struct {
	ID     string      `yaml:"id"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Tag       string     `yaml:"tag"`
	Ind1      string     `yaml:"ind1"`
	Ind2      string     `yaml:"ind2"`
	Subfields []Subfield `yaml:"subfields"`
}

type yamlSubfield struct {
	Code string `yaml:"code"`
	Data string `yaml:"data"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Subfield.
// Accepts either a breaker string ("$aData") or a {code, data} mapping.
func (s *Subfield) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if len(str) < 2 || str[0] != '$' {
			return fmt.Errorf("line %d: subfield %q: expected \"$\" followed by a code", node.Line, str)
		}

		code, size := utf8.DecodeRuneInString(str[1:])
		*s = Subfield{Code: code, Data: str[1+size:]}

		return nil

	case yaml.MappingNode:
		var raw yamlSubfield

		err := node.Decode(&raw)
		if err != nil {
			return err
		}

		if utf8.RuneCountInString(raw.Code) != 1 {
			return fmt.Errorf("line %d: subfield code %q must be a single character", node.Line, raw.Code)
		}

		code, _ := utf8.DecodeRuneInString(raw.Code)
		*s = Subfield{Code: code, Data: raw.Data}

		return nil

	default:
		return fmt.Errorf("line %d: expected subfield string or mapping, got %v", node.Line, node.Kind)
	}
}

// Decoder reads records from a YAML (or JSON) stream. Each document holds
// either one record or a sequence of records.
type Decoder struct {
	dec     *yaml.Decoder
	pending []*Record
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: yaml.NewDecoder(r)}
}

// Decode returns the next record, or io.EOF when the stream is exhausted.
func (d *Decoder) Decode() (*Record, error) {
	for len(d.pending) == 0 {
		var node yaml.Node

		err := d.dec.Decode(&node)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}

			return nil, fmt.Errorf("failed to parse record YAML: %w", err)
		}

		records, err := decodeDocument(&node)
		if err != nil {
			return nil, err
		}

		d.pending = records
	}

	rec := d.pending[0]
	d.pending = d.pending[1:]

	return rec, nil
}

// DecodeAll reads all remaining records.
func (d *Decoder) DecodeAll() ([]*Record, error) {
	var result []*Record

	for {
		rec, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return result, nil
		}

		if err != nil {
			return result, err
		}

		result = append(result, rec)
	}
}

// LoadFile reads all records from the file at path.
func LoadFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file %s: %w", path, err)
	}
	defer f.Close()

	return NewDecoder(f).DecodeAll()
}

// Parse decodes all records contained in data.
func Parse(data []byte) ([]*Record, error) {
	return NewDecoder(bytes.NewReader(data)).DecodeAll()
}

func decodeDocument(doc *yaml.Node) ([]*Record, error) {
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}

		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var raws []yamlRecord

		err := node.Decode(&raws)
		if err != nil {
			return nil, fmt.Errorf("failed to decode records: %w", err)
		}

		result := make([]*Record, 0, len(raws))

		for i := range raws {
			rec, err := raws[i].record()
			if err != nil {
				return nil, err
			}

			result = append(result, rec)
		}

		return result, nil

	case yaml.MappingNode:
		var raw yamlRecord

		err := node.Decode(&raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}

		rec, err := raw.record()
		if err != nil {
			return nil, err
		}

		return []*Record{rec}, nil

	default:
		return nil, fmt.Errorf("line %d: expected record mapping or sequence, got %v", node.Line, node.Kind)
	}
}

func (y *yamlRecord) record() (*Record, error) {
	rec := &Record{ID: y.ID, Fields: make([]Field, 0, len(y.Fields))}

	for i, f := range y.Fields {
		if f.Tag == "" {
			return nil, fmt.Errorf("record %q: field %d has no tag", y.ID, i)
		}

		ind1, err := indicator(f.Ind1)
		if err != nil {
			return nil, fmt.Errorf("record %q: field %s: %w", y.ID, f.Tag, err)
		}

		ind2, err := indicator(f.Ind2)
		if err != nil {
			return nil, fmt.Errorf("record %q: field %s: %w", y.ID, f.Tag, err)
		}

		rec.Fields = append(rec.Fields, Field{
			Tag:       f.Tag,
			Ind1:      ind1,
			Ind2:      ind2,
			Subfields: f.Subfields,
		})
	}

	return rec, nil
}

// indicator converts a fixture indicator; empty means blank.
func indicator(s string) (rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return ' ', nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	default:
		return 0, fmt.Errorf("indicator %q must be a single character", s)
	}
}
