// Package fieldspec parses the compact field DSL used on the command line
// (`name:type:rule,...`) into the ordered structures the emitter consumes.
package fieldspec

import (
	"fmt"
	"strings"
)

// FieldType is the abstract type token carried by a field definition. Tokens
// outside the known set are preserved as-is and degrade to the permissive
// representation during mapping.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// FieldSpec is one `name:type[:rule]` triple. Order of fields is semantic: it
// fixes constructor argument order, schema field order, and sample-payload key
// order across every generated document.
type FieldSpec struct {
	Name string
	Type FieldType
	Rule string
}

// String renders the field back into its canonical DSL form.
func (f FieldSpec) String() string {
	if f.Rule == "" {
		return f.Name + ":" + string(f.Type)
	}
	return f.Name + ":" + string(f.Type) + ":" + f.Rule
}

// FeatureSpec names a vertical slice and carries its ordered fields. It is
// immutable once built and consumed exactly once by the emitter.
type FeatureSpec struct {
	Name   string
	Fields []FieldSpec
}

// Parse splits a field-spec string into its ordered triples. Splitting is
// purely positional: `,` separates fields, `:` separates up to three parts;
// a missing third part yields an empty rule. The grammar has no escaping, so
// commas or colons inside a value shift the split silently.
//
// Duplicate field names are rejected: every generated document keys off the
// name, and a duplicate would silently drop a field from the Mongoose schema
// and the Zod validator.
func Parse(s string) ([]FieldSpec, error) {
	segments := strings.Split(s, ",")
	fields := make([]FieldSpec, 0, len(segments))
	seen := make(map[string]struct{}, len(segments))

	for _, segment := range segments {
		parts := strings.SplitN(segment, ":", 3)
		field := FieldSpec{Name: parts[0]}
		if len(parts) > 1 {
			field.Type = FieldType(parts[1])
		}
		if len(parts) > 2 {
			field.Rule = parts[2]
		}

		if _, dup := seen[field.Name]; dup {
			return nil, fmt.Errorf("fieldspec: duplicate field name %q", field.Name)
		}
		seen[field.Name] = struct{}{}
		fields = append(fields, field)
	}

	return fields, nil
}

// Canonical re-serializes parsed fields into the canonical form of the DSL.
// For every valid input, Parse followed by Canonical is a fixed point on the
// structural representation.
func Canonical(fields []FieldSpec) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// DefaultFields returns the two-field spec substituted when a feature is
// declared without --fields.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{Name: "name", Type: FieldTypeString, Rule: "minlength=3"},
		{Name: "email", Type: FieldTypeString, Rule: "email"},
	}
}

// NewFeature builds a FeatureSpec from a feature name and its raw field
// string. An empty field string selects the default two-field spec; Parse is
// never handed empty input.
func NewFeature(name, fields string) (FeatureSpec, error) {
	if strings.TrimSpace(fields) == "" {
		return FeatureSpec{Name: name, Fields: DefaultFields()}, nil
	}
	parsed, err := Parse(fields)
	if err != nil {
		return FeatureSpec{}, fmt.Errorf("feature %q: %w", name, err)
	}
	return FeatureSpec{Name: name, Fields: parsed}, nil
}
