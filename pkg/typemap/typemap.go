// Package typemap maps abstract field types onto their target
// representations: the TypeScript annotation, the Mongoose schema type, the
// Zod validator expression, and the sample payload value. Every mapping is
// total; unrecognized tokens degrade to the most permissive representation
// instead of failing, so generation never aborts on malformed input.
package typemap

import (
	"encoding/json"
	"fmt"

	"github.com/tsclean/tsclean/pkg/fieldspec"
)

// Mapping is the static view of a field type across the target languages.
type Mapping struct {
	TSType       string
	MongooseType string
}

// Map resolves a field type into its target representations. Unknown tokens
// map to any/Mixed.
func Map(t fieldspec.FieldType) Mapping {
	switch t {
	case fieldspec.FieldTypeString:
		return Mapping{TSType: "string", MongooseType: "String"}
	case fieldspec.FieldTypeNumber:
		return Mapping{TSType: "number", MongooseType: "Number"}
	case fieldspec.FieldTypeBoolean:
		return Mapping{TSType: "boolean", MongooseType: "Boolean"}
	default:
		return Mapping{TSType: "any", MongooseType: "Mixed"}
	}
}

// SampleValue derives the example payload value for a field. Strings default
// to "sample_<name>" unless the rule narrows them (email gets a fixed
// address, enum gets its first literal); numbers and booleans use fixed
// samples; unknown types degrade to null.
func SampleValue(f fieldspec.FieldSpec) any {
	switch f.Type {
	case fieldspec.FieldTypeString:
		rule := parseRule(f.Rule)
		switch rule.Kind {
		case ruleEmail:
			return "test@example.com"
		case ruleEnum:
			if len(rule.Values) > 0 {
				return rule.Values[0]
			}
			return "sample_" + f.Name
		default:
			return "sample_" + f.Name
		}
	case fieldspec.FieldTypeNumber:
		return 123
	case fieldspec.FieldTypeBoolean:
		return true
	default:
		return nil
	}
}

// SampleJSON renders the sample payload for a feature as a JSON object
// literal with keys in field declaration order. The generated tests compare
// payloads structurally, so key order must match the schema and validator.
func SampleJSON(fields []fieldspec.FieldSpec) string {
	out := "{"
	for i, f := range fields {
		if i > 0 {
			out += ","
		}
		value, err := json.Marshal(SampleValue(f))
		if err != nil {
			// Sample values are strings, ints, bools or nil; Marshal cannot
			// fail on them, but keep the payload well-formed regardless.
			value = []byte("null")
		}
		key, _ := json.Marshal(f.Name)
		out += fmt.Sprintf("%s:%s", key, value)
	}
	return out + "}"
}
