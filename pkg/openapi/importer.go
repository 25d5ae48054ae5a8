// Package openapi imports feature specifications from an OpenAPI 3 document.
// Each object schema under components.schemas becomes one feature; property
// constraints are folded into the closest field rule the generator supports.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/tsclean/tsclean/pkg/fieldspec"
)

// Features loads an OpenAPI document and converts its component schemas into
// feature specifications. Schemas and their properties are visited in sorted
// name order so the result is deterministic regardless of document layout.
func Features(ctx context.Context, path string) ([]fieldspec.FeatureSpec, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var features []fieldspec.FeatureSpec
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil || len(ref.Value.Properties) == 0 {
			continue
		}
		features = append(features, fieldspec.FeatureSpec{
			Name:   lowerFirst(name),
			Fields: fieldsOf(ref.Value),
		})
	}
	if len(features) == 0 {
		return nil, errors.New("openapi: no object schemas with properties found")
	}
	return features, nil
}

func fieldsOf(schema *openapi3.Schema) []fieldspec.FieldSpec {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]fieldspec.FieldSpec, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		fields = append(fields, fieldspec.FieldSpec{
			Name: name,
			Type: fieldType(ref.Value),
			Rule: fieldRule(ref.Value),
		})
	}
	return fields
}

// fieldType folds OpenAPI types onto the generator's type vocabulary.
// Integers become numbers; anything unrecognized passes through and maps to
// the permissive TypeScript/Mongoose fallbacks downstream.
func fieldType(schema *openapi3.Schema) fieldspec.FieldType {
	switch {
	case schema.Type == nil:
		return fieldspec.FieldType("")
	case schema.Type.Is(openapi3.TypeString):
		return fieldspec.FieldTypeString
	case schema.Type.Is(openapi3.TypeNumber), schema.Type.Is(openapi3.TypeInteger):
		return fieldspec.FieldTypeNumber
	case schema.Type.Is(openapi3.TypeBoolean):
		return fieldspec.FieldTypeBoolean
	default:
		slice := schema.Type.Slice()
		if len(slice) == 0 {
			return fieldspec.FieldType("")
		}
		return fieldspec.FieldType(slice[0])
	}
}

// fieldRule derives at most one rule per field. A field spec carries a single
// rule token, so when a schema declares several constraints the most specific
// wins: enum, then email format, then length bounds, then value bounds.
func fieldRule(schema *openapi3.Schema) string {
	if len(schema.Enum) > 0 {
		values := make([]string, len(schema.Enum))
		for i, v := range schema.Enum {
			values[i] = fmt.Sprint(v)
		}
		return "enum=" + strings.Join(values, "|")
	}
	if schema.Format == "email" {
		return "email"
	}
	if schema.MinLength > 0 {
		return "minlength=" + strconv.FormatUint(schema.MinLength, 10)
	}
	if schema.MaxLength != nil {
		return "maxlength=" + strconv.FormatUint(*schema.MaxLength, 10)
	}
	if schema.Min != nil {
		return "min=" + formatNumber(*schema.Min)
	}
	if schema.Max != nil {
		return "max=" + formatNumber(*schema.Max)
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
