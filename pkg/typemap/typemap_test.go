package typemap_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsclean/tsclean/pkg/fieldspec"
	"github.com/tsclean/tsclean/pkg/typemap"
)

func TestMapKnownTypes(t *testing.T) {
	cases := []struct {
		typ  fieldspec.FieldType
		want typemap.Mapping
	}{
		{fieldspec.FieldTypeString, typemap.Mapping{TSType: "string", MongooseType: "String"}},
		{fieldspec.FieldTypeNumber, typemap.Mapping{TSType: "number", MongooseType: "Number"}},
		{fieldspec.FieldTypeBoolean, typemap.Mapping{TSType: "boolean", MongooseType: "Boolean"}},
	}
	for _, tc := range cases {
		if got := typemap.Map(tc.typ); got != tc.want {
			t.Fatalf("Map(%q) = %+v, want %+v", tc.typ, got, tc.want)
		}
	}
}

func TestMapUnknownTypesFallBack(t *testing.T) {
	for _, token := range []string{"", "json", "Date", "STRING", "obj ect"} {
		got := typemap.Map(fieldspec.FieldType(token))
		want := typemap.Mapping{TSType: "any", MongooseType: "Mixed"}
		if got != want {
			t.Fatalf("Map(%q) = %+v, want permissive fallback %+v", token, got, want)
		}
		if sample := typemap.SampleValue(fieldspec.FieldSpec{Name: "x", Type: fieldspec.FieldType(token)}); sample != nil {
			t.Fatalf("SampleValue for unknown type %q = %v, want nil", token, sample)
		}
	}
}

func TestSampleValue(t *testing.T) {
	cases := []struct {
		name  string
		field fieldspec.FieldSpec
		want  any
	}{
		{"plain string", fieldspec.FieldSpec{Name: "title", Type: fieldspec.FieldTypeString}, "sample_title"},
		{"email rule", fieldspec.FieldSpec{Name: "email", Type: fieldspec.FieldTypeString, Rule: "email"}, "test@example.com"},
		{"enum takes first literal", fieldspec.FieldSpec{Name: "method", Type: fieldspec.FieldTypeString, Rule: "enum=credit|debit"}, "credit"},
		{"string with numeric rule", fieldspec.FieldSpec{Name: "name", Type: fieldspec.FieldTypeString, Rule: "minlength=3"}, "sample_name"},
		{"number", fieldspec.FieldSpec{Name: "price", Type: fieldspec.FieldTypeNumber, Rule: "min=0"}, 123},
		{"boolean", fieldspec.FieldSpec{Name: "active", Type: fieldspec.FieldTypeBoolean}, true},
		{"enum on number keeps numeric sample", fieldspec.FieldSpec{Name: "code", Type: fieldspec.FieldTypeNumber, Rule: "enum=1|2"}, 123},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := typemap.SampleValue(tc.field); got != tc.want {
				t.Fatalf("SampleValue = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestZodExpr(t *testing.T) {
	cases := []struct {
		name string
		typ  fieldspec.FieldType
		rule string
		want string
	}{
		{"string no rule", fieldspec.FieldTypeString, "", "z.string()"},
		{"email", fieldspec.FieldTypeString, "email", "z.string().email()"},
		{"minlength", fieldspec.FieldTypeString, "minlength=3", "z.string().min(3)"},
		{"maxlength", fieldspec.FieldTypeString, "maxlength=10", "z.string().max(10)"},
		{"numeric min", fieldspec.FieldTypeNumber, "min=0", "z.number().min(0)"},
		{"numeric max", fieldspec.FieldTypeNumber, "max=99", "z.number().max(99)"},
		{"enum replaces base", fieldspec.FieldTypeString, "enum=credit|debit", `z.enum(["credit","debit"])`},
		{"boolean", fieldspec.FieldTypeBoolean, "", "z.boolean()"},
		{"unknown type", fieldspec.FieldType("json"), "", "z.any()"},
		{"unrecognized rule ignored", fieldspec.FieldTypeString, "pattern=[a-z]+", "z.string()"},
		{"bare unknown token ignored", fieldspec.FieldTypeNumber, "positive", "z.number()"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := typemap.ZodExpr(tc.typ, tc.rule); got != tc.want {
				t.Fatalf("ZodExpr(%q, %q) = %q, want %q", tc.typ, tc.rule, got, tc.want)
			}
		})
	}
}

func TestZodSchemaFieldOrder(t *testing.T) {
	fields, err := fieldspec.Parse("amount:number:min=0,method:string:enum=credit|debit")
	if err != nil {
		t.Fatal(err)
	}
	want := "z.object({\n    amount: z.number().min(0),\n    method: z.enum([\"credit\",\"debit\"]),\n})"
	if got := typemap.ZodSchema(fields); got != want {
		t.Fatalf("ZodSchema mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestSampleJSONOrderAndValues(t *testing.T) {
	fields, err := fieldspec.Parse("amount:number:min=0,method:string:enum=credit|debit")
	if err != nil {
		t.Fatal(err)
	}
	got := typemap.SampleJSON(fields)
	if got != `{"amount":123,"method":"credit"}` {
		t.Fatalf("SampleJSON = %s", got)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("sample payload is not valid JSON: %v", err)
	}
	want := map[string]any{"amount": float64(123), "method": "credit"}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("decoded payload mismatch (-want +got):\n%s", diff)
	}
}
