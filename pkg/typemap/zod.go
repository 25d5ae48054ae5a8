package typemap

import (
	"strings"

	"github.com/tsclean/tsclean/pkg/fieldspec"
)

// Rule kinds recognized by the validator compiler. Anything else is ignored
// and the base constraint is emitted unchanged.
const (
	ruleNone      = ""
	ruleEmail     = "email"
	ruleMinLength = "minlength"
	ruleMaxLength = "maxlength"
	ruleMin       = "min"
	ruleMax       = "max"
	ruleEnum      = "enum"
)

// rule is the parsed form of a validation token. It only lives long enough
// to compile one validator expression.
type rule struct {
	Kind   string
	Arg    string
	Values []string
}

func parseRule(raw string) rule {
	if raw == "" {
		return rule{Kind: ruleNone}
	}
	if raw == ruleEmail {
		return rule{Kind: ruleEmail}
	}

	kind, arg, found := strings.Cut(raw, "=")
	if !found {
		return rule{Kind: ruleNone}
	}
	switch kind {
	case ruleMinLength, ruleMaxLength, ruleMin, ruleMax:
		return rule{Kind: kind, Arg: arg}
	case ruleEnum:
		return rule{Kind: ruleEnum, Values: strings.Split(arg, "|")}
	default:
		return rule{Kind: ruleNone}
	}
}

// ZodExpr compiles a field type and optional rule token into a Zod validator
// expression. minlength/maxlength and min/max all compile to .min()/.max():
// Zod overloads them as length bounds on strings and value bounds on
// numbers. An enum rule replaces the base expression entirely.
func ZodExpr(t fieldspec.FieldType, rawRule string) string {
	var base string
	switch t {
	case fieldspec.FieldTypeString:
		base = "z.string()"
	case fieldspec.FieldTypeNumber:
		base = "z.number()"
	case fieldspec.FieldTypeBoolean:
		base = "z.boolean()"
	default:
		base = "z.any()"
	}

	r := parseRule(rawRule)
	switch r.Kind {
	case ruleEmail:
		return base + ".email()"
	case ruleMinLength, ruleMin:
		return base + ".min(" + r.Arg + ")"
	case ruleMaxLength, ruleMax:
		return base + ".max(" + r.Arg + ")"
	case ruleEnum:
		quoted := make([]string, len(r.Values))
		for i, v := range r.Values {
			quoted[i] = `"` + v + `"`
		}
		return "z.enum([" + strings.Join(quoted, ",") + "])"
	default:
		return base
	}
}

// ZodSchema compiles a feature's fields into the z.object({...}) literal
// used by the generated validation middleware, one field per line in
// declaration order.
func ZodSchema(fields []fieldspec.FieldSpec) string {
	var b strings.Builder
	b.WriteString("z.object({")
	for _, f := range fields {
		b.WriteString("\n    ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(ZodExpr(f.Type, f.Rule))
		b.WriteString(",")
	}
	b.WriteString("\n})")
	return b.String()
}
