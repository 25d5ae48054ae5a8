package emit

import (
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/tsclean/tsclean/pkg/fieldspec"
	"github.com/tsclean/tsclean/pkg/typemap"
)

// featureView is the fully derived template context for one feature. All
// per-field strings are computed here from the same (type, rule) pairs, so
// the interface, schema, validator and sample payload can never disagree.
// Fields are exported for template reflection.
type featureView struct {
	Name  string // as given, used for variable-like identifiers and paths
	Ident string // capitalized, used for type-like identifiers

	EntityFields     string // interface members: "name: string, price: number"
	EntityCtorParams string // constructor params: "public name: string, public price: number"
	DTOFields        string // DTO members, one per line
	ModelFields      string // Mongoose schema fields, one per line
	ZodSchema        string // full z.object({...}) literal
	SampleJSON       string // ordered sample payload object literal
	CtorArgs         string // "dto.name, dto.price,"
	DocArgs          string // "productsDoc.name, productsDoc.price,"
	BodyFields       string // "name: dto.name, price: dto.price,"
}

func newFeatureView(feat fieldspec.FeatureSpec) featureView {
	view := featureView{
		Name:       feat.Name,
		Ident:      inflect.Capitalize(feat.Name),
		ZodSchema:  typemap.ZodSchema(feat.Fields),
		SampleJSON: typemap.SampleJSON(feat.Fields),
	}

	entity := make([]string, 0, len(feat.Fields))
	ctorParams := make([]string, 0, len(feat.Fields))
	dto := make([]string, 0, len(feat.Fields))
	model := make([]string, 0, len(feat.Fields))
	ctorArgs := make([]string, 0, len(feat.Fields))
	docArgs := make([]string, 0, len(feat.Fields))
	body := make([]string, 0, len(feat.Fields))

	for _, f := range feat.Fields {
		m := typemap.Map(f.Type)
		entity = append(entity, f.Name+": "+m.TSType)
		ctorParams = append(ctorParams, "public "+f.Name+": "+m.TSType)
		dto = append(dto, f.Name+": "+m.TSType+";")
		model = append(model, f.Name+": { type: "+m.MongooseType+", required: true },")
		ctorArgs = append(ctorArgs, "dto."+f.Name+",")
		docArgs = append(docArgs, feat.Name+"Doc."+f.Name+",")
		body = append(body, f.Name+": dto."+f.Name+",")
	}

	view.EntityFields = strings.Join(entity, ", ")
	view.EntityCtorParams = strings.Join(ctorParams, ", ")
	view.DTOFields = strings.Join(dto, "\n    ")
	view.ModelFields = strings.Join(model, "\n    ")
	view.CtorArgs = strings.Join(ctorArgs, " ")
	view.DocArgs = strings.Join(docArgs, " ")
	view.BodyFields = strings.Join(body, " ")
	return view
}
