package emit_test

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsclean/tsclean/pkg/emit"
	"github.com/tsclean/tsclean/pkg/fieldspec"
)

func newEmitter(t *testing.T) *emit.Emitter {
	t.Helper()
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("emit.New: %v", err)
	}
	return emitter
}

func mustFeature(t *testing.T, name, fields string) fieldspec.FeatureSpec {
	t.Helper()
	feat, err := fieldspec.NewFeature(name, fields)
	if err != nil {
		t.Fatalf("NewFeature(%q, %q): %v", name, fields, err)
	}
	return feat
}

func fileByPath(t *testing.T, files []emit.File, path string) string {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return string(f.Content)
		}
	}
	t.Fatalf("no file %q in emitted set", path)
	return ""
}

func TestFeatureFileSet(t *testing.T) {
	emitter := newEmitter(t)
	files, err := emitter.Feature(mustFeature(t, "products", "name:string:minlength=3,price:number:min=0"))
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}

	got := make([]string, len(files))
	for i, f := range files {
		got[i] = f.Path
	}
	want := []string{
		"Features/products/container.ts",
		"Features/products/domain/entity/products.entity.ts",
		"Features/products/domain/repositories/products.repository.interface.ts",
		"Features/products/domain/usecases/create-products.usecase.ts",
		"Features/products/data/models/products.model.ts",
		"Features/products/data/datasources/products.datasource.ts",
		"Features/products/data/repositories/products.repository.ts",
		"Features/products/delivery/middlewares/validate-products.middleware.ts",
		"Features/products/delivery/controllers/products.controller.ts",
		"__tests__/Features/products/products.usecase.test.ts",
		"__tests__/Features/products/products.controller.test.ts",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("file paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFeatureProducts(t *testing.T) {
	emitter := newEmitter(t)
	files, err := emitter.Feature(mustFeature(t, "products", "name:string:minlength=3,price:number:min=0"))
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}

	entity := fileByPath(t, files, "Features/products/domain/entity/products.entity.ts")
	if !strings.Contains(entity, "export class Products {") {
		t.Errorf("entity missing class declaration:\n%s", entity)
	}
	if !strings.Contains(entity, "public name: string, public price: number") {
		t.Errorf("entity missing constructor params:\n%s", entity)
	}

	middleware := fileByPath(t, files, "Features/products/delivery/middlewares/validate-products.middleware.ts")
	for _, want := range []string{
		"const productsSchema = z.object({",
		"name: z.string().min(3),",
		"price: z.number().min(0),",
		"export const validateProducts",
	} {
		if !strings.Contains(middleware, want) {
			t.Errorf("middleware missing %q:\n%s", want, middleware)
		}
	}

	model := fileByPath(t, files, "Features/products/data/models/products.model.ts")
	for _, want := range []string{
		"export interface IProducts extends Document {",
		"name: string, price: number",
		"name: { type: String, required: true },",
		"price: { type: Number, required: true },",
	} {
		if !strings.Contains(model, want) {
			t.Errorf("model missing %q:\n%s", want, model)
		}
	}

	usecaseTest := fileByPath(t, files, "__tests__/Features/products/products.usecase.test.ts")
	if !strings.Contains(usecaseTest, `const dto: CreateProductsDto = {"name":"sample_name","price":123};`) {
		t.Errorf("usecase test missing sample dto:\n%s", usecaseTest)
	}
	if !strings.Contains(usecaseTest, "new Products('123', dto.name, dto.price,)") {
		t.Errorf("usecase test missing constructor call:\n%s", usecaseTest)
	}
}

func TestFeaturePaymentEnumAndEmail(t *testing.T) {
	emitter := newEmitter(t)
	feat := mustFeature(t, "payment", "amount:number:min=1,method:string:enum=credit|debit,contact:string:email")
	files, err := emitter.Feature(feat)
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}

	middleware := fileByPath(t, files, "Features/payment/delivery/middlewares/validate-payment.middleware.ts")
	for _, want := range []string{
		"amount: z.number().min(1),",
		`method: z.enum(["credit","debit"]),`,
		"contact: z.string().email(),",
	} {
		if !strings.Contains(middleware, want) {
			t.Errorf("middleware missing %q:\n%s", want, middleware)
		}
	}

	controllerTest := fileByPath(t, files, "__tests__/Features/payment/payment.controller.test.ts")
	if !strings.Contains(controllerTest, `{"amount":123,"method":"credit","contact":"test@example.com"}`) {
		t.Errorf("controller test missing sample payload:\n%s", controllerTest)
	}
}

// The interface, persistence schema, validator and sample payload must agree
// on the field name set because all four derive from the same parsed fields.
func TestFieldNameAgreementAcrossDocuments(t *testing.T) {
	emitter := newEmitter(t)
	feat := mustFeature(t, "orders", "customer:string:minlength=2,total:number:min=0,paid:boolean")
	files, err := emitter.Feature(feat)
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}

	want := []string{"customer", "paid", "total"}

	model := fileByPath(t, files, "Features/orders/data/models/orders.model.ts")
	modelFields := submatches(`(\w+): \{ type: \w+, required: true \}`, model)

	middleware := fileByPath(t, files, "Features/orders/delivery/middlewares/validate-orders.middleware.ts")
	validatorFields := submatches(`(\w+): z\.`, middleware)

	usecaseTest := fileByPath(t, files, "__tests__/Features/orders/orders.usecase.test.ts")
	sampleFields := submatches(`"(\w+)":`, usecaseTest)

	for name, got := range map[string][]string{
		"model":     modelFields,
		"validator": validatorFields,
		"sample":    sampleFields,
	} {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s field names mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func submatches(pattern, content string) []string {
	re := regexp.MustCompile(pattern)
	seen := make(map[string]bool)
	var names []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	return names
}

func TestEntryPoint(t *testing.T) {
	emitter := newEmitter(t)
	file, err := emitter.EntryPoint([]string{"products", "payment"})
	if err != nil {
		t.Fatalf("EntryPoint: %v", err)
	}
	if file.Path != "Server/index.ts" {
		t.Errorf("path = %q, want Server/index.ts", file.Path)
	}

	content := string(file.Content)
	for _, want := range []string{
		"import { ProductsController } from '../Features/products/delivery/controllers/products.controller';",
		"import { PaymentController } from '../Features/payment/delivery/controllers/payment.controller';",
		"app.use('/api/products', productsController.getRouter());",
		"app.use('/api/payment', paymentController.getRouter());",
		"await connectToDatabase();",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("entry point missing %q:\n%s", want, content)
		}
	}
}

func TestEntryPointEmpty(t *testing.T) {
	emitter := newEmitter(t)
	file, err := emitter.EntryPoint(nil)
	if err != nil {
		t.Fatalf("EntryPoint: %v", err)
	}
	content := string(file.Content)
	if strings.Contains(content, "Controller") {
		t.Errorf("entry point without features should wire no controllers:\n%s", content)
	}
	if !strings.Contains(content, "const app = express();") {
		t.Errorf("entry point missing server setup:\n%s", content)
	}
}

func TestShared(t *testing.T) {
	emitter := newEmitter(t)
	params := emit.ProjectParams{Name: "shop", Port: 3000, MongoURI: "mongodb://localhost:27017/shop"}
	files, err := emitter.Shared(params)
	if err != nil {
		t.Fatalf("Shared: %v", err)
	}

	got := make([]string, len(files))
	for i, f := range files {
		got[i] = f.Path
	}
	want := []string{
		"package.json",
		"tsconfig.json",
		"jest.config.ts",
		".env",
		".gitignore",
		"Core/result/result.ts",
		"Core/error/custom-error.ts",
		"Core/config/database.ts",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shared paths mismatch (-want +got):\n%s", diff)
	}

	manifest := fileByPath(t, files, "package.json")
	if !strings.Contains(manifest, `"name": "shop",`) {
		t.Errorf("package.json missing project name:\n%s", manifest)
	}

	env := fileByPath(t, files, ".env")
	for _, want := range []string{"PORT=3000", "MONGODB_URI=mongodb://localhost:27017/shop"} {
		if !strings.Contains(env, want) {
			t.Errorf(".env missing %q:\n%s", want, env)
		}
	}
}

func TestReadme(t *testing.T) {
	emitter := newEmitter(t)
	params := emit.ProjectParams{Name: "shop", Port: 3000}
	payment := mustFeature(t, "payment", "amount:number:min=1,method:string:enum=credit|debit")

	file, err := emitter.Readme(params, []string{"products", "payment"}, []fieldspec.FeatureSpec{payment})
	if err != nil {
		t.Fatalf("Readme: %v", err)
	}

	content := string(file.Content)
	if !strings.Contains(content, "# shop") {
		t.Errorf("readme missing title:\n%s", content)
	}
	if !strings.Contains(content, "Feature-specific modules (products, payment).") {
		t.Errorf("readme missing feature list:\n%s", content)
	}
	if !strings.Contains(content, `curl -X POST http://localhost:3000/api/payment -H "Content-Type: application/json" -d '{"amount":123,"method":"credit"}'`) {
		t.Errorf("readme missing curl example:\n%s", content)
	}
	// examples only cover the features generated in this run
	if strings.Contains(content, "/api/products -H") {
		t.Errorf("readme has example for a feature with unknown fields:\n%s", content)
	}
}

func TestEmissionDeterministic(t *testing.T) {
	emitter := newEmitter(t)
	feat := mustFeature(t, "products", "")

	first, err := emitter.Feature(feat)
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}
	second, err := emitter.Feature(feat)
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}

	toMap := func(files []emit.File) map[string]string {
		m := make(map[string]string, len(files))
		for _, f := range files {
			m[f.Path] = string(f.Content)
		}
		return m
	}
	if diff := cmp.Diff(toMap(first), toMap(second)); diff != "" {
		t.Errorf("re-emission differs (-first +second):\n%s", diff)
	}
}

func TestDefaultFields(t *testing.T) {
	emitter := newEmitter(t)
	files, err := emitter.Feature(mustFeature(t, "users", ""))
	if err != nil {
		t.Fatalf("Feature: %v", err)
	}

	middleware := fileByPath(t, files, "Features/users/delivery/middlewares/validate-users.middleware.ts")
	for _, want := range []string{
		"name: z.string().min(3),",
		"email: z.string().email(),",
	} {
		if !strings.Contains(middleware, want) {
			t.Errorf("middleware missing %q:\n%s", want, middleware)
		}
	}
}
