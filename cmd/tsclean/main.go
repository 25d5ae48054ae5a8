// Command tsclean scaffolds TypeScript Express APIs with MongoDB, clean
// architecture layering, Zod validation, tsyringe DI, and Jest tests.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsclean/tsclean/internal/ui"
	"github.com/tsclean/tsclean/pkg/config"
	"github.com/tsclean/tsclean/pkg/fieldspec"
	"github.com/tsclean/tsclean/pkg/openapi"
	"github.com/tsclean/tsclean/pkg/prompt"
	"github.com/tsclean/tsclean/pkg/scaffold"
)

const rootUsage = "tsclean <project-name> [path] [--feature <name> [--fields <spec>]]..."

// Flag parsing is disabled on both commands: --feature/--fields are
// positionally paired, and pflag has no way to express "this flag modifies
// the most recent occurrence of that flag".
var rootCmd = &cobra.Command{
	Use:   rootUsage,
	Short: "Scaffold a TypeScript Express API with clean architecture",
	Long: `tsclean generates a complete TypeScript Express project backed by MongoDB:
clean architecture layering per feature, Zod request validation, tsyringe
dependency injection, and Jest tests, then installs its npm dependencies.

Fields are declared as comma-separated name:type:rule entries, for example:

  tsclean shop --feature products --fields name:string:minlength=3,price:number:min=0`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runNew,
}

var featureCmd = &cobra.Command{
	Use:                "feature <name> [--fields <spec>]",
	Short:              "Add a feature to an existing project",
	Long:               "Generates one feature module in the current project and rewires Server/index.ts around it.",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runFeature,
}

func main() {
	rootCmd.AddCommand(featureCmd)
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("project name required: %s", rootUsage)
	}
	project := args[0]
	if project == "--help" || project == "-h" {
		return cmd.Help()
	}
	if strings.HasPrefix(project, "--") {
		return fmt.Errorf("project name must come first: %s", rootUsage)
	}

	rest := args[1:]
	dir := ""
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "--") {
		dir = rest[0]
		rest = rest[1:]
	}

	var names, definitions []string
	var openapiPath string
	var interactive bool

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--feature":
			i++
			if i >= len(rest) || rest[i] == "" {
				return errors.New("--feature requires a feature name")
			}
			names = append(names, rest[i])
			definitions = append(definitions, "")
		case "--fields":
			if len(names) == 0 {
				return errors.New("--fields must follow a --feature flag")
			}
			i++
			if i >= len(rest) || rest[i] == "" {
				return errors.New("--fields requires a comma-separated list of field:type:rule entries")
			}
			definitions[len(definitions)-1] = rest[i]
		case "--from-openapi":
			i++
			if i >= len(rest) || rest[i] == "" {
				return errors.New("--from-openapi requires a document path")
			}
			openapiPath = rest[i]
		case "--interactive", "-i":
			interactive = true
		case "--verbose", "-V":
			ui.SetVerbose(true)
		case "--help", "-h":
			return cmd.Help()
		default:
			return fmt.Errorf("unknown argument: %s", rest[i])
		}
	}

	features := make([]fieldspec.FeatureSpec, 0, len(names))
	for i, name := range names {
		feat, err := fieldspec.NewFeature(name, definitions[i])
		if err != nil {
			return err
		}
		features = append(features, feat)
	}

	if openapiPath != "" {
		imported, err := openapi.Features(cmd.Context(), openapiPath)
		if err != nil {
			return err
		}
		features = append(features, imported...)
	}

	if interactive {
		collected, err := prompt.CollectFeatures(cmd.Context(), prompt.NewSurveyDriver())
		if err != nil {
			return err
		}
		features = append(features, collected...)
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}
	return gen.NewProject(cmd.Context(), scaffold.ProjectRequest{
		Name:     project,
		Path:     dir,
		Features: features,
	})
}

func runFeature(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("feature name required: tsclean feature <name> [--fields <spec>]")
	}
	name := args[0]
	if name == "--help" || name == "-h" {
		return cmd.Help()
	}

	definition := ""
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--fields":
			i++
			if i >= len(rest) || rest[i] == "" {
				return errors.New("--fields requires a comma-separated list of field:type:rule entries")
			}
			definition = rest[i]
		case "--verbose", "-V":
			ui.SetVerbose(true)
		case "--help", "-h":
			return cmd.Help()
		default:
			return fmt.Errorf("unknown argument: %s", rest[i])
		}
	}

	feat, err := fieldspec.NewFeature(name, definition)
	if err != nil {
		return err
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}
	return gen.AddFeature(cmd.Context(), scaffold.FeatureRequest{Feature: feat})
}

// newGenerator builds a Generator configured from .tsclean.yaml in the
// current directory when present.
func newGenerator() (*scaffold.Generator, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return scaffold.New(scaffold.WithConfig(cfg))
}
