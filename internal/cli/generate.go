package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cartodocs/tagdoc/internal/catalog"
	"github.com/cartodocs/tagdoc/internal/config"
	"github.com/cartodocs/tagdoc/internal/logging"
	"github.com/cartodocs/tagdoc/internal/registry"
	"github.com/cartodocs/tagdoc/internal/render"
	"github.com/cartodocs/tagdoc/pkg/tagdoc"

	// Built-in tag definitions register themselves into the default
	// registry at init time.
	_ "github.com/cartodocs/tagdoc/internal/tags"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate tag documentation",
	Long: `Build the tag catalog for a namespace and render it.

Settings resolve in order: built-in defaults, tagdoc.yaml in the project
directory, TAGDOC_* environment variables (a .env file is honored), then
flags. Later sources win.

Examples:
  # HTML catalog of the default namespace, to stdout
  tagdoc generate

  # JSON catalog of one sub-namespace, to a file
  tagdoc generate --namespace osm/roads --format json --output roads.json

  # Using tagdoc.yaml from another project directory
  tagdoc generate --project ../atlas-docs`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// generateOptions are the resolved settings for one generate run.
type generateOptions struct {
	namespace string
	format    string
	output    string
	title     string
}

var generateFlags struct {
	generateOptions
	project string
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.namespace, "namespace", "n", "", "Namespace to scan for tag definitions")
	generateCmd.Flags().StringVarP(&generateFlags.format, "format", "f", "", "Output format: html, json or yaml")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringVar(&generateFlags.title, "title", "", "Document title")
	generateCmd.Flags().StringVar(&generateFlags.project, "project", ".", "Project directory holding tagdoc.yaml")
}

func resetGenerateFlags() {
	generateFlags.generateOptions = generateOptions{}
	generateFlags.project = "."
}

// resolveGenerateOptions layers defaults, tagdoc.yaml, environment and
// flags. Later sources win; empty values never override.
func resolveGenerateOptions(flagOpts generateOptions, projectDir string) (generateOptions, error) {
	opts := generateOptions{
		namespace: tagdoc.DefaultNamespace,
		format:    string(render.FormatHTML),
	}

	cfg, err := config.Load(projectDir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return generateOptions{}, fmt.Errorf("%w: loading %s: %v", tagdoc.ErrInvalidConfig, config.ConfigFileName, err)
	}
	if cfg != nil {
		opts.apply(generateOptions{
			namespace: cfg.Namespace,
			format:    cfg.Format,
			output:    cfg.Output,
			title:     cfg.Title,
		})
	}

	opts.apply(generateOptions{
		namespace: os.Getenv("TAGDOC_NAMESPACE"),
		format:    os.Getenv("TAGDOC_FORMAT"),
		output:    os.Getenv("TAGDOC_OUTPUT"),
		title:     os.Getenv("TAGDOC_TITLE"),
	})

	opts.apply(flagOpts)
	return opts, nil
}

func (o *generateOptions) apply(layer generateOptions) {
	if layer.namespace != "" {
		o.namespace = layer.namespace
	}
	if layer.format != "" {
		o.format = layer.format
	}
	if layer.output != "" {
		o.output = layer.output
	}
	if layer.title != "" {
		o.title = layer.title
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	return generateCatalog(cmd.OutOrStdout(), logger)
}

// generateCatalog resolves options, builds the catalog and renders it.
// Documentation is rendered to memory first and only published once
// rendering succeeded, so a failed run never truncates an existing
// catalog file.
func generateCatalog(stdout io.Writer, logger tagdoc.Logger) error {
	// Env-file overrides, same layering as the environment itself.
	_ = godotenv.Load()

	opts, err := resolveGenerateOptions(generateFlags.generateOptions, generateFlags.project)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cat, err := catalog.NewForNamespace(registry.Default(), opts.namespace)
	if err != nil {
		return err
	}
	logger.Verbose("catalog %s: %d tags under %q", cat.ID(), cat.Len(), cat.Namespace())

	var buf bytes.Buffer
	if err := render.Render(&buf, cat, format, opts.title); err != nil {
		return err
	}

	dest := "stdout"
	if opts.output != "" && opts.output != "-" {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		dest = opts.output
	} else if _, err := buf.WriteTo(stdout); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	logger.Info("wrote %d tags (%s) to %s", cat.Len(), format, dest)
	return nil
}
