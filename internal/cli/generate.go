package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/fielddoc/pkg/docs"
	"github.com/example/fielddoc/pkg/extension"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate field-enriched documentation for a source directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&config)
		},
	}

	cmd.Flags().StringVar(&config.SourcePath, "source", ".", "Directory containing Go source code to document")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.Format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringSliceVar(&config.Only, "only", nil, "Restrict processing to these fully-qualified class paths")
	cmd.Flags().BoolVar(&config.IncludePrivate, "include-private", false, "Document private (underscore or lowercase) attributes")
	cmd.Flags().BoolVar(&config.IncludeInherited, "include-inherited", false, "Document fields promoted from embedded types")
	cmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .fielddoc.yml config file")

	return cmd
}

// GenerateConfig holds configuration for documentation generation.
type GenerateConfig struct {
	SourcePath       string `validate:"required"`
	OutputPath       string `validate:"required"`
	Format           string `validate:"oneof=yaml json yml"`
	Only             []string
	IncludePrivate   bool
	IncludeInherited bool
	Verbose          bool
	ConfigPath       string
}

var validate = validator.New()

// Generate runs a documentation pass based on the provided configuration.
func Generate(config *GenerateConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ext := extension.New(extension.Options{
		ObjectPaths:      config.Only,
		IncludePrivate:   config.IncludePrivate,
		IncludeInherited: config.IncludeInherited,
		Logger:           newLogger(config.Verbose),
	})

	model, err := docs.NewEngine(ext).Document(config.SourcePath)
	if err != nil {
		return err
	}

	return writeOutput(model, config)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Docs struct {
			Source           string   `yaml:"source"`
			Output           string   `yaml:"output"`
			Format           string   `yaml:"format"`
			Only             []string `yaml:"only"`
			IncludePrivate   bool     `yaml:"include_private"`
			IncludeInherited bool     `yaml:"include_inherited"`
		} `yaml:"docs"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.SourcePath == "." && cfg.Docs.Source != "" {
		config.SourcePath = cfg.Docs.Source
	}
	if config.OutputPath == "-" && cfg.Docs.Output != "" {
		config.OutputPath = cfg.Docs.Output
	}
	if config.Format == "yaml" && cfg.Docs.Format != "" {
		config.Format = cfg.Docs.Format
	}
	if len(config.Only) == 0 {
		config.Only = cfg.Docs.Only
	}
	if !config.IncludePrivate {
		config.IncludePrivate = cfg.Docs.IncludePrivate
	}
	if !config.IncludeInherited {
		config.IncludeInherited = cfg.Docs.IncludeInherited
	}

	return nil
}

func writeOutput(model *docs.Model, config *GenerateConfig) error {
	if config.OutputPath == "-" {
		return writeModel(os.Stdout, config.Format, model)
	}

	outDir := filepath.Dir(config.OutputPath)
	if fi, err := os.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist — please create it first", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	f, err := os.Create(config.OutputPath) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return writeModel(f, config.Format, model)
}

func writeModel(w *os.File, format string, model *docs.Model) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	case "yaml", "yml":
		data, err := yaml.Marshal(model)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
