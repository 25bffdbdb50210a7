package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/RedDotz20/biometrics-sha256-hashing/evaluate"
)

// Config holds the YAML run configuration. Zero values fall
// back to the defaults of the evaluation itself.
type Config struct {
	// Directory contains the sample images.
	Directory string `yaml:"directory"`

	// Extensions filters directory entries (leading dot
	// included, matched case-insensitively).
	Extensions []string `yaml:"extensions"`

	// Seed makes the tamper randomness deterministic when
	// set. Absent means entropy-seeded.
	Seed *uint64 `yaml:"seed"`

	// TextReport is an optional path for the rendered text
	// summary (empty: stdout only).
	TextReport string `yaml:"text_report"`

	// JSONReport is an optional path for the JSON report.
	JSONReport string `yaml:"json_report"`

	// SummaryFormat overrides the summary template. It may
	// reference {PRECISION}, {RECALL}, {F1}, {TP}, {FP},
	// {FN}, {TN}, {IMAGES}, {TRIALS} and {SKIPPED}.
	SummaryFormat string `yaml:"summary_format"`
}

// Default returns the configuration matching the historical
// behavior: the fingerprintDatasets directory and the four
// stock image extensions.
func Default() Config {
	return Config{
		Directory:  "fingerprintDatasets",
		Extensions: append([]string(nil), evaluate.DefaultExtensions...),
	}
}

// Load reads a YAML configuration file and merges it over the
// defaults. An empty path returns the defaults unchanged.
// Unknown fields are rejected.
func Load(path string) (Config, error) {
	const errCtx = "loading config"

	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := yaml.UnmarshalWithOptions(
		raw, &cfg, yaml.Strict(),
	); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.Directory == "" {
		cfg.Directory = Default().Directory
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = Default().Extensions
	}

	return cfg, nil
}
