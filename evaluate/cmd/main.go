// Package main provides the evaluation CLI that hashes every
// image in a dataset directory, replays each one with a
// single tampered byte, and reports precision, recall and F1
// for SHA256-based tamper detection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/RedDotz20/biometrics-sha256-hashing/config"
	"github.com/RedDotz20/biometrics-sha256-hashing/evaluate"
	"github.com/RedDotz20/biometrics-sha256-hashing/report"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "evaluating"

	var extensions arrayFlags

	var (
		configPath string
		dir        string
		seed       uint64
		jsonOut    string
		textOut    string
	)

	flag.StringVar(
		&configPath, "config", "",
		"path to YAML run configuration",
	)

	flag.StringVar(
		&dir, "dir", "",
		"dataset directory (default: fingerprintDatasets)",
	)

	flag.Uint64Var(
		&seed, "seed", 0,
		"random seed for deterministic tampering",
	)

	flag.Var(
		&extensions, "ext",
		"image extension to process, with dot (repeatable)",
	)

	flag.StringVar(
		&jsonOut, "json-out", "",
		"output path for the JSON report",
	)

	flag.StringVar(
		&textOut, "text-out", "",
		"output path for the text summary",
	)

	flag.Parse()

	seedSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	// Flags override config file values.
	if dir != "" {
		cfg.Directory = dir
	}

	if len(extensions) > 0 {
		cfg.Extensions = extensions
	}

	if seedSet {
		cfg.Seed = &seed
	}

	if jsonOut != "" {
		cfg.JSONReport = jsonOut
	}

	if textOut != "" {
		cfg.TextReport = textOut
	}

	rng := newRand(cfg.Seed)

	outcome, err := evaluate.Run(evaluate.Config{
		Directory:  cfg.Directory,
		Extensions: cfg.Extensions,
		Rand:       rng,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.JSONReport != "" {
		if err := report.SaveJSON(
			cfg.JSONReport, outcome,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if cfg.TextReport != "" {
		fi, err := os.Create( //nolint:gosec // path from CLI flag
			cfg.TextReport,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: creating text report: %w",
				errCtx, err,
			)
		}

		writeErr := report.WriteSummary(
			fi, outcome, cfg.SummaryFormat,
		)

		if closeErr := fi.Close(); writeErr == nil {
			writeErr = closeErr
		}

		if writeErr != nil {
			return fmt.Errorf("%s: %w", errCtx, writeErr)
		}
	}

	if err := report.WriteSummary(
		os.Stdout, outcome, cfg.SummaryFormat,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// newRand builds the tamper randomness source, deterministic
// when a seed is configured.
func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
