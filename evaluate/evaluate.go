package evaluate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/RedDotz20/biometrics-sha256-hashing/digest"
	"github.com/RedDotz20/biometrics-sha256-hashing/metrics"
	"github.com/RedDotz20/biometrics-sha256-hashing/tamper"
)

// ErrEmptyFile marks a file whose content is empty; the trial
// is skipped rather than classified, so read failures never
// masquerade as correct negative classifications.
var ErrEmptyFile = errors.New("empty file")

// DefaultExtensions are the image extensions processed when
// the config does not override them.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Config holds the settings for one batch evaluation run.
type Config struct {
	// Directory contains the sample images.
	Directory string

	// Extensions filters directory entries, matched
	// case-insensitively against the filename suffix
	// (leading dot included). Empty means DefaultExtensions.
	Extensions []string

	// Rand is the randomness source used for tampering.
	Rand tamper.Source
}

// TrialRecord is the outcome of one (image, tamper-flag)
// trial, kept for the JSON report.
type TrialRecord struct {
	File      string `json:"file"`
	Tampered  bool   `json:"tampered"`
	Truth     int    `json:"truth"`
	Predicted int    `json:"predicted"`
}

// Outcome aggregates a full batch run: per-trial records in
// execution order, the count of images seen, the count of
// skipped trials, and the computed metrics.
type Outcome struct {
	Images  int            `json:"images"`
	Skipped int            `json:"skipped"`
	Trials  []TrialRecord  `json:"trials"`
	Metrics metrics.Result `json:"metrics"`
}

// Trial evaluates one image: read the file, digest it, apply a
// single-byte mutation when tampered is set, digest again, and
// compare. Predicted is 1 iff the digests match; Truth is 1
// iff no tampering was requested. Unreadable or empty files
// return an error so the caller can skip the trial.
func Trial(
	path string,
	tampered bool,
	rng tamper.Source,
) (metrics.Label, error) {
	const errCtx = "running trial"

	data, err := digest.File(path)
	if err != nil {
		return metrics.Label{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	if len(data) == 0 {
		return metrics.Label{}, fmt.Errorf(
			"%s: %s: %w", errCtx, path, ErrEmptyFile,
		)
	}

	original := digest.Sum(data)

	if tampered {
		data = tamper.FlipByte(rng, data)
	}

	lb := metrics.Label{Truth: 1}
	if tampered {
		lb.Truth = 0
	}

	if digest.Sum(data) == original {
		lb.Predicted = 1
	}

	return lb, nil
}

// Run executes the batch: it walks cfg.Directory in sorted
// order, runs an untampered and a tampered trial per matching
// image, and computes aggregate metrics over the collected
// labels. A missing directory or an empty label set degrades
// to a zero-valued Outcome instead of failing the run.
func Run(cfg Config) (Outcome, error) {
	const errCtx = "running evaluation"

	var out Outcome

	fi, err := os.Stat(cfg.Directory)
	if err != nil || !fi.IsDir() {
		slog.Error(
			"directory does not exist",
			"directory", cfg.Directory,
		)

		return out, nil
	}

	entries, err := os.ReadDir(cfg.Directory)
	if err != nil {
		return out, fmt.Errorf("%s: %w", errCtx, err)
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var labels metrics.Labels

	for _, entry := range entries {
		if entry.IsDir() ||
			!matchesExtension(entry.Name(), exts) {
			continue
		}

		out.Images++

		path := filepath.Join(cfg.Directory, entry.Name())

		for _, tampered := range []bool{false, true} {
			if tampered {
				slog.Info(
					"processing tampered image",
					"file", entry.Name(),
				)
			} else {
				slog.Info(
					"processing original image",
					"file", entry.Name(),
				)
			}

			lb, trialErr := Trial(path, tampered, cfg.Rand)
			if trialErr != nil {
				slog.Error(
					"skipping trial",
					"file", entry.Name(),
					"error", trialErr,
				)

				out.Skipped++

				continue
			}

			labels.Append(lb)

			out.Trials = append(out.Trials, TrialRecord{
				File:      entry.Name(),
				Tampered:  tampered,
				Truth:     lb.Truth,
				Predicted: lb.Predicted,
			})
		}
	}

	if labels.Len() == 0 {
		slog.Error(
			"no valid images processed",
			"directory", cfg.Directory,
		)

		return out, nil
	}

	out.Metrics = metrics.Compute(&labels)

	return out, nil
}

// matchesExtension reports whether name ends with one of the
// configured extensions, compared case-insensitively.
func matchesExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.EqualFold(filepath.Ext(name), ext) {
			return true
		}
	}

	return false
}
