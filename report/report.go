package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"

	"github.com/RedDotz20/biometrics-sha256-hashing/evaluate"
)

// DefaultSummaryFormat reproduces the historical three-line
// metrics output.
const DefaultSummaryFormat = "\n" +
	"Average Precision: {PRECISION}\n" +
	"Average Recall: {RECALL}\n" +
	"Average F1-Score: {F1}\n"

// Vars maps an outcome to the template substitution variables
// usable in summary formats.
func Vars(out evaluate.Outcome) map[string]interface{} {
	m := out.Metrics

	return map[string]interface{}{
		"PRECISION": formatFloat(m.Precision),
		"RECALL":    formatFloat(m.Recall),
		"F1":        formatFloat(m.F1),
		"TP":        strconv.Itoa(m.TruePositives),
		"FP":        strconv.Itoa(m.FalsePositives),
		"FN":        strconv.Itoa(m.FalseNegatives),
		"TN":        strconv.Itoa(m.TrueNegatives),
		"IMAGES":    strconv.Itoa(out.Images),
		"TRIALS":    strconv.Itoa(len(out.Trials)),
		"SKIPPED":   strconv.Itoa(out.Skipped),
	}
}

// Summary renders the outcome through the given format,
// substituting {VAR} placeholders. An empty format uses
// DefaultSummaryFormat.
func Summary(out evaluate.Outcome, format string) string {
	if format == "" {
		format = DefaultSummaryFormat
	}

	return fasttemplate.ExecuteStringStd(
		format, "{", "}", Vars(out),
	)
}

// WriteSummary writes the rendered summary to w. With the
// default format the summary is suppressed when every metric
// is zero, matching the historical behavior; an explicit
// format is always rendered.
func WriteSummary(
	w io.Writer,
	out evaluate.Outcome,
	format string,
) error {
	const errCtx = "writing summary"

	m := out.Metrics

	if format == "" &&
		m.Precision == 0 && m.Recall == 0 && m.F1 == 0 {
		return nil
	}

	if _, err := io.WriteString(
		w, Summary(out, format),
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// WriteJSON encodes the full outcome, per-trial records
// included, as indented JSON.
func WriteJSON(w io.Writer, out evaluate.Outcome) error {
	const errCtx = "writing json report"

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// SaveJSON writes the JSON report to path.
func SaveJSON(path string, out evaluate.Outcome) (retErr error) {
	const errCtx = "saving json report"

	fi, err := os.Create(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if err := WriteJSON(fi, out); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// formatFloat renders a metric with the shortest
// representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
