package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/RedDotz20/biometrics-sha256-hashing/evaluate"
	"github.com/RedDotz20/biometrics-sha256-hashing/metrics"
	"github.com/RedDotz20/biometrics-sha256-hashing/report"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutcome() evaluate.Outcome {
	return evaluate.Outcome{
		Images: 1,
		Trials: []evaluate.TrialRecord{
			{File: "a.png", Tampered: false, Truth: 1, Predicted: 1},
			{File: "a.png", Tampered: true, Truth: 0, Predicted: 0},
		},
		Metrics: metrics.Result{
			Precision:     1,
			Recall:        1,
			F1:            1,
			TruePositives: 1,
			TrueNegatives: 1,
		},
	}
}

func TestSummary_default_format(t *testing.T) {
	t.Parallel()

	got := report.Summary(sampleOutcome(), "")

	assert.Equal(
		t,
		"\nAverage Precision: 1\n"+
			"Average Recall: 1\n"+
			"Average F1-Score: 1\n",
		got,
	)
}

func TestSummary_custom_format(t *testing.T) {
	t.Parallel()

	got := report.Summary(
		sampleOutcome(),
		"{TP}/{FP}/{FN}/{TN} over {TRIALS} trials"+
			" ({SKIPPED} skipped)",
	)

	assert.Equal(t, "1/0/0/1 over 2 trials (0 skipped)", got)
}

func TestSummary_fractional_metrics(t *testing.T) {
	t.Parallel()

	out := evaluate.Outcome{
		Metrics: metrics.Result{Precision: 2.0 / 3.0},
	}

	got := report.Summary(out, "{PRECISION}")

	assert.Equal(t, "0.6666666666666666", got)
}

func TestWriteSummary_suppressed_when_all_zero(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.WriteSummary(&buf, evaluate.Outcome{}, "")

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteSummary_explicit_format_always_renders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.WriteSummary(
		&buf, evaluate.Outcome{}, "skipped: {SKIPPED}",
	)

	require.NoError(t, err)
	assert.Equal(t, "skipped: 0", buf.String())
}

func TestWriteJSON_round_trip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteJSON(&buf, sampleOutcome()))

	var got evaluate.Outcome

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleOutcome(), got)
}

func TestSaveJSON_writes_file(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, report.SaveJSON(pa, sampleOutcome()))

	raw, err := os.ReadFile(pa)
	require.NoError(t, err)

	var got evaluate.Outcome

	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 1, got.Metrics.TruePositives)
	assert.Len(t, got.Trials, 2)
}
