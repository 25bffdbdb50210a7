package metrics_test

import (
	"testing"

	"github.com/RedDotz20/biometrics-sha256-hashing/metrics"

	"github.com/stretchr/testify/assert"
)

func appendAll(
	l *metrics.Labels,
	truth, predicted []int,
) {
	for i := range truth {
		l.Append(metrics.Label{
			Truth:     truth[i],
			Predicted: predicted[i],
		})
	}
}

func TestCompute_empty_accumulator(t *testing.T) {
	t.Parallel()

	var labels metrics.Labels

	assert.Zero(t, metrics.Compute(&labels))
	assert.Zero(t, labels.Len())
}

func TestCompute_perfect_classification(t *testing.T) {
	t.Parallel()

	var labels metrics.Labels

	appendAll(&labels,
		[]int{1, 0, 1, 0},
		[]int{1, 0, 1, 0},
	)

	got := metrics.Compute(&labels)

	assert.Equal(t, 1.0, got.Precision)
	assert.Equal(t, 1.0, got.Recall)
	assert.Equal(t, 1.0, got.F1)
	assert.Equal(t, 2, got.TruePositives)
	assert.Equal(t, 2, got.TrueNegatives)
}

func TestCompute_known_confusion_matrix(t *testing.T) {
	t.Parallel()

	var labels metrics.Labels

	// TP=2, FP=1, FN=1, TN=2
	appendAll(&labels,
		[]int{1, 1, 1, 0, 0, 0},
		[]int{1, 1, 0, 1, 0, 0},
	)

	got := metrics.Compute(&labels)

	assert.Equal(t, 2, got.TruePositives)
	assert.Equal(t, 1, got.FalsePositives)
	assert.Equal(t, 1, got.FalseNegatives)
	assert.Equal(t, 2, got.TrueNegatives)
	assert.InDelta(t, 2.0/3.0, got.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, got.Recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, got.F1, 1e-12)
}

func TestCompute_no_positive_predictions(t *testing.T) {
	t.Parallel()

	var labels metrics.Labels

	appendAll(&labels,
		[]int{1, 1},
		[]int{0, 0},
	)

	got := metrics.Compute(&labels)

	// Zero denominators degrade to zero, never NaN.
	assert.Zero(t, got.Precision)
	assert.Zero(t, got.Recall)
	assert.Zero(t, got.F1)
	assert.Equal(t, 2, got.FalseNegatives)
}

func TestCompute_no_positive_truth(t *testing.T) {
	t.Parallel()

	var labels metrics.Labels

	appendAll(&labels,
		[]int{0, 0},
		[]int{1, 0},
	)

	got := metrics.Compute(&labels)

	assert.Zero(t, got.Precision)
	assert.Zero(t, got.Recall)
	assert.Zero(t, got.F1)
	assert.Equal(t, 1, got.FalsePositives)
	assert.Equal(t, 1, got.TrueNegatives)
}

func TestLabels_Len_counts_appends(t *testing.T) {
	t.Parallel()

	var labels metrics.Labels

	labels.Append(metrics.Label{Truth: 1, Predicted: 1})
	labels.Append(metrics.Label{Truth: 0, Predicted: 0})

	assert.Equal(t, 2, labels.Len())
}
