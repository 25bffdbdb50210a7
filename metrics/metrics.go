package metrics

// Label is the ground-truth/predicted outcome of one trial.
// Truth is 1 when a hash match is expected (untampered case),
// 0 when a mismatch is expected. Predicted is 1 when the
// digests matched, 0 when they differed.
type Label struct {
	Truth     int `json:"truth"`
	Predicted int `json:"predicted"`
}

// Labels accumulates trial outcomes as two index-aligned
// ordered sequences, in trial execution order.
type Labels struct {
	truth     []int
	predicted []int
}

// Append records one trial outcome.
func (l *Labels) Append(lb Label) {
	l.truth = append(l.truth, lb.Truth)
	l.predicted = append(l.predicted, lb.Predicted)
}

// Len returns the number of recorded trials.
func (l *Labels) Len() int {
	return len(l.truth)
}

// Result holds the aggregate classification metrics together
// with the confusion counts they were derived from.
type Result struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`

	TruePositives  int `json:"true_positives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
	TrueNegatives  int `json:"true_negatives"`
}

// Compute derives precision, recall and F1 over all recorded
// labels, with predicted=1 as the positive class. Any zero
// denominator yields 0 for the affected metric. An empty
// accumulator returns the zero Result.
func Compute(l *Labels) Result {
	var res Result

	for i := range l.truth {
		switch {
		case l.truth[i] == 1 && l.predicted[i] == 1:
			res.TruePositives++
		case l.truth[i] == 0 && l.predicted[i] == 1:
			res.FalsePositives++
		case l.truth[i] == 1 && l.predicted[i] == 0:
			res.FalseNegatives++
		default:
			res.TrueNegatives++
		}
	}

	if tpfp := res.TruePositives + res.FalsePositives; tpfp > 0 {
		res.Precision = float64(res.TruePositives) / float64(tpfp)
	}

	if tpfn := res.TruePositives + res.FalseNegatives; tpfn > 0 {
		res.Recall = float64(res.TruePositives) / float64(tpfn)
	}

	if pr := res.Precision + res.Recall; pr > 0 {
		res.F1 = 2 * res.Precision * res.Recall / pr
	}

	return res
}
