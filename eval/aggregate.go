package eval

import (
	"gonum.org/v1/gonum/stat"
)

// StageSummary holds the dataset-wide statistics of one pipeline stage.
type StageSummary struct {
	// AveragePercent is the unweighted mean of the per-sequence match
	// percentages; every sequence counts the same regardless of length.
	AveragePercent float64
	// WeightedAveragePercent is the per-frame mean, total matching frames
	// over total frames; long sequences count for more.
	WeightedAveragePercent float64
}

// Summary holds the dataset-wide statistics of an evaluation run. It is a
// pure function of the per-sequence results and can be recomputed at will.
type Summary struct {
	// SequenceCount is the number of sequences that contributed, i.e. those
	// with at least one ground truth pose.
	SequenceCount int
	// PoseCount is the total number of ground truth poses across those
	// sequences.
	PoseCount int

	stages map[Stage]StageSummary
}

// Stage returns the summary statistics of one pipeline stage.
func (s Summary) Stage(stage Stage) StageSummary {
	return s.stages[stage]
}

// Summarize folds per-sequence results into dataset-wide statistics.
// Sequences with no poses carry no accuracy information: they are excluded
// from the unweighted mean's denominator and contribute nothing to either
// side of the weighted ratio.
func Summarize(results map[string]*SequenceResult) Summary {
	summary := Summary{stages: make(map[Stage]StageSummary, len(Stages()))}

	fractions := make(map[Stage][]float64, len(Stages()))
	matchTotals := make(map[Stage]int, len(Stages()))
	for _, result := range results {
		if result == nil || result.PoseCount == 0 {
			continue
		}
		summary.SequenceCount++
		summary.PoseCount += result.PoseCount
		for _, stage := range Stages() {
			fractions[stage] = append(fractions[stage], result.MatchFraction(stage))
			matchTotals[stage] += result.Stage(stage).MatchCount
		}
	}

	for _, stage := range Stages() {
		var stageSummary StageSummary
		if summary.SequenceCount > 0 {
			stageSummary.AveragePercent = stat.Mean(fractions[stage], nil) * 100
			stageSummary.WeightedAveragePercent = float64(matchTotals[stage]) / float64(summary.PoseCount) * 100
		}
		summary.stages[stage] = stageSummary
	}
	return summary
}
