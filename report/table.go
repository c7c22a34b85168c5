// Package report renders evaluation results: the summary table of a run and
// the optional per-frame CSV traces. It consumes the eval package's results
// and knows nothing about how they were produced.
package report

import (
	"fmt"
	"io"

	"github.com/torrvision/relocperf/eval"
)

const (
	tableHeaderFormat = "%-15s%8s%8s%8s%8s\n"
	tableRowFormat    = "%-15s%8d%8.2f%8.2f%8.2f\n"
)

// WriteTable renders the per-sequence results followed by the two summary
// rows: the unweighted per-sequence average and the per-frame weighted
// average. Sequences are printed in the order given; one the evaluation
// skipped gets a zero row.
func WriteTable(w io.Writer, sequences []string, results map[string]*eval.SequenceResult, summary eval.Summary) error {
	if _, err := fmt.Fprintf(w, tableHeaderFormat, "Sequence", "Poses", "Reloc", "ICP", "Final"); err != nil {
		return err
	}

	for _, sequence := range sequences {
		result := results[sequence]
		if result == nil {
			result = eval.NewSequenceResult()
		}
		_, err := fmt.Fprintf(w, tableRowFormat, sequence, result.PoseCount,
			result.MatchPercent(eval.StageReloc),
			result.MatchPercent(eval.StageICP),
			result.MatchPercent(eval.StageFinal))
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, tableRowFormat, "Average", summary.SequenceCount,
		summary.Stage(eval.StageReloc).AveragePercent,
		summary.Stage(eval.StageICP).AveragePercent,
		summary.Stage(eval.StageFinal).AveragePercent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, tableRowFormat, "Average (W)", summary.PoseCount,
		summary.Stage(eval.StageReloc).WeightedAveragePercent,
		summary.Stage(eval.StageICP).WeightedAveragePercent,
		summary.Stage(eval.StageFinal).WeightedAveragePercent)
	return err
}
