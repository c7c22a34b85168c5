package eval

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/edaniels/golog"

	"github.com/torrvision/relocperf/dataset"
	"github.com/torrvision/relocperf/utils"
)

// Config describes one evaluation run.
type Config struct {
	// DatasetDir is the dataset root, holding one subdirectory per sequence.
	DatasetDir string
	// ResultsDir is the root of the relocalizer output folders.
	ResultsDir string
	// Tag is the experiment tag the output folders are named with.
	Tag string
	// UseValidation selects the validation split instead of the test split.
	UseValidation bool
	// Thresholds is the pose match criterion.
	Thresholds MatchThresholds
}

// GroundTruthDir returns the ground truth folder of a sequence, which is its
// test or validation split depending on the config.
func (c Config) GroundTruthDir(sequence string) string {
	split := dataset.TestFolderName
	if c.UseValidation {
		split = dataset.ValidationFolderName
	}
	return filepath.Join(c.DatasetDir, sequence, split)
}

// ResultDir returns the relocalizer output folder of a sequence.
func (c Config) ResultDir(sequence string) string {
	return filepath.Join(c.ResultsDir, c.Tag+"_"+sequence)
}

// EvaluateDataset discovers the sequences under the dataset root and
// evaluates each of them, in parallel; the per-sequence results are
// independent so the only synchronization is the final join. A sequence that
// fails to evaluate is logged and recorded with an empty result rather than
// stopping the rest of the run. The returned names are sorted and cover every
// discovered sequence.
func EvaluateDataset(ctx context.Context, config Config, logger golog.Logger) ([]string, map[string]*SequenceResult, error) {
	sequences, err := dataset.FindSequenceNames(config.DatasetDir)
	if err != nil {
		return nil, nil, err
	}

	evaluator := NewSequenceEvaluator(config.Thresholds)

	results := make(map[string]*SequenceResult, len(sequences))
	var resultsMu sync.Mutex

	evaluations := make([]utils.SimpleFunc, 0, len(sequences))
	for _, sequence := range sequences {
		sequence := sequence
		gtDir := config.GroundTruthDir(sequence)
		resultDir := config.ResultDir(sequence)
		evaluations = append(evaluations, func(ctx context.Context) error {
			logger.Infof("processing sequence %s in: %s - %s", sequence, gtDir, resultDir)
			seqResult, err := evaluator.EvaluateSequence(gtDir, resultDir)
			if err != nil {
				logger.Warnf("sequence %s has not been evaluated: %s", sequence, err)
				seqResult = NewSequenceResult()
			}
			resultsMu.Lock()
			results[sequence] = seqResult
			resultsMu.Unlock()
			return nil
		})
	}

	if _, err := utils.RunInParallel(ctx, evaluations); err != nil {
		return nil, nil, err
	}
	return sequences, results, nil
}
