package eval

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/torrvision/relocperf/dataset"
	"github.com/torrvision/relocperf/spatialmath"
)

// Stage identifies one step of the relocalization pipeline.
type Stage string

const (
	// StageReloc is the raw relocalizer output.
	StageReloc = Stage("reloc")
	// StageICP is the relocalizer output refined with ICP.
	StageICP = Stage("icp")
	// StageFinal is the refined output after the verification step.
	StageFinal = Stage("final")
)

// Stages returns the pipeline stages in order.
func Stages() []Stage {
	return []Stage{StageReloc, StageICP, StageFinal}
}

func (s Stage) poseFileTemplate() string {
	switch s {
	case StageReloc:
		return dataset.RelocPoseTemplate
	case StageICP:
		return dataset.ICPPoseTemplate
	case StageFinal:
		return dataset.FinalPoseTemplate
	default:
		panic(fmt.Sprintf("unknown stage %q", s))
	}
}

// StageResult accumulates the outcomes of one pipeline stage over a sequence.
type StageResult struct {
	// MatchCount is the number of frames whose pose matched ground truth.
	MatchCount int
	// Matches records the per-frame outcomes, in frame order.
	Matches []bool
}

func (r *StageResult) record(matched bool) {
	r.Matches = append(r.Matches, matched)
	if matched {
		r.MatchCount++
	}
}

// SequenceResult holds the per-stage outcomes of one sequence. It is built up
// frame by frame during evaluation and read-only afterwards; each stage's
// Matches slice always has PoseCount entries.
type SequenceResult struct {
	// PoseCount is the number of ground truth poses found.
	PoseCount int

	stages map[Stage]*StageResult
}

// NewSequenceResult returns an empty result covering all pipeline stages.
func NewSequenceResult() *SequenceResult {
	stages := make(map[Stage]*StageResult, len(Stages()))
	for _, stage := range Stages() {
		stages[stage] = &StageResult{}
	}
	return &SequenceResult{stages: stages}
}

// Stage returns the accumulated result of one pipeline stage.
func (r *SequenceResult) Stage(stage Stage) *StageResult {
	return r.stages[stage]
}

// AddFrame appends one frame's per-stage outcomes; a stage missing from the
// map counts as no match.
func (r *SequenceResult) AddFrame(matches map[Stage]bool) {
	for _, stage := range Stages() {
		r.stages[stage].record(matches[stage])
	}
	r.PoseCount++
}

// MatchFraction returns the fraction of frames matched at a stage, in [0, 1].
// An empty sequence has no information, so the fraction is zero rather than
// NaN.
func (r *SequenceResult) MatchFraction(stage Stage) float64 {
	if r.PoseCount == 0 {
		return 0
	}
	return float64(r.stages[stage].MatchCount) / float64(r.PoseCount)
}

// MatchPercent is MatchFraction scaled to a percentage.
func (r *SequenceResult) MatchPercent(stage Stage) float64 {
	return r.MatchFraction(stage) * 100
}

// SequenceEvaluator walks the frames of one sequence in index order, judging
// each stage's pose against the frame's ground truth pose.
type SequenceEvaluator struct {
	thresholds MatchThresholds

	// Injectable for tests that want to run without a real filesystem.
	fileExists func(path string) bool
	readPose   func(path string) (*spatialmath.RigidTransform, error)
}

// NewSequenceEvaluator returns an evaluator using the given match criterion.
func NewSequenceEvaluator(thresholds MatchThresholds) *SequenceEvaluator {
	return &SequenceEvaluator{
		thresholds: thresholds,
		fileExists: dataset.FileExists,
		readPose:   dataset.ReadPose,
	}
}

// EvaluateSequence pairs the ground truth poses in gtDir with the staged
// result poses in resultDir, frame by frame, starting at index zero. The
// first missing ground truth file ends the sequence: a gap in the indices
// truncates it, and a gtDir with no frame zero at all yields an empty result
// rather than an error. A ground truth file that exists but cannot be read is
// a corrupt dataset and fails the sequence; a missing result file is the
// expected "stage produced nothing" outcome and simply counts as no match.
func (e *SequenceEvaluator) EvaluateSequence(gtDir, resultDir string) (*SequenceResult, error) {
	result := NewSequenceResult()

	gtPaths := dataset.NewSequentialPathGenerator(gtDir)
	resultPaths := dataset.NewSequentialPathGenerator(resultDir)

	for {
		gtPath := gtPaths.Path(dataset.GroundTruthPoseTemplate)
		if !e.fileExists(gtPath) {
			// Ran off the end of the sequence.
			return result, nil
		}

		gtPose, err := e.readPose(gtPath)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d ground truth", gtPaths.Index())
		}

		frameMatches := make(map[Stage]bool, len(Stages()))
		for _, stage := range Stages() {
			matched, err := e.poseFileMatches(gtPose, resultPaths.Path(stage.poseFileTemplate()))
			if err != nil {
				return nil, errors.Wrapf(err, "frame %d %s", resultPaths.Index(), stage)
			}
			frameMatches[stage] = matched
		}
		result.AddFrame(frameMatches)

		gtPaths.Increment()
		resultPaths.Increment()
	}
}

// poseFileMatches distinguishes an absent result file, which is a normal no
// match outcome, from a present but unreadable one, which is propagated.
func (e *SequenceEvaluator) poseFileMatches(gtPose *spatialmath.RigidTransform, path string) (bool, error) {
	if !e.fileExists(path) {
		return false, nil
	}
	candidate, err := e.readPose(path)
	if err != nil {
		return false, err
	}
	return e.thresholds.PoseMatches(gtPose, candidate), nil
}
