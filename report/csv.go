package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/torrvision/relocperf/eval"
)

// CSVFileName returns the per-frame trace filename for a sequence evaluated
// under an experiment tag.
func CSVFileName(tag, sequence string) string {
	return tag + "_" + sequence + ".csv"
}

// ExportFrameCSV writes the per-frame trace of one sequence: a header row,
// then one row per frame holding the frame's position in the sequence and,
// for every pipeline stage, whether the frame matched plus the running match
// count and running match percentage up to and including that frame.
func ExportFrameCSV(w io.Writer, result *eval.SequenceResult) error {
	writer := csv.NewWriter(w)

	header := []string{"frame_idx", "frame_pct"}
	for _, stage := range eval.Stages() {
		name := string(stage)
		header = append(header, name+"_success", name+"_sum", name+"_pct")
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	sums := make(map[eval.Stage]int, len(eval.Stages()))
	for poseIdx := 0; poseIdx < result.PoseCount; poseIdx++ {
		row := []string{
			strconv.Itoa(poseIdx),
			formatPct(float64(poseIdx) / float64(result.PoseCount)),
		}
		for _, stage := range eval.Stages() {
			success := result.Stage(stage).Matches[poseIdx]
			if success {
				sums[stage]++
			}
			row = append(row,
				formatSuccess(success),
				strconv.Itoa(sums[stage]),
				// Running percentage over the frames seen so far.
				formatPct(float64(sums[stage])/float64(poseIdx+1)))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportAllFrameCSVs writes one per-frame trace per sequence into dir, named
// after the experiment tag and the sequence.
func ExportAllFrameCSVs(dir, tag string, sequences []string, results map[string]*eval.SequenceResult) error {
	for _, sequence := range sequences {
		result := results[sequence]
		if result == nil {
			continue
		}
		path := filepath.Join(dir, CSVFileName(tag, sequence))
		if err := exportFrameCSVFile(path, result); err != nil {
			return errors.Wrapf(err, "cannot export trace for sequence %q", sequence)
		}
	}
	return nil
}

func exportFrameCSVFile(path string, result *eval.SequenceResult) error {
	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer goutils.UncheckedErrorFunc(f.Close)
	return ExportFrameCSV(f, result)
}

func formatSuccess(success bool) string {
	if success {
		return "1"
	}
	return "0"
}

func formatPct(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
