package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/torrvision/relocperf/spatialmath"
)

// MissingFileError indicates that a path expected to hold a pose does not
// refer to a regular file. Callers that consider absence a normal outcome
// check for it with errors.As.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ReadPose reads a rigid pose stored as 16 whitespace-separated values in
// row-major order. A path not referring to a regular file yields a
// *MissingFileError; a file with the wrong shape or non-numeric content
// yields a parse error. The matrix is trusted as read, with no orthonormality
// check.
func ReadPose(path string) (*spatialmath.RigidTransform, error) {
	if !FileExists(path) {
		return nil, &MissingFileError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read pose file %q", path)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 16 {
		return nil, errors.Errorf("pose file %q holds %d values; expected 16", path, len(fields))
	}

	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "pose file %q has a malformed value", path)
		}
		values = append(values, value)
	}

	return spatialmath.NewRigidTransformFromRowMajor(values)
}
