// Package eval implements the relocalization accuracy evaluation: the
// 7-scenes pose match criterion, the per-sequence frame walk, and the
// aggregation of per-sequence results into dataset-wide statistics.
package eval

import (
	"github.com/torrvision/relocperf/spatialmath"
	"github.com/torrvision/relocperf/utils"
)

// MatchThresholds bounds how far an estimated pose may deviate from ground
// truth while still counting as a successful relocalization.
type MatchThresholds struct {
	// MaxTranslationError is in meters.
	MaxTranslationError float64
	// MaxAngleError is in radians.
	MaxAngleError float64
}

// SevenScenesThresholds returns the standard 7-scenes accuracy criterion:
// translation within 5cm of ground truth and rotation within 5 degrees.
func SevenScenesThresholds() MatchThresholds {
	return MatchThresholds{
		MaxTranslationError: 0.05,
		MaxAngleError:       utils.DegToRad(5),
	}
}

// PoseMatches reports whether a candidate pose is close enough to the ground
// truth pose. Both bounds must hold; the comparisons are non-strict, so a
// pose exactly on a threshold still matches.
func (th MatchThresholds) PoseMatches(gtPose, candidate *spatialmath.RigidTransform) bool {
	translationError := gtPose.Translation().Sub(candidate.Translation()).Norm()
	angleError := spatialmath.AngularSeparation(gtPose.RotationQuaternion(), candidate.RotationQuaternion())
	return translationError <= th.MaxTranslationError && angleError <= th.MaxAngleError
}
