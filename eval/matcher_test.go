package eval

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/torrvision/relocperf/spatialmath"
	"github.com/torrvision/relocperf/utils"
)

// testPose builds a pose rotated by theta radians about the x axis and
// translated by (tx, ty, tz).
func testPose(t *testing.T, theta, tx, ty, tz float64) *spatialmath.RigidTransform {
	t.Helper()
	c, s := math.Cos(theta), math.Sin(theta)
	pose, err := spatialmath.NewRigidTransformFromRowMajor([]float64{
		1, 0, 0, tx,
		0, c, -s, ty,
		0, s, c, tz,
		0, 0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	return pose
}

func TestSevenScenesThresholds(t *testing.T) {
	th := SevenScenesThresholds()
	test.That(t, th.MaxTranslationError, test.ShouldEqual, 0.05)
	test.That(t, th.MaxAngleError, test.ShouldAlmostEqual, 5*math.Pi/180)
}

func TestPoseMatches(t *testing.T) {
	th := SevenScenesThresholds()
	gt := testPose(t, 0.3, 0, 2, 3)

	t.Run("identical poses", func(t *testing.T) {
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3, 0, 2, 3)), test.ShouldBeTrue)
	})

	t.Run("translation boundary", func(t *testing.T) {
		// Exactly on the threshold still matches; past it does not.
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3, 0.05, 2, 3)), test.ShouldBeTrue)
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3, 0.0501, 2, 3)), test.ShouldBeFalse)
	})

	t.Run("rotation boundary", func(t *testing.T) {
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3+utils.DegToRad(4.999), 0, 2, 3)), test.ShouldBeTrue)
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3+utils.DegToRad(5.01), 0, 2, 3)), test.ShouldBeFalse)
	})

	t.Run("no partial credit", func(t *testing.T) {
		// Good rotation with bad translation, and vice versa.
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3, 0.2, 2, 3)), test.ShouldBeFalse)
		test.That(t, th.PoseMatches(gt, testPose(t, 0.3+utils.DegToRad(20), 0, 2, 3)), test.ShouldBeFalse)
	})

	t.Run("custom thresholds", func(t *testing.T) {
		loose := MatchThresholds{MaxTranslationError: 1, MaxAngleError: utils.DegToRad(45)}
		candidate := testPose(t, 0.3+utils.DegToRad(20), 0.5, 2, 3)
		test.That(t, th.PoseMatches(gt, candidate), test.ShouldBeFalse)
		test.That(t, loose.PoseMatches(gt, candidate), test.ShouldBeTrue)
	})
}
