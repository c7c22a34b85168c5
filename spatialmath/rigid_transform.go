// Package spatialmath defines the rigid-transform mathematics used to compare camera poses.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RigidTransform is a rigid transformation of 3D space in homogeneous form: a
// 4x4 matrix whose top-left 3x3 block is an orthonormal rotation and whose
// top-right 3x1 block is a translation. It is immutable once built.
type RigidTransform struct {
	mat mgl64.Mat4
}

// NewRigidTransform returns the identity transform.
func NewRigidTransform() *RigidTransform {
	return &RigidTransform{mat: mgl64.Ident4()}
}

// NewRigidTransformFromRowMajor builds a transform from 16 values in
// row-major order, the layout pose files are stored in.
func NewRigidTransformFromRowMajor(values []float64) (*RigidTransform, error) {
	if len(values) != 16 {
		return nil, errors.Errorf("expected 16 matrix values but got %d", len(values))
	}
	m := mgl64.Ident4()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m.Set(row, col, values[row*4+col])
		}
	}
	return &RigidTransform{mat: m}, nil
}

// At returns the matrix entry at the given row and column.
func (rt *RigidTransform) At(row, col int) float64 {
	return rt.mat.At(row, col)
}

// Translation returns the translation component.
func (rt *RigidTransform) Translation() r3.Vector {
	return r3.Vector{X: rt.mat.At(0, 3), Y: rt.mat.At(1, 3), Z: rt.mat.At(2, 3)}
}

// RotationQuaternion returns the rotation component as a unit quaternion.
func (rt *RigidTransform) RotationQuaternion() quat.Number {
	m := rt.mat
	m.SetCol(3, mgl64.Vec4{0, 0, 0, 1})
	m.SetRow(3, mgl64.Vec4{0, 0, 0, 1})
	qRot := mgl64.Mat4ToQuat(m)
	return quat.Number{Real: qRot.W, Imag: qRot.X(), Jmag: qRot.Y(), Kmag: qRot.Z()}
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// AngularSeparation returns the angle of the rotation mapping q1 to q2, i.e.
// the angle component of the angle-axis form of q2 * q1^-1, computed in the
// same way the C++ Eigen library does. The result is in [0, π] and is
// symmetric in the two arguments; atan2 keeps it well behaved near both ends
// of that range.
func AngularSeparation(q1, q2 quat.Number) float64 {
	rel := quat.Mul(q2, quat.Conj(q1))
	return 2 * math.Atan2(Norm(rel), math.Abs(rel.Real))
}
