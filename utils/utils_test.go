package utils

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestDegToRad(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(5), test.ShouldAlmostEqual, 5*math.Pi/180)
	test.That(t, RadToDeg(DegToRad(37)), test.ShouldAlmostEqual, 37)
}

func TestRunInParallel(t *testing.T) {
	t.Run("runs everything", func(t *testing.T) {
		var count int64
		fs := make([]SimpleFunc, 10)
		for i := range fs {
			fs[i] = func(ctx context.Context) error {
				atomic.AddInt64(&count, 1)
				return nil
			}
		}
		_, err := RunInParallel(context.Background(), fs)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, atomic.LoadInt64(&count), test.ShouldEqual, 10)
	})

	t.Run("collects errors", func(t *testing.T) {
		fs := []SimpleFunc{
			func(ctx context.Context) error { return nil },
			func(ctx context.Context) error { return errors.New("whoops") },
		}
		_, err := RunInParallel(context.Background(), fs)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "whoops")
	})

	t.Run("captures panics", func(t *testing.T) {
		fs := []SimpleFunc{
			func(ctx context.Context) error { panic("eek") },
		}
		_, err := RunInParallel(context.Background(), fs)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "eek")
	})
}
