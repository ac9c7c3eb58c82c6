package pager

import (
	"math"

	"golang.org/x/exp/constraints"
	"honnef.co/go/stuff/math/mathutil"
)

// EasingFunction maps linear progress in [0, 1] to eased progress.
type EasingFunction func(float64) float64

func EaseLinear(r float64) float64 { return r }

func EaseIn(power int) EasingFunction {
	switch power {
	case 1:
		return EaseLinear
	case 2:
		return func(r float64) float64 { return r * r }
	case 3:
		return func(r float64) float64 { return r * r * r }
	default:
		return func(r float64) float64 { return math.Pow(r, float64(power)) }
	}
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return EaseLinear
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}

// EaseInOut is the smoothstep curve.
func EaseInOut(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// ease applies fn to progress. Overshoot past 1 is ignored.
func ease(fn EasingFunction, progress float64) float64 {
	if fn == nil {
		fn = EaseLinear
	}
	return fn(clamp(progress, 0, 1))
}

func lerp(start, end, ratio float64) float64 {
	return mathutil.Lerp(start, end, ratio)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
