// Package ease provides normalized easing curves for animation and
// interpolation. Every function maps t in [0, 1] to a progress value that
// starts at 0 and ends at 1; back, elastic and bounce variants overshoot
// inside that range by design of the curve family.
//
// The exponential and circular families route through exp2 and sqrt helpers
// that have a reduced-precision variant selected by the fastmath build tag.
package ease

import "math"

// Func is an easing curve over normalized time.
type Func func(t float64) float64

func SineIn(t float64) float64 {
	return math.Sin(math.Pi / 2 * t)
}

func SineOut(t float64) float64 {
	return 1 + math.Sin(math.Pi/2*(t-1))
}

func SineInOut(t float64) float64 {
	return 0.5 * (1 + math.Sin(math.Pi*(t-0.5)))
}

func QuadIn(t float64) float64 {
	return t * t
}

func QuadOut(t float64) float64 {
	return t * (2 - t)
}

func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return t*(4-2*t) - 1
}

func CubicIn(t float64) float64 {
	return t * t * t
}

func CubicOut(t float64) float64 {
	u := t - 1
	return 1 + u*u*u
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

func QuartIn(t float64) float64 {
	t *= t
	return t * t
}

func QuartOut(t float64) float64 {
	u := (t - 1) * (t - 1)
	return 1 - u*u
}

func QuartInOut(t float64) float64 {
	if t < 0.5 {
		t *= t
		return 8 * t * t
	}
	u := (t - 1) * (t - 1)
	return 1 - 8*u*u
}

func QuintIn(t float64) float64 {
	t2 := t * t
	return t * t2 * t2
}

func QuintOut(t float64) float64 {
	u := t - 1
	u2 := u * u
	return 1 + u*u2*u2
}

func QuintInOut(t float64) float64 {
	if t < 0.5 {
		t2 := t * t
		return 16 * t * t2 * t2
	}
	u := t - 1
	u2 := u * u
	return 1 + 16*u*u2*u2
}

func ExpoIn(t float64) float64 {
	return (exp2(8*t) - 1) / 255
}

func ExpoOut(t float64) float64 {
	return 1 - exp2(-8*t)
}

func ExpoInOut(t float64) float64 {
	if t < 0.5 {
		return (exp2(16*t) - 1) / 510
	}
	return 1 - 0.5*exp2(-16*(t-0.5))
}

func CircIn(t float64) float64 {
	return 1 - sqrt(1-t)
}

func CircOut(t float64) float64 {
	return sqrt(t)
}

func CircInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - sqrt(1-2*t)) * 0.5
	}
	return (1 + sqrt(2*t-1)) * 0.5
}

func BackIn(t float64) float64 {
	return t * t * (2.70158*t - 1.70158)
}

func BackOut(t float64) float64 {
	u := t - 1
	return 1 + u*u*(2.70158*u+1.70158)
}

func BackInOut(t float64) float64 {
	if t < 0.5 {
		return t * t * (7*t - 2.5) * 2
	}
	u := t - 1
	return 1 + u*u*2*(7*u+2.5)
}

func ElasticIn(t float64) float64 {
	t2 := t * t
	return t2 * t2 * math.Sin(t*math.Pi*4.5)
}

func ElasticOut(t float64) float64 {
	u := (t - 1) * (t - 1)
	return 1 - u*u*math.Cos(t*math.Pi*4.5)
}

func ElasticInOut(t float64) float64 {
	switch {
	case t < 0.45:
		t2 := t * t
		return 8 * t2 * t2 * math.Sin(t*math.Pi*9)
	case t < 0.55:
		return 0.5 + 0.75*math.Sin(t*math.Pi*4)
	default:
		u := (t - 1) * (t - 1)
		return 1 - 8*u*u*math.Sin(t*math.Pi*9)
	}
}

func BounceIn(t float64) float64 {
	return exp2(6*(t-1)) * math.Abs(math.Sin(t*math.Pi*3.5))
}

func BounceOut(t float64) float64 {
	return 1 - exp2(-6*t)*math.Abs(math.Cos(t*math.Pi*3.5))
}

func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * exp2(8*(t-1)) * math.Abs(math.Sin(t*math.Pi*7))
	}
	return 1 - 8*exp2(-8*t)*math.Abs(math.Sin(t*math.Pi*7))
}
