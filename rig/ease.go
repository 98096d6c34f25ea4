package rig

import "github.com/tanema/gween/ease"

// normalized adapts a gween easing function to the [0,1] → [0,1] form the
// blending code wants.
func normalized(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(Clamp01(t)), 0, 1, 1))
}

// TransitionEase shapes transition progress for previous/current state
// blending. In-out quadratic: ease(0)=0, ease(0.5)=0.5, ease(1)=1.
func TransitionEase(t float64) float64 {
	return normalized(ease.InOutQuad, t)
}

// popEase shapes the collect pop. Overshoots past 1 before settling, which
// gives the pickup its snap.
func popEase(t float64) float64 {
	return normalized(ease.OutBack, t)
}

// sinkEase shapes the death sink. Slow start, accelerating fall.
func sinkEase(t float64) float64 {
	return normalized(ease.InQuad, t)
}
