package viewmodel

import "math"

// FadeDistanceRatio is the share of the viewport height over which the landing title fades out.
const FadeDistanceRatio = 0.7

// Fade is the landing title's visual state for one scroll position.
type Fade struct {
	Opacity float64
	// Interactive is false once the title is fully transparent; it then stops
	// intercepting input so the content beneath can receive it.
	Interactive bool
}

// LandingFade computes the landing opacity from the current scroll offset.
// The fade distance is derived from viewportHeight on every call, so resizes
// take effect on the next scroll event.
func LandingFade(scrollTop, viewportHeight float64) Fade {
	opacity := landingOpacity(scrollTop, viewportHeight)
	return Fade{Opacity: opacity, Interactive: opacity > 0}
}

func landingOpacity(scrollTop, viewportHeight float64) float64 {
	if math.IsNaN(scrollTop) {
		return 1
	}
	fadeDistance := viewportHeight * FadeDistanceRatio
	if fadeDistance <= 0 {
		if scrollTop <= 0 {
			return 1
		}
		return 0
	}
	return clamp(1-scrollTop/fadeDistance, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
