package video

import (
	"golang.org/x/image/draw"
)

// Interpolator represents the resampling algorithm used when pixels are moved
// by a transform.
type Interpolator draw.Interpolator

// List of interpolation algorithms
var (
	InterpolatorNearestNeighbor = Interpolator(draw.NearestNeighbor)
	InterpolatorApproxBiLinear  = Interpolator(draw.ApproxBiLinear)
	InterpolatorBiLinear        = Interpolator(draw.BiLinear)
	InterpolatorCatmullRom      = Interpolator(draw.CatmullRom)
)
