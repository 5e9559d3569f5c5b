package images

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Filter defines the interpolation used when resampling a bitmap.
type Filter int

const (
	// NearestNeighbor copies the closest source pixel (fastest, aliases badly).
	NearestNeighbor Filter = iota
	// Bilinear uses a triangle kernel.
	Bilinear
	// Bicubic uses the Catmull-Rom cubic (B=0, C=0.5).
	Bicubic
	// MitchellNetravali uses the Mitchell-Netravali cubic (B=1/3, C=1/3).
	MitchellNetravali
	// Lanczos uses a three-lobed windowed sinc (best for downscaling icons).
	Lanczos
)

// DefaultFilter is the highest-quality filter available.
const DefaultFilter = Lanczos

var filterNames = map[Filter]string{
	NearestNeighbor:   "nearest",
	Bilinear:          "bilinear",
	Bicubic:           "bicubic",
	MitchellNetravali: "mitchell",
	Lanczos:           "lanczos",
}

// String returns the configuration name of the filter.
func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFilter resolves a filter by name. Matching is case-insensitive and
// accepts "catmullrom" for Bicubic and "lanczos3" for Lanczos.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest", "nearestneighbor", "nearest-neighbor":
		return NearestNeighbor, nil
	case "bilinear", "linear":
		return Bilinear, nil
	case "bicubic", "catmullrom", "catmull-rom":
		return Bicubic, nil
	case "mitchell", "mitchellnetravali":
		return MitchellNetravali, nil
	case "lanczos", "lanczos3", "":
		return Lanczos, nil
	default:
		return 0, errors.Errorf("unknown interpolation filter: %q", name)
	}
}

// kernel represents a resampling kernel function.
type kernel struct {
	// Support is the radius of the kernel in source pixels at scale 1.
	Support float64
	// At evaluates the kernel at distance x.
	At func(x float64) float64
}

// kernels maps each filter type to its kernel function.
var kernels = map[Filter]kernel{
	NearestNeighbor: {
		Support: 0.5,
		At: func(x float64) float64 {
			if math.Abs(x) < 0.5 {
				return 1.0
			}
			return 0.0
		},
	},
	Bilinear: {
		Support: 1.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return 1.0 - x
			}
			return 0.0
		},
	},
	Bicubic: {
		Support: 2.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return (1.5*x-2.5)*x*x + 1.0
			}
			if x < 2.0 {
				return ((-0.5*x+2.5)*x-4.0)*x + 2.0
			}
			return 0.0
		},
	},
	MitchellNetravali: {
		Support: 2.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return ((1.16666666666667*x-2.0)*x)*x + 0.888888888888889
			}
			if x < 2.0 {
				return ((-0.388888888888889*x+2.0)*x-3.333333333333333)*x + 1.777777777777778
			}
			return 0.0
		},
	},
	Lanczos: {
		Support: 3.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x == 0.0 {
				return 1.0
			}
			if x >= 3.0 {
				return 0.0
			}
			// sinc(x) * sinc(x/3)
			pix := math.Pi * x
			return (math.Sin(pix) / pix) * (math.Sin(pix/3.0) / (pix / 3.0))
		},
	},
}

// contribution is a single source pixel's weight in one output pixel.
type contribution struct {
	pixel  int
	weight float64
}

// contributions precomputes the normalized source weights for every output
// position along one axis. When downsampling the kernel is stretched by the
// scale factor so that every source pixel contributes (area-style filtering).
func contributions(srcSize, dstSize int, k kernel) [][]contribution {
	scale := float64(srcSize) / float64(dstSize)
	filterScale := math.Max(scale, 1.0)
	support := k.Support * filterScale

	out := make([][]contribution, dstSize)
	for i := 0; i < dstSize; i++ {
		center := (float64(i) + 0.5) * scale

		left := int(math.Floor(center - support))
		right := int(math.Ceil(center + support))
		if left < 0 {
			left = 0
		}
		if right > srcSize-1 {
			right = srcSize - 1
		}

		var weights []contribution
		var sum float64
		for p := left; p <= right; p++ {
			w := k.At((float64(p) + 0.5 - center) / filterScale)
			if w == 0 {
				continue
			}
			weights = append(weights, contribution{pixel: p, weight: w})
			sum += w
		}

		// Fall back to the nearest pixel when the kernel missed every sample.
		if len(weights) == 0 {
			p := int(center)
			if p > srcSize-1 {
				p = srcSize - 1
			}
			weights = []contribution{{pixel: p, weight: 1}}
			sum = 1
		}

		// Normalize to preserve brightness.
		for j := range weights {
			weights[j].weight /= sum
		}
		out[i] = weights
	}

	return out
}

// clamp restricts a value to [lo, hi].
func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
