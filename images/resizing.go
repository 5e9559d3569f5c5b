package images

import (
	"image"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Resampler recomputes a bitmap at a new resolution.
type Resampler interface {
	// Resample returns src scaled to exactly width x height. src is only read.
	Resample(src image.Image, width, height int) (image.Image, error)
}

// Backend selects the resampling implementation.
type Backend string

// Backend constants
const (
	// BackendNfnt resamples with github.com/nfnt/resize.
	BackendNfnt Backend = "nfnt"
	// BackendXDraw resamples with the golang.org/x/image/draw scalers.
	BackendXDraw Backend = "xdraw"
	// BackendNative resamples with the in-house separable kernels.
	BackendNative Backend = "native"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendNfnt

// ParseBackend resolves a backend by name. An empty name yields DefaultBackend.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case "":
		return DefaultBackend, nil
	case BackendNfnt, BackendXDraw, BackendNative:
		return b, nil
	default:
		return "", errors.Errorf("unknown resampling backend: %q", name)
	}
}

// NewResampler returns a Resampler for the backend and filter combination.
//
// Arguments:
//   - backend: The resampling implementation.
//   - filter: The interpolation filter.
//
// Returns:
//   - Resampler: The configured resampler.
//   - error: An error if the backend does not implement the filter.
func NewResampler(backend Backend, filter Filter) (Resampler, error) {
	if _, ok := kernels[filter]; !ok {
		return nil, errors.Errorf("unknown interpolation filter: %d", filter)
	}

	switch backend {
	case BackendNfnt, "":
		interp, ok := nfntFilters[filter]
		if !ok {
			return nil, errors.Errorf("backend %s does not support filter %s", BackendNfnt, filter)
		}
		return nfntResampler{interp: interp}, nil
	case BackendXDraw:
		interp, ok := xdrawFilters[filter]
		if !ok {
			return nil, errors.Errorf("backend %s does not support filter %s", BackendXDraw, filter)
		}
		return xdrawResampler{interp: interp}, nil
	case BackendNative:
		return nativeResampler{filter: filter}, nil
	default:
		return nil, errors.Errorf("unknown resampling backend: %q", backend)
	}
}

// MustResampler is like NewResampler but panics on error. Intended for
// package-level defaults and tests.
func MustResampler(backend Backend, filter Filter) Resampler {
	r, err := NewResampler(backend, filter)
	if err != nil {
		panic(err)
	}
	return r
}

// checkResample validates the arguments shared by every backend.
func checkResample(src image.Image, width, height int) error {
	if src == nil {
		return errors.New("source image is nil")
	}
	if src.Bounds().Empty() {
		return errors.New("source image has no pixels")
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid dimensions: width=%d, height=%d", width, height)
	}
	return nil
}

var nfntFilters = map[Filter]resize.InterpolationFunction{
	NearestNeighbor:   resize.NearestNeighbor,
	Bilinear:          resize.Bilinear,
	Bicubic:           resize.Bicubic,
	MitchellNetravali: resize.MitchellNetravali,
	Lanczos:           resize.Lanczos3,
}

type nfntResampler struct {
	interp resize.InterpolationFunction
}

// Resample implements Resampler.
func (r nfntResampler) Resample(src image.Image, width, height int) (image.Image, error) {
	if err := checkResample(src, width, height); err != nil {
		return nil, err
	}

	out := resize.Resize(uint(width), uint(height), src, r.interp)
	if b := out.Bounds(); b.Dx() != width || b.Dy() != height {
		return nil, errors.Errorf("resize produced %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}

	return out, nil
}

// x/image/draw has no Lanczos or Mitchell scaler.
var xdrawFilters = map[Filter]draw.Interpolator{
	NearestNeighbor: draw.NearestNeighbor,
	Bilinear:        draw.BiLinear,
	Bicubic:         draw.CatmullRom,
}

type xdrawResampler struct {
	interp draw.Interpolator
}

// Resample implements Resampler.
func (r xdrawResampler) Resample(src image.Image, width, height int) (image.Image, error) {
	if err := checkResample(src, width, height); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	r.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}
