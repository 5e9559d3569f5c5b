package images

import (
	"image"
	"runtime"
	"sync"

	"golang.org/x/image/draw"
)

// nativeResampler is the in-house separable resampler. It runs a horizontal
// pass into an intermediate bitmap and then a vertical pass, splitting rows
// across goroutines.
type nativeResampler struct {
	filter Filter
}

// Resample implements Resampler.
func (r nativeResampler) Resample(src image.Image, width, height int) (image.Image, error) {
	if err := checkResample(src, width, height); err != nil {
		return nil, err
	}
	return Resize(src, width, height, r.filter), nil
}

// Resize performs image resizing using the specified resampling filter.
// This implementation uses separable filtering, processing the horizontal
// and vertical dimensions independently.
//
// Arguments:
//   - img: The source image to resize.
//   - width: The target width in pixels.
//   - height: The target height in pixels.
//   - filter: The resampling filter to use for interpolation.
//
// Returns:
//   - *image.RGBA: The resized image. Non-positive dimensions yield a 1x1 image.
//
// @example
// resized := Resize(srcImage, 192, 192, Lanczos)
func Resize(img image.Image, width, height int, filter Filter) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	src := toRGBA(img)
	srcW, srcH := src.Rect.Dx(), src.Rect.Dy()

	if srcW == width && srcH == height {
		return src
	}

	if filter == NearestNeighbor {
		return resizeNearest(src, width, height)
	}

	k, ok := kernels[filter]
	if !ok {
		k = kernels[DefaultFilter]
	}

	intermediate := image.NewRGBA(image.Rect(0, 0, width, srcH))
	resizeHorizontal(src, intermediate, contributions(srcW, width, k))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	resizeVertical(intermediate, dst, contributions(srcH, height, k))

	return dst
}

// toRGBA copies img into a zero-origin RGBA bitmap. The copy keeps the
// caller's source untouched.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func resizeNearest(src *image.RGBA, width, height int) *image.RGBA {
	srcW, srcH := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	xRatio := float64(srcW) / float64(width)
	yRatio := float64(srcH) / float64(height)

	Parallel(height, func(start, end int) {
		for y := start; y < end; y++ {
			sy := int((float64(y) + 0.5) * yRatio)
			if sy >= srcH {
				sy = srcH - 1
			}
			for x := 0; x < width; x++ {
				sx := int((float64(x) + 0.5) * xRatio)
				if sx >= srcW {
					sx = srcW - 1
				}
				si := sy*src.Stride + sx*4
				di := y*dst.Stride + x*4
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			}
		}
	})

	return dst
}

func resizeHorizontal(src, dst *image.RGBA, weights [][]contribution) {
	height := src.Rect.Dy()
	width := dst.Rect.Dx()

	Parallel(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := y * src.Stride
			for x := 0; x < width; x++ {
				var px [4]float64
				for _, c := range weights[x] {
					i := row + c.pixel*4
					px[0] += float64(src.Pix[i]) * c.weight
					px[1] += float64(src.Pix[i+1]) * c.weight
					px[2] += float64(src.Pix[i+2]) * c.weight
					px[3] += float64(src.Pix[i+3]) * c.weight
				}
				storePixel(dst.Pix[y*dst.Stride+x*4:], px)
			}
		}
	})
}

func resizeVertical(src, dst *image.RGBA, weights [][]contribution) {
	height := dst.Rect.Dy()
	width := dst.Rect.Dx()

	Parallel(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				var px [4]float64
				for _, c := range weights[y] {
					i := c.pixel*src.Stride + x*4
					px[0] += float64(src.Pix[i]) * c.weight
					px[1] += float64(src.Pix[i+1]) * c.weight
					px[2] += float64(src.Pix[i+2]) * c.weight
					px[3] += float64(src.Pix[i+3]) * c.weight
				}
				storePixel(dst.Pix[y*dst.Stride+x*4:], px)
			}
		}
	})
}

// storePixel rounds an accumulated premultiplied pixel into pix. Colour
// channels are capped at alpha so ringing cannot produce invalid values.
func storePixel(pix []uint8, px [4]float64) {
	a := clamp(px[3], 0, 255)
	pix[3] = uint8(a + 0.5)
	for c := 0; c < 3; c++ {
		pix[c] = uint8(clamp(px[c], 0, a) + 0.5)
	}
}

// Parallel splits [0, dataSize) into one partition per CPU and runs fn on
// each concurrently. Small inputs run inline.
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()

	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize
		// Last partition gets any remaining data.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}
	wg.Wait()
}
