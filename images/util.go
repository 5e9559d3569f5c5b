package images

import (
	"crypto/md5"
	"encoding/hex"
	"image"
	"image/color"
)

// Checksum generates a deterministic checksum of an image's pixels to verify
// idempotency. Pixels are normalized to non-premultiplied RGBA so the result
// does not depend on the concrete image type.
//
// Arguments:
//   - img: The image to compute the checksum for.
//
// Returns:
//   - A hex-encoded MD5 checksum string, or "empty" for nil or empty images.
//
// Example:
//
// ```go
//
//	checksum := Checksum(icon)
//	fmt.Printf("Icon checksum: %s\n", checksum)
//
// ```
func Checksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	b := img.Bounds()
	hash := md5.New()
	row := make([]byte, 0, b.Dx()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row = append(row, c.R, c.G, c.B, c.A)
		}
		hash.Write(row)
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// ChecksumBytes returns the hex-encoded MD5 of an encoded file.
func ChecksumBytes(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// DominantColor returns the most frequent non-premultiplied colour in img and
// the share of pixels that have it. Ties resolve to the colour that reached
// the winning count first in row-major order.
func DominantColor(img image.Image) (color.NRGBA, float64) {
	if img == nil || img.Bounds().Empty() {
		return color.NRGBA{}, 0
	}

	b := img.Bounds()
	counts := make(map[color.NRGBA]int)
	var best color.NRGBA
	bestCount := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			counts[c]++
			if counts[c] > bestCount {
				best, bestCount = c, counts[c]
			}
		}
	}

	return best, float64(bestCount) / float64(b.Dx()*b.Dy())
}
