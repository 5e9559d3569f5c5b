package images

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	// Registers the GIF decoder for image.Decode.
	_ "image/gif"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants
const (
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// DefaultQuality is the lossy quality used when EncodeOptions leaves it unset.
const DefaultQuality = 90

// EncodeOptions tunes the lossy encoders. PNG, BMP and TIFF ignore it.
type EncodeOptions struct {
	// Quality is the JPEG/WebP quality in [1, 100]. Zero means DefaultQuality.
	Quality int `json:"quality" yaml:"quality"`
	// Lossless selects lossless WebP.
	Lossless bool `json:"lossless" yaml:"lossless"`
}

func (o EncodeOptions) quality() int {
	if o.Quality <= 0 || o.Quality > 100 {
		return DefaultQuality
	}
	return o.Quality
}

// ParseFormat resolves a format name, accepting common aliases such as "jpg".
func ParseFormat(name string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", errors.Errorf("unsupported image format: %q", name)
	}
}

// FormatFromPath infers the output format from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Errorf("no file extension in %q", path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in the given format.
//
// Arguments:
//   - w: The destination writer.
//   - img: The bitmap to encode.
//   - format: The output format.
//   - opts: Quality settings for lossy formats.
//
// Returns:
//   - error: An error if the format is unsupported or encoding fails.
func Encode(w io.Writer, img image.Image, format ImageFormat, opts EncodeOptions) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{
			Lossless: opts.Lossless,
			Quality:  float32(opts.quality()),
		})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("unsupported image format: %q", format)
	}

	return errors.Wrapf(err, "encode %s", format)
}
