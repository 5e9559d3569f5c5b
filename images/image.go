// Package images - source loading, encoding and resampling for icon generation.
package images

import (
	"bytes"
	"image"
	"os"

	"github.com/pkg/errors"
)

// SourceImage is a decoded bitmap that every output bucket is resampled from.
// It is loaded once and never mutated, so it can be shared across goroutines.
type SourceImage struct {
	// Image is the decoded bitmap.
	Image image.Image `json:"-" yaml:"-"`
	// Format is the format the bitmap was decoded from.
	Format ImageFormat `json:"format" yaml:"format"`
	// Width is the width of the bitmap in pixels.
	Width int `json:"width" yaml:"width"`
	// Height is the height of the bitmap in pixels.
	Height int `json:"height" yaml:"height"`
	// Path is the file the bitmap was read from, empty for in-memory sources.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// NewSourceImage wraps an already decoded bitmap.
//
// Arguments:
//   - img: The bitmap to wrap.
//
// Returns:
//   - *SourceImage: The wrapped source.
//   - error: An error if the bitmap is nil or has no pixels.
func NewSourceImage(img image.Image) (*SourceImage, error) {
	if img == nil {
		return nil, errors.New("image is nil")
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.Errorf("image has no pixels: %v", b)
	}

	return &SourceImage{
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// DecodeSource decodes an in-memory bitmap in any registered format.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - *SourceImage: The decoded source.
//   - error: An error if the data is empty or cannot be decoded.
func DecodeSource(data []byte) (*SourceImage, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "image decoding failed")
	}

	src, err := NewSourceImage(img)
	if err != nil {
		return nil, err
	}
	src.Format = ImageFormat(name)

	return src, nil
}

// LoadSource reads and decodes the bitmap at path.
//
// Arguments:
//   - path: The file to read.
//
// Returns:
//   - *SourceImage: The decoded source with Path set.
//   - error: An error if the file cannot be read or decoded.
func LoadSource(path string) (*SourceImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	src, err := DecodeSource(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	src.Path = path

	return src, nil
}
