package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "empty", Checksum(nil))
	assert.Equal(t, "empty", Checksum(image.NewRGBA(image.Rectangle{})))

	// The same pixels in different image types hash the same.
	rgba := image.NewRGBA(image.Rect(0, 0, 8, 8))
	nrgba := SolidCanvas(8, 8, testGreen)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			rgba.Set(x, y, testGreen)
		}
	}
	assert.Equal(t, Checksum(nrgba), Checksum(rgba))

	rgba.Set(3, 3, color.White)
	assert.NotEqual(t, Checksum(nrgba), Checksum(rgba))
}

func TestChecksumBytes(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ChecksumBytes(nil))
	assert.Equal(t, ChecksumBytes([]byte("icon")), ChecksumBytes([]byte("icon")))
}

func TestDominantColor(t *testing.T) {
	c, share := DominantColor(nil)
	assert.Equal(t, color.NRGBA{}, c)
	assert.Zero(t, share)

	img := SolidCanvas(10, 10, color.White)
	for x := 0; x < 10; x++ {
		img.Set(x, 0, testGreen)
	}
	c, share = DominantColor(img)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
	assert.InDelta(t, 0.9, share, 1e-9)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#0B5B41", want: testGreen},
		{in: "0b5b41", want: testGreen},
		{in: "#fff", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "#00000080", want: color.NRGBA{A: 128}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolidCanvas(t *testing.T) {
	canvas := SolidCanvas(512, 256, testGreen)
	assert.Equal(t, image.Rect(0, 0, 512, 256), canvas.Bounds())
	assert.Equal(t, testGreen, canvas.NRGBAAt(511, 255))
}

func TestDominantColorTieBreak(t *testing.T) {
	// A, B, B, A: B reaches two first.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	a := color.NRGBA{R: 255, A: 255}
	b := color.NRGBA{B: 255, A: 255}
	img.SetNRGBA(0, 0, a)
	img.SetNRGBA(1, 0, b)
	img.SetNRGBA(2, 0, b)
	img.SetNRGBA(3, 0, a)

	c, share := DominantColor(img)
	assert.Equal(t, b, c)
	assert.InDelta(t, 0.5, share, 1e-9)
}
