package images

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSource(t *testing.T) {
	src, err := DecodeSource(getPNGBytes(t))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, src.Format)
	assert.Equal(t, 100, src.Width)
	assert.Equal(t, 100, src.Height)
	assert.Empty(t, src.Path)

	src, err = DecodeSource(getJPEGBytes(t))
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, src.Format)
}

func TestDecodeSourceErrors(t *testing.T) {
	src, err := DecodeSource(nil)
	assert.Error(t, err)
	assert.Nil(t, src)
	assert.Contains(t, err.Error(), "empty image data")

	src, err = DecodeSource([]byte("not an image"))
	assert.Error(t, err)
	assert.Nil(t, src)
	assert.Contains(t, err.Error(), "image decoding failed")
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(path, getPNGBytes(t), 0o644))

	src, err := LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, 100, src.Width)

	_, err = LoadSource(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))
	_, err = LoadSource(bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestNewSourceImage(t *testing.T) {
	_, err := NewSourceImage(nil)
	assert.Error(t, err)

	_, err = NewSourceImage(image.NewRGBA(image.Rect(3, 3, 3, 8)))
	assert.Error(t, err)

	src, err := NewSourceImage(image.NewRGBA(image.Rect(10, 10, 30, 20)))
	require.NoError(t, err)
	assert.Equal(t, 20, src.Width)
	assert.Equal(t, 10, src.Height)
}
