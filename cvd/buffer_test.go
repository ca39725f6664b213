package cvd

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferFromValues(t *testing.T) {
	b, err := NewBufferFromValues(2, 1, 3, []float64{0, 1, 2, 253, 254, 255})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 2, 253, 254, 255}, b.Pix)
	h, w, c := b.Shape()
	assert.Equal(t, []int{1, 2, 3}, []int{h, w, c})

	for _, v := range []float64{-1, 256, 1.5, math.NaN(), math.Inf(1)} {
		_, err := NewBufferFromValues(1, 1, 3, []float64{0, v, 0})
		assert.ErrorIs(t, err, ErrInvalidType, "value %v", v)
	}

	_, err = NewBufferFromValues(2, 2, 3, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewBufferFromPix(t *testing.T) {
	_, err := NewBufferFromPix(3, 1, 3, make([]uint8, 8))
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewBufferFromPix(-1, 1, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	b, err := NewBufferFromPix(1, 1, 3, []uint8{9, 8, 7})
	require.NoError(t, err)
	assert.NoError(t, b.Validate())
}

func TestImageRoundTrip(t *testing.T) {
	src := gradient(5, 4)
	img := src.Image()
	assert.Equal(t, image.Rect(0, 0, 5, 4), img.Bounds())
	assert.Equal(t, color.RGBA{R: src.At(2, 3)[0], G: src.At(2, 3)[1], B: src.At(2, 3)[2], A: 255}, img.RGBAAt(2, 3))
	assert.Equal(t, src, FromImage(img))
}

func TestFromImage(t *testing.T) {
	// 非零原点
	nrgba := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	nrgba.SetNRGBA(10, 20, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	nrgba.SetNRGBA(11, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	b := FromImage(nrgba)
	assert.Equal(t, 2, b.Width)
	assert.Equal(t, 1, b.Height)
	assert.Equal(t, []uint8{200, 100, 50, 1, 2, 3}, b.Pix)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 77})
	gb := FromImage(gray)
	assert.Equal(t, 3, gb.Channels)
	assert.Equal(t, [3]uint8{77, 77, 77}, gb.At(1, 1))
	assert.Equal(t, [3]uint8{0, 0, 0}, gb.At(0, 0))
}

func TestFromImagePaletted(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.NRGBA{R: 200, G: 100, B: 50, A: 0},
		color.NRGBA{R: 10, G: 20, B: 30, A: 255},
	})
	pal.SetColorIndex(1, 0, 1)
	b := FromImage(pal)
	assert.Equal(t, [3]uint8{200, 100, 50}, b.At(0, 0))
	assert.Equal(t, [3]uint8{10, 20, 30}, b.At(1, 0))
}

func TestCloneIsDeep(t *testing.T) {
	src := gradient(3, 3)
	c := src.Clone()
	c.Set(0, 0, [3]uint8{1, 2, 3})
	assert.NotEqual(t, src.At(0, 0), c.At(0, 0))
}
