package cvd

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"

	"github.com/weaming/cvd-go/colorspace"
)

// Buffer 内存中的 8-bit 像素缓冲区
//
// 数据按行优先存储：像素 (x, y) 的通道 c 位于 Pix[(y*Width+x)*Channels+c]。
// 变换只接受 Channels == 3 (R, G, B) 的缓冲区。
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewBuffer 创建 width x height 的 RGB 缓冲区（全黑）
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: colorspace.NumChannels,
		Pix:      make([]uint8, width*height*colorspace.NumChannels),
	}
}

// NewBufferFromPix 用已有像素数据创建缓冲区（不拷贝）
func NewBufferFromPix(width, height, channels int, pix []uint8) (*Buffer, error) {
	b := &Buffer{Width: width, Height: height, Channels: channels, Pix: pix}
	if err := b.checkLayout(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewBufferFromValues 用数值数据创建缓冲区
//
// 每个值必须是 [0, 255] 内的有限整数，否则返回 ErrInvalidType。
func NewBufferFromValues(width, height, channels int, values []float64) (*Buffer, error) {
	b := &Buffer{Width: width, Height: height, Channels: channels}
	if width < 0 || height < 0 || channels <= 0 || len(values) != width*height*channels {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d",
			ErrInvalidShape, len(values), height, width, channels)
	}
	b.Pix = make([]uint8, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < 0 || v > colorspace.MaxValue {
			return nil, fmt.Errorf("%w: value %v at index %d", ErrInvalidType, v, i)
		}
		b.Pix[i] = uint8(v)
	}
	return b, nil
}

// FromImage 将任意图像转换为 RGB 缓冲区，丢弃 alpha 通道
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Height; y++ {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := 0; x < b.Width; x++ {
				copy(b.Pix[(y*b.Width+x)*3:(y*b.Width+x)*3+3], row[x*4:x*4+3])
			}
		}
		return b
	}

	if pal, ok := img.(*image.Paletted); ok {
		// 调色板项保持直通颜色，完全透明的项也保留 RGB
		entries := make([][3]uint8, len(pal.Palette))
		for i, c := range pal.Palette {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			entries[i] = [3]uint8{n.R, n.G, n.B}
		}
		for y := 0; y < b.Height; y++ {
			row := pal.Pix[y*pal.Stride:]
			for x := 0; x < b.Width; x++ {
				if idx := int(row[x]); idx < len(entries) {
					b.Set(x, y, entries[idx])
				}
			}
		}
		return b
	}

	rgba := clone.AsRGBA(img)
	for y := 0; y < b.Height; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < b.Width; x++ {
			p := row[x*4 : x*4+4]
			r, g, bl := p[0], p[1], p[2]
			if a := p[3]; a != 0 && a != 0xff {
				// 预乘 alpha 还原为直通颜色
				c := color.NRGBAModel.Convert(color.RGBA{R: r, G: g, B: bl, A: a}).(color.NRGBA)
				r, g, bl = c.R, c.G, c.B
			}
			i := (y*b.Width + x) * 3
			b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
		}
	}
	return b
}

// Image 转换为不透明的 RGBA 图像
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			i := (y*b.Width + x) * 3
			row[x*4] = b.Pix[i]
			row[x*4+1] = b.Pix[i+1]
			row[x*4+2] = b.Pix[i+2]
			row[x*4+3] = 0xff
		}
	}
	return img
}

// Clone 深拷贝
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Channels: b.Channels, Pix: pix}
}

// At 返回像素 (x, y) 的 RGB 值
func (b *Buffer) At(x, y int) [3]uint8 {
	i := (y*b.Width + x) * b.Channels
	return [3]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Set 设置像素 (x, y) 的 RGB 值
func (b *Buffer) Set(x, y int, rgb [3]uint8) {
	i := (y*b.Width + x) * b.Channels
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = rgb[0], rgb[1], rgb[2]
}

// Shape 返回 (height, width, channels)
func (b *Buffer) Shape() (int, int, int) {
	return b.Height, b.Width, b.Channels
}

// Validate 检查缓冲区是否为合法的 H x W x 3 RGB 数据
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidShape)
	}
	if b.Channels != colorspace.NumChannels {
		return fmt.Errorf("%w: expected %d channels, got %d",
			ErrInvalidShape, colorspace.NumChannels, b.Channels)
	}
	return b.checkLayout()
}

func (b *Buffer) checkLayout() error {
	if b.Width < 0 || b.Height < 0 || b.Channels <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidShape, b.Height, b.Width, b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%dx%d needs %d values, got %d",
			ErrInvalidShape, b.Height, b.Width, b.Channels, want, len(b.Pix))
	}
	return nil
}
