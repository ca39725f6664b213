package cvd

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/weaming/cvd-go/colorspace"
)

// Optimize 增强两个通道以提高色觉缺陷者的辨识度
//
// 输入先被拷贝，增益作用于拷贝上的两个通道，第三个通道保持不变。
func Optimize(src *Buffer, d Deficiency) (*Buffer, error) {
	gains, err := d.OptimizationGains()
	if err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst := src.Clone()
	for _, g := range gains {
		scaleChannel(dst, g)
	}
	debug("Optimize %s: %s x%.1f, %s x%.1f", d,
		gains[0].Channel, gains[0].Gain, gains[1].Channel, gains[1].Gain)
	return dst, nil
}

func scaleChannel(b *Buffer, g ChannelGain) {
	c := int(g.Channel)
	rowLen := b.Width * 3
	parallel.Line(b.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := b.Pix[y*rowLen : (y+1)*rowLen]
			for i := c; i < rowLen; i += 3 {
				row[i] = colorspace.ScaleUint8(row[i], g.Gain)
			}
		}
	})
}
