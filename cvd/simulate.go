package cvd

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/weaming/cvd-go/colorspace"
	"github.com/weaming/cvd-go/matrix"
)

// Simulate 模拟色觉缺陷者看到的图像
//
// 每个像素的 RGB 向量乘以缺陷类型的 3x3 矩阵，结果限制到 [0, 255]
// 后向零截断。返回新缓冲区，不修改输入。
func Simulate(src *Buffer, d Deficiency) (*Buffer, error) {
	m, err := d.SimulationMatrix()
	if err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst := NewBuffer(src.Width, src.Height)
	applyMatrix(dst, src, m)
	debug("Simulate %s: %dx%d", d, src.Width, src.Height)
	return dst, nil
}

// applyMatrix 按行并行地对每个像素应用矩阵
func applyMatrix(dst, src *Buffer, m matrix.Matrix3x3) {
	rowLen := src.Width * 3
	parallel.Line(src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			in := src.Pix[y*rowLen : (y+1)*rowLen]
			out := dst.Pix[y*rowLen : (y+1)*rowLen]
			for i := 0; i < rowLen; i += 3 {
				rgb := m.Apply(colorspace.ConvertFromUint8([3]uint8{in[i], in[i+1], in[i+2]}))
				px := colorspace.ConvertToUint8(rgb)
				out[i], out[i+1], out[i+2] = px[0], px[1], px[2]
			}
		}
	})
}
