package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// encodePPM 写入 8-bit PPM，ascii 为 true 时写 P3，否则写 P6
func encodePPM(w io.Writer, img image.Image, ascii bool) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	magic := "P6"
	if ascii {
		magic = "P3"
	}
	// 写入 PPM 头部
	fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, bounds.Dx(), bounds.Dy())

	// 写入像素数据
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if ascii {
				fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
			} else {
				bw.Write([]byte{c.R, c.G, c.B})
			}
		}
	}

	return bw.Flush()
}
