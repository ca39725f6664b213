package output

import (
	"image"
	"image/jpeg"
	"io"
)

// DefaultJPEGQuality 默认 JPEG 质量
const DefaultJPEGQuality = 75

// JPEGOptions JPEG 输出选项
type JPEGOptions struct {
	Quality int // 1-100, <= 0 时为 75, > 100 时为 100
}

func encodeJPEG(w io.Writer, img image.Image, opts JPEGOptions) error {
	// 设置质量
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultJPEGQuality
	} else if quality > 100 {
		quality = 100
	}

	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}
