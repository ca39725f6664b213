package output

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/weaming/cvd-go/cvd"
)

// Open 解码源图像为 RGB 缓冲区
//
// 支持 JPEG、PNG、GIF、BMP、TIFF 和 WebP，返回格式名。
func Open(path string) (*cvd.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	return cvd.FromImage(img), format, nil
}
