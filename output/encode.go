package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/weaming/cvd-go/cvd"
)

// Format 输出格式
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatPPM  Format = "ppm"
)

// ParseFormat 解析格式名或扩展名（可带点）
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "ppm":
		return FormatPPM, nil
	default:
		return "", fmt.Errorf("不支持的输出格式: %s", name)
	}
}

// Ext 格式对应的文件扩展名
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tiff"
	default:
		return "." + string(f)
	}
}

// EncodeOptions 编码选项
type EncodeOptions struct {
	Quality  int  // JPEG 质量 1-100，<= 0 时为 75
	PPMASCII bool // PPM 使用 P3 文本格式
}

// Encode 按格式将图像写入 w
func Encode(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	switch format {
	case FormatJPEG:
		return encodeJPEG(w, img, JPEGOptions{Quality: opts.Quality})
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatPPM:
		return encodePPM(w, img, opts.PPMASCII)
	default:
		return fmt.Errorf("不支持的输出格式: %s", format)
	}
}

// SaveImage 写入图像文件，格式由扩展名决定
func SaveImage(img image.Image, path string, opts EncodeOptions) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := Encode(f, img, format, opts); err != nil {
		f.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// Save 写入缓冲区
func Save(buf *cvd.Buffer, path string, opts EncodeOptions) error {
	if err := buf.Validate(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return SaveImage(buf.Image(), path, opts)
}
