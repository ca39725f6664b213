package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/weaming/cvd-go/cvd"
	"github.com/weaming/cvd-go/processor"
)

// ExportAll 将每个成功的结果写入 dir，返回写入的路径
//
// 单个文件写入失败不影响其他文件，错误以 EncodeError 合并返回。
func ExportAll(results []processor.Result, dir string, format Format, opts EncodeOptions, logger *cvd.Logger) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &EncodeError{Path: dir, Err: err}
	}

	var paths []string
	var errs []error
	for _, r := range processor.Succeeded(results) {
		path := filepath.Join(dir, r.Transform.Filename(format.Ext()))
		logger.Step("写入", filepath.Base(path))
		if err := Save(r.Image, path, opts); err != nil {
			logger.Done("失败")
			errs = append(errs, err)
			continue
		}
		logger.Done(fmt.Sprintf("%dx%d", r.Image.Width, r.Image.Height))
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

// ExportSheet 生成并写入拼图
func ExportSheet(results []processor.Result, path string, cellWidth int, opts EncodeOptions) error {
	sheet, err := ContactSheet(results, cellWidth)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return SaveImage(sheet, path, opts)
}
