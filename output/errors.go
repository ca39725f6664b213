package output

import "fmt"

// DecodeError 源图像缺失或损坏
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("解码 %s 失败: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError 写入某个结果文件失败
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("写入 %s 失败: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
