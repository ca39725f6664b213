package cvd

import "errors"

var (
	// ErrInvalidShape 缓冲区不是 H x W x 3，或像素数据长度与尺寸不符
	ErrInvalidShape = errors.New("invalid image buffer shape")

	// ErrInvalidType 像素值不是 [0, 255] 内的整数
	ErrInvalidType = errors.New("invalid pixel value type")

	// ErrUnknownDeficiency 未知的色觉缺陷类型
	ErrUnknownDeficiency = errors.New("unknown color vision deficiency")

	// ErrUnknownTransform 未知的变换名称
	ErrUnknownTransform = errors.New("unknown transform")
)
