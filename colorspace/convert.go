package colorspace

import (
	"math"

	"github.com/weaming/cvd-go/matrix"
)

// MaxValue 8-bit 通道最大值
const MaxValue = 255.0

// ClampTruncate 限制到 [0, 255] 后向零截断为 8-bit 整数（不四舍五入）
func ClampTruncate(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= MaxValue {
		return 255
	}
	return uint8(v)
}

// ConvertToUint8 将 [0, 255] 浮点 RGB 截断为 8-bit 整数
func ConvertToUint8(rgb matrix.Vector3) [3]uint8 {
	return [3]uint8{
		ClampTruncate(rgb[0]),
		ClampTruncate(rgb[1]),
		ClampTruncate(rgb[2]),
	}
}

// ConvertFromUint8 将 8-bit 整数转换为浮点 RGB（不归一化）
func ConvertFromUint8(rgb [3]uint8) matrix.Vector3 {
	return matrix.Vector3{
		float64(rgb[0]),
		float64(rgb[1]),
		float64(rgb[2]),
	}
}

// ScaleUint8 按增益缩放单个 8-bit 值，结果限制并截断
func ScaleUint8(v uint8, gain float64) uint8 {
	return ClampTruncate(float64(v) * gain)
}
