package colorspace

import "fmt"

// Channel RGB 通道索引
type Channel int

const (
	// Red 红色通道
	Red Channel = iota
	// Green 绿色通道
	Green
	// Blue 蓝色通道
	Blue
)

// NumChannels RGB 通道数
const NumChannels = 3

func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Valid 通道索引是否在 [0, 3) 内
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}
