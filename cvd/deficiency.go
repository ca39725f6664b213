package cvd

import (
	"fmt"
	"strings"

	"github.com/weaming/cvd-go/colorspace"
	"github.com/weaming/cvd-go/matrix"
)

// Deficiency 色觉缺陷类型
type Deficiency int

const (
	// Protanopia 红色盲
	Protanopia Deficiency = iota
	// Deuteranopia 绿色盲
	Deuteranopia
	// Tritanopia 蓝色盲
	Tritanopia
)

// Deficiencies 按显示顺序返回全部缺陷类型
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia}
}

func (d Deficiency) String() string {
	switch d {
	case Protanopia:
		return "Protanopia"
	case Deuteranopia:
		return "Deuteranopia"
	case Tritanopia:
		return "Tritanopia"
	default:
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
}

// Valid 是否为已知缺陷类型
func (d Deficiency) Valid() bool {
	return d >= Protanopia && d <= Tritanopia
}

// ParseDeficiency 解析缺陷名称（不区分大小写，接受 protan/deutan/tritan 简写）
func ParseDeficiency(name string) (Deficiency, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "protanopia", "protan":
		return Protanopia, nil
	case "deuteranopia", "deutan":
		return Deuteranopia, nil
	case "tritanopia", "tritan":
		return Tritanopia, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDeficiency, name)
	}
}

// GainSet 优化增益：两个通道及其倍率，第三个通道保持不变
type GainSet [2]ChannelGain

// ChannelGain 单个通道的乘法增益
type ChannelGain struct {
	Channel colorspace.Channel
	Gain    float64
}

// Matrix 增益的对角矩阵形式，未增强的通道为 1
func (g GainSet) Matrix() matrix.Matrix3x3 {
	diag := matrix.Vector3{1, 1, 1}
	for _, cg := range g {
		if cg.Channel.Valid() {
			diag[cg.Channel] = cg.Gain
		}
	}
	return matrix.Diagonal3x3(diag)
}

// 模拟矩阵（行 = 输出通道，列 = 输入通道 R,G,B）
var simulationMatrices = [...]matrix.Matrix3x3{
	Protanopia: {
		0.567, 0.433, 0,
		0.558, 0.442, 0,
		0, 0.242, 0.758,
	},
	Deuteranopia: {
		0.625, 0.375, 0,
		0.7, 0.3, 0,
		0, 0.3, 0.7,
	},
	Tritanopia: {
		0.95, 0.05, 0,
		0, 0.433, 0.567,
		0, 0.475, 0.525,
	},
}

// 优化增益
var optimizationGains = [...]GainSet{
	Protanopia: {
		{Channel: colorspace.Green, Gain: 1.5},
		{Channel: colorspace.Blue, Gain: 1.2},
	},
	Deuteranopia: {
		{Channel: colorspace.Red, Gain: 1.5},
		{Channel: colorspace.Blue, Gain: 1.2},
	},
	Tritanopia: {
		{Channel: colorspace.Red, Gain: 1.5},
		{Channel: colorspace.Green, Gain: 1.2},
	},
}

// SimulationMatrix 返回缺陷类型对应的模拟矩阵（值拷贝）
func (d Deficiency) SimulationMatrix() (matrix.Matrix3x3, error) {
	if !d.Valid() {
		return matrix.Matrix3x3{}, fmt.Errorf("%w: %d", ErrUnknownDeficiency, int(d))
	}
	return simulationMatrices[d], nil
}

// OptimizationGains 返回缺陷类型对应的优化增益（值拷贝）
func (d Deficiency) OptimizationGains() (GainSet, error) {
	if !d.Valid() {
		return GainSet{}, fmt.Errorf("%w: %d", ErrUnknownDeficiency, int(d))
	}
	return optimizationGains[d], nil
}
