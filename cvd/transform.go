package cvd

import (
	"fmt"
	"strings"
)

// Kind 变换类别
type Kind int

const (
	// Simulation 模拟缺陷者的感知
	Simulation Kind = iota
	// Optimization 为缺陷者增强对比
	Optimization
)

func (k Kind) String() string {
	switch k {
	case Simulation:
		return "Simulation"
	case Optimization:
		return "Optimization"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Transform 一种缺陷类型上的一个变换
type Transform struct {
	Kind       Kind
	Deficiency Deficiency
}

// Transforms 按显示顺序返回全部六个变换
func Transforms() []Transform {
	ts := make([]Transform, 0, 6)
	for _, d := range Deficiencies() {
		ts = append(ts,
			Transform{Kind: Simulation, Deficiency: d},
			Transform{Kind: Optimization, Deficiency: d},
		)
	}
	return ts
}

// Label 显示标签，如 "Protanopia Simulation"
func (t Transform) Label() string {
	return t.Deficiency.String() + " " + t.Kind.String()
}

// Name 简短名称，如 "protanopia-sim"，可被 ParseTransform 解析
func (t Transform) Name() string {
	suffix := "sim"
	if t.Kind == Optimization {
		suffix = "opt"
	}
	return strings.ToLower(t.Deficiency.String()) + "-" + suffix
}

// Filename 输出文件名，如 "protanopia_simulation.jpg" 和 "optimized_protanopia.jpg"
func (t Transform) Filename(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	d := strings.ToLower(t.Deficiency.String())
	if t.Kind == Optimization {
		return "optimized_" + d + ext
	}
	return d + "_simulation" + ext
}

// Apply 对缓冲区执行变换
func (t Transform) Apply(src *Buffer) (*Buffer, error) {
	switch t.Kind {
	case Simulation:
		return Simulate(src, t.Deficiency)
	case Optimization:
		return Optimize(src, t.Deficiency)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransform, t.Kind)
	}
}

func (t Transform) String() string {
	return t.Name()
}

// ParseTransform 解析 "<缺陷>-sim" 或 "<缺陷>-opt" 形式的变换名
func ParseTransform(name string) (Transform, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	i := strings.LastIndexAny(s, "-_")
	if i < 0 {
		return Transform{}, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	var kind Kind
	switch s[i+1:] {
	case "sim", "simulation":
		kind = Simulation
	case "opt", "optimization":
		kind = Optimization
	default:
		return Transform{}, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	d, err := ParseDeficiency(s[:i])
	if err != nil {
		return Transform{}, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return Transform{Kind: kind, Deficiency: d}, nil
}

// ParseTransforms 解析逗号分隔的变换列表，空字符串表示全部
func ParseTransforms(list string) ([]Transform, error) {
	if strings.TrimSpace(list) == "" {
		return Transforms(), nil
	}
	var ts []Transform
	seen := make(map[Transform]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseTransform(part)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return Transforms(), nil
	}
	return ts, nil
}
