package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/weaming/cvd-go/cvd"
)

// Config 运行配置，可由 TOML 文件加载，再由命令行参数覆盖
type Config struct {
	Input       string   `toml:"input"`
	OutputDir   string   `toml:"output_dir"`
	Format      string   `toml:"format"`
	Quality     int      `toml:"quality"`
	PPMASCII    bool     `toml:"ppm_ascii"`
	Transforms  []string `toml:"transforms"`
	Sheet       string   `toml:"sheet"`
	SheetCell   int      `toml:"sheet_cell"`
	Parallelism int      `toml:"parallelism"`
	Verbose     bool     `toml:"verbose"`
}

// DefaultConfig 默认配置：当前目录，JPEG 质量 75，全部六个变换
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		Format:    "jpg",
		Quality:   DefaultJPEGQuality,
		SheetCell: DefaultSheetCell,
	}
}

// LoadConfig 从 TOML 文件读取配置，未出现的字段保留 cfg 中的值
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("无法打开配置文件: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return nil
}

// Validate 检查配置
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("必须指定输入文件")
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("JPEG 质量必须在 1-100 之间: %d", c.Quality)
	}
	if c.Sheet != "" && c.SheetCell <= 0 {
		return fmt.Errorf("拼图单元宽度必须为正数: %d", c.SheetCell)
	}
	if _, err := c.SelectedTransforms(); err != nil {
		return err
	}
	return nil
}

// SelectedTransforms 解析要执行的变换，未指定时为全部
func (c *Config) SelectedTransforms() ([]cvd.Transform, error) {
	return cvd.ParseTransforms(strings.Join(c.Transforms, ","))
}

// EncodeOptions 由配置得到的编码选项
func (c *Config) EncodeOptions() EncodeOptions {
	return EncodeOptions{
		Quality:  c.Quality,
		PPMASCII: c.PPMASCII,
	}
}
