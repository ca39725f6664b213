package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/weaming/cvd-go/cvd"
	"github.com/weaming/cvd-go/output"
	"github.com/weaming/cvd-go/processor"
)

// Version 程序版本
const Version = "0.1.0"

type flags struct {
	configPath    string
	printMatrices bool
}

func main() {
	config, f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(2)
	}

	if f.printMatrices {
		if err := printMatrices(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), config, cvd.NewLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags 解析命令行参数
//
// 优先级：默认值 < 配置文件 (-config) < 显式给出的命令行参数。
func parseFlags(args []string) (*output.Config, flags, error) {
	fs := flag.NewFlagSet("cvd-go", flag.ContinueOnError)

	var f flags
	var cli output.Config
	var only string
	defaults := output.DefaultConfig()

	fs.StringVar(&f.configPath, "config", "", "TOML 配置文件路径")
	fs.BoolVar(&f.printMatrices, "matrices", false, "打印模拟矩阵和优化增益后退出")
	fs.StringVar(&cli.OutputDir, "o", defaults.OutputDir, "输出目录")
	fs.StringVar(&cli.Format, "format", defaults.Format, "输出格式: jpg, png, bmp, tiff, ppm")
	fs.IntVar(&cli.Quality, "quality", defaults.Quality, "JPEG 质量 (1-100)")
	fs.BoolVar(&cli.PPMASCII, "ppm-ascii", false, "PPM 使用 P3 文本格式")
	fs.StringVar(&only, "only", "", "只执行指定变换，逗号分隔，如 protanopia-sim,tritanopia-opt")
	fs.StringVar(&cli.Sheet, "sheet", "", "额外输出 3x2 拼图到该路径")
	fs.IntVar(&cli.SheetCell, "sheet-cell", defaults.SheetCell, "拼图单元宽度（像素）")
	fs.IntVar(&cli.Parallelism, "j", 0, "并行变换数（默认 CPU 数）")
	fs.BoolVar(&cli.Verbose, "v", false, "详细输出")

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "cvd-go version %s\n", Version)
		fmt.Fprintf(w, "\n色觉缺陷（红/绿/蓝色盲）模拟与优化\n\n")
		fmt.Fprintf(w, "用法: cvd-go [选项] <输入图像>\n\n")
		fmt.Fprintf(w, "选项:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\n变换名:\n")
		for _, t := range cvd.Transforms() {
			fmt.Fprintf(w, "  %-18s %s\n", t.Name(), t.Label())
		}
		fmt.Fprintf(w, "\n示例:\n")
		fmt.Fprintf(w, "  cvd-go image.jpg\n")
		fmt.Fprintf(w, "  cvd-go -o out -format png -sheet out/sheet.png image.jpg\n")
		fmt.Fprintf(w, "  cvd-go -only deuteranopia-sim,deuteranopia-opt image.png\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, f, err
	}

	config := defaults
	if f.configPath != "" {
		if err := output.LoadConfig(f.configPath, &config); err != nil {
			return nil, f, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			config.OutputDir = cli.OutputDir
		case "format":
			config.Format = cli.Format
		case "quality":
			config.Quality = cli.Quality
		case "ppm-ascii":
			config.PPMASCII = cli.PPMASCII
		case "only":
			config.Transforms = strings.Split(only, ",")
		case "sheet":
			config.Sheet = cli.Sheet
		case "sheet-cell":
			config.SheetCell = cli.SheetCell
		case "j":
			config.Parallelism = cli.Parallelism
		case "v":
			config.Verbose = cli.Verbose
		}
	})

	if fs.NArg() > 0 {
		config.Input = fs.Arg(0)
	}
	return &config, f, nil
}

func run(ctx context.Context, config *output.Config, logger *cvd.Logger) error {
	format, err := output.ParseFormat(config.Format)
	if err != nil {
		return err
	}
	transforms, err := config.SelectedTransforms()
	if err != nil {
		return err
	}

	// 步骤 1: 解码源图像，失败则终止
	logger.Step("打开文件", filepath.Base(config.Input))
	src, srcFormat, err := output.Open(config.Input)
	if err != nil {
		logger.Done("失败")
		return err
	}
	logger.Done(fmt.Sprintf("%s %dx%d", srcFormat, src.Width, src.Height))
	cvd.Debug("source: %s, %d bytes", config.Input, len(src.Pix))

	// 步骤 2: 执行变换
	logger.Step("变换", fmt.Sprintf("%d 个", len(transforms)))
	results, runErr := processor.Run(ctx, src, processor.ProcessOptions{
		Transforms:  transforms,
		Parallelism: config.Parallelism,
	})
	logger.Done(fmt.Sprintf("成功 %d/%d", len(processor.Succeeded(results)), len(results)))
	for _, r := range results {
		if r.Err != nil {
			logger.Warn("%v", r.Err)
		} else if config.Verbose {
			logger.Info("%s", r.Transform.Label())
		}
	}

	// 步骤 3: 写入结果
	opts := config.EncodeOptions()
	_, exportErr := output.ExportAll(results, config.OutputDir, format, opts, logger)

	var sheetErr error
	if config.Sheet != "" {
		logger.Step("拼图", filepath.Base(config.Sheet))
		sheetErr = output.ExportSheet(results, config.Sheet, config.SheetCell, opts)
		if sheetErr != nil {
			logger.Done("失败")
		} else {
			logger.Done("完成")
		}
	}

	err = errors.Join(runErr, exportErr, sheetErr)
	if err == nil {
		logger.Total()
	}
	return err
}
