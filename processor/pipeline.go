package processor

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/weaming/cvd-go/cvd"
)

// ProcessOptions 处理选项
type ProcessOptions struct {
	Transforms  []cvd.Transform // 为空时执行全部六个变换
	Parallelism int             // 同时执行的变换数，<= 0 时使用 CPU 数
}

// Result 单个变换的结果
type Result struct {
	Transform cvd.Transform
	Image     *cvd.Buffer
	Err       error
}

// Run 对同一源缓冲区执行所有变换
//
// 各变换相互独立地并行执行，只读访问 src。某个变换失败不会影响其他变换；
// 返回的结果与 opts.Transforms 顺序一致，错误为全部失败的合并。
func Run(ctx context.Context, src *cvd.Buffer, opts ProcessOptions) ([]Result, error) {
	transforms := opts.Transforms
	if len(transforms) == 0 {
		transforms = cvd.Transforms()
	}
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]Result, len(transforms))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, t := range transforms {
		i, t := i, t
		results[i].Transform = t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			img, err := t.Apply(src)
			if err != nil {
				results[i].Err = fmt.Errorf("%s: %w", t.Label(), err)
				return nil
			}
			results[i].Image = img
			return nil
		})
	}
	// 各 goroutine 把错误记录在自己的结果中并返回 nil，Wait 总是返回 nil
	g.Wait()

	return results, Errors(results)
}

// Errors 合并结果中的全部错误
func Errors(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

// Succeeded 返回成功的结果
func Succeeded(results []Result) []Result {
	var ok []Result
	for _, r := range results {
		if r.Err == nil && r.Image != nil {
			ok = append(ok, r)
		}
	}
	return ok
}
