package main

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/weaming/cvd-go/cvd"
)

// printMatrices 打印每种缺陷的模拟矩阵及其转置（像素行向量右乘的形式）和优化增益
func printMatrices(w io.Writer) error {
	for _, d := range cvd.Deficiencies() {
		m, err := d.SimulationMatrix()
		if err != nil {
			return err
		}
		gains, err := d.OptimizationGains()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "=== %s ===\n", d)
		fmt.Fprintf(w, "模拟矩阵 (行 = 输出 R,G,B):\n  %v\n\n",
			mat.Formatted(m.Dense(), mat.Prefix("  "), mat.Squeeze()))
		fmt.Fprintf(w, "转置 (像素 · Mᵀ):\n  %v\n\n",
			mat.Formatted(m.Transpose().Dense(), mat.Prefix("  "), mat.Squeeze()))
		fmt.Fprintf(w, "优化增益: %s x%.1f, %s x%.1f\n  %v\n\n",
			gains[0].Channel, gains[0].Gain, gains[1].Channel, gains[1].Gain,
			mat.Formatted(gains.Matrix().Dense(), mat.Prefix("  "), mat.Squeeze()))
	}
	return nil
}
