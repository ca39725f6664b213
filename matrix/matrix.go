package matrix

import "gonum.org/v1/gonum/mat"

// Matrix3x3 表示 3x3 矩阵（行优先存储，行 = 输出通道，列 = 输入通道）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量
type Vector3 [3]float64

// Apply 应用矩阵到向量 (matrix * vector)
//
// 每个乘积先显式转换为 float64 再相加，禁止编译器融合乘加 (FMA)，
// 保证在所有架构上按从左到右的顺序逐项求和。
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		float64(m[0]*v[0]) + float64(m[1]*v[1]) + float64(m[2]*v[2]),
		float64(m[3]*v[0]) + float64(m[4]*v[1]) + float64(m[5]*v[2]),
		float64(m[6]*v[0]) + float64(m[7]*v[1]) + float64(m[8]*v[2]),
	}
}

// Transpose 转置矩阵
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Diagonal3x3 从向量创建对角矩阵
func Diagonal3x3(v Vector3) Matrix3x3 {
	return Matrix3x3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Dense 转换为 gonum 矩阵（拷贝），用于打印和检查
func (m Matrix3x3) Dense() *mat.Dense {
	data := make([]float64, 9)
	copy(data, m[:])
	return mat.NewDense(3, 3, data)
}
