package entities

import "github.com/zooyer/dxfwriter/core"

// Spline 样条曲线，所有点为 WCS
type Spline struct {
	BaseEntity
	Degree           int16
	ControlPoints    []core.Point
	Weights          []float64 // 为空或全为 1 时是非有理样条
	Knots            []float64 // 为空时按钳制均匀节点生成
	FitPoints        []core.Point
	StartTangent     core.Point // 零向量表示未指定
	EndTangent       core.Point
	Closed           bool
	Periodic         bool
	Normal           core.Point // 非零时视为平面样条
	KnotTolerance    float64
	ControlTolerance float64
	FitTolerance     float64
}

func NewSpline(degree int16, controlPoints ...core.Point) *Spline {
	return &Spline{
		BaseEntity:       NewBase("SPLINE"),
		Degree:           degree,
		ControlPoints:    controlPoints,
		KnotTolerance:    1e-10,
		ControlTolerance: 1e-10,
		FitTolerance:     1e-10,
	}
}

// Rational 是否带权重
func (s *Spline) Rational() bool {
	for _, w := range s.Weights {
		if w != 1 {
			return true
		}
	}
	return false
}

func init() {
	Register("SPLINE", func() Entity { return NewSpline(3) })
}
