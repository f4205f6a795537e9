package entities

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
)

// Circle 圆，圆心为 WCS（写出时转到 OCS）
type Circle struct {
	BaseEntity
	Center    core.Point
	Radius    float64
	Thickness float64
	Normal    core.Point
}

func NewCircle(center core.Point, radius float64) *Circle {
	return &Circle{BaseEntity: NewBase("CIRCLE"), Center: center, Radius: radius, Normal: core.ZAxis}
}

// Arc 圆弧，角度为 OCS 中的度数，逆时针
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Thickness  float64
	Normal     core.Point
}

func NewArc(center core.Point, radius, start, end float64) *Arc {
	return &Arc{
		BaseEntity: NewBase("ARC"),
		Center:     center,
		Radius:     radius,
		StartAngle: start,
		EndAngle:   end,
		Normal:     core.ZAxis,
	}
}

// Ellipse 椭圆，圆心与长轴端点向量均为 WCS
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point // 相对圆心的长轴端点
	Ratio      float64    // 短轴/长轴
	StartParam float64    // 弧度
	EndParam   float64
	Normal     core.Point
}

func NewEllipse(center, majorAxis core.Point, ratio float64) *Ellipse {
	return &Ellipse{
		BaseEntity: NewBase("ELLIPSE"),
		Center:     center,
		MajorAxis:  majorAxis,
		Ratio:      ratio,
		EndParam:   2 * math.Pi,
		Normal:     core.ZAxis,
	}
}

func init() {
	Register("CIRCLE", func() Entity { return NewCircle(core.Point{}, 1) })
	Register("ARC", func() Entity { return NewArc(core.Point{}, 1, 0, 90) })
	Register("ELLIPSE", func() Entity { return NewEllipse(core.Point{}, core.XAxis, 0.5) })
}
