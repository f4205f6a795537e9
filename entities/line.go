package entities

import (
	"github.com/zooyer/dxfwriter/core"
)

// Line 直线，端点为 WCS
type Line struct {
	BaseEntity
	Start, End core.Point
	Thickness  float64
	Normal     core.Point
}

func NewLine(start, end core.Point) *Line {
	return &Line{BaseEntity: NewBase("LINE"), Start: start, End: end, Normal: core.ZAxis}
}

// Point 点实体，位置为 WCS
type Point struct {
	BaseEntity
	Location  core.Point
	Thickness float64
	Rotation  float64 // 组码 50，OCS 中 X 轴的角度
	Normal    core.Point
}

func NewPoint(location core.Point) *Point {
	return &Point{BaseEntity: NewBase("POINT"), Location: location, Normal: core.ZAxis}
}

// Ray 射线
type Ray struct {
	BaseEntity
	Origin    core.Point
	Direction core.Point
}

func NewRay(origin, direction core.Point) *Ray {
	return &Ray{BaseEntity: NewBase("RAY"), Origin: origin, Direction: direction}
}

// XLine 构造线（双向无限长）
type XLine struct {
	BaseEntity
	Origin    core.Point
	Direction core.Point
}

func NewXLine(origin, direction core.Point) *XLine {
	return &XLine{BaseEntity: NewBase("XLINE"), Origin: origin, Direction: direction}
}

func init() {
	Register("LINE", func() Entity { return NewLine(core.Point{}, core.Point{}) })
	Register("POINT", func() Entity { return NewPoint(core.Point{}) })
	Register("RAY", func() Entity { return NewRay(core.Point{}, core.XAxis) })
	Register("XLINE", func() Entity { return NewXLine(core.Point{}, core.XAxis) })
}
