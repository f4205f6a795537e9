package entities

import "github.com/zooyer/dxfwriter/core"

// Leader 引线，顶点为 WCS
type Leader struct {
	BaseEntity
	StyleName     string
	Vertices      []core.Point
	ShowArrowhead bool
	Spline        bool // 组码 72，样条路径
	HasHookline   bool
	TextHeight    float64
	TextWidth     float64
	Annotation    Entity // 可选的注释实体（MText、Tolerance 或 Insert），需在同一空间中
	Offset        core.Point
	Normal        core.Point
	Overrides     DimStyleOverrides
}

func NewLeader(vertices ...core.Point) *Leader {
	return &Leader{
		BaseEntity:    NewBase("LEADER"),
		StyleName:     "Standard",
		Vertices:      vertices,
		ShowArrowhead: true,
		Normal:        core.ZAxis,
		Overrides:     DimStyleOverrides{},
	}
}

// Tolerance 形位公差，位置与方向为 WCS
type Tolerance struct {
	BaseEntity
	StyleName string
	Value     string // 例如 {\Fgdt;j}%%v0.1%%v%%v%%v%%v
	Position  core.Point
	Direction core.Point
	Normal    core.Point
}

func NewTolerance(value string, position core.Point) *Tolerance {
	return &Tolerance{
		BaseEntity: NewBase("TOLERANCE"),
		StyleName:  "Standard",
		Value:      value,
		Position:   position,
		Direction:  core.XAxis,
		Normal:     core.ZAxis,
	}
}

func init() {
	Register("LEADER", func() Entity { return NewLeader() })
	Register("TOLERANCE", func() Entity { return NewTolerance("", core.Point{}) })
}
