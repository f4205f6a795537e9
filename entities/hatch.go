package entities

import "github.com/zooyer/dxfwriter/core"

// HatchPathFlags 边界路径标志，取值即组码 92
type HatchPathFlags int32

const (
	PathExternal  HatchPathFlags = 1
	PathPolyline  HatchPathFlags = 2
	PathDerived   HatchPathFlags = 4
	PathTextbox   HatchPathFlags = 8
	PathOutermost HatchPathFlags = 16
)

// HatchEdge 边界边：*LineEdge、*ArcEdge、*EllipseEdge、*SplineEdge
type HatchEdge interface {
	EdgeType() int16
}

type LineEdge struct {
	Start, End core.Vec2
}

type ArcEdge struct {
	Center     core.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

type EllipseEdge struct {
	Center     core.Vec2
	MajorAxis  core.Vec2 // 相对圆心
	Ratio      float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

type SplineEdge struct {
	Degree        int32
	Rational      bool
	Periodic      bool
	Knots         []float64
	ControlPoints []core.Vec2
	Weights       []float64
	FitPoints     []core.Vec2
	StartTangent  core.Vec2
	EndTangent    core.Vec2
}

func (*LineEdge) EdgeType() int16    { return 1 }
func (*ArcEdge) EdgeType() int16     { return 2 }
func (*EllipseEdge) EdgeType() int16 { return 3 }
func (*SplineEdge) EdgeType() int16  { return 4 }

// HatchPolyline 多段线形式的边界
type HatchPolyline struct {
	Vertices []LwVertex // 只使用 Position 与 Bulge
	Closed   bool
}

// HatchPath 一条边界路径，Polyline 非空时忽略 Edges
type HatchPath struct {
	Flags    HatchPathFlags
	Edges    []HatchEdge
	Polyline *HatchPolyline
}

// HatchPatternLine 图案定义中的一条线族
type HatchPatternLine struct {
	Angle  float64
	Origin core.Vec2
	Delta  core.Vec2
	Dashes []float64
}

// HatchGradient 渐变填充
type HatchGradient struct {
	Name        string // LINEAR、CYLINDER、SPHERICAL ...
	Angle       float64
	Centered    bool
	SingleColor bool
	Tint        float64
	Color1      core.Color
	Color2      core.Color
}

// HatchPatternType 图案类型，取值即组码 76
type HatchPatternType int16

const (
	PatternUserDefined HatchPatternType = 0
	PatternPredefined  HatchPatternType = 1
	PatternCustom      HatchPatternType = 2
)

// Hatch 填充。边界坐标为 OCS，Elevation 为 OCS 中的 Z
type Hatch struct {
	BaseEntity
	PatternName  string
	SolidFill    bool
	PatternType  HatchPatternType
	PatternAngle float64
	PatternScale float64
	PatternLines []HatchPatternLine
	Double       bool
	Associative  bool
	Style        int16 // 组码 75：0 普通，1 外部，2 忽略
	Paths        []HatchPath
	Seeds        []core.Vec2
	Gradient     *HatchGradient
	Elevation    float64
	Normal       core.Point
}

// NewSolidHatch 实体填充
func NewSolidHatch(paths ...HatchPath) *Hatch {
	return &Hatch{
		BaseEntity:   NewBase("HATCH"),
		PatternName:  "SOLID",
		SolidFill:    true,
		PatternType:  PatternPredefined,
		PatternScale: 1,
		Paths:        paths,
		Normal:       core.ZAxis,
	}
}

// NewPatternHatch 图案填充，lines 为空时由读取方按图案名查找定义
func NewPatternHatch(name string, scale, angle float64, lines []HatchPatternLine, paths ...HatchPath) *Hatch {
	h := NewSolidHatch(paths...)
	h.PatternName = name
	h.SolidFill = false
	h.PatternScale = scale
	h.PatternAngle = angle
	h.PatternLines = lines
	return h
}

// PolylinePath 由顶点构造闭合多段线边界
func PolylinePath(points ...core.Vec2) HatchPath {
	pl := &HatchPolyline{Closed: true}
	for _, p := range points {
		pl.Vertices = append(pl.Vertices, LwVertex{Position: p})
	}
	return HatchPath{Flags: PathExternal | PathPolyline, Polyline: pl}
}

func init() {
	Register("HATCH", func() Entity { return NewSolidHatch() })
}
