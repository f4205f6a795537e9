package entities

import "github.com/zooyer/dxfwriter/core"

// SmoothType 多段线的平滑方式，取值即组码 75
type SmoothType int16

const (
	SmoothNone      SmoothType = 0
	SmoothQuadratic SmoothType = 5
	SmoothCubic     SmoothType = 6
	SmoothBezier    SmoothType = 8 // 仅用于多边形网格
)

// Polyline2D 旧式二维多段线，仅在需要样条平滑时使用，否则应使用 LWPolyline
type Polyline2D struct {
	BaseEntity
	Vertices    []LwVertex // OCS
	Closed      bool
	LinetypeGen bool
	Smooth      SmoothType
	Elevation   float64
	Thickness   float64
	Normal      core.Point
}

func NewPolyline2D(smooth SmoothType, points ...core.Vec2) *Polyline2D {
	p := &Polyline2D{BaseEntity: NewBase("POLYLINE"), Smooth: smooth, Normal: core.ZAxis}
	for _, v := range points {
		p.Vertices = append(p.Vertices, LwVertex{Position: v})
	}
	return p
}

// Polyline3D 三维多段线，顶点为 WCS
type Polyline3D struct {
	BaseEntity
	Vertices []core.Point
	Closed   bool
	Smooth   SmoothType
}

func NewPolyline3D(points ...core.Point) *Polyline3D {
	return &Polyline3D{BaseEntity: NewBase("POLYLINE"), Vertices: points}
}

// PolyfaceMesh 多面网格。Faces 中的索引从 1 开始，负数表示该边不可见
type PolyfaceMesh struct {
	BaseEntity
	Vertices []core.Point
	Faces    [][]int16 // 每个面 3~4 个索引
}

func NewPolyfaceMesh(vertices []core.Point, faces [][]int16) *PolyfaceMesh {
	return &PolyfaceMesh{BaseEntity: NewBase("POLYLINE"), Vertices: vertices, Faces: faces}
}

// PolygonMesh M×N 多边形网格，Vertices 按行存放（M 行，每行 N 个）
type PolygonMesh struct {
	BaseEntity
	M, N     int16
	Vertices []core.Point
	ClosedM  bool
	ClosedN  bool
	Smooth   SmoothType
	DensityM int16 // 平滑后的 M 向密度，0 表示取 $SURFU
	DensityN int16 // 0 表示取 $SURFV
}

func NewPolygonMesh(m, n int16, vertices []core.Point) *PolygonMesh {
	return &PolygonMesh{BaseEntity: NewBase("POLYLINE"), M: m, N: n, Vertices: vertices}
}

// Vertex 返回第 i 行第 j 列的控制点
func (p *PolygonMesh) Vertex(i, j int) core.Point {
	return p.Vertices[i*int(p.N)+j]
}

func init() {
	Register("POLYLINE2D", func() Entity { return NewPolyline2D(SmoothNone) })
	Register("POLYLINE3D", func() Entity { return NewPolyline3D() })
	Register("POLYFACE", func() Entity { return NewPolyfaceMesh(nil, nil) })
	Register("POLYGONMESH", func() Entity { return NewPolygonMesh(0, 0, nil) })
}
