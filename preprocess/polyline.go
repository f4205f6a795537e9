package preprocess

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// 多段线组码 70 的标志位
const (
	PolylineClosed      int16 = 1
	PolylineCurveFit    int16 = 2
	PolylineSplineFit   int16 = 4
	Polyline3D          int16 = 8
	PolylineMesh        int16 = 16
	PolylineMeshClosedN int16 = 32
	PolylinePolyface    int16 = 64
	PolylineLinetypeGen int16 = 128
)

// 顶点组码 70 的标志位
const (
	VertexBulge         int16 = 1
	VertexSplineFit     int16 = 8
	VertexFrameControl  int16 = 16
	Vertex3D            int16 = 32
	VertexMesh          int16 = 64
	VertexPolyface      int16 = 128
	VertexPolyfaceShape       = VertexPolyface | VertexMesh
)

// Vertex 规范化后的顶点，写出为 VERTEX 实体
type Vertex struct {
	Handle     core.Handle
	Position   core.Point
	Flags      int16
	StartWidth float64
	EndWidth   float64
	Bulge      float64
	Indices    []int16 // 面记录的 71~74
}

// FaceRecord 是否是多面网格的面记录
func (v *Vertex) FaceRecord() bool { return v.Flags == VertexPolyface }

// Polyline 二维平滑、三维、多面网格与多边形网格统一后的 POLYLINE
type Polyline struct {
	Source         entities.Entity
	Subclass       string // AcDb2dPolyline 等
	VertexSubclass string
	Flags          int16
	MeshM          int16 // 组码 71
	MeshN          int16 // 组码 72
	DensityM       int16 // 组码 73
	DensityN       int16 // 组码 74
	Smooth         entities.SmoothType
	Elevation      float64
	Thickness      float64
	Normal         core.Point
	Vertices       []Vertex
	SeqEnd         core.Handle
}

// normalize 只生成几何，句柄由调用方随后分配
func normalize(e entities.Entity, header surfaceDensity) *Polyline {
	switch p := e.(type) {
	case *entities.Polyline2D:
		return normalize2D(p, header.splineSegs)
	case *entities.Polyline3D:
		return normalize3D(p, header.splineSegs)
	case *entities.PolyfaceMesh:
		return normalizePolyface(p)
	case *entities.PolygonMesh:
		return normalizeMesh(p, header)
	}
	return nil
}

type surfaceDensity struct {
	splineSegs int
	surfU      int16
	surfV      int16
}

// dropClosingPoint 闭合时去掉与起点重合的末点
func dropClosingPoint(points []core.Point, closed bool) []core.Point {
	if closed && len(points) > 2 && points[0].Equal(points[len(points)-1], core.Epsilon) {
		return points[:len(points)-1]
	}
	return points
}

func fitCount(n, segs int, closed bool) int {
	if segs < 1 {
		segs = 1
	}
	if closed {
		return segs * n
	}
	return segs*(n-1) + 1
}

func normalize2D(p *entities.Polyline2D, segs int) *Polyline {
	pl := &Polyline{
		Source:         p,
		Subclass:       "AcDb2dPolyline",
		VertexSubclass: "AcDb2dVertex",
		Smooth:         p.Smooth,
		Elevation:      p.Elevation,
		Thickness:      p.Thickness,
		Normal:         p.Normal,
	}
	if p.Closed {
		pl.Flags |= PolylineClosed
	}
	if p.LinetypeGen {
		pl.Flags |= PolylineLinetypeGen
	}
	if p.Smooth == entities.SmoothNone {
		for _, v := range p.Vertices {
			pl.Vertices = append(pl.Vertices, Vertex{
				Position:   v.Position.Point(p.Elevation),
				StartWidth: v.StartWidth,
				EndWidth:   v.EndWidth,
				Bulge:      v.Bulge,
			})
		}
		return pl
	}

	pl.Flags |= PolylineSplineFit
	ctrl := make([]core.Point, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		ctrl = append(ctrl, v.Position.Point(p.Elevation))
	}
	ctrl = dropClosingPoint(ctrl, p.Closed)
	for _, c := range ctrl {
		pl.Vertices = append(pl.Vertices, Vertex{Position: c, Flags: VertexFrameControl})
	}
	for _, f := range sample(ctrl, p.Smooth, p.Closed, fitCount(len(ctrl), segs, p.Closed)) {
		f.Z = p.Elevation
		pl.Vertices = append(pl.Vertices, Vertex{Position: f, Flags: VertexSplineFit})
	}
	return pl
}

func normalize3D(p *entities.Polyline3D, segs int) *Polyline {
	pl := &Polyline{
		Source:         p,
		Subclass:       "AcDb3dPolyline",
		VertexSubclass: "AcDb3dPolylineVertex",
		Flags:          Polyline3D,
		Smooth:         p.Smooth,
		Normal:         core.ZAxis,
	}
	if p.Closed {
		pl.Flags |= PolylineClosed
	}
	if p.Smooth == entities.SmoothNone || p.Smooth == entities.SmoothBezier {
		pl.Smooth = entities.SmoothNone
		for _, v := range p.Vertices {
			pl.Vertices = append(pl.Vertices, Vertex{Position: v, Flags: Vertex3D})
		}
		return pl
	}

	pl.Flags |= PolylineSplineFit
	ctrl := dropClosingPoint(p.Vertices, p.Closed)
	for _, c := range ctrl {
		pl.Vertices = append(pl.Vertices, Vertex{Position: c, Flags: Vertex3D | VertexFrameControl})
	}
	for _, f := range sample(ctrl, p.Smooth, p.Closed, fitCount(len(ctrl), segs, p.Closed)) {
		pl.Vertices = append(pl.Vertices, Vertex{Position: f, Flags: Vertex3D | VertexSplineFit})
	}
	return pl
}

func normalizePolyface(p *entities.PolyfaceMesh) *Polyline {
	pl := &Polyline{
		Source:         p,
		Subclass:       "AcDbPolyFaceMesh",
		VertexSubclass: "AcDbPolyFaceMeshVertex",
		Flags:          PolylinePolyface,
		MeshM:          int16(len(p.Vertices)),
		MeshN:          int16(len(p.Faces)),
		Normal:         core.ZAxis,
	}
	for _, v := range p.Vertices {
		pl.Vertices = append(pl.Vertices, Vertex{Position: v, Flags: VertexPolyfaceShape})
	}
	for _, f := range p.Faces {
		pl.Vertices = append(pl.Vertices, Vertex{Flags: VertexPolyface, Indices: append([]int16(nil), f...)})
	}
	return pl
}

func normalizeMesh(p *entities.PolygonMesh, header surfaceDensity) *Polyline {
	pl := &Polyline{
		Source:         p,
		Subclass:       "AcDbPolygonMesh",
		VertexSubclass: "AcDbPolygonMeshVertex",
		Flags:          PolylineMesh,
		MeshM:          p.M,
		MeshN:          p.N,
		Smooth:         p.Smooth,
		Normal:         core.ZAxis,
	}
	if p.ClosedM {
		pl.Flags |= PolylineClosed
	}
	if p.ClosedN {
		pl.Flags |= PolylineMeshClosedN
	}
	if p.Smooth == entities.SmoothNone {
		for _, v := range p.Vertices {
			pl.Vertices = append(pl.Vertices, Vertex{Position: v, Flags: VertexMesh})
		}
		return pl
	}

	pl.Flags |= PolylineSplineFit
	pl.DensityM = meshDensity(p.DensityM, header.surfU)
	pl.DensityN = meshDensity(p.DensityN, header.surfV)
	for _, v := range p.Vertices {
		pl.Vertices = append(pl.Vertices, Vertex{Position: v, Flags: VertexMesh | VertexFrameControl})
	}
	for _, f := range surface(p, int(pl.DensityM), int(pl.DensityN)) {
		pl.Vertices = append(pl.Vertices, Vertex{Position: f, Flags: VertexMesh | VertexSplineFit})
	}
	return pl
}

// meshDensity 未指定时取头变量，至少细分为 3
func meshDensity(own, fallback int16) int16 {
	d := own
	if d == 0 {
		d = fallback
	}
	return max(d, 3)
}
