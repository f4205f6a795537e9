package utils

import (
	"math"

	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// 嵌套块展开的最大深度，防止块自引用
const maxInsertDepth = 16

// TransformBBox 执行矩阵变换：将块内局部包围盒变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	if local.Empty() {
		return local
	}

	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	box := core.NewBBox()
	for _, p := range corners {
		box = box.Extend(TransformPoint(p, ins))
	}
	return box
}

// Extents 模型空间的范围，用于 $EXTMIN/$EXTMAX；没有实体时为空包围盒
func Extents(d *dxf.Document) core.BBox {
	box := core.NewBBox()
	for _, e := range d.Entities {
		box = box.Union(GetEntityBBoxWCS(d, e))
	}
	return box
}

// GetEntityBBoxWCS 实体在 WCS 中的包围盒。射线、构造线只计入基点
func GetEntityBBoxWCS(d *dxf.Document, entity entities.Entity) core.BBox {
	return entityBBox(d, entity, 0)
}

func entityBBox(d *dxf.Document, entity entities.Entity, depth int) core.BBox {
	box := core.NewBBox()
	switch e := entity.(type) {
	case *entities.Insert:
		return insertBBox(d, e, depth)
	case *entities.Line:
		return box.Extend(e.Start, e.End)
	case *entities.Point:
		return box.Extend(e.Location)
	case *entities.Ray:
		return box.Extend(e.Origin)
	case *entities.XLine:
		return box.Extend(e.Origin)
	case *entities.Circle:
		return roundBBox(e.Center, e.Radius, e.Normal)
	case *entities.Arc:
		return roundBBox(e.Center, e.Radius, e.Normal)
	case *entities.Ellipse:
		return roundBBox(e.Center, e.MajorAxis.Length(), e.Normal)
	case *entities.Face3D:
		return box.Extend(e.Vertices[:]...)
	case *entities.Solid:
		return box.Extend(e.Vertices[:]...)
	case *entities.Trace:
		return box.Extend(e.Vertices[:]...)
	case *entities.LWPolyline:
		for _, v := range e.Vertices {
			box = box.Extend(core.ObjectToWorld(v.Position.Point(e.Elevation), e.Normal))
		}
	case *entities.Polyline2D:
		for _, v := range e.Vertices {
			box = box.Extend(core.ObjectToWorld(v.Position.Point(e.Elevation), e.Normal))
		}
	case *entities.Polyline3D:
		return box.Extend(e.Vertices...)
	case *entities.PolyfaceMesh:
		return box.Extend(e.Vertices...)
	case *entities.PolygonMesh:
		return box.Extend(e.Vertices...)
	case *entities.Spline:
		return box.Extend(e.ControlPoints...).Extend(e.FitPoints...)
	case *entities.Text:
		return box.Extend(e.Position, e.AlignPoint)
	case *entities.MText:
		return box.Extend(e.Position)
	case *entities.Attrib:
		return box.Extend(e.Location)
	case *entities.AttributeDefinition:
		return box.Extend(e.Location)
	case *entities.Hatch:
		for _, path := range e.Paths {
			for _, p := range pathPoints(path) {
				box = box.Extend(core.ObjectToWorld(p.Point(e.Elevation), e.Normal))
			}
		}
	case *entities.Image:
		return box.Extend(e.Position, e.Position.Add(e.U.Scale(e.Size.X)).Add(e.V.Scale(e.Size.Y)))
	case *entities.Wipeout:
		for _, p := range e.Boundary {
			box = box.Extend(core.ObjectToWorld(p.Point(e.Elevation), e.Normal))
		}
	case *entities.Underlay:
		return box.Extend(e.Position)
	case *entities.Dimension:
		return e.BBox()
	case *entities.Leader:
		return box.Extend(e.Vertices...)
	case *entities.Tolerance:
		return box.Extend(e.Position)
	case *entities.MLine:
		return box.Extend(e.Vertices...)
	case *entities.Mesh:
		return box.Extend(e.Vertices...)
	case *entities.Shape:
		return box.Extend(e.Position)
	}
	return box
}

// roundBBox 圆类实体的保守包围盒，法向量不是 Z 轴时按球计算
func roundBBox(center core.Point, radius float64, normal core.Point) core.BBox {
	r := core.Point{X: radius, Y: radius, Z: radius}
	if core.IsWorldZ(normal) {
		r.Z = 0
	}
	return core.NewBBox().Extend(center.Sub(r), center.Add(r))
}

// pathPoints 边界路径上的特征点（OCS）
func pathPoints(path entities.HatchPath) []core.Vec2 {
	var pts []core.Vec2
	if path.Polyline != nil {
		for _, v := range path.Polyline.Vertices {
			pts = append(pts, v.Position)
		}
		return pts
	}
	for _, edge := range path.Edges {
		switch e := edge.(type) {
		case *entities.LineEdge:
			pts = append(pts, e.Start, e.End)
		case *entities.ArcEdge:
			pts = append(pts,
				core.Vec2{X: e.Center.X - e.Radius, Y: e.Center.Y - e.Radius},
				core.Vec2{X: e.Center.X + e.Radius, Y: e.Center.Y + e.Radius})
		case *entities.EllipseEdge:
			r := math.Hypot(e.MajorAxis.X, e.MajorAxis.Y)
			pts = append(pts,
				core.Vec2{X: e.Center.X - r, Y: e.Center.Y - r},
				core.Vec2{X: e.Center.X + r, Y: e.Center.Y + r})
		case *entities.SplineEdge:
			pts = append(pts, e.ControlPoints...)
			pts = append(pts, e.FitPoints...)
		}
	}
	return pts
}

// insertBBox 块内实体在插入变换后的包围盒，嵌套块参照合并变换后递归
func insertBBox(d *dxf.Document, ins *entities.Insert, depth int) core.BBox {
	block := d.Block(ins.BlockName)
	if block == nil || len(block.Entities) == 0 || depth >= maxInsertDepth {
		return core.NewBBox().Extend(ins.InsertionPoint)
	}

	box := core.NewBBox()
	for _, sub := range block.Entities {
		if child, ok := sub.(*entities.Insert); ok {
			box = box.Union(insertBBox(d, CombineInserts(ins, child, block.BasePoint), depth+1))
			continue
		}
		if _, ok := sub.(*entities.AttributeDefinition); ok {
			continue
		}
		local := entityBBox(d, sub, depth+1)
		if local.Empty() {
			continue
		}
		local.Min, local.Max = local.Min.Sub(block.BasePoint), local.Max.Sub(block.BasePoint)
		box = box.Union(TransformBBox(local, ins))
	}
	for _, a := range ins.Attributes {
		box = box.Extend(a.Location)
	}
	return box
}
