package entities

import "github.com/zooyer/dxfwriter/core"

// Face3D 三维面，顶点为 WCS
type Face3D struct {
	BaseEntity
	Vertices  [4]core.Point
	EdgeFlags int16 // 组码 70，1/2/4/8 依次隐藏第 1~4 条边
}

// NewFace3D 只给 3 个点时第 4 点与第 3 点重合
func NewFace3D(points ...core.Point) *Face3D {
	f := &Face3D{BaseEntity: NewBase("3DFACE")}
	copy(f.Vertices[:], points)
	if len(points) == 3 {
		f.Vertices[3] = points[2]
	}
	return f
}

// Solid 二维填充，顶点为 WCS（写出时转到 OCS）
type Solid struct {
	BaseEntity
	Vertices  [4]core.Point
	Thickness float64
	Normal    core.Point
}

func NewSolid(points ...core.Point) *Solid {
	s := &Solid{BaseEntity: NewBase("SOLID"), Normal: core.ZAxis}
	copy(s.Vertices[:], points)
	if len(points) == 3 {
		s.Vertices[3] = points[2]
	}
	return s
}

// Trace 宽线，与 Solid 共用几何
type Trace struct {
	Solid
}

func NewTrace(points ...core.Point) *Trace {
	t := &Trace{Solid: *NewSolid(points...)}
	t.TypeName = "TRACE"
	return t
}

func init() {
	Register("3DFACE", func() Entity { return NewFace3D() })
	Register("SOLID", func() Entity { return NewSolid() })
	Register("TRACE", func() Entity { return NewTrace() })
}
