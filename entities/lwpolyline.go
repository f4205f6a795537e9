package entities

import (
	"github.com/zooyer/dxfwriter/core"
)

// LwVertex 轻量多段线顶点，坐标为 OCS
type LwVertex struct {
	Position   core.Vec2
	StartWidth float64
	EndWidth   float64
	Bulge      float64
}

// LWPolyline 轻量多段线，顶点直接存放在 OCS 中
type LWPolyline struct {
	BaseEntity
	Vertices      []LwVertex
	Closed        bool
	LinetypeGen   bool    // 组码 70 的 128 位
	ConstantWidth float64 // 组码 43
	Elevation     float64
	Thickness     float64
	Normal        core.Point
}

func NewLWPolyline(points ...core.Vec2) *LWPolyline {
	l := &LWPolyline{BaseEntity: NewBase("LWPOLYLINE"), Normal: core.ZAxis}
	for _, p := range points {
		l.Vertices = append(l.Vertices, LwVertex{Position: p})
	}
	return l
}

func init() {
	Register("LWPOLYLINE", func() Entity { return NewLWPolyline() })
}
