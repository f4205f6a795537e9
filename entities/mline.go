package entities

import "github.com/zooyer/dxfwriter/core"

// MLineJustification 多线对正方式，取值即组码 70
type MLineJustification int16

const (
	MLineTop MLineJustification = iota
	MLineZero
	MLineBottom
)

// MLine 多线，顶点为 WCS，元素由引用的多线样式决定
type MLine struct {
	BaseEntity
	StyleName     string
	Scale         float64
	Justification MLineJustification
	Vertices      []core.Point
	Closed        bool
	NoStartCaps   bool
	NoEndCaps     bool
	Normal        core.Point
}

func NewMLine(vertices ...core.Point) *MLine {
	return &MLine{
		BaseEntity:    NewBase("MLINE"),
		StyleName:     "Standard",
		Scale:         1,
		Justification: MLineZero,
		Vertices:      vertices,
		Normal:        core.ZAxis,
	}
}

// Mesh 细分网格 (AcDbSubDMesh)，面索引从 0 开始
type Mesh struct {
	BaseEntity
	Vertices    []core.Point
	Faces       [][]int32
	Edges       [][2]int32
	Subdivision int32
}

func NewMesh(vertices []core.Point, faces [][]int32) *Mesh {
	return &Mesh{BaseEntity: NewBase("MESH"), Vertices: vertices, Faces: faces}
}

// Shape 形，引用形文件样式中的形名，位置为 WCS（写出时转到 OCS）
type Shape struct {
	BaseEntity
	Name        string
	StyleName   string
	Position    core.Point
	Size        float64
	Rotation    float64
	WidthFactor float64
	Oblique     float64
	Thickness   float64
	Normal      core.Point
}

func NewShape(name, style string, position core.Point, size float64) *Shape {
	return &Shape{
		BaseEntity:  NewBase("SHAPE"),
		Name:        name,
		StyleName:   style,
		Position:    position,
		Size:        size,
		WidthFactor: 1,
		Normal:      core.ZAxis,
	}
}

func init() {
	Register("MLINE", func() Entity { return NewMLine() })
	Register("MESH", func() Entity { return NewMesh(nil, nil) })
	Register("SHAPE", func() Entity { return NewShape("", "", core.Point{}, 1) })
}
