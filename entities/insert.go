package entities

import "github.com/zooyer/dxfwriter/core"

// Insert 块参照，插入点为 WCS（写出时转到 OCS）
type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	Normal         core.Point
	Attributes     []*Attrib
}

func NewInsert(block string, at core.Point) *Insert {
	return &Insert{
		BaseEntity:     NewBase("INSERT"),
		BlockName:      block,
		InsertionPoint: at,
		Scale:          core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		Normal:         core.ZAxis,
		Attributes:     []*Attrib{},
	}
}

// Attr 按标签查找属性值
func (i *Insert) Attr(tag string) string {
	for _, a := range i.Attributes {
		if a.Tag == tag {
			return a.Text
		}
	}
	return ""
}

func init() {
	Register("INSERT", func() Entity { return NewInsert("", core.Point{}) })
}
