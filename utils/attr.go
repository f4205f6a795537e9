package utils

import (
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// GetAttrs 块参照上的属性，标签 → 值
func GetAttrs(ins *entities.Insert) map[string]string {
	var attrs = make(map[string]string)
	for _, a := range ins.Attributes {
		attrs[a.Tag] = a.Text
	}

	return attrs
}

// FillAttributes 按块中的属性定义为块参照生成属性值。
// 常量属性不生成实例，values 中没有的标签取定义的默认值
func FillAttributes(block *dxf.Block, ins *entities.Insert, values map[string]string) {
	for _, e := range block.Entities {
		def, ok := e.(*entities.AttributeDefinition)
		if !ok || def.Flags&entities.AttributeConstant != 0 {
			continue
		}
		value, ok := values[def.Tag]
		if !ok {
			value = def.Text
		}
		a := def.Instance(value, core.Point{})
		a.Location = TransformPoint(def.Location.Sub(block.BasePoint), ins)
		a.AlignPoint = TransformPoint(def.AlignPoint.Sub(block.BasePoint), ins)
		a.Rotation = def.Rotation + ins.Rotation
		a.Height = def.Height * ins.Scale.Y
		a.Normal = ins.Normal
		ins.Attributes = append(ins.Attributes, a)
	}
}
