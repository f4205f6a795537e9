package utils

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// TransformPoint 将块内（已减去基点的）局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	rad := ins.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y
	tz := p.Z * ins.Scale.Z

	// 2. 旋转（在插入实体的 OCS 中）
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 转到 WCS 后平移
	w := core.ObjectToWorld(core.Point{X: rx, Y: ry, Z: tz}, ins.Normal)
	return w.Add(ins.InsertionPoint)
}
