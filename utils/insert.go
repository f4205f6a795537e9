package utils

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// CombineInserts 合并嵌套块的变换，base 为父块的基点。
// 仅在父块为等比缩放时结果精确
func CombineInserts(parent, child *entities.Insert, base core.Point) *entities.Insert {
	// 1. 旋转叠加
	combinedRotation := parent.Rotation + child.Rotation

	// 2. 缩放叠加
	combinedScale := core.Point{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}

	// 3. 插入点叠加：子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
	combinedInsertionPoint := TransformPoint(child.InsertionPoint.Sub(base), parent)

	ins := entities.NewInsert(child.BlockName, combinedInsertionPoint)
	ins.Rotation = combinedRotation
	ins.Scale = combinedScale
	ins.Normal = parent.Normal
	return ins
}
