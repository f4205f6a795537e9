package utils

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// Measure 标注的实际测量值（组码 42）。已指定时直接返回；
// 长度按图形单位，角度为弧度
func Measure(dim *entities.Dimension) float64 {
	if dim.ActualMeasurement != 0 {
		return dim.ActualMeasurement
	}

	switch dim.DimType {
	case entities.DimLinearType:
		rad := dim.Angle * math.Pi / 180.0
		dir := core.Point{X: math.Cos(rad), Y: math.Sin(rad)}
		return math.Abs(dim.MeasureEnd.Sub(dim.MeasureStart).Dot(dir))
	case entities.DimAlignedType:
		return dim.MeasureEnd.Sub(dim.MeasureStart).Length()
	case entities.DimRadiusType, entities.DimDiameterType:
		return dim.DefPoint2.Sub(dim.DefPoint).Length()
	case entities.DimAngular3PtType:
		return angleBetween(dim.MeasureStart.Sub(dim.DefPoint2), dim.MeasureEnd.Sub(dim.DefPoint2))
	case entities.DimAngularType:
		return angleBetween(dim.MeasureEnd.Sub(dim.MeasureStart), dim.DefPoint.Sub(dim.DefPoint2))
	case entities.DimOrdinateType:
		if dim.OrdinateX {
			return math.Abs(dim.MeasureStart.X - dim.DefPoint.X)
		}
		return math.Abs(dim.MeasureStart.Y - dim.DefPoint.Y)
	}
	return 0
}

func angleBetween(a, b core.Point) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	c := a.Dot(b) / (la * lb)
	return math.Acos(math.Max(-1, math.Min(1, c)))
}
