package entities

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
)

// DimensionType 标注类型，取值即组码 70 的低 3 位
type DimensionType int16

const (
	DimLinearType     DimensionType = 0
	DimAlignedType    DimensionType = 1
	DimAngularType    DimensionType = 2
	DimDiameterType   DimensionType = 3
	DimRadiusType     DimensionType = 4
	DimAngular3PtType DimensionType = 5
	DimOrdinateType   DimensionType = 6
)

// Dimension 标注。各定义点的含义随类型变化：
//
//	线性/对齐：13、14 为两条尺寸界线原点，10 为尺寸线上一点
//	两线角度：13、14 为第一条线，15、10 为第二条线，16 为圆弧位置
//	三点角度：15 为顶点，13、14 为两边上的点，10 为圆弧位置
//	半径：10 为圆心，15 为圆上一点；直径：10、15 为直径两端
//	坐标：10 为原点，13 为特征点，14 为引线终点
type Dimension struct {
	BaseEntity
	DimType           DimensionType // 组码 70
	StyleName         string        // 组码 3 (标注样式名称，用于关联 TABLES)
	Block             string        // 组码 2，可选的标注图形块
	ActualMeasurement float64       // 组码 42，为 0 时写出时计算
	Text              string        // 组码 1
	Angle             float64       // 组码 50，仅线性标注
	TextMidPoint      core.Point    // 组码 11 (中间的点)
	DefPoint          core.Point    // 组码 10 (标注线起点)
	MeasureStart      core.Point    // 组码 13 (被测量的起点)
	MeasureEnd        core.Point    // 组码 14 (被测量的终点)
	DefPoint2         core.Point    // 组码 15
	ArcPoint          core.Point    // 组码 16
	LeaderLength      float64       // 组码 40
	TextRotation      float64       // 组码 53
	Attachment        MTextAttachment
	UserTextPosition  bool
	OrdinateX         bool
	Normal            core.Point
	Overrides         DimStyleOverrides
}

func newDimension(t DimensionType) *Dimension {
	return &Dimension{
		BaseEntity: NewBase("DIMENSION"),
		DimType:    t,
		StyleName:  "Standard",
		Attachment: AttachMiddleCenter,
		Normal:     core.ZAxis,
		Overrides:  DimStyleOverrides{},
	}
}

// NewLinearDimension 旋转标注，angle 为尺寸线角度（度）
func NewLinearDimension(p1, p2, line core.Point, angle float64) *Dimension {
	d := newDimension(DimLinearType)
	d.MeasureStart, d.MeasureEnd, d.DefPoint, d.Angle = p1, p2, line, angle
	d.TextMidPoint = d.midText()
	return d
}

// NewAlignedDimension 对齐标注
func NewAlignedDimension(p1, p2, line core.Point) *Dimension {
	d := newDimension(DimAlignedType)
	d.MeasureStart, d.MeasureEnd, d.DefPoint = p1, p2, line
	d.Angle = math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * 180 / math.Pi
	d.TextMidPoint = d.midText()
	return d
}

// NewRadialDimension 半径标注
func NewRadialDimension(center, point core.Point) *Dimension {
	d := newDimension(DimRadiusType)
	d.DefPoint, d.DefPoint2 = center, point
	d.TextMidPoint = center.Lerp(point, 0.5)
	return d
}

// NewDiametricDimension 直径标注，p1、p2 为直径两端
func NewDiametricDimension(p1, p2 core.Point) *Dimension {
	d := newDimension(DimDiameterType)
	d.DefPoint, d.DefPoint2 = p1, p2
	d.TextMidPoint = p1.Lerp(p2, 0.5)
	return d
}

// NewAngular3PointDimension 三点角度标注
func NewAngular3PointDimension(vertex, p1, p2, arc core.Point) *Dimension {
	d := newDimension(DimAngular3PtType)
	d.DefPoint2, d.MeasureStart, d.MeasureEnd, d.DefPoint = vertex, p1, p2, arc
	d.TextMidPoint = arc
	return d
}

// NewAngular2LineDimension 两线角度标注
func NewAngular2LineDimension(s1, e1, s2, e2, arc core.Point) *Dimension {
	d := newDimension(DimAngularType)
	d.MeasureStart, d.MeasureEnd, d.DefPoint2, d.DefPoint, d.ArcPoint = s1, e1, s2, e2, arc
	d.TextMidPoint = arc
	return d
}

// NewOrdinateDimension 坐标标注，xAxis 为真时标注 X 坐标
func NewOrdinateDimension(origin, feature, leader core.Point, xAxis bool) *Dimension {
	d := newDimension(DimOrdinateType)
	d.DefPoint, d.MeasureStart, d.MeasureEnd, d.OrdinateX = origin, feature, leader, xAxis
	d.TextMidPoint = leader
	return d
}

func (d *Dimension) midText() core.Point {
	c13, c14 := d.GetExtensionPoints()
	return c13.Lerp(c14, 0.5)
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	// 将角度从角度制转为弧度制
	rad := d.Angle * math.Pi / 180.0
	v := core.Point{X: math.Cos(rad), Y: math.Sin(rad)}

	// 向量 (P13 - P10) 在方向向量 v 上的投影
	dot13 := d.MeasureStart.Sub(d.DefPoint).Dot(v)
	p13Corner = d.DefPoint.Add(v.Scale(dot13))
	p13Corner.Z = d.DefPoint.Z

	dot14 := d.MeasureEnd.Sub(d.DefPoint).Dot(v)
	p14Corner = d.DefPoint.Add(v.Scale(dot14))
	p14Corner.Z = d.DefPoint.Z

	return
}

// BBox 标注的包围盒包含所有定义点
func (d *Dimension) BBox() core.BBox {
	box := core.NewBBox().Extend(d.DefPoint, d.TextMidPoint)
	switch d.DimType {
	case DimLinearType, DimAlignedType:
		c13, c14 := d.GetExtensionPoints()
		box = box.Extend(d.MeasureStart, d.MeasureEnd, c13, c14)
	case DimAngularType:
		box = box.Extend(d.MeasureStart, d.MeasureEnd, d.DefPoint2, d.ArcPoint)
	case DimAngular3PtType:
		box = box.Extend(d.MeasureStart, d.MeasureEnd, d.DefPoint2)
	case DimRadiusType, DimDiameterType:
		box = box.Extend(d.DefPoint2)
	case DimOrdinateType:
		box = box.Extend(d.MeasureStart, d.MeasureEnd)
	}
	return box
}

func init() {
	Register("DIMENSION", func() Entity { return newDimension(DimLinearType) })
}
