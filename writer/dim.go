package writer

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/utils"
)

// dimension 定义点为 WCS，文字中点与两线角度的圆弧点为 OCS
func (d *docWriter) dimension(dim *entities.Dimension) {
	w := d.w
	normal := direction(dim.Normal)
	w.Raw(100, "AcDbDimension")
	if dim.Block != "" {
		w.String(2, dim.Block)
	}
	w.Point(10, dim.DefPoint)
	w.Point(11, ocs(dim.TextMidPoint, normal))

	flags := int16(dim.DimType) | 32
	if dim.DimType == entities.DimOrdinateType && dim.OrdinateX {
		flags |= 64
	}
	if dim.UserTextPosition {
		flags |= 128
	}
	w.Int16(70, flags)
	attachment := dim.Attachment
	if attachment == 0 {
		attachment = entities.AttachMiddleCenter
	}
	w.Int16(71, int16(attachment))
	if dim.Text != "" {
		w.String(1, dim.Text)
	}
	w.Double(42, utils.Measure(dim))
	if dim.TextRotation != 0 {
		w.Double(53, dim.TextRotation)
	}
	d.extrusion(normal)
	w.String(3, dim.StyleName)

	switch dim.DimType {
	case entities.DimLinearType:
		w.Raw(100, "AcDbAlignedDimension")
		w.Point(13, dim.MeasureStart)
		w.Point(14, dim.MeasureEnd)
		w.Double(50, dim.Angle)
		w.Raw(100, "AcDbRotatedDimension")
	case entities.DimAlignedType:
		w.Raw(100, "AcDbAlignedDimension")
		w.Point(13, dim.MeasureStart)
		w.Point(14, dim.MeasureEnd)
	case entities.DimAngularType:
		w.Raw(100, "AcDb2LineAngularDimension")
		w.Point(13, dim.MeasureStart)
		w.Point(14, dim.MeasureEnd)
		w.Point(15, dim.DefPoint2)
		w.Point(16, ocs(dim.ArcPoint, normal))
	case entities.DimAngular3PtType:
		w.Raw(100, "AcDb3PointAngularDimension")
		w.Point(13, dim.MeasureStart)
		w.Point(14, dim.MeasureEnd)
		w.Point(15, dim.DefPoint2)
	case entities.DimDiameterType:
		w.Raw(100, "AcDbDiametricDimension")
		w.Point(15, dim.DefPoint2)
		w.Double(40, dim.LeaderLength)
	case entities.DimRadiusType:
		w.Raw(100, "AcDbRadialDimension")
		w.Point(15, dim.DefPoint2)
		w.Double(40, dim.LeaderLength)
	case entities.DimOrdinateType:
		w.Raw(100, "AcDbOrdinateDimension")
		w.Point(13, dim.MeasureStart)
		w.Point(14, dim.MeasureEnd)
	}
}

// annotationType LEADER 组码 73
func annotationType(e entities.Entity) int16 {
	switch e.(type) {
	case *entities.MText:
		return 0
	case *entities.Tolerance:
		return 1
	case *entities.Insert:
		return 2
	}
	return 3
}

func (d *docWriter) leader(l *entities.Leader) {
	w := d.w
	w.Raw(100, "AcDbLeader")
	w.String(3, l.StyleName)
	w.Int16(71, boolInt(l.ShowArrowhead))
	w.Int16(72, boolInt(l.Spline))
	w.Int16(73, annotationType(l.Annotation))
	w.Int16(74, 0)
	w.Int16(75, boolInt(l.HasHookline))
	w.Double(40, l.TextHeight)
	w.Double(41, l.TextWidth)
	w.Int16(76, int16(len(l.Vertices)))
	for _, v := range l.Vertices {
		w.Point(10, v)
	}
	if l.Annotation != nil {
		w.OptHandle(340, d.pre.Handle(l.Annotation))
	}
	w.Point(210, direction(l.Normal))
	w.Point(211, core.XAxis)
	w.Point(212, core.Point{})
	w.Point(213, l.Offset)
}
