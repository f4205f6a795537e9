package writer

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

func (d *docWriter) line(l *entities.Line) {
	w := d.w
	w.Raw(100, "AcDbLine")
	d.thickness(l.Thickness)
	w.Point(10, l.Start)
	w.Point(11, l.End)
	d.extrusion(l.Normal)
}

func (d *docWriter) point(p *entities.Point) {
	w := d.w
	w.Raw(100, "AcDbPoint")
	w.Point(10, p.Location)
	d.thickness(p.Thickness)
	d.extrusion(p.Normal)
	if p.Rotation != 0 {
		w.Double(50, p.Rotation)
	}
}

func (d *docWriter) circle(c *entities.Circle) {
	w := d.w
	w.Raw(100, "AcDbCircle")
	d.thickness(c.Thickness)
	w.Point(10, ocs(c.Center, c.Normal))
	w.Double(40, c.Radius)
	d.extrusion(c.Normal)
}

func (d *docWriter) arc(a *entities.Arc) {
	w := d.w
	w.Raw(100, "AcDbCircle")
	d.thickness(a.Thickness)
	w.Point(10, ocs(a.Center, a.Normal))
	w.Double(40, a.Radius)
	d.extrusion(a.Normal)
	w.Raw(100, "AcDbArc")
	w.Double(50, a.StartAngle)
	w.Double(51, a.EndAngle)
}

// ellipse 圆心与长轴都是 WCS
func (d *docWriter) ellipse(e *entities.Ellipse) {
	w := d.w
	w.Raw(100, "AcDbEllipse")
	w.Point(10, e.Center)
	w.Point(11, e.MajorAxis)
	w.Point(210, direction(e.Normal))
	w.Double(40, e.Ratio)
	w.Double(41, e.StartParam)
	w.Double(42, e.EndParam)
}

func (d *docWriter) ray(subclass string, origin, dir core.Point) {
	w := d.w
	w.Raw(100, subclass)
	w.Point(10, origin)
	if !dir.IsZero() {
		dir = dir.Normalize()
	}
	w.Point(11, dir)
}

func (d *docWriter) face(f *entities.Face3D) {
	w := d.w
	w.Raw(100, "AcDbFace")
	for i, p := range f.Vertices {
		w.Point(10+i, p)
	}
	if f.EdgeFlags != 0 {
		w.Int16(70, f.EdgeFlags)
	}
}

// solid SOLID 与 TRACE 的顶点在 OCS 中
func (d *docWriter) solid(s *entities.Solid) {
	w := d.w
	w.Raw(100, "AcDbTrace")
	for i, p := range s.Vertices {
		w.Point(10+i, ocs(p, s.Normal))
	}
	d.thickness(s.Thickness)
	d.extrusion(s.Normal)
}

func (d *docWriter) shape(s *entities.Shape) {
	w := d.w
	w.Raw(100, "AcDbShape")
	d.thickness(s.Thickness)
	w.Point(10, ocs(s.Position, s.Normal))
	w.Double(40, s.Size)
	w.String(2, s.Name)
	if s.Rotation != 0 {
		w.Double(50, s.Rotation)
	}
	if s.WidthFactor != 0 && s.WidthFactor != 1 {
		w.Double(41, s.WidthFactor)
	}
	if s.Oblique != 0 {
		w.Double(51, s.Oblique)
	}
	d.extrusion(s.Normal)
}
