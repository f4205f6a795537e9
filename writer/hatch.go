package writer

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// hatch 边界坐标在 OCS 中，原样写出
func (d *docWriter) hatch(h *entities.Hatch) {
	w := d.w
	w.Raw(100, "AcDbHatch")
	w.Point(10, core.Point{Z: h.Elevation})
	w.Point(210, direction(h.Normal))
	w.String(2, h.PatternName)
	w.Int16(70, boolInt(h.SolidFill))
	w.Int16(71, boolInt(h.Associative))
	w.Int32(91, int32(len(h.Paths)))
	for _, p := range h.Paths {
		d.hatchPath(p)
	}
	w.Int16(75, h.Style)
	w.Int16(76, int16(h.PatternType))
	if !h.SolidFill {
		w.Double(52, h.PatternAngle)
		w.Double(41, h.PatternScale)
		w.Int16(77, boolInt(h.Double))
		w.Int16(78, int16(len(h.PatternLines)))
		for _, l := range h.PatternLines {
			w.Double(53, l.Angle)
			w.Point2(43, l.Origin)
			w.Point2(45, l.Delta)
			w.Int16(79, int16(len(l.Dashes)))
			for _, dash := range l.Dashes {
				w.Double(49, dash)
			}
		}
	}
	w.Int32(98, int32(len(h.Seeds)))
	for _, s := range h.Seeds {
		w.Point2(10, s)
	}
	if g := h.Gradient; g != nil && d.version.AtLeast(core.AC1018) {
		d.gradient(g)
	}
}

func (d *docWriter) hatchPath(p entities.HatchPath) {
	w := d.w
	flags := p.Flags
	if p.Polyline != nil {
		flags |= entities.PathPolyline
	} else {
		flags &^= entities.PathPolyline
	}
	w.Int32(92, int32(flags))

	if pl := p.Polyline; pl != nil {
		bulge := false
		for _, v := range pl.Vertices {
			if v.Bulge != 0 {
				bulge = true
			}
		}
		w.Int16(72, boolInt(bulge))
		w.Int16(73, boolInt(pl.Closed))
		w.Int32(93, int32(len(pl.Vertices)))
		for _, v := range pl.Vertices {
			w.Point2(10, v.Position)
			if bulge {
				w.Double(42, v.Bulge)
			}
		}
	} else {
		w.Int32(93, int32(len(p.Edges)))
		for _, e := range p.Edges {
			d.hatchEdge(e)
		}
	}
	w.Int32(97, 0)
}

func (d *docWriter) hatchEdge(e entities.HatchEdge) {
	w := d.w
	w.Int16(72, e.EdgeType())
	switch e := e.(type) {
	case *entities.LineEdge:
		w.Point2(10, e.Start)
		w.Point2(11, e.End)
	case *entities.ArcEdge:
		w.Point2(10, e.Center)
		w.Double(40, e.Radius)
		w.Double(50, e.StartAngle)
		w.Double(51, e.EndAngle)
		w.Int16(73, boolInt(e.CCW))
	case *entities.EllipseEdge:
		w.Point2(10, e.Center)
		w.Point2(11, e.MajorAxis)
		w.Double(40, e.Ratio)
		w.Double(50, e.StartAngle)
		w.Double(51, e.EndAngle)
		w.Int16(73, boolInt(e.CCW))
	case *entities.SplineEdge:
		w.Int32(94, e.Degree)
		w.Int16(73, boolInt(e.Rational))
		w.Int16(74, boolInt(e.Periodic))
		w.Int32(95, int32(len(e.Knots)))
		w.Int32(96, int32(len(e.ControlPoints)))
		for _, k := range e.Knots {
			w.Double(40, k)
		}
		for _, p := range e.ControlPoints {
			w.Point2(10, p)
		}
		if e.Rational {
			for _, wt := range e.Weights {
				w.Double(42, wt)
			}
		}
		if d.version.AtLeast(core.AC1021) {
			w.Int32(97, int32(len(e.FitPoints)))
			for _, p := range e.FitPoints {
				w.Point2(11, p)
			}
			if len(e.FitPoints) > 0 {
				w.Point2(12, e.StartTangent)
				w.Point2(13, e.EndTangent)
			}
		}
	}
}

func (d *docWriter) gradient(g *entities.HatchGradient) {
	w := d.w
	w.Int32(450, 1)
	w.Int32(451, 0)
	w.Double(460, g.Angle)
	if g.Centered {
		w.Double(461, 0)
	} else {
		w.Double(461, 1)
	}
	w.Int32(452, int32(boolInt(g.SingleColor)))
	w.Double(462, g.Tint)
	colors := []core.Color{g.Color1, g.Color2}
	if g.SingleColor {
		colors = colors[:1]
	}
	w.Int32(453, int32(len(colors)))
	for i, c := range colors {
		w.Double(463, float64(i))
		w.Int16(63, c.Index)
		w.Int32(421, c.TrueColor())
	}
	w.String(470, g.Name)
}

// imageFrame IMAGE 与 WIPEOUT 共用的像素框
type imageFrame struct {
	position core.Point
	u, v     core.Point
	size     core.Vec2
	def      core.Handle
	display  int16
	clipping bool
	bright   int16
	contrast int16
	fade     int16
	reactor  core.Handle
	clip     []core.Vec2
}

func (d *docWriter) imageFrame(f imageFrame) {
	w := d.w
	w.Int32(90, 0)
	w.Point(10, f.position)
	w.Point(11, f.u)
	w.Point(12, f.v)
	w.Point2(13, f.size)
	w.Handle(340, f.def)
	w.Int16(70, f.display)
	w.Int16(280, boolInt(f.clipping))
	w.Int16(281, f.bright)
	w.Int16(282, f.contrast)
	w.Int16(283, f.fade)
	w.Handle(360, f.reactor)

	clip := f.clip
	if len(clip) < 2 {
		clip = []core.Vec2{{X: -0.5, Y: -0.5}, {X: f.size.X - 0.5, Y: f.size.Y - 0.5}}
	}
	if len(clip) == 2 {
		w.Int16(71, 1)
	} else {
		w.Int16(71, 2)
		if !clip[0].Equal(clip[len(clip)-1], core.Epsilon) {
			clip = append(clip[:len(clip):len(clip)], clip[0])
		}
	}
	w.Int32(91, int32(len(clip)))
	for _, p := range clip {
		w.Point2(14, p)
	}
}

func (d *docWriter) image(img *entities.Image, h core.Handle) {
	d.w.Raw(100, "AcDbRasterImage")
	d.imageFrame(imageFrame{
		position: img.Position,
		u:        img.U,
		v:        img.V,
		size:     img.Size,
		def:      d.pre.Handle(d.doc.ImageDef(img.Definition)),
		display:  int16(img.Display),
		clipping: img.Clipping,
		bright:   img.Brightness,
		contrast: img.Contrast,
		fade:     img.Fade,
		reactor:  d.pre.ImageReactors[h],
		clip:     img.ClipBoundary,
	})
}

// wipeout 以边界包围盒为一个单位像素的图像，边界换算到像素坐标
func (d *docWriter) wipeout(wp *entities.Wipeout) {
	normal := direction(wp.Normal)
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, p := range wp.Boundary {
		x0, y0 = math.Min(x0, p.X), math.Min(y0, p.Y)
		x1, y1 = math.Max(x1, p.X), math.Max(y1, p.Y)
	}
	size := math.Max(x1-x0, y1-y0)
	if size <= 0 {
		size = 1
	}

	clip := make([]core.Vec2, 0, len(wp.Boundary)+1)
	for _, p := range wp.Boundary {
		clip = append(clip, core.Vec2{X: (p.X-x0)/size - 0.5, Y: 0.5 - (p.Y-y0)/size})
	}
	if len(clip) == 2 {
		// 两点按矩形对角处理，转成闭合多边形
		a, b := clip[0], clip[1]
		clip = []core.Vec2{a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y}}
	}

	ax, ay, _ := core.ArbitraryAxis(normal)
	d.w.Raw(100, "AcDbWipeout")
	d.imageFrame(imageFrame{
		position: core.ObjectToWorld(core.Point{X: x0, Y: y0, Z: wp.Elevation}, normal),
		u:        ax.Scale(size),
		v:        ay.Scale(size),
		size:     core.Vec2{X: 1, Y: 1},
		display:  7,
		clipping: true,
		bright:   50,
		contrast: 50,
		clip:     clip,
	})
}

func (d *docWriter) underlay(u *entities.Underlay) {
	w := d.w
	w.Raw(100, "AcDbUnderlayReference")
	w.Handle(340, d.pre.Handle(d.doc.UnderlayDef(u.Kind, u.Definition)))
	w.Point(10, u.Position)
	w.Double(41, u.Scale.X)
	w.Double(42, u.Scale.Y)
	w.Double(43, u.Scale.Z)
	w.Double(50, u.Rotation)
	w.Point(210, direction(u.Normal))
	w.Int16(280, u.Flags)
	w.Int16(281, u.Contrast)
	w.Int16(282, u.Fade)
	for _, p := range u.ClipBoundary {
		w.Point2(11, p)
	}
}
