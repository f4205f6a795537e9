package writer

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/preprocess"
)

func (d *docWriter) lwpolyline(l *entities.LWPolyline) {
	w := d.w
	w.Raw(100, "AcDbPolyline")
	w.Int32(90, int32(len(l.Vertices)))
	var flags int16
	if l.Closed {
		flags |= preprocess.PolylineClosed
	}
	if l.LinetypeGen {
		flags |= preprocess.PolylineLinetypeGen
	}
	w.Int16(70, flags)
	if l.ConstantWidth != 0 {
		w.Double(43, l.ConstantWidth)
	}
	if l.Elevation != 0 {
		w.Double(38, l.Elevation)
	}
	d.thickness(l.Thickness)
	for _, v := range l.Vertices {
		w.Point2(10, v.Position)
		if l.ConstantWidth == 0 && (v.StartWidth != 0 || v.EndWidth != 0) {
			w.Double(40, v.StartWidth)
			w.Double(41, v.EndWidth)
		}
		if v.Bulge != 0 {
			w.Double(42, v.Bulge)
		}
	}
	d.extrusion(l.Normal)
}

// polyline 规范化后的 POLYLINE 头，顶点由 vertices 随后写出
func (d *docWriter) polyline(pl *preprocess.Polyline) {
	w := d.w
	w.Raw(100, pl.Subclass)
	w.Int16(66, 1)
	w.Point(10, core.Point{Z: pl.Elevation})
	d.thickness(pl.Thickness)
	w.Int16(70, pl.Flags)
	if pl.Flags&(preprocess.PolylineMesh|preprocess.PolylinePolyface) != 0 {
		w.Int16(71, pl.MeshM)
		w.Int16(72, pl.MeshN)
	}
	if pl.DensityM != 0 || pl.DensityN != 0 {
		w.Int16(73, pl.DensityM)
		w.Int16(74, pl.DensityN)
	}
	if pl.Smooth != entities.SmoothNone {
		w.Int16(75, int16(pl.Smooth))
	}
	if pl.Subclass == "AcDb2dPolyline" {
		d.extrusion(pl.Normal)
	}
}

// vertices 顶点与 SEQEND 归属于多段线，图层随多段线
func (d *docWriter) vertices(e entities.Entity, pl *preprocess.Polyline, owner core.Handle, paper bool) {
	w := d.w
	flat := pl.Subclass == "AcDb2dPolyline"
	for _, v := range pl.Vertices {
		d.sub(e, "VERTEX", v.Handle, owner, paper)
		w.Raw(100, "AcDbVertex")
		if v.FaceRecord() {
			w.Raw(100, "AcDbFaceRecord")
			w.Point(10, core.Point{})
			w.Int16(70, v.Flags)
			for i, idx := range v.Indices {
				w.Int16(71+i, idx)
			}
			continue
		}
		w.Raw(100, pl.VertexSubclass)
		p := v.Position
		if flat {
			p.Z = 0
		}
		w.Point(10, p)
		if v.StartWidth != 0 || v.EndWidth != 0 {
			w.Double(40, v.StartWidth)
			w.Double(41, v.EndWidth)
		}
		if v.Bulge != 0 {
			w.Double(42, v.Bulge)
		}
		w.Int16(70, v.Flags)
	}
	d.seqEnd(e, pl.SeqEnd, owner, paper)
}

// sub 附属实体的公共部分，只带所有者与图层
func (d *docWriter) sub(e entities.Entity, kind string, h, owner core.Handle, paper bool) {
	w := d.w
	w.Raw(0, kind)
	w.Handle(5, h)
	w.Handle(330, owner)
	w.Raw(100, "AcDbEntity")
	if paper {
		w.Int16(67, 1)
	}
	w.String(8, e.Layer())
}

func (d *docWriter) seqEnd(e entities.Entity, h, owner core.Handle, paper bool) {
	d.sub(e, "SEQEND", h, owner, paper)
}

// knots 未给出节点时生成均匀节点：周期样条不钳制，其余两端钳制
func knots(s *entities.Spline) []float64 {
	if len(s.Knots) > 0 || len(s.ControlPoints) == 0 {
		return s.Knots
	}
	n, p := len(s.ControlPoints), int(s.Degree)
	list := make([]float64, 0, n+p+1)
	if s.Periodic {
		for i := 0; i < n+p+1; i++ {
			list = append(list, float64(i))
		}
		return list
	}
	for i := 0; i <= p; i++ {
		list = append(list, 0)
	}
	for i := 1; i < n-p; i++ {
		list = append(list, float64(i))
	}
	for i := 0; i <= p; i++ {
		list = append(list, float64(n-p))
	}
	return list
}

func (d *docWriter) spline(s *entities.Spline) {
	w := d.w
	fit := d.version.AtLeast(core.AC1018)
	w.Raw(100, "AcDbSpline")

	planar := !s.Normal.IsZero()
	if planar {
		w.Point(210, s.Normal)
	}
	var flags int16
	if s.Closed {
		flags |= 1
	}
	if s.Periodic {
		flags |= 2
	}
	if s.Rational() {
		flags |= 4
	}
	if planar {
		flags |= 8
	}
	if len(s.ControlPoints) == 0 {
		flags |= 1024
	}
	w.Int16(70, flags)
	w.Int16(71, s.Degree)

	k := knots(s)
	w.Int16(72, int16(len(k)))
	w.Int16(73, int16(len(s.ControlPoints)))
	if fit {
		w.Int16(74, int16(len(s.FitPoints)))
	}
	w.Double(42, s.KnotTolerance)
	w.Double(43, s.ControlTolerance)
	if fit {
		w.Double(44, s.FitTolerance)
		if !s.StartTangent.IsZero() {
			w.Point(12, s.StartTangent)
		}
		if !s.EndTangent.IsZero() {
			w.Point(13, s.EndTangent)
		}
	}
	for _, v := range k {
		w.Double(40, v)
	}
	if s.Rational() {
		for _, v := range s.Weights {
			w.Double(41, v)
		}
	}
	for _, p := range s.ControlPoints {
		w.Point(10, p)
	}
	if fit {
		for _, p := range s.FitPoints {
			w.Point(11, p)
		}
	}
}

// mline 元素参数只写沿斜接方向的偏移，不含断开
func (d *docWriter) mline(m *entities.MLine) {
	w := d.w
	style := d.doc.MLineStyle(m.StyleName)
	normal := direction(m.Normal)

	w.Raw(100, "AcDbMline")
	w.String(2, style.Name)
	w.Handle(340, d.pre.Handle(style))
	w.Double(40, m.Scale)
	w.Int16(70, int16(m.Justification))
	flags := int16(1)
	if m.Closed {
		flags |= 2
	}
	if m.NoStartCaps {
		flags |= 4
	}
	if m.NoEndCaps {
		flags |= 8
	}
	w.Int16(71, flags)
	w.Int16(72, int16(len(m.Vertices)))
	w.Int16(73, int16(len(style.Elements)))
	w.Point(10, m.Vertices[0])
	d.extrusion(normal)

	var shift float64
	for i, e := range style.Elements {
		switch {
		case m.Justification == entities.MLineTop && (i == 0 || e.Offset > shift):
			shift = e.Offset
		case m.Justification == entities.MLineBottom && (i == 0 || e.Offset < shift):
			shift = e.Offset
		}
	}

	n := len(m.Vertices)
	dirs := make([]core.Point, n)
	for i := range m.Vertices {
		next := i + 1
		if next == n {
			if !m.Closed {
				dirs[i] = dirs[i-1]
				continue
			}
			next = 0
		}
		dirs[i] = m.Vertices[next].Sub(m.Vertices[i]).Normalize()
	}
	for i, v := range m.Vertices {
		perp := normal.Cross(dirs[i]).Normalize()
		miter := perp
		if i > 0 || m.Closed {
			prev := dirs[(i+n-1)%n]
			if bisect := normal.Cross(prev).Add(perp); !bisect.IsZero() {
				miter = bisect.Normalize()
			}
		}
		w.Point(11, v)
		w.Point(12, dirs[i])
		w.Point(13, miter)
		cos := miter.Dot(perp)
		for _, e := range style.Elements {
			offset := (e.Offset - shift) * m.Scale
			if cos > core.Epsilon {
				offset /= cos
			}
			w.Int16(74, 2)
			w.Double(41, offset)
			w.Double(41, 0)
			w.Int16(75, 0)
		}
	}
}

func (d *docWriter) mesh(m *entities.Mesh) {
	w := d.w
	w.Raw(100, "AcDbSubDMesh")
	w.Int16(71, 2)
	w.Int16(72, 0)
	w.Int32(91, m.Subdivision)
	w.Int32(92, int32(len(m.Vertices)))
	for _, v := range m.Vertices {
		w.Point(10, v)
	}
	size := 0
	for _, f := range m.Faces {
		size += len(f) + 1
	}
	w.Int32(93, int32(size))
	for _, f := range m.Faces {
		w.Int32(90, int32(len(f)))
		for _, i := range f {
			w.Int32(90, i)
		}
	}
	w.Int32(94, int32(len(m.Edges)))
	for _, e := range m.Edges {
		w.Int32(90, e[0])
		w.Int32(90, e[1])
	}
	w.Int32(95, int32(len(m.Edges)))
	for range m.Edges {
		w.Double(140, 0)
	}
}
