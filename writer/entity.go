package writer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// known 能否写出该类实体，须与 entity 中的分派保持一致
func known(e entities.Entity) bool {
	switch e.(type) {
	case *entities.Line, *entities.Point, *entities.Circle, *entities.Arc, *entities.Ellipse,
		*entities.Ray, *entities.XLine, *entities.Face3D, *entities.Solid, *entities.Trace, *entities.Shape,
		*entities.LWPolyline, *entities.Polyline2D, *entities.Polyline3D, *entities.PolyfaceMesh, *entities.PolygonMesh,
		*entities.Spline, *entities.MLine, *entities.Mesh,
		*entities.Text, *entities.MText, *entities.AttributeDefinition, *entities.Tolerance,
		*entities.Insert, *entities.Hatch, *entities.Wipeout, *entities.Image, *entities.Underlay,
		*entities.Dimension, *entities.Leader:
		return true
	}
	return false
}

// entity 写出一个实体及其附属的 VERTEX/ATTRIB/SEQEND
func (d *docWriter) entity(e entities.Entity, owner core.Handle, paper bool) {
	if d.skip[e] {
		return
	}
	h := d.pre.Handle(e)
	d.common(e, h, owner, paper)

	var (
		extra *core.XData
		err   error
		tail  func()
	)
	switch v := e.(type) {
	case *entities.Line:
		d.line(v)
	case *entities.Point:
		d.point(v)
	case *entities.Circle:
		d.circle(v)
	case *entities.Arc:
		d.arc(v)
	case *entities.Ellipse:
		d.ellipse(v)
	case *entities.Ray:
		d.ray("AcDbRay", v.Origin, v.Direction)
	case *entities.XLine:
		d.ray("AcDbXline", v.Origin, v.Direction)
	case *entities.Face3D:
		d.face(v)
	case *entities.Solid:
		d.solid(v)
	case *entities.Trace:
		d.solid(&v.Solid)
	case *entities.Shape:
		d.shape(v)
	case *entities.LWPolyline:
		d.lwpolyline(v)
	case *entities.Polyline2D, *entities.Polyline3D, *entities.PolyfaceMesh, *entities.PolygonMesh:
		pl := d.pre.Polylines[h]
		d.polyline(pl)
		tail = func() { d.vertices(e, pl, h, paper) }
	case *entities.Spline:
		d.spline(v)
	case *entities.MLine:
		d.mline(v)
	case *entities.Mesh:
		d.mesh(v)
	case *entities.Text:
		d.text(v)
	case *entities.MText:
		d.mtext(v)
	case *entities.AttributeDefinition:
		d.attdef(v)
	case *entities.Tolerance:
		d.tolerance(v)
	case *entities.Insert:
		d.insert(v)
		if seq, ok := d.pre.SeqEnds[h]; ok {
			tail = func() { d.attribs(v, h, seq, paper) }
		}
	case *entities.Hatch:
		d.hatch(v)
	case *entities.Wipeout:
		d.wipeout(v)
	case *entities.Image:
		d.image(v, h)
	case *entities.Underlay:
		d.underlay(v)
	case *entities.Dimension:
		d.dimension(v)
		extra, err = d.overrides(v.StyleName, v.Overrides)
	case *entities.Leader:
		d.leader(v)
		extra, err = d.overrides(v.StyleName, v.Overrides)
	default:
		panic(fmt.Sprintf("writer: no serializer for %T", e))
	}
	if err != nil {
		d.fail(errors.Wrapf(err, "%s %s", e.Type(), h))
	}

	d.xdata(e, h, extra)
	if tail != nil {
		tail()
	}
	d.res.Entities++
}

// common 实体类型、句柄、反应器、所有者与公共显示属性
func (d *docWriter) common(e entities.Entity, h, owner core.Handle, paper bool) {
	w, b := d.w, e.Base()
	w.Raw(0, e.Type())
	w.Handle(5, h)
	if groups := d.pre.EntityReactors[h]; len(groups) > 0 {
		w.Raw(102, "{ACAD_REACTORS")
		for _, g := range groups {
			w.Handle(330, g)
		}
		w.Raw(102, "}")
	}
	w.Handle(330, owner)
	w.Raw(100, "AcDbEntity")
	if paper {
		w.Int16(67, 1)
	}
	w.String(8, e.Layer())
	if b.LineType != "" && !strings.EqualFold(b.LineType, "ByLayer") {
		w.String(6, b.LineType)
	}
	if !b.Color.IsByLayer() {
		w.Int16(62, b.Color.Index)
	}
	if b.Color.True && d.version.AtLeast(core.AC1018) {
		w.Int32(420, b.Color.TrueColor())
	}
	if b.LineWeight != core.LineWeightByLayer {
		w.Int16(370, int16(b.LineWeight))
	}
	if b.LineTypeScale != 0 && b.LineTypeScale != 1 {
		w.Double(48, b.LineTypeScale)
	}
	if b.Invisible {
		w.Int16(60, 1)
	}
	if d.version.AtLeast(core.AC1018) && !b.Transparency.ByLayer {
		w.Int32(440, b.Transparency.Alpha())
	}
}

// xdata 实体自身的扩展数据，extra 合并到同名应用之后
func (d *docWriter) xdata(e entities.Entity, h core.Handle, extra *core.XData) {
	src := &e.Base().XData
	if extra != nil {
		var merged core.XDataDictionary
		for _, id := range src.AppIDs() {
			x, _ := src.Get(id)
			merged.Add(x)
		}
		if x, ok := merged.Get(extra.AppID); ok {
			values := append(append([]core.XDataValue{}, x.Values...), extra.Values...)
			extra = &core.XData{AppID: x.AppID, Values: values}
		}
		merged.Add(extra)
		src = &merged
	}
	if err := d.w.XData(src); err != nil {
		d.fail(errors.Wrapf(err, "%s %s", e.Type(), h))
	}
}

// ocs 把 WCS 点转到法向量 normal 决定的 OCS
func ocs(p, normal core.Point) core.Point {
	return core.WorldToObject(p, direction(normal))
}

// extrusion 法向量不是 Z 轴时写出 210
func (d *docWriter) extrusion(normal core.Point) {
	n := direction(normal)
	if !core.IsWorldZ(n) {
		d.w.Point(210, n)
	}
}

// thickness 非零时写出 39
func (d *docWriter) thickness(t float64) {
	if t != 0 {
		d.w.Double(39, t)
	}
}
