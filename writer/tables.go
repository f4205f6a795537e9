package writer

import (
	"github.com/pkg/errors"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/preprocess"
)

func (d *docWriter) tables() {
	d.m.in(sectionTables, "write tables")
	for _, name := range preprocess.TableOrder {
		switch name {
		case "APPID":
			d.appRegTable()
		case "VPORT":
			d.vportTable()
		case "LTYPE":
			d.lineTypeTable()
		case "LAYER":
			d.layerTable()
		case "STYLE":
			d.styleTable()
		case "DIMSTYLE":
			d.dimStyleTable()
		case "VIEW":
			d.viewTable()
		case "UCS":
			d.ucsTable()
		case "BLOCK_RECORD":
			d.blockRecordTable()
		}
	}
}

// beginTable 打开表并写出表头
func (d *docWriter) beginTable(name string, count int, xdict core.Handle) {
	d.m.beginTable(name)
	w := d.w
	w.Handle(5, d.pre.Tables[name])
	if !xdict.IsZero() {
		w.Raw(102, "{ACAD_XDICTIONARY")
		w.Handle(360, xdict)
		w.Raw(102, "}")
	}
	w.Raw(330, "0")
	w.Raw(100, "AcDbSymbolTable")
	w.Int16(70, int16(count))
}

// record 写出表记录的公共部分
func (d *docWriter) record(table, kind, subclass string, handle core.Handle) {
	d.m.inTable(table, "write "+kind)
	w := d.w
	w.Raw(0, kind)
	if kind == "DIMSTYLE" {
		w.Handle(105, handle)
	} else {
		w.Handle(5, handle)
	}
	w.Handle(330, d.pre.Tables[table])
	w.Raw(100, "AcDbSymbolTableRecord")
	w.Raw(100, subclass)
}

func (d *docWriter) appRegTable() {
	regs := append(append([]*dxf.AppReg{}, d.doc.AppRegs...), d.pre.AppRegs...)
	d.beginTable("APPID", len(regs), 0)
	for _, a := range regs {
		d.record("APPID", "APPID", "AcDbRegAppTableRecord", d.pre.Handle(a))
		d.w.String(2, a.Name)
		d.w.Int16(70, 0)
	}
	d.m.endTable()
}

func (d *docWriter) vportTable() {
	d.beginTable("VPORT", len(d.doc.VPorts), 0)
	w := d.w
	for _, v := range d.doc.VPorts {
		d.record("VPORT", "VPORT", "AcDbViewportTableRecord", d.pre.Handle(v))
		w.String(2, v.Name)
		w.Int16(70, 0)
		w.Point2(10, v.LowerLeft)
		w.Point2(11, v.UpperRight)
		w.Point2(12, v.Center)
		w.Point2(13, core.Vec2{})
		w.Point2(14, v.SnapSpacing)
		w.Point2(15, v.GridSpacing)
		w.Point(16, v.Direction)
		w.Point(17, v.Target)
		w.Double(40, v.Height)
		w.Double(41, v.AspectRatio)
		w.Double(42, 50)
		w.Double(43, 0)
		w.Double(44, 0)
		w.Double(50, 0)
		w.Double(51, 0)
		w.Int16(71, 0)
		w.Int16(72, 100)
		w.Int16(73, 1)
		w.Int16(74, 3)
		w.Int16(75, 0)
		w.Int16(76, boolInt(v.GridOn))
		w.Int16(77, 0)
		w.Int16(78, 0)
	}
	d.m.endTable()
}

func (d *docWriter) lineTypeTable() {
	d.beginTable("LTYPE", len(d.doc.LineTypes), 0)
	w := d.w
	for _, l := range d.doc.LineTypes {
		d.record("LTYPE", "LTYPE", "AcDbLinetypeTableRecord", d.pre.Handle(l))
		w.String(2, l.Name)
		w.Int16(70, 0)
		w.String(3, l.Description)
		w.Int16(72, 65)
		w.Int16(73, int16(len(l.Pattern)))
		w.Double(40, l.PatternLength())
		for _, e := range l.Pattern {
			w.Double(49, e.Length)
			var flags int16
			if e.Absolute {
				flags |= 1
			}
			if e.Text != "" {
				flags |= 2
			} else if e.Shape != 0 {
				flags |= 4
			}
			w.Int16(74, flags)
			if !e.Complex() {
				continue
			}
			w.Int16(75, e.Shape)
			w.Handle(340, d.pre.Handle(d.doc.TextStyle(e.Style)))
			scale := e.Scale
			if scale == 0 {
				scale = 1
			}
			w.Double(46, scale)
			w.Double(50, e.Rotation)
			w.Double(44, e.Offset.X)
			w.Double(45, e.Offset.Y)
			if e.Text != "" {
				w.String(9, e.Text)
			}
		}
	}
	d.m.endTable()
}

func (d *docWriter) layerTable() {
	layers := append(append([]*dxf.Layer{}, d.doc.Layers...), d.pre.Layers...)
	d.beginTable("LAYER", len(layers), d.pre.Dictionaries.LayerXDict)
	w := d.w
	for _, l := range layers {
		d.record("LAYER", "LAYER", "AcDbLayerTableRecord", d.pre.Handle(l))
		w.String(2, l.Name)
		var flags int16
		if l.Frozen {
			flags |= 1
		}
		if l.Locked {
			flags |= 4
		}
		w.Int16(70, flags)
		index := l.Color.Index
		if l.Off {
			index = -index
		}
		w.Int16(62, index)
		if l.Color.True && d.version.AtLeast(core.AC1018) {
			w.Int32(420, l.Color.TrueColor())
		}
		lt := l.LineType
		if lt == "" {
			lt = "Continuous"
		}
		w.String(6, lt)
		w.Bool(290, l.Plot)
		w.Int16(370, int16(l.LineWeight))

		var xd core.XDataDictionary
		for _, id := range l.XData.AppIDs() {
			x, _ := l.XData.Get(id)
			xd.Add(x)
		}
		if l.Transparent() && d.version.AtLeast(core.AC1018) {
			xd.Add(&core.XData{AppID: "AcCmTransparency", Values: []core.XDataValue{core.XInt32(l.Transparency.Alpha())}})
		}
		if err := w.XData(&xd); err != nil {
			d.fail(errors.Wrapf(err, "layer %q", l.Name))
		}
	}
	d.m.endTable()
}

func (d *docWriter) styleTable() {
	d.beginTable("STYLE", len(d.doc.TextStyles), 0)
	w := d.w
	for _, s := range d.doc.TextStyles {
		d.record("STYLE", "STYLE", "AcDbTextStyleTableRecord", d.pre.Handle(s))
		w.String(2, s.Name)
		var flags, generation int16
		if s.Shape {
			flags |= 1
		}
		if s.Vertical {
			flags |= 4
		}
		if s.Backward {
			generation |= 2
		}
		if s.UpsideDown {
			generation |= 4
		}
		w.Int16(70, flags)
		w.Double(40, s.Height)
		width := s.WidthFactor
		if width == 0 {
			width = 1
		}
		w.Double(41, width)
		w.Double(50, s.Oblique)
		w.Int16(71, generation)
		last := s.Height
		if last == 0 {
			last = d.doc.Header.TextSize
		}
		w.Double(42, last)
		w.String(3, s.Font)
		w.String(4, s.BigFont)
	}
	d.m.endTable()
}

func (d *docWriter) viewTable() {
	d.beginTable("VIEW", len(d.doc.Views), 0)
	w := d.w
	for _, v := range d.doc.Views {
		d.record("VIEW", "VIEW", "AcDbViewTableRecord", d.pre.Handle(v))
		w.String(2, v.Name)
		w.Int16(70, 0)
		w.Double(40, v.Height)
		w.Point2(10, v.Center)
		w.Double(41, v.Width)
		w.Point(11, direction(v.Direction))
		w.Point(12, v.Target)
		w.Double(42, 50)
		w.Double(43, 0)
		w.Double(44, 0)
		w.Double(50, 0)
		w.Int16(71, 0)
		w.Int16(281, 0)
		w.Int16(72, 0)
	}
	d.m.endTable()
}

func (d *docWriter) ucsTable() {
	d.beginTable("UCS", len(d.doc.UCSs), 0)
	w := d.w
	for _, u := range d.doc.UCSs {
		d.record("UCS", "UCS", "AcDbUCSTableRecord", d.pre.Handle(u))
		w.String(2, u.Name)
		w.Int16(70, 0)
		w.Point(10, u.Origin)
		w.Point(11, u.XAxis)
		w.Point(12, u.YAxis)
		w.Int16(79, 0)
		w.Double(146, 0)
	}
	d.m.endTable()
}

func (d *docWriter) blockRecordTable() {
	d.beginTable("BLOCK_RECORD", len(d.pre.Spaces), 0)
	w := d.w
	for _, s := range d.pre.Spaces {
		d.record("BLOCK_RECORD", "BLOCK_RECORD", "AcDbBlockTableRecord", s.Record)
		w.String(2, s.Name)
		w.Handle(340, s.LayoutHandle)
		if d.version.AtLeast(core.AC1021) {
			w.Int16(70, d.doc.Header.InsUnits)
			w.Int16(280, 1)
			w.Int16(281, 0)
		}
	}
	d.m.endTable()
}

// direction 零向量按 Z 轴处理
func direction(p core.Point) core.Point {
	if p.IsZero() {
		return core.ZAxis
	}
	return p
}
