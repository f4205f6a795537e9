package writer

import (
	"strings"

	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// entry 字典中的一项
type entry struct {
	name   string
	handle core.Handle
}

// object 非图形对象的公共部分；owner 非零时同时写成反应器
func (d *docWriter) object(kind string, h, owner core.Handle, subclass string) {
	w := d.w
	w.Raw(0, kind)
	w.Handle(5, h)
	if !owner.IsZero() {
		w.Raw(102, "{ACAD_REACTORS")
		w.Handle(330, owner)
		w.Raw(102, "}")
	}
	w.Handle(330, owner)
	w.Raw(100, subclass)
}

// dictionary hard 为真时字典拥有其中的对象，条目以 360 引用
func (d *docWriter) dictionary(h, owner core.Handle, hard bool, entries []entry) {
	w := d.w
	d.object("DICTIONARY", h, owner, "AcDbDictionary")
	if hard {
		w.Int16(280, 1)
	}
	w.Int16(281, 1)
	code := 350
	if hard {
		code = 360
	}
	for _, e := range entries {
		w.String(3, e.name)
		w.Handle(code, e.handle)
	}
}

func (d *docWriter) objects() {
	d.m.in(sectionObjects, "write objects")
	doc, pre := d.doc, d.pre
	dicts := pre.Dictionaries
	kinds := []entities.UnderlayKind{entities.UnderlayDGN, entities.UnderlayDWF, entities.UnderlayPDF}
	// 底图定义对象在 AC1021 之前没有对应的类
	underlays := dicts.Underlays
	if !d.version.AtLeast(core.AC1021) {
		underlays = nil
	}

	// 根字典的条目按名称排序
	var root []entry
	for _, kind := range kinds[:2] {
		if h, ok := underlays[kind]; ok {
			root = append(root, entry{"ACAD_" + kind.String() + "DEFINITIONS", h})
		}
	}
	root = append(root, entry{"ACAD_GROUP", dicts.Groups})
	if !dicts.Images.IsZero() {
		root = append(root, entry{"ACAD_IMAGE_DICT", dicts.Images})
	}
	root = append(root,
		entry{"ACAD_IMAGE_VARS", dicts.ImageVars},
		entry{"ACAD_LAYOUT", dicts.Layouts},
		entry{"ACAD_MLINESTYLE", dicts.MLineStyles},
	)
	if h, ok := underlays[entities.UnderlayPDF]; ok {
		root = append(root, entry{"ACAD_PDFDEFINITIONS", h})
	}
	d.dictionary(dicts.Root, 0, false, root)

	var groups []entry
	for _, g := range doc.Groups {
		groups = append(groups, entry{g.Name, pre.Handle(g)})
	}
	d.dictionary(dicts.Groups, dicts.Root, false, groups)

	var layouts []entry
	for _, s := range pre.Spaces {
		if s.IsLayout() {
			name := "Model"
			if s.Layout != nil {
				name = s.Layout.Name
			}
			layouts = append(layouts, entry{name, s.LayoutHandle})
		}
	}
	d.dictionary(dicts.Layouts, dicts.Root, false, layouts)

	var styles []entry
	for _, m := range doc.MLineStyles {
		styles = append(styles, entry{m.Name, pre.Handle(m)})
	}
	d.dictionary(dicts.MLineStyles, dicts.Root, false, styles)

	if !dicts.Images.IsZero() {
		var images []entry
		for _, def := range doc.ImageDefs {
			images = append(images, entry{def.Name, pre.Handle(def)})
		}
		d.dictionary(dicts.Images, dicts.Root, false, images)
	}

	d.object("RASTERVARIABLES", dicts.ImageVars, dicts.Root, "AcDbRasterVariables")
	d.w.Int32(90, 0)
	d.w.Int16(70, doc.RasterVariables.Frame)
	d.w.Int16(71, doc.RasterVariables.Quality)
	d.w.Int16(72, doc.RasterVariables.Units)

	for _, kind := range kinds {
		h, ok := underlays[kind]
		if !ok {
			continue
		}
		var defs []entry
		for _, u := range doc.UnderlayDefs {
			if u.Kind == kind {
				defs = append(defs, entry{u.Name, pre.Handle(u)})
			}
		}
		d.dictionary(h, dicts.Root, false, defs)
	}

	if !dicts.LayerXDict.IsZero() {
		d.dictionary(dicts.LayerXDict, pre.Tables["LAYER"], true, []entry{{"ACAD_LAYERSTATES", dicts.LayerStates}})
		var states []entry
		for _, s := range doc.LayerStates {
			states = append(states, entry{s.Name, pre.Handle(s)})
		}
		d.dictionary(dicts.LayerStates, dicts.LayerXDict, true, states)
	}

	for _, s := range pre.Spaces {
		if s.IsLayout() {
			d.layout(s.Layout, s.LayoutHandle, s.Record)
		}
	}
	for _, g := range doc.Groups {
		d.group(g)
	}
	for _, m := range doc.MLineStyles {
		d.mlineStyle(m)
	}
	for _, def := range doc.ImageDefs {
		d.imageDef(def)
	}
	for _, u := range doc.UnderlayDefs {
		if underlays == nil {
			break
		}
		d.object(u.ObjectType(), pre.Handle(u), dicts.Underlays[u.Kind], "AcDbUnderlayDefinition")
		d.w.String(1, u.FileName)
		d.w.String(2, u.SheetName)
	}
	for _, s := range doc.LayerStates {
		d.layerState(s)
	}
}

// layout l 为 nil 时是模型空间布局
func (d *docWriter) layout(l *dxf.Layout, h, record core.Handle) {
	w := d.w
	model := l == nil
	if model {
		l = dxf.NewLayout("Model", 0)
	}
	d.object("LAYOUT", h, d.pre.Dictionaries.Layouts, "AcDbPlotSettings")
	w.Raw(1, "")
	w.Raw(2, "none_device")
	w.String(4, l.PaperName)
	w.Raw(6, "")
	w.Double(40, l.Margins[0])
	w.Double(41, l.Margins[1])
	w.Double(42, l.Margins[2])
	w.Double(43, l.Margins[3])
	w.Double(44, l.PaperWidth)
	w.Double(45, l.PaperHeight)
	w.Double(46, 0)
	w.Double(47, 0)
	w.Double(48, 0)
	w.Double(49, 0)
	w.Double(140, 0)
	w.Double(141, 0)
	w.Double(142, 1)
	w.Double(143, 1)
	if model {
		w.Int16(70, 1712)
	} else {
		w.Int16(70, 688)
	}
	w.Int16(72, 1)
	w.Int16(73, 0)
	w.Int16(74, 5)
	w.Raw(7, "")
	w.Int16(75, 16)
	w.Double(147, 1)
	w.Double(148, 0)
	w.Double(149, 0)

	w.Raw(100, "AcDbLayout")
	w.String(1, l.Name)
	w.Int16(70, 1)
	w.Int16(71, l.TabOrder)
	w.Point2(10, l.LimMin)
	w.Point2(11, l.LimMax)
	w.Point(12, l.InsBase)
	w.Point(14, core.Point{X: 1e20, Y: 1e20, Z: 1e20})
	w.Point(15, core.Point{X: -1e20, Y: -1e20, Z: -1e20})
	w.Double(146, 0)
	w.Point(13, core.Point{})
	w.Point(16, core.XAxis)
	w.Point(17, core.YAxis)
	w.Int16(76, 0)
	w.Handle(330, record)
}

func (d *docWriter) group(g *dxf.Group) {
	w := d.w
	d.object("GROUP", d.pre.Handle(g), d.pre.Dictionaries.Groups, "AcDbGroup")
	w.String(300, g.Description)
	w.Int16(70, boolInt(strings.HasPrefix(g.Name, "*")))
	w.Int16(71, boolInt(g.Selectable))
	for _, h := range d.pre.GroupMembers[g] {
		w.Handle(340, h)
	}
}

func (d *docWriter) mlineStyle(m *dxf.MLineStyle) {
	w := d.w
	d.object("MLINESTYLE", d.pre.Handle(m), d.pre.Dictionaries.MLineStyles, "AcDbMlineStyle")
	w.String(2, m.Name)
	w.Int16(70, m.Flags)
	w.String(3, m.Description)
	w.Int16(62, m.FillColor.Index)
	w.Double(51, m.StartAngle)
	w.Double(52, m.EndAngle)
	w.Int16(71, int16(len(m.Elements)))
	for _, e := range m.Elements {
		w.Double(49, e.Offset)
		w.Int16(62, e.Color.Index)
		lt := e.LineType
		if lt == "" {
			lt = "ByLayer"
		}
		w.String(6, lt)
	}
}

// imageDef 定义的反应器是图像字典和每个引用它的 IMAGEDEF_REACTOR
func (d *docWriter) imageDef(def *dxf.ImageDef) {
	w := d.w
	h := d.pre.Handle(def)
	reactors := d.pre.Reactors[h]

	w.Raw(0, "IMAGEDEF")
	w.Handle(5, h)
	w.Raw(102, "{ACAD_REACTORS")
	w.Handle(330, d.pre.Dictionaries.Images)
	for _, r := range reactors {
		w.Handle(330, r.Handle)
	}
	w.Raw(102, "}")
	w.Handle(330, d.pre.Dictionaries.Images)
	w.Raw(100, "AcDbRasterImageDef")
	w.Int32(90, 0)
	w.String(1, def.FileName)
	w.Point2(10, def.Size)
	w.Point2(11, def.PixelSize)
	w.Int16(280, boolInt(def.Loaded))
	w.Int16(281, def.Resolution)

	for _, r := range reactors {
		w.Raw(0, "IMAGEDEF_REACTOR")
		w.Handle(5, r.Handle)
		w.Handle(330, r.Image)
		w.Raw(100, "AcDbRasterImageDefReactor")
		w.Int32(90, 2)
		w.Handle(330, r.Image)
	}
}

// 图层状态中每个图层的标志位
const (
	layerStateOff    int32 = 1
	layerStateFrozen int32 = 2
	layerStateLocked int32 = 4
	layerStatePlot   int32 = 8
)

func (d *docWriter) layerState(s *dxf.LayerState) {
	w := d.w
	d.object("XRECORD", d.pre.Handle(s), d.pre.Dictionaries.LayerStates, "AcDbXrecord")
	w.Int16(280, 1)
	w.Int32(91, 2047)
	w.String(301, s.Description)
	w.Bool(290, false)
	w.String(302, s.CurrentLayer)
	for _, e := range s.Entries {
		var flags int32
		if e.Off {
			flags |= layerStateOff
		}
		if e.Frozen {
			flags |= layerStateFrozen
		}
		if e.Locked {
			flags |= layerStateLocked
		}
		if e.Plot {
			flags |= layerStatePlot
		}
		w.String(8, e.Layer)
		w.Int32(90, flags)
		w.Int16(62, e.Color.Index)
		w.Int16(370, int16(e.LineWeight))
		lt := e.LineType
		if lt == "" {
			lt = "Continuous"
		}
		w.String(6, lt)
		w.Int32(440, e.Transparency.Alpha())
		if e.Color.True {
			w.Int32(421, e.Color.TrueColor())
		}
	}
}
