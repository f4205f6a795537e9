package writer

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// class CLASSES 段中的一条类定义
type class struct {
	name    string // 组码 1
	cpp     string // 组码 2
	app     string // 组码 3
	flags   int32  // 组码 90，代理能力标志
	entity  bool   // 组码 281
	version core.Version
}

var (
	classLayout          = class{"LAYOUT", "AcDbLayout", "ObjectDBX Classes", 0, false, core.AC1015}
	classRasterVariables = class{"RASTERVARIABLES", "AcDbRasterVariables", "ISM", 0, false, core.AC1015}
	classImageDef        = class{"IMAGEDEF", "AcDbRasterImageDef", "ISM", 0, false, core.AC1015}
	classImageDefReactor = class{"IMAGEDEF_REACTOR", "AcDbRasterImageDefReactor", "ISM", 1, false, core.AC1015}
	classImage           = class{"IMAGE", "AcDbRasterImage", "ISM", 2175, true, core.AC1015}
	classWipeout         = class{"WIPEOUT", "AcDbWipeout", "WipeOut|AutoCAD Express Tool|expresstools@autodesk.com", 127, true, core.AC1015}
	classMesh            = class{"MESH", "AcDbSubDMesh", "ObjectDBX Classes", 4095, true, core.AC1024}
)

var underlayClasses = map[entities.UnderlayKind][2]class{
	entities.UnderlayPDF: {
		{"PDFDEFINITION", "AcDbPdfDefinition", "ObjectDBX Classes", 1153, false, core.AC1021},
		{"PDFUNDERLAY", "AcDbPdfReference", "ObjectDBX Classes", 4095, true, core.AC1021},
	},
	entities.UnderlayDWF: {
		{"DWFDEFINITION", "AcDbDwfDefinition", "ObjectDBX Classes", 1153, false, core.AC1021},
		{"DWFUNDERLAY", "AcDbDwfReference", "ObjectDBX Classes", 4095, true, core.AC1021},
	},
	entities.UnderlayDGN: {
		{"DGNDEFINITION", "AcDbDgnDefinition", "ObjectDBX Classes", 1153, false, core.AC1021},
		{"DGNUNDERLAY", "AcDbDgnReference", "ObjectDBX Classes", 4095, true, core.AC1021},
	},
}

func (d *docWriter) class(c class, count int) {
	if !d.version.AtLeast(c.version) {
		return
	}
	w := d.w
	w.Raw(0, "CLASS")
	w.Raw(1, c.name)
	w.Raw(2, c.cpp)
	w.String(3, c.app)
	w.Int32(90, c.flags)
	if d.version.AtLeast(core.AC1018) {
		w.Int32(91, int32(count))
	}
	w.Int16(280, 0)
	w.Int16(281, boolInt(c.entity))
}

// written 统计将要写出的某类实体个数
func (d *docWriter) written(match func(e entities.Entity) bool) int {
	n := 0
	for _, s := range d.pre.Spaces {
		for _, e := range s.Entities {
			if !d.skip[e] && match(e) {
				n++
			}
		}
	}
	return n
}

func (d *docWriter) classes() {
	d.m.in(sectionClasses, "write classes")
	doc, pre := d.doc, d.pre

	layouts := 0
	for _, s := range pre.Spaces {
		if s.IsLayout() {
			layouts++
		}
	}
	d.class(classLayout, layouts)
	d.class(classRasterVariables, 1)

	if len(doc.ImageDefs) > 0 {
		d.class(classImageDef, len(doc.ImageDefs))
		d.class(classImageDefReactor, len(pre.ImageReactors))
		d.class(classImage, d.written(func(e entities.Entity) bool {
			_, ok := e.(*entities.Image)
			return ok
		}))
	}

	if n := d.written(func(e entities.Entity) bool {
		_, ok := e.(*entities.Wipeout)
		return ok
	}); n > 0 {
		d.class(classWipeout, n)
	}

	for _, kind := range []entities.UnderlayKind{entities.UnderlayPDF, entities.UnderlayDWF, entities.UnderlayDGN} {
		if _, ok := pre.Dictionaries.Underlays[kind]; !ok {
			continue
		}
		defs := 0
		for _, u := range doc.UnderlayDefs {
			if u.Kind == kind {
				defs++
			}
		}
		pair := underlayClasses[kind]
		d.class(pair[0], defs)
		d.class(pair[1], d.written(func(e entities.Entity) bool {
			u, ok := e.(*entities.Underlay)
			return ok && u.Kind == kind
		}))
	}

	if n := d.written(func(e entities.Entity) bool {
		_, ok := e.(*entities.Mesh)
		return ok
	}); n > 0 {
		d.class(classMesh, n)
	}
}
