// Package preprocess 在写出之前遍历整个图形：为每条记录分配句柄，
// 把平滑多段线与网格展开为统一的 POLYLINE/VERTEX/SEQEND，
// 并合成块参照的 SEQEND 与图像定义反应器。
package preprocess

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// ErrMissingReference 引用了图形中不存在的定义
var ErrMissingReference = errors.New("missing reference")

// ErrSharedEntity 同一个实体出现在多个位置，每个实体只能属于一个空间
var ErrSharedEntity = errors.New("entity owned more than once")

// TableOrder 表的写出顺序，后面的表会按句柄引用前面的表
var TableOrder = []string{"APPID", "VPORT", "LTYPE", "LAYER", "STYLE", "DIMSTYLE", "VIEW", "UCS", "BLOCK_RECORD"}

// Space 一个块记录及其实体：模型空间、图纸空间或普通块
type Space struct {
	Name     string
	Block    *dxf.Block  // 普通块
	Layout   *dxf.Layout // 图纸空间布局；模型空间为 nil
	Paper    bool
	Entities []entities.Entity

	Record       core.Handle // BLOCK_RECORD
	Begin        core.Handle // BLOCK
	End          core.Handle // ENDBLK
	LayoutHandle core.Handle // LAYOUT 对象，普通块为 0
}

// IsLayout 是否是模型或图纸空间
func (s *Space) IsLayout() bool { return s.Block == nil }

// Reactor 图像定义与引用它的一个图像之间的反应器
type Reactor struct {
	Handle core.Handle
	Image  core.Handle
}

// Dictionaries OBJECTS 段中的命名字典句柄，为 0 表示不写出
type Dictionaries struct {
	Root        core.Handle
	Groups      core.Handle
	Layouts     core.Handle
	MLineStyles core.Handle
	Images      core.Handle
	ImageVars   core.Handle // RASTERVARIABLES
	LayerXDict  core.Handle // 图层表的扩展字典
	LayerStates core.Handle
	Underlays   map[entities.UnderlayKind]core.Handle
}

// Result 预处理结果，写出阶段只读
type Result struct {
	Handles        map[any]core.Handle // 记录指针 → 句柄
	Tables         map[string]core.Handle
	Spaces         []*Space
	Polylines      map[core.Handle]*Polyline     // 源实体句柄 → 规范化多段线
	SeqEnds        map[core.Handle]core.Handle   // 带属性的块参照 → SEQEND
	Reactors       map[core.Handle][]Reactor     // 图像定义 → 反应器，按图像出现顺序
	ImageReactors  map[core.Handle]core.Handle   // 图像 → 反应器
	EntityReactors map[core.Handle][]core.Handle // 实体 → 所属编组
	GroupMembers   map[*dxf.Group][]core.Handle
	Dictionaries   Dictionaries
	AppRegs        []*dxf.AppReg // 补充注册的应用名
	Layers         []*dxf.Layer  // 补充创建的图层
	Rejected       []Rejection
	Seed           core.Handle // $HANDSEED

	rejected map[entities.Entity]bool
}

// Handle 记录的句柄，未分配时为 0
func (r *Result) Handle(v any) core.Handle { return r.Handles[v] }

// Rejects 实体是否被拒绝写出
func (r *Result) Rejects(e entities.Entity) bool { return r.rejected[e] }

type pass struct {
	doc    *dxf.Document
	alloc  *core.HandleAllocator
	res    *Result
	images []*entities.Image
}

func (p *pass) assign(v any) core.Handle {
	h := p.alloc.Next()
	p.res.Handles[v] = h
	return h
}

// Run 预处理图形。alloc 在返回后停在 $HANDSEED 上
func Run(doc *dxf.Document, alloc *core.HandleAllocator) (*Result, error) {
	p := &pass{
		doc:   doc,
		alloc: alloc,
		res: &Result{
			Handles:        make(map[any]core.Handle),
			Tables:         make(map[string]core.Handle),
			Polylines:      make(map[core.Handle]*Polyline),
			SeqEnds:        make(map[core.Handle]core.Handle),
			Reactors:       make(map[core.Handle][]Reactor),
			ImageReactors:  make(map[core.Handle]core.Handle),
			EntityReactors: make(map[core.Handle][]core.Handle),
			GroupMembers:   make(map[*dxf.Group][]core.Handle),
			rejected:       make(map[entities.Entity]bool),
		},
	}
	p.res.Spaces = spaces(doc)

	if err := p.owners(); err != nil {
		return nil, err
	}
	if err := p.discover(); err != nil {
		return nil, err
	}
	p.tables()
	p.blocks()
	if err := p.objects(); err != nil {
		return nil, err
	}
	p.res.Seed = alloc.Seed()
	return p.res, nil
}

// spaces 模型空间、各图纸空间，然后是普通块
func spaces(doc *dxf.Document) []*Space {
	list := []*Space{{Name: "*Model_Space", Entities: doc.Entities}}
	layouts := doc.Layouts
	if len(layouts) == 0 {
		layouts = []*dxf.Layout{dxf.NewLayout("Layout1", 1)}
	}
	for i, l := range layouts {
		name := "*Paper_Space"
		if i > 0 {
			name = fmt.Sprintf("*Paper_Space%d", i-1)
		}
		list = append(list, &Space{Name: name, Layout: l, Paper: true, Entities: l.Entities})
	}
	for _, b := range doc.Blocks {
		list = append(list, &Space{Name: b.Name, Block: b, Entities: b.Entities})
	}
	return list
}

// each 遍历所有空间中的实体及块参照上的属性
func (p *pass) each(fn func(e entities.Entity) error) error {
	for _, s := range p.res.Spaces {
		for _, e := range s.Entities {
			if err := fn(e); err != nil {
				return err
			}
			if ins, ok := e.(*entities.Insert); ok {
				for _, a := range ins.Attributes {
					if err := fn(a); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// owners 每个实体只能出现一次，否则同一句柄会被写出多次
func (p *pass) owners() error {
	seen := make(map[entities.Entity]string)
	for _, s := range p.res.Spaces {
		for _, e := range s.Entities {
			if err := own(seen, e, s.Name); err != nil {
				return err
			}
			if ins, ok := e.(*entities.Insert); ok {
				for _, a := range ins.Attributes {
					if err := own(seen, a, s.Name); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func own(seen map[entities.Entity]string, e entities.Entity, space string) error {
	if e == nil {
		return nil
	}
	if first, ok := seen[e]; ok {
		return errors.Wrapf(ErrSharedEntity, "%s in %s already belongs to %s", e.Type(), space, first)
	}
	seen[e] = space
	return nil
}

// discover 检查引用，找出需要补充的图层与应用名，并标记无法写出的实体
func (p *pass) discover() error {
	var (
		doc        = p.doc
		version    = doc.Header.Version
		layers     = make(map[string]bool)
		apps       = make(map[string]bool)
		needApp    []string
		needLayers []string
	)
	wantApp := func(name string) {
		key := strings.ToUpper(name)
		if doc.AppReg(name) == nil && !apps[key] {
			apps[key] = true
			needApp = append(needApp, name)
		}
	}

	for _, l := range doc.Layers {
		if err := p.lineType(l.LineType); err != nil {
			return errors.Wrapf(err, "layer %q", l.Name)
		}
		for _, id := range l.XData.AppIDs() {
			wantApp(id)
		}
		if l.Transparent() && version.AtLeast(core.AC1018) {
			wantApp("AcCmTransparency")
		}
	}

	err := p.each(func(e entities.Entity) error {
		if reason := check(e, version); reason != "" {
			p.res.rejected[e] = true
			p.res.Rejected = append(p.res.Rejected, Rejection{Entity: e, Reason: reason})
			return nil
		}
		if err := p.references(e); err != nil {
			return errors.Wrapf(err, "%s on layer %q", e.Type(), e.Layer())
		}
		base := e.Base()
		if key := strings.ToUpper(e.Layer()); doc.Layer(e.Layer()) == nil && !layers[key] {
			layers[key] = true
			needLayers = append(needLayers, e.Layer())
		}
		for _, id := range base.XData.AppIDs() {
			wantApp(id)
		}
		switch v := e.(type) {
		case *entities.Dimension:
			if len(v.Overrides) > 0 {
				wantApp("ACAD")
			}
		case *entities.Leader:
			if len(v.Overrides) > 0 {
				wantApp("ACAD")
			}
		case *entities.Image:
			p.images = append(p.images, v)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, name := range needApp {
		p.res.AppRegs = append(p.res.AppRegs, &dxf.AppReg{Name: name})
	}
	for _, name := range needLayers {
		p.res.Layers = append(p.res.Layers, dxf.NewLayer(name, core.White))
	}
	return nil
}

func (p *pass) lineType(name string) error {
	if name == "" || p.doc.LineType(name) != nil {
		return nil
	}
	return errors.Wrapf(ErrMissingReference, "line type %q", name)
}

func (p *pass) textStyle(name string) error {
	if name == "" || p.doc.TextStyle(name) != nil {
		return nil
	}
	return errors.Wrapf(ErrMissingReference, "text style %q", name)
}

func (p *pass) dimStyle(name string) error {
	if p.doc.DimStyle(name) != nil {
		return nil
	}
	return errors.Wrapf(ErrMissingReference, "dimension style %q", name)
}

func (p *pass) block(name string) error {
	if p.doc.Block(name) != nil {
		return nil
	}
	return errors.Wrapf(ErrMissingReference, "block %q", name)
}

// references 实体引用的表记录与定义必须存在
func (p *pass) references(e entities.Entity) error {
	if err := p.lineType(e.Base().LineType); err != nil {
		return err
	}
	switch v := e.(type) {
	case *entities.Text:
		return p.textStyle(v.Style)
	case *entities.MText:
		return p.textStyle(v.Style)
	case *entities.Attrib:
		return p.textStyle(v.Style)
	case *entities.AttributeDefinition:
		return p.textStyle(v.Style)
	case *entities.Shape:
		return p.textStyle(v.StyleName)
	case *entities.Insert:
		return p.block(v.BlockName)
	case *entities.Dimension:
		if v.Block != "" {
			if err := p.block(v.Block); err != nil {
				return err
			}
		}
		return p.dimStyle(v.StyleName)
	case *entities.Leader:
		return p.dimStyle(v.StyleName)
	case *entities.Tolerance:
		return p.dimStyle(v.StyleName)
	case *entities.MLine:
		if p.doc.MLineStyle(v.StyleName) == nil {
			return errors.Wrapf(ErrMissingReference, "mline style %q", v.StyleName)
		}
	case *entities.Image:
		if p.doc.ImageDef(v.Definition) == nil {
			return errors.Wrapf(ErrMissingReference, "image definition %q", v.Definition)
		}
	case *entities.Underlay:
		if p.doc.UnderlayDef(v.Kind, v.Definition) == nil {
			return errors.Wrapf(ErrMissingReference, "%s underlay definition %q", v.Kind, v.Definition)
		}
	}
	return nil
}

// tables 表句柄在前，随后是各表中的记录
func (p *pass) tables() {
	doc, res := p.doc, p.res
	for _, name := range TableOrder {
		res.Tables[name] = p.alloc.Next()
		switch name {
		case "APPID":
			for _, a := range doc.AppRegs {
				p.assign(a)
			}
			for _, a := range res.AppRegs {
				p.assign(a)
			}
		case "VPORT":
			for _, v := range doc.VPorts {
				p.assign(v)
			}
		case "LTYPE":
			for _, l := range doc.LineTypes {
				p.assign(l)
			}
		case "LAYER":
			for _, l := range doc.Layers {
				p.assign(l)
			}
			for _, l := range res.Layers {
				p.assign(l)
			}
		case "STYLE":
			for _, s := range doc.TextStyles {
				p.assign(s)
			}
		case "DIMSTYLE":
			for _, s := range doc.DimStyles {
				p.assign(s)
			}
		case "VIEW":
			for _, v := range doc.Views {
				p.assign(v)
			}
		case "UCS":
			for _, u := range doc.UCSs {
				p.assign(u)
			}
		case "BLOCK_RECORD":
			for _, s := range res.Spaces {
				s.Record = p.alloc.Next()
				if s.Block != nil {
					res.Handles[s.Block] = s.Record
				}
			}
		}
	}
}

// blocks 每个空间的 BLOCK、ENDBLK 与其中的实体
func (p *pass) blocks() {
	segs := surfaceDensity{
		splineSegs: int(p.doc.Header.SplineSegs),
		surfU:      p.doc.Header.SurfU,
		surfV:      p.doc.Header.SurfV,
	}
	for _, s := range p.res.Spaces {
		s.Begin = p.alloc.Next()
		s.End = p.alloc.Next()
		for _, e := range s.Entities {
			p.entity(e, segs)
		}
	}
}

func (p *pass) entity(e entities.Entity, segs surfaceDensity) {
	h := p.assign(e)
	if p.res.rejected[e] {
		for i := range p.res.Rejected {
			if p.res.Rejected[i].Entity == e {
				p.res.Rejected[i].Handle = h
			}
		}
		return
	}
	switch v := e.(type) {
	case *entities.Polyline2D, *entities.Polyline3D, *entities.PolyfaceMesh, *entities.PolygonMesh:
		pl := normalize(v, segs)
		for i := range pl.Vertices {
			pl.Vertices[i].Handle = p.alloc.Next()
		}
		pl.SeqEnd = p.alloc.Next()
		p.res.Polylines[h] = pl
	case *entities.Insert:
		if len(v.Attributes) == 0 {
			return
		}
		for _, a := range v.Attributes {
			if p.res.rejected[a] {
				continue
			}
			p.assign(a)
		}
		p.res.SeqEnds[h] = p.alloc.Next()
	}
}

// objects 字典、布局、编组、样式、图像与底图定义、图层状态
func (p *pass) objects() error {
	doc, res := p.doc, p.res
	d := &res.Dictionaries
	d.Root = p.alloc.Next()
	d.Groups = p.alloc.Next()
	d.Layouts = p.alloc.Next()
	d.MLineStyles = p.alloc.Next()
	if len(doc.ImageDefs) > 0 {
		d.Images = p.alloc.Next()
	}
	d.ImageVars = p.alloc.Next()
	for _, kind := range []entities.UnderlayKind{entities.UnderlayPDF, entities.UnderlayDWF, entities.UnderlayDGN} {
		for _, u := range doc.UnderlayDefs {
			if u.Kind == kind {
				if d.Underlays == nil {
					d.Underlays = make(map[entities.UnderlayKind]core.Handle)
				}
				d.Underlays[kind] = p.alloc.Next()
				break
			}
		}
	}
	if len(doc.LayerStates) > 0 {
		d.LayerXDict = p.alloc.Next()
		d.LayerStates = p.alloc.Next()
	}

	for _, s := range res.Spaces {
		if s.IsLayout() {
			s.LayoutHandle = p.alloc.Next()
			if s.Layout != nil {
				res.Handles[s.Layout] = s.LayoutHandle
			}
		}
	}
	for _, g := range doc.Groups {
		gh := p.assign(g)
		for _, e := range g.Entities {
			h, ok := res.Handles[e]
			if !ok {
				return errors.Wrapf(ErrMissingReference, "group %q member %s is not in the drawing", g.Name, e.Type())
			}
			if res.rejected[e] {
				continue
			}
			res.GroupMembers[g] = append(res.GroupMembers[g], h)
			res.EntityReactors[h] = append(res.EntityReactors[h], gh)
		}
	}
	for _, m := range doc.MLineStyles {
		p.assign(m)
	}
	for _, def := range doc.ImageDefs {
		dh := p.assign(def)
		for _, img := range p.images {
			if res.rejected[img] || !strings.EqualFold(img.Definition, def.Name) {
				continue
			}
			ih := res.Handles[img]
			rh := p.alloc.Next()
			res.Reactors[dh] = append(res.Reactors[dh], Reactor{Handle: rh, Image: ih})
			res.ImageReactors[ih] = rh
		}
	}
	for _, u := range doc.UnderlayDefs {
		p.assign(u)
	}
	for _, s := range doc.LayerStates {
		p.assign(s)
	}
	return nil
}
