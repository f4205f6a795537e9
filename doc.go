package dxf

import (
	"strings"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// Document 内存中的图形。模型空间实体放在 Entities，图纸空间实体放在各 Layout 中
type Document struct {
	Header   *Header
	Comments []string // 文本格式下写在 HEADER 之前的 999 注释

	AppRegs     []*AppReg
	VPorts      []*VPort
	LineTypes   []*LineType
	Layers      []*Layer
	TextStyles  []*TextStyle
	DimStyles   []*DimStyle
	Views       []*View
	UCSs        []*UCS
	Blocks      []*Block
	Entities    []entities.Entity
	Layouts     []*Layout
	Groups      []*Group
	MLineStyles []*MLineStyle
	ImageDefs   []*ImageDef

	UnderlayDefs    []*UnderlayDef
	LayerStates     []*LayerState
	RasterVariables RasterVariables
}

// New 创建一个带有 AutoCAD 必需默认对象的空图形
func New(version core.Version) *Document {
	return &Document{
		Header:  NewHeader(version),
		AppRegs: []*AppReg{{Name: "ACAD"}},
		VPorts:  []*VPort{NewVPort("*Active")},
		LineTypes: []*LineType{
			{Name: "ByBlock"},
			{Name: "ByLayer"},
			{Name: "Continuous", Description: "Solid line"},
		},
		Layers:          []*Layer{NewLayer("0", core.White)},
		TextStyles:      []*TextStyle{NewTextStyle("Standard", "txt")},
		DimStyles:       []*DimStyle{NewDimStyle("Standard")},
		Layouts:         []*Layout{NewLayout("Layout1", 1)},
		MLineStyles:     []*MLineStyle{NewMLineStyle("Standard")},
		RasterVariables: RasterVariables{Frame: 1, Quality: 1},
	}
}

func find[T any](items []*T, name func(*T) string, key string) *T {
	for _, item := range items {
		if strings.EqualFold(name(item), key) {
			return item
		}
	}
	return nil
}

// AppReg 按名称查找注册应用，名称不区分大小写（下同）
func (d *Document) AppReg(name string) *AppReg {
	return find(d.AppRegs, func(a *AppReg) string { return a.Name }, name)
}

func (d *Document) LineType(name string) *LineType {
	return find(d.LineTypes, func(l *LineType) string { return l.Name }, name)
}

func (d *Document) Layer(name string) *Layer {
	return find(d.Layers, func(l *Layer) string { return l.Name }, name)
}

func (d *Document) TextStyle(name string) *TextStyle {
	return find(d.TextStyles, func(s *TextStyle) string { return s.Name }, name)
}

func (d *Document) DimStyle(name string) *DimStyle {
	return find(d.DimStyles, func(s *DimStyle) string { return s.Name }, name)
}

func (d *Document) Block(name string) *Block {
	return find(d.Blocks, func(b *Block) string { return b.Name }, name)
}

func (d *Document) Layout(name string) *Layout {
	return find(d.Layouts, func(l *Layout) string { return l.Name }, name)
}

func (d *Document) MLineStyle(name string) *MLineStyle {
	return find(d.MLineStyles, func(s *MLineStyle) string { return s.Name }, name)
}

func (d *Document) ImageDef(name string) *ImageDef {
	return find(d.ImageDefs, func(i *ImageDef) string { return i.Name }, name)
}

// UnderlayDef 按类型和名称查找底图定义
func (d *Document) UnderlayDef(kind entities.UnderlayKind, name string) *UnderlayDef {
	for _, u := range d.UnderlayDefs {
		if u.Kind == kind && strings.EqualFold(u.Name, name) {
			return u
		}
	}
	return nil
}

// AddEntity 加入模型空间
func (d *Document) AddEntity(ents ...entities.Entity) {
	d.Entities = append(d.Entities, ents...)
}

// AddAppReg 注册应用名，已存在时返回原记录
func (d *Document) AddAppReg(name string) *AppReg {
	if a := d.AppReg(name); a != nil {
		return a
	}
	a := &AppReg{Name: name}
	d.AppRegs = append(d.AppRegs, a)
	return a
}

// AddLayer 加入图层，同名时返回原图层
func (d *Document) AddLayer(layer *Layer) *Layer {
	if l := d.Layer(layer.Name); l != nil {
		return l
	}
	d.Layers = append(d.Layers, layer)
	return layer
}

// AddLineType 加入线型，同名时返回原线型
func (d *Document) AddLineType(lt *LineType) *LineType {
	if l := d.LineType(lt.Name); l != nil {
		return l
	}
	d.LineTypes = append(d.LineTypes, lt)
	return lt
}

// AddTextStyle 加入文字样式，同名时返回原样式
func (d *Document) AddTextStyle(style *TextStyle) *TextStyle {
	if s := d.TextStyle(style.Name); s != nil {
		return s
	}
	d.TextStyles = append(d.TextStyles, style)
	return style
}

// AddDimStyle 加入标注样式，同名时返回原样式
func (d *Document) AddDimStyle(style *DimStyle) *DimStyle {
	if s := d.DimStyle(style.Name); s != nil {
		return s
	}
	d.DimStyles = append(d.DimStyles, style)
	return style
}

// AddBlock 加入块定义，同名时返回原块
func (d *Document) AddBlock(block *Block) *Block {
	if b := d.Block(block.Name); b != nil {
		return b
	}
	d.Blocks = append(d.Blocks, block)
	return block
}

// AddImageDef 加入图像定义，同名时返回原定义
func (d *Document) AddImageDef(def *ImageDef) *ImageDef {
	if i := d.ImageDef(def.Name); i != nil {
		return i
	}
	d.ImageDefs = append(d.ImageDefs, def)
	return def
}

// AddUnderlayDef 加入底图定义，同类型同名时返回原定义
func (d *Document) AddUnderlayDef(def *UnderlayDef) *UnderlayDef {
	if u := d.UnderlayDef(def.Kind, def.Name); u != nil {
		return u
	}
	d.UnderlayDefs = append(d.UnderlayDefs, def)
	return def
}

// AddGroup 创建编组
func (d *Document) AddGroup(name, description string, members ...entities.Entity) *Group {
	g := &Group{Name: name, Description: description, Selectable: true, Entities: members}
	d.Groups = append(d.Groups, g)
	return g
}
