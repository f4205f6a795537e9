package dxf

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// Layout 图纸空间布局。模型空间布局 "Model" 不在 Document.Layouts 中
type Layout struct {
	Name        string
	TabOrder    int16
	LimMin      core.Vec2
	LimMax      core.Vec2
	InsBase     core.Point
	PaperName   string // 组码 4，如 "ISO_A4_(210.00_x_297.00_MM)"
	PaperWidth  float64
	PaperHeight float64
	Margins     [4]float64 // 左、下、右、上，毫米
	Entities    []entities.Entity
}

func NewLayout(name string, tabOrder int16) *Layout {
	return &Layout{
		Name:        name,
		TabOrder:    tabOrder,
		LimMax:      core.Vec2{X: 420, Y: 297},
		PaperName:   "ISO_A3_(420.00_x_297.00_MM)",
		PaperWidth:  420,
		PaperHeight: 297,
		Margins:     [4]float64{7.5, 20, 7.5, 20},
	}
}

// Group 命名编组，成员须是文档中已有的实体
type Group struct {
	Name        string
	Description string
	Selectable  bool
	Entities    []entities.Entity
}

// MLineElement 多线样式中的一条线
type MLineElement struct {
	Offset   float64
	Color    core.Color
	LineType string
}

// MLineStyle 多线样式
type MLineStyle struct {
	Name        string
	Description string
	Flags       int16 // 1 填充，2 显示斜接，16/32 起点方形/内弧，256/512 终点
	FillColor   core.Color
	StartAngle  float64
	EndAngle    float64
	Elements    []MLineElement
}

func NewMLineStyle(name string) *MLineStyle {
	return &MLineStyle{
		Name:       name,
		FillColor:  core.ByLayer,
		StartAngle: 90,
		EndAngle:   90,
		Elements: []MLineElement{
			{Offset: 0.5, Color: core.ByLayer, LineType: "ByLayer"},
			{Offset: -0.5, Color: core.ByLayer, LineType: "ByLayer"},
		},
	}
}

// ImageDef 光栅图像定义
type ImageDef struct {
	Name       string
	FileName   string
	Size       core.Vec2 // 像素
	PixelSize  core.Vec2 // 单个像素的默认尺寸（AutoCAD 单位）
	Loaded     bool
	Resolution int16 // 0 无，2 厘米，5 英寸
}

func NewImageDef(name, file string, width, height int) *ImageDef {
	return &ImageDef{
		Name:      name,
		FileName:  file,
		Size:      core.Vec2{X: float64(width), Y: float64(height)},
		PixelSize: core.Vec2{X: 1, Y: 1},
		Loaded:    true,
	}
}

// UnderlayDef PDF/DWF/DGN 底图定义
type UnderlayDef struct {
	Kind      entities.UnderlayKind
	Name      string
	FileName  string
	SheetName string // PDF 页码或 DGN 模型名
}

// ObjectType 定义对象的 DXF 类型名，如 PDFDEFINITION
func (u *UnderlayDef) ObjectType() string { return u.Kind.String() + "DEFINITION" }

// DictionaryName 根字典中的集合名，如 ACAD_PDFDEFINITIONS
func (u *UnderlayDef) DictionaryName() string { return "ACAD_" + u.Kind.String() + "DEFINITIONS" }

// LayerStateEntry 图层状态中记录的单个图层属性
type LayerStateEntry struct {
	Layer        string
	Off          bool
	Frozen       bool
	Locked       bool
	Plot         bool
	Color        core.Color
	LineType     string
	LineWeight   core.LineWeight
	Transparency core.Transparency
}

// LayerState 命名图层状态，写在图层表扩展字典的 ACAD_LAYERSTATES 下
type LayerState struct {
	Name         string
	Description  string
	CurrentLayer string
	Entries      []LayerStateEntry
}

// Capture 记录文档当前所有图层的状态
func (d *Document) Capture(name string) *LayerState {
	s := &LayerState{Name: name, CurrentLayer: d.Header.CurrentLayer}
	for _, l := range d.Layers {
		s.Entries = append(s.Entries, LayerStateEntry{
			Layer:        l.Name,
			Off:          l.Off,
			Frozen:       l.Frozen,
			Locked:       l.Locked,
			Plot:         l.Plot,
			Color:        l.Color,
			LineType:     l.LineType,
			LineWeight:   l.LineWeight,
			Transparency: l.Transparency,
		})
	}
	d.LayerStates = append(d.LayerStates, s)
	return s
}

// RasterVariables 图像显示的全局设置 (ACAD_IMAGE_VARS)
type RasterVariables struct {
	Frame   int16 // 0 不显示边框，1 显示
	Quality int16 // 0 草图，1 高质量
	Units   int16 // 0 无，1 毫米 ... 5 英寸
}
