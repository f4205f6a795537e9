package entities

import "github.com/zooyer/dxfwriter/core"

// AttributeFlags 属性标志，取值即组码 70
type AttributeFlags int16

const (
	AttributeInvisible AttributeFlags = 1
	AttributeConstant  AttributeFlags = 2
	AttributeVerify    AttributeFlags = 4
	AttributePreset    AttributeFlags = 8
)

// Attrib 块参照上的属性值
type Attrib struct {
	BaseEntity
	Tag         string // 属性标签，如 "序号"
	Text        string // 属性值
	Location    core.Point
	AlignPoint  core.Point
	Height      float64
	WidthFactor float64
	Rotation    float64
	Oblique     float64
	Style       string
	Alignment   TextAlignment
	Flags       AttributeFlags
	Normal      core.Point
}

func NewAttrib(tag, text string, location core.Point, height float64) *Attrib {
	return &Attrib{
		BaseEntity:  NewBase("ATTRIB"),
		Tag:         tag,
		Text:        text,
		Location:    location,
		AlignPoint:  location,
		Height:      height,
		WidthFactor: 1,
		Style:       "Standard",
		Normal:      core.ZAxis,
	}
}

// AttributeDefinition 块定义中的属性模板
type AttributeDefinition struct {
	BaseEntity
	Tag         string
	Prompt      string
	Text        string // 默认值
	Location    core.Point
	AlignPoint  core.Point
	Height      float64
	WidthFactor float64
	Rotation    float64
	Oblique     float64
	Style       string
	Alignment   TextAlignment
	Flags       AttributeFlags
	Normal      core.Point
}

func NewAttributeDefinition(tag, prompt string, location core.Point, height float64) *AttributeDefinition {
	return &AttributeDefinition{
		BaseEntity:  NewBase("ATTDEF"),
		Tag:         tag,
		Prompt:      prompt,
		Location:    location,
		AlignPoint:  location,
		Height:      height,
		WidthFactor: 1,
		Style:       "Standard",
		Normal:      core.ZAxis,
	}
}

// Instance 按定义生成一个属性值，位置随插入点平移
func (d *AttributeDefinition) Instance(value string, offset core.Point) *Attrib {
	a := NewAttrib(d.Tag, value, d.Location.Add(offset), d.Height)
	a.LayerName = d.LayerName
	a.AlignPoint = d.AlignPoint.Add(offset)
	a.WidthFactor = d.WidthFactor
	a.Rotation = d.Rotation
	a.Oblique = d.Oblique
	a.Style = d.Style
	a.Alignment = d.Alignment
	a.Flags = d.Flags &^ AttributeConstant
	a.Normal = d.Normal
	return a
}

func init() {
	Register("ATTRIB", func() Entity { return NewAttrib("", "", core.Point{}, 2.5) })
	Register("ATTDEF", func() Entity { return NewAttributeDefinition("", "", core.Point{}, 2.5) })
}
