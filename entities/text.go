package entities

import "github.com/zooyer/dxfwriter/core"

// TextAlignment 单行文字的对齐方式
type TextAlignment int

const (
	BaselineLeft TextAlignment = iota
	BaselineCenter
	BaselineRight
	BottomLeft
	BottomCenter
	BottomRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	TopLeft
	TopCenter
	TopRight
	Aligned // 两点对齐，文字高度随之缩放
	Middle  // 以第二点为文字中心
	Fit     // 两点对齐，高度不变
)

// Text 单行文字。Position 为第一对齐点，AlignPoint 为第二对齐点，均为 WCS
type Text struct {
	BaseEntity
	Value       string
	Position    core.Point
	AlignPoint  core.Point
	Height      float64
	WidthFactor float64
	Rotation    float64
	Oblique     float64
	Style       string
	Alignment   TextAlignment
	Backward    bool
	UpsideDown  bool
	Thickness   float64
	Normal      core.Point
}

func NewText(value string, position core.Point, height float64) *Text {
	return &Text{
		BaseEntity:  NewBase("TEXT"),
		Value:       value,
		Position:    position,
		AlignPoint:  position,
		Height:      height,
		WidthFactor: 1,
		Style:       "Standard",
		Normal:      core.ZAxis,
	}
}

// MTextAttachment 多行文字的附着点，取值即组码 71
type MTextAttachment int16

const (
	AttachTopLeft MTextAttachment = iota + 1
	AttachTopCenter
	AttachTopRight
	AttachMiddleLeft
	AttachMiddleCenter
	AttachMiddleRight
	AttachBottomLeft
	AttachBottomCenter
	AttachBottomRight
)

// MTextBackground 多行文字背景遮罩
type MTextBackground struct {
	Color          core.Color
	Scale          float64 // 边框偏移系数，1~5
	UseWindowColor bool
}

// MText 多行文字，插入点为 WCS，旋转角相对 OCS 的 X 轴
type MText struct {
	BaseEntity
	Value             string
	Position          core.Point
	Height            float64
	RectWidth         float64
	Rotation          float64
	Style             string
	Attachment        MTextAttachment
	DrawingDirection  int16 // 1 左到右，3 上到下，5 随样式
	LineSpacingStyle  int16 // 1 至少，2 精确
	LineSpacingFactor float64
	Background        *MTextBackground
	Normal            core.Point
}

func NewMText(value string, position core.Point, height, width float64) *MText {
	return &MText{
		BaseEntity:        NewBase("MTEXT"),
		Value:             value,
		Position:          position,
		Height:            height,
		RectWidth:         width,
		Style:             "Standard",
		Attachment:        AttachTopLeft,
		DrawingDirection:  5,
		LineSpacingStyle:  1,
		LineSpacingFactor: 1,
		Normal:            core.ZAxis,
	}
}

func init() {
	Register("TEXT", func() Entity { return NewText("", core.Point{}, 2.5) })
	Register("MTEXT", func() Entity { return NewMText("", core.Point{}, 2.5, 0) })
}
