package core

// Color AutoCAD 颜色索引 (ACI) 与可选的真彩色
type Color struct {
	Index int16  // 组码 62，0=ByBlock，256=ByLayer
	RGB   uint32 // 组码 420，仅 True 为真时有效
	True  bool
}

var (
	ByBlock = Color{Index: 0}
	ByLayer = Color{Index: 256}
	Red     = Color{Index: 1}
	Yellow  = Color{Index: 2}
	Green   = Color{Index: 3}
	Cyan    = Color{Index: 4}
	Blue    = Color{Index: 5}
	Magenta = Color{Index: 6}
	White   = Color{Index: 7}
)

// ColorIndex 按 ACI 构造颜色
func ColorIndex(i int16) Color { return Color{Index: i} }

// ColorRGB 构造真彩色，index 为低版本回退使用的近似 ACI
func ColorRGB(r, g, b uint8, index int16) Color {
	return Color{Index: index, RGB: uint32(r)<<16 | uint32(g)<<8 | uint32(b), True: true}
}

func (c Color) IsByLayer() bool { return !c.True && c.Index == 256 }

func (c Color) IsByBlock() bool { return !c.True && c.Index == 0 }

// TrueColor 组码 420 的取值
func (c Color) TrueColor() int32 { return int32(c.RGB & 0xFFFFFF) }

// LineWeight 线宽，单位 1/100 mm
type LineWeight int16

const (
	LineWeightByLayer LineWeight = -1
	LineWeightByBlock LineWeight = -2
	LineWeightDefault LineWeight = -3
)

// Transparency 透明度，Value 取 0(不透明)~90
type Transparency struct {
	Value   int16
	ByBlock bool
	ByLayer bool
}

var (
	TransparencyByLayer = Transparency{ByLayer: true}
	TransparencyByBlock = Transparency{ByBlock: true}
)

// Alpha 组码 440 的取值
func (t Transparency) Alpha() int32 {
	if t.ByBlock {
		return 0x01000000
	}
	v := t.Value
	if v < 0 {
		v = 0
	}
	if v > 90 {
		v = 90
	}
	alpha := int32(255 * (100 - float64(v)) / 100)
	return 0x02000000 | alpha
}
