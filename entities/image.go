package entities

import "github.com/zooyer/dxfwriter/core"

// ImageDisplay 图像显示标志，取值即组码 70
type ImageDisplay int16

const (
	ImageShow            ImageDisplay = 1
	ImageShowUnaligned   ImageDisplay = 2
	ImageUseClipBoundary ImageDisplay = 4
	ImageTransparency    ImageDisplay = 8
)

// Image 光栅图像，引用文档中同名的图像定义
type Image struct {
	BaseEntity
	Definition   string     // 图像定义名称
	Position     core.Point // 左下角，WCS
	U, V         core.Point // 单个像素在 WCS 中的 U/V 向量
	Size         core.Vec2  // 像素尺寸
	Display      ImageDisplay
	Clipping     bool
	Brightness   int16
	Contrast     int16
	Fade         int16
	ClipBoundary []core.Vec2 // 像素坐标，2 个点为矩形
}

// NewImage width/height 为图像在图纸中的尺寸
func NewImage(definition string, position core.Point, pixels core.Vec2, width, height float64) *Image {
	img := &Image{
		BaseEntity: NewBase("IMAGE"),
		Definition: definition,
		Position:   position,
		Size:       pixels,
		Display:    ImageShow | ImageShowUnaligned | ImageUseClipBoundary,
		Brightness: 50,
		Contrast:   50,
	}
	if pixels.X > 0 && pixels.Y > 0 {
		img.U = core.Point{X: width / pixels.X}
		img.V = core.Point{Y: height / pixels.Y}
	}
	return img
}

// Wipeout 遮罩，边界为 OCS 中的多边形
type Wipeout struct {
	BaseEntity
	Boundary  []core.Vec2
	Elevation float64
	Normal    core.Point
}

func NewWipeout(points ...core.Vec2) *Wipeout {
	return &Wipeout{BaseEntity: NewBase("WIPEOUT"), Boundary: points, Normal: core.ZAxis}
}

// UnderlayKind 参考底图类型
type UnderlayKind int

const (
	UnderlayPDF UnderlayKind = iota
	UnderlayDWF
	UnderlayDGN
)

func (k UnderlayKind) String() string {
	switch k {
	case UnderlayDWF:
		return "DWF"
	case UnderlayDGN:
		return "DGN"
	}
	return "PDF"
}

// Underlay PDF/DWF/DGN 参考底图，引用同名的底图定义
type Underlay struct {
	BaseEntity
	Kind         UnderlayKind
	Definition   string
	Position     core.Point
	Scale        core.Point
	Rotation     float64
	Normal       core.Point
	Flags        int16 // 组码 280：1 裁剪，2 开启，4 单色，8 随背景调整
	Contrast     int16
	Fade         int16
	ClipBoundary []core.Vec2
}

func NewUnderlay(kind UnderlayKind, definition string, position core.Point) *Underlay {
	return &Underlay{
		BaseEntity: NewBase(kind.String() + "UNDERLAY"),
		Kind:       kind,
		Definition: definition,
		Position:   position,
		Scale:      core.Point{X: 1, Y: 1, Z: 1},
		Normal:     core.ZAxis,
		Flags:      2,
		Contrast:   100,
	}
}

func init() {
	Register("IMAGE", func() Entity { return NewImage("", core.Point{}, core.Vec2{}, 0, 0) })
	Register("WIPEOUT", func() Entity { return NewWipeout() })
	Register("PDFUNDERLAY", func() Entity { return NewUnderlay(UnderlayPDF, "", core.Point{}) })
	Register("DWFUNDERLAY", func() Entity { return NewUnderlay(UnderlayDWF, "", core.Point{}) })
	Register("DGNUNDERLAY", func() Entity { return NewUnderlay(UnderlayDGN, "", core.Point{}) })
}
