package writer

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// alignments 对齐方式对应的水平 (72) 与垂直 (73/74) 组码
var alignments = [...][2]int16{
	entities.BaselineLeft:   {0, 0},
	entities.BaselineCenter: {1, 0},
	entities.BaselineRight:  {2, 0},
	entities.BottomLeft:     {0, 1},
	entities.BottomCenter:   {1, 1},
	entities.BottomRight:    {2, 1},
	entities.MiddleLeft:     {0, 2},
	entities.MiddleCenter:   {1, 2},
	entities.MiddleRight:    {2, 2},
	entities.TopLeft:        {0, 3},
	entities.TopCenter:      {1, 3},
	entities.TopRight:       {2, 3},
	entities.Aligned:        {3, 0},
	entities.Middle:         {4, 0},
	entities.Fit:            {5, 0},
}

func alignment(a entities.TextAlignment) (h, v int16) {
	if a < 0 || int(a) >= len(alignments) {
		return 0, 0
	}
	return alignments[a][0], alignments[a][1]
}

// textBody 是 TEXT、ATTRIB、ATTDEF 共用的 AcDbText 部分
type textBody struct {
	value      string
	position   core.Point
	alignPoint core.Point
	height     float64
	width      float64
	rotation   float64
	oblique    float64
	style      string
	alignment  entities.TextAlignment
	generation int16
	thickness  float64
	normal     core.Point
}

// textBody 写到 210 为止，垂直对齐码由调用方按实体类型写出
func (d *docWriter) textBody(t textBody) {
	w := d.w
	w.Raw(100, "AcDbText")
	d.thickness(t.thickness)
	w.Point(10, ocs(t.position, t.normal))
	w.Double(40, t.height)
	w.String(1, t.value)
	if t.rotation != 0 {
		w.Double(50, t.rotation)
	}
	if t.width != 0 && t.width != 1 {
		w.Double(41, t.width)
	}
	if t.oblique != 0 {
		w.Double(51, t.oblique)
	}
	w.String(7, t.style)
	if t.generation != 0 {
		w.Int16(71, t.generation)
	}
	h, _ := alignment(t.alignment)
	if h != 0 {
		w.Int16(72, h)
	}
	if t.alignment != entities.BaselineLeft {
		w.Point(11, ocs(t.alignPoint, t.normal))
	}
	d.extrusion(t.normal)
}

func (d *docWriter) text(t *entities.Text) {
	var generation int16
	if t.Backward {
		generation |= 2
	}
	if t.UpsideDown {
		generation |= 4
	}
	d.textBody(textBody{
		value:      t.Value,
		position:   t.Position,
		alignPoint: t.AlignPoint,
		height:     t.Height,
		width:      t.WidthFactor,
		rotation:   t.Rotation,
		oblique:    t.Oblique,
		style:      t.Style,
		alignment:  t.Alignment,
		generation: generation,
		thickness:  t.Thickness,
		normal:     t.Normal,
	})
	d.w.Raw(100, "AcDbText")
	if _, v := alignment(t.Alignment); v != 0 {
		d.w.Int16(73, v)
	}
}

func (d *docWriter) attrib(a *entities.Attrib) {
	w := d.w
	d.textBody(textBody{
		value:      a.Text,
		position:   a.Location,
		alignPoint: a.AlignPoint,
		height:     a.Height,
		width:      a.WidthFactor,
		rotation:   a.Rotation,
		oblique:    a.Oblique,
		style:      a.Style,
		alignment:  a.Alignment,
		normal:     a.Normal,
	})
	w.Raw(100, "AcDbAttribute")
	w.String(2, a.Tag)
	w.Int16(70, int16(a.Flags))
	if _, v := alignment(a.Alignment); v != 0 {
		w.Int16(74, v)
	}
}

func (d *docWriter) attdef(a *entities.AttributeDefinition) {
	w := d.w
	d.textBody(textBody{
		value:      a.Text,
		position:   a.Location,
		alignPoint: a.AlignPoint,
		height:     a.Height,
		width:      a.WidthFactor,
		rotation:   a.Rotation,
		oblique:    a.Oblique,
		style:      a.Style,
		alignment:  a.Alignment,
		normal:     a.Normal,
	})
	w.Raw(100, "AcDbAttributeDefinition")
	w.String(3, a.Prompt)
	w.String(2, a.Tag)
	w.Int16(70, int16(a.Flags))
	if _, v := alignment(a.Alignment); v != 0 {
		w.Int16(74, v)
	}
}

// mtext 插入点与 X 方向都写 WCS，正文按 250 字符拆分
func (d *docWriter) mtext(t *entities.MText) {
	w := d.w
	normal := direction(t.Normal)
	w.Raw(100, "AcDbMText")
	w.Point(10, t.Position)
	w.Double(40, t.Height)
	w.Double(41, t.RectWidth)
	w.Int16(71, int16(t.Attachment))
	w.Int16(72, t.DrawingDirection)
	w.LongText(3, 1, t.Value)
	w.String(7, t.Style)
	d.extrusion(normal)

	ax, ay, _ := core.ArbitraryAxis(normal)
	rad := t.Rotation * math.Pi / 180
	w.Point(11, ax.Scale(math.Cos(rad)).Add(ay.Scale(math.Sin(rad))))
	w.Int16(73, t.LineSpacingStyle)
	w.Double(44, t.LineSpacingFactor)

	if bg := t.Background; bg != nil && d.version.AtLeast(core.AC1018) {
		flags := int32(1)
		if bg.UseWindowColor {
			flags = 3
		}
		w.Int32(90, flags)
		w.Int16(63, bg.Color.Index)
		if bg.Color.True {
			w.Int32(421, bg.Color.TrueColor())
		}
		scale := bg.Scale
		if scale == 0 {
			scale = 1.5
		}
		w.Double(45, scale)
		w.Int32(441, 0)
	}
}

func (d *docWriter) tolerance(t *entities.Tolerance) {
	w := d.w
	w.Raw(100, "AcDbFcf")
	w.String(3, t.StyleName)
	w.Point(10, t.Position)
	w.String(1, t.Value)
	d.extrusion(t.Normal)
	w.Point(11, xDirection(t.Direction))
}

// xDirection 零向量按 X 轴处理
func xDirection(p core.Point) core.Point {
	if p.IsZero() {
		return core.XAxis
	}
	return p
}
