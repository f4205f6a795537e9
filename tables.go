package dxf

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// AppReg 注册应用名，XData 必须引用已注册的应用
type AppReg struct {
	Name string
}

// VPort 视口配置，"*Active" 为当前视口
type VPort struct {
	Name        string
	LowerLeft   core.Vec2
	UpperRight  core.Vec2
	Center      core.Vec2
	Height      float64
	AspectRatio float64
	Direction   core.Point
	Target      core.Point
	SnapSpacing core.Vec2
	GridSpacing core.Vec2
	GridOn      bool
}

func NewVPort(name string) *VPort {
	return &VPort{
		Name:        name,
		UpperRight:  core.Vec2{X: 1, Y: 1},
		Center:      core.Vec2{X: 50, Y: 50},
		Height:      100,
		AspectRatio: 1.5,
		Direction:   core.ZAxis,
		SnapSpacing: core.Vec2{X: 10, Y: 10},
		GridSpacing: core.Vec2{X: 10, Y: 10},
	}
}

// LineTypeElement 线型图案的一段。Length 正数为实线，负数为空白，0 为点。
// Text 或 Shape 非空时在该段嵌入文字或形
type LineTypeElement struct {
	Length   float64
	Text     string
	Shape    int16
	Style    string // 文字或形所用的样式
	Scale    float64
	Rotation float64
	Absolute bool // 旋转角相对 WCS
	Offset   core.Vec2
}

// Complex 是否嵌入了文字或形
func (e LineTypeElement) Complex() bool { return e.Text != "" || e.Shape != 0 }

// LineType 线型
type LineType struct {
	Name        string
	Description string
	Pattern     []LineTypeElement
}

// PatternLength 图案总长
func (l *LineType) PatternLength() float64 {
	var sum float64
	for _, e := range l.Pattern {
		if e.Length < 0 {
			sum -= e.Length
		} else {
			sum += e.Length
		}
	}
	return sum
}

// Layer 图层
type Layer struct {
	Name         string
	Color        core.Color
	LineType     string
	LineWeight   core.LineWeight
	Plot         bool
	Frozen       bool
	Locked       bool
	Off          bool // 写出时颜色号取负
	Transparency core.Transparency
	XData        core.XDataDictionary
}

// Transparent 是否需要以 AcCmTransparency 扩展数据写出透明度
func (l *Layer) Transparent() bool {
	t := l.Transparency
	return !t.ByLayer && !t.ByBlock && t.Value > 0
}

func NewLayer(name string, color core.Color) *Layer {
	return &Layer{Name: name, Color: color, LineType: "Continuous", LineWeight: core.LineWeightDefault, Plot: true}
}

// TextStyle 文字样式；Shape 为真时是形文件
type TextStyle struct {
	Name        string
	Font        string // 组码 3
	BigFont     string // 组码 4
	Height      float64
	WidthFactor float64
	Oblique     float64
	Backward    bool
	UpsideDown  bool
	Vertical    bool
	Shape       bool
}

func NewTextStyle(name, font string) *TextStyle {
	return &TextStyle{Name: name, Font: font, WidthFactor: 1}
}

// ZeroSuppression 某一单位族的零抑制设置
type ZeroSuppression struct {
	Leading  bool
	Trailing bool
	Feet     bool
	Inches   bool
}

// DimStyle 标注样式
type DimStyle struct {
	Name      string
	Precision int16   // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征

	Post              string  // DIMPOST
	AltPost           string  // DIMAPOST
	ArrowSize         float64 // DIMASZ
	ExtOffset         float64 // DIMEXO
	LineIncrement     float64 // DIMDLI
	Round             float64 // DIMRND
	LineExtend        float64 // DIMDLE
	TolPlus           float64 // DIMTP
	TolMinus          float64 // DIMTM
	FixedExtLength    float64 // DIMFXL
	JogAngle          float64 // DIMJOGANG，弧度
	TextFill          int16   // DIMTFILL
	TextFillColor     core.Color
	Tolerance         bool // DIMTOL
	Limits            bool // DIMLIM
	TextInsideHoriz   bool // DIMTIH
	TextOutsideHoriz  bool // DIMTOH
	SuppressExt1      bool // DIMSE1
	SuppressExt2      bool // DIMSE2
	TextVertical      int16
	ArcSymbol         int32
	TextHeight        float64 // DIMTXT
	Center            float64 // DIMCEN
	TickSize          float64 // DIMTSZ
	AltScale          float64 // DIMALTF
	LinearScale       float64 // DIMLFAC
	TextVerticalPos   float64 // DIMTVP
	TolScale          float64 // DIMTFAC
	Gap               float64 // DIMGAP
	AltRound          float64 // DIMALTRND
	Alt               bool    // DIMALT
	AltDecimals       int16   // DIMALTD
	ForceLine         bool    // DIMTOFL
	ForceTextInside   bool    // DIMTIX
	SuppressOutside   bool    // DIMSOXD
	LineColor         core.Color
	ExtColor          core.Color
	TextColor         core.Color
	AngularDecimals   int16
	TolDecimals       int16
	AltUnits          int16
	AltTolDecimals    int16
	AngularUnits      int16
	Fraction          int16
	LinearUnits       int16
	DecimalSeparator  rune
	TextMove          int16
	TextJustify       int16
	SuppressLine1     bool
	SuppressLine2     bool
	TolJustify        int16
	Fit               int16 // DIMATFIT
	FixedExtOn        bool
	TextDirection     bool // DIMTXTDIRECTION，从右到左
	TextStyle         string
	LeaderArrow       string // 箭头块名，空为实心闭合
	Arrow             string
	Arrow1            string
	Arrow2            string
	LineType          string
	Ext1LineType      string
	Ext2LineType      string
	LineWeight        core.LineWeight
	ExtLineWeight     core.LineWeight
	LengthZeros       ZeroSuppression
	AngularZeros      ZeroSuppression
	AltZeros          ZeroSuppression
	TolZeros          ZeroSuppression
	AltTolZeros       ZeroSuppression
}

// NewDimStyle 公制 ISO-25 风格的默认值
func NewDimStyle(name string) *DimStyle {
	zs := ZeroSuppression{Feet: true, Inches: true}
	return &DimStyle{
		Name:             name,
		Precision:        2,
		ExLimit:          1.25,
		Scale:            1,
		ArrowSize:        2.5,
		ExtOffset:        0.625,
		LineIncrement:    3.75,
		JogAngle:         0.7853981633974483,
		FixedExtLength:   1,
		TextFillColor:    core.ByBlock,
		TextVertical:     1,
		TextHeight:       2.5,
		Center:           2.5,
		AltScale:         0.03937007874,
		LinearScale:      1,
		TolScale:         1,
		Gap:              0.625,
		AltDecimals:      3,
		AltTolDecimals:   3,
		ForceLine:        true,
		LineColor:        core.ByBlock,
		ExtColor:         core.ByBlock,
		TextColor:        core.ByBlock,
		TolDecimals:      2,
		AltUnits:         2,
		LinearUnits:      2,
		DecimalSeparator: '.',
		TolJustify:       1,
		Fit:              3,
		TextStyle:        "Standard",
		LineWeight:       core.LineWeightByBlock,
		ExtLineWeight:    core.LineWeightByBlock,
		LengthZeros:      ZeroSuppression{Trailing: true, Feet: true, Inches: true},
		AngularZeros:     zs,
		AltZeros:         zs,
		TolZeros:         ZeroSuppression{Trailing: true, Feet: true, Inches: true},
		AltTolZeros:      zs,
	}
}

// Value 按覆盖项取样式中的值，类型与 entities.DimStyleOverrides 约定一致
func (s *DimStyle) Value(k entities.DimOverride) any {
	switch k {
	case entities.DimPost:
		return s.Post
	case entities.DimAltPost:
		return s.AltPost
	case entities.DimScale:
		return s.Scale
	case entities.DimArrowSize:
		return s.ArrowSize
	case entities.DimExtOffset:
		return s.ExtOffset
	case entities.DimLineIncrement:
		return s.LineIncrement
	case entities.DimExtExtend:
		return s.ExLimit
	case entities.DimRound:
		return s.Round
	case entities.DimLineExtend:
		return s.LineExtend
	case entities.DimTolPlus:
		return s.TolPlus
	case entities.DimTolMinus:
		return s.TolMinus
	case entities.DimFixedExtLength:
		return s.FixedExtLength
	case entities.DimJogAngle:
		return s.JogAngle
	case entities.DimTextFill:
		return s.TextFill
	case entities.DimTextFillColor:
		return s.TextFillColor
	case entities.DimTolerance:
		return s.Tolerance
	case entities.DimLimits:
		return s.Limits
	case entities.DimTextInsideHorizontal:
		return s.TextInsideHoriz
	case entities.DimTextOutsideHorizontal:
		return s.TextOutsideHoriz
	case entities.DimSuppressExt1:
		return s.SuppressExt1
	case entities.DimSuppressExt2:
		return s.SuppressExt2
	case entities.DimTextVertical:
		return s.TextVertical
	case entities.DimArcSymbol:
		return s.ArcSymbol
	case entities.DimTextHeight:
		return s.TextHeight
	case entities.DimCenter:
		return s.Center
	case entities.DimTickSize:
		return s.TickSize
	case entities.DimAltScale:
		return s.AltScale
	case entities.DimLinearScale:
		return s.LinearScale
	case entities.DimTextVerticalPos:
		return s.TextVerticalPos
	case entities.DimTolScale:
		return s.TolScale
	case entities.DimGap:
		return s.Gap
	case entities.DimAltRound:
		return s.AltRound
	case entities.DimAlt:
		return s.Alt
	case entities.DimAltDecimals:
		return s.AltDecimals
	case entities.DimForceLine:
		return s.ForceLine
	case entities.DimSeparateArrows:
		return s.Arrow1 != "" || s.Arrow2 != ""
	case entities.DimForceTextInside:
		return s.ForceTextInside
	case entities.DimSuppressOutside:
		return s.SuppressOutside
	case entities.DimLineColor:
		return s.LineColor
	case entities.DimExtColor:
		return s.ExtColor
	case entities.DimTextColor:
		return s.TextColor
	case entities.DimAngularDecimals:
		return s.AngularDecimals
	case entities.DimDecimals:
		return s.Precision
	case entities.DimTolDecimals:
		return s.TolDecimals
	case entities.DimAltUnits:
		return s.AltUnits
	case entities.DimAltTolDecimals:
		return s.AltTolDecimals
	case entities.DimAngularUnits:
		return s.AngularUnits
	case entities.DimFraction:
		return s.Fraction
	case entities.DimLinearUnits:
		return s.LinearUnits
	case entities.DimDecimalSeparator:
		return int16(s.DecimalSeparator)
	case entities.DimTextMove:
		return s.TextMove
	case entities.DimTextJustify:
		return s.TextJustify
	case entities.DimSuppressLine1:
		return s.SuppressLine1
	case entities.DimSuppressLine2:
		return s.SuppressLine2
	case entities.DimTolJustify:
		return s.TolJustify
	case entities.DimFit:
		return s.Fit
	case entities.DimFixedExtOn:
		return s.FixedExtOn
	case entities.DimTextDirection:
		return s.TextDirection
	case entities.DimTextStyle:
		return s.TextStyle
	case entities.DimLeaderArrow:
		return s.LeaderArrow
	case entities.DimArrow:
		return s.Arrow
	case entities.DimArrow1:
		return s.Arrow1
	case entities.DimArrow2:
		return s.Arrow2
	case entities.DimLineType:
		return s.LineType
	case entities.DimExt1LineType:
		return s.Ext1LineType
	case entities.DimExt2LineType:
		return s.Ext2LineType
	case entities.DimLineWeight:
		return s.LineWeight
	case entities.DimExtLineWeight:
		return s.ExtLineWeight
	case entities.DimLengthSuppressLeading:
		return s.LengthZeros.Leading
	case entities.DimLengthSuppressTrailing:
		return s.LengthZeros.Trailing
	case entities.DimLengthSuppressFeet:
		return s.LengthZeros.Feet
	case entities.DimLengthSuppressInches:
		return s.LengthZeros.Inches
	case entities.DimAngularSuppressLeading:
		return s.AngularZeros.Leading
	case entities.DimAngularSuppressTrailing:
		return s.AngularZeros.Trailing
	case entities.DimAltSuppressLeading:
		return s.AltZeros.Leading
	case entities.DimAltSuppressTrailing:
		return s.AltZeros.Trailing
	case entities.DimAltSuppressFeet:
		return s.AltZeros.Feet
	case entities.DimAltSuppressInches:
		return s.AltZeros.Inches
	case entities.DimTolSuppressLeading:
		return s.TolZeros.Leading
	case entities.DimTolSuppressTrailing:
		return s.TolZeros.Trailing
	case entities.DimTolSuppressFeet:
		return s.TolZeros.Feet
	case entities.DimTolSuppressInches:
		return s.TolZeros.Inches
	case entities.DimAltTolSuppressLeading:
		return s.AltTolZeros.Leading
	case entities.DimAltTolSuppressTrailing:
		return s.AltTolZeros.Trailing
	case entities.DimAltTolSuppressFeet:
		return s.AltTolZeros.Feet
	case entities.DimAltTolSuppressInches:
		return s.AltTolZeros.Inches
	}
	return nil
}

// View 命名视图
type View struct {
	Name      string
	Center    core.Vec2
	Height    float64
	Width     float64
	Direction core.Point
	Target    core.Point
}

// UCS 用户坐标系
type UCS struct {
	Name   string
	Origin core.Point
	XAxis  core.Point
	YAxis  core.Point
}

// Block 块定义。属性定义作为 *entities.AttributeDefinition 放在 Entities 中
type Block struct {
	Name        string
	BasePoint   core.Point
	Description string
	Layer       string
	Entities    []entities.Entity
}

func NewBlock(name string, entities ...entities.Entity) *Block {
	return &Block{Name: name, Layer: "0", Entities: entities}
}

// HasAttributes 块内是否含属性定义（块标志 2）
func (b *Block) HasAttributes() bool {
	for _, e := range b.Entities {
		if _, ok := e.(*entities.AttributeDefinition); ok {
			return true
		}
	}
	return false
}
