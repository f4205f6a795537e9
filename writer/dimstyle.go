package writer

import (
	"github.com/pkg/errors"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// ZeroSuppression 把一个单位族的四个零抑制开关合成 DIMZIN 一类的整数。
// 低两位表示英尺/英寸，高两位表示前导/后续零
func ZeroSuppression(leading, trailing, feet, inches bool) int16 {
	var v int16
	switch {
	case feet && inches:
		v = 0
	case !feet && !inches:
		v = 1
	case !feet && inches:
		v = 2
	default:
		v = 3
	}
	switch {
	case leading && trailing:
		v += 12
	case leading:
		v += 4
	case trailing:
		v += 8
	}
	return v
}

// zeroFamily 一个单位族的零抑制覆盖项；角度族没有英尺/英寸
type zeroFamily struct {
	leading, trailing, feet, inches entities.DimOverride
	angular                         bool
}

// dimVar 标注样式变量与组码的对应
type dimVar struct {
	code    int
	key     entities.DimOverride
	zeros   *zeroFamily
	version core.Version
}

var (
	lengthZeros = &zeroFamily{
		leading:  entities.DimLengthSuppressLeading,
		trailing: entities.DimLengthSuppressTrailing,
		feet:     entities.DimLengthSuppressFeet,
		inches:   entities.DimLengthSuppressInches,
	}
	angularZeros = &zeroFamily{
		leading:  entities.DimAngularSuppressLeading,
		trailing: entities.DimAngularSuppressTrailing,
		angular:  true,
	}
	altZeros = &zeroFamily{
		leading:  entities.DimAltSuppressLeading,
		trailing: entities.DimAltSuppressTrailing,
		feet:     entities.DimAltSuppressFeet,
		inches:   entities.DimAltSuppressInches,
	}
	tolZeros = &zeroFamily{
		leading:  entities.DimTolSuppressLeading,
		trailing: entities.DimTolSuppressTrailing,
		feet:     entities.DimTolSuppressFeet,
		inches:   entities.DimTolSuppressInches,
	}
	altTolZeros = &zeroFamily{
		leading:  entities.DimAltTolSuppressLeading,
		trailing: entities.DimAltTolSuppressTrailing,
		feet:     entities.DimAltTolSuppressFeet,
		inches:   entities.DimAltTolSuppressInches,
	}
)

// dimVars 按组码排序
var dimVars = []dimVar{
	{code: 3, key: entities.DimPost},
	{code: 4, key: entities.DimAltPost},
	{code: 40, key: entities.DimScale},
	{code: 41, key: entities.DimArrowSize},
	{code: 42, key: entities.DimExtOffset},
	{code: 43, key: entities.DimLineIncrement},
	{code: 44, key: entities.DimExtExtend},
	{code: 45, key: entities.DimRound},
	{code: 46, key: entities.DimLineExtend},
	{code: 47, key: entities.DimTolPlus},
	{code: 48, key: entities.DimTolMinus},
	{code: 49, key: entities.DimFixedExtLength, version: core.AC1021},
	{code: 50, key: entities.DimJogAngle, version: core.AC1021},
	{code: 69, key: entities.DimTextFill, version: core.AC1021},
	{code: 70, key: entities.DimTextFillColor, version: core.AC1021},
	{code: 71, key: entities.DimTolerance},
	{code: 72, key: entities.DimLimits},
	{code: 73, key: entities.DimTextInsideHorizontal},
	{code: 74, key: entities.DimTextOutsideHorizontal},
	{code: 75, key: entities.DimSuppressExt1},
	{code: 76, key: entities.DimSuppressExt2},
	{code: 77, key: entities.DimTextVertical},
	{code: 78, zeros: lengthZeros},
	{code: 79, zeros: angularZeros},
	{code: 90, key: entities.DimArcSymbol, version: core.AC1021},
	{code: 140, key: entities.DimTextHeight},
	{code: 141, key: entities.DimCenter},
	{code: 142, key: entities.DimTickSize},
	{code: 143, key: entities.DimAltScale},
	{code: 144, key: entities.DimLinearScale},
	{code: 145, key: entities.DimTextVerticalPos},
	{code: 146, key: entities.DimTolScale},
	{code: 147, key: entities.DimGap},
	{code: 148, key: entities.DimAltRound},
	{code: 170, key: entities.DimAlt},
	{code: 171, key: entities.DimAltDecimals},
	{code: 172, key: entities.DimForceLine},
	{code: 173, key: entities.DimSeparateArrows},
	{code: 174, key: entities.DimForceTextInside},
	{code: 175, key: entities.DimSuppressOutside},
	{code: 176, key: entities.DimLineColor},
	{code: 177, key: entities.DimExtColor},
	{code: 178, key: entities.DimTextColor},
	{code: 179, key: entities.DimAngularDecimals},
	{code: 271, key: entities.DimDecimals},
	{code: 272, key: entities.DimTolDecimals},
	{code: 273, key: entities.DimAltUnits},
	{code: 274, key: entities.DimAltTolDecimals},
	{code: 275, key: entities.DimAngularUnits},
	{code: 276, key: entities.DimFraction},
	{code: 277, key: entities.DimLinearUnits},
	{code: 278, key: entities.DimDecimalSeparator},
	{code: 279, key: entities.DimTextMove},
	{code: 280, key: entities.DimTextJustify},
	{code: 281, key: entities.DimSuppressLine1},
	{code: 282, key: entities.DimSuppressLine2},
	{code: 283, key: entities.DimTolJustify},
	{code: 284, zeros: tolZeros},
	{code: 285, zeros: altZeros},
	{code: 286, zeros: altTolZeros},
	{code: 289, key: entities.DimFit},
	{code: 290, key: entities.DimFixedExtOn, version: core.AC1021},
	{code: 295, key: entities.DimTextDirection, version: core.AC1032},
	{code: 340, key: entities.DimTextStyle},
	{code: 341, key: entities.DimLeaderArrow},
	{code: 342, key: entities.DimArrow},
	{code: 343, key: entities.DimArrow1},
	{code: 344, key: entities.DimArrow2},
	{code: 345, key: entities.DimLineType, version: core.AC1021},
	{code: 346, key: entities.DimExt1LineType, version: core.AC1021},
	{code: 347, key: entities.DimExt2LineType, version: core.AC1021},
	{code: 371, key: entities.DimLineWeight},
	{code: 372, key: entities.DimExtLineWeight},
}

// packZeros 合成零抑制值，lookup 返回各开关的当前值
func packZeros(z *zeroFamily, lookup func(entities.DimOverride) bool) int16 {
	if z.angular {
		return ZeroSuppression(lookup(z.leading), lookup(z.trailing), true, true)
	}
	return ZeroSuppression(lookup(z.leading), lookup(z.trailing), lookup(z.feet), lookup(z.inches))
}

func (z *zeroFamily) keys() []entities.DimOverride {
	if z.angular {
		return []entities.DimOverride{z.leading, z.trailing}
	}
	return []entities.DimOverride{z.leading, z.trailing, z.feet, z.inches}
}

// dimHandle 按组码解析按名称引用的文字样式、箭头块或线型
func (d *docWriter) dimHandle(code int, name string) core.Handle {
	if name == "" {
		return 0
	}
	switch {
	case code == 340:
		return d.pre.Handle(d.doc.TextStyle(name))
	case code <= 344:
		return d.pre.Handle(d.doc.Block(name))
	}
	return d.pre.Handle(d.doc.LineType(name))
}

func (d *docWriter) dimStyleTable() {
	styles := d.doc.DimStyles
	d.beginTable("DIMSTYLE", len(styles), 0)
	w := d.w
	w.Raw(100, "AcDbDimStyleTable")
	w.Int16(71, int16(len(styles)))
	for _, s := range styles {
		d.record("DIMSTYLE", "DIMSTYLE", "AcDbDimStyleTableRecord", d.pre.Handle(s))
		w.String(2, s.Name)
		w.Int16(70, 0)
		d.dimStyle(s)
	}
	d.m.endTable()
}

func (d *docWriter) dimStyle(s *dxf.DimStyle) {
	w := d.w
	for _, v := range dimVars {
		if v.version != 0 && !d.version.AtLeast(v.version) {
			continue
		}
		if v.zeros != nil {
			w.Int16(v.code, packZeros(v.zeros, func(k entities.DimOverride) bool {
				b, _ := s.Value(k).(bool)
				return b
			}))
			continue
		}
		switch value := s.Value(v.key).(type) {
		case string:
			if core.KindOf(v.code) == core.KindHandle {
				w.OptHandle(v.code, d.dimHandle(v.code, value))
			} else {
				w.String(v.code, value)
			}
		case float64:
			w.Double(v.code, value)
		case int16:
			w.Int16(v.code, value)
		case int32:
			w.Int32(v.code, value)
		case bool:
			if core.KindOf(v.code) == core.KindBool {
				w.Bool(v.code, value)
			} else {
				w.Int16(v.code, boolInt(value))
			}
		case core.Color:
			w.Int16(v.code, value.Index)
		case core.LineWeight:
			w.Int16(v.code, int16(value))
		}
	}
}

// coerce 把覆盖值转换成样式中对应变量的类型
func coerce(proto, v any) (any, bool) {
	switch proto.(type) {
	case string:
		s, ok := v.(string)
		return s, ok
	case float64:
		return asFloat(v)
	case int16:
		i, ok := asInt(v)
		return int16(i), ok
	case int32:
		i, ok := asInt(v)
		return int32(i), ok
	case bool:
		if b, ok := v.(bool); ok {
			return b, true
		}
		i, ok := asInt(v)
		return i != 0, ok
	case core.Color:
		if c, ok := v.(core.Color); ok {
			return c, true
		}
		i, ok := asInt(v)
		return core.ColorIndex(int16(i)), ok
	case core.LineWeight:
		if lw, ok := v.(core.LineWeight); ok {
			return lw, true
		}
		i, ok := asInt(v)
		return core.LineWeight(i), ok
	}
	return nil, false
}

// overrides 把标注或引线上的样式覆盖编码为 ACAD 应用下的 DSTYLE 扩展数据，
// 没有覆盖时返回 nil
func (d *docWriter) overrides(styleName string, o entities.DimStyleOverrides) (*core.XData, error) {
	if len(o) == 0 {
		return nil, nil
	}
	style := d.doc.DimStyle(styleName)
	if style == nil {
		return nil, errors.Wrapf(ErrMissingReference, "dimension style %q", styleName)
	}

	values := []core.XDataValue{core.XString("DSTYLE"), core.XOpen()}
	for _, v := range dimVars {
		if v.version != 0 && !d.version.AtLeast(v.version) {
			continue
		}
		if v.zeros != nil {
			overridden := false
			for _, k := range v.zeros.keys() {
				if _, ok := o[k]; ok {
					overridden = true
				}
			}
			if !overridden {
				continue
			}
			packed := packZeros(v.zeros, func(k entities.DimOverride) bool {
				if raw, ok := o[k]; ok {
					if b, ok := coerce(false, raw); ok {
						return b.(bool)
					}
				}
				b, _ := style.Value(k).(bool)
				return b
			})
			values = append(values, core.XInt16(int16(v.code)), core.XInt16(packed))
			continue
		}

		raw, ok := o[v.key]
		if !ok {
			continue
		}
		value, ok := coerce(style.Value(v.key), raw)
		if !ok {
			d.log.Warn("skip dimension style override", "style", styleName, "code", v.code, "value", raw)
			continue
		}
		var x core.XDataValue
		switch value := value.(type) {
		case string:
			if core.KindOf(v.code) == core.KindHandle {
				h := d.dimHandle(v.code, value)
				if h.IsZero() {
					continue
				}
				x = core.XHandle(h)
			} else {
				x = core.XString(value)
			}
		case float64:
			x = core.XReal(value)
		case int16:
			x = core.XInt16(value)
		case int32:
			x = core.XInt32(value)
		case bool:
			x = core.XInt16(boolInt(value))
		case core.Color:
			x = core.XInt16(value.Index)
		case core.LineWeight:
			x = core.XInt16(int16(value))
		}
		values = append(values, core.XInt16(int16(v.code)), x)
	}
	values = append(values, core.XClose())
	return &core.XData{AppID: "ACAD", Values: values}, nil
}
