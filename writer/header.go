package writer

import (
	"strings"

	"github.com/pkg/errors"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/utils"
)

// 只在不低于指定版本时写出的头变量
var headerGates = map[string]core.Version{
	"$ACADMAINTVER": core.AC1018,
}

// 由写出过程计算、不接受自定义值的头变量
var computedHeader = map[string]bool{
	"$ACADVER":  true,
	"$HANDSEED": true,
	"$EXTMIN":   true,
	"$EXTMAX":   true,
}

func (d *docWriter) variable(name string) bool {
	if gate, ok := headerGates[name]; ok && !d.version.AtLeast(gate) {
		return false
	}
	d.w.Raw(9, name)
	return true
}

func (d *docWriter) header() {
	d.m.in(sectionHeader, "write header")
	h := d.doc.Header
	w := d.w

	custom := make(map[string]bool)
	for _, v := range h.Custom {
		custom[strings.ToUpper(v.Name)] = true
	}
	// builtin 自定义变量同名时以自定义值为准
	builtin := func(name string, write func()) {
		if custom[name] {
			return
		}
		if d.variable(name) {
			write()
		}
	}

	d.variable("$ACADVER")
	w.Raw(1, d.version.String())
	builtin("$ACADMAINTVER", func() { w.Int16(70, h.MaintenanceVersion) })
	builtin("$DWGCODEPAGE", func() { w.Raw(3, h.CodePage) })
	builtin("$INSBASE", func() { w.Point(10, h.InsBase) })

	ext := utils.Extents(d.doc)
	if ext.Empty() {
		ext = core.BBox{
			Min: core.Point{X: 1e20, Y: 1e20, Z: 1e20},
			Max: core.Point{X: -1e20, Y: -1e20, Z: -1e20},
		}
	}
	d.variable("$EXTMIN")
	w.Point(10, ext.Min)
	d.variable("$EXTMAX")
	w.Point(10, ext.Max)

	builtin("$LTSCALE", func() { w.Double(40, h.LTScale) })
	builtin("$TEXTSIZE", func() { w.Double(40, h.TextSize) })
	builtin("$TEXTSTYLE", func() { w.String(7, h.TextStyle) })
	builtin("$CLAYER", func() { w.String(8, h.CurrentLayer) })
	builtin("$CELTYPE", func() { w.String(6, h.CurrentLineType) })
	builtin("$CECOLOR", func() { w.Int16(62, h.CurrentColor.Index) })
	builtin("$DIMSTYLE", func() { w.String(2, h.DimStyle) })
	builtin("$INSUNITS", func() { w.Int16(70, h.InsUnits) })
	builtin("$PDMODE", func() { w.Int16(70, h.PDMode) })
	builtin("$PDSIZE", func() { w.Double(40, h.PDSize) })
	builtin("$SPLINESEGS", func() { w.Int16(70, h.SplineSegs) })
	builtin("$SURFU", func() { w.Int16(70, h.SurfU) })
	builtin("$SURFV", func() { w.Int16(70, h.SurfV) })
	builtin("$LUNITS", func() { w.Int16(70, h.LUnits) })
	builtin("$LUPREC", func() { w.Int16(70, h.LUPrec) })
	builtin("$AUNITS", func() { w.Int16(70, h.AUnits) })
	builtin("$AUPREC", func() { w.Int16(70, h.AUPrec) })
	builtin("$ANGBASE", func() { w.Double(50, h.AngBase) })
	builtin("$ANGDIR", func() { w.Int16(70, h.AngDir) })
	builtin("$MIRRTEXT", func() { w.Int16(70, boolInt(h.MirrText)) })
	builtin("$LWDISPLAY", func() { w.Bool(290, h.LWDisplay) })
	builtin("$TDCREATE", func() { w.Double(40, dxf.JulianDate(h.Created)) })
	builtin("$TDUPDATE", func() { w.Double(40, dxf.JulianDate(h.Updated)) })
	d.variable("$HANDSEED")
	w.Handle(5, d.pre.Seed)
	builtin("$FINGERPRINTGUID", func() { w.Raw(2, h.FingerprintGUID) })
	builtin("$VERSIONGUID", func() { w.Raw(2, h.VersionGUID) })

	for _, v := range h.Custom {
		name := strings.ToUpper(v.Name)
		if computedHeader[name] || !d.variable(name) {
			continue
		}
		if err := d.typed(v.Code, v.Value); err != nil {
			d.fail(errors.Wrapf(err, "header variable %s", name))
		}
	}
}

func boolInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// typed 按组码的值类型写出任意值
func (d *docWriter) typed(code int, v any) error {
	w := d.w
	if p, ok := v.(core.Point); ok {
		w.Point(code, p)
		return nil
	}
	if p, ok := v.(core.Vec2); ok {
		w.Point2(code, p)
		return nil
	}

	switch core.KindOf(code) {
	case core.KindString:
		if s, ok := v.(string); ok {
			w.String(code, s)
			return nil
		}
	case core.KindHandle:
		switch h := v.(type) {
		case core.Handle:
			w.Handle(code, h)
			return nil
		case string:
			w.Raw(code, h)
			return nil
		}
	case core.KindInt16:
		if i, ok := asInt(v); ok {
			w.Int16(code, int16(i))
			return nil
		}
	case core.KindInt32:
		if i, ok := asInt(v); ok {
			w.Int32(code, int32(i))
			return nil
		}
	case core.KindInt64:
		if i, ok := asInt(v); ok {
			w.Int64(code, i)
			return nil
		}
	case core.KindDouble:
		if f, ok := asFloat(v); ok {
			w.Double(code, f)
			return nil
		}
	case core.KindBool:
		if b, ok := v.(bool); ok {
			w.Bool(code, b)
			return nil
		}
	case core.KindBinary:
		if b, ok := v.([]byte); ok {
			w.Bytes(code, b)
			return nil
		}
	}
	return errors.Errorf("value %v (%T) does not fit group code %d (%s)", v, v, code, core.KindOf(code))
}

func asInt(v any) (int64, bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true
	case int16:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	case bool:
		return int64(boolInt(i)), true
	case float64:
		if i == float64(int64(i)) {
			return int64(i), true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	case int16:
		return float64(f), true
	case int32:
		return float64(f), true
	case int64:
		return float64(f), true
	}
	return 0, false
}
