package codec

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/zooyer/dxfwriter/core"
)

// ErrXDataValue 扩展数据的值类型与组码不符
var ErrXDataValue = errors.New("xdata value does not match its code")

// XData 按应用名的加入顺序写出扩展数据。长字符串按 250 字符拆成多条 1000，
// 长二进制按 127 字节拆成多条 1004，记录自身的顺序保持不变。
func (w *Writer) XData(d *core.XDataDictionary) error {
	if d == nil {
		return nil
	}
	for _, appID := range d.AppIDs() {
		x, _ := d.Get(appID)
		w.String(int(core.XDataAppReg), appID)
		for i, v := range x.Values {
			if err := w.xdataValue(v); err != nil {
				return errors.Wrapf(err, "xdata %s record %d", appID, i)
			}
		}
	}
	return nil
}

func (w *Writer) xdataValue(v core.XDataValue) error {
	code := int(v.Code)
	switch v.Code {
	case core.XDataString, core.XDataLayer:
		s, ok := v.Value.(string)
		if !ok {
			return mismatch(v)
		}
		w.LongText(code, code, s)
	case core.XDataControl:
		s, ok := v.Value.(string)
		if !ok || (s != "{" && s != "}") {
			return mismatch(v)
		}
		w.Raw(code, s)
	case core.XDataHandle:
		switch h := v.Value.(type) {
		case string:
			w.Raw(code, h)
		case core.Handle:
			w.Handle(code, h)
		default:
			return mismatch(v)
		}
	case core.XDataBinary:
		b, ok := v.Value.([]byte)
		if !ok {
			return mismatch(v)
		}
		w.Bytes(code, b)
	case core.XDataPoint, core.XDataWorldPosition, core.XDataWorldDisplacement, core.XDataWorldDirection:
		p, ok := v.Value.(core.Point)
		if !ok {
			return mismatch(v)
		}
		w.Point(code, p)
	case core.XDataReal, core.XDataDistance, core.XDataScale:
		f, ok := v.Value.(float64)
		if !ok {
			return mismatch(v)
		}
		w.Double(code, f)
	case core.XDataInt16:
		switch i := v.Value.(type) {
		case int16:
			w.Int16(code, i)
		case int:
			w.Int16(code, int16(i))
		default:
			return mismatch(v)
		}
	case core.XDataInt32:
		switch i := v.Value.(type) {
		case int32:
			w.Int32(code, i)
		case int:
			w.Int32(code, int32(i))
		default:
			return mismatch(v)
		}
	default:
		return errors.Errorf("unknown xdata code %d", code)
	}
	return nil
}

func mismatch(v core.XDataValue) error {
	return errors.Wrap(ErrXDataValue, fmt.Sprintf("code %d value %T", v.Code, v.Value))
}
