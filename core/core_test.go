package core

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		code int
		want Kind
	}{
		{0, KindString},
		{5, KindHandle},
		{10, KindDouble},
		{62, KindInt16},
		{90, KindInt32},
		{100, KindString},
		{160, KindInt64},
		{210, KindDouble},
		{280, KindInt16},
		{290, KindBool},
		{310, KindBinary},
		{330, KindHandle},
		{370, KindInt16},
		{420, KindInt32},
		{440, KindInt32},
		{999, KindString},
		{1000, KindString},
		{1004, KindBinary},
		{1005, KindHandle},
		{1010, KindDouble},
		{1070, KindInt16},
		{1071, KindInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.code), "code %d", tt.code)
	}
}

func TestFormatDouble(t *testing.T) {
	assert.Equal(t, "0.0", FormatDouble(0))
	assert.Equal(t, "0.0", FormatDouble(math.Copysign(0, -1)))
	assert.Equal(t, "1.0", FormatDouble(1))
	assert.Equal(t, "-2.5", FormatDouble(-2.5))
	assert.Equal(t, "0.1", FormatDouble(0.1))
	assert.Equal(t, "1000000.0", FormatDouble(1e6))
}

func TestHandleAllocator(t *testing.T) {
	a := NewHandleAllocator(0)
	assert.Equal(t, Handle(1), a.Next())
	assert.Equal(t, Handle(2), a.Next())
	assert.Equal(t, Handle(3), a.Seed())

	h := Handle(0xABC)
	assert.Equal(t, "ABC", h.String())
	p, err := ParseHandle("abc")
	require.NoError(t, err)
	assert.Equal(t, h, p)
}

func TestParseVersion(t *testing.T) {
	for _, s := range []string{"AC1027", "1027", "2013", "r2013"} {
		v, err := ParseVersion(s)
		require.NoError(t, err, s)
		assert.Equal(t, AC1027, v)
	}
	_, err := ParseVersion("AC9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dxf version")
	// 错误带调用栈
	assert.Contains(t, fmt.Sprintf("%+v", err), "core.ParseVersion")

	assert.False(t, AC1014.Supported())
	assert.True(t, AC1015.Supported())
	assert.Equal(t, "AC1032", AC1032.String())
}

func TestArbitraryAxis(t *testing.T) {
	ax, ay, az := ArbitraryAxis(ZAxis)
	assert.True(t, ax.Equal(XAxis, 1e-12))
	assert.True(t, ay.Equal(YAxis, 1e-12))
	assert.True(t, az.Equal(ZAxis, 1e-12))

	// 法向量为 -Z 时，OCS 的 X 轴翻转
	ax, _, _ = ArbitraryAxis(Point{Z: -1})
	assert.True(t, ax.Equal(Point{X: -1}, 1e-12), "%+v", ax)

	n := Point{X: 1, Y: 1, Z: 1}
	p := Point{X: 3, Y: -2, Z: 7}
	back := ObjectToWorld(WorldToObject(p, n), n)
	assert.True(t, back.Equal(p, 1e-9), "往返转换应当还原: %+v", back)
}

func TestTransparencyAlpha(t *testing.T) {
	assert.Equal(t, int32(0x01000000), TransparencyByBlock.Alpha())
	assert.Equal(t, int32(0x020000FF), Transparency{}.Alpha())
	assert.Equal(t, int32(0x0200007F), Transparency{Value: 50}.Alpha())
}

func TestXDataDictionaryOrder(t *testing.T) {
	var d XDataDictionary
	d.Add(&XData{AppID: "B"})
	d.Add(&XData{AppID: "A"})
	d.Add(&XData{AppID: "B", Values: []XDataValue{XInt16(1)}})
	assert.Equal(t, []string{"B", "A"}, d.AppIDs())
	x, ok := d.Get("B")
	require.True(t, ok)
	assert.Len(t, x.Values, 1)
}
