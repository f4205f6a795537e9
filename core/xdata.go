package core

// XDataCode 扩展数据的组码
type XDataCode int

const (
	XDataString            XDataCode = 1000
	XDataAppReg            XDataCode = 1001
	XDataControl           XDataCode = 1002
	XDataLayer             XDataCode = 1003
	XDataBinary            XDataCode = 1004
	XDataHandle            XDataCode = 1005
	XDataPoint             XDataCode = 1010
	XDataWorldPosition     XDataCode = 1011
	XDataWorldDisplacement XDataCode = 1012
	XDataWorldDirection    XDataCode = 1013
	XDataReal              XDataCode = 1040
	XDataDistance          XDataCode = 1041
	XDataScale             XDataCode = 1042
	XDataInt16             XDataCode = 1070
	XDataInt32             XDataCode = 1071
)

// XDataValue 一条扩展数据记录，Value 的类型由 Code 决定：
// string (1000/1002/1003/1005)、[]byte (1004)、Point (1010~1013)、
// float64 (1040~1042)、int16 (1070)、int32 (1071)
type XDataValue struct {
	Code  XDataCode
	Value any
}

func XString(s string) XDataValue   { return XDataValue{XDataString, s} }
func XLayer(name string) XDataValue { return XDataValue{XDataLayer, name} }
func XBinary(b []byte) XDataValue   { return XDataValue{XDataBinary, b} }
func XHandle(h Handle) XDataValue   { return XDataValue{XDataHandle, h.String()} }
func XReal(f float64) XDataValue    { return XDataValue{XDataReal, f} }
func XInt16(i int16) XDataValue     { return XDataValue{XDataInt16, i} }
func XInt32(i int32) XDataValue     { return XDataValue{XDataInt32, i} }

// XPoint code 取 1010~1013
func XPoint(code XDataCode, p Point) XDataValue { return XDataValue{code, p} }

// XOpen / XClose 控制字符串 "{" 和 "}"
func XOpen() XDataValue  { return XDataValue{XDataControl, "{"} }
func XClose() XDataValue { return XDataValue{XDataControl, "}"} }

// XData 某个注册应用名下的扩展数据，记录顺序有意义
type XData struct {
	AppID  string
	Values []XDataValue
}

// XDataDictionary 应用名到扩展数据的映射，按加入顺序遍历
type XDataDictionary struct {
	order []string
	items map[string]*XData
}

// Add 加入或替换同名应用的数据
func (d *XDataDictionary) Add(x *XData) {
	if d.items == nil {
		d.items = make(map[string]*XData)
	}
	if _, ok := d.items[x.AppID]; !ok {
		d.order = append(d.order, x.AppID)
	}
	d.items[x.AppID] = x
}

func (d *XDataDictionary) Get(appID string) (*XData, bool) {
	x, ok := d.items[appID]
	return x, ok
}

// AppIDs 按加入顺序返回应用名
func (d *XDataDictionary) AppIDs() []string { return d.order }

func (d *XDataDictionary) Len() int { return len(d.order) }
