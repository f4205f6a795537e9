package dxf

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zooyer/dxfwriter/core"
)

// HeaderVariable 自定义的头变量，Value 的类型须与 Code 的值类型一致
type HeaderVariable struct {
	Name  string // 带 $ 前缀
	Code  int
	Value any // string、int16、int32、float64、bool、core.Point
}

// Header HEADER 段中的绘图变量
type Header struct {
	Version            core.Version // $ACADVER
	MaintenanceVersion int16        // $ACADMAINTVER
	CodePage           string       // $DWGCODEPAGE
	InsBase            core.Point
	LTScale            float64
	TextSize           float64
	TextStyle          string
	CurrentLayer       string // $CLAYER
	CurrentLineType    string // $CELTYPE
	CurrentColor       core.Color
	DimStyle           string
	InsUnits           int16 // 0 无单位，4 毫米，6 米
	PDMode             int16
	PDSize             float64
	SplineSegs         int16 // 样条拟合的每段细分数
	SurfU              int16 // 网格平滑 M 向密度
	SurfV              int16
	LUnits             int16
	LUPrec             int16
	AUnits             int16
	AUPrec             int16
	AngBase            float64
	AngDir             int16
	MirrText           bool
	LWDisplay          bool
	Created            time.Time
	Updated            time.Time
	FingerprintGUID    string
	VersionGUID        string
	Custom             []HeaderVariable
}

// NewHeader 按 AutoCAD 公制模板的默认值
func NewHeader(version core.Version) *Header {
	now := time.Now()
	return &Header{
		Version:            version,
		MaintenanceVersion: 20,
		CodePage:           "ANSI_1252",
		LTScale:            1,
		TextSize:           2.5,
		TextStyle:          "Standard",
		CurrentLayer:       "0",
		CurrentLineType:    "ByLayer",
		CurrentColor:       core.ByLayer,
		DimStyle:           "Standard",
		InsUnits:           4,
		SplineSegs:         8,
		SurfU:              6,
		SurfV:              6,
		LUnits:             2,
		LUPrec:             4,
		AUnits:             0,
		AUPrec:             0,
		Created:            now,
		Updated:            now,
		FingerprintGUID:    braced(uuid.New()),
		VersionGUID:        braced(uuid.New()),
	}
}

func braced(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}

// Set 设置自定义变量，同名时覆盖原值并保持原位置
func (h *Header) Set(name string, code int, value any) {
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}
	name = strings.ToUpper(name)
	for i := range h.Custom {
		if h.Custom[i].Name == name {
			h.Custom[i].Code, h.Custom[i].Value = code, value
			return
		}
	}
	h.Custom = append(h.Custom, HeaderVariable{Name: name, Code: code, Value: value})
}

// Get 查找自定义变量
func (h *Header) Get(name string) (HeaderVariable, bool) {
	for _, v := range h.Custom {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return HeaderVariable{}, false
}

// JulianDate 转换为头变量使用的儒略日
func JulianDate(t time.Time) float64 {
	return float64(t.UnixNano())/float64(24*time.Hour) + 2440587.5
}
