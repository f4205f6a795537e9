package core

import (
	"math"
	"strconv"
	"strings"
)

// Kind 组码的值类型，由组码所在区间决定
type Kind int

const (
	KindString Kind = iota
	KindHandle
	KindInt16
	KindInt32
	KindInt64
	KindDouble
	KindBool
	KindBinary
)

var kindNames = [...]string{"string", "handle", "int16", "int32", "int64", "double", "bool", "binary"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// KindOf 返回组码对应的值类型
func KindOf(code int) Kind {
	switch {
	case code >= 0 && code <= 4, code >= 6 && code <= 9:
		return KindString
	case code == 5:
		return KindHandle
	case code >= 10 && code <= 59:
		return KindDouble
	case code >= 60 && code <= 79:
		return KindInt16
	case code >= 90 && code <= 99:
		return KindInt32
	case code == 100, code == 101, code == 102:
		return KindString
	case code == 105:
		return KindHandle
	case code >= 110 && code <= 149:
		return KindDouble
	case code >= 160 && code <= 169:
		return KindInt64
	case code >= 170 && code <= 179:
		return KindInt16
	case code >= 210 && code <= 239:
		return KindDouble
	case code >= 270 && code <= 289:
		return KindInt16
	case code >= 290 && code <= 299:
		return KindBool
	case code >= 300 && code <= 309:
		return KindString
	case code >= 310 && code <= 319:
		return KindBinary
	case code >= 320 && code <= 369:
		return KindHandle
	case code >= 370 && code <= 389:
		return KindInt16
	case code >= 390 && code <= 399:
		return KindHandle
	case code >= 400 && code <= 409:
		return KindInt16
	case code >= 410 && code <= 419:
		return KindString
	case code >= 420 && code <= 429:
		return KindInt32
	case code >= 430 && code <= 439:
		return KindString
	case code >= 440 && code <= 459:
		return KindInt32
	case code >= 460 && code <= 469:
		return KindDouble
	case code >= 470 && code <= 479:
		return KindString
	case code >= 480 && code <= 481:
		return KindHandle
	case code == 999:
		return KindString
	case code == 1004:
		return KindBinary
	case code == 1005:
		return KindHandle
	case code >= 1000 && code <= 1009:
		return KindString
	case code >= 1010 && code <= 1059:
		return KindDouble
	case code >= 1060 && code <= 1070:
		return KindInt16
	case code == 1071:
		return KindInt32
	}
	return KindString
}

// FormatDouble 文本格式下实数的写法：最短往返表示，至少保留一位小数
func FormatDouble(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v == 0 {
		// 同时处理 -0
		return "0.0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatBool 文本格式下布尔值写作 1/0
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
