package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// AsHandle 将值解析为句柄，非法时返回 0
func (t Tag) AsHandle() Handle {
	h, _ := ParseHandle(t.AsString())
	return h
}

// Is 判断是否为指定组码和值（值忽略大小写）
func (t Tag) Is(code int, value string) bool {
	return t.Code == code && strings.EqualFold(t.AsString(), value)
}
