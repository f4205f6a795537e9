package core

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
	if scanner.Binary() {
		t.Error("文本格式被误判为二进制")
	}
}

func TestScanner_Binary(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(BinarySentinel)

	put := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	put(int16(0))
	buf.WriteString("LINE\x00")
	put(int16(10))
	put(math.Float64bits(1.5))
	put(int16(70))
	put(int16(-3))
	put(int16(90))
	put(int32(70000))
	put(int16(290))
	buf.WriteByte(1)
	put(int16(310))
	buf.Write([]byte{2, 0xAB, 0x01})

	scanner := NewScanner(&buf)
	if !scanner.Binary() {
		t.Fatal("二进制格式未被识别")
	}

	expected := []Tag{
		{0, "LINE"},
		{10, "1.5"},
		{70, "-3"},
		{90, "70000"},
		{290, "1"},
		{310, "AB01"},
	}
	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag != exp {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
	if scanner.Next() {
		t.Errorf("多读出了标签 %+v", scanner.LastTag)
	}
	if err := scanner.Err(); err != nil {
		t.Errorf("意外的错误: %v", err)
	}
}

func TestScanner_TruncatedValue(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\n"))
	if scanner.Next() {
		t.Fatal("不完整的标签不应读取成功")
	}
	if scanner.Err() == nil {
		t.Error("应当返回错误")
	}
}
