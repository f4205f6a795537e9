package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/zooyer/dxfwriter/core"
)

// BinarySink 二进制格式：组码为小端 int16，值按类型写出原始字节
type BinarySink struct {
	w   *bufio.Writer
	buf []byte
	err error
}

// NewBinarySink 创建后立即写出二进制文件头
func NewBinarySink(w io.Writer) *BinarySink {
	s := &BinarySink{w: bufio.NewWriter(w), buf: make([]byte, 0, 64)}
	_, s.err = s.w.WriteString(core.BinarySentinel)
	return s
}

func (s *BinarySink) code(code int) {
	s.buf = binary.LittleEndian.AppendUint16(s.buf[:0], uint16(int16(code)))
}

func (s *BinarySink) flushRecord() {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(s.buf)
}

func (s *BinarySink) WriteString(code int, v string) {
	s.code(code)
	s.buf = append(s.buf, v...)
	s.buf = append(s.buf, 0)
	s.flushRecord()
}

func (s *BinarySink) WriteHandle(code int, h core.Handle) { s.WriteString(code, h.String()) }

func (s *BinarySink) WriteInt16(code int, v int16) {
	s.code(code)
	s.buf = binary.LittleEndian.AppendUint16(s.buf, uint16(v))
	s.flushRecord()
}

func (s *BinarySink) WriteInt32(code int, v int32) {
	s.code(code)
	s.buf = binary.LittleEndian.AppendUint32(s.buf, uint32(v))
	s.flushRecord()
}

func (s *BinarySink) WriteInt64(code int, v int64) {
	s.code(code)
	s.buf = binary.LittleEndian.AppendUint64(s.buf, uint64(v))
	s.flushRecord()
}

func (s *BinarySink) WriteDouble(code int, v float64) {
	s.code(code)
	s.buf = binary.LittleEndian.AppendUint64(s.buf, math.Float64bits(v))
	s.flushRecord()
}

func (s *BinarySink) WriteBool(code int, v bool) {
	s.code(code)
	if v {
		s.buf = append(s.buf, 1)
	} else {
		s.buf = append(s.buf, 0)
	}
	s.flushRecord()
}

func (s *BinarySink) WriteBytes(code int, b []byte) {
	s.code(code)
	s.buf = append(s.buf, byte(len(b)))
	s.buf = append(s.buf, b...)
	s.flushRecord()
}

// Comment 二进制 DXF 不携带注释
func (s *BinarySink) Comment(string) {}

func (s *BinarySink) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}

func (s *BinarySink) Err() error { return s.err }
