package codec

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"github.com/zooyer/dxfwriter/core"
)

// TextSink 文本格式：组码一行，值一行
type TextSink struct {
	w   *bufio.Writer
	err error
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

func (s *TextSink) line(code int, value string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(strconv.Itoa(code)); err != nil {
		s.err = err
		return
	}
	if err := s.w.WriteByte('\n'); err != nil {
		s.err = err
		return
	}
	if _, err := s.w.WriteString(value); err != nil {
		s.err = err
		return
	}
	if err := s.w.WriteByte('\n'); err != nil {
		s.err = err
	}
}

func (s *TextSink) WriteString(code int, v string) { s.line(code, v) }

func (s *TextSink) WriteHandle(code int, h core.Handle) { s.line(code, h.String()) }

func (s *TextSink) WriteInt16(code int, v int16) { s.line(code, strconv.Itoa(int(v))) }

func (s *TextSink) WriteInt32(code int, v int32) { s.line(code, strconv.Itoa(int(v))) }

func (s *TextSink) WriteInt64(code int, v int64) { s.line(code, strconv.FormatInt(v, 10)) }

func (s *TextSink) WriteDouble(code int, v float64) { s.line(code, core.FormatDouble(v)) }

func (s *TextSink) WriteBool(code int, v bool) { s.line(code, core.FormatBool(v)) }

func (s *TextSink) WriteBytes(code int, b []byte) {
	s.line(code, strings.ToUpper(hex.EncodeToString(b)))
}

func (s *TextSink) Comment(v string) { s.line(999, v) }

func (s *TextSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}

func (s *TextSink) Err() error { return s.err }
