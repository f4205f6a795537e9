package codec

import (
	"github.com/zooyer/dxfwriter/core"
)

// Writer 在 Sink 之上加入字符串编码和常用的复合值写法
type Writer struct {
	sink Sink
	enc  *Encoder
}

func NewWriter(sink Sink, enc *Encoder) *Writer {
	return &Writer{sink: sink, enc: enc}
}

func (w *Writer) Sink() Sink { return w.sink }

func (w *Writer) Encoder() *Encoder { return w.enc }

// String 写出字符串，按版本转义
func (w *Writer) String(code int, s string) { w.sink.WriteString(code, w.enc.Encode(s)) }

// Raw 写出不需要转义的字符串（结构标记、类名等）
func (w *Writer) Raw(code int, s string) { w.sink.WriteString(code, s) }

func (w *Writer) Handle(code int, h core.Handle) { w.sink.WriteHandle(code, h) }

// OptHandle 句柄为 0 时不写
func (w *Writer) OptHandle(code int, h core.Handle) {
	if !h.IsZero() {
		w.sink.WriteHandle(code, h)
	}
}

func (w *Writer) Int16(code int, v int16) { w.sink.WriteInt16(code, v) }

func (w *Writer) Int32(code int, v int32) { w.sink.WriteInt32(code, v) }

func (w *Writer) Int64(code int, v int64) { w.sink.WriteInt64(code, v) }

func (w *Writer) Double(code int, v float64) { w.sink.WriteDouble(code, v) }

func (w *Writer) Bool(code int, v bool) { w.sink.WriteBool(code, v) }

// Bytes 写出任意长度的二进制数据，按 MaxBinaryChunk 拆成多条同组码记录
func (w *Writer) Bytes(code int, b []byte) {
	for _, chunk := range ChunkBytes(b, MaxBinaryChunk) {
		w.sink.WriteBytes(code, chunk)
	}
}

// Point 写出三维点，组码依次为 code、code+10、code+20
func (w *Writer) Point(code int, p core.Point) {
	w.sink.WriteDouble(code, p.X)
	w.sink.WriteDouble(code+10, p.Y)
	w.sink.WriteDouble(code+20, p.Z)
}

// Point2 写出二维点
func (w *Writer) Point2(code int, v core.Vec2) {
	w.sink.WriteDouble(code, v.X)
	w.sink.WriteDouble(code+10, v.Y)
}

// LongText 按原串的字符数 MaxStringChunk 拆分后逐块转义，转义序列不会跨块：
// 前面的块用 chunkCode，最后一块用 finalCode
func (w *Writer) LongText(chunkCode, finalCode int, s string) {
	chunks := ChunkString(s, MaxStringChunk)
	for _, c := range chunks[:len(chunks)-1] {
		w.sink.WriteString(chunkCode, w.enc.Encode(c))
	}
	w.sink.WriteString(finalCode, w.enc.Encode(chunks[len(chunks)-1]))
}

// Comment 写出注释（仅文本格式生效）
func (w *Writer) Comment(s string) { w.sink.Comment(w.enc.Encode(s)) }

func (w *Writer) Flush() error { return w.sink.Flush() }

func (w *Writer) Err() error { return w.sink.Err() }
