// Package codec 负责 DXF 组码/值对的底层写出：文本与二进制两种 Sink、
// 低版本的非 ASCII 转义、长字符串和二进制块的拆分，以及扩展数据的编码。
package codec

import (
	"github.com/zooyer/dxfwriter/core"
)

// Sink 逐个写出组码/值对，不做任何 DXF 语义检查。
// 写入错误是粘滞的：第一次出错后后续写入全部忽略，由 Err/Flush 返回。
type Sink interface {
	WriteString(code int, s string)
	WriteHandle(code int, h core.Handle)
	WriteInt16(code int, v int16)
	WriteInt32(code int, v int32)
	WriteInt64(code int, v int64)
	WriteDouble(code int, v float64)
	WriteBool(code int, v bool)
	// WriteBytes 写出一个二进制块，调用方保证长度不超过 MaxBinaryChunk
	WriteBytes(code int, b []byte)
	// Comment 写出 999 注释，二进制格式下忽略
	Comment(s string)
	Flush() error
	Err() error
}
