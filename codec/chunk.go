package codec

import "unicode/utf8"

const (
	// MaxStringChunk 单条字符串记录的最大字符数
	MaxStringChunk = 250
	// MaxBinaryChunk 单条二进制记录的最大字节数
	MaxBinaryChunk = 127
)

// ChunkString 按字符数 size 切分字符串，最后一块长度在 1~size 之间；
// 空串返回一个空块。
func ChunkString(s string, size int) []string {
	if size <= 0 {
		size = MaxStringChunk
	}
	if utf8.RuneCountInString(s) <= size {
		return []string{s}
	}

	var (
		chunks []string
		start  int
		count  int
	)
	for i := range s {
		if count == size {
			chunks = append(chunks, s[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, s[start:])
}

// ChunkBytes 按 size 字节切分，最后一块长度在 1~size 之间；
// 空输入返回一个空块。
func ChunkBytes(b []byte, size int) [][]byte {
	if size <= 0 {
		size = MaxBinaryChunk
	}
	if len(b) <= size {
		return [][]byte{b}
	}

	chunks := make([][]byte, 0, (len(b)+size-1)/size)
	for len(b) > size {
		chunks = append(chunks, b[:size])
		b = b[size:]
	}
	return append(chunks, b)
}
