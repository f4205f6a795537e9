package codec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/zooyer/dxfwriter/core"
)

// Encoder 字符串编码器。低于 core.UnicodeVersion 的版本中，
// 每个非 7 位 ASCII 字符被改写为 6 个字符的 \U+XXXX 形式。
type Encoder struct {
	escape bool
	memo   map[string]string
}

func NewEncoder(version core.Version) *Encoder {
	return &Encoder{
		escape: version < core.UnicodeVersion,
		memo:   make(map[string]string),
	}
}

// Escapes 当前版本是否需要转义
func (e *Encoder) Escapes() bool { return e.escape }

// Encode 返回写出用的字符串。每次调用都先查缓存；只有需要转义的版本
// 才把结果存入缓存，Unicode 版本原样返回。
func (e *Encoder) Encode(s string) string {
	if v, ok := e.memo[s]; ok {
		return v
	}
	if !e.escape {
		return s
	}
	v := escapeNonASCII(s)
	e.memo[s] = v
	return v
}

// Cached 已缓存的字符串个数，Unicode 版本始终为 0
func (e *Encoder) Cached() int { return len(e.memo) }

func escapeNonASCII(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r <= 0x7F {
			b.WriteRune(r)
			continue
		}
		// 超出基本平面的字符按 UTF-16 代理对分别转义，保持每个转义 6 个字符
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			fmt.Fprintf(&b, "\\U+%04X\\U+%04X", r1, r2)
			continue
		}
		fmt.Fprintf(&b, "\\U+%04X", r)
	}
	return b.String()
}
