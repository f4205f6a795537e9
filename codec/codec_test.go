package codec

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfwriter/core"
)

func TestChunkString(t *testing.T) {
	for _, n := range []int{0, 1, 249, 250, 251, 500, 501, 1234} {
		s := strings.Repeat("abcdefghij", n/10+1)[:n]
		chunks := ChunkString(s, MaxStringChunk)

		want := 1
		if n > MaxStringChunk {
			want = (n + MaxStringChunk - 1) / MaxStringChunk
		}
		require.Len(t, chunks, want, "length %d", n)
		for i, c := range chunks[:len(chunks)-1] {
			assert.Len(t, c, MaxStringChunk, "length %d chunk %d", n, i)
		}
		last := chunks[len(chunks)-1]
		if n > 0 && n%MaxStringChunk == 0 {
			assert.Len(t, last, MaxStringChunk)
		} else {
			assert.Len(t, last, n%MaxStringChunk)
		}
		assert.Equal(t, s, strings.Join(chunks, ""))
	}
}

func TestChunkStringRunes(t *testing.T) {
	s := strings.Repeat("中", 260)
	chunks := ChunkString(s, MaxStringChunk)
	require.Len(t, chunks, 2)
	assert.Equal(t, 250, len([]rune(chunks[0])))
	assert.Equal(t, 10, len([]rune(chunks[1])))
}

func TestChunkBytes(t *testing.T) {
	for _, n := range []int{0, 5, 127, 128, 254, 255, 1000} {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i)
		}
		chunks := ChunkBytes(b, MaxBinaryChunk)

		want := 1
		if n > MaxBinaryChunk {
			want = (n + MaxBinaryChunk - 1) / MaxBinaryChunk
		}
		require.Len(t, chunks, want, "length %d", n)
		for _, c := range chunks[:len(chunks)-1] {
			assert.Len(t, c, MaxBinaryChunk)
		}
		assert.True(t, bytes.Equal(b, bytes.Join(chunks, nil)), "length %d", n)
	}
}

func TestEncoder(t *testing.T) {
	old := NewEncoder(core.AC1018)
	assert.Equal(t, `\U+4E2D\U+6587abc`, old.Encode("中文abc"))
	assert.Equal(t, `caf\U+00E9`, old.Encode("café"))
	assert.Equal(t, "plain", old.Encode("plain"))
	// 超出基本平面的字符按代理对转义
	assert.Equal(t, `\U+D83D\U+DE00`, old.Encode("😀"))

	// 重复编码命中缓存
	n := old.Cached()
	old.Encode("中文abc")
	assert.Equal(t, n, old.Cached())

	unicode := NewEncoder(core.AC1021)
	assert.Equal(t, "中文abc", unicode.Encode("中文abc"))
	assert.False(t, unicode.Escapes())
	assert.Zero(t, unicode.Cached())
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(NewTextSink(&buf), NewEncoder(core.AC1015))
	w.Comment("hello")
	w.Raw(0, "SECTION")
	w.Handle(5, 0x1F)
	w.Int16(70, -2)
	w.Double(40, 2.5)
	w.Bool(290, true)
	w.Point(10, core.Point{X: 1, Y: 2, Z: 3})
	w.Bytes(310, []byte{0x0A, 0xFF})
	require.NoError(t, w.Flush())

	want := "999\nhello\n0\nSECTION\n5\n1F\n70\n-2\n40\n2.5\n290\n1\n10\n1.0\n20\n2.0\n30\n3.0\n310\n0AFF\n"
	assert.Equal(t, want, buf.String())
}

func TestBinarySinkRoundTrip(t *testing.T) {
	var text, bin bytes.Buffer
	for _, sink := range []Sink{NewTextSink(&text), NewBinarySink(&bin)} {
		w := NewWriter(sink, NewEncoder(core.AC1027))
		w.Comment("only in text")
		w.Raw(0, "LINE")
		w.Handle(5, 0xAB)
		w.Int16(62, 256)
		w.Int32(90, 123456)
		w.Int64(160, 1<<40)
		w.Double(40, -0.125)
		w.Bool(290, false)
		w.String(1, "中文")
		w.Bytes(310, bytes.Repeat([]byte{7}, 130))
		require.NoError(t, w.Flush())
	}

	textTags, err := core.ReadAll(&text)
	require.NoError(t, err)
	binTags, err := core.ReadAll(&bin)
	require.NoError(t, err)

	// 注释只出现在文本格式中
	require.Equal(t, 999, textTags[0].Code)
	if diff := cmp.Diff(textTags[1:], binTags); diff != "" {
		t.Errorf("文本与二进制解码结果不同 (-text +binary):\n%s", diff)
	}
	assert.Equal(t, strings.Repeat("07", 127), binTags[len(binTags)-2].Value)
	assert.Equal(t, "070707", binTags[len(binTags)-1].Value)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestSinkStickyError(t *testing.T) {
	sink := NewTextSink(failWriter{})
	w := NewWriter(sink, NewEncoder(core.AC1015))
	for i := 0; i < 10000; i++ {
		w.Raw(0, "SECTION")
	}
	assert.ErrorIs(t, w.Flush(), assert.AnError)
	assert.ErrorIs(t, w.Err(), assert.AnError)
}

func TestXData(t *testing.T) {
	long := strings.Repeat("x", 600)
	blob := bytes.Repeat([]byte{1}, 300)

	var d core.XDataDictionary
	d.Add(&core.XData{AppID: "ACAD", Values: []core.XDataValue{
		core.XString("DSTYLE"),
		core.XOpen(),
		core.XInt16(40),
		core.XReal(2),
		core.XClose(),
	}})
	d.Add(&core.XData{AppID: "MYAPP", Values: []core.XDataValue{
		core.XString(long),
		core.XBinary(blob),
		core.XPoint(core.XDataWorldPosition, core.Point{X: 1}),
		core.XInt32(7),
	}})

	var buf bytes.Buffer
	w := NewWriter(NewTextSink(&buf), NewEncoder(core.AC1027))
	require.NoError(t, w.XData(&d))
	require.NoError(t, w.Flush())

	tags, err := core.ReadAll(&buf)
	require.NoError(t, err)

	var codes []int
	for _, tag := range tags {
		codes = append(codes, tag.Code)
	}
	want := []int{
		1001, 1000, 1002, 1070, 1040, 1002,
		1001, 1000, 1000, 1000, 1004, 1004, 1004, 1011, 1021, 1031, 1071,
	}
	assert.Equal(t, want, codes)
	assert.Equal(t, long, tags[7].Value+tags[8].Value+tags[9].Value)
	assert.Len(t, tags[9].Value, 100)
	assert.Len(t, tags[12].Value, 2*(300-2*127))
}

var escaped = regexp.MustCompile(`\\U\+([0-9A-F]{4})`)

// unescape 按单条记录还原 \U+XXXX
func unescape(s string) string {
	return escaped.ReplaceAllStringFunc(s, func(m string) string {
		r, _ := strconv.ParseUint(m[3:], 16, 32)
		return string(rune(r))
	})
}

func TestXDataEscapedChunks(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		records int
	}{
		{"exactly 250", strings.Repeat("a", 249) + "轮", 1},
		{"boundary", strings.Repeat("a", 249) + "轮廓", 2},
		{"all wide", strings.Repeat("测", 501), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d core.XDataDictionary
			d.Add(&core.XData{AppID: "APP", Values: []core.XDataValue{core.XString(tt.value)}})

			var buf bytes.Buffer
			w := NewWriter(NewTextSink(&buf), NewEncoder(core.AC1015))
			require.NoError(t, w.XData(&d))
			require.NoError(t, w.Flush())
			tags, err := core.ReadAll(&buf)
			require.NoError(t, err)

			records := tags[1:]
			require.Len(t, records, tt.records)
			var joined string
			for i, tag := range records {
				assert.Equal(t, 1000, tag.Code)
				// 每条记录单独还原后都是完整字符
				part := unescape(tag.Value)
				assert.NotContains(t, part, `\`)
				if i < len(records)-1 {
					assert.Equal(t, MaxStringChunk, len([]rune(part)))
				}
				joined += part
			}
			assert.Equal(t, tt.value, joined)
		})
	}
}

func TestXDataMismatch(t *testing.T) {
	var d core.XDataDictionary
	d.Add(&core.XData{AppID: "APP", Values: []core.XDataValue{{Code: core.XDataReal, Value: "nope"}}})

	w := NewWriter(NewTextSink(&bytes.Buffer{}), NewEncoder(core.AC1027))
	err := w.XData(&d)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrXDataValue)
}
