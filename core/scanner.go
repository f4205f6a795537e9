package core

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BinarySentinel 二进制 DXF 的文件头
const BinarySentinel = "AutoCAD Binary DXF\r\n\x1a\x00"

// Scanner 逐个读取组码/值对，自动识别文本与二进制格式。
// 二进制格式下的值按文本格式的写法转成字符串，便于统一比较。
type Scanner struct {
	reader  *bufio.Reader
	binary  bool
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		reader: bufio.NewReader(r),
	}
	if head, err := s.reader.Peek(len(BinarySentinel)); err == nil && string(head) == BinarySentinel {
		_, _ = s.reader.Discard(len(BinarySentinel))
		s.binary = true
	}
	return s
}

// Binary 是否为二进制格式
func (s *Scanner) Binary() bool { return s.binary }

func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	if s.binary {
		return s.nextBinary()
	}
	return s.nextText()
}

func (s *Scanner) nextText() bool {
	// 1. 读取 Code 行
	codeLine, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.nextText()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = errors.Wrapf(err, "group code %q", codeStr)
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil {
		// Value 行如果 EOF 也是不完整的
		s.err = errors.Wrapf(err, "value of group code %d", code)
		return false
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

func (s *Scanner) nextBinary() bool {
	var code int16
	if err := binary.Read(s.reader, binary.LittleEndian, &code); err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}

	value, err := s.readBinaryValue(int(code))
	if err != nil {
		s.err = errors.Wrapf(err, "value of group code %d", code)
		return false
	}

	s.LastTag = Tag{Code: int(code), Value: value}
	return true
}

func (s *Scanner) readBinaryValue(code int) (string, error) {
	switch KindOf(code) {
	case KindInt16:
		var v int16
		err := binary.Read(s.reader, binary.LittleEndian, &v)
		return strconv.Itoa(int(v)), err
	case KindInt32:
		var v int32
		err := binary.Read(s.reader, binary.LittleEndian, &v)
		return strconv.Itoa(int(v)), err
	case KindInt64:
		var v int64
		err := binary.Read(s.reader, binary.LittleEndian, &v)
		return strconv.FormatInt(v, 10), err
	case KindDouble:
		var bits uint64
		err := binary.Read(s.reader, binary.LittleEndian, &bits)
		return FormatDouble(math.Float64frombits(bits)), err
	case KindBool:
		b, err := s.reader.ReadByte()
		return FormatBool(b != 0), err
	case KindBinary:
		n, err := s.reader.ReadByte()
		if err != nil {
			return "", err
		}
		buf := make([]byte, n)
		if _, err = io.ReadFull(s.reader, buf); err != nil {
			return "", err
		}
		return strings.ToUpper(hex.EncodeToString(buf)), nil
	default:
		str, err := s.reader.ReadString(0)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
		return string(bytes.TrimSuffix([]byte(str), []byte{0})), nil
	}
}

func (s *Scanner) Err() error {
	return s.err
}

// ReadAll 读取剩余全部标签
func ReadAll(r io.Reader) ([]Tag, error) {
	var (
		tags    []Tag
		scanner = NewScanner(r)
	)
	for scanner.Next() {
		tags = append(tags, scanner.LastTag)
	}
	return tags, scanner.Err()
}
