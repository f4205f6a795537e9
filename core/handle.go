package core

import (
	"strconv"
	"strings"
)

// Handle 文档内唯一的对象标识，写出为大写十六进制
type Handle uint64

func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// IsZero 0 不是合法句柄，用于表示“无引用”
func (h Handle) IsZero() bool { return h == 0 }

// ParseHandle 解析十六进制句柄
func ParseHandle(s string) (Handle, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, err
	}
	return Handle(n), nil
}

// HandleAllocator 单次写出内单调递增的句柄计数器
type HandleAllocator struct {
	next Handle
}

// NewHandleAllocator 从 start 开始分配，start 为 0 时从 1 开始
func NewHandleAllocator(start Handle) *HandleAllocator {
	if start == 0 {
		start = 1
	}
	return &HandleAllocator{next: start}
}

// Next 分配一个新句柄
func (a *HandleAllocator) Next() Handle {
	h := a.next
	a.next++
	return h
}

// Seed 下一个将被分配的值，即 $HANDSEED
func (a *HandleAllocator) Seed() Handle { return a.next }
