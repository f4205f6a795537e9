package writer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/preprocess"
)

var (
	// ErrUnsupportedVersion 目标版本低于可写出的最低版本，写出前即返回
	ErrUnsupportedVersion = errors.New("unsupported dxf version")

	// ErrMissingReference 引用的块、样式、图像或底图定义不存在
	ErrMissingReference = preprocess.ErrMissingReference

	// ErrSharedEntity 同一个实体被加入了多个空间或多次加入同一空间
	ErrSharedEntity = preprocess.ErrSharedEntity
)

// StructureError 段或表的非法切换，属于调用方的编程错误，以 panic 抛出
type StructureError struct {
	Op    string
	State string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("dxf structure: %s while %s", e.Op, e.State)
}

// Issue 一个无法写出的实体
type Issue struct {
	Type   string
	Handle core.Handle
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Type, i.Handle, i.Reason)
}

// ValidationError 严格模式下存在无法写出的实体
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	list := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		list = append(list, i.String())
	}
	return fmt.Sprintf("dxf validation: %d invalid entities: %s", len(e.Issues), strings.Join(list, "; "))
}
