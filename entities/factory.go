package entities

import (
	"strings"

	"github.com/zooyer/dxfwriter/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Type() string
	Layer() string
	Base() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（图层、颜色、线型等）
type BaseEntity struct {
	TypeName      string
	LayerName     string
	Color         core.Color        // 组码 62/420
	LineType      string            // 组码 6，空表示 ByLayer
	LineWeight    core.LineWeight   // 组码 370
	LineTypeScale float64           // 组码 48
	Transparency  core.Transparency // 组码 440
	Invisible     bool              // 组码 60
	XData         core.XDataDictionary
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string {
	if b.LayerName == "" {
		return "0"
	}
	return b.LayerName
}

func (b *BaseEntity) Base() *BaseEntity { return b }

// NewBase 按 AutoCAD 默认值初始化公共属性
func NewBase(typeName string) BaseEntity {
	return BaseEntity{
		TypeName:      typeName,
		LayerName:     "0",
		Color:         core.ByLayer,
		LineWeight:    core.LineWeightByLayer,
		LineTypeScale: 1,
		Transparency:  core.TransparencyByLayer,
	}
}

// EntityFactory 定义了如何按名称创建一个带默认值的实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[strings.ToUpper(typeName)] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[strings.ToUpper(typeName)]; ok {
		return factory()
	}
	return nil
}

// Names 已注册的实体名称
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
