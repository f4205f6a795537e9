package writer

import (
	"github.com/charmbracelet/log"
	"github.com/zooyer/dxfwriter/core"
)

// Options 写出选项，可从 TOML 的 [writer] 表中读取
type Options struct {
	Binary bool        `toml:"binary"` // 二进制 DXF
	Strict bool        `toml:"strict"` // 存在无法写出的实体时中止
	Logger *log.Logger `toml:"-"`      // 为空时使用 log.Default()
}

// Result 一次写出的结果
type Result struct {
	Version  core.Version
	Seed     core.Handle // 写出的 $HANDSEED
	Entities int         // 写出的实体数，不含 VERTEX/ATTRIB/SEQEND
	Issues   []Issue     // 宽松模式下被跳过的实体
}
