package writer

import (
	"github.com/zooyer/dxfwriter/codec"
	"github.com/zooyer/dxfwriter/preprocess"
)

type section int

const (
	sectionNone section = iota
	sectionHeader
	sectionClasses
	sectionTables
	sectionBlocks
	sectionEntities
	sectionObjects
	sectionEOF
)

var sectionNames = [...]string{"", "HEADER", "CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS", "EOF"}

func (s section) String() string { return sectionNames[s] }

// machine 段与表的状态机。段只能按固定顺序出现（可以省略），
// 表只能在 TABLES 段内按 preprocess.TableOrder 的顺序出现
type machine struct {
	w       *codec.Writer
	open    section // 当前打开的段
	last    section // 最近关闭的段
	table   string  // 当前打开的表
	tableAt int     // 最近打开的表在 TableOrder 中的位置
}

func newMachine(w *codec.Writer) *machine {
	return &machine{w: w, tableAt: -1}
}

func (m *machine) state() string {
	switch {
	case m.last == sectionEOF:
		return "after EOF"
	case m.table != "":
		return "in table " + m.table
	case m.open != sectionNone:
		return "in section " + m.open.String()
	case m.last != sectionNone:
		return "after section " + m.last.String()
	}
	return "idle"
}

func (m *machine) fail(op string) {
	panic(&StructureError{Op: op, State: m.state()})
}

func (m *machine) beginSection(s section) {
	if m.open != sectionNone || s <= m.last || s == sectionEOF {
		m.fail("begin section " + s.String())
	}
	m.open = s
	m.w.Raw(0, "SECTION")
	m.w.Raw(2, s.String())
}

func (m *machine) endSection() {
	if m.open == sectionNone || m.table != "" {
		m.fail("end section")
	}
	m.last, m.open = m.open, sectionNone
	m.w.Raw(0, "ENDSEC")
}

// in 断言当前处于段 s 中且没有打开的表
func (m *machine) in(s section, op string) {
	if m.open != s || m.table != "" {
		m.fail(op)
	}
}

// inTable 断言当前处于表 name 中
func (m *machine) inTable(name, op string) {
	if m.table != name {
		m.fail(op)
	}
}

func (m *machine) beginTable(name string) {
	at := tableIndex(name)
	if m.open != sectionTables || m.table != "" || at < 0 || at <= m.tableAt {
		m.fail("begin table " + name)
	}
	m.table, m.tableAt = name, at
	m.w.Raw(0, "TABLE")
	m.w.Raw(2, name)
}

func (m *machine) endTable() {
	if m.table == "" {
		m.fail("end table")
	}
	m.table = ""
	m.w.Raw(0, "ENDTAB")
}

func (m *machine) eof() {
	if m.open != sectionNone || m.last == sectionEOF {
		m.fail("end of file")
	}
	m.last = sectionEOF
	m.w.Raw(0, "EOF")
}

func tableIndex(name string) int {
	for i, t := range preprocess.TableOrder {
		if t == name {
			return i
		}
	}
	return -1
}
