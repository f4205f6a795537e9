package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/writer"
)

const sample = `
version = "2004"
comments = ["测试图形"]

[[header]]
name = "$USERI1"
code = 70
value = 7

[writer]
strict = true

[[layer]]
Name = "轮廓"
Color = { Index = 1 }
Frozen = true

[[block]]
name = "TAG"

  [[block.entity]]
  type = "CIRCLE"
  Radius = 5.0

  [[block.entity]]
  type = "ATTDEF"
  Tag = "NO"
  Text = "?"
  Height = 2.5

[[entity]]
type = "LINE"
LayerName = "轮廓"
Start = { X = 0.0, Y = 0.0 }
End = { X = 100.0, Y = 50.0 }

[[entity]]
type = "INSERT"
BlockName = "TAG"
InsertionPoint = { X = 10.0, Y = 20.0 }
values = { NO = "A-1" }

[[entity]]
type = "TEXT"
space = "Layout1"
Value = "图纸"
Height = 5.0

[[entity]]
type = "circle"
space = "Layout2"
Radius = 3.0
`

func load(t *testing.T, s string) (*drawing, toml.MetaData) {
	t.Helper()
	var d drawing
	md, err := toml.Decode(s, &d)
	require.NoError(t, err)
	return &d, md
}

func TestDrawingDocument(t *testing.T) {
	d, md := load(t, sample)
	doc, err := d.document(md)
	require.NoError(t, err)
	assert.Empty(t, md.Undecoded())

	assert.Equal(t, core.AC1018, doc.Header.Version)
	assert.Equal(t, []string{"测试图形"}, doc.Comments)
	assert.True(t, d.Writer.Strict)
	assert.False(t, d.Writer.Binary)

	layer := doc.Layer("轮廓")
	require.NotNil(t, layer)
	assert.Equal(t, int16(1), layer.Color.Index)
	assert.True(t, layer.Frozen)
	assert.True(t, layer.Plot)

	blk := doc.Block("TAG")
	require.NotNil(t, blk)
	require.Len(t, blk.Entities, 2)
	assert.True(t, blk.HasAttributes())

	require.Len(t, doc.Entities, 2)
	line, ok := doc.Entities[0].(*entities.Line)
	require.True(t, ok)
	assert.Equal(t, "轮廓", line.LayerName)
	assert.Equal(t, core.Point{X: 100, Y: 50}, line.End)
	assert.Equal(t, core.ZAxis, line.Normal)

	ins, ok := doc.Entities[1].(*entities.Insert)
	require.True(t, ok)
	require.Len(t, ins.Attributes, 1)
	assert.Equal(t, "A-1", ins.Attributes[0].Text)
	assert.Equal(t, core.Point{X: 10, Y: 20}, ins.Attributes[0].Location)

	require.Len(t, doc.Layout("Layout1").Entities, 1)
	require.NotNil(t, doc.Layout("Layout2"))
	assert.Len(t, doc.Layout("Layout2").Entities, 1)
}

func TestDrawingErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"unknown type", "[[entity]]\ntype = \"BLOB\"\n", "unknown entity type"},
		{"bad version", "version = \"R12X\"\n", "invalid dxf version"},
		{"unnamed layer", "[[layer]]\nColor = { Index = 3 }\n", "no name"},
		{"unknown attribute", "[[block]]\nname = \"B\"\n[[entity]]\ntype = \"INSERT\"\nBlockName = \"B\"\nvalues = { NO = \"1\" }\n", "no attribute \"NO\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, md := load(t, tt.toml)
			_, err := d.document(md)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDrawingWrite(t *testing.T) {
	d, md := load(t, sample)
	doc, err := d.document(md)
	require.NoError(t, err)

	opts := d.Writer
	opts.Logger = log.New(io.Discard)
	var buf bytes.Buffer
	res, err := writer.Write(&buf, doc, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Entities)
	// 2004 版本中注释里的中文被转义
	assert.True(t, strings.HasPrefix(buf.String(), "999\n\\U+6D4B"), buf.String()[:20])
}

func TestVersionsCmd(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"versions"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(core.Versions()))
	assert.Equal(t, "AC1015\t2000", lines[0])
	assert.Equal(t, "AC1032\t2018", lines[len(lines)-1])
}
