package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

func near(t *testing.T, want, got core.Point) {
	t.Helper()
	assert.True(t, want.Equal(got, 1e-9), "期望 %v，实际 %v", want, got)
}

func TestTransformPoint(t *testing.T) {
	ins := entities.NewInsert("B", core.Point{X: 10, Y: 20})
	ins.Rotation = 90
	ins.Scale = core.Point{X: 2, Y: 2, Z: 1}

	near(t, core.Point{X: 10, Y: 22}, TransformPoint(core.Point{X: 1}, ins))
	near(t, core.Point{X: 8, Y: 20}, TransformPoint(core.Point{Y: 1}, ins))
}

func TestExtents(t *testing.T) {
	doc := dxf.New(core.AC1027)
	assert.True(t, Extents(doc).Empty())

	doc.AddBlock(&dxf.Block{
		Name:      "SQ",
		BasePoint: core.Point{X: 1, Y: 1},
		Entities: []entities.Entity{
			entities.NewLine(core.Point{X: 1, Y: 1}, core.Point{X: 3, Y: 3}),
		},
	})
	doc.AddBlock(&dxf.Block{
		Name:     "NEST",
		Entities: []entities.Entity{entities.NewInsert("SQ", core.Point{X: 5})},
	})
	doc.AddEntity(
		entities.NewCircle(core.Point{}, 1),
		entities.NewInsert("SQ", core.Point{X: 100, Y: 100}),
		entities.NewInsert("NEST", core.Point{Y: -50}),
	)

	box := Extents(doc)
	near(t, core.Point{X: -1, Y: -50}, box.Min)
	near(t, core.Point{X: 102, Y: 102}, box.Max)
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		dim  *entities.Dimension
		want float64
	}{
		{"linear", entities.NewLinearDimension(core.Point{}, core.Point{X: 3, Y: 4}, core.Point{Y: 10}, 0), 3},
		{"aligned", entities.NewAlignedDimension(core.Point{}, core.Point{X: 3, Y: 4}, core.Point{Y: 10}), 5},
		{"radius", entities.NewRadialDimension(core.Point{}, core.Point{X: 2}), 2},
		{"angular", entities.NewAngular3PointDimension(core.Point{}, core.Point{X: 1}, core.Point{Y: 1}, core.Point{X: 1, Y: 1}), math.Pi / 2},
		{"ordinate", entities.NewOrdinateDimension(core.Point{X: 1}, core.Point{X: 4, Y: 2}, core.Point{X: 4, Y: 8}, true), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Measure(tt.dim), 1e-9)
		})
	}

	fixed := entities.NewAlignedDimension(core.Point{}, core.Point{X: 1}, core.Point{})
	fixed.ActualMeasurement = 42
	assert.Equal(t, 42.0, Measure(fixed))
}

func TestFillAttributes(t *testing.T) {
	title := entities.NewAttributeDefinition("TITLE", "标题", core.Point{X: 1}, 2.5)
	title.Text = "默认"
	fixed := entities.NewAttributeDefinition("CONST", "", core.Point{}, 2.5)
	fixed.Flags = entities.AttributeConstant
	no := entities.NewAttributeDefinition("NO", "编号", core.Point{Y: 1}, 2.5)
	block := dxf.NewBlock("TB", title, fixed, no)

	ins := entities.NewInsert("TB", core.Point{X: 10, Y: 10})
	FillAttributes(block, ins, map[string]string{"NO": "A-01"})

	require.Len(t, ins.Attributes, 2)
	assert.Equal(t, map[string]string{"TITLE": "默认", "NO": "A-01"}, GetAttrs(ins))
	assert.Equal(t, "A-01", ins.Attr("NO"))
	near(t, core.Point{X: 11, Y: 10}, ins.Attributes[0].Location)
}
