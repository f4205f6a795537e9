package preprocess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

func sampleDocument() *dxf.Document {
	doc := dxf.New(core.AC1027)

	smooth := entities.NewPolyline2D(entities.SmoothCubic,
		core.Vec2{X: 0, Y: 0}, core.Vec2{X: 10, Y: 5}, core.Vec2{X: 20, Y: 0}, core.Vec2{X: 30, Y: 5})
	poly3d := entities.NewPolyline3D(core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, core.Point{X: 2})
	face := entities.NewPolyfaceMesh(
		[]core.Point{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[][]int16{{1, 2, 3}, {1, 3, -4}},
	)
	mesh := entities.NewPolygonMesh(3, 3, []core.Point{
		{}, {X: 1}, {X: 2},
		{Y: 1}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 1},
		{Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	})
	mesh.Smooth = entities.SmoothCubic

	def := entities.NewAttributeDefinition("NO", "编号", core.Point{}, 2.5)
	doc.AddBlock(dxf.NewBlock("TAG", entities.NewCircle(core.Point{}, 5), def))
	ins := entities.NewInsert("TAG", core.Point{X: 50, Y: 50})
	ins.Attributes = append(ins.Attributes, def.Instance("A-1", ins.InsertionPoint))

	doc.AddImageDef(dxf.NewImageDef("logo", "logo.png", 640, 480))
	img1 := entities.NewImage("logo", core.Point{}, core.Vec2{X: 640, Y: 480}, 64, 48)
	img2 := entities.NewImage("LOGO", core.Point{X: 100}, core.Vec2{X: 640, Y: 480}, 64, 48)

	line := entities.NewLine(core.Point{}, core.Point{X: 100})
	line.LayerName = "轮廓"

	doc.AddEntity(smooth, poly3d, face, mesh, ins, img1, img2, line)
	doc.AddGroup("G1", "", line, ins)
	return doc
}

func run(t *testing.T, doc *dxf.Document) *Result {
	t.Helper()
	res, err := Run(doc, core.NewHandleAllocator(1))
	require.NoError(t, err)
	return res
}

func allHandles(res *Result) []core.Handle {
	var list []core.Handle
	for _, h := range res.Tables {
		list = append(list, h)
	}
	for k, h := range res.Handles {
		switch k.(type) {
		case *dxf.Block, *dxf.Layout:
			// 与 Space 中的记录句柄、布局句柄相同
			continue
		}
		list = append(list, h)
	}
	for _, s := range res.Spaces {
		list = append(list, s.Record, s.Begin, s.End)
		if s.LayoutHandle != 0 {
			list = append(list, s.LayoutHandle)
		}
	}
	for _, pl := range res.Polylines {
		for _, v := range pl.Vertices {
			list = append(list, v.Handle)
		}
		list = append(list, pl.SeqEnd)
	}
	for _, h := range res.SeqEnds {
		list = append(list, h)
	}
	for _, rs := range res.Reactors {
		for _, r := range rs {
			list = append(list, r.Handle)
		}
	}
	d := res.Dictionaries
	list = append(list, d.Root, d.Groups, d.Layouts, d.MLineStyles, d.Images, d.ImageVars)
	return list
}

func TestHandlesUnique(t *testing.T) {
	res := run(t, sampleDocument())

	seen := make(map[core.Handle]bool)
	for _, h := range allHandles(res) {
		require.NotZero(t, h)
		assert.False(t, seen[h], "句柄 %s 重复", h)
		seen[h] = true
	}

	for _, h := range allHandles(res) {
		assert.Less(t, uint64(h), uint64(res.Seed), "句柄 %s 不小于 $HANDSEED %s", h, res.Seed)
	}
}

func TestDeterministic(t *testing.T) {
	a := run(t, sampleDocument())
	b := run(t, sampleDocument())

	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, len(a.Polylines), len(b.Polylines))
	for h, pl := range a.Polylines {
		other, ok := b.Polylines[h]
		require.True(t, ok, "多段线 %s 不存在", h)
		if diff := cmp.Diff(pl.Vertices, other.Vertices); diff != "" {
			t.Errorf("顶点不一致 (-a +b):\n%s", diff)
		}
		assert.Equal(t, pl.SeqEnd, other.SeqEnd)
	}
	if diff := cmp.Diff(a.SeqEnds, b.SeqEnds); diff != "" {
		t.Errorf("SEQEND 不一致:\n%s", diff)
	}
	if diff := cmp.Diff(a.Reactors, b.Reactors); diff != "" {
		t.Errorf("反应器不一致:\n%s", diff)
	}
}

func TestNormalizedPolylines(t *testing.T) {
	doc := sampleDocument()
	res := run(t, doc)

	smooth := res.Polylines[res.Handle(doc.Entities[0])]
	require.NotNil(t, smooth)
	assert.Equal(t, PolylineSplineFit, smooth.Flags&PolylineSplineFit)
	// 4 个控制点 + 8 × 3 + 1 个拟合点
	assert.Len(t, smooth.Vertices, 4+8*3+1)
	assert.Equal(t, VertexFrameControl, smooth.Vertices[0].Flags)
	assert.Equal(t, VertexSplineFit, smooth.Vertices[4].Flags)
	assert.True(t, smooth.Vertices[4].Position.Equal(core.Point{}, 1e-9), "开放样条经过起点")
	assert.True(t, smooth.Vertices[len(smooth.Vertices)-1].Position.Equal(core.Point{X: 30, Y: 5}, 1e-9), "开放样条经过终点")

	poly3d := res.Polylines[res.Handle(doc.Entities[1])]
	assert.Equal(t, Polyline3D, poly3d.Flags)
	assert.Len(t, poly3d.Vertices, 3)
	assert.Equal(t, Vertex3D, poly3d.Vertices[0].Flags)

	face := res.Polylines[res.Handle(doc.Entities[2])]
	assert.Equal(t, int16(4), face.MeshM)
	assert.Equal(t, int16(2), face.MeshN)
	assert.Len(t, face.Vertices, 6)
	assert.Equal(t, VertexPolyfaceShape, face.Vertices[0].Flags)
	assert.True(t, face.Vertices[5].FaceRecord())
	assert.Equal(t, []int16{1, 3, -4}, face.Vertices[5].Indices)

	mesh := res.Polylines[res.Handle(doc.Entities[3])]
	assert.Equal(t, int16(6), mesh.DensityM)
	assert.Equal(t, int16(6), mesh.DensityN)
	assert.Len(t, mesh.Vertices, 9+6*6)
}

func TestMeshDensityMinimum(t *testing.T) {
	assert.Equal(t, int16(3), meshDensity(0, 0))
	assert.Equal(t, int16(3), meshDensity(2, 10))
	assert.Equal(t, int16(10), meshDensity(0, 10))
	assert.Equal(t, int16(7), meshDensity(7, 10))
}

func TestSeqEndAndReactors(t *testing.T) {
	doc := sampleDocument()
	res := run(t, doc)

	ins := doc.Entities[4].(*entities.Insert)
	seq, ok := res.SeqEnds[res.Handle(ins)]
	require.True(t, ok)
	assert.Greater(t, uint64(seq), uint64(res.Handle(ins.Attributes[0])))

	def := doc.ImageDef("logo")
	reactors := res.Reactors[res.Handle(def)]
	require.Len(t, reactors, 2)
	assert.Equal(t, res.Handle(doc.Entities[5]), reactors[0].Image)
	assert.Equal(t, res.Handle(doc.Entities[6]), reactors[1].Image)
	assert.Equal(t, reactors[1].Handle, res.ImageReactors[reactors[1].Image])

	g := doc.Groups[0]
	assert.Equal(t, []core.Handle{res.Handle(doc.Entities[7]), res.Handle(ins)}, res.GroupMembers[g])
	assert.Equal(t, []core.Handle{res.Handle(g)}, res.EntityReactors[res.Handle(ins)])
}

func TestSynthesizedRecords(t *testing.T) {
	doc := sampleDocument()
	dim := entities.NewLinearDimension(core.Point{}, core.Point{X: 10}, core.Point{Y: 5}, 0)
	dim.Overrides.Set(entities.DimArrowSize, 3.0)
	line := entities.NewLine(core.Point{}, core.Point{X: 1})
	line.XData.Add(&core.XData{AppID: "MYAPP", Values: []core.XDataValue{core.XString("x")}})
	doc.AddEntity(dim, line)
	doc.AppRegs = nil

	res := run(t, doc)
	var apps []string
	for _, a := range res.AppRegs {
		apps = append(apps, a.Name)
	}
	assert.Equal(t, []string{"ACAD", "MYAPP"}, apps)
	require.Len(t, res.Layers, 1)
	assert.Equal(t, "轮廓", res.Layers[0].Name)
	assert.NotZero(t, res.Handle(res.Layers[0]))
}

func TestRejected(t *testing.T) {
	doc := dxf.New(core.AC1015)
	bad := entities.NewLWPolyline(core.Vec2{})
	hatch := entities.NewSolidHatch()
	mesh := entities.NewMesh([]core.Point{{}, {X: 1}, {Y: 1}}, [][]int32{{0, 1, 2}})
	fit := entities.NewSpline(3)
	fit.FitPoints = []core.Point{{}, {X: 1}, {X: 2, Y: 1}}
	good := entities.NewLine(core.Point{}, core.Point{X: 1})
	doc.AddEntity(bad, hatch, mesh, fit, good)
	doc.AddGroup("G", "", bad, good)

	res := run(t, doc)
	require.Len(t, res.Rejected, 4)
	for _, r := range res.Rejected {
		assert.True(t, res.Rejects(r.Entity))
		assert.NotZero(t, r.Handle)
		assert.NotEmpty(t, r.Reason)
	}
	assert.False(t, res.Rejects(good))
	assert.Equal(t, []core.Handle{res.Handle(good)}, res.GroupMembers[doc.Groups[0]])
}

func TestMissingReference(t *testing.T) {
	tests := []struct {
		name   string
		entity entities.Entity
	}{
		{"block", entities.NewInsert("NOPE", core.Point{})},
		{"image", entities.NewImage("nope", core.Point{}, core.Vec2{X: 1, Y: 1}, 1, 1)},
		{"underlay", entities.NewUnderlay(entities.UnderlayPDF, "nope", core.Point{})},
		{"style", func() entities.Entity {
			text := entities.NewText("x", core.Point{}, 1)
			text.Style = "NOPE"
			return text
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := dxf.New(core.AC1032)
			doc.AddEntity(tt.entity)
			_, err := Run(doc, core.NewHandleAllocator(1))
			require.Error(t, err)
			assert.Equal(t, ErrMissingReference, errors.Cause(err))
		})
	}
}

func TestSharedEntity(t *testing.T) {
	doc := dxf.New(core.AC1032)
	line := entities.NewLine(core.Point{}, core.Point{X: 1})
	doc.AddEntity(line)
	doc.AddBlock(dxf.NewBlock("B", line))

	_, err := Run(doc, core.NewHandleAllocator(1))
	require.Error(t, err)
	assert.Equal(t, ErrSharedEntity, errors.Cause(err))
	assert.Contains(t, err.Error(), "*Model_Space")
}

func TestSample(t *testing.T) {
	ctrl := []core.Point{{}, {X: 1, Y: 1}, {X: 2}, {X: 3, Y: 1}}

	closed := sample(ctrl, entities.SmoothQuadratic, true, 8)
	assert.Len(t, closed, 8)

	bz := sample(ctrl, entities.SmoothBezier, false, 5)
	assert.True(t, bz[0].Equal(ctrl[0], 1e-12))
	assert.True(t, bz[4].Equal(ctrl[3], 1e-12))

	// 两个点时退化为直线
	lin := sample(ctrl[:2], entities.SmoothCubic, false, 3)
	assert.True(t, lin[1].Equal(core.Point{X: 0.5, Y: 0.5}, 1e-12))
}
