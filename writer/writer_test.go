package writer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/codec"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/preprocess"
)

var versions = core.Versions()

func quiet() Options {
	return Options{Logger: log.New(io.Discard)}
}

func sampleDocument(version core.Version) *dxf.Document {
	doc := dxf.New(version)
	doc.AddLayer(&dxf.Layer{
		Name:         "轮廓",
		Color:        core.Color{Index: 1},
		LineType:     "Continuous",
		LineWeight:   core.LineWeightDefault,
		Plot:         true,
		Transparency: core.Transparency{Value: 50},
	})

	line := entities.NewLine(core.Point{}, core.Point{X: 100, Y: 50})
	line.LayerName = "轮廓"
	circle := entities.NewCircle(core.Point{X: 10, Y: 10}, 5)
	arc := entities.NewArc(core.Point{X: 30}, 5, 0, 90)
	ellipse := entities.NewEllipse(core.Point{X: 50}, core.Point{X: 10}, 0.5)
	point := entities.NewPoint(core.Point{X: 1, Y: 2})
	ray := entities.NewRay(core.Point{}, core.Point{X: 1, Y: 1})
	xline := entities.NewXLine(core.Point{}, core.Point{Y: 1})
	face := entities.NewFace3D(core.Point{}, core.Point{X: 1}, core.Point{X: 1, Y: 1}, core.Point{Y: 1, Z: 1})
	solid := entities.NewSolid(core.Point{}, core.Point{X: 1}, core.Point{Y: 1}, core.Point{X: 1, Y: 1})

	lw := entities.NewLWPolyline(core.Vec2{}, core.Vec2{X: 10}, core.Vec2{X: 10, Y: 10})
	smooth := entities.NewPolyline2D(entities.SmoothCubic,
		core.Vec2{}, core.Vec2{X: 10, Y: 5}, core.Vec2{X: 20}, core.Vec2{X: 30, Y: 5})
	poly3d := entities.NewPolyline3D(core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, core.Point{X: 2})
	polyface := entities.NewPolyfaceMesh(
		[]core.Point{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[][]int16{{1, 2, 3}, {1, 3, -4}},
	)
	spline := entities.NewSpline(3, core.Point{}, core.Point{X: 1, Y: 2}, core.Point{X: 3, Y: 2}, core.Point{X: 4})
	mline := entities.NewMLine(core.Point{}, core.Point{X: 20}, core.Point{X: 20, Y: 20})
	mesh := entities.NewMesh([]core.Point{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}, [][]int32{{0, 1, 2, 3}})

	text := entities.NewText("标题", core.Point{X: 5, Y: 80}, 3.5)
	note := entities.NewMText("说明\\P第二行", core.Point{X: 60, Y: 80}, 2.5, 40)
	note.Background = &entities.MTextBackground{Color: core.Color{Index: 7}, Scale: 1.5}

	def := entities.NewAttributeDefinition("NO", "编号", core.Point{}, 2.5)
	doc.AddBlock(dxf.NewBlock("TAG", entities.NewCircle(core.Point{}, 5), def))
	ins := entities.NewInsert("TAG", core.Point{X: 50, Y: 50})
	ins.Attributes = append(ins.Attributes, def.Instance("A-1", ins.InsertionPoint))

	hatch := entities.NewPatternHatch("ANSI31", 1, 0,
		[]entities.HatchPatternLine{{Angle: 45, Delta: core.Vec2{Y: 3.175}}},
		entities.PolylinePath(core.Vec2{}, core.Vec2{X: 10}, core.Vec2{X: 10, Y: 10}),
		entities.HatchPath{Flags: entities.PathExternal, Edges: []entities.HatchEdge{
			&entities.LineEdge{Start: core.Vec2{X: 20}, End: core.Vec2{X: 30}},
			&entities.ArcEdge{Center: core.Vec2{X: 25}, Radius: 5, EndAngle: 180, CCW: true},
		}},
	)
	gradient := entities.NewSolidHatch(entities.PolylinePath(core.Vec2{Y: 20}, core.Vec2{X: 10, Y: 20}, core.Vec2{X: 10, Y: 30}))
	gradient.Gradient = &entities.HatchGradient{Name: "LINEAR", Color1: core.Color{Index: 1}, Color2: core.Color{Index: 5}}

	doc.AddImageDef(dxf.NewImageDef("logo", "logo.png", 640, 480))
	img := entities.NewImage("logo", core.Point{X: 100}, core.Vec2{X: 640, Y: 480}, 64, 48)
	wipeout := entities.NewWipeout(core.Vec2{}, core.Vec2{X: 5}, core.Vec2{X: 5, Y: 5}, core.Vec2{Y: 5})

	doc.AddUnderlayDef(&dxf.UnderlayDef{Kind: entities.UnderlayPDF, Name: "plan", FileName: "plan.pdf", SheetName: "1"})
	underlay := entities.NewUnderlay(entities.UnderlayPDF, "plan", core.Point{X: 200})

	dim := entities.NewLinearDimension(core.Point{}, core.Point{X: 100}, core.Point{Y: 20}, 0)
	dim.Overrides.Set(entities.DimTextHeight, 5.0).Set(entities.DimLengthSuppressLeading, true)
	callout := entities.NewMText("见详图", core.Point{X: 120, Y: 40}, 2.5, 0)
	leader := entities.NewLeader(core.Point{X: 100, Y: 20}, core.Point{X: 120, Y: 40})
	leader.Annotation = callout
	tol := entities.NewTolerance("{\\Fgdt;j}%%v0.1", core.Point{X: 150})

	doc.AddEntity(line, circle, arc, ellipse, point, ray, xline, face, solid,
		lw, smooth, poly3d, polyface, spline, mline, mesh,
		text, note, ins, hatch, gradient, img, wipeout, underlay,
		dim, callout, leader, tol)

	layout := doc.Layout("Layout1")
	layout.Entities = append(layout.Entities, entities.NewText("图纸空间", core.Point{X: 10, Y: 10}, 5))

	doc.AddGroup("G1", "外框", line, circle)
	doc.Capture("全部")
	return doc
}

func write(t *testing.T, doc *dxf.Document, opts Options) ([]core.Tag, *Result) {
	t.Helper()
	var buf bytes.Buffer
	res, err := Write(&buf, doc, opts)
	require.NoError(t, err)
	tags, err := core.ReadAll(&buf)
	require.NoError(t, err)
	return tags, res
}

// sectionTags 返回段 name 中 2 组码之后、ENDSEC 之前的组码
func sectionTags(tags []core.Tag, name string) []core.Tag {
	for i := 0; i+1 < len(tags); i++ {
		if tags[i] != (core.Tag{Code: 0, Value: "SECTION"}) || tags[i+1] != (core.Tag{Code: 2, Value: name}) {
			continue
		}
		for j := i + 2; j < len(tags); j++ {
			if tags[j] == (core.Tag{Code: 0, Value: "ENDSEC"}) {
				return tags[i+2 : j]
			}
		}
	}
	return nil
}

// record 返回第一个类型为 kind 的记录，不含 0 组码
func record(tags []core.Tag, kind string) []core.Tag {
	for i, tag := range tags {
		if tag.Code != 0 || tag.Value != kind {
			continue
		}
		end := i + 1
		for end < len(tags) && tags[end].Code != 0 {
			end++
		}
		return tags[i+1 : end]
	}
	return nil
}

func values(tags []core.Tag, code int) []string {
	var list []string
	for _, tag := range tags {
		if tag.Code == code {
			list = append(list, tag.Value)
		}
	}
	return list
}

func types(tags []core.Tag) []string {
	return values(tags, 0)
}

func TestZeroSuppression(t *testing.T) {
	units := map[[2]bool]int16{
		{true, true}:   0,
		{false, false}: 1,
		{false, true}:  2,
		{true, false}:  3,
	}
	decimals := map[[2]bool]int16{
		{false, false}: 0,
		{true, false}:  4,
		{false, true}:  8,
		{true, true}:   12,
	}
	for fi, unit := range units {
		for lt, decimal := range decimals {
			got := ZeroSuppression(lt[0], lt[1], fi[0], fi[1])
			assert.Equal(t, unit+decimal, got, "leading=%v trailing=%v feet=%v inches=%v", lt[0], lt[1], fi[0], fi[1])
		}
	}

	assert.Equal(t, int16(0), ZeroSuppression(false, false, true, true))
	assert.Equal(t, int16(13), ZeroSuppression(true, true, false, false))
}

func TestSectionOrder(t *testing.T) {
	tags, res := write(t, sampleDocument(core.AC1027), quiet())

	var sections []string
	for i := 0; i+1 < len(tags); i++ {
		if tags[i] == (core.Tag{Code: 0, Value: "SECTION"}) {
			sections = append(sections, tags[i+1].Value)
		}
	}
	assert.Equal(t, []string{"HEADER", "CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"}, sections)
	assert.Equal(t, core.Tag{Code: 0, Value: "EOF"}, tags[len(tags)-1])
	assert.Empty(t, res.Issues)

	var tables []string
	body := sectionTags(tags, "TABLES")
	for i := 0; i+1 < len(body); i++ {
		if body[i] == (core.Tag{Code: 0, Value: "TABLE"}) {
			tables = append(tables, body[i+1].Value)
		}
	}
	assert.Equal(t, preprocess.TableOrder, tables)
}

func structurePanic(t *testing.T, f func(m *machine)) *StructureError {
	t.Helper()
	var buf bytes.Buffer
	m := newMachine(codec.NewWriter(codec.NewTextSink(&buf), codec.NewEncoder(core.AC1027)))

	var got *StructureError
	func() {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(*StructureError)
				require.True(t, ok, "unexpected panic %v", r)
				got = err
			}
		}()
		f(m)
	}()
	return got
}

func TestStructureErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(m *machine)
	}{
		{"entities inside open tables", func(m *machine) {
			m.beginSection(sectionTables)
			m.beginSection(sectionEntities)
		}},
		{"header reopened", func(m *machine) {
			m.beginSection(sectionHeader)
			m.endSection()
			m.beginSection(sectionHeader)
		}},
		{"table outside tables", func(m *machine) {
			m.beginSection(sectionHeader)
			m.beginTable("LAYER")
		}},
		{"ltype after layer", func(m *machine) {
			m.beginSection(sectionTables)
			m.beginTable("LAYER")
			m.endTable()
			m.beginTable("LTYPE")
		}},
		{"section end with open table", func(m *machine) {
			m.beginSection(sectionTables)
			m.beginTable("VPORT")
			m.endSection()
		}},
		{"write after eof", func(m *machine) {
			m.eof()
			m.beginSection(sectionObjects)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, structurePanic(t, tt.run))
		})
	}

	err := structurePanic(t, func(m *machine) {
		m.beginSection(sectionTables)
		m.beginTable("VPORT")
		m.endTable()
		m.beginTable("LTYPE")
		m.endTable()
		m.beginTable("LAYER")
		m.endTable()
		m.endSection()
		m.beginSection(sectionBlocks)
		m.endSection()
		m.eof()
	})
	assert.Nil(t, err)
}

func TestMaintenanceVersionGate(t *testing.T) {
	for _, tt := range []struct {
		version core.Version
		present bool
	}{
		{core.AC1015, false},
		{core.AC1018, true},
		{core.AC1032, true},
	} {
		doc := dxf.New(tt.version)
		doc.Header.Set("$ACADMAINTVER", 70, int16(33))
		tags, _ := write(t, doc, quiet())

		header := values(sectionTags(tags, "HEADER"), 9)
		assert.Equal(t, tt.present, contains(header, "$ACADMAINTVER"), tt.version.String())
		assert.Equal(t, 1, count(header, "$ACADVER"))
		assert.Equal(t, 1, count(header, "$HANDSEED"))
	}
}

func contains(list []string, s string) bool {
	return count(list, s) > 0
}

func count(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}
	return n
}

func TestCustomHeader(t *testing.T) {
	doc := dxf.New(core.AC1027)
	doc.Header.Set("$USERI1", 70, 42)
	doc.Header.Set("$USERR1", 40, 1.5)
	tags, _ := write(t, doc, quiet())

	header := sectionTags(tags, "HEADER")
	for i, tag := range header {
		switch tag {
		case core.Tag{Code: 9, Value: "$USERI1"}:
			assert.Equal(t, core.Tag{Code: 70, Value: "42"}, header[i+1])
		case core.Tag{Code: 9, Value: "$USERR1"}:
			assert.Equal(t, core.Tag{Code: 40, Value: core.FormatDouble(1.5)}, header[i+1])
		}
	}

	bad := dxf.New(core.AC1027)
	bad.Header.Set("$USERI2", 70, "x")
	_, err := Write(io.Discard, bad, quiet())
	assert.Error(t, err)
}

func TestEscaping(t *testing.T) {
	for _, tt := range []struct {
		version core.Version
		want    string
	}{
		{core.AC1015, `\U+8F6E\U+5ED3`},
		{core.AC1018, `\U+8F6E\U+5ED3`},
		{core.AC1021, "轮廓"},
		{core.AC1032, "轮廓"},
	} {
		doc := dxf.New(tt.version)
		line := entities.NewLine(core.Point{}, core.Point{X: 1})
		line.LayerName = "轮廓"
		doc.AddEntity(line)
		tags, _ := write(t, doc, quiet())

		assert.Equal(t, []string{tt.want}, values(record(sectionTags(tags, "ENTITIES"), "LINE"), 8), tt.version.String())
		assert.Contains(t, values(sectionTags(tags, "TABLES"), 2), tt.want, tt.version.String())
	}
}

func handles(tags []core.Tag) map[string]int {
	own := make(map[string]int)
	for _, name := range []string{"CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"} {
		for _, tag := range sectionTags(tags, name) {
			if tag.Code == 5 || tag.Code == 105 {
				own[tag.Value]++
			}
		}
	}
	return own
}

func TestHandles(t *testing.T) {
	for _, version := range versions {
		t.Run(version.String(), func(t *testing.T) {
			tags, res := write(t, sampleDocument(version), quiet())
			own := handles(tags)
			require.NotEmpty(t, own)

			for h, n := range own {
				assert.Equal(t, 1, n, "handle %s written %d times", h, n)
			}

			// 引用都指向已写出的对象
			for _, name := range []string{"TABLES", "BLOCKS", "ENTITIES", "OBJECTS"} {
				for _, tag := range sectionTags(tags, name) {
					switch tag.Code {
					case 330, 340, 350, 360:
						if tag.Value != "0" {
							assert.Contains(t, own, tag.Value, "%s: code %d references %s", name, tag.Code, tag.Value)
						}
					}
				}
			}

			header := sectionTags(tags, "HEADER")
			var seed string
			for i, tag := range header {
				if tag == (core.Tag{Code: 9, Value: "$HANDSEED"}) {
					seed = header[i+1].Value
				}
			}
			require.NotEmpty(t, seed)
			assert.Equal(t, res.Seed.String(), seed)

			next, err := strconv.ParseUint(seed, 16, 64)
			require.NoError(t, err)
			for h := range own {
				v, err := strconv.ParseUint(h, 16, 64)
				require.NoError(t, err)
				assert.Less(t, v, next)
			}
		})
	}
}

func TestBinaryMatchesText(t *testing.T) {
	for _, version := range versions {
		doc := sampleDocument(version)
		doc.Comments = nil

		text, _ := write(t, doc, quiet())
		opts := quiet()
		opts.Binary = true
		binary, _ := write(t, doc, opts)
		assert.Equal(t, text, binary, version.String())
	}
}

func TestVersionGatedEntities(t *testing.T) {
	tags, res := write(t, sampleDocument(core.AC1018), quiet())
	ents := types(sectionTags(tags, "ENTITIES"))
	assert.NotContains(t, ents, "MESH")
	assert.NotContains(t, ents, "PDFUNDERLAY")
	assert.Len(t, res.Issues, 2)
	assert.NotContains(t, types(sectionTags(tags, "OBJECTS")), "PDFDEFINITION")

	tags, res = write(t, sampleDocument(core.AC1027), quiet())
	ents = types(sectionTags(tags, "ENTITIES"))
	assert.Contains(t, ents, "MESH")
	assert.Contains(t, ents, "PDFUNDERLAY")
	assert.Empty(t, res.Issues)
	assert.Contains(t, types(sectionTags(tags, "OBJECTS")), "PDFDEFINITION")
}

func TestStrictAndLenient(t *testing.T) {
	build := func() *dxf.Document {
		doc := dxf.New(core.AC1027)
		doc.AddEntity(
			entities.NewLine(core.Point{}, core.Point{X: 1}),
			entities.NewSolidHatch(),
			entities.NewLWPolyline(core.Vec2{}),
		)
		return doc
	}

	var buf bytes.Buffer
	opts := quiet()
	opts.Strict = true
	_, err := Write(&buf, build(), opts)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Len(t, verr.Issues, 2)
	assert.Zero(t, buf.Len())

	tags, res := write(t, build(), quiet())
	assert.Len(t, res.Issues, 2)
	assert.Equal(t, 1, res.Entities)
	assert.Equal(t, []string{"LINE"}, types(sectionTags(tags, "ENTITIES")))
}

func TestUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, dxf.New(core.AC1014), quiet())
	assert.Equal(t, ErrUnsupportedVersion, errors.Cause(err))
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	name := filepath.Join(dir, "ok.dxf")
	res, err := WriteFile(name, dxf.New(core.AC1027), quiet())
	require.NoError(t, err)
	assert.Equal(t, core.AC1027, res.Version)
	file, err := os.Open(name)
	require.NoError(t, err)
	defer file.Close()
	tags, err := core.ReadAll(file)
	require.NoError(t, err)
	assert.True(t, tags[len(tags)-1].Is(0, "EOF"))

	bad := filepath.Join(dir, "bad.dxf")
	_, err = WriteFile(bad, dxf.New(core.AC1014), quiet())
	require.Error(t, err)
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}

func TestMissingReference(t *testing.T) {
	doc := dxf.New(core.AC1027)
	doc.AddEntity(entities.NewInsert("NOPE", core.Point{}))
	_, err := Write(io.Discard, doc, quiet())
	assert.Equal(t, ErrMissingReference, errors.Cause(err))
}

func TestSharedEntity(t *testing.T) {
	tests := []struct {
		name  string
		build func(doc *dxf.Document)
	}{
		{"model and block", func(doc *dxf.Document) {
			line := entities.NewLine(core.Point{}, core.Point{X: 1})
			doc.AddEntity(line)
			doc.AddBlock(dxf.NewBlock("B", line))
		}},
		{"model twice", func(doc *dxf.Document) {
			line := entities.NewLine(core.Point{}, core.Point{X: 1})
			doc.AddEntity(line, line)
		}},
		{"model and layout", func(doc *dxf.Document) {
			text := entities.NewText("x", core.Point{}, 1)
			doc.AddEntity(text)
			layout := doc.Layout("Layout1")
			layout.Entities = append(layout.Entities, text)
		}},
		{"attribute on two inserts", func(doc *dxf.Document) {
			def := entities.NewAttributeDefinition("NO", "", core.Point{}, 2.5)
			doc.AddBlock(dxf.NewBlock("TAG", def))
			attr := def.Instance("1", core.Point{})
			a := entities.NewInsert("TAG", core.Point{})
			a.Attributes = append(a.Attributes, attr)
			b := entities.NewInsert("TAG", core.Point{X: 10})
			b.Attributes = append(b.Attributes, attr)
			doc.AddEntity(a, b)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := dxf.New(core.AC1027)
			tt.build(doc)
			var buf bytes.Buffer
			_, err := Write(&buf, doc, quiet())
			require.Error(t, err)
			assert.Equal(t, ErrSharedEntity, errors.Cause(err))
			assert.Zero(t, buf.Len())
		})
	}
}

var escape = regexp.MustCompile(`\\U\+([0-9A-F]{4})`)

func unescape(s string) string {
	return escape.ReplaceAllStringFunc(s, func(m string) string {
		r, _ := strconv.ParseUint(m[3:], 16, 32)
		return string(rune(r))
	})
}

func TestXDataChunkBoundary(t *testing.T) {
	for _, value := range []string{
		strings.Repeat("a", 249) + "轮",
		strings.Repeat("a", 249) + "轮廓" + strings.Repeat("b", 300),
	} {
		doc := dxf.New(core.AC1015)
		line := entities.NewLine(core.Point{}, core.Point{X: 1})
		line.XData.Add(&core.XData{AppID: "MYAPP", Values: []core.XDataValue{core.XString(value)}})
		doc.AddEntity(line)
		tags, _ := write(t, doc, quiet())

		chunks := values(record(sectionTags(tags, "ENTITIES"), "LINE"), 1000)
		require.Len(t, chunks, (len([]rune(value))+249)/250)
		var joined string
		for _, c := range chunks {
			part := unescape(c)
			assert.NotContains(t, part, `\`)
			joined += part
		}
		assert.Equal(t, value, joined)
	}
}

func TestMTextChunks(t *testing.T) {
	doc := dxf.New(core.AC1027)
	doc.AddEntity(entities.NewMText(strings.Repeat("a", 600), core.Point{}, 2.5, 100))
	tags, _ := write(t, doc, quiet())

	mtext := record(sectionTags(tags, "ENTITIES"), "MTEXT")
	assert.Equal(t, []string{strings.Repeat("a", 250), strings.Repeat("a", 250)}, values(mtext, 3))
	assert.Equal(t, []string{strings.Repeat("a", 100)}, values(mtext, 1))
}

func TestDimensionOverrides(t *testing.T) {
	doc := dxf.New(core.AC1027)
	dim := entities.NewLinearDimension(core.Point{}, core.Point{X: 100}, core.Point{Y: 20}, 0)
	dim.Overrides.Set(entities.DimTextHeight, 5.0).Set(entities.DimLengthSuppressLeading, true)
	doc.AddEntity(dim)
	tags, _ := write(t, doc, quiet())

	body := record(sectionTags(tags, "ENTITIES"), "DIMENSION")
	require.NotNil(t, body)
	assert.Equal(t, []string{core.FormatDouble(100)}, values(body, 42))

	start := -1
	for i, tag := range body {
		if tag == (core.Tag{Code: 1001, Value: "ACAD"}) {
			start = i
		}
	}
	require.GreaterOrEqual(t, start, 0)
	assert.Equal(t, []core.Tag{
		{Code: 1001, Value: "ACAD"},
		{Code: 1000, Value: "DSTYLE"},
		{Code: 1002, Value: "{"},
		{Code: 1070, Value: "78"},
		{Code: 1070, Value: "12"},
		{Code: 1070, Value: "140"},
		{Code: 1040, Value: core.FormatDouble(5)},
		{Code: 1002, Value: "}"},
	}, body[start:])
}

func TestResultCounts(t *testing.T) {
	doc := sampleDocument(core.AC1027)
	tags, res := write(t, doc, quiet())

	// 模型空间、图纸空间与块中的实体都计数，VERTEX、ATTRIB、SEQEND 不计
	want := len(doc.Entities) + len(doc.Layout("Layout1").Entities) + len(doc.Block("TAG").Entities)
	assert.Equal(t, want, res.Entities)

	ents := types(sectionTags(tags, "ENTITIES"))
	assert.Equal(t, 3, count(ents, "POLYLINE"))
	assert.Equal(t, count(ents, "POLYLINE")+1, count(ents, "SEQEND"))
	assert.Equal(t, 1, count(ents, "ATTRIB"))
	assert.Equal(t, 1, count(types(sectionTags(tags, "BLOCKS")), "ATTDEF"))
}
