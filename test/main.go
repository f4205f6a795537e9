package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/utils"
	"github.com/zooyer/dxfwriter/writer"
	"github.com/zooyer/golib/xos"
)

// showcase 一张包含所有实体类型的样例图
func showcase(version core.Version) *dxf.Document {
	doc := dxf.New(version)
	doc.Comments = []string{"dxfwriter showcase"}
	doc.Header.Set("$USERI1", 70, 1)

	doc.AddLineType(&dxf.LineType{
		Name:        "DASHED",
		Description: "__ __ __",
		Pattern:     []dxf.LineTypeElement{{Length: 5}, {Length: -2.5}},
	})
	doc.AddLayer(&dxf.Layer{Name: "轮廓", Color: core.Color{Index: 1}, LineType: "Continuous", LineWeight: core.LineWeight(50), Plot: true})
	doc.AddLayer(&dxf.Layer{Name: "中心线", Color: core.Color{Index: 2}, LineType: "DASHED", LineWeight: core.LineWeightDefault, Plot: true})
	doc.AddLayer(&dxf.Layer{Name: "填充", Color: core.Color{Index: 8}, LineType: "Continuous", LineWeight: core.LineWeightDefault, Plot: true,
		Transparency: core.Transparency{Value: 60}})
	doc.AddTextStyle(dxf.NewTextStyle("仿宋", "simfang.ttf"))

	style := doc.AddDimStyle(dxf.NewDimStyle("GB"))
	style.TextStyle = "仿宋"
	style.TextHeight = 3.5

	// 图框与标题栏
	frame := entities.NewLWPolyline(core.Vec2{}, core.Vec2{X: 420}, core.Vec2{X: 420, Y: 297}, core.Vec2{Y: 297})
	frame.Closed = true
	frame.LayerName = "轮廓"
	frame.ConstantWidth = 0.7
	title := entities.NewText("零件图", core.Point{X: 360, Y: 10}, 7)
	title.Style = "仿宋"

	// 零件轮廓
	center := core.Point{X: 150, Y: 150}
	outer := entities.NewCircle(center, 60)
	outer.LayerName = "轮廓"
	inner := entities.NewCircle(center, 25)
	inner.LayerName = "轮廓"
	axisX := entities.NewLine(core.Point{X: 80, Y: 150}, core.Point{X: 220, Y: 150})
	axisX.LayerName = "中心线"
	axisY := entities.NewLine(core.Point{X: 150, Y: 80}, core.Point{X: 150, Y: 220})
	axisY.LayerName = "中心线"

	var holes []entities.Entity
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		hole := entities.NewCircle(core.Point{X: center.X + 42*math.Cos(a), Y: center.Y + 42*math.Sin(a)}, 5)
		hole.LayerName = "轮廓"
		holes = append(holes, hole)
	}
	slot := entities.NewArc(center, 50, 200, 340)
	slot.LayerName = "轮廓"
	ellipse := entities.NewEllipse(core.Point{X: 300, Y: 220}, core.Point{X: 30}, 0.4)

	hatch := entities.NewPatternHatch("ANSI31", 1, 0,
		[]entities.HatchPatternLine{{Angle: 45, Delta: core.Vec2{Y: 3.175}}},
		entities.PolylinePath(core.Vec2{X: 260, Y: 60}, core.Vec2{X: 340, Y: 60}, core.Vec2{X: 340, Y: 120}, core.Vec2{X: 260, Y: 120}),
	)
	hatch.LayerName = "填充"
	gradient := entities.NewSolidHatch(entities.HatchPath{Flags: entities.PathExternal, Edges: []entities.HatchEdge{
		&entities.ArcEdge{Center: core.Vec2{X: 360, Y: 200}, Radius: 15, EndAngle: 360, CCW: true},
	}})
	gradient.Gradient = &entities.HatchGradient{Name: "SPHERICAL", Color1: core.Color{Index: 5}, Color2: core.Color{Index: 4}}

	// 曲线
	smooth := entities.NewPolyline2D(entities.SmoothQuadratic,
		core.Vec2{X: 20, Y: 20}, core.Vec2{X: 40, Y: 50}, core.Vec2{X: 60, Y: 20}, core.Vec2{X: 80, Y: 50})
	spline := entities.NewSpline(3, core.Point{X: 20, Y: 240}, core.Point{X: 40, Y: 270}, core.Point{X: 60, Y: 230}, core.Point{X: 80, Y: 260})
	poly3d := entities.NewPolyline3D(core.Point{X: 20, Y: 100}, core.Point{X: 30, Y: 110, Z: 10}, core.Point{X: 40, Y: 100, Z: 20})
	mline := entities.NewMLine(core.Point{X: 240, Y: 20}, core.Point{X: 400, Y: 20}, core.Point{X: 400, Y: 40})

	// 三维网格
	polyface := entities.NewPolyfaceMesh(
		[]core.Point{{X: 100, Y: 20}, {X: 110, Y: 20}, {X: 110, Y: 30}, {X: 100, Y: 30}, {X: 105, Y: 25, Z: 10}},
		[][]int16{{1, 2, 5}, {2, 3, 5}, {3, 4, 5}, {4, 1, 5}},
	)
	grid := entities.NewPolygonMesh(2, 2, []core.Point{{X: 120, Y: 20}, {X: 130, Y: 20}, {X: 120, Y: 30}, {X: 130, Y: 30, Z: 5}})
	mesh := entities.NewMesh([]core.Point{{X: 140, Y: 20}, {X: 150, Y: 20}, {X: 150, Y: 30}, {X: 140, Y: 30}}, [][]int32{{0, 1, 2, 3}})
	face := entities.NewFace3D(core.Point{X: 160, Y: 20}, core.Point{X: 170, Y: 20}, core.Point{X: 170, Y: 30, Z: 5}, core.Point{X: 160, Y: 30})

	// 带属性的块
	tag := entities.NewAttributeDefinition("编号", "零件编号", core.Point{X: -2, Y: -1.5}, 3)
	balloon := dxf.NewBlock("BALLOON", entities.NewCircle(core.Point{}, 5), tag)
	doc.AddBlock(balloon)
	ins := entities.NewInsert("BALLOON", core.Point{X: 240, Y: 240})
	utils.FillAttributes(balloon, ins, map[string]string{"编号": "1"})

	// 标注与引线
	dim := entities.NewLinearDimension(core.Point{X: 90, Y: 150}, core.Point{X: 210, Y: 150}, core.Point{X: 150, Y: 230}, 0)
	dim.StyleName = "GB"
	dim.Overrides.Set(entities.DimTextHeight, 5.0)
	radial := entities.NewDiametricDimension(core.Point{X: 125, Y: 150}, core.Point{X: 175, Y: 150})
	radial.StyleName = "GB"
	note := entities.NewMText("未注倒角 C1\\P材料 45 钢", core.Point{X: 250, Y: 180}, 3.5, 80)
	note.Background = &entities.MTextBackground{Color: core.Color{Index: 7}, Scale: 1.5}
	leader := entities.NewLeader(core.Point{X: 190, Y: 190}, core.Point{X: 245, Y: 180})
	leader.Annotation = note
	tol := entities.NewTolerance("{\\Fgdt;j}%%v0.05%%vA", core.Point{X: 250, Y: 150})

	// 图像与底图
	doc.AddImageDef(dxf.NewImageDef("logo", "logo.png", 256, 128))
	img := entities.NewImage("logo", core.Point{X: 330, Y: 250}, core.Vec2{X: 256, Y: 128}, 64, 32)
	wipe := entities.NewWipeout(core.Vec2{X: 355, Y: 5}, core.Vec2{X: 415, Y: 5}, core.Vec2{X: 415, Y: 25}, core.Vec2{X: 355, Y: 25})
	doc.AddUnderlayDef(&dxf.UnderlayDef{Kind: entities.UnderlayPDF, Name: "底图", FileName: "plan.pdf", SheetName: "1"})
	underlay := entities.NewUnderlay(entities.UnderlayPDF, "底图", core.Point{X: 500})

	doc.AddEntity(frame, wipe, title, outer, inner, axisX, axisY)
	doc.AddEntity(holes...)
	doc.AddEntity(slot, ellipse, hatch, gradient, smooth, spline, poly3d, mline,
		polyface, grid, mesh, face, ins, dim, radial, note, leader, tol, img, underlay)

	layout := doc.Layout("Layout1")
	layout.Entities = append(layout.Entities, entities.NewText("图纸空间", core.Point{X: 20, Y: 20}, 5))

	doc.AddGroup("孔", "均布孔", holes...)
	doc.Capture("全部打开")
	return doc
}

func main() {
	defer xos.PauseExit()

	dir := filepath.Join(os.TempDir(), "dxfwriter")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	for _, version := range core.Versions() {
		for _, binary := range []bool{false, true} {
			mode := "text"
			if binary {
				mode = "binary"
			}
			filename := filepath.Join(dir, fmt.Sprintf("showcase-%s-%s.dxf", version, mode))

			res, err := writer.WriteFile(filename, showcase(version), writer.Options{Binary: binary, Logger: logger})
			if err != nil {
				fmt.Printf("[%s.%s] ❌ %v\n", version, mode, err)
				continue
			}

			// 读回校验
			file, err := os.Open(filename)
			if err != nil {
				panic(err)
			}
			tags, err := core.ReadAll(file)
			_ = file.Close()
			if err != nil {
				fmt.Printf("[%s.%s] ❌ 读回失败: %v\n", version, mode, err)
				continue
			}

			fmt.Printf("[%s.%s] ✅ %s | 实体:%d 组码:%d 句柄种子:%s 跳过:%d\n",
				version, mode, filename, res.Entities, len(tags), res.Seed, len(res.Issues),
			)
			for _, issue := range res.Issues {
				fmt.Println("    |--", issue)
			}
		}
	}
}
