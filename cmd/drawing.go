package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/utils"
	"github.com/zooyer/dxfwriter/writer"
)

// drawing TOML 图形描述
//
//	version = "2013"
//	[writer]
//	binary = false
//	[[layer]]
//	Name = "轮廓"
//	Color = { Index = 1 }
//	[[block]]
//	name = "TAG"
//	  [[block.entity]]
//	  type = "ATTDEF"
//	  Tag = "NO"
//	[[entity]]
//	type = "INSERT"
//	BlockName = "TAG"
//	InsertionPoint = { X = 10, Y = 10 }
//	values = { NO = "A-1" }
//
// 实体表中除 type、space、values 以外的键按字段名（不区分大小写）写入实体
type drawing struct {
	Version  string           `toml:"version"`
	Comments []string         `toml:"comments"`
	Header   []variable       `toml:"header"`
	Writer   writer.Options   `toml:"writer"`
	Layers   []toml.Primitive `toml:"layer"`
	Images   []image          `toml:"image"`
	Blocks   []block          `toml:"block"`
	Entities []toml.Primitive `toml:"entity"`
}

// variable 自定义头变量
type variable struct {
	Name  string `toml:"name"`
	Code  int    `toml:"code"`
	Value any    `toml:"value"`
}

type image struct {
	Name   string `toml:"name"`
	File   string `toml:"file"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type block struct {
	Name        string           `toml:"name"`
	Base        core.Point       `toml:"base"`
	Description string           `toml:"description"`
	Entities    []toml.Primitive `toml:"entity"`
}

// head 实体表的公共键
type head struct {
	Type   string            `toml:"type"`
	Space  string            `toml:"space"`  // 布局名，空或 Model 为模型空间
	Values map[string]string `toml:"values"` // INSERT 的属性值，标签 → 值
}

func decodeEntity(md toml.MetaData, p toml.Primitive) (entities.Entity, head, error) {
	var h head
	if err := md.PrimitiveDecode(p, &h); err != nil {
		return nil, h, err
	}
	e := entities.CreateEntity(h.Type)
	if e == nil {
		return nil, h, errors.Errorf("unknown entity type %q", h.Type)
	}
	if err := md.PrimitiveDecode(p, e); err != nil {
		return nil, h, errors.Wrapf(err, "decode %s", h.Type)
	}
	return e, h, nil
}

// document 按描述构造文档
func (d *drawing) document(md toml.MetaData) (*dxf.Document, error) {
	version := core.AC1027
	if d.Version != "" {
		v, err := core.ParseVersion(d.Version)
		if err != nil {
			return nil, err
		}
		version = v
	}

	doc := dxf.New(version)
	doc.Comments = d.Comments
	for _, v := range d.Header {
		doc.Header.Set(v.Name, v.Code, v.Value)
	}

	for i, p := range d.Layers {
		layer := dxf.NewLayer("", core.White)
		if err := md.PrimitiveDecode(p, layer); err != nil {
			return nil, errors.Wrapf(err, "layer %d", i+1)
		}
		if layer.Name == "" {
			return nil, errors.Errorf("layer %d has no name", i+1)
		}
		doc.AddLayer(layer)
	}

	for _, img := range d.Images {
		doc.AddImageDef(dxf.NewImageDef(img.Name, img.File, img.Width, img.Height))
	}

	for _, b := range d.Blocks {
		blk := dxf.NewBlock(b.Name)
		blk.BasePoint = b.Base
		blk.Description = b.Description
		for _, p := range b.Entities {
			e, _, err := decodeEntity(md, p)
			if err != nil {
				return nil, errors.Wrapf(err, "block %s", b.Name)
			}
			blk.Entities = append(blk.Entities, e)
		}
		doc.AddBlock(blk)
	}

	for i, p := range d.Entities {
		e, h, err := decodeEntity(md, p)
		if err != nil {
			return nil, errors.Wrapf(err, "entity %d", i+1)
		}

		if ins, ok := e.(*entities.Insert); ok && len(ins.Attributes) == 0 {
			if blk := doc.Block(ins.BlockName); blk != nil {
				utils.FillAttributes(blk, ins, h.Values)
			}
			attrs := utils.GetAttrs(ins)
			for tag := range h.Values {
				if _, ok := attrs[tag]; !ok {
					return nil, errors.Errorf("entity %d: block %q has no attribute %q", i+1, ins.BlockName, tag)
				}
			}
		}

		if h.Space == "" || strings.EqualFold(h.Space, "Model") {
			doc.AddEntity(e)
			continue
		}
		layout := doc.Layout(h.Space)
		if layout == nil {
			layout = dxf.NewLayout(h.Space, int16(len(doc.Layouts)+1))
			doc.Layouts = append(doc.Layouts, layout)
		}
		layout.Entities = append(layout.Entities, e)
	}

	return doc, nil
}
