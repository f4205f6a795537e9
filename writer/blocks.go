package writer

import "github.com/zooyer/dxfwriter/core"

// blocks 每个空间一对 BLOCK/ENDBLK。模型空间与当前图纸空间的实体写在 ENTITIES 段
func (d *docWriter) blocks() {
	d.m.in(sectionBlocks, "write blocks")
	w := d.w
	for i, s := range d.pre.Spaces {
		layer := "0"
		var (
			base        core.Point
			description string
			flags       int16
		)
		if s.Block != nil {
			if s.Block.Layer != "" {
				layer = s.Block.Layer
			}
			base, description = s.Block.BasePoint, s.Block.Description
			if s.Block.HasAttributes() {
				flags |= 2
			}
		}

		w.Raw(0, "BLOCK")
		w.Handle(5, s.Begin)
		w.Handle(330, s.Record)
		w.Raw(100, "AcDbEntity")
		if s.Paper {
			w.Int16(67, 1)
		}
		w.String(8, layer)
		w.Raw(100, "AcDbBlockBegin")
		w.String(2, s.Name)
		w.Int16(70, flags)
		w.Point(10, base)
		w.String(3, s.Name)
		w.Raw(1, "")
		if description != "" {
			w.String(4, description)
		}

		if i >= 2 {
			d.log.Debug("write block", "name", s.Name, "count", len(s.Entities))
			for _, e := range s.Entities {
				d.entity(e, s.Record, s.Paper)
			}
		}

		w.Raw(0, "ENDBLK")
		w.Handle(5, s.End)
		w.Handle(330, s.Record)
		w.Raw(100, "AcDbEntity")
		if s.Paper {
			w.Int16(67, 1)
		}
		w.String(8, layer)
		w.Raw(100, "AcDbBlockEnd")
	}
}
