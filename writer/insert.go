package writer

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

func (d *docWriter) insert(i *entities.Insert) {
	w := d.w
	w.Raw(100, "AcDbBlockReference")
	if _, ok := d.pre.SeqEnds[d.pre.Handle(i)]; ok {
		w.Int16(66, 1)
	}
	w.String(2, i.BlockName)
	w.Point(10, ocs(i.InsertionPoint, i.Normal))
	scale := i.Scale
	if scale.IsZero() {
		scale = core.Point{X: 1, Y: 1, Z: 1}
	}
	if scale.X != 1 {
		w.Double(41, scale.X)
	}
	if scale.Y != 1 {
		w.Double(42, scale.Y)
	}
	if scale.Z != 1 {
		w.Double(43, scale.Z)
	}
	if i.Rotation != 0 {
		w.Double(50, i.Rotation)
	}
	d.extrusion(i.Normal)
}

// attribs 属性归属于块参照，最后以 SEQEND 结束
func (d *docWriter) attribs(i *entities.Insert, owner, seq core.Handle, paper bool) {
	for _, a := range i.Attributes {
		if d.pre.Rejects(a) {
			continue
		}
		h := d.pre.Handle(a)
		d.common(a, h, owner, paper)
		d.attrib(a)
		d.xdata(a, h, nil)
	}
	d.seqEnd(i, seq, owner, paper)
}
