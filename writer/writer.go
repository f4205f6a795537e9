// Package writer 把 dxf.Document 写成文本或二进制 DXF。
//
// 写出分三步：版本检查；预处理（分配句柄、展开多段线、合成 SEQEND 与反应器）；
// 按 HEADER、CLASSES、TABLES、BLOCKS、ENTITIES、OBJECTS 的顺序输出。
package writer

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/codec"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/preprocess"
)

// docWriter 一次写出的上下文，写完即丢弃
type docWriter struct {
	doc     *dxf.Document
	pre     *preprocess.Result
	w       *codec.Writer
	m       *machine
	version core.Version
	log     *log.Logger
	res     *Result
	skip    map[entities.Entity]bool
	err     error
}

// Write 将文档写到 w。版本不受支持时不写出任何内容
func Write(w io.Writer, doc *dxf.Document, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	version := doc.Header.Version
	if !version.Supported() {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "%s (%s), need %s or later", version, version.Release(), core.MinVersion)
	}

	pre, err := preprocess.Run(doc, core.NewHandleAllocator(1))
	if err != nil {
		return nil, errors.Wrap(err, "preprocess")
	}

	res := &Result{Version: version, Seed: pre.Seed}
	skip := make(map[entities.Entity]bool)
	for _, r := range pre.Rejected {
		skip[r.Entity] = true
		res.Issues = append(res.Issues, Issue{Type: r.Entity.Type(), Handle: r.Handle, Reason: r.Reason})
	}
	for _, s := range pre.Spaces {
		for _, e := range s.Entities {
			if !skip[e] && !known(e) {
				skip[e] = true
				res.Issues = append(res.Issues, Issue{Type: e.Type(), Handle: pre.Handle(e), Reason: "unsupported entity kind"})
			}
		}
	}
	if len(res.Issues) > 0 {
		if opts.Strict {
			return nil, &ValidationError{Issues: res.Issues}
		}
		for _, i := range res.Issues {
			logger.Warn("skip entity", "type", i.Type, "handle", i.Handle, "reason", i.Reason)
		}
	}

	var sink codec.Sink
	if opts.Binary {
		sink = codec.NewBinarySink(w)
	} else {
		sink = codec.NewTextSink(w)
	}
	cw := codec.NewWriter(sink, codec.NewEncoder(version))
	d := &docWriter{
		doc:     doc,
		pre:     pre,
		w:       cw,
		m:       newMachine(cw),
		version: version,
		log:     logger,
		res:     res,
		skip:    skip,
	}
	d.write()

	if err = cw.Flush(); err != nil {
		return nil, errors.Wrap(err, "write dxf")
	}
	if d.err != nil {
		return nil, d.err
	}
	logger.Debug("dxf written", "version", version, "entities", res.Entities, "handseed", res.Seed, "binary", opts.Binary)
	return res, nil
}

// WriteFile 写到文件，出错时删除写了一半的文件
func WriteFile(filename string, doc *dxf.Document, opts Options) (res *Result, err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
		if err != nil {
			_ = os.Remove(filename)
		}
	}()

	return Write(file, doc, opts)
}

// fail 记录第一个错误，写出继续进行，最终由 Write 返回
func (d *docWriter) fail(err error) {
	if err != nil && d.err == nil {
		d.err = err
	}
}

func (d *docWriter) write() {
	for _, c := range d.doc.Comments {
		d.w.Comment(c)
	}

	d.m.beginSection(sectionHeader)
	d.header()
	d.m.endSection()

	d.m.beginSection(sectionClasses)
	d.classes()
	d.m.endSection()

	d.m.beginSection(sectionTables)
	d.tables()
	d.m.endSection()

	d.m.beginSection(sectionBlocks)
	d.blocks()
	d.m.endSection()

	d.m.beginSection(sectionEntities)
	for _, s := range d.pre.Spaces[:2] {
		d.log.Debug("write entities", "space", s.Name, "count", len(s.Entities))
		for _, e := range s.Entities {
			d.entity(e, s.Record, s.Paper)
		}
	}
	d.m.endSection()

	d.m.beginSection(sectionObjects)
	d.objects()
	d.m.endSection()

	d.m.eof()
}
