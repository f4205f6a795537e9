package core

import (
	"math"

	"github.com/zooyer/golib/xmath"
)

// Epsilon 浮点比较的默认容差
const Epsilon = 1e-12

// Point 代表三维空间中的一个点，同时用作向量
type Point struct {
	X, Y, Z float64
}

// Vec2 二维点，用于多段线顶点、填充边界等平面数据
type Vec2 struct {
	X, Y float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

var (
	Origin = Point{}
	XAxis  = Point{X: 1}
	YAxis  = Point{Y: 1}
	ZAxis  = Point{Z: 1}
)

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f, p.Z * f} }

func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

func (p Point) Cross(o Point) Point {
	return Point{
		X: p.Y*o.Z - p.Z*o.Y,
		Y: p.Z*o.X - p.X*o.Z,
		Z: p.X*o.Y - p.Y*o.X,
	}
}

func (p Point) Length() float64 { return math.Sqrt(p.Dot(p)) }

// Normalize 返回单位向量，零向量原样返回
func (p Point) Normalize() Point {
	l := p.Length()
	if xmath.Equal(l, 0, Epsilon) {
		return p
	}
	return p.Scale(1 / l)
}

// Equal 在容差 epsilon 内逐分量比较
func (p Point) Equal(o Point, epsilon float64) bool {
	return xmath.Equal(p.X, o.X, epsilon) && xmath.Equal(p.Y, o.Y, epsilon) && xmath.Equal(p.Z, o.Z, epsilon)
}

func (p Point) IsZero() bool { return p.Equal(Origin, Epsilon) }

// XY 丢弃 Z 分量
func (p Point) XY() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Lerp 线性插值，t=0 返回 p，t=1 返回 o
func (p Point) Lerp(o Point, t float64) Point {
	return p.Add(o.Sub(p).Scale(t))
}

// Point 把二维点抬升为 z 高度上的三维点
func (v Vec2) Point(z float64) Point { return Point{X: v.X, Y: v.Y, Z: z} }

func (v Vec2) Equal(o Vec2, epsilon float64) bool {
	return xmath.Equal(v.X, o.X, epsilon) && xmath.Equal(v.Y, o.Y, epsilon)
}

// NewBBox 返回可用于 Extend 的空包围盒
func NewBBox() BBox {
	return BBox{
		Min: Point{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: Point{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// Empty 包围盒尚未包含任何点
func (b BBox) Empty() bool { return b.Min.X > b.Max.X }

// Extend 扩展包围盒以包含 p
func (b BBox) Extend(points ...Point) BBox {
	for _, p := range points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// Union 合并两个包围盒，空盒不参与
func (b BBox) Union(o BBox) BBox {
	if o.Empty() {
		return b
	}
	return b.Extend(o.Min, o.Max)
}
