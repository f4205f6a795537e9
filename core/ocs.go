package core

import "math"

// 任意轴算法的阈值 1/64
const arbitraryAxisLimit = 1.0 / 64.0

// ArbitraryAxis 按 DXF 任意轴算法由法向量求 OCS 的三个轴
func ArbitraryAxis(normal Point) (ax, ay, az Point) {
	az = normal.Normalize()
	if az.IsZero() {
		az = ZAxis
	}
	if math.Abs(az.X) < arbitraryAxisLimit && math.Abs(az.Y) < arbitraryAxisLimit {
		ax = YAxis.Cross(az).Normalize()
	} else {
		ax = ZAxis.Cross(az).Normalize()
	}
	ay = az.Cross(ax).Normalize()
	return
}

// IsWorldZ 法向量是否就是 WCS 的 Z 轴（此时 OCS 与 WCS 重合）
func IsWorldZ(normal Point) bool {
	return normal.Normalize().Equal(ZAxis, 1e-9)
}

// WorldToObject 将 WCS 点转换到法向量 normal 决定的 OCS
func WorldToObject(p, normal Point) Point {
	if IsWorldZ(normal) {
		return p
	}
	ax, ay, az := ArbitraryAxis(normal)
	return Point{X: p.Dot(ax), Y: p.Dot(ay), Z: p.Dot(az)}
}

// ObjectToWorld 将 OCS 点转换回 WCS
func ObjectToWorld(p, normal Point) Point {
	if IsWorldZ(normal) {
		return p
	}
	ax, ay, az := ArbitraryAxis(normal)
	return ax.Scale(p.X).Add(ay.Scale(p.Y)).Add(az.Scale(p.Z))
}

// WorldToObjectAll 批量转换
func WorldToObjectAll(points []Point, normal Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = WorldToObject(p, normal)
	}
	return out
}
