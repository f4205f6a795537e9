package preprocess

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// sample 按平滑方式在控制点上均匀取 count 个点。
// 开放曲线包含两个端点，闭合曲线不重复起点
func sample(ctrl []core.Point, smooth entities.SmoothType, closed bool, count int) []core.Point {
	if len(ctrl) < 2 || count < 2 {
		return append([]core.Point(nil), ctrl...)
	}
	if smooth == entities.SmoothBezier {
		return bezier(ctrl, closed, count)
	}
	degree := 3
	if smooth == entities.SmoothQuadratic {
		degree = 2
	}
	if closed {
		return periodic(ctrl, degree, count)
	}
	return clamped(ctrl, degree, count)
}

// clamped 钳制均匀 B 样条，曲线经过首末控制点
func clamped(ctrl []core.Point, degree, count int) []core.Point {
	n := len(ctrl)
	p := min(degree, n-1)
	knots := make([]float64, n+p+1)
	for i := range knots {
		switch {
		case i <= p:
			knots[i] = 0
		case i >= n:
			knots[i] = float64(n - p)
		default:
			knots[i] = float64(i - p)
		}
	}
	end := float64(n - p)
	out := make([]core.Point, count)
	for i := range out {
		u := end * float64(i) / float64(count-1)
		out[i] = deBoor(p, u, knots, ctrl)
	}
	return out
}

// periodic 周期均匀 B 样条，首尾 p 个控制点环绕
func periodic(ctrl []core.Point, degree, count int) []core.Point {
	n := len(ctrl)
	p := min(degree, n-1)
	pts := append(append([]core.Point(nil), ctrl...), ctrl[:p]...)
	knots := make([]float64, len(pts)+p+1)
	for i := range knots {
		knots[i] = float64(i)
	}
	out := make([]core.Point, count)
	for i := range out {
		u := float64(p) + float64(n)*float64(i)/float64(count)
		out[i] = deBoor(p, u, knots, pts)
	}
	return out
}

// deBoor 求节点区间内参数 u 处的点
func deBoor(p int, u float64, knots []float64, ctrl []core.Point) core.Point {
	m := len(ctrl)
	k := p
	for k < m-1 && u >= knots[k+1] {
		k++
	}
	d := make([]core.Point, p+1)
	for j := 0; j <= p; j++ {
		d[j] = ctrl[j+k-p]
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			lo, hi := knots[j+k-p], knots[j+1+k-r]
			alpha := 0.0
			if hi != lo {
				alpha = (u - lo) / (hi - lo)
			}
			d[j] = d[j-1].Scale(1 - alpha).Add(d[j].Scale(alpha))
		}
	}
	return d[p]
}

// bezier 以全部控制点为一段贝塞尔曲线
func bezier(ctrl []core.Point, closed bool, count int) []core.Point {
	pts := ctrl
	if closed {
		pts = append(append([]core.Point(nil), ctrl...), ctrl[0])
	}
	last := count - 1
	if closed {
		last = count
	}
	out := make([]core.Point, count)
	work := make([]core.Point, len(pts))
	for i := range out {
		t := float64(i) / float64(last)
		copy(work, pts)
		for r := len(work) - 1; r > 0; r-- {
			for j := 0; j < r; j++ {
				work[j] = work[j].Lerp(work[j+1], t)
			}
		}
		out[i] = work[0]
	}
	return out
}

// surface 张量积曲面，返回按 M 行、每行 N 个存放的点
func surface(mesh *entities.PolygonMesh, countM, countN int) []core.Point {
	m, n := int(mesh.M), int(mesh.N)
	rows := make([][]core.Point, m)
	for i := 0; i < m; i++ {
		row := make([]core.Point, n)
		for j := 0; j < n; j++ {
			row[j] = mesh.Vertex(i, j)
		}
		rows[i] = sample(row, mesh.Smooth, mesh.ClosedN, countN)
	}
	cols := make([][]core.Point, countN)
	for j := 0; j < countN; j++ {
		col := make([]core.Point, m)
		for i := 0; i < m; i++ {
			col[i] = rows[i][j]
		}
		cols[j] = sample(col, mesh.Smooth, mesh.ClosedM, countM)
	}
	out := make([]core.Point, 0, countM*countN)
	for i := 0; i < countM; i++ {
		for j := 0; j < countN; j++ {
			out = append(out, cols[j][i])
		}
	}
	return out
}
