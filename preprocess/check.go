package preprocess

import (
	"fmt"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// Rejection 无法合法写出的实体及原因
type Rejection struct {
	Entity entities.Entity
	Handle core.Handle
	Reason string
}

// check 返回空串表示实体可以写出
func check(e entities.Entity, version core.Version) string {
	switch v := e.(type) {
	case *entities.LWPolyline:
		if len(v.Vertices) < 2 {
			return fmt.Sprintf("lwpolyline has %d vertices, need at least 2", len(v.Vertices))
		}
	case *entities.Polyline2D:
		if len(v.Vertices) < 2 {
			return fmt.Sprintf("2d polyline has %d vertices, need at least 2", len(v.Vertices))
		}
	case *entities.Polyline3D:
		if len(v.Vertices) < 2 {
			return fmt.Sprintf("3d polyline has %d vertices, need at least 2", len(v.Vertices))
		}
	case *entities.PolyfaceMesh:
		if len(v.Vertices) == 0 || len(v.Faces) == 0 {
			return "polyface mesh has no vertices or faces"
		}
		for i, f := range v.Faces {
			if len(f) < 3 || len(f) > 4 {
				return fmt.Sprintf("polyface face %d has %d indices", i, len(f))
			}
			for _, idx := range f {
				if idx < 0 {
					idx = -idx
				}
				if idx == 0 || int(idx) > len(v.Vertices) {
					return fmt.Sprintf("polyface face %d references vertex %d", i, idx)
				}
			}
		}
	case *entities.PolygonMesh:
		if v.M < 2 || v.N < 2 || int(v.M)*int(v.N) != len(v.Vertices) {
			return fmt.Sprintf("polygon mesh %dx%d has %d vertices", v.M, v.N, len(v.Vertices))
		}
	case *entities.Leader:
		if len(v.Vertices) < 2 {
			return fmt.Sprintf("leader has %d vertices, need at least 2", len(v.Vertices))
		}
	case *entities.MLine:
		if len(v.Vertices) < 2 {
			return fmt.Sprintf("mline has %d vertices, need at least 2", len(v.Vertices))
		}
	case *entities.Hatch:
		if len(v.Paths) == 0 {
			return "hatch has no boundary paths"
		}
	case *entities.Spline:
		if len(v.ControlPoints) == 0 && len(v.FitPoints) == 0 {
			return "spline has neither control points nor fit points"
		}
		if len(v.ControlPoints) == 0 && !version.AtLeast(core.AC1018) {
			return fmt.Sprintf("fit-point-only spline needs %s or later", core.AC1018)
		}
		if len(v.ControlPoints) > 0 && len(v.ControlPoints) <= int(v.Degree) {
			return fmt.Sprintf("spline of degree %d has %d control points", v.Degree, len(v.ControlPoints))
		}
		if len(v.Knots) > 0 && len(v.Knots) != len(v.ControlPoints)+int(v.Degree)+1 {
			return fmt.Sprintf("spline has %d knots, want %d", len(v.Knots), len(v.ControlPoints)+int(v.Degree)+1)
		}
		if len(v.Weights) > 0 && len(v.Weights) != len(v.ControlPoints) {
			return fmt.Sprintf("spline has %d weights for %d control points", len(v.Weights), len(v.ControlPoints))
		}
	case *entities.Underlay:
		if !version.AtLeast(core.AC1021) {
			return fmt.Sprintf("%s needs %s or later", v.Type(), core.AC1021)
		}
	case *entities.Mesh:
		if !version.AtLeast(core.AC1024) {
			return fmt.Sprintf("MESH needs %s or later", core.AC1024)
		}
		if len(v.Vertices) == 0 || len(v.Faces) == 0 {
			return "mesh has no vertices or faces"
		}
	case *entities.Wipeout:
		if len(v.Boundary) < 2 {
			return "wipeout boundary needs at least 2 points"
		}
	}
	return ""
}
