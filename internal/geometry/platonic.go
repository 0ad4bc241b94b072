package geometry

import "math"

// Vertex3D is a point in 3D space, used only by the Platonic-solid
// generator (every other pattern in this package is planar).
type Vertex3D struct {
	X, Y, Z float64
}

// PlatonicSolidVertices returns the vertex set of the named Platonic solid,
// centred on the origin with circumradius 1. Unknown names return nil.
func PlatonicSolidVertices(name string) []Vertex3D {
	switch name {
	case "tetrahedron":
		return normalizeAll([]Vertex3D{
			{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
		})
	case "cube", "hexahedron":
		var v []Vertex3D
		for _, x := range []float64{-1, 1} {
			for _, y := range []float64{-1, 1} {
				for _, z := range []float64{-1, 1} {
					v = append(v, Vertex3D{x, y, z})
				}
			}
		}
		return normalizeAll(v)
	case "octahedron":
		return normalizeAll([]Vertex3D{
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
		})
	case "dodecahedron":
		return normalizeAll(dodecahedronVertices())
	case "icosahedron":
		return normalizeAll(icosahedronVertices())
	default:
		return nil
	}
}

func normalizeAll(vertices []Vertex3D) []Vertex3D {
	out := make([]Vertex3D, len(vertices))
	for i, v := range vertices {
		length := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		if length == 0 {
			out[i] = v
			continue
		}
		out[i] = Vertex3D{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
	}
	return out
}

func dodecahedronVertices() []Vertex3D {
	phi := GoldenRatio
	inv := 1 / phi
	var v []Vertex3D
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				v = append(v, Vertex3D{x, y, z})
			}
		}
	}
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-1, 1} {
			v = append(v, Vertex3D{0, a * inv, b * phi})
			v = append(v, Vertex3D{a * inv, b * phi, 0})
			v = append(v, Vertex3D{a * phi, 0, b * inv})
		}
	}
	return v
}

func icosahedronVertices() []Vertex3D {
	phi := GoldenRatio
	var v []Vertex3D
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-1, 1} {
			v = append(v, Vertex3D{0, a, b * phi})
			v = append(v, Vertex3D{a, b * phi, 0})
			v = append(v, Vertex3D{a * phi, 0, b})
		}
	}
	return v
}
