package geometry

import "math"

// Mandala is a center/radius pattern with, per layer, one ring of petal
// circles spaced evenly around the centre and one polygon tracing that ring.
type Mandala struct {
	Center   Point
	Radius   float64
	Petals   int
	Layers   int
	Circles  []Circle
	Lines    []Line
	Polygons []Polygon
}

// MandalaPattern generates a layered mandala: each layer is a ring of
// `petals` small circles at an even angular spacing, connected to the
// centre, plus one petal-gon per layer tracing the ring.
func MandalaPattern(center Point, radius float64, petals, layers int) Mandala {
	m := Mandala{Center: center, Radius: radius, Petals: petals, Layers: layers}
	if petals <= 0 || layers <= 0 {
		return m
	}
	for layer := 1; layer <= layers; layer++ {
		layerRadius := radius * float64(layer) / float64(layers)
		var ring []Point
		for i := 0; i < petals; i++ {
			angle := 2 * math.Pi * float64(i) / float64(petals)
			p := Point{
				X: center.X + layerRadius*math.Cos(angle),
				Y: center.Y + layerRadius*math.Sin(angle),
			}
			ring = append(ring, p)
			m.Circles = append(m.Circles, Circle{Center: p, Radius: layerRadius / float64(petals)})
			m.Lines = append(m.Lines, Line{Start: center, End: p})
		}
		m.Polygons = append(m.Polygons, Polygon{Vertices: ring})
	}
	return m
}

// FlowerOfLifeCircles generates the classic seven-fold-then-expanding ring
// pattern: one centre circle, then `layers` concentric rings, ring n holding
// 6·n circles on a circle of radius n·unitRadius.
func FlowerOfLifeCircles(center Point, unitRadius float64, layers int) []Circle {
	circles := []Circle{{Center: center, Radius: unitRadius}}
	if layers <= 0 {
		return circles
	}
	for layer := 1; layer <= layers; layer++ {
		count := 6 * layer
		ringRadius := unitRadius * float64(layer)
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			p := Point{
				X: center.X + ringRadius*math.Cos(angle),
				Y: center.Y + ringRadius*math.Sin(angle),
			}
			circles = append(circles, Circle{Center: p, Radius: unitRadius})
		}
	}
	return circles
}

// SriYantraTriangles generates the nine interlocking triangles of the Sri
// Yantra: four upward-pointing (Shiva) and five downward-pointing (Shakti),
// nested at decreasing scale around a shared centre.
func SriYantraTriangles(center Point, radius float64) []Polygon {
	const upward = 4
	const downward = 5
	total := upward + downward
	triangles := make([]Polygon, 0, total)

	for i := 0; i < upward; i++ {
		scale := radius * (1 - float64(i)/float64(upward+1))
		triangles = append(triangles, equilateralTriangle(center, scale, false))
	}
	for i := 0; i < downward; i++ {
		scale := radius * (1 - float64(i)/float64(downward+1))
		triangles = append(triangles, equilateralTriangle(center, scale, true))
	}
	return triangles
}

func equilateralTriangle(center Point, radius float64, inverted bool) Polygon {
	base := -math.Pi / 2
	if inverted {
		base = math.Pi / 2
	}
	vertices := make([]Point, 0, 3)
	for i := 0; i < 3; i++ {
		angle := base + 2*math.Pi*float64(i)/3
		vertices = append(vertices, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return Polygon{Vertices: vertices}
}

// GoldenSpiralPoints generates points along a logarithmic spiral whose
// growth factor is the golden ratio per quarter turn, for `turns` full
// rotations.
func GoldenSpiralPoints(turns int) []Point {
	if turns <= 0 {
		return nil
	}
	const pointsPerTurn = 36
	total := turns * pointsPerTurn
	points := make([]Point, 0, total)
	growthPerRadian := math.Log(GoldenRatio) / (math.Pi / 2)

	for i := 0; i <= total; i++ {
		angle := 2 * math.Pi * float64(i) / float64(pointsPerTurn)
		r := math.Exp(growthPerRadian * angle)
		points = append(points, Point{
			X: r * math.Cos(angle),
			Y: r * math.Sin(angle),
		})
	}
	return points
}

// VesicaPiscis returns the two defining circles and their two intersection
// points for two equal-radius circles at the given centres (the classic
// construction places the centres one radius apart).
func VesicaPiscis(center1, center2 Point, radius float64) (circles []Circle, intersections []Point) {
	circles = []Circle{{Center: center1, Radius: radius}, {Center: center2, Radius: radius}}

	d := distance(center1, center2)
	if d == 0 || d > 2*radius {
		return circles, nil
	}
	// Standard two-circle intersection formula.
	a := d / 2
	h := math.Sqrt(radius*radius - a*a)
	midX := (center1.X + center2.X) / 2
	midY := (center1.Y + center2.Y) / 2
	dx := (center2.X - center1.X) / d
	dy := (center2.Y - center1.Y) / d

	p1 := Point{X: midX + h*(-dy), Y: midY + h*dx}
	p2 := Point{X: midX - h*(-dy), Y: midY - h*dx}
	return circles, []Point{p1, p2}
}
