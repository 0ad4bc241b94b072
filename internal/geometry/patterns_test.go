package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMandalaPattern_PetalsAndLayersCounts(t *testing.T) {
	m := MandalaPattern(Point{}, 10, 8, 3)
	assert.Len(t, m.Polygons, 3)
	assert.Len(t, m.Circles, 8*3)
	assert.Len(t, m.Lines, 8*3)
	for _, poly := range m.Polygons {
		assert.Len(t, poly.Vertices, 8)
	}
}

func TestMandalaPattern_ZeroPetalsIsEmpty(t *testing.T) {
	m := MandalaPattern(Point{}, 10, 0, 3)
	assert.Empty(t, m.Circles)
}

func TestFlowerOfLifeCircles_RingSizesGrow(t *testing.T) {
	circles := FlowerOfLifeCircles(Point{}, 1, 2)
	// 1 center + 6 (layer 1) + 12 (layer 2)
	assert.Len(t, circles, 1+6+12)
}

func TestSriYantraTriangles_NineTriangles(t *testing.T) {
	triangles := SriYantraTriangles(Point{}, 1)
	assert.Len(t, triangles, 9)
	for _, tr := range triangles {
		assert.Len(t, tr.Vertices, 3)
	}
}

func TestGoldenSpiralPoints_ScalesWithTurns(t *testing.T) {
	one := GoldenSpiralPoints(1)
	two := GoldenSpiralPoints(2)
	assert.Less(t, len(one), len(two))
}

func TestGoldenSpiralPoints_ZeroTurnsEmpty(t *testing.T) {
	assert.Empty(t, GoldenSpiralPoints(0))
}

func TestVesicaPiscis_IntersectionsSymmetric(t *testing.T) {
	c1 := Point{X: -0.5, Y: 0}
	c2 := Point{X: 0.5, Y: 0}
	_, intersections := VesicaPiscis(c1, c2, 1)
	if assert.Len(t, intersections, 2) {
		assert.InDelta(t, intersections[0].Y, -intersections[1].Y, 0.0001)
	}
}

func TestVesicaPiscis_TooFarApartNoIntersection(t *testing.T) {
	_, intersections := VesicaPiscis(Point{X: 0}, Point{X: 10}, 1)
	assert.Empty(t, intersections)
}

func TestPlatonicSolidVertices_KnownCounts(t *testing.T) {
	assert.Len(t, PlatonicSolidVertices("tetrahedron"), 4)
	assert.Len(t, PlatonicSolidVertices("cube"), 8)
	assert.Len(t, PlatonicSolidVertices("octahedron"), 6)
	assert.Len(t, PlatonicSolidVertices("dodecahedron"), 20)
	assert.Len(t, PlatonicSolidVertices("icosahedron"), 12)
}

func TestPlatonicSolidVertices_UnknownReturnsNil(t *testing.T) {
	assert.Nil(t, PlatonicSolidVertices("not-a-solid"))
}

func TestPlatonicSolidVertices_AllUnitCircumradius(t *testing.T) {
	for _, name := range []string{"tetrahedron", "cube", "octahedron", "dodecahedron", "icosahedron"} {
		for _, v := range PlatonicSolidVertices(name) {
			length := v.X*v.X + v.Y*v.Y + v.Z*v.Z
			assert.InDelta(t, 1.0, length, 0.0001, "solid=%s vertex=%+v", name, v)
		}
	}
}
