package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEliminateDuplicateLetters_KeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, "MISP", EliminateDuplicateLetters("mississippi"))
}

func TestEliminateDuplicateLetters_StripsNonLetters(t *testing.T) {
	assert.Equal(t, "ABC", EliminateDuplicateLetters("abc 123!!"))
}

func TestLettersToNumbers_AlphabetPositions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 26}, LettersToNumbers("ABZ"))
}

func TestNumbersToGeometry_RadialOnePointPerNumber(t *testing.T) {
	points := NumbersToGeometry([]int{1, 2, 3}, PlacementRadial)
	assert.Len(t, points, 3)
}

func TestNumbersToGeometry_GridPlacementWithinUnitSquare(t *testing.T) {
	points := NumbersToGeometry([]int{1, 2, 3, 4, 5}, PlacementGrid)
	assert.Len(t, points, 5)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 1.0)
	}
}

func TestConnectPoints_SequentialOneFewerThanPoints(t *testing.T) {
	points := []Point{{X: 0}, {X: 1}, {X: 2}}
	lines := ConnectPoints(points, ConnectSequential)
	assert.Len(t, lines, 2)
}

func TestConnectPoints_StarOnePerPoint(t *testing.T) {
	points := []Point{{X: 0}, {X: 1}, {X: 2}}
	lines := ConnectPoints(points, ConnectStar)
	assert.Len(t, lines, 3)
}

func TestConnectPoints_WebIsComplete(t *testing.T) {
	points := []Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	lines := ConnectPoints(points, ConnectWeb)
	// n*(n-1)/2 edges in a complete graph
	assert.Len(t, lines, 6)
}

func TestGenerateTraditionalSigil_AlwaysHasCenterDecoration(t *testing.T) {
	sigil := GenerateTraditionalSigil("Financial Freedom")
	assert.Equal(t, Point{X: 0.5, Y: 0.5}, sigil.Center)
	assert.NotEmpty(t, sigil.DecorationCircles)
	assert.Equal(t, sigil.Center, sigil.DecorationCircles[0].Center)
}

func TestGenerateTraditionalSigil_DeterministicForSameIntention(t *testing.T) {
	a := GenerateTraditionalSigil("Creative flow")
	b := GenerateTraditionalSigil("Creative flow")
	assert.Equal(t, a, b)
}
