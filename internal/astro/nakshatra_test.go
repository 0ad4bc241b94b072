package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNakshatraAt_FirstAndLast(t *testing.T) {
	first := NakshatraAt(0)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "Ashwini", first.Name)
	assert.Equal(t, 1, first.Pada)

	last := NakshatraAt(359.9)
	assert.Equal(t, 26, last.Index)
	assert.Equal(t, "Revati", last.Name)
}

func TestNakshatraAt_PadaBoundaries(t *testing.T) {
	// Krittika starts at 2*13.333.. = 26.666.., each pada spans 3.333..
	base := 2 * nakshatraSpanDeg
	for pada := 1; pada <= 4; pada++ {
		lon := base + float64(pada-1)*padaSpanDeg + 0.01
		n := NakshatraAt(lon)
		assert.Equal(t, pada, n.Pada, "longitude %f", lon)
	}
}

func TestNakshatraAt_WrapsNegativeAndOverflow(t *testing.T) {
	n := NakshatraAt(-10)
	assert.Equal(t, NakshatraAt(350), n)
}

func TestNakshatraAt_LordCyclesEveryNine(t *testing.T) {
	a := NakshatraAt(0)
	b := NakshatraAt(9 * nakshatraSpanDeg)
	assert.Equal(t, a.LordOf, b.LordOf)
}
