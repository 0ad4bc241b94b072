package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJulianDay_KnownEpoch(t *testing.T) {
	// 2000-01-01 12:00:00 UTC is JD 2451545.0 exactly.
	jd := JulianDay(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.InDelta(t, 2451545.0, jd, 0.0001)
}

func TestJulianDay_NormalisesNonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2000, 1, 1, 7, 0, 0, 0, loc) // 12:00 UTC
	jd := JulianDay(local)
	assert.InDelta(t, 2451545.0, jd, 0.0001)
}

func TestJulianDay_MonotonicWithTime(t *testing.T) {
	a := JulianDay(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	b := JulianDay(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.0, b-a, 0.0001)
}
