package numerology

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLifePath_KnownDate(t *testing.T) {
	// "11221990" digit sum: 1+1+2+2+1+9+9+0 = 25 -> 7
	d := time.Date(1990, 11, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, LifePath(d))
}

func TestLifePath_PreservesMasterNumber(t *testing.T) {
	// 01/17/1983 -> 0+1+1+7+1+9+8+3 = 30 -> 3 (sanity, not master)
	// 11/29/1990 -> 1+1+2+9+1+9+9+0 = 32 -> 5 (sanity, not master)
	// 01/09/1990 -> 0+1+0+9+1+9+9+0 = 29 -> 11, a master number, and stops.
	d := time.Date(1990, 1, 9, 0, 0, 0, 0, time.UTC)
	lp := LifePath(d)
	assert.Equal(t, 11, lp)
}

func TestCalculateProfile_BridgesAndMasters(t *testing.T) {
	d := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	p := CalculateProfile(Pythagorean, "Jane Marie Doe", d, 2026)

	assert.Equal(t, Pythagorean, p.System)
	assert.Equal(t, abs(p.Core.LifePath-p.Core.Expression), p.Bridges.LifeExpressionBridge)
	assert.Equal(t, abs(p.Core.SoulUrge-p.Core.Personality), p.Bridges.SoulPersonalityBridge)
	assert.Equal(t, "JANEMARIEDOE", p.LettersOnly)
	assert.Equal(t, 2026, p.CalculationYear)
}

func TestIdentifyMasterNumbers_DeduplicatesAndSorts(t *testing.T) {
	core := CoreNumbers{LifePath: 22, Expression: 11, SoulUrge: 22, Personality: 5}
	assert.Equal(t, []int{11, 22}, IdentifyMasterNumbers(core))
}

func TestIdentifyKarmicDebt_Empty(t *testing.T) {
	core := CoreNumbers{LifePath: 1, Expression: 2, SoulUrge: 3, Personality: 4}
	assert.Empty(t, IdentifyKarmicDebt(core))
}

func TestIdentifyKarmicDebt_Finds(t *testing.T) {
	core := CoreNumbers{LifePath: 13, Expression: 2, SoulUrge: 19, Personality: 4}
	assert.Equal(t, []int{13, 19}, IdentifyKarmicDebt(core))
}

func TestPersonalYear_NeverPreservesMasterNumbers(t *testing.T) {
	d := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	for year := 2020; year < 2030; year++ {
		py := PersonalYear(d, year)
		assert.LessOrEqual(t, py, 9)
	}
}

func TestPersonalDay_ChainsThroughMonthAndYear(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	pd := PersonalDay(birth, target)
	assert.GreaterOrEqual(t, pd, 1)
	assert.LessOrEqual(t, pd, 9)
}
