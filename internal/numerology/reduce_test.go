package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceToSingleDigit_Basic(t *testing.T) {
	assert.Equal(t, 6, ReduceToSingleDigit(42, true))
	assert.Equal(t, 1, ReduceToSingleDigit(19, false))
}

func TestReduceToSingleDigit_PreservesMasterNumbers(t *testing.T) {
	assert.Equal(t, 11, ReduceToSingleDigit(11, true))
	assert.Equal(t, 22, ReduceToSingleDigit(22, true))
	assert.Equal(t, 2, ReduceToSingleDigit(11, false))
}

func TestReduceToSingleDigit_ReducesThroughMasterCandidate(t *testing.T) {
	// 29 -> 11, which is itself a master number and should be kept.
	assert.Equal(t, 11, ReduceToSingleDigit(29, true))
}

func TestExtractLettersOnly(t *testing.T) {
	assert.Equal(t, "JOHNSMITH", ExtractLettersOnly("John Smith-123!"))
}

func TestExtractVowelsAndConsonants(t *testing.T) {
	assert.Equal(t, "OAIAI", ExtractVowels("John Adrian Smith"))
	assert.Equal(t, "JHNDRNSMTH", ExtractConsonants("John Adrian Smith"))
}

func TestCalculateFromText_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, CalculateFromText(Pythagorean, "", true))
}

func TestCalculateFromText_SystemsDiffer(t *testing.T) {
	pyth := CalculateFromText(Pythagorean, "JOHN", true)
	chal := CalculateFromText(Chaldean, "JOHN", true)
	assert.NotEqual(t, pyth, chal)
}
