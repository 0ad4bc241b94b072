// Package numerology is the number-reduction primitives layer of §4.2:
// letter-value systems, digital-root reduction with master-number and
// karmic-debt awareness, and the standard Life Path/Expression/Soul
// Urge/Personality/Maturity/Personal Year family of derived numbers. It has
// no knowledge of any engine's request/response shape.
package numerology

// System selects a letter-to-number mapping.
type System string

const (
	Pythagorean System = "pythagorean"
	Chaldean    System = "chaldean"
)

var pythagoreanValues = map[rune]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8, 'I': 9,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'O': 6, 'P': 7, 'Q': 8, 'R': 9,
	'S': 1, 'T': 2, 'U': 3, 'V': 4, 'W': 5, 'X': 6, 'Y': 7, 'Z': 8,
}

var chaldeanValues = map[rune]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 8, 'G': 3, 'H': 5, 'I': 1,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'O': 7, 'P': 8, 'Q': 1, 'R': 2,
	'S': 3, 'T': 4, 'U': 6, 'V': 6, 'W': 6, 'X': 5, 'Y': 1, 'Z': 7,
}

// MasterNumbers are preserved by reduction when keepMaster is set.
var MasterNumbers = []int{11, 22, 33, 44}

// KarmicDebtNumbers flag a profile as carrying a karmic debt when any core
// number lands on one of these values before reduction masking.
var KarmicDebtNumbers = []int{13, 14, 16, 19}

func letterValues(system System) map[rune]int {
	if system == Chaldean {
		return chaldeanValues
	}
	return pythagoreanValues
}

func isMasterNumber(n int) bool {
	for _, m := range MasterNumbers {
		if n == m {
			return true
		}
	}
	return false
}

func isKarmicDebtNumber(n int) bool {
	for _, k := range KarmicDebtNumbers {
		if n == k {
			return true
		}
	}
	return false
}
