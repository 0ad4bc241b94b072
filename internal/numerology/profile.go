package numerology

import (
	"fmt"
	"time"
)

// CoreNumbers holds the four numbers most numerology systems treat as a
// person's foundation (§4.2.1).
type CoreNumbers struct {
	LifePath    int
	Expression  int
	SoulUrge    int
	Personality int
}

// Bridges describes the gaps between paired core numbers, read as the
// friction/flow between what a person is for (Life Path) and how they
// express it (Expression), and between inner desire and outer persona.
type Bridges struct {
	LifeExpressionBridge  int
	SoulPersonalityBridge int
}

// Profile is the complete numerology reading for one name/birth-date pair.
type Profile struct {
	System            System
	Core              CoreNumbers
	Maturity          int
	PersonalYear      int
	Bridges           Bridges
	MasterNumbers     []int
	KarmicDebt        []int
	FullName          string
	LettersOnly       string
	Vowels            string
	Consonants        string
	BirthDate         time.Time
	CalculationYear   int
}

// LifePath reduces the digits of a birth date (MMDDYYYY, matching the
// reference US-formatted convention) to the Life Path number, preserving
// master numbers.
func LifePath(birthDate time.Time) int {
	digits := fmt.Sprintf("%02d%02d%04d", int(birthDate.Month()), birthDate.Day(), birthDate.Year())
	total := 0
	for _, r := range digits {
		total += int(r - '0')
	}
	return ReduceToSingleDigit(total, true)
}

// Expression reduces the full birth name's letter values to the Expression
// (Destiny) number.
func Expression(system System, fullName string) int {
	return CalculateFromText(system, fullName, true)
}

// SoulUrge reduces the vowels of the full birth name to the Soul Urge
// (Heart's Desire) number.
func SoulUrge(system System, fullName string) int {
	return CalculateFromText(system, ExtractVowels(fullName), true)
}

// Personality reduces the consonants of the full birth name to the
// Personality number.
func Personality(system System, fullName string) int {
	return CalculateFromText(system, ExtractConsonants(fullName), true)
}

// Maturity combines Life Path and Expression into the number a person
// grows into in the second half of life.
func Maturity(lifePath, expression int) int {
	return ReduceToSingleDigit(lifePath+expression, true)
}

// PersonalYear reduces the birth month/day combined with a target year;
// personal-year numbers never preserve master numbers.
func PersonalYear(birthDate time.Time, year int) int {
	digits := fmt.Sprintf("%02d%02d%04d", int(birthDate.Month()), birthDate.Day(), year)
	total := 0
	for _, r := range digits {
		total += int(r - '0')
	}
	return ReduceToSingleDigit(total, false)
}

// PersonalMonth reduces the Personal Year plus a target month.
func PersonalMonth(birthDate time.Time, year, month int) int {
	return ReduceToSingleDigit(PersonalYear(birthDate, year)+month, false)
}

// PersonalDay reduces the Personal Month plus a target day.
func PersonalDay(birthDate, targetDate time.Time) int {
	pm := PersonalMonth(birthDate, targetDate.Year(), int(targetDate.Month()))
	return ReduceToSingleDigit(pm+targetDate.Day(), false)
}

// CalculateBridges computes the two bridge numbers between the core pairs.
func CalculateBridges(core CoreNumbers) Bridges {
	return Bridges{
		LifeExpressionBridge:  abs(core.LifePath - core.Expression),
		SoulPersonalityBridge: abs(core.SoulUrge - core.Personality),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IdentifyMasterNumbers returns, sorted, the distinct master numbers found
// among the core numbers.
func IdentifyMasterNumbers(core CoreNumbers) []int {
	seen := map[int]bool{}
	var out []int
	for _, n := range []int{core.LifePath, core.Expression, core.SoulUrge, core.Personality} {
		if isMasterNumber(n) && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sortInts(out)
	return out
}

// IdentifyKarmicDebt returns, sorted, the distinct karmic debt numbers
// found among the core numbers.
func IdentifyKarmicDebt(core CoreNumbers) []int {
	seen := map[int]bool{}
	var out []int
	for _, n := range []int{core.LifePath, core.Expression, core.SoulUrge, core.Personality} {
		if isKarmicDebtNumber(n) && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sortInts(out)
	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// CalculateProfile assembles a complete numerology profile for a name and
// birth date, matching the reference system's "complete profile" shape.
func CalculateProfile(system System, fullName string, birthDate time.Time, calculationYear int) Profile {
	core := CoreNumbers{
		LifePath:    LifePath(birthDate),
		Expression:  Expression(system, fullName),
		SoulUrge:    SoulUrge(system, fullName),
		Personality: Personality(system, fullName),
	}

	return Profile{
		System:          system,
		Core:            core,
		Maturity:        Maturity(core.LifePath, core.Expression),
		PersonalYear:    PersonalYear(birthDate, calculationYear),
		Bridges:         CalculateBridges(core),
		MasterNumbers:   IdentifyMasterNumbers(core),
		KarmicDebt:      IdentifyKarmicDebt(core),
		FullName:        fullName,
		LettersOnly:     ExtractLettersOnly(fullName),
		Vowels:          ExtractVowels(fullName),
		Consonants:      ExtractConsonants(fullName),
		BirthDate:       birthDate,
		CalculationYear: calculationYear,
	}
}
