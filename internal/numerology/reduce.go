package numerology

// ReduceToSingleDigit repeatedly sums the decimal digits of n until a
// single digit remains, optionally stopping early when the running total
// is one of the preserved master numbers (§4.2.1).
func ReduceToSingleDigit(n int, keepMaster bool) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		if keepMaster && isMasterNumber(n) {
			return n
		}
		n = sumDigits(n)
	}
	return n
}

func sumDigits(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// ExtractLettersOnly returns only the ASCII letters of s, uppercased.
func ExtractLettersOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			out = append(out, toUpper(r))
		}
	}
	return string(out)
}

// ExtractVowels returns only the vowels (A, E, I, O, U; not Y) of s,
// uppercased.
func ExtractVowels(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range ExtractLettersOnly(s) {
		if isVowel(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// ExtractConsonants returns only the consonants of s, uppercased.
func ExtractConsonants(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range ExtractLettersOnly(s) {
		if !isVowel(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// CalculateFromText sums the letter values of text under system and
// reduces the total, preserving master numbers when keepMaster is set.
func CalculateFromText(system System, text string, keepMaster bool) int {
	if text == "" {
		return 0
	}
	values := letterValues(system)
	total := 0
	for _, r := range ExtractLettersOnly(text) {
		total += values[r]
	}
	return ReduceToSingleDigit(total, keepMaster)
}
