package vedicclock

// organSlot is one two-hour window of the traditional Chinese medicine
// organ clock, keyed by the hour at which its window begins (23:00-01:00
// is keyed at 23 and wraps across midnight).
type organSlot struct {
	StartHour int
	Organ     string
	Element   string
}

// organClock is the complete twelve-organ cycle. The two organs of each
// element occupy adjacent windows, matching classical TCM teaching
// (Gallbladder/Liver, Lung/Large Intestine, and so on); whether the yin or
// the yang organ of a pair comes first alternates around the clock.
var organClock = []organSlot{
	{23, "Gallbladder", "Wood"},
	{1, "Liver", "Wood"},
	{3, "Lung", "Metal"},
	{5, "Large Intestine", "Metal"},
	{7, "Stomach", "Earth"},
	{9, "Spleen", "Earth"},
	{11, "Heart", "Fire"},
	{13, "Small Intestine", "Fire"},
	{15, "Bladder", "Water"},
	{17, "Kidney", "Water"},
	{19, "Pericardium", "Fire"},
	{21, "Triple Heater", "Fire"},
}

// secondaryOrgan maps a primary organ to its paired organ in the same
// element, used when only the five classical yin organs are named.
var secondaryOrgan = map[string]string{
	"Liver":  "Gallbladder",
	"Heart":  "Small Intestine",
	"Spleen": "Stomach",
	"Lung":   "Large Intestine",
	"Kidney": "Bladder",
}

func resolveSecondaryOrgan(primary string) string {
	if s, ok := secondaryOrgan[primary]; ok {
		return s
	}
	return "Supporting Organ"
}

var optimalActivities = map[string][]string{
	"Liver":  {"Creative work", "Planning", "Detoxification", "Gentle exercise"},
	"Heart":  {"Social connection", "Joyful activities", "Meditation", "Heart-opening practices"},
	"Spleen": {"Nourishing meals", "Grounding practices", "Organizing", "Earth connection"},
	"Lung":   {"Breathing exercises", "Fresh air activities", "Letting go practices", "Inspiration work"},
	"Kidney": {"Rest", "Reflection", "Water activities", "Willpower building"},
}

var avoidActivities = map[string][]string{
	"Liver":  {"Heavy meals", "Alcohol", "Anger", "Overwork"},
	"Heart":  {"Stress", "Overstimulation", "Conflict", "Heavy exercise"},
	"Spleen": {"Cold foods", "Worry", "Overthinking", "Irregular eating"},
	"Lung":   {"Pollution", "Grief", "Shallow breathing", "Isolation"},
	"Kidney": {"Overexertion", "Fear", "Excessive salt", "Dehydration"},
}

func lookupActivities(m map[string][]string, organ string, fallback []string) []string {
	if v, ok := m[organ]; ok {
		return v
	}
	return fallback
}

// organStateAt resolves the organ clock slot covering the given hour
// (0-23) and its energy direction within that two-hour window.
func organStateAt(hour, minute int) (organ, element, energyDirection string) {
	idx := 0
	for i, slot := range organClock {
		next := organClock[(i+1)%len(organClock)].StartHour
		inWindow := false
		if slot.StartHour < next {
			inWindow = hour >= slot.StartHour && hour < next
		} else {
			// wraps past midnight (the 23:00 Gallbladder slot)
			inWindow = hour >= slot.StartHour || hour < next
		}
		if inWindow {
			idx = i
			break
		}
	}
	slot := organClock[idx]
	minutesIntoWindow := (hour-slot.StartHour+24)%24*60 + minute
	if minutesIntoWindow >= 60 {
		return slot.Organ, slot.Element, "peak"
	}
	return slot.Organ, slot.Element, "ascending"
}
