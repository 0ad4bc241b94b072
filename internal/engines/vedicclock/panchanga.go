package vedicclock

import (
	"math"
	"time"

	"github.com/witnessos/engine-core/internal/astro"
)

// tithiNames lists all thirty lunar-day names: the first fifteen belong to
// the waxing (Shukla) half, the next fifteen to the waning (Krishna) half.
var tithiNames = []string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

var yogaNames = []string{
	"Vishkumbha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarman", "Dhriti", "Shoola", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// movableKaranas holds the seven movable karana (half-tithi) names, which
// repeat through the bulk of the lunar month. karanaName adds the four fixed
// ones: Kimstughna at the very start, and Shakuni/Chatushpada/Naga closing it.
var movableKaranas = []string{"Bava", "Balava", "Kaulava", "Taitila", "Garija", "Vanija", "Vishti"}

func karanaName(halfTithiIndex int) string {
	switch {
	case halfTithiIndex == 0:
		return "Kimstughna"
	case halfTithiIndex >= 57:
		return []string{"Shakuni", "Chatushpada", "Naga"}[halfTithiIndex-57]
	default:
		return movableKaranas[(halfTithiIndex-1)%7]
	}
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Panchanga is the resolved five-limb Vedic time state at a moment.
type Panchanga struct {
	Tithi               string          `json:"tithi"`
	Paksha              string          `json:"paksha"`
	Vara                string          `json:"vara"`
	Nakshatra           astro.Nakshatra `json:"nakshatra"`
	Yoga                string          `json:"yoga"`
	Karana              string          `json:"karana"`
	DominantElement     string          `json:"dominant_element"`
	EnergyQuality       string          `json:"energy_quality"`
	AuspiciousnessScore float64         `json:"auspiciousness_score"`
}

var elementCycle = []string{"Fire", "Earth", "Air", "Water", "Ether"}

func energyQuality(hour int) string {
	switch {
	case hour >= 6 && hour <= 10:
		return "Rising Energy"
	case hour <= 14:
		return "Peak Energy"
	case hour <= 18:
		return "Stable Energy"
	case hour <= 22:
		return "Descending Energy"
	default:
		return "Rest Energy"
	}
}

func auspiciousness(t time.Time) float64 {
	score := 0.5
	hour := t.Hour()
	if hour >= 6 && hour <= 18 {
		score += 0.2
	}
	switch t.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// calculatePanchanga derives the Vedic five-limb state at target from the
// real tropical Sun/Moon longitudes, sidereal-corrected.
func calculatePanchanga(eph astro.Ephemeris, target time.Time) (Panchanga, error) {
	jd := astro.JulianDay(target)
	positions, err := eph.Positions(jd, []astro.Body{astro.Sun, astro.Moon})
	if err != nil {
		return Panchanga{}, err
	}

	sunSidereal, err := astro.Sidereal(eph, jd, positions[astro.Sun].LongitudeDeg)
	if err != nil {
		return Panchanga{}, err
	}
	moonSidereal, err := astro.Sidereal(eph, jd, positions[astro.Moon].LongitudeDeg)
	if err != nil {
		return Panchanga{}, err
	}

	elongation := normalizeDegrees(moonSidereal - sunSidereal)
	tithiIndex := int(elongation / 12.0)
	if tithiIndex > 29 {
		tithiIndex = 29
	}
	paksha := "Shukla"
	if tithiIndex >= 15 {
		paksha = "Krishna"
	}

	halfTithiIndex := int(elongation / 6.0)
	if halfTithiIndex > 59 {
		halfTithiIndex = 59
	}

	yogaSum := normalizeDegrees(sunSidereal + moonSidereal)
	yogaIndex := int(yogaSum / (360.0 / 27.0))
	if yogaIndex > 26 {
		yogaIndex = 26
	}

	nakshatra := astro.NakshatraAt(moonSidereal)

	return Panchanga{
		Tithi:               tithiNames[tithiIndex],
		Paksha:              paksha,
		Vara:                target.Weekday().String(),
		Nakshatra:           nakshatra,
		Yoga:                yogaNames[yogaIndex],
		Karana:              karanaName(halfTithiIndex),
		DominantElement:     elementCycle[target.Hour()%len(elementCycle)],
		EnergyQuality:       energyQuality(target.Hour()),
		AuspiciousnessScore: auspiciousness(target),
	}, nil
}
