package vedicclock

// ElementalSynthesis describes how well the Vedic Panchanga's dominant
// element and the TCM organ clock's active element resonate.
type ElementalSynthesis struct {
	VedicElement        string   `json:"vedic_element"`
	TCMElement          string   `json:"tcm_element"`
	HarmonyLevel        float64  `json:"harmony_level"`
	SynthesisQuality    string   `json:"synthesis_quality"`
	RecommendedPractices []string `json:"recommended_practices"`
}

type elementPair struct{ vedic, tcm string }

var vedicTCMHarmony = map[elementPair]float64{
	{"Fire", "Fire"}:  1.0,
	{"Fire", "Wood"}:  0.8,
	{"Earth", "Earth"}: 1.0,
	{"Earth", "Metal"}: 0.7,
	{"Air", "Metal"}:   0.9,
	{"Water", "Water"}: 1.0,
	{"Water", "Wood"}:  0.8,
	{"Ether", "Fire"}:  0.9,
}

var harmonizingPractices = map[elementPair][]string{
	{"Fire", "Fire"}:   {"Fire meditation", "Sun gazing", "Candle work", "Heart coherence"},
	{"Fire", "Wood"}:   {"Creative expression", "Growth visualization", "Tree meditation"},
	{"Earth", "Earth"}: {"Grounding practices", "Earth connection", "Stability meditation"},
	{"Air", "Metal"}:   {"Breathing practices", "Sound healing", "Mental clarity work"},
	{"Water", "Water"}: {"Flow meditation", "Emotional release", "Water ceremonies"},
}

func synthesisQuality(harmony float64) string {
	switch {
	case harmony >= 1.0:
		return "Perfect Harmony"
	case harmony >= 0.9:
		return "Excellent Synergy"
	case harmony >= 0.8:
		return "Good Resonance"
	case harmony >= 0.7:
		return "Moderate Alignment"
	case harmony >= 0.6:
		return "Neutral Balance"
	default:
		return "Requires Balancing"
	}
}

func synthesizeElements(vedicElement, tcmElement string) ElementalSynthesis {
	key := elementPair{vedicElement, tcmElement}
	harmony, ok := vedicTCMHarmony[key]
	if !ok {
		harmony = 0.6
	}
	practices, ok := harmonizingPractices[key]
	if !ok {
		practices = []string{"Elemental balancing", "Mindful integration", "Energy harmonization"}
	}
	return ElementalSynthesis{
		VedicElement:         vedicElement,
		TCMElement:           tcmElement,
		HarmonyLevel:         harmony,
		SynthesisQuality:     synthesisQuality(harmony),
		RecommendedPractices: practices,
	}
}
