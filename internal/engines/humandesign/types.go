package humandesign

import "strconv"

// TypeInfo describes one of the four Human Design types' fixed attributes.
type TypeInfo struct {
	Name        string
	Strategy    string
	Authority   string
	Signature   string
	NotSelf     string
	Percentage  float64
	Description string
	LifePurpose string
}

var typeTable = map[string]TypeInfo{
	"Generator": {
		Name: "Generator", Strategy: "To Respond", Authority: "Sacral Authority",
		Signature: "Satisfaction", NotSelf: "Frustration", Percentage: 70.0,
		Description: "The life force of the planet, designed to build and create",
		LifePurpose: "To master something they love and find satisfaction in their work",
	},
	"Manifestor": {
		Name: "Manifestor", Strategy: "To Inform", Authority: "Emotional or Splenic",
		Signature: "Peace", NotSelf: "Anger", Percentage: 9.0,
		Description: "Initiators and catalysts, designed to start things",
		LifePurpose: "To initiate and impact others through their actions",
	},
	"Projector": {
		Name: "Projector", Strategy: "Wait for Invitation",
		Authority: "Various (Splenic, Emotional, Ego, Self-Projected, Mental)",
		Signature: "Success", NotSelf: "Bitterness", Percentage: 20.0,
		Description: "Natural guides and leaders, designed to see the bigger picture",
		LifePurpose: "To guide others and be recognized for their wisdom",
	},
	"Reflector": {
		Name: "Reflector", Strategy: "Wait a Lunar Cycle", Authority: "Lunar Authority",
		Signature: "Surprise", NotSelf: "Disappointment", Percentage: 1.0,
		Description: "Mirrors of the community, designed to reflect the health of their environment",
		LifePurpose: "To reflect the health of their community and environment",
	},
}

// DetermineType applies §4.3's rule: Reflector if no centre is defined;
// Manifestor if a motor reaches Throat without the Sacral defined;
// Generator if the Sacral is defined; Projector otherwise.
func DetermineType(definedGates map[int]bool) TypeInfo {
	sacralDefined := isCenterDefined(CenterSacral, definedGates)
	motorToThroat := hasMotorToThroatConnection(definedGates)
	noCentersDefined := !anyCenterDefined(definedGates)

	switch {
	case noCentersDefined:
		return typeTable["Reflector"]
	case motorToThroat && !sacralDefined:
		return typeTable["Manifestor"]
	case sacralDefined:
		return typeTable["Generator"]
	default:
		return typeTable["Projector"]
	}
}

// ProfileLine names one of the six profile lines.
var profileLineNames = map[int]string{
	1: "Investigator", 2: "Hermit", 3: "Martyr",
	4: "Opportunist", 5: "Heretic", 6: "Role Model",
}

// Profile is the personality-Sun/design-Sun line pairing (§4.3).
type Profile struct {
	PersonalityLine int
	DesignLine      int
	Name            string
}

// ComputeProfile names the profile from the two Sun lines.
func ComputeProfile(personalityLine, designLine int) Profile {
	return Profile{
		PersonalityLine: personalityLine,
		DesignLine:      designLine,
		Name: profileLineNames[personalityLine] + "/" + profileLineNames[designLine],
	}
}

// IncarnationCross names the four cross gates. The reference
// implementation's static lookup table only covers a handful of named
// crosses; rather than fabricate the remaining hundreds of entries, this
// names the cross directly from its four defining gates, the same
// information the named table would encode.
type IncarnationCross struct {
	PersonalitySunGate   int
	PersonalityEarthGate int
	DesignSunGate        int
	DesignEarthGate      int
	Name                 string
}

func ComputeIncarnationCross(pSun, pEarth, dSun, dEarth int) IncarnationCross {
	return IncarnationCross{
		PersonalitySunGate: pSun, PersonalityEarthGate: pEarth,
		DesignSunGate: dSun, DesignEarthGate: dEarth,
		Name: crossName(pSun, pEarth, dSun, dEarth),
	}
}

func crossName(pSun, pEarth, dSun, dEarth int) string {
	return "Cross of Gate " + strconv.Itoa(pSun) + "/" + strconv.Itoa(pEarth) +
		" | " + strconv.Itoa(dSun) + "/" + strconv.Itoa(dEarth)
}
