package humandesign

// Center is one of the nine Human Design centers.
type Center string

const (
	CenterHead        Center = "Head"
	CenterAjna        Center = "Ajna"
	CenterThroat      Center = "Throat"
	CenterG           Center = "G"
	CenterHeart       Center = "Heart"
	CenterSacral      Center = "Sacral"
	CenterSolarPlexus Center = "Solar Plexus"
	CenterSpleen      Center = "Spleen"
	CenterRoot        Center = "Root"
)

// centerGates maps each center to the full set of gates that belong to it
// in the standard body graph. The reference implementation left this table
// only partially filled in ("would include all center-gate mappings in a
// full implementation"); this is the complete 64-gate assignment.
var centerGates = map[Center][]int{
	CenterHead:        {64, 61, 63},
	CenterAjna:        {47, 24, 4, 17, 43, 11},
	CenterThroat:      {62, 23, 56, 16, 20, 31, 8, 33, 12, 45, 35},
	CenterG:           {1, 2, 7, 10, 13, 15, 25, 46},
	CenterHeart:       {21, 26, 40, 51},
	CenterSacral:      {3, 5, 9, 14, 27, 29, 34, 42, 59},
	CenterSolarPlexus: {6, 22, 30, 36, 37, 49, 55},
	CenterSpleen:      {18, 28, 32, 44, 48, 50, 57},
	CenterRoot:        {19, 38, 39, 41, 52, 53, 54, 58, 60},
}

// motorCenters are the four centers capable of generating pressure that
// can reach the Throat and produce action.
var motorCenters = []Center{CenterSacral, CenterHeart, CenterSolarPlexus, CenterRoot}

// motorToThroatChannels are the gate pairs forming a direct channel from a
// motor center to the Throat (the Sacral and Root have no direct channel
// to Throat in the standard body graph).
var motorToThroatChannels = [][2]int{
	{21, 45}, // Heart-Throat, "Money Line"
	{12, 22}, // Throat-Solar Plexus, "Openness"
	{35, 36}, // Throat-Solar Plexus, "Transitoriness"
}

func isCenterDefined(center Center, definedGates map[int]bool) bool {
	for _, g := range centerGates[center] {
		if definedGates[g] {
			return true
		}
	}
	return false
}

func hasMotorToThroatConnection(definedGates map[int]bool) bool {
	for _, pair := range motorToThroatChannels {
		if definedGates[pair[0]] && definedGates[pair[1]] {
			return true
		}
	}
	return false
}

func anyCenterDefined(definedGates map[int]bool) bool {
	for center := range centerGates {
		if isCenterDefined(center, definedGates) {
			return true
		}
	}
	return false
}

// DefinedCenters returns every center with at least one activated gate.
func DefinedCenters(definedGates map[int]bool) []Center {
	var out []Center
	for center := range centerGates {
		if isCenterDefined(center, definedGates) {
			out = append(out, center)
		}
	}
	return out
}
