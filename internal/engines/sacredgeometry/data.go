package sacredgeometry

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/templates.json
var templatesFS embed.FS

// Template is the symbolic reference data for one pattern type, separate
// from the parametric geometry itself: what the pattern means and how to
// work with it.
type Template struct {
	SymbolicMeaning  string   `json:"symbolic_meaning"`
	Recommendations  []string `json:"recommendations"`
	ArchetypalThemes []string `json:"archetypal_themes"`
}

type templatesFile struct {
	Templates map[PatternType]Template `json:"templates"`
}

// templates holds the loaded per-pattern reference data, populated by init.
// A malformed embedded file is a build-time defect, so init panics rather
// than letting every caller handle an impossible error.
var templates map[PatternType]Template

var allPatternTypes = []PatternType{
	PatternMandala, PatternFlowerOfLife, PatternSriYantra,
	PatternGoldenSpiral, PatternPlatonicSolid, PatternVesicaPiscis,
}

func init() {
	raw, err := templatesFS.ReadFile("data/templates.json")
	if err != nil {
		panic(fmt.Sprintf("sacredgeometry: embedded templates missing: %v", err))
	}
	var parsed templatesFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		panic(fmt.Sprintf("sacredgeometry: embedded templates invalid: %v", err))
	}
	for _, pt := range allPatternTypes {
		if _, ok := parsed.Templates[pt]; !ok {
			panic(fmt.Sprintf("sacredgeometry: embedded templates missing entry for %q", pt))
		}
	}
	templates = parsed.Templates
}

// templateFor resolves a pattern type's reference data, falling back to the
// mandala template for any pattern type not present (unreachable once init
// has validated every known PatternType above, kept only as a safe default).
func templateFor(pt PatternType) Template {
	if t, ok := templates[pt]; ok {
		return t
	}
	return templates[PatternMandala]
}
