// Package enneagram implements the Enneagram engine of §4.3: type
// identification from a self-report assessment, explicit self-selection,
// or keyword-matched behavioral description, resolving wings, arrows, and
// instinctual variant alongside growth guidance.
package enneagram

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/types.json
var typesFS embed.FS

// Wing is a type's neighboring-number influence.
type Wing struct {
	Name   string   `json:"name"`
	Traits []string `json:"traits"`
}

// Arrow is a stress/growth direction to another type number.
type Arrow struct {
	Direction int      `json:"direction"`
	Traits    []string `json:"traits"`
}

// InstinctualVariant is one of the three instinctual stackings.
type InstinctualVariant struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Center is one of the three Enneagram centers of intelligence.
type Center struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
	Types []int  `json:"types"`
}

// Type is one of the nine Enneagram types with its full reference data.
type Type struct {
	Number               int             `json:"number"`
	Name                 string          `json:"name"`
	Center               string          `json:"center"`
	CoreMotivation       string          `json:"core_motivation"`
	CoreFear             string          `json:"core_fear"`
	CoreDesire           string          `json:"core_desire"`
	Vice                 string          `json:"vice"`
	Virtue               string          `json:"virtue"`
	Passion              string          `json:"passion"`
	HolyIdea             string          `json:"holy_idea"`
	Keywords             []string        `json:"keywords"`
	GrowthRecommendations []string       `json:"growth_recommendations"`
	Wings                map[string]Wing `json:"wings"`
	Arrows               map[string]Arrow `json:"arrows"`
}

type typesFile struct {
	Types               map[string]Type               `json:"types"`
	Centers             map[string]Center              `json:"centers"`
	InstinctualVariants map[string]InstinctualVariant `json:"instinctual_variants"`
}

var (
	byNumber  [10]Type // index 1-9, 0 unused
	centers   map[string]Center
	instincts map[string]InstinctualVariant
)

func init() {
	raw, err := typesFS.ReadFile("data/types.json")
	if err != nil {
		panic(fmt.Sprintf("enneagram: embedded type data missing: %v", err))
	}

	var file typesFile
	if err := json.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("enneagram: embedded type data malformed: %v", err))
	}
	if len(file.Types) != 9 {
		panic(fmt.Sprintf("enneagram: expected 9 types, embedded data has %d", len(file.Types)))
	}
	for _, t := range file.Types {
		if t.Number < 1 || t.Number > 9 {
			panic(fmt.Sprintf("enneagram: type number %d out of range", t.Number))
		}
		byNumber[t.Number] = t
	}
	centers = file.Centers
	instincts = file.InstinctualVariants
}

// ByNumber resolves a type number (1-9) to its full reference data.
func ByNumber(n int) (Type, bool) {
	if n < 1 || n > 9 {
		return Type{}, false
	}
	return byNumber[n], true
}

// CenterByName resolves a center ("body", "heart", or "head") to its data.
func CenterByName(name string) (Center, bool) {
	c, ok := centers[name]
	return c, ok
}

// InstinctualVariantByName resolves a named instinctual variant.
func InstinctualVariantByName(name string) (InstinctualVariant, bool) {
	v, ok := instincts[name]
	return v, ok
}

// lowestWingKey picks the lower-numbered wing key deterministically (no
// secondary assessment data is available to disambiguate which wing
// dominates, so this is a stable default rather than a guess).
func lowestWingKey(wings map[string]Wing) string {
	keys := make([]string, 0, len(wings))
	for k := range wings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// firstInstinctKey picks a deterministic default instinctual variant key
// when the caller hasn't specified one.
func firstInstinctKey() string {
	keys := make([]string, 0, len(instincts))
	for k := range instincts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
