// Package genekeys implements the Gene Keys engine of §4.3: the same
// planetary-gate astronomy that drives Human Design, read instead as the
// Activation, Venus, and Pearl sequences of Richard Rudd's Gene Keys
// synthesis, with Shadow/Gift/Siddhi frequency pathworking guidance.
package genekeys

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/archetypes.json
var archetypesFS embed.FS

// GeneKey is one of the 64 archetypal gates with its three frequencies.
type GeneKey struct {
	Number              int      `json:"number"`
	Name                string   `json:"name"`
	Shadow              string   `json:"shadow"`
	Gift                string   `json:"gift"`
	Siddhi              string   `json:"siddhi"`
	Codon               string   `json:"codon"`
	AminoAcid           string   `json:"amino_acid"`
	ProgrammingPartner  int      `json:"programming_partner"`
	Physiology          string   `json:"physiology"`
	ShadowDescription   string   `json:"shadow_description"`
	GiftDescription     string   `json:"gift_description"`
	SiddhiDescription   string   `json:"siddhi_description"`
	Keywords            []string `json:"keywords"`
	LifeTheme           string   `json:"life_theme"`
}

type archetypesFile struct {
	GeneKeys map[string]GeneKey `json:"gene_keys"`
}

var byNumber [65]GeneKey // index 1-64, 0 unused

func init() {
	raw, err := archetypesFS.ReadFile("data/archetypes.json")
	if err != nil {
		panic(fmt.Sprintf("genekeys: embedded archetype data missing: %v", err))
	}

	var file archetypesFile
	if err := json.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("genekeys: embedded archetype data malformed: %v", err))
	}
	if len(file.GeneKeys) != 64 {
		panic(fmt.Sprintf("genekeys: expected 64 gene keys, embedded data has %d", len(file.GeneKeys)))
	}
	for _, gk := range file.GeneKeys {
		if gk.Number < 1 || gk.Number > 64 {
			panic(fmt.Sprintf("genekeys: gene key number %d out of range", gk.Number))
		}
		byNumber[gk.Number] = gk
	}
}

// ByNumber resolves a gate number (1-64, wrapping if out of range, the way
// the astronomical gate math can legitimately hand back numbers that need
// normalizing) to its Gene Key.
func ByNumber(n int) GeneKey {
	if n < 1 || n > 64 {
		n = ((n-1)%64+64)%64 + 1
	}
	return byNumber[n]
}
