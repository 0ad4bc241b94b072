package astro

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/gate_sequence.json data/nakshatra.json
var dataFS embed.FS

type gateSequenceFile struct {
	Sequence [64]int `json:"sequence"`
}

type nakshatraFile struct {
	Names [27]string `json:"names"`
	Lords [9]string  `json:"lords"`
}

// gateSequence holds the loaded 64-entry mandala, populated by init. A
// malformed embedded file is a build-time defect, so init panics rather
// than letting every caller handle an impossible error (§6: fail fast on
// load failure, here at binary-load time instead of first request).
var gateSequence [64]int

// nakshatraNames and nakshatraLords are populated by init from the same
// embedded-JSON, panic-on-malformed pattern as gateSequence.
var nakshatraNames [27]string
var nakshatraLords [9]string

func init() {
	raw, err := dataFS.ReadFile("data/gate_sequence.json")
	if err != nil {
		panic(fmt.Sprintf("astro: embedded gate sequence missing: %v", err))
	}
	var parsed gateSequenceFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		panic(fmt.Sprintf("astro: embedded gate sequence invalid: %v", err))
	}
	gateSequence = parsed.Sequence

	rawNak, err := dataFS.ReadFile("data/nakshatra.json")
	if err != nil {
		panic(fmt.Sprintf("astro: embedded nakshatra table missing: %v", err))
	}
	var parsedNak nakshatraFile
	if err := json.Unmarshal(rawNak, &parsedNak); err != nil {
		panic(fmt.Sprintf("astro: embedded nakshatra table invalid: %v", err))
	}
	for i, name := range parsedNak.Names {
		if name == "" {
			panic(fmt.Sprintf("astro: embedded nakshatra table has empty name at index %d", i))
		}
	}
	for i, lord := range parsedNak.Lords {
		if lord == "" {
			panic(fmt.Sprintf("astro: embedded nakshatra table has empty lord at index %d", i))
		}
	}
	nakshatraNames = parsedNak.Names
	nakshatraLords = parsedNak.Lords
}
