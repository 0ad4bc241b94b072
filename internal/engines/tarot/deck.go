// Package tarot implements the tarot engine of §4.3: a seeded, deterministic
// card draw from the embedded Rider-Waite deck data, laid out across a
// named spread, with upright/reversed interpretation per position.
package tarot

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/rider_waite.json
var deckFS embed.FS

// Card is one tarot card's static reference data.
type Card struct {
	Name            string   `json:"name"`
	Suit            string   `json:"suit,omitempty"`
	Number          string   `json:"number,omitempty"`
	ArcanaType      string   `json:"arcana_type"`
	Keywords        []string `json:"keywords"`
	UprightMeaning  string   `json:"upright_meaning"`
	ReversedMeaning string   `json:"reversed_meaning"`
	Element         string   `json:"element,omitempty"`
	Astrological    string   `json:"astrological,omitempty"`
}

// Spread describes a named layout of card positions.
type Spread struct {
	Name        string
	Description string
	Positions   []string
}

type deckFile struct {
	MajorArcana map[string]struct {
		Name         string   `json:"name"`
		Keywords     []string `json:"keywords"`
		Upright      string   `json:"upright"`
		Reversed     string   `json:"reversed"`
		Element      string   `json:"element"`
		Astrological string   `json:"astrological"`
	} `json:"major_arcana"`
	MinorArcana struct {
		Suits map[string]struct {
			Element  string   `json:"element"`
			Keywords []string `json:"keywords"`
			Cards    map[string]struct {
				Name     string `json:"name"`
				Upright  string `json:"upright"`
				Reversed string `json:"reversed"`
			} `json:"cards"`
		} `json:"suits"`
	} `json:"minor_arcana"`
	Spreads map[string]struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Positions   []string `json:"positions"`
	} `json:"spreads"`
}

var (
	fullDeck    []Card
	spreadTable map[string]Spread
)

func init() {
	raw, err := deckFS.ReadFile("data/rider_waite.json")
	if err != nil {
		panic(fmt.Sprintf("tarot: embedded deck data missing: %v", err))
	}

	var file deckFile
	if err := json.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("tarot: embedded deck data malformed: %v", err))
	}

	for number, card := range file.MajorArcana {
		fullDeck = append(fullDeck, Card{
			Name: card.Name, Number: number, ArcanaType: "major",
			Keywords: card.Keywords, UprightMeaning: card.Upright, ReversedMeaning: card.Reversed,
			Element: card.Element, Astrological: card.Astrological,
		})
	}
	for suitName, suit := range file.MinorArcana.Suits {
		for number, card := range suit.Cards {
			fullDeck = append(fullDeck, Card{
				Name: card.Name, Suit: suitName, Number: number, ArcanaType: "minor",
				Keywords: suit.Keywords, UprightMeaning: card.Upright, ReversedMeaning: card.Reversed,
				Element: suit.Element,
			})
		}
	}
	if len(fullDeck) != 78 {
		panic(fmt.Sprintf("tarot: expected 78 cards, embedded data has %d", len(fullDeck)))
	}
	// Map iteration order is randomized per process; sort into a fixed,
	// reproducible order so seeded draws give the same cards every run.
	sort.Slice(fullDeck, func(i, j int) bool {
		return fullDeck[i].Name < fullDeck[j].Name
	})

	spreadTable = make(map[string]Spread, len(file.Spreads))
	for key, s := range file.Spreads {
		spreadTable[key] = Spread{Name: s.Name, Description: s.Description, Positions: s.Positions}
	}
}

// FullDeck returns every card in the embedded deck, sorted by card name
// once at init time.
func FullDeck() []Card {
	return fullDeck
}

// SpreadByName looks up a named spread layout.
func SpreadByName(name string) (Spread, bool) {
	s, ok := spreadTable[name]
	return s, ok
}

// SpreadNames lists every known spread key.
func SpreadNames() []string {
	names := make([]string, 0, len(spreadTable))
	for k := range spreadTable {
		names = append(names, k)
	}
	return names
}
