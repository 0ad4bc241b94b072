// Package iching implements the I-Ching engine of §4.3: a seeded, deterministic
// coin-toss casting of a hexagram from the embedded hexagram dataset, with
// changing lines transforming the primary hexagram into a relating one.
package iching

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/hexagrams.json
var hexagramFS embed.FS

// ChangingLine is the text associated with one (1-indexed, bottom to top) line.
type ChangingLine struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Hexagram is one hexagram's static reference data.
type Hexagram struct {
	Number        int            `json:"number"`
	Name          string         `json:"name"`
	Chinese       string         `json:"chinese"`
	Trigrams      []string       `json:"trigrams"`
	Binary        string         `json:"binary"` // 6 chars, bottom to top, 1=yang 0=yin
	Keywords      []string       `json:"keywords"`
	Judgment      string         `json:"judgment"`
	Image         string         `json:"image"`
	Meaning       string         `json:"meaning"`
	Divination    string         `json:"divination"`
	ChangingLines []ChangingLine `json:"changing_lines"`
}

type hexagramFile struct {
	HexagramInfo struct {
		Description    string `json:"description"`
		TotalHexagrams int    `json:"total_hexagrams"`
	} `json:"hexagram_info"`
	Hexagrams map[string]struct {
		Number        int                 `json:"number"`
		Name          string              `json:"name"`
		Chinese       string              `json:"chinese"`
		Trigrams      []string            `json:"trigrams"`
		Binary        string              `json:"binary"`
		Keywords      []string            `json:"keywords"`
		Judgment      string              `json:"judgment"`
		Image         string              `json:"image"`
		Meaning       string              `json:"meaning"`
		Divination    string              `json:"divination"`
		ChangingLines map[string]string   `json:"changing_lines"`
	} `json:"hexagrams"`
}

var (
	byNumber [65]Hexagram // index 1-64, 0 unused
	byBinary map[string]int
)

func init() {
	raw, err := hexagramFS.ReadFile("data/hexagrams.json")
	if err != nil {
		panic(fmt.Sprintf("iching: embedded hexagram data missing: %v", err))
	}

	var file hexagramFile
	if err := json.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("iching: embedded hexagram data malformed: %v", err))
	}
	if len(file.Hexagrams) != 64 {
		panic(fmt.Sprintf("iching: expected 64 hexagrams, embedded data has %d", len(file.Hexagrams)))
	}

	byBinary = make(map[string]int, 64)
	for _, h := range file.Hexagrams {
		lineNumbers := make([]int, 0, len(h.ChangingLines))
		for lineStr := range h.ChangingLines {
			var n int
			fmt.Sscanf(lineStr, "%d", &n)
			lineNumbers = append(lineNumbers, n)
		}
		sort.Ints(lineNumbers)

		lines := make([]ChangingLine, 0, len(lineNumbers))
		for _, n := range lineNumbers {
			lines = append(lines, ChangingLine{Line: n, Text: h.ChangingLines[fmt.Sprintf("%d", n)]})
		}

		hexagram := Hexagram{
			Number: h.Number, Name: h.Name, Chinese: h.Chinese, Trigrams: h.Trigrams,
			Binary: h.Binary, Keywords: h.Keywords, Judgment: h.Judgment, Image: h.Image,
			Meaning: h.Meaning, Divination: h.Divination, ChangingLines: lines,
		}
		if hexagram.Number < 1 || hexagram.Number > 64 {
			panic(fmt.Sprintf("iching: hexagram number %d out of range", hexagram.Number))
		}
		byNumber[hexagram.Number] = hexagram
		byBinary[hexagram.Binary] = hexagram.Number
	}
	if len(byBinary) != 64 {
		panic(fmt.Sprintf("iching: expected 64 distinct binary patterns, got %d", len(byBinary)))
	}
}

// ByNumber returns the hexagram data for 1-64, or false if out of range.
func ByNumber(n int) (Hexagram, bool) {
	if n < 1 || n > 64 {
		return Hexagram{}, false
	}
	return byNumber[n], true
}

// ByBinary looks up a hexagram by its 6-character bottom-to-top line pattern.
func ByBinary(pattern string) (Hexagram, bool) {
	n, ok := byBinary[pattern]
	if !ok {
		return Hexagram{}, false
	}
	return byNumber[n], true
}
