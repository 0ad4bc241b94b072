package tarot

import (
	"hash/fnv"
	"math/rand"
)

// DrawnCard is one card placed into a spread position, with its orientation.
type DrawnCard struct {
	Card     Card   `json:"card"`
	Position string `json:"position"`
	Reversed bool   `json:"reversed"`
}

// seedFrom derives a deterministic 64-bit seed from a question and an
// optional caller-supplied salt, so the same question (and salt) always
// draws the same cards.
func seedFrom(question string, salt int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(question))
	return int64(h.Sum64()) ^ salt
}

// Draw selects count distinct cards from the deck and lays them across
// positions, deterministically reproducible for the same question/seed.
// includeReversed enables a 30% chance per card of a reversed orientation.
func Draw(question string, seed int64, positions []string, includeReversed bool) []DrawnCard {
	rng := rand.New(rand.NewSource(seedFrom(question, seed)))

	indices := rng.Perm(len(fullDeck))[:len(positions)]

	drawn := make([]DrawnCard, len(positions))
	for i, position := range positions {
		reversed := false
		if includeReversed {
			reversed = rng.Float64() < 0.3
		}
		drawn[i] = DrawnCard{Card: fullDeck[indices[i]], Position: position, Reversed: reversed}
	}
	return drawn
}
