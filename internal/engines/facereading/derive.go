package facereading

import (
	"crypto/sha256"
	"encoding/binary"
)

// featureValue derives a deterministic float in [0, 1) from an opaque image
// reference and a feature key, standing in for a real landmark measurement
// in stub mode (§4.3): the same image_ref always yields the same reading.
func featureValue(imageRef, key string) float64 {
	sum := sha256.Sum256([]byte(imageRef + "|" + key))
	n := binary.BigEndian.Uint64(sum[:8])
	return float64(n) / float64(^uint64(0))
}

// deriveHouseReading derives a house's strength, harmony score, and a
// traditional-style interpretation from its feature values.
func deriveHouseReading(imageRef string, h House) HouseReading {
	strength := 0.5 + 0.4*featureValue(imageRef, h.Key+":strength")
	harmony := 0.5 + 0.4*featureValue(imageRef, h.Key+":harmony")

	interpretation := "Balanced expression of " + h.TraditionalMeaning
	if strength > 0.75 {
		interpretation = "Strong expression of " + h.TraditionalMeaning
	} else if strength < 0.6 {
		interpretation = "Understated expression of " + h.TraditionalMeaning
	}

	return HouseReading{House: h, Strength: strength, HarmonyScore: harmony, Interpretation: interpretation}
}

// deriveElementRaw derives an element's raw (pre-normalization) weight.
func deriveElementRaw(imageRef string, e Element) float64 {
	return 0.2 + 0.8*featureValue(imageRef, "element:"+string(e))
}
