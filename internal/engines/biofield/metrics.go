// Package biofield implements the biofield engine of §4.3: Poly-Contrast
// Interference Photography (PIP) style energy-field analysis, run in stub
// mode over an opaque stored-image reference rather than real image
// processing (no computer-vision library is wired; §4.3, Design Note §9).
package biofield

import (
	"crypto/sha256"
	"encoding/binary"
)

// featureValue derives a deterministic float in [0, 1) from an opaque image
// reference and a metric key, standing in for a real PIP measurement in
// stub mode: the same image_ref always yields the same reading.
func featureValue(imageRef, key string) float64 {
	sum := sha256.Sum256([]byte(imageRef + "|" + key))
	n := binary.BigEndian.Uint64(sum[:8])
	return float64(n) / float64(^uint64(0))
}

// Metrics holds the seventeen core biofield measurements, grouped the way
// the original PIP analysis groups them: spatial, complexity, temporal
// dynamics, system analysis, and symmetry/form.
type Metrics struct {
	LightQuantaDensity     float64 `json:"light_quanta_density"`
	NormalizedArea         float64 `json:"normalized_area"`
	AverageIntensity       float64 `json:"average_intensity"`
	InnerNoise             float64 `json:"inner_noise"`
	EnergyAnalysis         float64 `json:"energy_analysis"`
	EntropyFormCoefficient float64 `json:"entropy_form_coefficient"`
	FractalDimension       float64 `json:"fractal_dimension"`
	CorrelationDimension   float64 `json:"correlation_dimension"`
	HurstExponent          float64 `json:"hurst_exponent"`
	LyapunovExponent       float64 `json:"lyapunov_exponent"`
	DFAAnalysis            float64 `json:"dfa_analysis"`
	BifurcationAnalysis    float64 `json:"bifurcation_analysis"`
	RecurrenceAnalysis     float64 `json:"recurrence_analysis"`
	NonlinearMapping       float64 `json:"nonlinear_mapping"`
	BodySymmetry           float64 `json:"body_symmetry"`
	ContourComplexity      float64 `json:"contour_complexity"`
	PatternRegularity      float64 `json:"pattern_regularity"`
}

// ColorAnalysis holds the ten color-domain measurements.
type ColorAnalysis struct {
	ColorDistribution          map[string]float64 `json:"color_distribution"`
	ColorEntropy               float64             `json:"color_entropy"`
	ColorCorrelation           float64             `json:"color_correlation"`
	SpectralPowerDistribution  map[string]float64  `json:"spectral_power_distribution"`
	ColorCoherence             float64             `json:"color_coherence"`
	ColorEnergy                float64             `json:"color_energy"`
	ColorSymmetry              float64             `json:"color_symmetry"`
	ColorContrast              float64             `json:"color_contrast"`
	DominantWavelength         float64             `json:"dominant_wavelength"`
	ColorPerimeter             float64             `json:"color_perimeter"`
}

// deriveMetrics derives the seventeen core metrics from the image reference.
// Value ranges mirror the original's simulation-mode defaults: most
// measurements sit in [0, 1), fractal and correlation dimension range
// roughly 1-3.
func deriveMetrics(imageRef string) Metrics {
	f := func(key string) float64 { return featureValue(imageRef, key) }
	return Metrics{
		LightQuantaDensity:     f("light_quanta_density"),
		NormalizedArea:         f("normalized_area"),
		AverageIntensity:       f("average_intensity"),
		InnerNoise:             0.5 * f("inner_noise"),
		EnergyAnalysis:         f("energy_analysis"),
		EntropyFormCoefficient: f("entropy_form_coefficient"),
		FractalDimension:       1.0 + 2.0*f("fractal_dimension"),
		CorrelationDimension:   3.0 * f("correlation_dimension"),
		HurstExponent:          f("hurst_exponent"),
		LyapunovExponent:       0.4 * f("lyapunov_exponent"),
		DFAAnalysis:            f("dfa_analysis"),
		BifurcationAnalysis:    f("bifurcation_analysis"),
		RecurrenceAnalysis:     f("recurrence_analysis"),
		NonlinearMapping:       f("nonlinear_mapping"),
		BodySymmetry:           f("body_symmetry"),
		ContourComplexity:      f("contour_complexity"),
		PatternRegularity:      f("pattern_regularity"),
	}
}

// deriveColorAnalysis derives the ten color-domain metrics.
func deriveColorAnalysis(imageRef string) ColorAnalysis {
	f := func(key string) float64 { return featureValue(imageRef, key) }

	red, green, blue := f("color:red"), f("color:green"), f("color:blue")
	total := red + green + blue
	dist := map[string]float64{
		"red":   red / total * 0.85,
		"green": green / total * 0.85,
		"blue":  blue / total * 0.85,
	}
	dist["other"] = 1.0 - dist["red"] - dist["green"] - dist["blue"]

	low, mid, high := f("spectral:low"), f("spectral:mid"), f("spectral:high")
	spectralTotal := low + mid + high
	spectral := map[string]float64{
		"low":  low / spectralTotal,
		"mid":  mid / spectralTotal,
		"high": high / spectralTotal,
	}

	return ColorAnalysis{
		ColorDistribution:         dist,
		ColorEntropy:              3.0 * f("color_entropy"),
		ColorCorrelation:          f("color_correlation"),
		SpectralPowerDistribution: spectral,
		ColorCoherence:            f("color_coherence"),
		ColorEnergy:               f("color_energy"),
		ColorSymmetry:             f("color_symmetry"),
		ColorContrast:             f("color_contrast"),
		DominantWavelength:        380.0 + 320.0*f("dominant_wavelength"),
		ColorPerimeter:            f("color_perimeter"),
	}
}
