// Package predict maps a source bitrate to a recommended CRF value.
//
// The model is a closed-form logarithmic fit: every doubling of the
// source-to-target bitrate ratio adds 6 to the base CRF of 20, clamped to
// the encoder's valid [0, 51] interval. It predicts a parameter only; the
// realized bitrate after encoding depends on content and preset.
package predict

import (
	"math"

	"github.com/smartcrf/smartcrf/internal/config"
)

// crfPerDoubling is the CRF increase for each doubling of the bitrate ratio.
const crfPerDoubling = 6

// CRF predicts the CRF needed to bring sourceKbps close to targetKbps.
// Returns ok=false when either bitrate is non-positive; no other failure
// mode exists. The function is pure and performs no I/O.
func CRF(sourceKbps, targetKbps int, mode config.RoundMode) (float64, bool) {
	if sourceKbps <= 0 || targetKbps <= 0 {
		return 0, false
	}

	estimated := config.BaseCRF + crfPerDoubling*math.Log2(float64(sourceKbps)/float64(targetKbps))

	switch mode {
	case config.RoundFractional:
		estimated = math.Round(estimated*10) / 10
	default:
		// math.Round: ties away from zero.
		estimated = math.Round(estimated)
	}

	return clamp(estimated, config.MinCRF, config.MaxCRF), true
}

// Raw returns the unrounded, unclamped prediction. Exposed for callers that
// want to reason about the model itself (e.g. monotonicity checks).
// Returns ok=false for non-positive inputs.
func Raw(sourceKbps, targetKbps int) (float64, bool) {
	if sourceKbps <= 0 || targetKbps <= 0 {
		return 0, false
	}
	return config.BaseCRF + crfPerDoubling*math.Log2(float64(sourceKbps)/float64(targetKbps)), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
