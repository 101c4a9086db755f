package reporting

// Health-score tuning values. These are business heuristics, kept as named
// constants so they can be adjusted without touching the scoring logic.
const (
	// A 33.3% margin scores a full 100.
	profitabilityMarginWeight = 3.0

	// Delivered share of all loads, boosted so ~80% delivered scores 100.
	utilizationDeliveredWeight = 1.25

	// Dollars per mile that counts as a perfect efficiency score.
	efficiencyTargetRevenuePerMile = 3.0

	scoreFloor = 0.0
	scoreCeil  = 100.0
)

func clampScore(v float64) float64 {
	if v < scoreFloor {
		return scoreFloor
	}
	if v > scoreCeil {
		return scoreCeil
	}
	return v
}

func profitabilityScore(marginPct float64) float64 {
	return clampScore(marginPct * profitabilityMarginWeight)
}

func utilizationScore(delivered, total int64) float64 {
	if total == 0 {
		return 0
	}
	return clampScore(float64(delivered) / float64(total) * 100 * utilizationDeliveredWeight)
}

func efficiencyScore(revenuePerMile float64) float64 {
	return clampScore(revenuePerMile / efficiencyTargetRevenuePerMile * 100)
}
