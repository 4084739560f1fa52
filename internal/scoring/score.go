// Package scoring reduces a recommendation set to a single 0-100 score
// via priority-weighted deduction.
package scoring

import (
	"github.com/dotcommander/perflint/internal/types"
)

// Per-priority deductions from the starting score of 100.
const (
	deductionHigh   = 15
	deductionMedium = 10
	deductionLow    = 5
)

// Band name constants.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandCaution   = "Caution"
	BandNeedsWork = "Needs Work"
)

// Score starts at 100 and subtracts 15 per high, 10 per medium, and 5 per
// low recommendation, clamping at 0.
func Score(recs []types.Recommendation) int {
	score := 100
	for _, rec := range recs {
		switch rec.Priority {
		case types.PriorityHigh:
			score -= deductionHigh
		case types.PriorityMedium:
			score -= deductionMedium
		case types.PriorityLow:
			score -= deductionLow
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// BandFromScore returns the qualitative band for a score. Bands are
// presentation metadata; only the raw score is stored on the report.
func BandFromScore(score int) string {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 70:
		return BandGood
	case score >= 50:
		return BandCaution
	default:
		return BandNeedsWork
	}
}
