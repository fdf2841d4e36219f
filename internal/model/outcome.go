package model

// Outcome is a human-friendly label for a round's bottom line.
// Keep these values stable; they are intended for CSV output.
type Outcome string

const (
	OutcomeProfit    Outcome = "PROFIT"
	OutcomeBreakeven Outcome = "BREAKEVEN"
	OutcomeLoss      Outcome = "LOSS"
)

func OutcomeFromNetProfit(netProfit float64) Outcome {
	switch {
	case netProfit > 0:
		return OutcomeProfit
	case netProfit < 0:
		return OutcomeLoss
	default:
		return OutcomeBreakeven
	}
}
