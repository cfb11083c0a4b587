package points

import "github.com/dmarkov/coindrop/internal/lifecycle"

const (
	PledgeCreation = 10
	// Task1Completion is awarded at creation time, task 1 being the act
	// of pledging itself.
	Task1Completion = 5
	Task2Completion = 15
	Task3Completion = 20
)

// Bonus tiers on the pledged amount, mutually exclusive, first match wins.
const (
	smallTierMinCents  = 500
	mediumTierMinCents = 2500
	largeTierMinCents  = 10000

	smallTierBonus  = 5
	mediumTierBonus = 15
	largeTierBonus  = 50
)

// TierBonus returns the one-time bonus for the pledged amount. Awarded
// once, at creation, on top of the creation and task-1 points.
func TierBonus(amountCents int64) int {
	switch {
	case amountCents >= largeTierMinCents:
		return largeTierBonus
	case amountCents >= mediumTierMinCents:
		return mediumTierBonus
	case amountCents >= smallTierMinCents:
		return smallTierBonus
	default:
		return 0
	}
}

// CreationPoints is the full delta awarded when a pledge is created:
// creation points, task-1 points and the amount tier bonus.
func CreationPoints(amountCents int64) int {
	return PledgeCreation + Task1Completion + TierBonus(amountCents)
}

// TaskPoints returns the delta awarded for reaching newStatus through the
// task workflow. The tier bonus is not re-awarded here.
func TaskPoints(newStatus string) int {
	switch newStatus {
	case lifecycle.StatusTask1Complete:
		return Task1Completion
	case lifecycle.StatusTask2Complete:
		return Task2Completion
	case lifecycle.StatusCompleted:
		return Task3Completion
	default:
		return 0
	}
}

// CompletionReward is the delta awarded when a pledge completes through the
// amount-sent path: floor(amount * 10). This deliberately diverges from
// Task3Completion; both reward formulas are kept for parity with the
// original business rules.
func CompletionReward(amountCents int64) int {
	return int(amountCents / 10)
}
