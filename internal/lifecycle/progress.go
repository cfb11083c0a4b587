package lifecycle

// Progress is the outcome of applying an amount-sent delta to a pledge.
type Progress struct {
	AmountSentCents      int64
	CompletionPercentage float64
	Status               string
	StatusChanged        bool
}

// ApplyAmount accumulates deltaCents onto sentCents against a pledged
// total. The call is all-or-nothing: a delta that would push the total
// past the pledged amount is rejected outright, never clamped. Reaching
// 100% promotes the pledge straight to COMPLETED regardless of its
// current task stage; this is the amount-driven completion path and it
// bypasses the single-step rule on purpose.
func ApplyAmount(status string, amountCents, sentCents, deltaCents int64) (Progress, error) {
	if !IsValidStatus(status) {
		return Progress{}, ErrUnknownStatus
	}
	if status == StatusCompleted {
		return Progress{}, ErrAlreadyCompleted
	}
	if deltaCents <= 0 {
		return Progress{}, ErrInvalidAmount
	}

	newTotal := sentCents + deltaCents
	if newTotal > amountCents {
		return Progress{}, ErrExceedsPledgeAmount
	}

	p := Progress{
		AmountSentCents:      newTotal,
		CompletionPercentage: float64(newTotal) / float64(amountCents) * 100,
		Status:               status,
	}
	if p.CompletionPercentage >= 100 {
		p.Status = StatusCompleted
		p.StatusChanged = true
	}
	return p, nil
}
