package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusPending       string = "PENDING"
	StatusTask1Complete string = "TASK1_COMPLETE"
	StatusTask2Complete string = "TASK2_COMPLETE"
	// StatusCompleted is terminal, the fund transfer is confirmed.
	StatusCompleted string = "COMPLETED"
)

// StatusSequence is the fixed task order; transitions move strictly one
// step forward through it.
var StatusSequence = []string{
	StatusPending,
	StatusTask1Complete,
	StatusTask2Complete,
	StatusCompleted,
}

var (
	ErrEvidenceRequired    = errors.New("evidence description is required for this transition")
	ErrUnknownStatus       = errors.New("unknown pledge status")
	ErrAlreadyCompleted    = errors.New("pledge is already completed")
	ErrInvalidAmount       = errors.New("amount must be a positive value")
	ErrExceedsPledgeAmount = errors.New("amount sent would exceed the pledged total")
)

type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// IsValidStatus reports whether s is one of the known pledge statuses.
func IsValidStatus(s string) bool {
	return statusIndex(s) >= 0
}

func statusIndex(s string) int {
	for i, status := range StatusSequence {
		if status == s {
			return i
		}
	}
	return -1
}

// ValidateTransition enforces the single-step task workflow. Same-state
// no-ops, skips and backward moves are all rejected. Transitions into
// TASK2_COMPLETE and COMPLETED require a non-empty evidence description.
func ValidateTransition(from, to, evidence string) error {
	fromIdx := statusIndex(from)
	toIdx := statusIndex(to)
	if fromIdx < 0 || toIdx < 0 {
		return ErrUnknownStatus
	}
	if toIdx != fromIdx+1 {
		return &InvalidTransitionError{From: from, To: to}
	}
	if (to == StatusTask2Complete || to == StatusCompleted) && strings.TrimSpace(evidence) == "" {
		return ErrEvidenceRequired
	}
	return nil
}

var taskNames = [3]string{"Create Pledge", "Exchange Coins", "Transfer Confirmation"}

const (
	TaskPending    string = "pending"
	TaskInProgress string = "in_progress"
	TaskCompleted  string = "completed"
)

// TaskStatuses derives the three fixed task states from a pledge status.
// Tasks at or below the status position are completed, the next one is
// in progress, the rest are pending.
func TaskStatuses(status string) ([3]string, error) {
	idx := statusIndex(status)
	if idx < 0 {
		return [3]string{}, ErrUnknownStatus
	}
	var tasks [3]string
	for i := range tasks {
		switch {
		case i < idx:
			tasks[i] = TaskCompleted
		case i == idx:
			tasks[i] = TaskInProgress
		default:
			tasks[i] = TaskPending
		}
	}
	return tasks, nil
}

// TaskNames returns the fixed task titles in workflow order.
func TaskNames() [3]string {
	return taskNames
}
