package casefile

import (
	"time"

	"github.com/google/uuid"
)

// Appeal is the single appeal a case may carry. It is pending until a
// decision is recorded; a recorded decision is final.
type Appeal struct {
	ID        uuid.UUID
	Reason    string
	FiledAt   time.Time
	DecidedAt *time.Time
	Approved  bool
	Decision  string
	Reviewer  string
}

func newAppeal(reason string, filedAt time.Time) *Appeal {
	return &Appeal{
		ID:      uuid.New(),
		Reason:  reason,
		FiledAt: filedAt,
	}
}

// recordDecision stamps all decision fields. The caller guards against
// deciding twice.
func (a *Appeal) recordDecision(approved bool, reason, reviewer string, at time.Time) {
	a.Approved = approved
	a.Decision = reason
	a.Reviewer = reviewer
	a.DecidedAt = &at
}

// Decided reports whether a decision has been recorded.
func (a *Appeal) Decided() bool {
	return a.DecidedAt != nil
}
