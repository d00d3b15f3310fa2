package casefile

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
)

var (
	// ErrDuplicateAppeal is returned when a second appeal is filed on a case.
	ErrDuplicateAppeal = errors.New("an appeal has already been filed for this case")

	// ErrNoAppeal is returned when a decision is attempted with no appeal present.
	ErrNoAppeal = errors.New("no appeal has been filed for this case")

	// ErrAppealDecided is returned when a decision is attempted on an
	// already-decided appeal. Decisions are final.
	ErrAppealDecided = errors.New("appeal has already been decided")

	// ErrCaseClosed is returned for any mutation attempted on a closed case.
	ErrCaseClosed = errors.New("case is closed")
)

// Status represents the lifecycle state of a case.
type Status string

const (
	StatusCreated           Status = "created"
	StatusFineIssued        Status = "fine_issued"
	StatusPaymentPending    Status = "payment_pending"
	StatusPaymentOverdue    Status = "payment_overdue"
	StatusAppealFiled       Status = "appeal_filed"
	StatusAppealUnderReview Status = "appeal_under_review"
	StatusAppealRejected    Status = "appeal_rejected"
	StatusAppealApproved    Status = "appeal_approved"
	StatusPaid              Status = "paid"
	StatusEscalated         Status = "escalated"
	StatusClosed            Status = "closed"
)

func (s Status) String() string { return string(s) }

// Statuses lists every status in a stable order, for menus and queries.
func Statuses() []Status {
	return []Status{
		StatusCreated, StatusFineIssued, StatusPaymentPending, StatusPaymentOverdue,
		StatusAppealFiled, StatusAppealUnderReview, StatusAppealRejected,
		StatusAppealApproved, StatusPaid, StatusEscalated, StatusClosed,
	}
}

// Case is the aggregate root tracking one offense from fine issuance to
// closure. It owns its fine, its optional appeal, and its append-only
// action log. Every status change goes through the transition method, so
// the log always carries exactly one status_updated entry per change.
//
// A single mutex guards status, fine, appeal, and log together: a
// transition is a multi-field update that must be applied atomically.
// Fields are unexported so callers cannot bypass the state machine;
// readers take a Snapshot.
type Case struct {
	mu sync.Mutex

	id        uuid.UUID
	offense   *offense.Offense
	fine      *fine.Fine
	appeal    *Appeal
	status    Status
	createdAt time.Time
	closedAt  *time.Time
	actions   []Action

	clk clock.Clock
}

// New constructs a case for an offense and its issued fine. Construction
// logs case_created and fine_calculated, then auto-advances the status to
// fine_issued, which appends the status_updated entry.
func New(off *offense.Offense, offenderName string, f *fine.Fine, clk clock.Clock) *Case {
	c := &Case{
		id:        uuid.New(),
		offense:   off,
		fine:      f,
		status:    StatusCreated,
		createdAt: clk.Today(),
		clk:       clk,
	}

	c.log(ActionCaseCreated, fmt.Sprintf("Case created for %s by %s", off.Type, offenderName))
	c.log(ActionFineCalculated, fmt.Sprintf("Fine calculated: $%s", f.Amount.StringFixed(2)))
	c.transition(StatusFineIssued, "Fine notice issued")

	return c
}

// ID returns the case identifier.
func (c *Case) ID() uuid.UUID { return c.id }

// OffenderID returns the canonical offender this case belongs to.
func (c *Case) OffenderID() uuid.UUID { return c.offense.OffenderID }

// Status returns the current lifecycle status.
func (c *Case) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// log appends an action entry stamped with the clock. Callers hold the lock
// (or, during construction, have exclusive access).
func (c *Case) log(t ActionType, description string) {
	c.actions = append(c.actions, Action{
		ID:          uuid.New(),
		Type:        t,
		Description: description,
		At:          c.clk.Now(),
		Actor:       "system",
	})
}

// transition changes the status and appends the status_updated entry in one
// step. For the terminal status it stamps the closed date if not already set.
func (c *Case) transition(to Status, reason string) {
	from := c.status
	c.status = to

	c.log(ActionStatusUpdated, fmt.Sprintf("Status changed from %s to %s: %s", from, to, reason))

	if to == StatusClosed && c.closedAt == nil {
		today := c.clk.Today()
		c.closedAt = &today
	}
}

// RecordPayment applies a payment to the fine ledger and advances the
// status: paid in full moves the case to paid, anything less to
// payment_pending. A rejected payment leaves the case untouched.
func (c *Case) RecordPayment(p fine.Payment) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusClosed {
		return ErrCaseClosed
	}

	if err := c.fine.Record(p); err != nil {
		return err
	}

	c.log(ActionPaymentReceived,
		fmt.Sprintf("Payment received: $%s via %s", p.Amount.StringFixed(2), p.Method))

	if c.fine.Status == fine.StatusPaid {
		c.transition(StatusPaid, "Fine paid in full")
	} else {
		c.transition(StatusPaymentPending, "Partial payment received")
	}

	return nil
}

// FileAppeal records the case's single appeal. A second appeal is rejected
// with ErrDuplicateAppeal and changes nothing.
func (c *Case) FileAppeal(reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusClosed {
		return ErrCaseClosed
	}

	if c.appeal != nil {
		return ErrDuplicateAppeal
	}

	c.appeal = newAppeal(reason, c.clk.Today())
	c.log(ActionAppealReceived, fmt.Sprintf("Appeal received: %s", reason))
	c.transition(StatusAppealFiled, fmt.Sprintf("Appeal filed: %s", reason))

	return nil
}

// DecideAppeal records the final decision on the case's appeal. Approval
// moves the case to appeal_approved and stamps the closed date with the
// decision date; rejection moves it to appeal_rejected and leaves it open
// so collection can resume. Decisions are final: a second decision fails
// with ErrAppealDecided.
func (c *Case) DecideAppeal(approved bool, reason, reviewer string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusClosed {
		return ErrCaseClosed
	}

	if c.appeal == nil {
		return ErrNoAppeal
	}

	if c.appeal.Decided() {
		return ErrAppealDecided
	}

	c.appeal.recordDecision(approved, reason, reviewer, c.clk.Today())

	if approved {
		c.transition(StatusAppealApproved, fmt.Sprintf("Appeal approved: %s", reason))

		today := c.clk.Today()
		c.closedAt = &today
	} else {
		c.transition(StatusAppealRejected, fmt.Sprintf("Appeal rejected: %s", reason))
	}

	verdict := "rejected"
	if approved {
		verdict = "approved"
	}

	c.log(ActionAppealDecision, fmt.Sprintf("Appeal %s: %s", verdict, reason))

	return nil
}

// SendReminder fires when the fine is overdue and the case is neither
// closed nor paid: it logs reminder_sent and moves the case to
// payment_overdue. Returns whether a reminder fired. Each sweep over a
// still-overdue case fires again; deduplicating by interval is the
// scheduler's job, not the state machine's.
func (c *Case) SendReminder() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fine.Overdue(c.clk.Today()) || c.status == StatusClosed || c.status == StatusPaid {
		return false
	}

	c.log(ActionReminderSent, "Payment reminder sent for overdue fine")
	c.transition(StatusPaymentOverdue, "Payment deadline passed without full payment")

	return true
}

// Close applies the terminal transition. Callable from any non-closed
// status; a closed case stays closed.
func (c *Case) Close(reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusClosed {
		return ErrCaseClosed
	}

	c.transition(StatusClosed, reason)
	c.log(ActionCaseClosed, fmt.Sprintf("Case closed: %s", reason))

	return nil
}

// AttachEvidence sets the offense's evidence note and logs it.
func (c *Case) AttachEvidence(note string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusClosed {
		return ErrCaseClosed
	}

	c.offense.EvidenceNote = note
	c.log(ActionEvidenceAdded, fmt.Sprintf("Evidence added: %s", note))

	return nil
}

// HasAppeal reports whether an appeal has been filed.
func (c *Case) HasAppeal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.appeal != nil
}

// WithinStatuteOfLimitations reports whether the underlying offense is
// still actionable at today's date.
func (c *Case) WithinStatuteOfLimitations(today time.Time, limitMonths int) bool {
	return c.offense.WithinStatuteOfLimitations(today, limitMonths)
}

// OffenseDate returns the date of the underlying offense.
func (c *Case) OffenseDate() time.Time { return c.offense.Date }

// OffenseType returns the type of the underlying offense.
func (c *Case) OffenseType() offense.Type { return c.offense.Type }

// CreatedAt returns the case's creation date.
func (c *Case) CreatedAt() time.Time { return c.createdAt }

// Snapshot is a point-in-time copy of a case for readers: handlers,
// reports, and the TUI render from snapshots and never touch live state.
type Snapshot struct {
	ID        uuid.UUID
	Offense   offense.Offense
	Fine      fine.Fine
	Appeal    *Appeal
	Status    Status
	CreatedAt time.Time
	ClosedAt  *time.Time
	Actions   []Action
}

// Snapshot copies the case under its lock.
func (c *Case) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		ID:        c.id,
		Offense:   *c.offense,
		Fine:      *c.fine,
		Status:    c.status,
		CreatedAt: c.createdAt,
		ClosedAt:  c.closedAt,
		Actions:   make([]Action, len(c.actions)),
	}

	snap.Fine.Payments = append([]fine.Payment(nil), c.fine.Payments...)
	copy(snap.Actions, c.actions)

	if c.appeal != nil {
		appeal := *c.appeal
		snap.Appeal = &appeal
	}

	return snap
}
