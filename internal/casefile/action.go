package casefile

import (
	"time"

	"github.com/google/uuid"
)

// ActionType tags an entry in a case's audit trail.
type ActionType string

const (
	ActionCaseCreated      ActionType = "case_created"
	ActionFineCalculated   ActionType = "fine_calculated"
	ActionPaymentReceived  ActionType = "payment_received"
	ActionReminderSent     ActionType = "reminder_sent"
	ActionAppealReceived   ActionType = "appeal_received"
	ActionAppealDecision   ActionType = "appeal_decision"
	ActionCaseClosed       ActionType = "case_closed"
	ActionEvidenceAdded    ActionType = "evidence_added"
	ActionStatusUpdated    ActionType = "status_updated"
	ActionNoticeGenerated  ActionType = "notice_generated"
	ActionPaymentRequested ActionType = "payment_request_sent"
)

// Action is one append-only audit trail entry. Entries are never edited
// or removed once appended.
type Action struct {
	ID          uuid.UUID
	Type        ActionType
	Description string
	At          time.Time
	Actor       string
}
