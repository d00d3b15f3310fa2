package cases

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
)

type fineResponse struct {
	Amount    string    `json:"amount"`
	IssueDate time.Time `json:"issue_date"`
	Deadline  time.Time `json:"deadline"`
	TotalPaid string    `json:"total_paid"`
	Remaining string    `json:"remaining"`
	Status    string    `json:"status"`
}

type appealResponse struct {
	Reason    string     `json:"reason"`
	FiledAt   time.Time  `json:"filed_at"`
	Decided   bool       `json:"decided"`
	Approved  *bool      `json:"approved,omitempty"`
	Decision  string     `json:"decision,omitempty"`
	Reviewer  string     `json:"reviewer,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

type actionResponse struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
	Actor       string    `json:"actor"`
}

type caseResponse struct {
	ID          uuid.UUID        `json:"id"`
	OffenderID  uuid.UUID        `json:"offender_id"`
	OffenseType string           `json:"offense_type"`
	Location    string           `json:"location"`
	OffenseDate time.Time        `json:"offense_date"`
	Evidence    string           `json:"evidence,omitempty"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	ClosedAt    *time.Time       `json:"closed_at,omitempty"`
	Fine        fineResponse     `json:"fine"`
	Appeal      *appealResponse  `json:"appeal,omitempty"`
	Actions     []actionResponse `json:"actions"`
}

func toResponse(snap casefile.Snapshot) caseResponse {
	resp := caseResponse{
		ID:          snap.ID,
		OffenderID:  snap.Offense.OffenderID,
		OffenseType: snap.Offense.Type.String(),
		Location:    snap.Offense.Location,
		OffenseDate: snap.Offense.Date,
		Evidence:    snap.Offense.EvidenceNote,
		Status:      snap.Status.String(),
		CreatedAt:   snap.CreatedAt,
		ClosedAt:    snap.ClosedAt,
		Fine: fineResponse{
			Amount:    snap.Fine.Amount.StringFixed(2),
			IssueDate: snap.Fine.IssueDate,
			Deadline:  snap.Fine.Deadline,
			TotalPaid: snap.Fine.TotalPaid.StringFixed(2),
			Remaining: snap.Fine.Remaining().StringFixed(2),
			Status:    snap.Fine.Status.String(),
		},
		Actions: make([]actionResponse, 0, len(snap.Actions)),
	}

	if snap.Appeal != nil {
		resp.Appeal = &appealResponse{
			Reason:  snap.Appeal.Reason,
			FiledAt: snap.Appeal.FiledAt,
			Decided: snap.Appeal.Decided(),
		}

		if snap.Appeal.Decided() {
			approved := snap.Appeal.Approved
			resp.Appeal.Approved = &approved
			resp.Appeal.Decision = snap.Appeal.Decision
			resp.Appeal.Reviewer = snap.Appeal.Reviewer
			resp.Appeal.DecidedAt = snap.Appeal.DecidedAt
		}
	}

	for _, a := range snap.Actions {
		resp.Actions = append(resp.Actions, actionResponse{
			Type:        string(a.Type),
			Description: a.Description,
			At:          a.At,
			Actor:       a.Actor,
		})
	}

	return resp
}

func toResponseList(snaps []casefile.Snapshot) []caseResponse {
	out := make([]caseResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, toResponse(s))
	}

	return out
}
