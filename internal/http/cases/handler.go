package cases

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

type Handler struct {
	svc *registry.Service
}

func NewHandler(svc *registry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/", h.list)
	r.Get("/statute-warnings", h.statuteWarnings)
	r.Post("/sweep-reminders", h.sweepReminders)
	r.Get("/{id}", h.get)
	r.Post("/{id}/payments", h.recordPayment)
	r.Post("/{id}/appeal", h.fileAppeal)
	r.Post("/{id}/appeal/decision", h.decideAppeal)
	r.Post("/{id}/evidence", h.attachEvidence)
}

type submitRequest struct {
	OffenderID  *uuid.UUID `json:"offender_id,omitempty"`
	FullName    string     `json:"full_name"`
	Address     string     `json:"address"`
	DateOfBirth time.Time  `json:"date_of_birth"`
	Location    string     `json:"location"`
	Date        time.Time  `json:"date"`
	OffenseType string     `json:"offense_type"`
	Evidence    string     `json:"evidence,omitempty"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.CreateCase(r.Context(), registry.Submission{
		OffenderID:   req.OffenderID,
		FullName:     req.FullName,
		Address:      req.Address,
		DateOfBirth:  req.DateOfBirth,
		Location:     req.Location,
		Date:         req.Date,
		Type:         offense.Type(req.OffenseType),
		EvidenceNote: req.Evidence,
	})
	if err != nil {
		if errors.Is(err, registry.ErrUnknownOffenseType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(c.Snapshot()))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCase(r.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrCaseNotFound) {
			http.Error(w, "case not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(c.Snapshot()))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		snaps []casefile.Snapshot
		err   error
	)

	switch {
	case r.URL.Query().Get("status") != "":
		snaps, err = h.svc.CasesByStatus(r.Context(), casefile.Status(r.URL.Query().Get("status")))
	case r.URL.Query().Get("offender_id") != "":
		var offenderID uuid.UUID

		offenderID, err = uuid.Parse(r.URL.Query().Get("offender_id"))
		if err != nil {
			http.Error(w, "invalid offender_id", http.StatusBadRequest)
			return
		}

		snaps, err = h.svc.CasesByOffender(r.Context(), offenderID)
	default:
		snaps, err = h.svc.AllCases(r.Context())
	}

	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(snaps))
}

func (h *Handler) statuteWarnings(w http.ResponseWriter, r *http.Request) {
	warningDays := 30

	if s := r.URL.Query().Get("days"); s != "" {
		d, err := parsePositiveInt(s)
		if err != nil {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}

		warningDays = d
	}

	snaps, err := h.svc.CasesNearStatuteOfLimitations(r.Context(), warningDays)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(snaps))
}

func (h *Handler) sweepReminders(w http.ResponseWriter, r *http.Request) {
	reminded, err := h.svc.SweepReminders(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"reminded": reminded})
}

type paymentRequest struct {
	Amount string `json:"amount"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	if _, err := h.svc.RecordPayment(r.Context(), id, amount); err != nil {
		writeDomainError(w, err)
		return
	}

	c, err := h.svc.GetCase(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c.Snapshot()))
}

type appealRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) fileAppeal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req appealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.FileAppeal(r.Context(), id, req.Reason); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type decisionRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
	Reviewer string `json:"reviewer"`
}

func (h *Handler) decideAppeal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.DecideAppeal(r.Context(), id, req.Approved, req.Reason, req.Reviewer); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type evidenceRequest struct {
	Note string `json:"note"`
}

func (h *Handler) attachEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req evidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AttachEvidence(r.Context(), id, req.Note); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps the engine's typed failures to status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrCaseNotFound):
		http.Error(w, "case not found", http.StatusNotFound)
	case errors.Is(err, fine.ErrInvalidPaymentAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, casefile.ErrDuplicateAppeal),
		errors.Is(err, casefile.ErrNoAppeal),
		errors.Is(err, casefile.ErrAppealDecided),
		errors.Is(err, casefile.ErrCaseClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("not a positive integer")
	}

	return n, nil
}
