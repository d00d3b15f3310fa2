package intake

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/casefine/internal/intake"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

type Handler struct {
	parser *intake.Parser
	svc    *registry.Service
}

func NewHandler(parser *intake.Parser, svc *registry.Service) *Handler {
	return &Handler{parser: parser, svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type uploadResponse struct {
	Created []createdCase `json:"created"`
}

type createdCase struct {
	CaseID     string `json:"case_id"`
	FineAmount string `json:"fine_amount"`
	Deadline   string `json:"deadline"`
}

// upload accepts a raw device export in the request body, parses it, and
// opens one case per row. The whole batch is parsed before any case is
// created, so a malformed file creates nothing.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	subs, err := h.parser.Parse(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := uploadResponse{Created: make([]createdCase, 0, len(subs))}

	for _, sub := range subs {
		c, err := h.svc.CreateCase(r.Context(), sub)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		snap := c.Snapshot()
		resp.Created = append(resp.Created, createdCase{
			CaseID:     snap.ID.String(),
			FineAmount: snap.Fine.Amount.StringFixed(2),
			Deadline:   snap.Fine.Deadline.Format("2006-01-02"),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
