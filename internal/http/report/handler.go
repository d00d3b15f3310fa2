package report

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/casefine/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/payment-status", h.paymentStatus)
	r.Get("/offense-types", h.offenseTypes)
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.svc.MonthlyFineStatistics)
}

func (h *Handler) paymentStatus(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.svc.PaymentStatusReport)
}

func (h *Handler) offenseTypes(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.svc.OffenseTypeDistribution)
}

// Reports render as plain text; callers pipe them to terminals and printers.
func render(w http.ResponseWriter, r *http.Request, gen func(context.Context) (string, error)) {
	text, err := gen(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	_, _ = w.Write([]byte(text))
}
