package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts registry operations. A nil *Metrics is a no-op, so
// library embedders that do not scrape can pass nil.
type Metrics struct {
	casesCreated     prometheus.Counter
	paymentsRecorded prometheus.Counter
	appealsFiled     prometheus.Counter
	remindersSent    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		casesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casefine_cases_created_total",
			Help: "Total number of regulatory cases created",
		}),
		paymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casefine_payments_recorded_total",
			Help: "Total number of fine payments recorded",
		}),
		appealsFiled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casefine_appeals_filed_total",
			Help: "Total number of appeals filed",
		}),
		remindersSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casefine_reminders_sent_total",
			Help: "Total number of payment reminders sent by sweeps",
		}),
	}
}

func (m *Metrics) CaseCreated() {
	if m == nil {
		return
	}

	m.casesCreated.Inc()
}

func (m *Metrics) PaymentRecorded() {
	if m == nil {
		return
	}

	m.paymentsRecorded.Inc()
}

func (m *Metrics) AppealFiled() {
	if m == nil {
		return
	}

	m.appealsFiled.Inc()
}

func (m *Metrics) RemindersSent(n int) {
	if m == nil {
		return
	}

	m.remindersSent.Add(float64(n))
}
