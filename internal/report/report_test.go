package report_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/report"
)

var reportToday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// stubSource feeds a fixed set of snapshots to the reports.
type stubSource struct {
	snaps []casefile.Snapshot
}

func (s *stubSource) AllCases(context.Context) ([]casefile.Snapshot, error) {
	return s.snaps, nil
}

func snap(createdAt time.Time, typ offense.Type, amount int64, paid int64, deadline time.Time) casefile.Snapshot {
	f := fine.Fine{
		Amount:    decimal.NewFromInt(amount),
		TotalPaid: decimal.NewFromInt(paid),
		Deadline:  deadline,
		Status:    fine.StatusUnpaid,
	}

	switch {
	case paid >= amount:
		f.Status = fine.StatusPaid
	case paid > 0:
		f.Status = fine.StatusPartiallyPaid
	}

	return casefile.Snapshot{
		CreatedAt: createdAt,
		Offense:   offense.Offense{Type: typ},
		Fine:      f,
	}
}

func TestService_MonthlyFineStatistics(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	src := &stubSource{snaps: []casefile.Snapshot{
		snap(jan, offense.TypeParkingViolation, 75, 0, reportToday),
		snap(jan, offense.TypeNoiseDisturbance, 150, 0, reportToday),
		snap(feb, offense.TypeWasteDisposal, 250, 0, reportToday),
	}}

	svc := report.NewService(src, clock.NewFixed(reportToday))

	out, err := svc.MonthlyFineStatistics(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "Monthly Fine Statistics")
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "February")
	assert.NotContains(t, out, "March", "months without cases are omitted")
	assert.Contains(t, out, "$225.00", "january total")
	assert.Contains(t, out, "$112.50", "january average")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "$475.00", "grand total")
}

func TestService_PaymentStatusReport(t *testing.T) {
	future := reportToday.AddDate(0, 0, 10)
	past := reportToday.AddDate(0, 0, -10)

	src := &stubSource{snaps: []casefile.Snapshot{
		snap(reportToday, offense.TypeParkingViolation, 75, 0, future),  // unpaid
		snap(reportToday, offense.TypeParkingViolation, 75, 75, past),   // paid, never overdue
		snap(reportToday, offense.TypeNoiseDisturbance, 150, 50, past),  // overdue despite partial payment
		snap(reportToday, offense.TypeWasteDisposal, 250, 0, past),      // overdue
	}}

	svc := report.NewService(src, clock.NewFixed(reportToday))

	out, err := svc.PaymentStatusReport(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "Payment Status Report")
	assert.Contains(t, out, "Percentage of overdue cases: 50.00%")

	// The overdue bucket absorbs the past-deadline partial payment.
	assert.Contains(t, out, fmt.Sprintf("%-16s %-12d", fine.StatusPartiallyPaid, 0))
	assert.Contains(t, out, fmt.Sprintf("%-16s %-12d", fine.StatusOverdue, 2))
}

func TestService_OffenseTypeDistribution(t *testing.T) {
	src := &stubSource{snaps: []casefile.Snapshot{
		snap(reportToday, offense.TypeParkingViolation, 75, 0, reportToday),
		snap(reportToday, offense.TypeParkingViolation, 75, 0, reportToday),
		snap(reportToday, offense.TypeFoodSafety, 800, 0, reportToday),
	}}

	svc := report.NewService(src, clock.NewFixed(reportToday))

	out, err := svc.OffenseTypeDistribution(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "Offense Type Distribution")
	assert.Contains(t, out, fmt.Sprintf("%-20s %-12d", offense.TypeParkingViolation, 2))
	assert.Contains(t, out, fmt.Sprintf("%-20s %-12d", offense.TypeFoodSafety, 1))
	assert.NotContains(t, out, "environmental", "types without cases are omitted")
	assert.Contains(t, out, "$150.00")
	assert.Contains(t, out, "$800.00")
}
