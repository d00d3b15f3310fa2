package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
)

// CaseSource is the read-only query surface the reports aggregate over.
type CaseSource interface {
	AllCases(ctx context.Context) ([]casefile.Snapshot, error)
}

// Service renders fixed-width text reports over the case registry. It only
// reads snapshots and never mutates anything.
type Service struct {
	cases CaseSource
	clk   clock.Clock
}

func NewService(cases CaseSource, clk clock.Clock) *Service {
	return &Service{cases: cases, clk: clk}
}

// MonthlyFineStatistics aggregates case counts and fine totals by the
// calendar month the case was created in.
func (s *Service) MonthlyFineStatistics(ctx context.Context) (string, error) {
	snaps, err := s.cases.AllCases(ctx)
	if err != nil {
		return "", fmt.Errorf("listing cases: %w", err)
	}

	totals := make(map[time.Month]decimal.Decimal)
	counts := make(map[time.Month]int)

	for _, c := range snaps {
		month := c.CreatedAt.Month()
		totals[month] = totals[month].Add(c.Fine.Amount)
		counts[month]++
	}

	var b strings.Builder

	writeHeader(&b, "Monthly Fine Statistics")
	fmt.Fprintf(&b, "%-10s %-12s %-14s %-14s\n", "Month", "Case Count", "Total Fines", "Average Fine")
	b.WriteString(strings.Repeat("-", 54) + "\n")

	grandTotal := decimal.Zero
	grandCount := 0

	for m := time.January; m <= time.December; m++ {
		count, ok := counts[m]
		if !ok {
			continue
		}

		total := totals[m]
		avg := total.Div(decimal.NewFromInt(int64(count)))

		fmt.Fprintf(&b, "%-10s %-12d $%-13s $%-13s\n",
			m.String(), count, total.StringFixed(2), avg.StringFixed(2))

		grandTotal = grandTotal.Add(total)
		grandCount += count
	}

	b.WriteString(strings.Repeat("-", 54) + "\n")

	grandAvg := decimal.Zero
	if grandCount > 0 {
		grandAvg = grandTotal.Div(decimal.NewFromInt(int64(grandCount)))
	}

	fmt.Fprintf(&b, "%-10s %-12d $%-13s $%-13s\n",
		"TOTAL", grandCount, grandTotal.StringFixed(2), grandAvg.StringFixed(2))

	return b.String(), nil
}

// PaymentStatusReport buckets cases by the payment status of their fine.
// The overdue bucket is date-aware: unpaid fines past their deadline are
// counted as overdue rather than by their stored status.
func (s *Service) PaymentStatusReport(ctx context.Context) (string, error) {
	snaps, err := s.cases.AllCases(ctx)
	if err != nil {
		return "", fmt.Errorf("listing cases: %w", err)
	}

	today := s.clk.Today()

	counts := make(map[fine.Status]int)
	amounts := make(map[fine.Status]decimal.Decimal)

	for _, c := range snaps {
		status := c.Fine.StatusAt(today)
		counts[status]++
		amounts[status] = amounts[status].Add(c.Fine.Amount)
	}

	var b strings.Builder

	writeHeader(&b, "Payment Status Report")
	fmt.Fprintf(&b, "%-16s %-12s %-14s\n", "Status", "Case Count", "Total Amount")
	b.WriteString(strings.Repeat("-", 44) + "\n")

	total := 0
	totalAmount := decimal.Zero

	for _, status := range []fine.Status{fine.StatusUnpaid, fine.StatusPartiallyPaid, fine.StatusPaid, fine.StatusOverdue} {
		count := counts[status]
		amount := amounts[status]

		fmt.Fprintf(&b, "%-16s %-12d $%-13s\n", status, count, amount.StringFixed(2))

		total += count
		totalAmount = totalAmount.Add(amount)
	}

	b.WriteString(strings.Repeat("-", 44) + "\n")
	fmt.Fprintf(&b, "%-16s %-12d $%-13s\n", "TOTAL", total, totalAmount.StringFixed(2))

	overduePct := 0.0
	if total > 0 {
		overduePct = float64(counts[fine.StatusOverdue]) * 100.0 / float64(total)
	}

	fmt.Fprintf(&b, "\nPercentage of overdue cases: %.2f%%\n", overduePct)

	return b.String(), nil
}

// OffenseTypeDistribution aggregates case counts and fine totals per
// offense type, in catalog order.
func (s *Service) OffenseTypeDistribution(ctx context.Context) (string, error) {
	snaps, err := s.cases.AllCases(ctx)
	if err != nil {
		return "", fmt.Errorf("listing cases: %w", err)
	}

	counts := make(map[offense.Type]int)
	amounts := make(map[offense.Type]decimal.Decimal)

	for _, c := range snaps {
		t := c.Offense.Type
		counts[t]++
		amounts[t] = amounts[t].Add(c.Fine.Amount)
	}

	var b strings.Builder

	writeHeader(&b, "Offense Type Distribution")
	fmt.Fprintf(&b, "%-20s %-12s %-14s\n", "Offense Type", "Case Count", "Total Fines")
	b.WriteString(strings.Repeat("-", 48) + "\n")

	for _, t := range offense.Types() {
		count, ok := counts[t]
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "%-20s %-12d $%-13s\n", t, count, amounts[t].StringFixed(2))
	}

	return b.String(), nil
}

func writeHeader(b *strings.Builder, title string) {
	line := strings.Repeat("=", len(title))
	fmt.Fprintf(b, "%s\n%s\n%s\n", line, title, line)
}
