package fine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidPaymentAmount is returned for zero or negative payment amounts.
// The ledger is left untouched when it is returned.
var ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

// Status represents the derived payment status of a fine.
type Status string

const (
	StatusUnpaid        Status = "unpaid"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
	StatusOverdue       Status = "overdue"
)

func (s Status) String() string { return string(s) }

// Method represents how a payment was made.
type Method string

const (
	MethodCreditCard    Method = "credit_card"
	MethodBankTransfer  Method = "bank_transfer"
	MethodCash          Method = "cash"
	MethodCheck         Method = "check"
	MethodOnlinePayment Method = "online_payment"
	MethodMoneyOrder    Method = "money_order"
)

// Payment is a single payment applied to a fine. Immutable once recorded.
type Payment struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    Method
	Reference string
}

// Fine is the monetary ledger of a case: the amount fixed at issuance, the
// payment deadline, and the ordered payments applied so far. The derived
// Status field is only ever written by recompute, which runs on every
// mutation, so it can never drift from the payment totals.
type Fine struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	IssueDate time.Time
	Deadline  time.Time
	Payments  []Payment
	TotalPaid decimal.Decimal
	Status    Status
}

// New issues a fine for the given amount on issueDate, due graceDays later.
func New(amount decimal.Decimal, issueDate time.Time, graceDays int) *Fine {
	return &Fine{
		ID:        uuid.New(),
		Amount:    amount,
		IssueDate: issueDate,
		Deadline:  issueDate.AddDate(0, 0, graceDays),
		TotalPaid: decimal.Zero,
		Status:    StatusUnpaid,
	}
}

// Record applies a payment to the ledger and recomputes the status.
// Rejects non-positive amounts before any state changes.
func (f *Fine) Record(p Payment) error {
	if !p.Amount.IsPositive() {
		return ErrInvalidPaymentAmount
	}

	f.Payments = append(f.Payments, p)
	f.TotalPaid = f.TotalPaid.Add(p.Amount)
	f.recompute()

	return nil
}

// recompute is the single place the derived payment status is written.
func (f *Fine) recompute() {
	switch {
	case f.TotalPaid.GreaterThanOrEqual(f.Amount):
		f.Status = StatusPaid
	case f.TotalPaid.IsPositive():
		f.Status = StatusPartiallyPaid
	default:
		f.Status = StatusUnpaid
	}
}

// Overdue reports whether the deadline has passed without full payment.
func (f *Fine) Overdue(today time.Time) bool {
	return today.After(f.Deadline) && f.Status != StatusPaid
}

// StatusAt folds the deadline into the derived status: an unpaid or
// partially paid fine past its deadline reports as overdue. Used by the
// reporting surface; lifecycle transitions key off Status directly.
func (f *Fine) StatusAt(today time.Time) Status {
	if f.Overdue(today) {
		return StatusOverdue
	}
	return f.Status
}

// Remaining returns the outstanding balance, floored at zero.
func (f *Fine) Remaining() decimal.Decimal {
	rem := f.Amount.Sub(f.TotalPaid)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}
