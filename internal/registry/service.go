package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/registry/metrics"
)

var (
	// ErrCaseNotFound is returned for lookups by unknown case id.
	ErrCaseNotFound = errors.New("case not found")

	// ErrOffenderNotFound is returned for lookups by unknown offender id.
	ErrOffenderNotFound = errors.New("offender not found")

	// ErrUnknownOffenseType is returned for submissions with a type
	// missing from the catalog.
	ErrUnknownOffenseType = errors.New("unknown offense type")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=registry
type Repository interface {
	SaveCase(ctx context.Context, c *casefile.Case) error
	Case(ctx context.Context, id uuid.UUID) (*casefile.Case, error)
	Cases(ctx context.Context) ([]*casefile.Case, error)

	SaveOffender(ctx context.Context, o *offense.Offender) error
	Offender(ctx context.Context, id uuid.UUID) (*offense.Offender, error)
	OffenderByIdentity(ctx context.Context, fullName string, dateOfBirth time.Time) (*offense.Offender, error)
	AppendCaseToHistory(ctx context.Context, offenderID, caseID uuid.UUID) error
	HistoryCountByType(ctx context.Context, offenderID uuid.UUID, t offense.Type) (int, error)
}

// Config carries the engine's tunable windows. The reminder interval is
// advisory: the sweep itself re-fires for every overdue case on every call,
// and schedulers that want exactly-once-per-interval semantics space their
// calls by it.
type Config struct {
	GraceDays            int
	StatuteMonths        int
	ReminderIntervalDays int
}

// Service is the case registry: it orchestrates case creation across the
// offender records and the fine policy, and drives every lifecycle
// operation and bulk sweep. All reads of "now" go through the injected
// clock.
type Service struct {
	repo    Repository
	clk     clock.Clock
	cfg     Config
	metrics *metrics.Metrics
}

func NewService(repo Repository, clk clock.Clock, cfg Config, m *metrics.Metrics) *Service {
	return &Service{repo: repo, clk: clk, cfg: cfg, metrics: m}
}

// Submission is an offense report as received from a front end: offender
// identity fields plus the incident itself. OffenderID is set when the
// caller already knows the canonical offender.
type Submission struct {
	OffenderID   *uuid.UUID
	FullName     string
	Address      string
	DateOfBirth  time.Time
	Location     string
	Date         time.Time
	Type         offense.Type
	EvidenceNote string
}

// CreateCase opens a case for a submitted offense: it canonicalizes the
// offender, prices the fine from the offender's prior same-type history,
// issues the fine, constructs the case, and registers it. The case id is
// appended to the offender's history only after the case is fully built.
func (s *Service) CreateCase(ctx context.Context, sub Submission) (*casefile.Case, error) {
	if !sub.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOffenseType, sub.Type)
	}

	offender, err := s.registerOrMerge(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("resolving offender: %w", err)
	}

	prior, err := s.repo.HistoryCountByType(ctx, offender.ID, sub.Type)
	if err != nil {
		return nil, fmt.Errorf("counting prior offenses: %w", err)
	}

	amount, err := fine.Compute(sub.Type, prior)
	if err != nil {
		return nil, fmt.Errorf("computing fine: %w", err)
	}

	off := &offense.Offense{
		ID:           uuid.New(),
		OffenderID:   offender.ID,
		Location:     sub.Location,
		Date:         sub.Date,
		Type:         sub.Type,
		EvidenceNote: sub.EvidenceNote,
	}

	f := fine.New(amount, s.clk.Today(), s.cfg.GraceDays)
	c := casefile.New(off, offender.FullName, f, s.clk)

	if err := s.repo.SaveCase(ctx, c); err != nil {
		return nil, fmt.Errorf("saving case: %w", err)
	}

	if err := s.repo.AppendCaseToHistory(ctx, offender.ID, c.ID()); err != nil {
		return nil, fmt.Errorf("appending case to offender history: %w", err)
	}

	s.metrics.CaseCreated()

	return c, nil
}

// registerOrMerge resolves a submission to the single stored offender
// record. An existing record always wins, so accumulated history is kept
// and the submission's transient identity fields are discarded.
func (s *Service) registerOrMerge(ctx context.Context, sub Submission) (*offense.Offender, error) {
	if sub.OffenderID != nil {
		existing, err := s.repo.Offender(ctx, *sub.OffenderID)
		if err == nil {
			return existing, nil
		}

		if !errors.Is(err, ErrOffenderNotFound) {
			return nil, err
		}
	}

	existing, err := s.repo.OffenderByIdentity(ctx, sub.FullName, sub.DateOfBirth)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrOffenderNotFound) {
		return nil, err
	}

	offender := &offense.Offender{
		ID:          uuid.New(),
		FullName:    sub.FullName,
		Address:     sub.Address,
		DateOfBirth: sub.DateOfBirth,
	}

	if sub.OffenderID != nil {
		offender.ID = *sub.OffenderID
	}

	if err := s.repo.SaveOffender(ctx, offender); err != nil {
		return nil, err
	}

	return offender, nil
}

// GetCase looks up a case by id.
func (s *Service) GetCase(ctx context.Context, id uuid.UUID) (*casefile.Case, error) {
	return s.repo.Case(ctx, id)
}

// GetOffender looks up an offender by id.
func (s *Service) GetOffender(ctx context.Context, id uuid.UUID) (*offense.Offender, error) {
	return s.repo.Offender(ctx, id)
}

// RecordPayment applies a payment with the default method to a case's fine
// and auto-closes the case when the fine is settled and no appeal is
// pending.
func (s *Service) RecordPayment(ctx context.Context, caseID uuid.UUID, amount decimal.Decimal) (*fine.Payment, error) {
	c, err := s.repo.Case(ctx, caseID)
	if err != nil {
		return nil, err
	}

	p := fine.Payment{
		ID:     uuid.New(),
		Amount: amount,
		Date:   s.clk.Today(),
		Method: fine.MethodBankTransfer,
	}

	if err := c.RecordPayment(p); err != nil {
		return nil, err
	}

	s.metrics.PaymentRecorded()

	if c.Status() == casefile.StatusPaid && !c.HasAppeal() {
		if err := c.Close("Fine paid in full"); err != nil {
			return nil, fmt.Errorf("closing paid case: %w", err)
		}
	}

	return &p, nil
}

// FileAppeal records a case's single appeal.
func (s *Service) FileAppeal(ctx context.Context, caseID uuid.UUID, reason string) error {
	c, err := s.repo.Case(ctx, caseID)
	if err != nil {
		return err
	}

	if err := c.FileAppeal(reason); err != nil {
		return err
	}

	s.metrics.AppealFiled()

	return nil
}

// DecideAppeal records the final decision on a case's appeal and drives
// the full close when the appeal is approved.
func (s *Service) DecideAppeal(ctx context.Context, caseID uuid.UUID, approved bool, reason, reviewer string) error {
	c, err := s.repo.Case(ctx, caseID)
	if err != nil {
		return err
	}

	if err := c.DecideAppeal(approved, reason, reviewer); err != nil {
		return err
	}

	if approved {
		if err := c.Close("Appeal approved"); err != nil {
			return fmt.Errorf("closing approved case: %w", err)
		}
	}

	return nil
}

// AttachEvidence sets the evidence note on a case's offense.
func (s *Service) AttachEvidence(ctx context.Context, caseID uuid.UUID, note string) error {
	c, err := s.repo.Case(ctx, caseID)
	if err != nil {
		return err
	}

	return c.AttachEvidence(note)
}

// SweepReminders walks every tracked case and fires a reminder on each one
// whose fine is overdue. Returns the exact number of cases reminded. Full
// scan, linear in the number of cases.
func (s *Service) SweepReminders(ctx context.Context) (int, error) {
	cases, err := s.repo.Cases(ctx)
	if err != nil {
		return 0, err
	}

	reminded := 0

	for _, c := range cases {
		if c.SendReminder() {
			reminded++
		}
	}

	s.metrics.RemindersSent(reminded)

	return reminded, nil
}

// AllCases returns read-only snapshots of every tracked case, for the
// reporting surface.
func (s *Service) AllCases(ctx context.Context) ([]casefile.Snapshot, error) {
	cases, err := s.repo.Cases(ctx)
	if err != nil {
		return nil, err
	}

	snaps := make([]casefile.Snapshot, 0, len(cases))
	for _, c := range cases {
		snaps = append(snaps, c.Snapshot())
	}

	return snaps, nil
}

// CasesByStatus returns snapshots of cases currently in the given status.
func (s *Service) CasesByStatus(ctx context.Context, status casefile.Status) ([]casefile.Snapshot, error) {
	cases, err := s.repo.Cases(ctx)
	if err != nil {
		return nil, err
	}

	var snaps []casefile.Snapshot

	for _, c := range cases {
		if c.Status() == status {
			snaps = append(snaps, c.Snapshot())
		}
	}

	return snaps, nil
}

// CasesByOffender returns snapshots of the offender's cases.
func (s *Service) CasesByOffender(ctx context.Context, offenderID uuid.UUID) ([]casefile.Snapshot, error) {
	cases, err := s.repo.Cases(ctx)
	if err != nil {
		return nil, err
	}

	var snaps []casefile.Snapshot

	for _, c := range cases {
		if c.OffenderID() == offenderID {
			snaps = append(snaps, c.Snapshot())
		}
	}

	return snaps, nil
}

// CasesNearStatuteOfLimitations returns snapshots of open cases whose
// limitation window expires within warningDays of today: offense date plus
// the configured statute months is on or before today plus the warning.
func (s *Service) CasesNearStatuteOfLimitations(ctx context.Context, warningDays int) ([]casefile.Snapshot, error) {
	cases, err := s.repo.Cases(ctx)
	if err != nil {
		return nil, err
	}

	warningDate := s.clk.Today().AddDate(0, 0, warningDays)

	var snaps []casefile.Snapshot

	for _, c := range cases {
		if c.Status() == casefile.StatusClosed {
			continue
		}

		expiry := c.OffenseDate().AddDate(0, s.cfg.StatuteMonths, 0)
		if !expiry.After(warningDate) {
			snaps = append(snaps, c.Snapshot())
		}
	}

	return snaps, nil
}
