package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
	"github.com/MrJamesThe3rd/casefine/internal/registry/store"
)

var testToday = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testConfig() registry.Config {
	return registry.Config{
		GraceDays:            30,
		StatuteMonths:        24,
		ReminderIntervalDays: 14,
	}
}

func submission(name string, t offense.Type, date time.Time) registry.Submission {
	return registry.Submission{
		FullName:    name,
		Address:     "12 Harbor St",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Location:    "Main St & 4th Ave",
		Date:        date,
		Type:        t,
	}
}

// newTestService wires the service to the real in-memory store. Most flows
// are easier to drive end to end than through mock plumbing.
func newTestService(clk clock.Clock) *registry.Service {
	return registry.NewService(store.New(), clk, testConfig(), nil)
}

func TestService_CreateCase(t *testing.T) {
	type testCase struct {
		name      string
		sub       registry.Submission
		setupMock func(m *registry.MockRepository)
		wantErr   bool
	}

	knownOffender := &offense.Offender{
		ID:          uuid.New(),
		FullName:    "Jane Smith",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []testCase{
		{
			name: "UnknownOffenseType",
			sub:  submission("Jane Smith", offense.Type("jaywalking"), testToday),
			// Rejected before the repository is touched.
			wantErr: true,
		},
		{
			name: "NewOffenderRegistered",
			sub:  submission("Jane Smith", offense.TypeParkingViolation, testToday),
			setupMock: func(m *registry.MockRepository) {
				m.EXPECT().
					OffenderByIdentity(gomock.Any(), "Jane Smith", gomock.Any()).
					Return(nil, registry.ErrOffenderNotFound)
				m.EXPECT().SaveOffender(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().
					HistoryCountByType(gomock.Any(), gomock.Any(), offense.TypeParkingViolation).
					Return(0, nil)
				m.EXPECT().SaveCase(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().AppendCaseToHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "ExistingOffenderMerged",
			sub:  submission("Jane Smith", offense.TypeParkingViolation, testToday),
			setupMock: func(m *registry.MockRepository) {
				m.EXPECT().
					OffenderByIdentity(gomock.Any(), "Jane Smith", gomock.Any()).
					Return(knownOffender, nil)
				m.EXPECT().
					HistoryCountByType(gomock.Any(), knownOffender.ID, offense.TypeParkingViolation).
					Return(2, nil)
				m.EXPECT().SaveCase(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().
					AppendCaseToHistory(gomock.Any(), knownOffender.ID, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "SaveCaseError",
			sub:  submission("Jane Smith", offense.TypeParkingViolation, testToday),
			setupMock: func(m *registry.MockRepository) {
				m.EXPECT().
					OffenderByIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(knownOffender, nil)
				m.EXPECT().
					HistoryCountByType(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)
				m.EXPECT().SaveCase(gomock.Any(), gomock.Any()).Return(errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := registry.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := registry.NewService(repo, clock.NewFixed(testToday), testConfig(), nil)

			got, err := svc.CreateCase(context.Background(), tt.sub)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, casefile.StatusFineIssued, got.Status())
		})
	}
}

func TestService_CreateCase_RepeatOffenderPricing(t *testing.T) {
	svc := newTestService(clock.NewFixed(testToday))
	ctx := context.Background()

	first, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
	require.NoError(t, err)
	assert.True(t, first.Snapshot().Fine.Amount.Equal(decimal.NewFromInt(75)))

	// Same identity, same type: one prior raises the fine by a quarter.
	second, err := svc.CreateCase(ctx, submission("jane smith", offense.TypeParkingViolation, testToday))
	require.NoError(t, err)
	assert.True(t, second.Snapshot().Fine.Amount.Equal(decimal.RequireFromString("93.75")),
		"got %s", second.Snapshot().Fine.Amount)

	// A different type starts back at its own base fine.
	third, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeNoiseDisturbance, testToday))
	require.NoError(t, err)
	assert.True(t, third.Snapshot().Fine.Amount.Equal(decimal.NewFromInt(150)))

	// All three cases share one offender record.
	assert.Equal(t, first.OffenderID(), second.OffenderID())
	assert.Equal(t, first.OffenderID(), third.OffenderID())
}

func TestService_RecordPayment(t *testing.T) {
	t.Run("FullPaymentAutoCloses", func(t *testing.T) {
		svc := newTestService(clock.NewFixed(testToday))
		ctx := context.Background()

		c, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
		require.NoError(t, err)

		p, err := svc.RecordPayment(ctx, c.ID(), decimal.NewFromInt(75))
		require.NoError(t, err)
		assert.Equal(t, fine.MethodBankTransfer, p.Method)

		assert.Equal(t, casefile.StatusClosed, c.Status())
		require.NotNil(t, c.Snapshot().ClosedAt)
	})

	t.Run("PartialPaymentStaysOpen", func(t *testing.T) {
		svc := newTestService(clock.NewFixed(testToday))
		ctx := context.Background()

		c, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
		require.NoError(t, err)

		_, err = svc.RecordPayment(ctx, c.ID(), decimal.NewFromInt(50))
		require.NoError(t, err)

		assert.Equal(t, casefile.StatusPaymentPending, c.Status())
	})

	t.Run("PendingAppealBlocksAutoClose", func(t *testing.T) {
		svc := newTestService(clock.NewFixed(testToday))
		ctx := context.Background()

		c, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
		require.NoError(t, err)
		require.NoError(t, svc.FileAppeal(ctx, c.ID(), "Sign was obscured"))

		_, err = svc.RecordPayment(ctx, c.ID(), decimal.NewFromInt(75))
		require.NoError(t, err)

		assert.Equal(t, casefile.StatusPaid, c.Status())
	})

	t.Run("UnknownCase", func(t *testing.T) {
		svc := newTestService(clock.NewFixed(testToday))

		_, err := svc.RecordPayment(context.Background(), uuid.New(), decimal.NewFromInt(10))
		assert.ErrorIs(t, err, registry.ErrCaseNotFound)
	})
}

func TestService_DecideAppeal(t *testing.T) {
	svc := newTestService(clock.NewFixed(testToday))
	ctx := context.Background()

	c, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
	require.NoError(t, err)
	require.NoError(t, svc.FileAppeal(ctx, c.ID(), "Sign was obscured"))

	require.NoError(t, svc.DecideAppeal(ctx, c.ID(), true, "Photo evidence confirms", "R. Vega"))

	assert.Equal(t, casefile.StatusClosed, c.Status())
}

func TestService_SweepReminders(t *testing.T) {
	clk := clock.NewFixed(testToday)
	svc := newTestService(clk)
	ctx := context.Background()

	overdue1, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
	require.NoError(t, err)

	_, err = svc.CreateCase(ctx, submission("Miguel Torres", offense.TypeNoiseDisturbance, testToday))
	require.NoError(t, err)

	paid, err := svc.CreateCase(ctx, submission("Ana Pereira", offense.TypeWasteDisposal, testToday))
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, paid.ID(), decimal.NewFromInt(250))
	require.NoError(t, err)

	// Nothing is overdue inside the grace window.
	reminded, err := svc.SweepReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, reminded)

	clk.Advance(31 * 24 * time.Hour)

	// Both unpaid cases are past the deadline; the paid one is not swept.
	reminded, err = svc.SweepReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reminded)

	assert.Equal(t, casefile.StatusPaymentOverdue, overdue1.Status())
}

func TestService_CasesNearStatuteOfLimitations(t *testing.T) {
	svc := newTestService(clock.NewFixed(testToday))
	ctx := context.Background()

	nearExpiry := testToday.AddDate(0, -23, -2)
	recent := testToday.AddDate(0, -20, 0)

	old, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, nearExpiry))
	require.NoError(t, err)

	_, err = svc.CreateCase(ctx, submission("Miguel Torres", offense.TypeParkingViolation, recent))
	require.NoError(t, err)

	closed, err := svc.CreateCase(ctx, submission("Ana Pereira", offense.TypeWasteDisposal, nearExpiry))
	require.NoError(t, err)
	require.NoError(t, closed.Close("Resolved administratively"))

	got, err := svc.CasesNearStatuteOfLimitations(ctx, 30)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, old.ID(), got[0].ID)
}

func TestService_CasesByStatus(t *testing.T) {
	svc := newTestService(clock.NewFixed(testToday))
	ctx := context.Background()

	open, err := svc.CreateCase(ctx, submission("Jane Smith", offense.TypeParkingViolation, testToday))
	require.NoError(t, err)

	appealed, err := svc.CreateCase(ctx, submission("Miguel Torres", offense.TypeNoiseDisturbance, testToday))
	require.NoError(t, err)
	require.NoError(t, svc.FileAppeal(ctx, appealed.ID(), "reason"))

	issued, err := svc.CasesByStatus(ctx, casefile.StatusFineIssued)
	require.NoError(t, err)
	require.Len(t, issued, 1)
	assert.Equal(t, open.ID(), issued[0].ID)

	filed, err := svc.CasesByStatus(ctx, casefile.StatusAppealFiled)
	require.NoError(t, err)
	require.Len(t, filed, 1)
	assert.Equal(t, appealed.ID(), filed[0].ID)
}
