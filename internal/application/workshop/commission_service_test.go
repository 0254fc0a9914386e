package workshop

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

func newCreditedCommission(t *testing.T, tailorID uuid.UUID, garmentTypeName string, quantity int, amount int64) workshop.Commission {
	t.Helper()
	task, err := workshop.NewTask(uuid.New(), tailorID, decimal.NewFromInt(amount*10))
	require.NoError(t, err)
	require.NoError(t, task.Start())
	require.NoError(t, task.Complete())
	require.NoError(t, task.Approve(uuid.New()))

	commission, err := workshop.NewCommissionFromTask(task, garmentTypeName, quantity, "Ana Reyes")
	require.NoError(t, err)
	return *commission
}

func TestCommissionService_Summary(t *testing.T) {
	repo := new(MockCommissionRepository)
	service := NewCommissionService(repo)

	tailorID := uuid.New()
	ref := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC) // a Wednesday

	commissions := []workshop.Commission{
		newCreditedCommission(t, tailorID, "Barong Tagalog", 2, 100),
		newCreditedCommission(t, tailorID, "Barong Tagalog", 1, 50),
		newCreditedCommission(t, tailorID, "Slacks", 1, 30),
	}

	repo.On("FindByTailorInRange", mock.Anything, tailorID,
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC),
	).Return(commissions, nil)

	summary, err := service.Summary(context.Background(), tailorID, PeriodWeekly, ref)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.OrderCount)
	assert.True(t, decimal.NewFromInt(180).Equal(summary.TotalAmount))

	require.Len(t, summary.Breakdown, 2)
	assert.Equal(t, "Barong Tagalog", summary.Breakdown[0].GarmentTypeName)
	assert.Equal(t, 3, summary.Breakdown[0].Quantity)
	assert.True(t, decimal.NewFromInt(150).Equal(summary.Breakdown[0].Amount))
	assert.Equal(t, "Slacks", summary.Breakdown[1].GarmentTypeName)
	repo.AssertExpectations(t)
}

func TestCommissionService_Summary_InvalidPeriod(t *testing.T) {
	service := NewCommissionService(new(MockCommissionRepository))

	_, err := service.Summary(context.Background(), uuid.New(), "daily", time.Now())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
}

func TestPeriodRange(t *testing.T) {
	loc := time.UTC

	t.Run("weekly starts on Monday and Sunday closes the week", func(t *testing.T) {
		sunday := time.Date(2026, 3, 22, 15, 0, 0, 0, loc)
		from, to, err := PeriodRange(PeriodWeekly, sunday)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, loc), from)
		assert.Equal(t, time.Date(2026, 3, 23, 0, 0, 0, 0, loc), to)
	})

	t.Run("monthly covers the calendar month", func(t *testing.T) {
		from, to, err := PeriodRange(PeriodMonthly, time.Date(2026, 2, 14, 8, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, loc), from)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), to)
	})

	t.Run("yearly covers the calendar year", func(t *testing.T) {
		from, to, err := PeriodRange(PeriodYearly, time.Date(2026, 8, 23, 0, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, loc), from)
		assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, loc), to)
	})
}

func TestCommissionService_MarkPaid(t *testing.T) {
	t.Run("marks a credited commission as paid", func(t *testing.T) {
		repo := new(MockCommissionRepository)
		service := NewCommissionService(repo)

		commission := newCreditedCommission(t, uuid.New(), "Barong Tagalog", 1, 100)

		repo.On("FindByID", mock.Anything, commission.ID).Return(&commission, nil)
		repo.On("Save", mock.Anything, &commission).Return(nil)

		resp, err := service.MarkPaid(context.Background(), commission.ID)

		require.NoError(t, err)
		assert.Equal(t, string(workshop.CommissionStatusPaid), resp.Status)
		assert.NotNil(t, resp.PaidDate)
	})

	t.Run("rejects paying twice", func(t *testing.T) {
		repo := new(MockCommissionRepository)
		service := NewCommissionService(repo)

		commission := newCreditedCommission(t, uuid.New(), "Barong Tagalog", 1, 100)
		require.NoError(t, commission.MarkPaid())

		repo.On("FindByID", mock.Anything, commission.ID).Return(&commission, nil)

		_, err := service.MarkPaid(context.Background(), commission.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCommissionService_List(t *testing.T) {
	repo := new(MockCommissionRepository)
	service := NewCommissionService(repo)

	tailorID := uuid.New()
	commission := newCreditedCommission(t, tailorID, "Barong Tagalog", 1, 100)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["tailor_id"] == tailorID && f.Page == 1
	})).Return([]workshop.Commission{commission}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	commissions, total, err := service.ListMine(context.Background(), tailorID, CommissionListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, commissions, 1)
}
