package workshop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// Commission summary periods
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// CommissionService handles commission listing, payout, and period reports
type CommissionService struct {
	commissionRepo workshop.CommissionRepository
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(commissionRepo workshop.CommissionRepository) *CommissionService {
	return &CommissionService{commissionRepo: commissionRepo}
}

// List retrieves commissions with filtering and pagination
func (s *CommissionService) List(ctx context.Context, filter CommissionListFilter) ([]CommissionResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = workshop.CommissionStatus(filter.Status)
	}
	if filter.TailorID != "" {
		tailorID, err := uuid.Parse(filter.TailorID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid tailor ID")
		}
		domainFilter.Filters["tailor_id"] = tailorID
	}

	commissions, err := s.commissionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.commissionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCommissionResponses(commissions), total, nil
}

// ListMine retrieves a tailor's own commissions
func (s *CommissionService) ListMine(ctx context.Context, tailorID uuid.UUID, filter CommissionListFilter) ([]CommissionResponse, int64, error) {
	filter.TailorID = tailorID.String()
	return s.List(ctx, filter)
}

// MarkPaid records the payout of a credited commission
func (s *CommissionService) MarkPaid(ctx context.Context, commissionID uuid.UUID) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}

	if err := commission.MarkPaid(); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.Save(ctx, commission); err != nil {
		return nil, err
	}

	response := ToCommissionResponse(commission)
	return &response, nil
}

// Summary aggregates a tailor's earnings for the period containing ref,
// broken down by garment type
func (s *CommissionService) Summary(ctx context.Context, tailorID uuid.UUID, period string, ref time.Time) (*CommissionSummaryResponse, error) {
	from, to, err := PeriodRange(period, ref)
	if err != nil {
		return nil, err
	}

	commissions, err := s.commissionRepo.FindByTailorInRange(ctx, tailorID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &CommissionSummaryResponse{
		TailorID:    tailorID,
		Period:      period,
		From:        from,
		To:          to,
		TotalAmount: decimal.Zero,
		Breakdown:   make([]GarmentBreakdownEntry, 0),
	}

	index := make(map[string]int)
	for i := range commissions {
		c := &commissions[i]
		summary.TotalAmount = summary.TotalAmount.Add(c.Amount)
		summary.OrderCount++

		pos, ok := index[c.GarmentTypeName]
		if !ok {
			pos = len(summary.Breakdown)
			index[c.GarmentTypeName] = pos
			summary.Breakdown = append(summary.Breakdown, GarmentBreakdownEntry{
				GarmentTypeName: c.GarmentTypeName,
				Amount:          decimal.Zero,
			})
		}
		summary.Breakdown[pos].Quantity += c.Quantity
		summary.Breakdown[pos].Amount = summary.Breakdown[pos].Amount.Add(c.Amount)
	}

	return summary, nil
}

// PeriodRange resolves a report period to the half-open interval [from, to)
// containing ref. Weeks start on Monday.
func PeriodRange(period string, ref time.Time) (time.Time, time.Time, error) {
	year, month, day := ref.Date()
	loc := ref.Location()

	switch period {
	case PeriodWeekly:
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		start := time.Date(year, month, day-(weekday-1), 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 0, 7), nil
	case PeriodMonthly:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), nil
	case PeriodYearly:
		start := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_PERIOD",
			"Period must be 'weekly', 'monthly', or 'yearly'")
	}
}
