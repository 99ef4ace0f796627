package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Somatórios de receita exibidos nas listagens de cliente e funcionário
// para administrador e dono: total concluído e previsto para 30 dias.

type revenueRow struct {
	OwnerID uint            `gorm:"column:owner_id"`
	Total   decimal.Decimal `gorm:"column:total"`
}

type RevenueSummary struct {
	Completed    map[uint]decimal.Decimal
	Projected30d map[uint]decimal.Decimal
}

func (r *ScheduleGormRepository) ClientRevenue(
	ctx context.Context,
	now time.Time,
) (*RevenueSummary, error) {
	return r.revenueBy(ctx, "appointments.client_id", now)
}

func (r *ScheduleGormRepository) StaffRevenue(
	ctx context.Context,
	now time.Time,
) (*RevenueSummary, error) {
	return r.revenueBy(ctx, "staff_service_slots.staff_id", now)
}

func (r *ScheduleGormRepository) revenueBy(
	ctx context.Context,
	ownerCol string,
	now time.Time,
) (*RevenueSummary, error) {

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("appointments").
			Select(ownerCol+" AS owner_id, SUM(services.price) AS total").
			Joins("JOIN staff_service_slots ON staff_service_slots.id = appointments.slot_id").
			Joins("JOIN slot_services ON slot_services.staff_service_slot_id = staff_service_slots.id").
			Joins("JOIN services ON services.id = slot_services.service_id").
			Where(ownerCol + " IS NOT NULL").
			Group(ownerCol)
	}

	var completed []revenueRow
	if err := base().
		Where("appointments.status = ?", "COMPLETED").
		Scan(&completed).Error; err != nil {
		return nil, err
	}

	var projected []revenueRow
	if err := base().
		Joins("JOIN time_slots ON time_slots.id = staff_service_slots.time_slot_id").
		Where("appointments.status = ?", "SCHEDULED").
		Where("time_slots.starts_at BETWEEN ? AND ?", now, now.AddDate(0, 0, 30)).
		Scan(&projected).Error; err != nil {
		return nil, err
	}

	summary := &RevenueSummary{
		Completed:    make(map[uint]decimal.Decimal, len(completed)),
		Projected30d: make(map[uint]decimal.Decimal, len(projected)),
	}
	for _, row := range completed {
		summary.Completed[row.OwnerID] = row.Total
	}
	for _, row := range projected {
		summary.Projected30d[row.OwnerID] = row.Total
	}

	return summary, nil
}

func (s *RevenueSummary) CompletedFor(id uint) decimal.Decimal {
	if v, ok := s.Completed[id]; ok {
		return v
	}
	return decimal.Zero
}

func (s *RevenueSummary) ProjectedFor(id uint) decimal.Decimal {
	if v, ok := s.Projected30d[id]; ok {
		return v
	}
	return decimal.Zero
}
