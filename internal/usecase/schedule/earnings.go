package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
)

// ======================================================
// OUTPUT
// ======================================================

type StaffEarnings struct {
	StaffName string          `json:"staff_name"`
	Count     int             `json:"count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type EarningsReport struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	TotalCount   int             `json:"total_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	// ordenado por nome de exibição do funcionário
	PerStaff []StaffEarnings `json:"per_staff"`
}

// ======================================================
// USE CASE
// ======================================================

// BuildEarningsReport soma a receita dos agendamentos CONCLUÍDOS no
// período: cada vaga contribui com a soma dos preços de todos os seus
// serviços (combos somam), acumulando por funcionário e no total geral.
type BuildEarningsReport struct {
	repo domain.Repository
}

func NewBuildEarningsReport(repo domain.Repository) *BuildEarningsReport {
	return &BuildEarningsReport{repo: repo}
}

func (uc *BuildEarningsReport) Execute(
	ctx context.Context,
	startDate time.Time,
	endDate time.Time,
) (*EarningsReport, error) {

	// intervalo inclusivo: início às 00:00, fim às 23:59:59
	start := time.Date(
		startDate.Year(), startDate.Month(), startDate.Day(),
		0, 0, 0, 0,
		startDate.Location(),
	)
	end := time.Date(
		endDate.Year(), endDate.Month(), endDate.Day(),
		23, 59, 59, 0,
		endDate.Location(),
	)

	apps, err := uc.repo.ListCompletedAppointments(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &EarningsReport{
		Start:        start,
		End:          end,
		TotalRevenue: decimal.Zero,
		PerStaff:     []StaffEarnings{},
	}

	byStaff := make(map[string]*StaffEarnings)

	for _, ap := range apps {
		revenue := decimal.Zero
		for _, s := range ap.Slot.Services {
			revenue = revenue.Add(s.Price)
		}

		name := ap.Slot.Staff.Person.DisplayName()
		line, ok := byStaff[name]
		if !ok {
			line = &StaffEarnings{StaffName: name, Revenue: decimal.Zero}
			byStaff[name] = line
		}

		line.Count++
		line.Revenue = line.Revenue.Add(revenue)

		report.TotalCount++
		report.TotalRevenue = report.TotalRevenue.Add(revenue)
	}

	for _, line := range byStaff {
		report.PerStaff = append(report.PerStaff, *line)
	}
	sort.Slice(report.PerStaff, func(i, j int) bool {
		return report.PerStaff[i].StaffName < report.PerStaff[j].StaffName
	})

	return report, nil
}
