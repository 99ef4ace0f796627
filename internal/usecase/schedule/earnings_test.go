package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salao-m2a/salon-scheduler/internal/models"
)

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func completedAppointment(staffName string, prices ...string) models.Appointment {
	services := make([]models.Service, 0, len(prices))
	for _, p := range prices {
		services = append(services, models.Service{Price: price(p)})
	}

	return models.Appointment{
		Status: "COMPLETED",
		Slot: models.StaffServiceSlot{
			Staff: models.Staff{
				Person: models.Person{FullName: staffName},
			},
			Services: services,
		},
	}
}

func TestEarningsEmptyRange(t *testing.T) {
	repo := &mockRepository{
		listCompletedAppointmentsFunc: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			return nil, nil
		},
	}

	uc := NewBuildEarningsReport(repo)

	report, err := uc.Execute(
		context.Background(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", report.TotalCount)
	}
	if !report.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0", report.TotalRevenue)
	}
	if len(report.PerStaff) != 0 {
		t.Errorf("PerStaff = %v, want empty", report.PerStaff)
	}
}

func TestEarningsComboIsAdditive(t *testing.T) {
	repo := &mockRepository{
		listCompletedAppointmentsFunc: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			// vaga com dois serviços: os preços somam
			return []models.Appointment{
				completedAppointment("Maria Souza Silva", "30.00", "45.00"),
			}, nil
		},
	}

	uc := NewBuildEarningsReport(repo)

	report, err := uc.Execute(
		context.Background(),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := price("75.00")
	if !report.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", report.TotalRevenue, want)
	}
	if report.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", report.TotalCount)
	}

	if len(report.PerStaff) != 1 {
		t.Fatalf("PerStaff has %d entries, want 1", len(report.PerStaff))
	}
	line := report.PerStaff[0]
	if line.StaffName != "Maria Silva" {
		t.Errorf("StaffName = %q, want display name %q", line.StaffName, "Maria Silva")
	}
	if line.Count != 1 || !line.Revenue.Equal(want) {
		t.Errorf("line = %+v, want count 1 revenue %s", line, want)
	}
}

func TestEarningsGroupsByStaffSortedByName(t *testing.T) {
	repo := &mockRepository{
		listCompletedAppointmentsFunc: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				completedAppointment("Zilda Costa", "100.00"),
				completedAppointment("Ana Lima", "50.00"),
				completedAppointment("Zilda Costa", "20.00"),
			}, nil
		},
	}

	uc := NewBuildEarningsReport(repo)

	report, err := uc.Execute(
		context.Background(),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", report.TotalCount)
	}
	if !report.TotalRevenue.Equal(price("170.00")) {
		t.Errorf("TotalRevenue = %s, want 170.00", report.TotalRevenue)
	}

	if len(report.PerStaff) != 2 {
		t.Fatalf("PerStaff has %d entries, want 2", len(report.PerStaff))
	}
	if report.PerStaff[0].StaffName != "Ana Lima" || report.PerStaff[1].StaffName != "Zilda Costa" {
		t.Errorf("PerStaff order = [%s, %s], want [Ana Lima, Zilda Costa]",
			report.PerStaff[0].StaffName, report.PerStaff[1].StaffName)
	}
	if report.PerStaff[1].Count != 2 || !report.PerStaff[1].Revenue.Equal(price("120.00")) {
		t.Errorf("Zilda line = %+v, want count 2 revenue 120.00", report.PerStaff[1])
	}
}

func TestEarningsNormalizesRangeBounds(t *testing.T) {
	var gotStart, gotEnd time.Time

	repo := &mockRepository{
		listCompletedAppointmentsFunc: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}

	uc := NewBuildEarningsReport(repo)

	loc := time.UTC
	_, err := uc.Execute(
		context.Background(),
		time.Date(2025, 3, 10, 14, 22, 5, 0, loc),
		time.Date(2025, 3, 15, 9, 1, 0, 0, loc),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 15, 23, 59, 59, 0, loc)

	if !gotStart.Equal(wantStart) {
		t.Errorf("start = %v, want %v", gotStart, wantStart)
	}
	if !gotEnd.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", gotEnd, wantEnd)
	}
}
