package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	usecase "github.com/salao-m2a/salon-scheduler/internal/usecase/schedule"
)

func TestRenderProducesPDF(t *testing.T) {
	r := &usecase.EarningsReport{
		Start:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
		TotalCount:   3,
		TotalRevenue: decimal.NewFromInt(170),
		PerStaff: []usecase.StaffEarnings{
			{StaffName: "Ana Lima", Count: 1, Revenue: decimal.NewFromInt(50)},
			{StaffName: "Zilda Costa", Count: 2, Revenue: decimal.NewFromInt(120)},
		},
	}

	out, err := Render(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestRenderEmptyReport(t *testing.T) {
	r := &usecase.EarningsReport{
		Start:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
		TotalRevenue: decimal.Zero,
		PerStaff:     []usecase.StaffEarnings{},
	}

	out, err := Render(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}
