package schedule

import (
	"testing"
	"time"

	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

func TestCompleteOnlyFromScheduled(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		current Status
		wantErr bool
	}{
		{StatusScheduled, false},
		{StatusCompleted, true},
		{StatusCanceled, true},
	}

	for _, tc := range cases {
		ap := &models.Appointment{Status: string(tc.current)}
		err := Complete(ap, now)

		if tc.wantErr {
			if !httperr.IsBusiness(err, "invalid_state") {
				t.Errorf("Complete from %s: got %v, want invalid_state", tc.current, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("Complete from %s: unexpected error %v", tc.current, err)
		}
		if ap.Status != string(StatusCompleted) {
			t.Errorf("status = %s, want COMPLETED", ap.Status)
		}
		if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
			t.Errorf("CompletedAt = %v, want %v", ap.CompletedAt, now)
		}
	}
}

func TestCancelOnlyFromScheduled(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCanceled) {
		t.Errorf("status = %s, want CANCELED", ap.Status)
	}
	if ap.CanceledAt == nil || !ap.CanceledAt.Equal(now) {
		t.Errorf("CanceledAt = %v, want %v", ap.CanceledAt, now)
	}

	// cancelar duas vezes não pode
	if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("second Cancel: got %v, want invalid_state", err)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusCompleted, StatusCanceled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("AGENDADO").Valid() {
		t.Error("unknown status should be invalid")
	}
}
