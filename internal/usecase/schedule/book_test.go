package schedule

import (
	"context"
	"reflect"
	"testing"
	"time"

	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

func TestBookAppointmentHappyPath(t *testing.T) {
	var created *models.Appointment

	repo := &mockRepository{
		getSlotFunc: func(ctx context.Context, slotID uint) (*models.StaffServiceSlot, error) {
			return &models.StaffServiceSlot{ID: slotID, Active: true}, nil
		},
		getClientFunc: func(ctx context.Context, clientID uint) (*models.Client, error) {
			return &models.Client{ID: clientID, Active: true}, nil
		},
		createAppointmentFunc: func(ctx context.Context, ap *models.Appointment) error {
			ap.ID = 42
			created = ap
			return nil
		},
	}

	uc := NewBookAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:   1,
		ClientID: 9,
		SlotID:   7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("appointment was not created")
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("status = %s, want SCHEDULED", ap.Status)
	}
	if ap.SlotID != 7 {
		t.Errorf("SlotID = %d, want 7", ap.SlotID)
	}
	if ap.ClientID == nil || *ap.ClientID != 9 {
		t.Errorf("ClientID = %v, want 9", ap.ClientID)
	}
}

func TestBookAppointmentInactiveSlot(t *testing.T) {
	repo := &mockRepository{
		getSlotFunc: func(ctx context.Context, slotID uint) (*models.StaffServiceSlot, error) {
			return &models.StaffServiceSlot{ID: slotID, Active: false}, nil
		},
	}

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{ClientID: 1, SlotID: 7})
	if !httperr.IsBusiness(err, "slot_inactive") {
		t.Errorf("got %v, want slot_inactive", err)
	}
}

func TestBookAppointmentLosingRaceSurfacesConflict(t *testing.T) {
	repo := &mockRepository{
		getSlotFunc: func(ctx context.Context, slotID uint) (*models.StaffServiceSlot, error) {
			return &models.StaffServiceSlot{ID: slotID, Active: true}, nil
		},
		getClientFunc: func(ctx context.Context, clientID uint) (*models.Client, error) {
			return &models.Client{ID: clientID}, nil
		},
		createAppointmentFunc: func(ctx context.Context, ap *models.Appointment) error {
			// o repositório traduz a violação de unicidade do banco
			return httperr.ErrBusiness("slot_already_booked")
		},
	}

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{ClientID: 1, SlotID: 7})
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Errorf("got %v, want slot_already_booked", err)
	}
}

func TestBulkChangeStatusValidation(t *testing.T) {
	uc := NewBulkChangeStatus(&mockRepository{}, nil)
	now := time.Now()

	err := uc.Execute(context.Background(), BulkStatusInput{
		AppointmentIDs: []uint{1},
		Action:         "mark_rescheduled",
	}, now)
	if !httperr.IsBusiness(err, "unknown_bulk_action") {
		t.Errorf("got %v, want unknown_bulk_action", err)
	}

	err = uc.Execute(context.Background(), BulkStatusInput{
		AppointmentIDs: nil,
		Action:         "mark_completed",
	}, now)
	if !httperr.IsBusiness(err, "empty_selection") {
		t.Errorf("got %v, want empty_selection", err)
	}
}

func TestBulkChangeStatusTransitions(t *testing.T) {
	cases := []struct {
		action string
		want   domain.Status
	}{
		{"mark_completed", domain.StatusCompleted},
		{"mark_canceled", domain.StatusCanceled},
	}

	for _, tc := range cases {
		var gotFrom, gotTo domain.Status
		var gotIDs []uint

		repo := &mockRepository{
			bulkSetStatusFunc: func(ctx context.Context, ids []uint, from, to domain.Status, now time.Time) error {
				gotIDs, gotFrom, gotTo = ids, from, to
				return nil
			},
		}

		uc := NewBulkChangeStatus(repo, nil)

		err := uc.Execute(context.Background(), BulkStatusInput{
			UserID:         1,
			AppointmentIDs: []uint{3, 5, 8},
			Action:         tc.action,
		}, time.Now())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.action, err)
		}

		if gotFrom != domain.StatusScheduled {
			t.Errorf("%s: from = %s, want SCHEDULED", tc.action, gotFrom)
		}
		if gotTo != tc.want {
			t.Errorf("%s: to = %s, want %s", tc.action, gotTo, tc.want)
		}
		if len(gotIDs) != 3 {
			t.Errorf("%s: ids = %v, want 3 ids", tc.action, gotIDs)
		}
	}
}

func TestBulkChangeStatusDeduplicatesSelection(t *testing.T) {
	var gotIDs []uint

	repo := &mockRepository{
		bulkSetStatusFunc: func(ctx context.Context, ids []uint, from, to domain.Status, now time.Time) error {
			gotIDs = ids
			return nil
		},
	}

	uc := NewBulkChangeStatus(repo, nil)

	// clique duplo no painel repete ids na seleção
	err := uc.Execute(context.Background(), BulkStatusInput{
		UserID:         1,
		AppointmentIDs: []uint{7, 3, 7, 9, 3},
		Action:         "mark_completed",
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []uint{7, 3, 9}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("ids = %v, want %v", gotIDs, want)
	}
}

func TestChangeAppointmentStatusInvalidState(t *testing.T) {
	repo := &mockRepository{
		getAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: id, Status: string(domain.StatusCanceled)}, nil
		},
	}

	uc := NewChangeAppointmentStatus(repo, nil)

	_, err := uc.Complete(context.Background(), 1, 10, time.Now())
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("got %v, want invalid_state", err)
	}
}
