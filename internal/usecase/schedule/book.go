package schedule

import (
	"context"

	"github.com/salao-m2a/salon-scheduler/internal/audit"
	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID   uint
	ClientID uint
	SlotID   uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	slot, err := uc.repo.GetSlot(ctx, in.SlotID)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	if !slot.Active {
		return nil, httperr.ErrBusiness("slot_inactive")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	ap := &models.Appointment{
		ClientID: &client.ID,
		SlotID:   slot.ID,
		Status:   string(domain.InitialStatus()),
		Active:   true,
	}

	// o índice único em slot_id decide corridas: quem chegar depois
	// recebe slot_already_booked
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
