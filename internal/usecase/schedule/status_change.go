package schedule

import (
	"context"
	"time"

	"github.com/salao-m2a/salon-scheduler/internal/audit"
	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

// ======================================================
// SINGLE
// ======================================================

type ChangeAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeAppointmentStatus) Complete(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	now time.Time,
) (*models.Appointment, error) {
	return uc.change(ctx, userID, appointmentID, now, domain.Complete, "appointment_completed")
}

func (uc *ChangeAppointmentStatus) Cancel(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	now time.Time,
) (*models.Appointment, error) {
	return uc.change(ctx, userID, appointmentID, now, domain.Cancel, "appointment_canceled")
}

func (uc *ChangeAppointmentStatus) change(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	now time.Time,
	action func(*models.Appointment, time.Time) error,
	auditAction string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := action(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   auditAction,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// BULK
// ======================================================

type BulkStatusInput struct {
	UserID         uint
	AppointmentIDs []uint
	Action         string // mark_completed | mark_canceled
}

type BulkChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBulkChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BulkChangeStatus {
	return &BulkChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BulkChangeStatus) Execute(
	ctx context.Context,
	in BulkStatusInput,
	now time.Time,
) error {

	var to domain.Status
	switch in.Action {
	case "mark_completed":
		to = domain.StatusCompleted
	case "mark_canceled":
		to = domain.StatusCanceled
	default:
		return httperr.ErrBusiness("unknown_bulk_action")
	}

	// clique duplo no painel repete ids na seleção; cada agendamento
	// conta uma única vez no tudo-ou-nada do repositório
	ids := dedupeIDs(in.AppointmentIDs)
	if len(ids) == 0 {
		return httperr.ErrBusiness("empty_selection")
	}

	if err := uc.repo.BulkSetStatus(
		ctx,
		ids,
		domain.StatusScheduled,
		to,
		now,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &in.UserID,
		Action: "appointments_bulk_" + in.Action,
		Entity: "appointment",
		Metadata: map[string]any{
			"count": len(ids),
			"ids":   ids,
		},
	})

	return nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
