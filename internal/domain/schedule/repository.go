package schedule

import (
	"context"
	"time"

	"github.com/salao-m2a/salon-scheduler/internal/models"
)

// SlotQuery descreve a busca de vagas em aberto: ativas, sem
// agendamento e com horário a partir de Now.
type SlotQuery struct {
	Now  time.Time
	Term string
	// Date é o termo interpretado como data, quando parseável
	Date  *time.Time
	Limit int
}

type Repository interface {
	// -------- Availability --------
	ListOpenSlots(
		ctx context.Context,
		q SlotQuery,
	) ([]models.StaffServiceSlot, error)

	ListUpcomingTimeSlots(
		ctx context.Context,
		q SlotQuery,
	) ([]models.TimeSlot, error)

	// -------- Person pool --------
	ListAvailablePeople(
		ctx context.Context,
		term string,
		limit int,
	) ([]models.Person, error)

	// -------- Booking --------
	GetSlot(
		ctx context.Context,
		slotID uint,
	) (*models.StaffServiceSlot, error)

	GetClient(
		ctx context.Context,
		clientID uint,
	) (*models.Client, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- State change --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// BulkSetStatus muda o status de todos os agendamentos informados em
	// uma única transação; falha por inteiro se algum não estiver em from
	BulkSetStatus(
		ctx context.Context,
		ids []uint,
		from Status,
		to Status,
		now time.Time,
	) error

	// -------- Reporting --------
	ListCompletedAppointments(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
