package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// Uma vaga está aberta quando está ativa, não tem agendamento e o
// horário ainda não passou. O termo de busca casa por nome de serviço,
// nome do funcionário ou, quando parseável, pela data.
func (r *ScheduleGormRepository) ListOpenSlots(
	ctx context.Context,
	q domain.SlotQuery,
) ([]models.StaffServiceSlot, error) {

	tx := r.db.WithContext(ctx).
		Model(&models.StaffServiceSlot{}).
		Select("staff_service_slots.*").
		Joins("JOIN time_slots ON time_slots.id = staff_service_slots.time_slot_id").
		Joins("JOIN staff ON staff.id = staff_service_slots.staff_id").
		Joins("JOIN people ON people.id = staff.person_id").
		Joins("LEFT JOIN appointments ON appointments.slot_id = staff_service_slots.id").
		Where("staff_service_slots.active = ?", true).
		Where("appointments.id IS NULL").
		Where("time_slots.starts_at >= ?", q.Now)

	if q.Term != "" {
		like := "%" + q.Term + "%"

		cond := r.db.
			Where("people.full_name ILIKE ?", like).
			Or(`EXISTS (
				SELECT 1 FROM slot_services ss
				JOIN services sv ON sv.id = ss.service_id
				WHERE ss.staff_service_slot_id = staff_service_slots.id
				AND sv.name ILIKE ?)`, like)

		if q.Date != nil {
			dayStart := *q.Date
			dayEnd := dayStart.AddDate(0, 0, 1)
			cond = cond.Or(
				"time_slots.starts_at >= ? AND time_slots.starts_at < ?",
				dayStart, dayEnd,
			)
		}

		tx = tx.Where(cond)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var slots []models.StaffServiceSlot
	err := tx.
		Preload("Staff.Person").
		Preload("TimeSlot").
		Preload("Services").
		Order("time_slots.starts_at ASC, people.full_name ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleGormRepository) ListUpcomingTimeSlots(
	ctx context.Context,
	q domain.SlotQuery,
) ([]models.TimeSlot, error) {

	tx := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("active = ?", true).
		Where("starts_at >= ?", q.Now)

	if q.Date != nil {
		dayStart := *q.Date
		tx = tx.Where(
			"starts_at >= ? AND starts_at < ?",
			dayStart, dayStart.AddDate(0, 0, 1),
		)
	} else if q.Term != "" {
		tx = tx.Where(
			"to_char(starts_at, 'DD/MM/YYYY HH24:MI') LIKE ?",
			"%"+q.Term+"%",
		)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var slots []models.TimeSlot
	if err := tx.Order("starts_at ASC").Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Person pool
// --------------------------------------------------

// Pessoas elegíveis a virar cliente ou funcionário: quem ainda não é
// nenhum dos dois
func (r *ScheduleGormRepository) ListAvailablePeople(
	ctx context.Context,
	term string,
	limit int,
) ([]models.Person, error) {

	tx := r.db.WithContext(ctx).
		Model(&models.Person{}).
		Where("NOT EXISTS (SELECT 1 FROM clients WHERE clients.person_id = people.id)").
		Where("NOT EXISTS (SELECT 1 FROM staff WHERE staff.person_id = people.id)")

	if term != "" {
		like := "%" + term + "%"
		tx = tx.Where(
			"full_name ILIKE ? OR mobile LIKE ? OR cpf LIKE ?",
			like, like, like,
		)
	}

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var people []models.Person
	if err := tx.Order("full_name ASC").Find(&people).Error; err != nil {
		return nil, err
	}

	return people, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.StaffServiceSlot, error) {

	var slot models.StaffServiceSlot
	if err := r.db.WithContext(ctx).
		Preload("Staff.Person").
		Preload("TimeSlot").
		Preload("Services").
		First(&slot, slotID).Error; err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("Person").
		First(&client, clientID).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			// outro agendamento ganhou a corrida pela vaga
			return httperr.ErrBusiness("slot_already_booked")
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client.Person").
		Preload("Slot.Staff.Person").
		Preload("Slot.TimeSlot").
		Preload("Slot.Services").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) BulkSetStatus(
	ctx context.Context,
	ids []uint,
	from domain.Status,
	to domain.Status,
	now time.Time,
) error {

	if len(ids) == 0 {
		return nil
	}

	updates := map[string]any{"status": string(to), "updated_at": now}
	switch to {
	case domain.StatusCompleted:
		updates["completed_at"] = now
	case domain.StatusCanceled:
		updates["canceled_at"] = now
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("id IN ? AND status = ?", ids, string(from)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}

		// tudo ou nada: qualquer linha fora do estado esperado aborta o lote
		if res.RowsAffected != int64(len(ids)) {
			return httperr.ErrBusiness("invalid_state")
		}

		return nil
	})
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *ScheduleGormRepository) ListCompletedAppointments(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointments.*").
		Joins("JOIN staff_service_slots ON staff_service_slots.id = appointments.slot_id").
		Joins("JOIN time_slots ON time_slots.id = staff_service_slots.time_slot_id").
		Where("appointments.status = ?", "COMPLETED").
		Where("time_slots.starts_at BETWEEN ? AND ?", start, end).
		Preload("Slot.Staff.Person").
		Preload("Slot.TimeSlot").
		Preload("Slot.Services").
		Order("time_slots.starts_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
