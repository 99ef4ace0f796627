package schedule

import (
	"context"
	"errors"
	"time"

	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

// Mock repository for testing
type mockRepository struct {
	listOpenSlotsFunc             func(ctx context.Context, q domain.SlotQuery) ([]models.StaffServiceSlot, error)
	listUpcomingTimeSlotsFunc     func(ctx context.Context, q domain.SlotQuery) ([]models.TimeSlot, error)
	listAvailablePeopleFunc       func(ctx context.Context, term string, limit int) ([]models.Person, error)
	getSlotFunc                   func(ctx context.Context, slotID uint) (*models.StaffServiceSlot, error)
	getClientFunc                 func(ctx context.Context, clientID uint) (*models.Client, error)
	createAppointmentFunc         func(ctx context.Context, ap *models.Appointment) error
	getAppointmentFunc            func(ctx context.Context, id uint) (*models.Appointment, error)
	updateAppointmentFunc         func(ctx context.Context, ap *models.Appointment) error
	bulkSetStatusFunc             func(ctx context.Context, ids []uint, from, to domain.Status, now time.Time) error
	listCompletedAppointmentsFunc func(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
}

var errNotConfigured = errors.New("not configured")

func (m *mockRepository) ListOpenSlots(ctx context.Context, q domain.SlotQuery) ([]models.StaffServiceSlot, error) {
	if m.listOpenSlotsFunc != nil {
		return m.listOpenSlotsFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockRepository) ListUpcomingTimeSlots(ctx context.Context, q domain.SlotQuery) ([]models.TimeSlot, error) {
	if m.listUpcomingTimeSlotsFunc != nil {
		return m.listUpcomingTimeSlotsFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockRepository) ListAvailablePeople(ctx context.Context, term string, limit int) ([]models.Person, error) {
	if m.listAvailablePeopleFunc != nil {
		return m.listAvailablePeopleFunc(ctx, term, limit)
	}
	return nil, nil
}

func (m *mockRepository) GetSlot(ctx context.Context, slotID uint) (*models.StaffServiceSlot, error) {
	if m.getSlotFunc != nil {
		return m.getSlotFunc(ctx, slotID)
	}
	return nil, errNotConfigured
}

func (m *mockRepository) GetClient(ctx context.Context, clientID uint) (*models.Client, error) {
	if m.getClientFunc != nil {
		return m.getClientFunc(ctx, clientID)
	}
	return nil, errNotConfigured
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.createAppointmentFunc != nil {
		return m.createAppointmentFunc(ctx, ap)
	}
	return nil
}

func (m *mockRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if m.getAppointmentFunc != nil {
		return m.getAppointmentFunc(ctx, id)
	}
	return nil, errNotConfigured
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.updateAppointmentFunc != nil {
		return m.updateAppointmentFunc(ctx, ap)
	}
	return nil
}

func (m *mockRepository) BulkSetStatus(ctx context.Context, ids []uint, from, to domain.Status, now time.Time) error {
	if m.bulkSetStatusFunc != nil {
		return m.bulkSetStatusFunc(ctx, ids, from, to, now)
	}
	return nil
}

func (m *mockRepository) ListCompletedAppointments(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	if m.listCompletedAppointmentsFunc != nil {
		return m.listCompletedAppointmentsFunc(ctx, start, end)
	}
	return nil, nil
}

var _ domain.Repository = (*mockRepository)(nil)
