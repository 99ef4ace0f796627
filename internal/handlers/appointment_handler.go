package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/httpresp"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/models"
	"github.com/salao-m2a/salon-scheduler/internal/timezone"
	usecase "github.com/salao-m2a/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	book         *usecase.BookAppointment
	changeStatus *usecase.ChangeAppointmentStatus
	bulkStatus   *usecase.BulkChangeStatus
}

func NewAppointmentHandler(
	db *gorm.DB,
	book *usecase.BookAppointment,
	changeStatus *usecase.ChangeAppointmentStatus,
	bulkStatus *usecase.BulkChangeStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		book:         book,
		changeStatus: changeStatus,
		bulkStatus:   bulkStatus,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntityAppointment)

	tx := h.db.Model(&models.Appointment{}).
		Joins("JOIN staff_service_slots ON staff_service_slots.id = appointments.slot_id").
		Joins("JOIN time_slots ON time_slots.id = staff_service_slots.time_slot_id").
		Preload("Client.Person").
		Preload("Slot.Staff.Person").
		Preload("Slot.TimeSlot").
		Preload("Slot.Services")
	tx = applyActiveFilter(tx, c, policy, "appointments.active")

	if policy.HasFilter("date_range") {
		start, end := parseDateRange(c, timezone.Location())
		if start != nil {
			tx = tx.Where("time_slots.starts_at >= ?", *start)
		}
		if end != nil {
			tx = tx.Where("time_slots.starts_at < ?", *end)
		}
	}

	if status := c.Query("status"); status != "" && policy.HasFilter("status") {
		tx = tx.Where("appointments.status = ?", status)
	}

	if staffID := c.Query("staff"); staffID != "" && policy.HasFilter("staff") {
		tx = tx.Where("staff_service_slots.staff_id = ?", staffID)
	}

	var apps []models.Appointment
	if err := tx.Order("time_slots.starts_at ASC").Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	rows := make([]gin.H, 0, len(apps))
	for _, ap := range apps {
		services := make([]gin.H, 0, len(ap.Slot.Services))
		for _, svc := range ap.Slot.Services {
			services = append(services, gin.H{"id": svc.ID, "name": svc.Name, "price": svc.Price})
		}

		var client gin.H
		if ap.Client != nil {
			client = gin.H{
				"id":        ap.Client.ID,
				"full_name": ap.Client.Person.FullName,
			}
		}

		rows = append(rows, project(policy, gin.H{
			"id":     ap.ID,
			"client": client,
			"time_slot": gin.H{
				"id":        ap.Slot.TimeSlot.ID,
				"starts_at": ap.Slot.TimeSlot.StartsAt,
			},
			"staff": gin.H{
				"id":        ap.Slot.Staff.ID,
				"full_name": ap.Slot.Staff.Person.FullName,
			},
			"services":   services,
			"status":     ap.Status,
			"active":     ap.Active,
			"created_at": ap.CreatedAt,
			"updated_at": ap.UpdatedAt,
		}))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE
// ======================================================

type CreateAppointmentRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
	SlotID   uint `json:"slot_id" binding:"required"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		UserID:   userID,
		ClientID: req.ClientID,
		SlotID:   req.SlotID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.BadRequest(c, "slot_not_found", "Vaga não encontrada.")
		case httperr.IsBusiness(err, "slot_inactive"):
			httperr.BadRequest(c, "slot_inactive", "Vaga indisponível.")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
		case httperr.IsBusiness(err, "slot_already_booked"):
			httperr.BadRequest(c, "slot_already_booked", "Vaga já agendada.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// COMPLETE / CANCEL
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.changeStatus.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.changeStatus.Cancel)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	action func(ctx context.Context, userID, appointmentID uint, now time.Time) (*models.Appointment, error),
) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := action(c.Request.Context(), userID, id, timezone.Now())
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// BULK STATUS
// ======================================================

type BulkStatusRequest struct {
	AppointmentIDs []uint `json:"appointment_ids" binding:"required"`
	Action         string `json:"action" binding:"required"`
}

func (h *AppointmentHandler) BulkStatus(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)
	policy := policyFor(c, rbac.EntityAppointment)

	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !policy.AllowsBulk(req.Action) {
		httperr.Forbidden(c, "bulk_action_not_allowed", "Ação em massa não permitida.")
		return
	}

	err := h.bulkStatus.Execute(c.Request.Context(), usecase.BulkStatusInput{
		UserID:         userID,
		AppointmentIDs: req.AppointmentIDs,
		Action:         req.Action,
	}, timezone.Now())
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "unknown_bulk_action"):
			httperr.BadRequest(c, "unknown_bulk_action", "Ação desconhecida.")
		case httperr.IsBusiness(err, "empty_selection"):
			httperr.BadRequest(c, "empty_selection", "Nenhum agendamento selecionado.")
		case httperr.IsBusiness(err, "invalid_state"):
			// qualquer agendamento fora de SCHEDULED aborta o lote inteiro
			httperr.BadRequest(c, "invalid_state", "Há agendamentos fora do estado esperado.")
		default:
			httperr.Internal(c, "failed_to_update_appointments", "Erro ao atualizar agendamentos.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated": len(req.AppointmentIDs),
		"action":  req.Action,
	})
}
