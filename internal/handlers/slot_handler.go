package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/audit"
	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/httpresp"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/models"
	"github.com/salao-m2a/salon-scheduler/internal/timezone"
)

// SlotHandler cuida das vagas de atendimento: o vínculo entre
// funcionário, horário e serviços oferecidos
type SlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSlotHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SlotHandler {
	return &SlotHandler{db: db, audit: dispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *SlotHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntitySlot)

	tx := h.db.Model(&models.StaffServiceSlot{}).
		Joins("JOIN time_slots ON time_slots.id = staff_service_slots.time_slot_id").
		Preload("Staff.Person").
		Preload("TimeSlot").
		Preload("Services")
	tx = applyActiveFilter(tx, c, policy, "staff_service_slots.active")

	if policy.HasFilter("date_range") {
		start, end := parseDateRange(c, timezone.Location())
		if start != nil {
			tx = tx.Where("time_slots.starts_at >= ?", *start)
		}
		if end != nil {
			tx = tx.Where("time_slots.starts_at < ?", *end)
		}
	}

	if staffID := c.Query("staff"); staffID != "" && policy.HasFilter("staff") {
		tx = tx.Where("staff_service_slots.staff_id = ?", staffID)
	}

	if svc := c.Query("service"); svc != "" && policy.HasFilter("service") {
		tx = tx.Where(`EXISTS (
			SELECT 1 FROM slot_services
			WHERE slot_services.staff_service_slot_id = staff_service_slots.id
			AND slot_services.service_id = ?)`, svc)
	}

	var slots []models.StaffServiceSlot
	if err := tx.Order("time_slots.starts_at ASC").Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Erro ao listar vagas.")
		return
	}

	rows := make([]gin.H, 0, len(slots))
	for _, slot := range slots {
		services := make([]gin.H, 0, len(slot.Services))
		for _, svc := range slot.Services {
			services = append(services, gin.H{"id": svc.ID, "name": svc.Name, "price": svc.Price})
		}

		rows = append(rows, project(policy, gin.H{
			"id": slot.ID,
			"staff": gin.H{
				"id":        slot.Staff.ID,
				"full_name": slot.Staff.Person.FullName,
			},
			"time_slot": gin.H{
				"id":        slot.TimeSlot.ID,
				"starts_at": slot.TimeSlot.StartsAt,
			},
			"services":   services,
			"active":     slot.Active,
			"created_at": slot.CreatedAt,
			"updated_at": slot.UpdatedAt,
		}))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type SlotRequest struct {
	StaffID    uint   `json:"staff_id" binding:"required"`
	TimeSlotID uint   `json:"time_slot_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Active     *bool  `json:"active"`
}

// offeredServices valida que todos os serviços da vaga estão entre os
// habilitados do funcionário
func (h *SlotHandler) offeredServices(staffID uint, ids []uint) ([]models.Service, error) {
	var staff models.Staff
	if err := h.db.Preload("Services").First(&staff, staffID).Error; err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	offered := make(map[uint]models.Service, len(staff.Services))
	for _, svc := range staff.Services {
		offered[svc.ID] = svc
	}

	services := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := offered[id]
		if !ok {
			return nil, httperr.ErrBusiness("service_not_offered_by_staff")
		}
		services = append(services, svc)
	}
	return services, nil
}

func (h *SlotHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var ts models.TimeSlot
	if err := h.db.First(&ts, req.TimeSlotID).Error; err != nil {
		httperr.BadRequest(c, "time_slot_not_found", "Horário não encontrado.")
		return
	}

	services, err := h.offeredServices(req.StaffID, req.ServiceIDs)
	if err != nil {
		if httperr.IsBusiness(err, "staff_not_found") {
			httperr.BadRequest(c, "staff_not_found", "Funcionário não encontrado.")
			return
		}
		httperr.BadRequest(c, "service_not_offered_by_staff", "Serviço não habilitado para o funcionário.")
		return
	}

	slot := models.StaffServiceSlot{
		StaffID:    req.StaffID,
		TimeSlotID: req.TimeSlotID,
		Services:   services,
		Active:     true,
	}
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := h.db.Create(&slot).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			// um funcionário por horário, uma vaga por par
			httperr.BadRequest(c, "slot_exists", "Funcionário já tem vaga neste horário.")
			return
		}
		httperr.Internal(c, "failed_to_create_slot", "Erro ao criar vaga.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var slot models.StaffServiceSlot
	if err := h.db.Preload("Services").First(&slot, id).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Vaga não encontrada.")
		return
	}

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// a troca de funcionário ou de serviços revalida a habilitação
	services, err := h.offeredServices(req.StaffID, req.ServiceIDs)
	if err != nil {
		if httperr.IsBusiness(err, "staff_not_found") {
			httperr.BadRequest(c, "staff_not_found", "Funcionário não encontrado.")
			return
		}
		httperr.BadRequest(c, "service_not_offered_by_staff", "Serviço não habilitado para o funcionário.")
		return
	}

	slot.StaffID = req.StaffID
	slot.TimeSlotID = req.TimeSlotID
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := h.db.Model(&slot).Association("Services").Replace(services); err != nil {
		httperr.Internal(c, "failed_to_update_slot", "Erro ao atualizar serviços da vaga.")
		return
	}

	// Omit evita que o Save religue a associação recém substituída
	if err := h.db.Omit("Services").Save(&slot).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "slot_exists", "Funcionário já tem vaga neste horário.")
			return
		}
		httperr.Internal(c, "failed_to_update_slot", "Erro ao atualizar vaga.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_updated",
		Entity:   "slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusOK, slot)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.StaffServiceSlot{}, id).Error; err != nil {
		if httperr.IsProtectedViolation(err) {
			httperr.BadRequest(c, "in_use", "Vaga agendada não pode ser removida.")
			return
		}
		httperr.Internal(c, "failed_to_delete_slot", "Erro ao remover vaga.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
