package handlers

import (
	"net/http"
	"time"

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

type TimeSlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTimeSlotHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *TimeSlotHandler {
	return &TimeSlotHandler{db: db, audit: dispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *TimeSlotHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntityTimeSlot)

	tx := h.db.Model(&models.TimeSlot{})
	tx = applyActiveFilter(tx, c, policy, "active")

	if policy.HasFilter("date_range") {
		start, end := parseDateRange(c, timezone.Location())
		if start != nil {
			tx = tx.Where("starts_at >= ?", *start)
		}
		if end != nil {
			tx = tx.Where("starts_at < ?", *end)
		}
	}

	var slots []models.TimeSlot
	if err := tx.Order("starts_at ASC").Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_slots", "Erro ao listar horários.")
		return
	}

	rows := make([]gin.H, 0, len(slots))
	for _, ts := range slots {
		rows = append(rows, project(policy, gin.H{
			"id":         ts.ID,
			"starts_at":  ts.StartsAt,
			"active":     ts.Active,
			"created_at": ts.CreatedAt,
			"updated_at": ts.UpdatedAt,
		}))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type TimeSlotRequest struct {
	StartsAt string `json:"starts_at" binding:"required"` // DD/MM/YYYY HH:MM
	Active   *bool  `json:"active"`
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	startsAt, err := time.ParseInLocation("02/01/2006 15:04", req.StartsAt, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "Data e hora inválidas.")
		return
	}

	slot := models.TimeSlot{StartsAt: startsAt, Active: true}
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_slot", "Erro ao criar horário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "time_slot_created",
		Entity:   "time_slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusCreated, slot)
}

func (h *TimeSlotHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var slot models.TimeSlot
	if err := h.db.First(&slot, id).Error; err != nil {
		httperr.NotFound(c, "time_slot_not_found", "Horário não encontrado.")
		return
	}

	var req TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.StartsAt != "" {
		startsAt, err := time.ParseInLocation("02/01/2006 15:04", req.StartsAt, timezone.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_starts_at", "Data e hora inválidas.")
			return
		}
		slot.StartsAt = startsAt
	}
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_slot", "Erro ao atualizar horário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "time_slot_updated",
		Entity:   "time_slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusOK, slot)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.TimeSlot{}, id).Error; err != nil {
		if httperr.IsProtectedViolation(err) {
			httperr.BadRequest(c, "in_use", "Horário com vagas não pode ser removido.")
			return
		}
		httperr.Internal(c, "failed_to_delete_time_slot", "Erro ao remover horário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "time_slot_deleted",
		Entity:   "time_slot",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
