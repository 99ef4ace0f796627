package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/audit"
	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/httpresp"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntityService)

	tx := h.db.Model(&models.Service{})
	tx = applyActiveFilter(tx, c, policy, "active")

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		tx = tx.Where("name ILIKE ?", "%"+term+"%")
	}

	if bucket := c.Query("price_range"); bucket != "" && policy.HasFilter("price_range") {
		clause, args, ok := priceRangeClause(bucket)
		if !ok {
			httperr.BadRequest(c, "invalid_price_range", "Faixa de preço inválida.")
			return
		}
		tx = tx.Where(clause, args...)
	}

	var services []models.Service
	if err := tx.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	rows := make([]gin.H, 0, len(services))
	for _, s := range services {
		rows = append(rows, project(policy, gin.H{
			"id":               s.ID,
			"name":             s.Name,
			"price":            s.Price,
			"duration_minutes": s.DurationMinutes,
			"active":           s.Active,
			"created_at":       s.CreatedAt,
			"updated_at":       s.UpdatedAt,
		}))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type ServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Price           string `json:"price" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          *bool  `json:"active"`
}

func (r *ServiceRequest) apply(s *models.Service) error {
	price, err := decimal.NewFromString(r.Price)
	if err != nil || price.IsNegative() {
		return httperr.ErrBusiness("invalid_price")
	}

	s.Name = strings.TrimSpace(r.Name)
	s.Price = price
	if r.DurationMinutes > 0 {
		s.DurationMinutes = r.DurationMinutes
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	return nil
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{DurationMinutes: 30, Active: true}
	if err := req.apply(&service); err != nil {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := req.apply(&service); err != nil {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.Service{}, id).Error; err != nil {
		if httperr.IsProtectedViolation(err) {
			httperr.BadRequest(c, "in_use", "Serviço em uso não pode ser removido.")
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
