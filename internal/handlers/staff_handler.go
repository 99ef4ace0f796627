package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/audit"
	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/httpresp"
	infraRepo "github.com/salao-m2a/salon-scheduler/internal/infra/repository"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/models"
	"github.com/salao-m2a/salon-scheduler/internal/timezone"
)

type StaffHandler struct {
	db    *gorm.DB
	repo  *infraRepo.ScheduleGormRepository
	audit *audit.Dispatcher
}

func NewStaffHandler(db *gorm.DB, repo *infraRepo.ScheduleGormRepository, dispatcher *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{db: db, repo: repo, audit: dispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntityStaff)

	tx := h.db.Model(&models.Staff{}).
		Joins("JOIN people ON people.id = staff.person_id").
		Preload("Person").
		Preload("Services")
	tx = applyActiveFilter(tx, c, policy, "staff.active")

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		tx = tx.Where("people.full_name ILIKE ?", "%"+term+"%")
	}

	if svc := c.Query("service"); svc != "" && policy.HasFilter("service") {
		tx = tx.Where(`EXISTS (
			SELECT 1 FROM staff_services
			WHERE staff_services.staff_id = staff.id
			AND staff_services.service_id = ?)`, svc)
	}

	var staff []models.Staff
	if err := tx.Order("people.full_name ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar funcionários.")
		return
	}

	wantsRevenue := policy.HasField("total_revenue") || policy.HasField("projected_revenue_30d")

	var revenue *infraRepo.RevenueSummary
	if wantsRevenue {
		var err error
		revenue, err = h.repo.StaffRevenue(c.Request.Context(), timezone.Now())
		if err != nil {
			httperr.Internal(c, "failed_to_load_revenue", "Erro ao calcular receita.")
			return
		}
	}

	rows := make([]gin.H, 0, len(staff))
	for _, s := range staff {
		services := make([]gin.H, 0, len(s.Services))
		for _, svc := range s.Services {
			services = append(services, gin.H{"id": svc.ID, "name": svc.Name})
		}

		row := gin.H{
			"id": s.ID,
			"person": gin.H{
				"id":        s.Person.ID,
				"full_name": s.Person.FullName,
				"cpf":       s.Person.CPF,
				"mobile":    s.Person.Mobile,
			},
			"services":   services,
			"active":     s.Active,
			"created_at": s.CreatedAt,
			"updated_at": s.UpdatedAt,
		}
		if wantsRevenue {
			row["total_revenue"] = revenue.CompletedFor(s.ID)
			row["projected_revenue_30d"] = revenue.ProjectedFor(s.ID)
		}
		rows = append(rows, project(policy, row))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type StaffRequest struct {
	PersonID   uint   `json:"person_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids"`
	Active     *bool  `json:"active"`
}

func (h *StaffHandler) loadServices(ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := h.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return services, nil
}

func (h *StaffHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var person models.Person
	if err := h.db.First(&person, req.PersonID).Error; err != nil {
		httperr.BadRequest(c, "person_not_found", "Pessoa não encontrada.")
		return
	}

	var clientCount int64
	h.db.Model(&models.Client{}).Where("person_id = ?", req.PersonID).Count(&clientCount)
	if clientCount > 0 {
		httperr.BadRequest(c, "person_is_client", "Pessoa já é cliente.")
		return
	}

	services, err := h.loadServices(req.ServiceIDs)
	if err != nil {
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	staff := models.Staff{
		PersonID: req.PersonID,
		Services: services,
		Active:   true,
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Create(&staff).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "person_already_staff", "Pessoa já é funcionário.")
			return
		}
		httperr.Internal(c, "failed_to_create_staff", "Erro ao criar funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "staff_created",
		Entity:   "staff",
		EntityID: &staff.ID,
	})

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var staff models.Staff
	if err := h.db.Preload("Services").First(&staff, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Funcionário não encontrado.")
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Active != nil {
		staff.Active = *req.Active
	}

	if req.ServiceIDs != nil {
		services, err := h.loadServices(req.ServiceIDs)
		if err != nil {
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		if err := h.db.Model(&staff).Association("Services").Replace(services); err != nil {
			httperr.Internal(c, "failed_to_update_staff", "Erro ao atualizar serviços.")
			return
		}
	}

	// Omit evita que o Save religue a associação recém substituída
	if err := h.db.Omit("Services").Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Erro ao atualizar funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "staff_updated",
		Entity:   "staff",
		EntityID: &staff.ID,
	})

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.Staff{}, id).Error; err != nil {
		if httperr.IsProtectedViolation(err) {
			// funcionário com vagas cadastradas não sai do histórico
			httperr.BadRequest(c, "in_use", "Funcionário com vagas não pode ser removido.")
			return
		}
		httperr.Internal(c, "failed_to_delete_staff", "Erro ao remover funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "staff_deleted",
		Entity:   "staff",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
