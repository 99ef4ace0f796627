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

type ClientHandler struct {
	db    *gorm.DB
	repo  *infraRepo.ScheduleGormRepository
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, repo *infraRepo.ScheduleGormRepository, dispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, repo: repo, audit: dispatcher}
}

// ======================================================
// LIST
// ======================================================

// A listagem muda de cara conforme o papel: administrador e dono veem
// as colunas de receita, recepção e atendimento veem só a identificação
func (h *ClientHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntityClient)

	tx := h.db.Model(&models.Client{}).
		Joins("JOIN people ON people.id = clients.person_id").
		Preload("Person")
	tx = applyActiveFilter(tx, c, policy, "clients.active")

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		like := "%" + term + "%"
		tx = tx.Where("people.full_name ILIKE ? OR people.cpf LIKE ?", like, like)
	}

	var clients []models.Client
	if err := tx.Order("people.full_name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	wantsRevenue := policy.HasField("total_revenue") || policy.HasField("projected_revenue_30d")

	var revenue *infraRepo.RevenueSummary
	if wantsRevenue {
		var err error
		revenue, err = h.repo.ClientRevenue(c.Request.Context(), timezone.Now())
		if err != nil {
			httperr.Internal(c, "failed_to_load_revenue", "Erro ao calcular receita.")
			return
		}
	}

	rows := make([]gin.H, 0, len(clients))
	for _, cl := range clients {
		row := gin.H{
			"id": cl.ID,
			"person": gin.H{
				"id":        cl.Person.ID,
				"full_name": cl.Person.FullName,
				"cpf":       cl.Person.CPF,
				"mobile":    cl.Person.Mobile,
			},
			"active":     cl.Active,
			"created_at": cl.CreatedAt,
			"updated_at": cl.UpdatedAt,
		}
		if wantsRevenue {
			row["total_revenue"] = revenue.CompletedFor(cl.ID)
			row["projected_revenue_30d"] = revenue.ProjectedFor(cl.ID)
		}
		rows = append(rows, project(policy, row))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type ClientRequest struct {
	PersonID uint  `json:"person_id" binding:"required"`
	Active   *bool `json:"active"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var person models.Person
	if err := h.db.First(&person, req.PersonID).Error; err != nil {
		httperr.BadRequest(c, "person_not_found", "Pessoa não encontrada.")
		return
	}

	// uma pessoa não acumula os papéis de cliente e funcionário
	var staffCount int64
	h.db.Model(&models.Staff{}).Where("person_id = ?", req.PersonID).Count(&staffCount)
	if staffCount > 0 {
		httperr.BadRequest(c, "person_is_staff", "Pessoa já é funcionário.")
		return
	}

	client := models.Client{PersonID: req.PersonID, Active: true}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := h.db.Create(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "person_already_client", "Pessoa já é cliente.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.Client{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
