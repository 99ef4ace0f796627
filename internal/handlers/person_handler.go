package handlers

import (
	"net/http"
	"strings"
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
	"github.com/salao-m2a/salon-scheduler/internal/validators"
)

type PersonHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPersonHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PersonHandler {
	return &PersonHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type PersonRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	BirthDate string `json:"birth_date"` // DD/MM/YYYY
	CPF       string `json:"cpf" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Mobile    string `json:"mobile"`
	Active    *bool  `json:"active"`
}

func (r *PersonRequest) validate() (string, bool) {
	if !validators.IsCPFFormatValid(r.CPF) {
		return "invalid_cpf", false
	}
	if !validators.IsEmailFormatValid(strings.ToLower(strings.TrimSpace(r.Email))) {
		return "invalid_email", false
	}
	if r.Mobile != "" && !validators.IsMobileFormatValid(r.Mobile) {
		return "invalid_mobile", false
	}
	return "", true
}

func (r *PersonRequest) apply(p *models.Person) error {
	p.FullName = strings.TrimSpace(r.FullName)
	p.CPF = r.CPF
	p.Email = strings.ToLower(strings.TrimSpace(r.Email))
	p.Mobile = r.Mobile

	if r.BirthDate != "" {
		birth, err := time.ParseInLocation("02/01/2006", r.BirthDate, timezone.Location())
		if err != nil {
			return err
		}
		p.BirthDate = &birth
	}

	if r.Active != nil {
		p.Active = *r.Active
	}
	return nil
}

// ======================================================
// LIST
// ======================================================

func (h *PersonHandler) List(c *gin.Context) {
	policy := policyFor(c, rbac.EntityPerson)

	tx := h.db.Model(&models.Person{})
	tx = applyActiveFilter(tx, c, policy, "active")

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		like := "%" + term + "%"
		tx = tx.Where("full_name ILIKE ? OR cpf LIKE ? OR email ILIKE ?", like, like, like)
	}

	var people []models.Person
	if err := tx.Order("full_name ASC").Find(&people).Error; err != nil {
		httperr.Internal(c, "failed_to_list_people", "Erro ao listar pessoas.")
		return
	}

	rows := make([]gin.H, 0, len(people))
	for _, p := range people {
		rows = append(rows, project(policy, gin.H{
			"id":         p.ID,
			"full_name":  p.FullName,
			"birth_date": p.BirthDate,
			"cpf":        p.CPF,
			"email":      p.Email,
			"mobile":     p.Mobile,
			"active":     p.Active,
			"created_at": p.CreatedAt,
			"updated_at": p.UpdatedAt,
		}))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *PersonHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if code, ok := req.validate(); !ok {
		httperr.BadRequest(c, code, "Formato inválido.")
		return
	}

	person := models.Person{Active: true}
	if err := req.apply(&person); err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	if err := h.db.Create(&person).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "cpf_or_email_taken", "CPF ou e-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_person", "Erro ao criar pessoa.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "person_created",
		Entity:   "person",
		EntityID: &person.ID,
	})

	c.JSON(http.StatusCreated, person)
}

func (h *PersonHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var person models.Person
	if err := h.db.First(&person, id).Error; err != nil {
		httperr.NotFound(c, "person_not_found", "Pessoa não encontrada.")
		return
	}

	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if code, ok := req.validate(); !ok {
		httperr.BadRequest(c, code, "Formato inválido.")
		return
	}

	if err := req.apply(&person); err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	if err := h.db.Save(&person).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "cpf_or_email_taken", "CPF ou e-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_person", "Erro ao atualizar pessoa.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "person_updated",
		Entity:   "person",
		EntityID: &person.ID,
	})

	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.Person{}, id).Error; err != nil {
		if httperr.IsProtectedViolation(err) {
			// pessoa já virou cliente ou funcionário
			httperr.BadRequest(c, "in_use", "Pessoa vinculada não pode ser removida.")
			return
		}
		httperr.Internal(c, "failed_to_delete_person", "Erro ao remover pessoa.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "person_deleted",
		Entity:   "person",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}
