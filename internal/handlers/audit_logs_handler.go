package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/httpresp"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve a trilha de auditoria, mais recente primeiro
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	tx := h.db.Model(&models.AuditLog{})

	if entity := c.Query("entity"); entity != "" {
		tx = tx.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		tx = tx.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := tx.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
