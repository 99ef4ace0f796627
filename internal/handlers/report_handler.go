package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/report"
	"github.com/salao-m2a/salon-scheduler/internal/timezone"
	usecase "github.com/salao-m2a/salon-scheduler/internal/usecase/schedule"
)

type ReportHandler struct {
	earnings *usecase.BuildEarningsReport
}

func NewReportHandler(earnings *usecase.BuildEarningsReport) *ReportHandler {
	return &ReportHandler{earnings: earnings}
}

// ======================================================
// RELATÓRIO DE GANHOS (PDF)
// ======================================================

// Earnings gera o PDF de ganhos do período. Parâmetro inválido volta
// para a tela de origem com o erro na query string; sem Referer a
// resposta é um 400 comum.
func (h *ReportHandler) Earnings(c *gin.Context) {
	role, _ := middleware.RoleFrom(c)
	if !rbac.CanGenerateReport(role) {
		httperr.Forbidden(c, "report_not_allowed", "Sem permissão para gerar relatório.")
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		h.paramError(c, "missing_dates")
		return
	}

	loc := timezone.Location()
	start, err := time.ParseInLocation("02/01/2006", startStr, loc)
	if err != nil {
		h.paramError(c, "invalid_start_date")
		return
	}
	end, err := time.ParseInLocation("02/01/2006", endStr, loc)
	if err != nil {
		h.paramError(c, "invalid_end_date")
		return
	}
	if end.Before(start) {
		h.paramError(c, "end_before_start")
		return
	}

	result, err := h.earnings.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}

	pdf, err := report.Render(result)
	if err != nil {
		httperr.Internal(c, "failed_to_render_report", "Erro ao gerar PDF.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio-ganhos.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *ReportHandler) paramError(c *gin.Context, code string) {
	referer := c.GetHeader("Referer")
	if referer == "" {
		httperr.BadRequest(c, code, "Parâmetros do relatório inválidos.")
		return
	}

	back, err := url.Parse(referer)
	if err != nil {
		httperr.BadRequest(c, code, "Parâmetros do relatório inválidos.")
		return
	}

	q := back.Query()
	q.Set("error", code)
	back.RawQuery = q.Encode()

	c.Redirect(http.StatusSeeOther, back.String())
}
