package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
)

// ======================================================
// PROJEÇÃO POR PAPEL
// ======================================================

// policyFor resolve a política de listagem da entidade para o papel do
// usuário autenticado
func policyFor(c *gin.Context, entity rbac.Entity) rbac.Policy {
	role, ok := middleware.RoleFrom(c)
	if !ok {
		role = rbac.RoleStaff
	}
	return rbac.For(role, entity)
}

// project corta a linha completa para as colunas que o papel enxerga
func project(p rbac.Policy, row gin.H) gin.H {
	out := gin.H{}
	for _, f := range p.Fields {
		if v, ok := row[f]; ok {
			out[f] = v
		}
	}
	return out
}

// ======================================================
// FILTROS DE LISTAGEM
// ======================================================

// applyActiveFilter aplica ?active=true|false quando o papel tem acesso
// ao filtro. Papel sem o filtro lista tudo, ativos e inativos: perder o
// filtro tira o controle da tela, não restringe o resultado.
func applyActiveFilter(tx *gorm.DB, c *gin.Context, p rbac.Policy, col string) *gorm.DB {
	if active, ok := activeFilterValue(p, c.Query("active")); ok {
		return tx.Where(col+" = ?", active)
	}
	return tx
}

// activeFilterValue decide se o recorte por ativo entra na consulta:
// só entra quando o papel tem o filtro e o parâmetro traz um booleano
// válido
func activeFilterValue(p rbac.Policy, raw string) (value bool, apply bool) {
	if !p.HasFilter("active") || raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// parseDateRange lê ?start=DD/MM/YYYY&end=DD/MM/YYYY; qualquer lado
// pode faltar
func parseDateRange(c *gin.Context, loc *time.Location) (*time.Time, *time.Time) {
	var start, end *time.Time

	if raw := c.Query("start"); raw != "" {
		if t, err := time.ParseInLocation("02/01/2006", raw, loc); err == nil {
			start = &t
		}
	}
	if raw := c.Query("end"); raw != "" {
		if t, err := time.ParseInLocation("02/01/2006", raw, loc); err == nil {
			e := t.AddDate(0, 0, 1)
			end = &e
		}
	}
	return start, end
}

// priceRangeClause traduz a faixa do filtro para a condição SQL.
// As faixas intermediárias fecham nas duas pontas (um serviço de
// exatos R$ 100 aparece em "50-100" e em "100-150"); só "0-50" e
// "200+" são abertas.
func priceRangeClause(bucket string) (clause string, args []any, ok bool) {
	switch bucket {
	case "0-50":
		return "price < ?", []any{"50"}, true
	case "50-100":
		return "price >= ? AND price <= ?", []any{"50", "100"}, true
	case "100-150":
		return "price >= ? AND price <= ?", []any{"100", "150"}, true
	case "150-200":
		return "price >= ? AND price <= ?", []any{"150", "200"}, true
	case "200+":
		return "price > ?", []any{"200"}, true
	}
	return "", nil, false
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
