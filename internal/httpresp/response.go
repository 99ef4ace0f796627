package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse é o envelope das listagens; os selects e tabelas do
// painel esperam a coleção em data com o total já contado.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// OK devolve o payload como veio, com status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List embrulha a coleção no envelope padrão de listagem.
func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
