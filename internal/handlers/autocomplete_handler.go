package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/httpresp"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/timezone"
	usecase "github.com/salao-m2a/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// AUTOCOMPLETES
// ======================================================

// Os três autocompletes alimentam os selects do painel. Chamada sem
// credencial não é erro: devolve lista vazia, igual ao comportamento
// esperado pelos widgets.
type AutocompleteHandler struct {
	openSlots     *usecase.SearchOpenSlots
	upcomingDates *usecase.SearchUpcomingDates
	peoplePool    *usecase.SearchAvailablePeople
}

func NewAutocompleteHandler(
	openSlots *usecase.SearchOpenSlots,
	upcomingDates *usecase.SearchUpcomingDates,
	peoplePool *usecase.SearchAvailablePeople,
) *AutocompleteHandler {
	return &AutocompleteHandler{
		openSlots:     openSlots,
		upcomingDates: upcomingDates,
		peoplePool:    peoplePool,
	}
}

func (h *AutocompleteHandler) OpenSlots(c *gin.Context) {
	if _, ok := middleware.UserIDFrom(c); !ok {
		httpresp.List(c, []usecase.SlotOption{})
		return
	}

	options, err := h.openSlots.Execute(
		c.Request.Context(),
		c.Query("q"),
		timezone.Now(),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_search_slots", "Erro ao buscar vagas.")
		return
	}

	httpresp.List(c, options)
}

func (h *AutocompleteHandler) UpcomingDates(c *gin.Context) {
	if _, ok := middleware.UserIDFrom(c); !ok {
		httpresp.List(c, []usecase.DateOption{})
		return
	}

	options, err := h.upcomingDates.Execute(
		c.Request.Context(),
		c.Query("q"),
		timezone.Now(),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_search_dates", "Erro ao buscar horários.")
		return
	}

	httpresp.List(c, options)
}

func (h *AutocompleteHandler) AvailablePeople(c *gin.Context) {
	if _, ok := middleware.UserIDFrom(c); !ok {
		httpresp.List(c, []usecase.PersonOption{})
		return
	}

	options, err := h.peoplePool.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Internal(c, "failed_to_search_people", "Erro ao buscar pessoas.")
		return
	}

	httpresp.List(c, options)
}
