package schedule

import (
	"strings"
	"time"
)

// Formatos aceitos na busca por data das vagas; o primeiro que parsear
// vence. "25/12" resolve para 25 de dezembro do ano corrente.
var searchDateLayouts = []string{
	"02/01/2006",
	"02/01",
}

// ParseSearchDate tenta interpretar o termo de busca como uma data.
// Termos que não são datas retornam ok=false e seguem casando por nome
// de serviço ou de funcionário.
func ParseSearchDate(term string, now time.Time) (time.Time, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return time.Time{}, false
	}

	for _, layout := range searchDateLayouts {
		t, err := time.Parse(layout, term)
		if err != nil {
			continue
		}

		year := t.Year()
		if layout == "02/01" {
			year = now.Year()
		}

		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), true
	}

	return time.Time{}, false
}
