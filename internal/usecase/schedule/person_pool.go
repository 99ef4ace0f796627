package schedule

import (
	"context"
	"strings"
	"time"

	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
)

type PersonOption struct {
	ID          uint       `json:"id"`
	FullName    string     `json:"full_name"`
	DisplayName string     `json:"display_name"`
	CPF         string     `json:"cpf"`
	Mobile      string     `json:"mobile"`
	BirthDate   *time.Time `json:"birth_date"`
}

// SearchAvailablePeople lista pessoas que ainda não são cliente nem
// funcionário. É o filtro que impede, no fluxo do painel, uma pessoa
// de acumular os dois papéis.
type SearchAvailablePeople struct {
	repo domain.Repository
}

func NewSearchAvailablePeople(repo domain.Repository) *SearchAvailablePeople {
	return &SearchAvailablePeople{repo: repo}
}

func (uc *SearchAvailablePeople) Execute(
	ctx context.Context,
	term string,
) ([]PersonOption, error) {

	people, err := uc.repo.ListAvailablePeople(ctx, strings.TrimSpace(term), autocompleteLimit)
	if err != nil {
		return nil, err
	}

	out := make([]PersonOption, 0, len(people))
	for _, p := range people {
		out = append(out, PersonOption{
			ID:          p.ID,
			FullName:    p.FullName,
			DisplayName: p.DisplayName(),
			CPF:         p.CPF,
			Mobile:      p.Mobile,
			BirthDate:   p.BirthDate,
		})
	}

	return out, nil
}
