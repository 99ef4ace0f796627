package schedule

import (
	"context"
	"strings"
	"time"

	domain "github.com/salao-m2a/salon-scheduler/internal/domain/schedule"
)

const autocompleteLimit = 20

// ======================================================
// OUTPUT
// ======================================================

type SlotOption struct {
	ID        uint      `json:"id"`
	StartsAt  time.Time `json:"starts_at"`
	StaffName string    `json:"staff_name"`
	Services  []string  `json:"services"`
	Label     string    `json:"label"`
}

// ======================================================
// USE CASE
// ======================================================

type SearchOpenSlots struct {
	repo domain.Repository
}

func NewSearchOpenSlots(repo domain.Repository) *SearchOpenSlots {
	return &SearchOpenSlots{repo: repo}
}

func (uc *SearchOpenSlots) Execute(
	ctx context.Context,
	term string,
	now time.Time,
) ([]SlotOption, error) {

	q := domain.SlotQuery{
		Now:   now,
		Term:  strings.TrimSpace(term),
		Limit: autocompleteLimit,
	}

	if date, ok := domain.ParseSearchDate(q.Term, now); ok {
		q.Date = &date
	}

	slots, err := uc.repo.ListOpenSlots(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]SlotOption, 0, len(slots))
	for _, slot := range slots {
		names := make([]string, 0, len(slot.Services))
		for _, s := range slot.Services {
			names = append(names, s.Name)
		}

		staffName := slot.Staff.Person.DisplayName()

		out = append(out, SlotOption{
			ID:        slot.ID,
			StartsAt:  slot.TimeSlot.StartsAt,
			StaffName: staffName,
			Services:  names,
			Label: staffName + " - " +
				slot.TimeSlot.StartsAt.Format("02/01/2006 15:04") +
				" - " + strings.Join(names, ", "),
		})
	}

	return out, nil
}

// ======================================================
// AVAILABLE DATES
// ======================================================

type DateOption struct {
	ID       uint      `json:"id"`
	StartsAt time.Time `json:"starts_at"`
	Label    string    `json:"label"`
}

type SearchUpcomingDates struct {
	repo domain.Repository
}

func NewSearchUpcomingDates(repo domain.Repository) *SearchUpcomingDates {
	return &SearchUpcomingDates{repo: repo}
}

func (uc *SearchUpcomingDates) Execute(
	ctx context.Context,
	term string,
	now time.Time,
) ([]DateOption, error) {

	q := domain.SlotQuery{
		Now:   now,
		Term:  strings.TrimSpace(term),
		Limit: autocompleteLimit,
	}

	if date, ok := domain.ParseSearchDate(q.Term, now); ok {
		q.Date = &date
	}

	slots, err := uc.repo.ListUpcomingTimeSlots(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]DateOption, 0, len(slots))
	for _, ts := range slots {
		out = append(out, DateOption{
			ID:       ts.ID,
			StartsAt: ts.StartsAt,
			Label:    ts.StartsAt.Format("02/01/2006 15:04"),
		})
	}

	return out, nil
}
