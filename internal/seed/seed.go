package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/models"
)

// ======================================================
// CONFIG
// ======================================================

type Config struct {
	People        int
	Receptionists int
	Staff         int

	// dias da grade de horários para trás e para frente de "now"
	PastDays   int
	FutureDays int

	// fração de vagas que nascem agendadas
	BookedRatio float64

	// fração de vagas com dois serviços (combo)
	BundleRatio float64
}

func DefaultConfig() Config {
	return Config{
		People:        10000,
		Receptionists: 2,
		Staff:         12,
		PastDays:      90,
		FutureDays:    180,
		BookedRatio:   0.90,
		BundleRatio:   0.30,
	}
}

// ======================================================
// DATASET
// ======================================================

// SlotSpec referencia funcionário, horário e serviços por índice dentro
// do Dataset: só viram chaves estrangeiras reais no Persist.
type SlotSpec struct {
	Staff    int
	TimeSlot int
	Services []int
}

type BookingSpec struct {
	Slot   int
	Client int
	Status string
}

// UserSpec vira uma conta do painel; a senha padrão é aplicada no
// Persist, onde o hash bcrypt é calculado uma única vez
type UserSpec struct {
	Name  string
	Email string
	Role  string
}

type Dataset struct {
	People   []models.Person
	Services []models.Service
	Users    []UserSpec

	// índices em People
	ClientIdx []int
	StaffIdx  []int

	// serviços habilitados por funcionário (índices em Services)
	StaffServices [][]int

	TimeSlots []time.Time
	Slots     []SlotSpec
	Bookings  []BookingSpec
}

// ======================================================
// CATÁLOGO
// ======================================================

type catalogEntry struct {
	name     string
	price    string
	duration int
}

// catálogo fixo cobrindo todas as faixas de preço do filtro do painel
var catalog = []catalogEntry{
	{"Corte Masculino", "35.00", 30},
	{"Barba", "25.00", 30},
	{"Design de Sobrancelha", "30.00", 30},
	{"Corte Feminino", "60.00", 60},
	{"Escova", "55.00", 30},
	{"Manicure", "40.00", 30},
	{"Pedicure", "45.00", 30},
	{"Hidratacao", "80.00", 60},
	{"Maquiagem", "120.00", 60},
	{"Luzes", "140.00", 90},
	{"Coloracao", "160.00", 90},
	{"Depilacao Completa", "180.00", 90},
	{"Progressiva", "250.00", 120},
	{"Alongamento de Unhas", "220.00", 90},
}

// padrões de jornada dos funcionários
var patterns = []string{"integral", "manha", "tarde", "fds"}

// ======================================================
// GERAÇÃO
// ======================================================

// Generate monta um dataset determinístico em memória. O mesmo seed
// produz sempre o mesmo resultado; nada toca o banco aqui.
func Generate(cfg Config, seed int64, now time.Time) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(seed)

	ds := &Dataset{}

	// ---------- pessoas ----------
	ds.People = make([]models.Person, cfg.People)
	for i := range ds.People {
		name := faker.Name()
		birth := faker.DateRange(
			now.AddDate(-70, 0, 0),
			now.AddDate(-18, 0, 0),
		)
		ds.People[i] = models.Person{
			FullName:  name,
			BirthDate: &birth,
			CPF:       syntheticCPF(i),
			Email:     syntheticEmail(name, i),
			Mobile: fmt.Sprintf("(%02d) 9%04d-%04d",
				11+rng.Intn(89), rng.Intn(10000), rng.Intn(10000)),
			Active: true,
		}
	}

	// os primeiros viram funcionários e recepcionistas, o resto clientes
	staffTotal := cfg.Staff
	for i := 0; i < staffTotal && i < len(ds.People); i++ {
		ds.StaffIdx = append(ds.StaffIdx, i)
	}
	for i := staffTotal + cfg.Receptionists; i < len(ds.People); i++ {
		ds.ClientIdx = append(ds.ClientIdx, i)
	}

	// contas do painel: um dono, as recepcionistas e os funcionários
	ds.Users = append(ds.Users, UserSpec{
		Name:  "Dono do Salao",
		Email: "dono@salao.local",
		Role:  "owner",
	})
	for i := 0; i < cfg.Receptionists && staffTotal+i < len(ds.People); i++ {
		p := ds.People[staffTotal+i]
		ds.Users = append(ds.Users, UserSpec{
			Name:  p.FullName,
			Email: p.Email,
			Role:  "receptionist",
		})
	}
	for _, idx := range ds.StaffIdx {
		p := ds.People[idx]
		ds.Users = append(ds.Users, UserSpec{
			Name:  p.FullName,
			Email: p.Email,
			Role:  "staff",
		})
	}

	// ---------- serviços ----------
	ds.Services = make([]models.Service, len(catalog))
	for i, c := range catalog {
		price, _ := decimal.NewFromString(c.price)
		ds.Services[i] = models.Service{
			Name:            c.name,
			Price:           price,
			DurationMinutes: c.duration,
			Active:          true,
		}
	}

	// ---------- habilitações ----------
	// primeiro todo serviço ganha um funcionário sorteado, depois cada
	// funcionário recebe um punhado aleatório de extras, até dez no total
	ds.StaffServices = make([][]int, len(ds.StaffIdx))
	for svc := range ds.Services {
		s := rng.Intn(len(ds.StaffIdx))
		ds.StaffServices[s] = append(ds.StaffServices[s], svc)
	}
	for s := range ds.StaffServices {
		room := 10 - len(ds.StaffServices[s])
		if room <= 0 {
			continue
		}
		extras := rng.Intn(room + 1)
		for i := 0; i < extras; i++ {
			svc := rng.Intn(len(ds.Services))
			if !containsInt(ds.StaffServices[s], svc) {
				ds.StaffServices[s] = append(ds.StaffServices[s], svc)
			}
		}
	}

	// ---------- grade de horários ----------
	loc := now.Location()
	first := now.AddDate(0, 0, -cfg.PastDays)
	last := now.AddDate(0, 0, cfg.FutureDays)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		open, close := 8, 19 // seg a sáb: 08:00 até 18:30
		if day.Weekday() == time.Sunday {
			open, close = 9, 15 // dom: 09:00 até 14:30
		}
		for h := open; h < close; h++ {
			for _, m := range []int{0, 30} {
				ds.TimeSlots = append(ds.TimeSlots, time.Date(
					day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc,
				))
			}
		}
	}

	// ---------- vagas ----------
	for s := range ds.StaffIdx {
		pattern := patterns[s%len(patterns)]
		offered := ds.StaffServices[s]
		if len(offered) == 0 {
			// funcionário sem habilitação não abre vaga
			continue
		}
		for ts, at := range ds.TimeSlots {
			if !worksAt(pattern, at) {
				continue
			}

			services := []int{offered[rng.Intn(len(offered))]}
			if len(offered) > 1 && rng.Float64() < cfg.BundleRatio {
				second := offered[rng.Intn(len(offered))]
				if second != services[0] {
					services = append(services, second)
				}
			}

			ds.Slots = append(ds.Slots, SlotSpec{
				Staff:    s,
				TimeSlot: ts,
				Services: services,
			})
		}
	}

	// ---------- agendamentos ----------
	statuses := []string{"SCHEDULED", "COMPLETED", "CANCELED"}
	for slot := range ds.Slots {
		if rng.Float64() >= cfg.BookedRatio || len(ds.ClientIdx) == 0 {
			continue
		}
		ds.Bookings = append(ds.Bookings, BookingSpec{
			Slot:   slot,
			Client: rng.Intn(len(ds.ClientIdx)),
			Status: statuses[rng.Intn(len(statuses))],
		})
	}

	return ds
}

// worksAt decide se o padrão de jornada cobre o horário. Integral é
// segunda a sexta o dia todo; manhã e tarde incluem sábado; fds cobre
// sábado e domingo.
func worksAt(pattern string, at time.Time) bool {
	wd := at.Weekday()
	switch pattern {
	case "manha":
		return wd != time.Sunday && at.Hour() < 13
	case "tarde":
		return wd != time.Sunday && at.Hour() >= 13
	case "fds":
		return wd == time.Saturday || wd == time.Sunday
	default: // integral
		return wd != time.Saturday && wd != time.Sunday
	}
}

// syntheticCPF gera um CPF formatado e único por índice. Não passa no
// dígito verificador, mas o seed não valida: só precisa ser único.
func syntheticCPF(i int) string {
	n := 10000000000 + int64(i)
	s := fmt.Sprintf("%011d", n)
	return fmt.Sprintf("%s.%s.%s-%s", s[0:3], s[3:6], s[6:9], s[9:11])
}

func syntheticEmail(name string, i int) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s.%d@example.com", slug, i)
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// ======================================================
// PERSISTÊNCIA
// ======================================================

const batchSize = 500

// senha inicial das contas criadas pelo seed
const DefaultPassword = "mudar123"

// Persist grava o dataset inteiro numa única transação, resolvendo os
// índices do Dataset para as chaves geradas pelo banco.
func Persist(ctx context.Context, db *gorm.DB, ds *Dataset) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed senha: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(ds.People, batchSize).Error; err != nil {
			return fmt.Errorf("seed pessoas: %w", err)
		}

		users := make([]models.User, len(ds.Users))
		for i, spec := range ds.Users {
			users[i] = models.User{
				Name:         spec.Name,
				Email:        spec.Email,
				PasswordHash: string(hashed),
				Role:         spec.Role,
				Active:       true,
			}
		}
		if err := tx.CreateInBatches(users, batchSize).Error; err != nil {
			return fmt.Errorf("seed usuarios: %w", err)
		}
		if err := tx.CreateInBatches(ds.Services, batchSize).Error; err != nil {
			return fmt.Errorf("seed servicos: %w", err)
		}

		clients := make([]models.Client, len(ds.ClientIdx))
		for i, p := range ds.ClientIdx {
			clients[i] = models.Client{PersonID: ds.People[p].ID, Active: true}
		}
		if err := tx.CreateInBatches(clients, batchSize).Error; err != nil {
			return fmt.Errorf("seed clientes: %w", err)
		}

		staff := make([]models.Staff, len(ds.StaffIdx))
		for i, p := range ds.StaffIdx {
			staff[i] = models.Staff{PersonID: ds.People[p].ID, Active: true}
			for _, svc := range ds.StaffServices[i] {
				staff[i].Services = append(staff[i].Services, ds.Services[svc])
			}
		}
		if err := tx.CreateInBatches(staff, batchSize).Error; err != nil {
			return fmt.Errorf("seed funcionarios: %w", err)
		}

		timeSlots := make([]models.TimeSlot, len(ds.TimeSlots))
		for i, at := range ds.TimeSlots {
			timeSlots[i] = models.TimeSlot{StartsAt: at, Active: true}
		}
		if err := tx.CreateInBatches(timeSlots, batchSize).Error; err != nil {
			return fmt.Errorf("seed horarios: %w", err)
		}

		slots := make([]models.StaffServiceSlot, len(ds.Slots))
		for i, spec := range ds.Slots {
			slots[i] = models.StaffServiceSlot{
				StaffID:    staff[spec.Staff].ID,
				TimeSlotID: timeSlots[spec.TimeSlot].ID,
				Active:     true,
			}
			for _, svc := range spec.Services {
				slots[i].Services = append(slots[i].Services, ds.Services[svc])
			}
		}
		if err := tx.CreateInBatches(slots, batchSize).Error; err != nil {
			return fmt.Errorf("seed vagas: %w", err)
		}

		bookings := make([]models.Appointment, len(ds.Bookings))
		for i, spec := range ds.Bookings {
			bookings[i] = models.Appointment{
				ClientID: &clients[spec.Client].ID,
				SlotID:   slots[spec.Slot].ID,
				Status:   spec.Status,
				Active:   true,
			}
		}
		if err := tx.CreateInBatches(bookings, batchSize).Error; err != nil {
			return fmt.Errorf("seed agendamentos: %w", err)
		}

		return nil
	})
}
