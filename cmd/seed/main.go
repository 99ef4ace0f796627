package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/salao-m2a/salon-scheduler/internal/config"
	dbpkg "github.com/salao-m2a/salon-scheduler/internal/db"
	"github.com/salao-m2a/salon-scheduler/internal/seed"
	"github.com/salao-m2a/salon-scheduler/internal/timezone"
)

// Popula o banco com uma carga realista: pessoas, catálogo de serviços,
// grade de horários, vagas por funcionário e agendamentos.
func main() {
	var (
		seedValue  = flag.Int64("seed", time.Now().UnixNano(), "semente do gerador")
		people     = flag.Int("people", 0, "total de pessoas (0 usa o padrão)")
		staffCount = flag.Int("staff", 0, "total de funcionários (0 usa o padrão)")
	)
	flag.Parse()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	genCfg := seed.DefaultConfig()
	if *people > 0 {
		genCfg.People = *people
	}
	if *staffCount > 0 {
		genCfg.Staff = *staffCount
	}

	log.Printf("generating dataset (seed=%d, people=%d, staff=%d)",
		*seedValue, genCfg.People, genCfg.Staff)

	ds := seed.Generate(genCfg, *seedValue, timezone.Now())

	log.Printf("persisting: %d people, %d services, %d time slots, %d slots, %d bookings",
		len(ds.People), len(ds.Services), len(ds.TimeSlots), len(ds.Slots), len(ds.Bookings))

	start := time.Now()
	if err := seed.Persist(context.Background(), db, ds); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))
}
