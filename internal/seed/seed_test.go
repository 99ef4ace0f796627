package seed

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		People:        60,
		Receptionists: 2,
		Staff:         8,
		PastDays:      3,
		FutureDays:    7,
		BookedRatio:   0.90,
		BundleRatio:   0.30,
	}
}

func testNow() time.Time {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	return time.Date(2025, 6, 10, 12, 0, 0, 0, loc)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(testConfig(), 42, testNow())
	b := Generate(testConfig(), 42, testNow())

	if len(a.People) != len(b.People) || len(a.Slots) != len(b.Slots) ||
		len(a.Bookings) != len(b.Bookings) {
		t.Fatalf("sizes differ: %d/%d people, %d/%d slots, %d/%d bookings",
			len(a.People), len(b.People), len(a.Slots), len(b.Slots),
			len(a.Bookings), len(b.Bookings))
	}

	for i := range a.People {
		if a.People[i].FullName != b.People[i].FullName ||
			a.People[i].CPF != b.People[i].CPF {
			t.Fatalf("person %d differs: %q vs %q", i,
				a.People[i].FullName, b.People[i].FullName)
		}
	}
	for i := range a.Bookings {
		if a.Bookings[i] != b.Bookings[i] {
			t.Fatalf("booking %d differs", i)
		}
	}
}

func TestGenerateUniqueIdentities(t *testing.T) {
	ds := Generate(testConfig(), 7, testNow())

	cpfs := make(map[string]bool)
	emails := make(map[string]bool)
	for _, p := range ds.People {
		if cpfs[p.CPF] {
			t.Fatalf("duplicate CPF %s", p.CPF)
		}
		if emails[p.Email] {
			t.Fatalf("duplicate email %s", p.Email)
		}
		cpfs[p.CPF] = true
		emails[p.Email] = true
	}
}

func TestGenerateEveryServiceHasStaff(t *testing.T) {
	ds := Generate(testConfig(), 7, testNow())

	covered := make(map[int]bool)
	for s, services := range ds.StaffServices {
		if len(services) > 10 {
			t.Errorf("staff %d offers %d services, max is 10", s, len(services))
		}
		for _, svc := range services {
			covered[svc] = true
		}
	}
	for svc := range ds.Services {
		if !covered[svc] {
			t.Errorf("service %d (%s) has no staff", svc, ds.Services[svc].Name)
		}
	}
}

func TestWorksAtPatterns(t *testing.T) {
	monday9 := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)
	monday14 := time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC)
	saturday9 := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	saturday14 := time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC)
	sunday10 := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	sunday14 := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		pattern string
		at      time.Time
		want    bool
	}{
		// integral: segunda a sexta, nunca fim de semana
		{"integral", monday9, true},
		{"integral", monday14, true},
		{"integral", saturday9, false},
		{"integral", sunday10, false},

		// manhã e tarde incluem sábado
		{"manha", monday9, true},
		{"manha", monday14, false},
		{"manha", saturday9, true},
		{"manha", sunday10, false},
		{"tarde", monday14, true},
		{"tarde", monday9, false},
		{"tarde", saturday14, true},
		{"tarde", sunday14, false},

		// fds: sábado e domingo
		{"fds", saturday9, true},
		{"fds", sunday10, true},
		{"fds", monday9, false},
	}

	for _, tc := range cases {
		if got := worksAt(tc.pattern, tc.at); got != tc.want {
			t.Errorf("worksAt(%s, %s %02dh) = %v, want %v",
				tc.pattern, tc.at.Weekday(), tc.at.Hour(), got, tc.want)
		}
	}
}

func TestGenerateStaffServicesVaryBySeed(t *testing.T) {
	a := Generate(testConfig(), 1, testNow())
	b := Generate(testConfig(), 2, testNow())

	same := true
	for s := range a.StaffServices {
		if len(a.StaffServices[s]) != len(b.StaffServices[s]) {
			same = false
			break
		}
		for i := range a.StaffServices[s] {
			if a.StaffServices[s][i] != b.StaffServices[s][i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("habilitações idênticas para seeds diferentes; distribuição deveria ser sorteada")
	}
}

func TestGenerateStaffServicesNoDuplicates(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		ds := Generate(testConfig(), seed, testNow())

		for s, services := range ds.StaffServices {
			seen := make(map[int]bool)
			for _, svc := range services {
				if seen[svc] {
					t.Errorf("seed %d: staff %d repete o serviço %d", seed, s, svc)
				}
				seen[svc] = true
			}
			if len(services) > 10 {
				t.Errorf("seed %d: staff %d oferece %d serviços, máximo é 10",
					seed, s, len(services))
			}
		}
	}
}

func TestGenerateSlotServicesSubsetOfStaff(t *testing.T) {
	ds := Generate(testConfig(), 7, testNow())

	for i, slot := range ds.Slots {
		offered := make(map[int]bool)
		for _, svc := range ds.StaffServices[slot.Staff] {
			offered[svc] = true
		}
		for _, svc := range slot.Services {
			if !offered[svc] {
				t.Fatalf("slot %d has service %d not offered by staff %d",
					i, svc, slot.Staff)
			}
		}
		if len(slot.Services) < 1 || len(slot.Services) > 2 {
			t.Fatalf("slot %d has %d services", i, len(slot.Services))
		}
	}
}

func TestGenerateGridHours(t *testing.T) {
	ds := Generate(testConfig(), 7, testNow())

	for _, at := range ds.TimeSlots {
		if m := at.Minute(); m != 0 && m != 30 {
			t.Fatalf("slot %v is off the half-hour grid", at)
		}
		h := at.Hour()
		if at.Weekday() == time.Sunday {
			if h < 9 || h > 14 {
				t.Fatalf("sunday slot %v outside 09:00-14:30", at)
			}
		} else {
			if h < 8 || h > 18 {
				t.Fatalf("weekday slot %v outside 08:00-18:30", at)
			}
		}
	}
}

func TestGenerateNoDoubleSlotPerStaffAndTime(t *testing.T) {
	ds := Generate(testConfig(), 7, testNow())

	seen := make(map[[2]int]bool)
	for _, slot := range ds.Slots {
		key := [2]int{slot.Staff, slot.TimeSlot}
		if seen[key] {
			t.Fatalf("duplicate slot for staff %d at time %d", slot.Staff, slot.TimeSlot)
		}
		seen[key] = true
	}
}

func TestGeneratePanelAccounts(t *testing.T) {
	cfg := testConfig()
	ds := Generate(cfg, 7, testNow())

	counts := make(map[string]int)
	for _, u := range ds.Users {
		counts[u.Role]++
	}

	if counts["owner"] != 1 {
		t.Errorf("owner accounts = %d, want 1", counts["owner"])
	}
	if counts["receptionist"] != cfg.Receptionists {
		t.Errorf("receptionist accounts = %d, want %d", counts["receptionist"], cfg.Receptionists)
	}
	if counts["staff"] != cfg.Staff {
		t.Errorf("staff accounts = %d, want %d", counts["staff"], cfg.Staff)
	}
}

func TestGenerateBookedRatio(t *testing.T) {
	ds := Generate(testConfig(), 7, testNow())

	if len(ds.Slots) == 0 {
		t.Fatal("no slots generated")
	}

	ratio := float64(len(ds.Bookings)) / float64(len(ds.Slots))
	if ratio < 0.80 || ratio > 1.0 {
		t.Errorf("booked ratio = %.2f, want around 0.90", ratio)
	}

	booked := make(map[int]bool)
	for _, b := range ds.Bookings {
		if booked[b.Slot] {
			t.Fatalf("slot %d booked twice", b.Slot)
		}
		booked[b.Slot] = true

		switch b.Status {
		case "SCHEDULED", "COMPLETED", "CANCELED":
		default:
			t.Fatalf("unexpected status %q", b.Status)
		}
	}
}
